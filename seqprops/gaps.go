// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import "strings"

// DefaultGapChars are the symbols Gaps treats as assembly gaps.
const DefaultGapChars = "xXnN"

// Gaps counts gap characters and gap/sequence runs in genomic
// sequences.
type Gaps struct {
	base
	gapChars string

	gaps       int
	seqRegions int
	gapRegions int
}

// NewGaps returns a gap counter treating the given characters as
// gaps; the empty string selects DefaultGapChars.
func NewGaps(gapChars string) *Gaps {
	if gapChars == "" {
		gapChars = DefaultGapChars
	}
	return &Gaps{gapChars: gapChars}
}

func (p *Gaps) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	p.loadClean(s, title, kind)
	p.gaps, p.seqRegions, p.gapRegions = 0, 0, 0
	var wasGap bool
	for i, b := range s {
		isGap := strings.IndexByte(p.gapChars, b) >= 0
		if isGap {
			p.gaps++
		}
		if i == 0 || isGap != wasGap {
			if isGap {
				p.gapRegions++
			} else {
				p.seqRegions++
			}
		}
		wasGap = isGap
	}
	return nil
}

func (p *Gaps) Add(other Properties) {
	o, ok := other.(*Gaps)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addBase(&o.base)
	p.gaps += o.gaps
	p.seqRegions += o.seqRegions
	p.gapRegions += o.gapRegions
}

func (p *Gaps) Update() {}

func (p *Gaps) Fields() []string {
	p.Update()
	return []string{itoa(p.gaps), itoa(p.seqRegions), itoa(p.gapRegions)}
}

func (p *Gaps) Headers() []string {
	return []string{"ngaps", "nseq_regions", "ngap_regions"}
}
