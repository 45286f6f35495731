// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

// base carries the bookkeeping shared by every accumulator.
type base struct {
	length int
	title  string
	kind   Kind
}

func (b *base) loadClean(s []byte, title string, kind Kind) {
	b.length = len(s)
	b.title = title
	b.kind = kind
}

// Merging keeps the receiver's title and kind; only tallies combine.
func (b *base) addBase(o *base) {
	b.length += o.length
}

// Len returns the total length of the loaded sequences.
func (b *base) Len() int { return b.length }

// Title returns the title passed to the last Load.
func (b *base) Title() string { return b.title }

// Length records sequence length and the number of codons it spans.
// Amino acid sequences span no codons.
type Length struct {
	base
	nCodons int
}

func NewLength() *Length { return &Length{} }

func (p *Length) Load(seq []byte, title string, kind Kind) error {
	p.loadLength(clean(seq), title, kind)
	return nil
}

func (p *Length) loadLength(s []byte, title string, kind Kind) {
	p.loadClean(s, title, kind)
	if kind == Nucleotide {
		p.nCodons = len(s) / 3
	} else {
		p.nCodons = 0
	}
}

func (p *Length) Add(other Properties) {
	o, ok := other.(*Length)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addLength(o)
}

func (p *Length) addLength(o *Length) {
	p.addBase(&o.base)
	p.nCodons += o.nCodons
}

func (p *Length) Update() {}

func (p *Length) Fields() []string {
	p.Update()
	return []string{itoa(p.length), itoa(p.nCodons)}
}

func (p *Length) Headers() []string {
	return []string{"length", "ncodons"}
}
