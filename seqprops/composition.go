// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

// NA accumulates nucleotide composition: per-base counts over ACGTN,
// GC and AT totals and the derived base fractions. Symbols outside the
// alphabet are tallied as unknown and never abort processing.
type NA struct {
	Length
	bases  symbolCounter
	gc, at int
}

func NewNA() *NA { return &NA{bases: newSymbolCounter(dnaLetters)} }

func (p *NA) Load(seq []byte, title string, kind Kind) error {
	p.loadNA(clean(seq), title, kind)
	return nil
}

func (p *NA) loadNA(s []byte, title string, kind Kind) {
	p.loadLength(s, title, kind)
	p.bases.reset()
	p.gc, p.at = 0, 0
	for _, b := range s {
		switch b {
		case 'G', 'C':
			p.gc++
		case 'A', 'T':
			p.at++
		}
		p.bases.tallySymbol(b)
	}
}

func (p *NA) Add(other Properties) {
	o, ok := other.(*NA)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addNA(o)
}

func (p *NA) addNA(o *NA) {
	p.addLength(&o.Length)
	p.bases.add(&o.bases)
	p.gc += o.gc
	p.at += o.at
}

func (p *NA) Update() {}

func (p *NA) Fields() []string {
	p.Update()
	fields := p.Length.Fields()
	fields = append(fields, itoa(p.bases.other))
	for _, v := range p.bases.counts {
		fields = append(fields, itoa(v))
	}
	fields = append(fields, itoa(p.gc), itoa(p.at))
	t := float64(p.bases.total())
	for _, v := range p.bases.counts {
		fields = append(fields, ratio(float64(v), t))
	}
	wc := float64(p.gc + p.at)
	fields = append(fields, ratio(float64(p.gc), wc), ratio(float64(p.at), wc))
	return fields
}

func (p *NA) Headers() []string {
	headers := p.Length.Headers()
	headers = append(headers, "nUnk")
	for i := 0; i < len(dnaLetters); i++ {
		headers = append(headers, "n"+string(dnaLetters[i]))
	}
	headers = append(headers, "nGC", "nAT")
	for i := 0; i < len(dnaLetters); i++ {
		headers = append(headers, "p"+string(dnaLetters[i]))
	}
	headers = append(headers, "pGC", "pAT")
	return headers
}

// DN accumulates overlapping dinucleotide counts over ACGT. Windows
// touching any other symbol are tallied as unknown.
type DN struct {
	base
	dinucs dinucCounter
}

func NewDN() *DN { return &DN{} }

func (p *DN) Load(seq []byte, title string, kind Kind) error {
	p.loadDN(clean(seq), title, kind)
	return nil
}

func (p *DN) loadDN(s []byte, title string, kind Kind) {
	p.loadClean(s, title, kind)
	p.dinucs.reset()
	p.dinucs.tally(s)
}

func (p *DN) Add(other Properties) {
	o, ok := other.(*DN)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addDN(o)
}

func (p *DN) addDN(o *DN) {
	p.addBase(&o.base)
	p.dinucs.add(&o.dinucs)
}

func (p *DN) Update() {}

func (p *DN) Fields() []string {
	p.Update()
	fields := make([]string, 0, 17)
	for _, v := range p.dinucs.counts {
		fields = append(fields, itoa(v))
	}
	return append(fields, itoa(p.dinucs.other))
}

// Dinucleotide headers are the dinucleotides themselves, keeping them
// distinct from the nGC/nAT totals when composed with NA in CpG.
func (p *DN) Headers() []string {
	headers := make([]string, 0, 17)
	headers = append(headers, dinucOrder...)
	return append(headers, "nUnkDinucs")
}

// CpG computes CpG density and observed/expected from nucleotide and
// dinucleotide composition. It owns one NA and one DN accumulator and
// delegates to both.
//
// Density is the CG dinucleotide count over half the sequence length;
// observed/expected is the CG count over the count expected were C and
// G placed independently. Both are 0 for empty input, and
// observed/expected is 0 when the expectation vanishes.
type CpG struct {
	na NA
	dn DN

	density float64
	obsExp  float64
}

func NewCpG() *CpG { return &CpG{na: *NewNA()} }

func (p *CpG) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	p.na.loadNA(s, title, kind)
	p.dn.loadDN(s, title, kind)
	return nil
}

func (p *CpG) Add(other Properties) {
	o, ok := other.(*CpG)
	if !ok {
		panic(mismatch(p, other))
	}
	p.na.addNA(&o.na)
	p.dn.addDN(&o.dn)
}

func (p *CpG) Update() {
	p.na.Update()
	p.dn.Update()
	p.density, p.obsExp = 0, 0
	l := float64(p.na.Len())
	if l == 0 {
		return
	}
	cg := float64(p.dn.dinucs.count("CG"))
	p.density = cg / (l / 2)
	expected := float64(p.na.bases.count('C')) * float64(p.na.bases.count('G')) / l
	if expected > 0 {
		p.obsExp = cg / expected
	}
}

func (p *CpG) Fields() []string {
	p.Update()
	fields := p.na.Fields()
	fields = append(fields, p.dn.Fields()...)
	return append(fields, ftoa(p.density), ftoa(p.obsExp))
}

func (p *CpG) Headers() []string {
	headers := p.na.Headers()
	headers = append(headers, p.dn.Headers()...)
	return append(headers, "CpG_density", "CpG_ObsExp")
}
