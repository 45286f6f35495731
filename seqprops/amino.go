// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import "github.com/sudlab/cgat/gencode"

// AA accumulates the amino acid composition of the first reading frame
// of a coding nucleotide sequence. Codons outside the standard code
// translate to X; stop codons fall in the unknown bucket.
type AA struct {
	base
	aminos symbolCounter
}

func NewAA() *AA { return &AA{aminos: newSymbolCounter(proteinLetters)} }

func (p *AA) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	if len(s)%3 != 0 {
		return MalformedSequenceError{Title: title, Length: len(s)}
	}
	p.loadClean(s, title, kind)
	p.aminos.reset()
	for i := 0; i+3 <= len(s); i += 3 {
		aa, ok := gencode.TranslateCodon(string(s[i : i+3]))
		if !ok {
			aa = 'X'
		}
		p.aminos.tallySymbol(aa)
	}
	return nil
}

func (p *AA) Add(other Properties) {
	o, ok := other.(*AA)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addBase(&o.base)
	p.aminos.add(&o.aminos)
}

func (p *AA) Update() {}

func (p *AA) Fields() []string {
	p.Update()
	return compositionFields(&p.aminos)
}

func (p *AA) Headers() []string {
	return compositionHeaders(proteinLetters)
}

// AminoAcids accumulates the composition of an amino acid sequence.
// Symbols outside the extended protein alphabet are tallied as
// unknown.
type AminoAcids struct {
	base
	aminos symbolCounter
}

func NewAminoAcids() *AminoAcids {
	return &AminoAcids{aminos: newSymbolCounter(proteinLetters)}
}

func (p *AminoAcids) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	p.loadClean(s, title, kind)
	p.aminos.reset()
	p.aminos.tally(s)
	return nil
}

func (p *AminoAcids) Add(other Properties) {
	o, ok := other.(*AminoAcids)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addBase(&o.base)
	p.aminos.add(&o.aminos)
}

func (p *AminoAcids) Update() {}

func (p *AminoAcids) Fields() []string {
	p.Update()
	return compositionFields(&p.aminos)
}

func (p *AminoAcids) Headers() []string {
	return compositionHeaders(proteinLetters)
}
