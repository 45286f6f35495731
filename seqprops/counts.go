// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import "gonum.org/v1/gonum/stat"

// Counts tallies symbols of a caller-supplied alphabet, with counts
// and fractions per symbol.
type Counts struct {
	base
	symbols symbolCounter
}

func NewCounts(alphabet string) *Counts {
	return &Counts{symbols: newSymbolCounter(alphabet)}
}

func (p *Counts) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	p.loadClean(s, title, kind)
	p.symbols.reset()
	p.symbols.tally(s)
	return nil
}

func (p *Counts) Add(other Properties) {
	o, ok := other.(*Counts)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addCounts(o)
}

func (p *Counts) addCounts(o *Counts) {
	p.addBase(&o.base)
	p.symbols.add(&o.symbols)
}

func (p *Counts) Update() {}

func (p *Counts) Fields() []string {
	p.Update()
	return compositionFields(&p.symbols)
}

func (p *Counts) Headers() []string {
	return compositionHeaders(p.symbols.alphabet)
}

// Entropy reports the Shannon entropy, in nats, of the symbol
// distribution over a caller-supplied alphabet.
type Entropy struct {
	Counts
	pseudo  float64
	entropy string
}

func NewEntropy(alphabet string) *Entropy {
	return &Entropy{Counts: *NewCounts(alphabet)}
}

func (p *Entropy) Add(other Properties) {
	o, ok := other.(*Entropy)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addCounts(&o.Counts)
}

func (p *Entropy) Update() {
	total := float64(p.symbols.total()) + float64(len(p.symbols.counts))*p.pseudo
	if total == 0 {
		p.entropy = NotApplicable
		return
	}
	freqs := make([]float64, len(p.symbols.counts))
	for i, v := range p.symbols.counts {
		freqs[i] = (float64(v) + p.pseudo) / total
	}
	p.entropy = ftoa(stat.Entropy(freqs))
}

func (p *Entropy) Fields() []string {
	p.Update()
	return []string{p.entropy}
}

func (p *Entropy) Headers() []string {
	return []string{"entropy"}
}
