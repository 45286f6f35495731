// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import (
	"strconv"
	"strings"

	"github.com/sudlab/cgat/gencode"
)

// Codons accumulates in-frame codon counts and their frequencies over
// all counted codons.
type Codons struct {
	Length
	codons codonCounter
}

func NewCodons() *Codons { return &Codons{} }

func (p *Codons) Load(seq []byte, title string, kind Kind) error {
	_, err := p.loadCodons(seq, title, kind)
	return err
}

func (p *Codons) loadCodons(seq []byte, title string, kind Kind) ([]byte, error) {
	s := clean(seq)
	if len(s)%3 != 0 {
		return nil, MalformedSequenceError{Title: title, Length: len(s)}
	}
	p.loadLength(s, title, kind)
	p.codons.reset()
	p.codons.tally(s)
	return s, nil
}

func (p *Codons) Add(other Properties) {
	o, ok := other.(*Codons)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addCodons(o)
}

func (p *Codons) addCodons(o *Codons) {
	p.addLength(&o.Length)
	p.codons.add(&o.codons)
}

func (p *Codons) Update() {}

func (p *Codons) Fields() []string {
	p.Update()
	fields := p.Length.Fields()
	for _, v := range p.codons.counts {
		fields = append(fields, itoa(v))
	}
	t := float64(p.codons.total())
	for _, v := range p.codons.counts {
		fields = append(fields, ratio(float64(v), t))
	}
	return fields
}

func (p *Codons) Headers() []string {
	headers := p.Length.Headers()
	for _, c := range gencode.Codons() {
		headers = append(headers, "n"+c)
	}
	for _, c := range gencode.Codons() {
		headers = append(headers, "p"+c)
	}
	return headers
}

// CodonUsage reports codon frequencies normalized within each
// synonymous family.
type CodonUsage struct {
	Codons
	freqs []float64
}

func NewCodonUsage() *CodonUsage { return &CodonUsage{} }

func (p *CodonUsage) Add(other Properties) {
	o, ok := other.(*CodonUsage)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addCodons(&o.Codons)
}

func (p *CodonUsage) Update() {
	p.freqs = gencode.Frequencies(p.codons.counts[:], 0)
}

func (p *CodonUsage) Fields() []string {
	p.Update()
	fields := make([]string, 0, len(p.freqs))
	for _, f := range p.freqs {
		fields = append(fields, ftoa(f))
	}
	return fields
}

func (p *CodonUsage) Headers() []string {
	headers := make([]string, 0, 64)
	for _, c := range gencode.Codons() {
		headers = append(headers, "r"+c)
	}
	return headers
}

// CodonTranslator reports the loaded sequence with every codon
// replaced by the percentage frequency of that codon within its
// synonymous family, joined into a single comma separated field.
type CodonTranslator struct {
	CodonUsage
	sequence []byte
}

func NewCodonTranslator() *CodonTranslator { return &CodonTranslator{} }

func (p *CodonTranslator) Load(seq []byte, title string, kind Kind) error {
	s, err := p.loadCodons(seq, title, kind)
	if err != nil {
		return err
	}
	p.sequence = s
	return nil
}

func (p *CodonTranslator) Add(other Properties) {
	o, ok := other.(*CodonTranslator)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addCodons(&o.Codons)
	p.sequence = append(p.sequence, o.sequence...)
}

func (p *CodonTranslator) Fields() []string {
	p.Update()
	percs := make([]string, 0, len(p.sequence)/3)
	for i := 0; i+3 <= len(p.sequence); i += 3 {
		var f float64
		if idx := gencode.CodonIndex(string(p.sequence[i : i+3])); idx >= 0 {
			f = p.freqs[idx]
		}
		percs = append(percs, strconv.Itoa(int(f*100)))
	}
	return []string{strings.Join(percs, ",")}
}

func (p *CodonTranslator) Headers() []string {
	return []string{"tsequence"}
}
