// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sudlab/cgat/gencode"
)

// ReferenceUsage maps codons to their frequency in a reference set of
// coding sequences, for example a genome-wide codon usage table.
// Codons absent from the table have frequency zero.
type ReferenceUsage map[string]float64

// Bias measures the codon bias of a coding sequence: the entropy of
// its own within-family codon frequencies, and for every reference
// usage the message length, relative entropy and Kullback-Leibler
// divergence of the reference against the observed frequencies. All
// logarithms are natural.
//
// A reference assigning zero frequency to an observed codon leaves the
// message length and relative entropy undefined, and an observed
// distribution missing mass where the reference has some leaves the
// divergence undefined; the affected fields report NotApplicable
// rather than an infinity.
type Bias struct {
	Codons
	refs   []ReferenceUsage
	pseudo float64

	entropy string
	perRef  [][4]string // ml, relml, relentropy, kl
}

func NewBias(refs ...ReferenceUsage) *Bias { return &Bias{refs: refs} }

func (p *Bias) Add(other Properties) {
	o, ok := other.(*Bias)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addCodons(&o.Codons)
}

func (p *Bias) Update() {
	p.perRef = p.perRef[:0]
	if p.codons.total() == 0 {
		p.entropy = NotApplicable
		for range p.refs {
			p.perRef = append(p.perRef, [4]string{NotApplicable, NotApplicable, NotApplicable, NotApplicable})
		}
		return
	}
	freqs := gencode.Frequencies(p.codons.counts[:], p.pseudo)
	p.entropy = ftoa(stat.Entropy(freqs))
	for _, ref := range p.refs {
		usage := refVector(ref)
		ml, relml := p.messageLength(usage)
		p.perRef = append(p.perRef, [4]string{
			ml,
			relml,
			relEntropy(freqs, usage),
			divergence(usage, freqs),
		})
	}
}

// messageLength is the encoding cost of the observed codons under the
// reference usage, and the same per codon.
func (p *Bias) messageLength(usage []float64) (ml, relml string) {
	counts := make([]float64, len(p.codons.counts))
	for i, v := range p.codons.counts {
		counts[i] = float64(v)
	}
	if !supported(counts, usage) {
		return NotApplicable, NotApplicable
	}
	v := stat.CrossEntropy(counts, usage)
	return ftoa(v), ratio(v, float64(p.nCodons))
}

// relEntropy is the cross entropy of the observed frequencies against
// the reference usage.
func relEntropy(freqs, usage []float64) string {
	if !supported(freqs, usage) {
		return NotApplicable
	}
	return ftoa(stat.CrossEntropy(freqs, usage))
}

// divergence is the Kullback-Leibler divergence of the reference
// usage from the observed frequencies.
func divergence(usage, freqs []float64) string {
	if !supported(usage, freqs) {
		return NotApplicable
	}
	return ftoa(stat.KullbackLeibler(usage, freqs))
}

// supported reports whether q is nonzero everywhere p is, so that sums
// over p log q terms stay finite.
func supported(p, q []float64) bool {
	for i, v := range p {
		if v != 0 && q[i] == 0 {
			return false
		}
	}
	return true
}

func refVector(ref ReferenceUsage) []float64 {
	v := make([]float64, 64)
	for i, c := range gencode.Codons() {
		v[i] = ref[c]
	}
	return v
}

func (p *Bias) Fields() []string {
	p.Update()
	fields := make([]string, 0, 1+4*len(p.perRef))
	fields = append(fields, p.entropy)
	for _, r := range p.perRef {
		fields = append(fields, r[0], r[1], r[2], r[3])
	}
	return fields
}

func (p *Bias) Headers() []string {
	headers := make([]string, 0, 1+4*len(p.refs))
	headers = append(headers, "entropy")
	for i := range p.refs {
		n := itoa(i)
		headers = append(headers, "ml"+n, "relml"+n, "relentropy"+n, "kl"+n)
	}
	return headers
}
