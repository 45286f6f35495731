// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import "github.com/sudlab/cgat/gencode"

// The alphabet for per-position base counts. Positional counts are
// kept for every codon, including codons that carry no degeneracy
// classification, so they are not a sum of the per-class counts.
const positionLetters = "ACGTXN"

// Degeneracy counts degenerate sites in a coding nucleotide sequence.
//
// A site is n-fold degenerate when n of the four bases at that codon
// position leave the encoded amino acid unchanged. Counts are kept per
// codon position, per fold class and per base. Stop codons are tallied
// once each and contribute nothing to the class counts; codons outside
// the standard code are counted positionally but carry no
// classification.
type Degeneracy struct {
	Length
	positions [3]symbolCounter
	classes   [3][5][4]int // position × fold class × ACGT; class 0 unused
	stops     int

	sites   [5]int // sites per fold class, summed over positions
	sitesD3 int    // degenerate sites at the third position
	gc      int
	gc3     int
	dgc3    int
	gcD3    [5]int // GC at degenerate third positions, per class

	pGC, pGC3, pDGC3       string
	p2DGC3, p3DGC3, p4DGC3 string
}

func NewDegeneracy() *Degeneracy {
	p := &Degeneracy{}
	for i := range p.positions {
		p.positions[i] = newSymbolCounter(positionLetters)
	}
	return p
}

func (p *Degeneracy) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	if len(s)%3 != 0 {
		return MalformedSequenceError{Title: title, Length: len(s)}
	}
	p.loadLength(s, title, kind)
	for i := range p.positions {
		p.positions[i].reset()
	}
	p.classes = [3][5][4]int{}
	p.stops = 0
	for i := 0; i+3 <= len(s); i += 3 {
		codon := string(s[i : i+3])
		for x := 0; x < 3; x++ {
			p.positions[x].tallySymbol(codon[x])
		}
		if gencode.IsStopCodon(codon) {
			p.stops++
			continue
		}
		_, folds, ok := gencode.Degeneracy(codon)
		if !ok {
			continue
		}
		for x := 0; x < 3; x++ {
			p.classes[x][folds[x]][nucIndex(codon[x])]++
		}
	}
	return nil
}

func (p *Degeneracy) Add(other Properties) {
	o, ok := other.(*Degeneracy)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addLength(&o.Length)
	for x := range p.positions {
		p.positions[x].add(&o.positions[x])
	}
	for x := range p.classes {
		for d := range p.classes[x] {
			for b := range p.classes[x][d] {
				p.classes[x][d][b] += o.classes[x][d][b]
			}
		}
	}
	p.stops += o.stops
}

func (p *Degeneracy) Update() {
	p.gc = 0
	for x := 0; x < 3; x++ {
		p.gc += p.positions[x].count('C') + p.positions[x].count('G')
	}
	for d := 1; d <= 4; d++ {
		p.sites[d] = 0
		for x := 0; x < 3; x++ {
			p.sites[d] += sumBases(p.classes[x][d])
		}
		p.gcD3[d] = p.classes[2][d][nucIndex('C')] + p.classes[2][d][nucIndex('G')]
	}
	p.gc3 = p.positions[2].count('C') + p.positions[2].count('G')
	p.sitesD3 = sumBases(p.classes[2][2]) + sumBases(p.classes[2][3]) + sumBases(p.classes[2][4])
	p.dgc3 = p.gcD3[2] + p.gcD3[3] + p.gcD3[4]

	p.pGC = ratio(float64(p.gc), float64(p.length))
	p.pGC3 = ratio(float64(p.gc3), float64(p.nCodons))
	p.pDGC3 = ratio(float64(p.dgc3), float64(p.sitesD3))
	p.p2DGC3 = ratio(float64(p.gcD3[2]), float64(p.sites[2]))
	p.p3DGC3 = ratio(float64(p.gcD3[3]), float64(p.sites[3]))
	p.p4DGC3 = ratio(float64(p.gcD3[4]), float64(p.sites[4]))
}

func sumBases(counts [4]int) int {
	return counts[0] + counts[1] + counts[2] + counts[3]
}

func (p *Degeneracy) Fields() []string {
	p.Update()
	fields := p.Length.Fields()
	return append(fields,
		itoa(p.stops),
		itoa(p.sites[1]),
		itoa(p.sites[2]),
		itoa(p.sites[3]),
		itoa(p.sites[4]),
		itoa(p.sitesD3),
		itoa(p.gc),
		itoa(p.gc3),
		itoa(p.dgc3),
		itoa(p.gcD3[2]),
		itoa(p.gcD3[3]),
		itoa(p.gcD3[4]),
		p.pGC,
		p.pGC3,
		p.pDGC3,
		p.p2DGC3,
		p.p3DGC3,
		p.p4DGC3,
	)
}

func (p *Degeneracy) Headers() []string {
	headers := p.Length.Headers()
	return append(headers,
		"nstops",
		"nsites1d",
		"nsites2d",
		"nsites3d",
		"nsites4d",
		"nsitesd3",
		"ngc",
		"ngc3",
		"ndgc3",
		"n2dgc3",
		"n3dgc3",
		"n4dgc3",
		"pgc",
		"pgc3",
		"pdgc3",
		"p2dgc3",
		"p3dgc3",
		"p4dgc3",
	)
}
