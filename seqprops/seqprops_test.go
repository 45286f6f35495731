// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import (
	"math"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func fieldIndex(c *check.C, headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	c.Fatalf("no header %q in %v", name, headers)
	panic("unreachable")
}

func field(c *check.C, p Properties, name string) string {
	return p.Fields()[fieldIndex(c, p.Headers(), name)]
}

func mustLoad(c *check.C, p Properties, seq string) {
	c.Assert(p.Load([]byte(seq), "test", Nucleotide), check.IsNil)
}

// Tests

func (s *S) TestRegistry(c *check.C) {
	for _, name := range Names() {
		p, err := New(name)
		c.Assert(err, check.IsNil)
		c.Check(p, check.NotNil, check.Commentf("property set %s", name))
	}
	_, err := New("bogus")
	c.Check(err, check.ErrorMatches, `seqprops: unknown property set "bogus"`)
}

func (s *S) TestHeadersMatchFields(c *check.C) {
	build := func() []Properties {
		var ps []Properties
		for _, name := range Names() {
			p, err := New(name)
			c.Assert(err, check.IsNil)
			ps = append(ps, p)
		}
		ps = append(ps, NewCounts(dnaLetters), NewEntropy(proteinLetters), NewBias(ReferenceUsage{"AAA": 1}))
		return ps
	}

	// Before any load, after a zero-length load and after a real load.
	for _, p := range build() {
		c.Check(p.Fields(), check.HasLen, len(p.Headers()), check.Commentf("%T unloaded", p))
	}
	for _, p := range build() {
		c.Assert(p.Load(nil, "empty", Nucleotide), check.IsNil)
		c.Check(p.Fields(), check.HasLen, len(p.Headers()), check.Commentf("%T empty", p))
	}
	for _, p := range build() {
		mustLoad(c, p, "ATGGCATAA")
		c.Check(p.Fields(), check.HasLen, len(p.Headers()), check.Commentf("%T loaded", p))
	}
}

func (s *S) TestLength(c *check.C) {
	p := NewLength()
	mustLoad(c, p, "at gc-at.")
	c.Check(field(c, p, "length"), check.Equals, "6")
	c.Check(field(c, p, "ncodons"), check.Equals, "2")

	aa := NewLength()
	c.Assert(aa.Load([]byte("MKV"), "prot", AminoAcid), check.IsNil)
	c.Check(field(c, aa, "ncodons"), check.Equals, "0")
}

func (s *S) TestNAComposition(c *check.C) {
	p := NewNA()
	mustLoad(c, p, "ACGTNR")
	c.Check(field(c, p, "nA"), check.Equals, "1")
	c.Check(field(c, p, "nN"), check.Equals, "1")
	c.Check(field(c, p, "nUnk"), check.Equals, "1")
	c.Check(field(c, p, "nGC"), check.Equals, "2")
	c.Check(field(c, p, "nAT"), check.Equals, "2")
	c.Check(field(c, p, "pGC"), check.Equals, "0.5")
	c.Check(field(c, p, "pA"), check.Equals, "0.2")
}

func (s *S) TestNAAllN(c *check.C) {
	p := NewNA()
	mustLoad(c, p, "NNNNNN")
	c.Check(field(c, p, "nGC"), check.Equals, "0")
	c.Check(field(c, p, "nAT"), check.Equals, "0")
	c.Check(field(c, p, "pGC"), check.Equals, NotApplicable)
	c.Check(field(c, p, "pAT"), check.Equals, NotApplicable)
}

func (s *S) TestNAOverwriteOnReload(c *check.C) {
	p := NewNA()
	mustLoad(c, p, "GGGGCCCC")
	mustLoad(c, p, "AT")
	c.Check(field(c, p, "nGC"), check.Equals, "0")
	c.Check(field(c, p, "nAT"), check.Equals, "2")
	c.Check(field(c, p, "length"), check.Equals, "2")
}

func (s *S) TestDinucleotides(c *check.C) {
	p := NewDN()
	mustLoad(c, p, "CGCGCG")
	c.Check(field(c, p, "CG"), check.Equals, "3")
	c.Check(field(c, p, "GC"), check.Equals, "2")
	c.Check(field(c, p, "AA"), check.Equals, "0")

	p = NewDN()
	mustLoad(c, p, "ANT")
	c.Check(field(c, p, "nUnkDinucs"), check.Equals, "2")
}

func (s *S) TestCpGWorkedExample(c *check.C) {
	// CGCGCG: 3 overlapping CG dinucleotides, C=G=3, length 6.
	// Density 3/(6/2) = 1; ObsExp 3/((3*3)/6) = 2.
	p := NewCpG()
	mustLoad(c, p, "CGCGCG")
	c.Check(field(c, p, "CpG_density"), check.Equals, "1")
	c.Check(field(c, p, "CpG_ObsExp"), check.Equals, "2")
}

func (s *S) TestCpGEmpty(c *check.C) {
	p := NewCpG()
	c.Assert(p.Load(nil, "empty", Nucleotide), check.IsNil)
	c.Check(field(c, p, "CpG_density"), check.Equals, "0")
	c.Check(field(c, p, "CpG_ObsExp"), check.Equals, "0")
}

func (s *S) TestCodonTotals(c *check.C) {
	p := NewCodons()
	mustLoad(c, p, "ATGGCATAAACGACG")
	c.Check(p.codons.total(), check.Equals, 5)
	c.Check(field(c, p, "nACG"), check.Equals, "2")
	c.Check(field(c, p, "pACG"), check.Equals, "0.4")
}

func (s *S) TestMalformedSequence(c *check.C) {
	for _, f := range []func() Properties{
		func() Properties { return NewCodons() },
		func() Properties { return NewCodonUsage() },
		func() Properties { return NewCodonTranslator() },
		func() Properties { return NewBias() },
		func() Properties { return NewDegeneracy() },
		func() Properties { return NewAA() },
	} {
		fresh, loaded := f(), f()
		err := loaded.Load([]byte("ATGGCAT"), "short", Nucleotide)
		c.Assert(err, check.NotNil, check.Commentf("%T", loaded))
		_, ok := err.(MalformedSequenceError)
		c.Check(ok, check.Equals, true, check.Commentf("%T", loaded))
		c.Check(err, check.ErrorMatches, ".*not a multiple of 3.*short.*")
		// No partial state: the failed load leaves the zero fields.
		c.Check(loaded.Fields(), check.DeepEquals, fresh.Fields(), check.Commentf("%T", loaded))
	}
}

func (s *S) TestMalformedLeavesPreviousState(c *check.C) {
	p := NewCodons()
	mustLoad(c, p, "ATGTAA")
	before := p.Fields()
	err := p.Load([]byte("ATGGCAT"), "short", Nucleotide)
	c.Assert(err, check.NotNil)
	c.Check(p.Fields(), check.DeepEquals, before)
}

func (s *S) TestMergeAssociativeCommutative(c *check.C) {
	load := func(seq string) *NA {
		p := NewNA()
		mustLoad(c, p, seq)
		return p
	}

	// merge(merge(A,B),C)
	left := load("ACGTAC")
	left.Add(load("GGGCCC"))
	left.Add(load("ATATNN"))

	// merge(A, merge(B,C))
	bc := load("GGGCCC")
	bc.Add(load("ATATNN"))
	right := load("ACGTAC")
	right.Add(bc)

	// merge(C, merge(B,A))
	ba := load("GGGCCC")
	ba.Add(load("ACGTAC"))
	comm := load("ATATNN")
	comm.Add(ba)

	c.Check(left.Fields(), check.DeepEquals, right.Fields())
	c.Check(left.Fields(), check.DeepEquals, comm.Fields())
}

func (s *S) TestMergeEqualsConcatenation(c *check.C) {
	s1, s2 := "ATGGCATAA", "ACGACGTTT"

	whole := NewCodons()
	mustLoad(c, whole, s1+s2)

	merged := NewCodons()
	mustLoad(c, merged, s1)
	part := NewCodons()
	mustLoad(c, part, s2)
	merged.Add(part)

	c.Check(merged.Fields(), check.DeepEquals, whole.Fields())

	wholeNA := NewNA()
	mustLoad(c, wholeNA, s1+s2)
	mergedNA := NewNA()
	mustLoad(c, mergedNA, s1)
	partNA := NewNA()
	mustLoad(c, partNA, s2)
	mergedNA.Add(partNA)

	c.Check(mergedNA.Fields(), check.DeepEquals, wholeNA.Fields())
}

func (s *S) TestAddMismatchPanics(c *check.C) {
	p := NewNA()
	c.Check(func() { p.Add(NewDN()) }, check.PanicMatches, `seqprops: cannot add \*seqprops.DN to \*seqprops.NA`)
}

func (s *S) TestDegeneracyStopCodons(c *check.C) {
	// ATG TAA GGA: one stop, two classified codons.
	p := NewDegeneracy()
	mustLoad(c, p, "ATGTAAGGA")
	c.Check(field(c, p, "nstops"), check.Equals, "1")
	// ATG contributes three one-fold sites, GGA two more plus one
	// four-fold site; the stop codon contributes nothing.
	c.Check(field(c, p, "nsites1d"), check.Equals, "5")
	c.Check(field(c, p, "nsites2d"), check.Equals, "0")
	c.Check(field(c, p, "nsites4d"), check.Equals, "1")
}

func (s *S) TestDegeneracyGC3(c *check.C) {
	// GGA GGC: both glycine, third position four-fold.
	p := NewDegeneracy()
	mustLoad(c, p, "GGAGGC")
	c.Check(field(c, p, "ngc"), check.Equals, "5")
	c.Check(field(c, p, "ngc3"), check.Equals, "1")
	c.Check(field(c, p, "nsites4d"), check.Equals, "2")
	c.Check(field(c, p, "n4dgc3"), check.Equals, "1")
	c.Check(field(c, p, "p4dgc3"), check.Equals, "0.5")
	c.Check(field(c, p, "pgc"), check.Equals, ftoa(5.0/6.0))
	c.Check(field(c, p, "p2dgc3"), check.Equals, NotApplicable)
}

func (s *S) TestDegeneracyUnknownCodonSkipped(c *check.C) {
	p := NewDegeneracy()
	mustLoad(c, p, "ANNGGA")
	// The ambiguous codon is counted positionally but classified
	// nowhere.
	c.Check(field(c, p, "nstops"), check.Equals, "0")
	c.Check(field(c, p, "nsites1d"), check.Equals, "2")
	c.Check(field(c, p, "nsites4d"), check.Equals, "1")
	c.Check(p.positions[0].count('A'), check.Equals, 1)
	c.Check(p.positions[1].count('N'), check.Equals, 1)
}

func (s *S) TestAATranslation(c *check.C) {
	p := NewAA()
	mustLoad(c, p, "ATGGGATAA")
	c.Check(field(c, p, "nM"), check.Equals, "1")
	c.Check(field(c, p, "nG"), check.Equals, "1")
	// The stop codon has no amino acid letter.
	c.Check(field(c, p, "nUnk"), check.Equals, "1")
	c.Check(field(c, p, "pM"), check.Equals, "0.5")

	p = NewAA()
	mustLoad(c, p, "ANNGGA")
	c.Check(field(c, p, "nX"), check.Equals, "1")
}

func (s *S) TestAminoAcids(c *check.C) {
	p := NewAminoAcids()
	c.Assert(p.Load([]byte("MK-VU?"), "prot", AminoAcid), check.IsNil)
	c.Check(field(c, p, "nM"), check.Equals, "1")
	c.Check(field(c, p, "nU"), check.Equals, "1")
	c.Check(field(c, p, "nUnk"), check.Equals, "1")
	c.Check(field(c, p, "pK"), check.Equals, "0.25")
}

func (s *S) TestCodonUsage(c *check.C) {
	p := NewCodonUsage()
	mustLoad(c, p, "AAAAAAAAG")
	c.Check(field(c, p, "rAAA"), check.Equals, ftoa(2.0/3.0))
	c.Check(field(c, p, "rAAG"), check.Equals, ftoa(1.0/3.0))
	c.Check(field(c, p, "rGGG"), check.Equals, "0")
}

func (s *S) TestCodonTranslator(c *check.C) {
	p := NewCodonTranslator()
	mustLoad(c, p, "AAAAAAAAG")
	// AAA is 2/3 of its family, AAG 1/3.
	c.Check(field(c, p, "tsequence"), check.Equals, "66,66,33")
}

func (s *S) TestGaps(c *check.C) {
	p := NewGaps("")
	mustLoad(c, p, "NNACGTNNNACGT")
	c.Check(field(c, p, "ngaps"), check.Equals, "5")
	c.Check(field(c, p, "ngap_regions"), check.Equals, "2")
	c.Check(field(c, p, "nseq_regions"), check.Equals, "2")

	p = NewGaps("")
	c.Assert(p.Load(nil, "empty", Nucleotide), check.IsNil)
	c.Check(field(c, p, "ngaps"), check.Equals, "0")
}

func (s *S) TestSequenceAndHid(c *check.C) {
	p := NewSequence()
	mustLoad(c, p, "acg-t")
	c.Check(field(c, p, "sequence"), check.Equals, "ACGT")

	q := NewSequence()
	mustLoad(c, q, "GG")
	p.Add(q)
	c.Check(field(c, p, "sequence"), check.Equals, "ACGTGG")

	h := NewHid()
	mustLoad(c, h, "ACGT")
	hid := field(c, h, "hid")
	c.Check(hid, check.HasLen, 22)
	h2 := NewHid()
	mustLoad(c, h2, "ACGT")
	c.Check(field(c, h2, "hid"), check.Equals, hid)
	h3 := NewHid()
	mustLoad(c, h3, "ACGA")
	c.Check(field(c, h3, "hid"), check.Not(check.Equals), hid)
}

func (s *S) TestEntropy(c *check.C) {
	p := NewEntropy("ACGT")
	mustLoad(c, p, "ACGT")
	c.Check(field(c, p, "entropy"), check.Equals, ftoa(math.Log(4)))

	p = NewEntropy("ACGT")
	mustLoad(c, p, "AAAA")
	c.Check(field(c, p, "entropy"), check.Equals, "0")

	p = NewEntropy("ACGT")
	c.Assert(p.Load(nil, "empty", Nucleotide), check.IsNil)
	c.Check(field(c, p, "entropy"), check.Equals, NotApplicable)
}

func (s *S) TestUpdateIdempotent(c *check.C) {
	p := NewDegeneracy()
	mustLoad(c, p, "ATGTAAGGA")
	p.Update()
	first := p.Fields()
	p.Update()
	p.Update()
	c.Check(p.Fields(), check.DeepEquals, first)
}

func (s *S) TestLoadLinear(c *check.C) {
	p := NewNA()
	sq := linear.NewSeq("chrTest", alphabet.BytesToLetters([]byte("cgcgcg")), alphabet.DNA)
	c.Assert(LoadLinear(p, sq), check.IsNil)
	c.Check(p.Title(), check.Equals, "chrTest")
	c.Check(p.Len(), check.Equals, 6)
	c.Check(field(c, p, "ncodons"), check.Equals, "2")

	aa := NewAminoAcids()
	ps := linear.NewSeq("prot", alphabet.BytesToLetters([]byte("MKV")), alphabet.Protein)
	c.Assert(LoadLinear(aa, ps), check.IsNil)
	c.Check(field(c, aa, "nM"), check.Equals, "1")
}
