// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import (
	"math"

	check "gopkg.in/check.v1"
)

func (s *S) TestBiasSelfEntropy(c *check.C) {
	// AAA and AAG observed equally: the lysine family contributes
	// ln 2, every other family nothing.
	p := NewBias()
	mustLoad(c, p, "AAAAAG")
	c.Check(field(c, p, "entropy"), check.Equals, ftoa(math.Log(2)))
}

func (s *S) TestBiasAgainstReference(c *check.C) {
	ref := ReferenceUsage{"AAA": 0.5, "AAG": 0.5}
	p := NewBias(ref)
	mustLoad(c, p, "AAAAAG")

	// Two codons, each encoded at cost -ln 0.5.
	c.Check(field(c, p, "ml0"), check.Equals, ftoa(2*math.Log(2)))
	c.Check(field(c, p, "relml0"), check.Equals, ftoa(math.Log(2)))
	c.Check(field(c, p, "relentropy0"), check.Equals, ftoa(math.Log(2)))
	// Reference and observed frequencies coincide.
	c.Check(field(c, p, "kl0"), check.Equals, "0")
}

func (s *S) TestBiasSkewedReference(c *check.C) {
	ref := ReferenceUsage{"AAA": 0.75, "AAG": 0.25}
	p := NewBias(ref)
	mustLoad(c, p, "AAAAAG")

	// KL(ref || observed) = 0.75 ln(0.75/0.5) + 0.25 ln(0.25/0.5).
	want := 0.75*math.Log(0.75/0.5) + 0.25*math.Log(0.25/0.5)
	c.Check(field(c, p, "kl0"), check.Equals, ftoa(want))
}

func (s *S) TestBiasZeroReferenceFrequency(c *check.C) {
	// The reference assigns no mass to observed AAG: message length
	// and relative entropy are undefined, while the divergence of the
	// reference against the observed distribution is still finite.
	ref := ReferenceUsage{"AAA": 1}
	p := NewBias(ref)
	mustLoad(c, p, "AAAAAG")

	c.Check(field(c, p, "ml0"), check.Equals, NotApplicable)
	c.Check(field(c, p, "relml0"), check.Equals, NotApplicable)
	c.Check(field(c, p, "relentropy0"), check.Equals, NotApplicable)
	c.Check(field(c, p, "kl0"), check.Equals, ftoa(math.Log(1/0.5)))
}

func (s *S) TestBiasUnobservedReferenceMass(c *check.C) {
	// The reference has mass on a family the sequence never uses, so
	// the divergence against the observed distribution is undefined.
	ref := ReferenceUsage{"AAA": 0.5, "GGG": 0.5}
	p := NewBias(ref)
	mustLoad(c, p, "AAAAAA")

	c.Check(field(c, p, "kl0"), check.Equals, NotApplicable)
}

func (s *S) TestBiasEmpty(c *check.C) {
	p := NewBias(ReferenceUsage{"AAA": 1})
	c.Assert(p.Load(nil, "empty", Nucleotide), check.IsNil)
	for _, h := range []string{"entropy", "ml0", "relml0", "relentropy0", "kl0"} {
		c.Check(field(c, p, h), check.Equals, NotApplicable, check.Commentf("%s", h))
	}
}

func (s *S) TestBiasMergeRecomputes(c *check.C) {
	ref := ReferenceUsage{"AAA": 0.5, "AAG": 0.5}

	merged := NewBias(ref)
	mustLoad(c, merged, "AAAAAA")
	other := NewBias(ref)
	mustLoad(c, other, "AAGAAG")
	merged.Add(other)

	whole := NewBias(ref)
	mustLoad(c, whole, "AAAAAAAAGAAG")

	c.Check(merged.Fields(), check.DeepEquals, whole.Fields())
}
