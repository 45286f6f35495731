// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import (
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// LoadLinear loads a bíogo linear sequence into p, so accumulators can
// be fed directly from a seqio scanner. The sequence kind is derived
// from the sequence alphabet: alphabet.Protein maps to AminoAcid,
// anything else to Nucleotide.
func LoadLinear(p Properties, s *linear.Seq) error {
	kind := Nucleotide
	if s.Alphabet() == alphabet.Protein {
		kind = AminoAcid
	}
	return p.Load(alphabet.LettersToBytes(s.Seq), s.Name(), kind)
}
