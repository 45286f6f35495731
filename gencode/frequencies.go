// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gencode

import "gonum.org/v1/gonum/floats"

// Frequencies converts codon counts into codon frequencies normalized
// within each synonymous family: the frequency of a codon is its share
// of the counts of all codons encoding the same amino acid. counts
// must be aligned with Codons(); the result is aligned the same way.
//
// pseudo is added to every count before normalization. With pseudo
// zero, the codons of a family with no observed counts all have
// frequency zero rather than dividing by zero.
func Frequencies(counts []int, pseudo float64) []float64 {
	if len(counts) != len(codons) {
		panic("gencode: counts not aligned with Codons")
	}
	freqs := make([]float64, len(counts))
	family := make([]float64, 0, 6)
	for _, members := range synonyms {
		family = family[:0]
		for _, c := range members {
			family = append(family, float64(counts[CodonIndex(c)])+pseudo)
		}
		total := floats.Sum(family)
		if total == 0 {
			continue
		}
		for i, c := range members {
			freqs[CodonIndex(c)] = family[i] / total
		}
	}
	return freqs
}
