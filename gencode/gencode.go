// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gencode provides the standard genetic code and lookup tables
// derived from it: the stop codon set, synonymous codon families and
// the per-position degeneracy of each codon.
package gencode

import "sort"

// Bases is the ordered nucleotide alphabet used for codon indexing.
const Bases = "ACGT"

// Stop is the amino acid symbol assigned to stop codons.
const Stop = '*'

var code = map[string]byte{
	"TTT": 'F', "TTC": 'F',
	"TTA": 'L', "TTG": 'L', "CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I',
	"ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "AGT": 'S', "AGC": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y',
	"TAA": '*', "TAG": '*', "TGA": '*',
	"CAT": 'H', "CAC": 'H',
	"CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N',
	"AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D',
	"GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C',
	"TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

var (
	codons     []string
	synonyms   map[byte][]string
	degeneracy map[string][3]int
)

func init() {
	codons = make([]string, 0, len(code))
	for c := range code {
		codons = append(codons, c)
	}
	sort.Strings(codons)

	synonyms = make(map[byte][]string)
	for _, c := range codons {
		aa := code[c]
		synonyms[aa] = append(synonyms[aa], c)
	}

	degeneracy = newDegeneracyTable()
}

// For each codon position, the foldness of its degeneracy is the
// number of alternative bases at that position that keep the encoded
// amino acid fixed, counting the base already there.
func newDegeneracyTable() map[string][3]int {
	ret := make(map[string][3]int)
	for _, c := range codons {
		aa := code[c]
		if aa == Stop {
			continue
		}
		var folds [3]int
		for pos := 0; pos < 3; pos++ {
			for i := 0; i < len(Bases); i++ {
				alt := c[:pos] + string(Bases[i]) + c[pos+1:]
				if code[alt] == aa {
					folds[pos]++
				}
			}
		}
		ret[c] = folds
	}
	return ret
}

// TranslateCodon returns the amino acid encoded by codon under the
// standard genetic code. Stop codons translate to Stop. The second
// return value is false for codons outside the code, for example
// codons containing ambiguity characters.
func TranslateCodon(codon string) (byte, bool) {
	aa, ok := code[codon]
	return aa, ok
}

// IsStopCodon reports whether codon is one of TAA, TAG or TGA.
func IsStopCodon(codon string) bool {
	return code[codon] == Stop
}

// Degeneracy returns the amino acid encoded by codon together with the
// fold degeneracy at each of its three positions. It returns ok=false
// for stop codons and for codons outside the standard code; such
// codons carry no degeneracy classification.
func Degeneracy(codon string) (aa byte, classes [3]int, ok bool) {
	classes, ok = degeneracy[codon]
	if !ok {
		return 0, classes, false
	}
	return code[codon], classes, true
}

// Codons returns the 64 codons of the standard code in lexical order
// over the ACGT alphabet. The returned slice must not be modified.
func Codons() []string {
	return codons
}

// Synonyms returns the codons encoding aa, in lexical order. Stop
// codons form the family of Stop.
func Synonyms(aa byte) []string {
	return synonyms[aa]
}

// CodonIndex returns the position of codon in Codons(), or -1 if the
// codon is not part of the standard code.
func CodonIndex(codon string) int {
	if len(codon) != 3 {
		return -1
	}
	idx := 0
	for i := 0; i < 3; i++ {
		b := baseIndex(codon[i])
		if b < 0 {
			return -1
		}
		idx = idx<<2 | b
	}
	return idx
}

func baseIndex(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return -1
}
