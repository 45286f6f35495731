// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqprops computes composition statistics of nucleotide and
// amino acid sequences: base, dinucleotide, codon and amino acid
// counts, CpG density and observed/expected, codon degeneracy and
// codon bias against reference usage tables.
//
// Statistics are gathered by accumulators sharing the Properties
// contract. An accumulator is loaded with one sequence at a time;
// accumulators of the same kind can be merged with Add to build
// aggregates over many sequences. Derived ratio and entropy fields are
// recomputed from the raw tallies by Update, never summed, so a merged
// aggregate reports the statistics of the pooled counts.
//
// Accumulators are not safe for concurrent mutation. To process many
// sequences in parallel, load one accumulator per worker and reduce
// the results with Add afterwards.
package seqprops

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind declares the alphabet of a loaded sequence.
type Kind int

const (
	Nucleotide Kind = iota
	AminoAcid
)

func (k Kind) String() string {
	if k == AminoAcid {
		return "aa"
	}
	return "na"
}

// Alphabets, in field order: the unambiguous DNA alphabet plus N, and
// the extended IUPAC protein alphabet.
const (
	dnaLetters     = "ACGTN"
	proteinLetters = "ACDEFGHIKLMNPQRSTVWYBXZJUO"
)

// Properties is the contract shared by all accumulators.
//
// Load populates the accumulator from exactly one sequence, replacing
// any previous state. Add merges the raw tallies of another
// accumulator of the same concrete type into the receiver; merging is
// associative and commutative, and passing any other type is a
// programming error that panics. Update recomputes every derived field
// from the raw tallies; it is idempotent and never alters the tallies.
// Fields and Headers return aligned value and column name slices of
// equal length; Fields runs Update first, so a bare Load followed by
// Fields reports correct derived values.
type Properties interface {
	Load(seq []byte, title string, kind Kind) error
	Add(other Properties)
	Update()
	Fields() []string
	Headers() []string
}

// MalformedSequenceError is returned by codon-aware accumulators given
// a sequence whose length is not a multiple of three. The failed Load
// leaves the accumulator unchanged, so a caller batching many
// sequences can skip the record and keep the aggregate intact.
type MalformedSequenceError struct {
	Title  string
	Length int
}

func (e MalformedSequenceError) Error() string {
	return fmt.Sprintf("seqprops: sequence length is not a multiple of 3 (length=%d) for sequence %s", e.Length, e.Title)
}

// NotApplicable is emitted in place of a statistic whose denominator
// is zero, so that reporting can proceed across heterogeneous batches.
const NotApplicable = "na"

// clean strips space, dash and dot characters and upper-cases the
// rest, so loaders accept alignment rows and soft-masked residues.
func clean(seq []byte) []byte {
	out := make([]byte, 0, len(seq))
	for _, b := range seq {
		switch b {
		case ' ', '-', '.':
			continue
		}
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		out = append(out, b)
	}
	return out
}

func itoa(v int) string { return strconv.Itoa(v) }

// Frequencies and other ratios are reported with six significant
// digits.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

func ratio(num, den float64) string {
	if den == 0 {
		return NotApplicable
	}
	return ftoa(num / den)
}

func mismatch(dst, src Properties) string {
	return fmt.Sprintf("seqprops: cannot add %T to %T", src, dst)
}

var factories = map[string]func() Properties{
	"length":           func() Properties { return NewLength() },
	"sequence":         func() Properties { return NewSequence() },
	"hid":              func() Properties { return NewHid() },
	"na":               func() Properties { return NewNA() },
	"dn":               func() Properties { return NewDN() },
	"cpg":              func() Properties { return NewCpG() },
	"gaps":             func() Properties { return NewGaps("") },
	"degeneracy":       func() Properties { return NewDegeneracy() },
	"aa":               func() Properties { return NewAA() },
	"aminos":           func() Properties { return NewAminoAcids() },
	"codons":           func() Properties { return NewCodons() },
	"codon-usage":      func() Properties { return NewCodonUsage() },
	"codon-translator": func() Properties { return NewCodonTranslator() },
	"bias":             func() Properties { return NewBias() },
}

// New returns a fresh accumulator for the named property set. Counts
// and Entropy take a caller-supplied alphabet and Bias takes reference
// usage tables; they are constructed directly when those inputs
// matter.
func New(name string) (Properties, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("seqprops: unknown property set %q", name)
	}
	return f(), nil
}

// Names returns the property set names known to New, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var (
	_ Properties = (*Length)(nil)
	_ Properties = (*Sequence)(nil)
	_ Properties = (*Hid)(nil)
	_ Properties = (*NA)(nil)
	_ Properties = (*DN)(nil)
	_ Properties = (*CpG)(nil)
	_ Properties = (*Gaps)(nil)
	_ Properties = (*Degeneracy)(nil)
	_ Properties = (*AA)(nil)
	_ Properties = (*AminoAcids)(nil)
	_ Properties = (*Codons)(nil)
	_ Properties = (*CodonUsage)(nil)
	_ Properties = (*CodonTranslator)(nil)
	_ Properties = (*Bias)(nil)
	_ Properties = (*Counts)(nil)
	_ Properties = (*Entropy)(nil)
)
