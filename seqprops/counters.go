// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import "github.com/sudlab/cgat/gencode"

const nucOrder = "ACGT"

func nucIndex(b byte) int {
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

var dinucOrder = func() []string {
	ds := make([]string, 0, 16)
	for i := 0; i < len(nucOrder); i++ {
		for j := 0; j < len(nucOrder); j++ {
			ds = append(ds, string([]byte{nucOrder[i], nucOrder[j]}))
		}
	}
	return ds
}()

// symbolCounter tallies symbols over a fixed ordered alphabet, with a
// separate bucket for symbols outside it.
type symbolCounter struct {
	alphabet string
	index    [256]int16
	counts   []int
	other    int
}

func newSymbolCounter(alphabet string) symbolCounter {
	c := symbolCounter{alphabet: alphabet, counts: make([]int, len(alphabet))}
	for i := range c.index {
		c.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c.index[alphabet[i]] = int16(i)
	}
	return c
}

func (c *symbolCounter) reset() {
	for i := range c.counts {
		c.counts[i] = 0
	}
	c.other = 0
}

func (c *symbolCounter) tallySymbol(b byte) {
	if i := c.index[b]; i >= 0 {
		c.counts[i]++
	} else {
		c.other++
	}
}

func (c *symbolCounter) tally(s []byte) {
	for _, b := range s {
		c.tallySymbol(b)
	}
}

func (c *symbolCounter) count(b byte) int {
	if i := c.index[b]; i >= 0 {
		return c.counts[i]
	}
	return 0
}

// total is the number of symbols tallied into the fixed alphabet,
// excluding the other bucket.
func (c *symbolCounter) total() int {
	t := 0
	for _, v := range c.counts {
		t += v
	}
	return t
}

func (c *symbolCounter) add(o *symbolCounter) {
	if c.alphabet != o.alphabet {
		panic("seqprops: cannot add counters over different alphabets")
	}
	for i, v := range o.counts {
		c.counts[i] += v
	}
	c.other += o.other
}

// compositionFields emits the shared count/fraction layout: the other
// bucket, per-symbol counts, then per-symbol fractions of the fixed
// alphabet total, or NotApplicable when nothing was tallied.
func compositionFields(c *symbolCounter) []string {
	fields := make([]string, 0, 1+2*len(c.counts))
	fields = append(fields, itoa(c.other))
	t := c.total()
	for _, v := range c.counts {
		fields = append(fields, itoa(v))
	}
	for _, v := range c.counts {
		fields = append(fields, ratio(float64(v), float64(t)))
	}
	return fields
}

func compositionHeaders(alphabet string) []string {
	headers := make([]string, 0, 1+2*len(alphabet))
	headers = append(headers, "nUnk")
	for i := 0; i < len(alphabet); i++ {
		headers = append(headers, "n"+string(alphabet[i]))
	}
	for i := 0; i < len(alphabet); i++ {
		headers = append(headers, "p"+string(alphabet[i]))
	}
	return headers
}

// dinucCounter tallies overlapping dinucleotides over ACGT.
type dinucCounter struct {
	counts [16]int
	other  int
}

func (c *dinucCounter) reset() {
	c.counts = [16]int{}
	c.other = 0
}

func (c *dinucCounter) tally(s []byte) {
	for i := 1; i < len(s); i++ {
		a, b := nucIndex(s[i-1]), nucIndex(s[i])
		if a < 0 || b < 0 {
			c.other++
			continue
		}
		c.counts[a*4+b]++
	}
}

func (c *dinucCounter) count(dn string) int {
	a, b := nucIndex(dn[0]), nucIndex(dn[1])
	if a < 0 || b < 0 {
		return 0
	}
	return c.counts[a*4+b]
}

func (c *dinucCounter) add(o *dinucCounter) {
	for i, v := range o.counts {
		c.counts[i] += v
	}
	c.other += o.other
}

// codonCounter tallies in-frame codons of the standard code, with an
// other bucket for codons containing non-ACGT characters.
type codonCounter struct {
	counts [64]int
	other  int
}

func (c *codonCounter) reset() {
	c.counts = [64]int{}
	c.other = 0
}

// tally assumes len(s) is a multiple of three; codon-aware
// accumulators validate that before calling.
func (c *codonCounter) tally(s []byte) {
	for i := 0; i+3 <= len(s); i += 3 {
		idx := gencode.CodonIndex(string(s[i : i+3]))
		if idx < 0 {
			c.other++
			continue
		}
		c.counts[idx]++
	}
}

func (c *codonCounter) total() int {
	t := 0
	for _, v := range c.counts {
		t += v
	}
	return t
}

func (c *codonCounter) add(o *codonCounter) {
	for i, v := range o.counts {
		c.counts[i] += v
	}
	c.other += o.other
}
