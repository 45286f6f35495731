// Copyright ©2026 The cgat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqprops

import (
	"crypto/md5"
	"encoding/base64"
	"strings"
)

// Sequence retains the loaded sequence itself; merging concatenates.
type Sequence struct {
	base
	sequence []byte
}

func NewSequence() *Sequence { return &Sequence{} }

func (p *Sequence) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	p.loadClean(s, title, kind)
	p.sequence = s
	return nil
}

func (p *Sequence) Add(other Properties) {
	o, ok := other.(*Sequence)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addBase(&o.base)
	p.sequence = append(p.sequence, o.sequence...)
}

func (p *Sequence) Update() {}

func (p *Sequence) Fields() []string {
	p.Update()
	return []string{string(p.sequence)}
}

func (p *Sequence) Headers() []string {
	return []string{"sequence"}
}

// Hid adds a compact hash identifier of the sequence: the first 22
// characters of the base64 encoded md5 digest, with the characters
// '/', '+' and '=' substituted so the identifier is safe in file names
// and URLs.
type Hid struct {
	base
	hid string
}

func NewHid() *Hid { return &Hid{} }

var hidReplacer = strings.NewReplacer("/", "_", "+", "[", "=", "]")

func (p *Hid) Load(seq []byte, title string, kind Kind) error {
	s := clean(seq)
	p.loadClean(s, title, kind)
	sum := md5.Sum(s)
	p.hid = hidReplacer.Replace(base64.StdEncoding.EncodeToString(sum[:])[:22])
	return nil
}

// Merged aggregates have no meaningful hash; the receiver's is kept.
func (p *Hid) Add(other Properties) {
	o, ok := other.(*Hid)
	if !ok {
		panic(mismatch(p, other))
	}
	p.addBase(&o.base)
}

func (p *Hid) Update() {}

func (p *Hid) Fields() []string {
	p.Update()
	return []string{p.hid}
}

func (p *Hid) Headers() []string {
	return []string{"hid"}
}
