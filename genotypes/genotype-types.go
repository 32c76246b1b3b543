// hapEM: haplotype inference by expectation-maximization.
// Copyright (c) 2020 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package genotypes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvalidInput is wrapped by every error that reports genotype
// data the inference cannot work with.
var ErrInvalidInput = errors.New("genotypes: invalid input")

// Genotype symbols.
const (
	Homozygous0  = 0
	Homozygous1  = 1
	Heterozygous = 2
)

// A Genotype is the unphased observation of two haplotypes at a
// sequence of SNPs. Each symbol is Homozygous0, Homozygous1, or
// Heterozygous.
//
// Genotypes are not modified after they are parsed. Slice and Concat
// return fresh genotypes.
type Genotype []byte

// ParseGenotype parses a string over the characters '0', '1', and '2'.
func ParseGenotype(s string) (Genotype, error) {
	g := make(Genotype, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '0', '1', '2':
			g[i] = c - '0'
		default:
			return nil, fmt.Errorf("%w: symbol %q at position %v of genotype %v", ErrInvalidInput, c, i, s)
		}
	}
	return g, nil
}

// ParseGenotypes parses a slice of strings with ParseGenotype and
// checks the result with Validate.
func ParseGenotypes(ss []string) ([]Genotype, error) {
	gs := make([]Genotype, len(ss))
	for i, s := range ss {
		g, err := ParseGenotype(s)
		if err != nil {
			return nil, err
		}
		gs[i] = g
	}
	if _, err := Validate(gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// MustParseGenotypes is ParseGenotypes with panics in place of errors.
func MustParseGenotypes(ss ...string) []Genotype {
	gs, err := ParseGenotypes(ss)
	if err != nil {
		panic(err)
	}
	return gs
}

// Validate checks that gs is a non-empty rectangular set of genotypes
// over valid symbols, and returns the common width.
func Validate(gs []Genotype) (width int, err error) {
	if len(gs) == 0 {
		return 0, fmt.Errorf("%w: empty genotype set", ErrInvalidInput)
	}
	width = len(gs[0])
	if width == 0 {
		return 0, fmt.Errorf("%w: empty genotype", ErrInvalidInput)
	}
	for i, g := range gs {
		if len(g) != width {
			return 0, fmt.Errorf("%w: genotype %v has %v SNPs, expected %v", ErrInvalidInput, i, len(g), width)
		}
		for pos, s := range g {
			if s > Heterozygous {
				return 0, fmt.Errorf("%w: symbol %v at position %v of genotype %v", ErrInvalidInput, s, pos, i)
			}
		}
	}
	return width, nil
}

// String renders the genotype with the characters '0', '1', and '2'.
func (g Genotype) String() string {
	var sb strings.Builder
	sb.Grow(len(g))
	for _, s := range g {
		sb.WriteByte('0' + s)
	}
	return sb.String()
}

// Slice returns the columns [start, end) of the genotype.
func (g Genotype) Slice(start, end int) Genotype {
	return append(Genotype(nil), g[start:end]...)
}

// Concat returns g followed by h.
func (g Genotype) Concat(h Genotype) Genotype {
	result := make(Genotype, 0, len(g)+len(h))
	return append(append(result, g...), h...)
}

// Ambiguous returns the set of heterozygous positions of g.
func (g Genotype) Ambiguous() *bitset.BitSet {
	set := bitset.New(uint(len(g)))
	for i, s := range g {
		if s == Heterozygous {
			set.Set(uint(i))
		}
	}
	return set
}

// IsAmbiguous reports whether g has at least one heterozygous
// position.
func (g Genotype) IsAmbiguous() bool {
	for _, s := range g {
		if s == Heterozygous {
			return true
		}
	}
	return false
}

// Explains determines whether the haplotypes h1 and h2 together
// produce the genotype g.
func Explains(h1, h2 Haplotype, g Genotype) bool {
	if h1.width != len(g) || h2.width != len(g) {
		return false
	}
	for i, s := range g {
		b1, b2 := h1.bits.Test(uint(i)), h2.bits.Test(uint(i))
		switch s {
		case Homozygous0:
			if b1 || b2 {
				return false
			}
		case Homozygous1:
			if !b1 || !b2 {
				return false
			}
		case Heterozygous:
			if b1 == b2 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
