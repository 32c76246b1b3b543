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
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// MaxIndexWidth is the largest haplotype width that has a compact
// index.
const MaxIndexWidth = 63

// A Haplotype is a phased sequence of alleles.
//
// A haplotype of width w can be seen as a string over '0' and '1', or,
// when w <= MaxIndexWidth, as an index in [0, 2^w) with the first
// position as the most significant bit. The zero Haplotype is the
// empty haplotype.
type Haplotype struct {
	bits  *bitset.BitSet
	width int
}

func newHaplotype(width int) Haplotype {
	return Haplotype{bits: bitset.New(uint(width)), width: width}
}

// HaplotypeFromIndex returns the haplotype of the given width with
// the given compact index.
func HaplotypeFromIndex(index uint64, width int) Haplotype {
	if width > MaxIndexWidth {
		panic(fmt.Sprintf("haplotype width %v has no compact index", width))
	}
	h := newHaplotype(width)
	for i := 0; i < width; i++ {
		if index&(1<<uint(width-1-i)) != 0 {
			h.bits.Set(uint(i))
		}
	}
	return h
}

// HaplotypeFromGenotype returns the haplotype that, paired with
// itself, explains g. g must not have heterozygous positions.
func HaplotypeFromGenotype(g Genotype) Haplotype {
	h := newHaplotype(len(g))
	for i, s := range g {
		switch s {
		case Homozygous0:
		case Homozygous1:
			h.bits.Set(uint(i))
		default:
			panic("haplotype from ambiguous genotype")
		}
	}
	return h
}

// ParseHaplotype parses a string over the characters '0' and '1'.
func ParseHaplotype(s string) (Haplotype, error) {
	h := newHaplotype(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			h.bits.Set(uint(i))
		default:
			return Haplotype{}, fmt.Errorf("%w: symbol %q at position %v of haplotype %v", ErrInvalidInput, s[i], i, s)
		}
	}
	return h, nil
}

// MustParseHaplotype is ParseHaplotype with panics in place of errors.
func MustParseHaplotype(s string) Haplotype {
	h, err := ParseHaplotype(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Width returns the number of SNPs of h.
func (h Haplotype) Width() int {
	return h.width
}

// Allele returns the allele at position i.
func (h Haplotype) Allele(i int) byte {
	if h.bits.Test(uint(i)) {
		return 1
	}
	return 0
}

// Index returns the compact index of h.
func (h Haplotype) Index() uint64 {
	if h.width > MaxIndexWidth {
		panic(fmt.Sprintf("haplotype width %v has no compact index", h.width))
	}
	var index uint64
	for i := 0; i < h.width; i++ {
		index <<= 1
		if h.bits.Test(uint(i)) {
			index |= 1
		}
	}
	return index
}

// String renders the haplotype with the characters '0' and '1'.
func (h Haplotype) String() string {
	var sb strings.Builder
	sb.Grow(h.width)
	for i := 0; i < h.width; i++ {
		if h.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Concat returns h followed by k.
func (h Haplotype) Concat(k Haplotype) Haplotype {
	result := newHaplotype(h.width + k.width)
	if h.bits != nil {
		for i, ok := h.bits.NextSet(0); ok && int(i) < h.width; i, ok = h.bits.NextSet(i + 1) {
			result.bits.Set(i)
		}
	}
	if k.bits != nil {
		offset := uint(h.width)
		for i, ok := k.bits.NextSet(0); ok && int(i) < k.width; i, ok = k.bits.NextSet(i + 1) {
			result.bits.Set(offset + i)
		}
	}
	return result
}

// Equal reports whether h and k have the same width and alleles.
func (h Haplotype) Equal(k Haplotype) bool {
	if h.width != k.width {
		return false
	}
	for i := 0; i < h.width; i++ {
		if h.bits.Test(uint(i)) != k.bits.Test(uint(i)) {
			return false
		}
	}
	return true
}

// Complement returns the haplotype that, together with h, explains
// g, and true. It returns false if h is not compatible with any
// haplotype under g.
func (h Haplotype) Complement(g Genotype) (Haplotype, bool) {
	if h.width != len(g) {
		return Haplotype{}, false
	}
	result := newHaplotype(h.width)
	for i, s := range g {
		b := h.bits.Test(uint(i))
		switch s {
		case Homozygous0:
			if b {
				return Haplotype{}, false
			}
		case Homozygous1:
			if !b {
				return Haplotype{}, false
			}
			result.bits.Set(uint(i))
		case Heterozygous:
			if !b {
				result.bits.Set(uint(i))
			}
		default:
			return Haplotype{}, false
		}
	}
	return result, true
}

// HaplotypeStrings renders a slice of haplotypes.
func HaplotypeStrings(hs []Haplotype) []string {
	result := make([]string, len(hs))
	for i, h := range hs {
		result[i] = h.String()
	}
	return result
}
