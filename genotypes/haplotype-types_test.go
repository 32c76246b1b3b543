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
	"testing"
)

func TestHaplotypeIndex(t *testing.T) {
	h := MustParseHaplotype("1011")
	if h.Index() != 11 || h.Width() != 4 {
		t.Error("Index failed")
	}
	if HaplotypeFromIndex(11, 4).String() != "1011" {
		t.Error("HaplotypeFromIndex 1 failed")
	}
	if HaplotypeFromIndex(1, 3).String() != "001" {
		t.Error("HaplotypeFromIndex 2 failed")
	}
	for i := uint64(0); i < 1<<6; i++ {
		if HaplotypeFromIndex(i, 6).Index() != i {
			t.Errorf("Index of HaplotypeFromIndex(%v, 6) failed", i)
		}
	}
	wide := MustParseHaplotype("1000000000000000000000000000000000000000000000000000000000000001")
	if wide.Width() != 64 {
		t.Error("wide haplotype failed")
	}
}

func TestParseHaplotype(t *testing.T) {
	if _, err := ParseHaplotype("012"); !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseHaplotype with invalid symbol failed")
	}
	h := MustParseHaplotype("0110")
	if h.Allele(0) != 0 || h.Allele(1) != 1 || h.Allele(2) != 1 || h.Allele(3) != 0 {
		t.Error("Allele failed")
	}
	var empty Haplotype
	if empty.String() != "" || empty.Width() != 0 {
		t.Error("zero Haplotype failed")
	}
}

func TestHaplotypeConcat(t *testing.T) {
	h := MustParseHaplotype("01").Concat(MustParseHaplotype("101"))
	if h.String() != "01101" {
		t.Error("Concat 1 failed")
	}
	var empty Haplotype
	if empty.Concat(MustParseHaplotype("10")).String() != "10" {
		t.Error("Concat 2 failed")
	}
	if MustParseHaplotype("10").Concat(empty).String() != "10" {
		t.Error("Concat 3 failed")
	}
}

func TestHaplotypeEqual(t *testing.T) {
	if !MustParseHaplotype("0101").Equal(HaplotypeFromIndex(5, 4)) {
		t.Error("Equal 1 failed")
	}
	if MustParseHaplotype("0101").Equal(MustParseHaplotype("101")) {
		t.Error("Equal 2 failed")
	}
	if MustParseHaplotype("0101").Equal(MustParseHaplotype("0111")) {
		t.Error("Equal 3 failed")
	}
}

func TestComplement(t *testing.T) {
	g := MustParseGenotypes("212")[0]
	c, ok := MustParseHaplotype("010").Complement(g)
	if !ok || c.String() != "111" {
		t.Error("Complement 1 failed")
	}
	if !Explains(MustParseHaplotype("010"), c, g) {
		t.Error("Complement 2 failed")
	}
	if _, ok := MustParseHaplotype("000").Complement(g); ok {
		t.Error("Complement 3 failed")
	}
	if _, ok := MustParseHaplotype("00").Complement(g); ok {
		t.Error("Complement 4 failed")
	}
}

func TestHaplotypeFromGenotype(t *testing.T) {
	g := MustParseGenotypes("0110")[0]
	h := HaplotypeFromGenotype(g)
	if h.String() != "0110" || !Explains(h, h, g) {
		t.Error("HaplotypeFromGenotype failed")
	}
	defer func() {
		if recover() == nil {
			t.Error("HaplotypeFromGenotype on an ambiguous genotype did not panic")
		}
	}()
	HaplotypeFromGenotype(MustParseGenotypes("012")[0])
}
