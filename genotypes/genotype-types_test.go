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

// allGenotypes returns all 3^width genotypes of the given width.
func allGenotypes(width int) []Genotype {
	result := []Genotype{{}}
	for i := 0; i < width; i++ {
		var next []Genotype
		for _, g := range result {
			for s := byte(0); s <= Heterozygous; s++ {
				next = append(next, append(append(Genotype(nil), g...), s))
			}
		}
		result = next
	}
	return result
}

// explainsString is a straightforward character-based version of
// Explains.
func explainsString(h1, h2, g string) bool {
	for i := 0; i < len(g); i++ {
		switch g[i] {
		case '0':
			if h1[i] != '0' || h2[i] != '0' {
				return false
			}
		case '1':
			if h1[i] != '1' || h2[i] != '1' {
				return false
			}
		case '2':
			if h1[i] == h2[i] {
				return false
			}
		}
	}
	return true
}

func TestParseGenotype(t *testing.T) {
	g, err := ParseGenotype("0122")
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 4 || g[0] != Homozygous0 || g[1] != Homozygous1 || g[2] != Heterozygous || g[3] != Heterozygous {
		t.Error("ParseGenotype 1 failed")
	}
	if g.String() != "0122" {
		t.Error("String failed")
	}
	if _, err := ParseGenotype("0132"); !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseGenotype 2 failed")
	}
	if _, err := ParseGenotype("01a"); !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseGenotype 3 failed")
	}
	if g, err := ParseGenotype(""); err != nil || len(g) != 0 {
		t.Error("empty ParseGenotype failed")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		gs    []Genotype
		width int
		err   error
	}{
		{"Empty", nil, 0, ErrInvalidInput},
		{"EmptyGenotype", []Genotype{{}}, 0, ErrInvalidInput},
		{"Ragged", []Genotype{{0, 1}, {2}}, 0, ErrInvalidInput},
		{"BadSymbol", []Genotype{{0, 1}, {2, 3}}, 0, ErrInvalidInput},
		{"Valid", []Genotype{{0, 1, 2}, {2, 2, 2}}, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			width, err := Validate(tc.gs)
			if !errors.Is(err, tc.err) {
				t.Errorf("Validate error = %v; want %v", err, tc.err)
			}
			if width != tc.width {
				t.Errorf("Validate width = %v; want %v", width, tc.width)
			}
		})
	}
}

func TestParseGenotypes(t *testing.T) {
	if _, err := ParseGenotypes([]string{"012", "01"}); !errors.Is(err, ErrInvalidInput) {
		t.Error("ragged ParseGenotypes failed")
	}
	if _, err := ParseGenotypes(nil); !errors.Is(err, ErrInvalidInput) {
		t.Error("empty ParseGenotypes failed")
	}
	gs, err := ParseGenotypes([]string{"012", "210"})
	if err != nil || len(gs) != 2 || gs[1].String() != "210" {
		t.Error("ParseGenotypes failed")
	}
}

func TestSliceConcat(t *testing.T) {
	g := MustParseGenotypes("0120120")[0]
	left, right := g.Slice(0, 5), g.Slice(5, 7)
	if left.String() != "01201" || right.String() != "20" {
		t.Error("Slice failed")
	}
	if left.Concat(right).String() != g.String() {
		t.Error("Concat failed")
	}
	left[0] = Homozygous1
	if g[0] != Homozygous0 {
		t.Error("Slice shares memory with the genotype")
	}
}

func TestAmbiguous(t *testing.T) {
	g := MustParseGenotypes("2012102")[0]
	set := g.Ambiguous()
	if set.Count() != 3 || !set.Test(0) || !set.Test(3) || !set.Test(6) || set.Test(1) {
		t.Error("Ambiguous failed")
	}
	if !g.IsAmbiguous() {
		t.Error("IsAmbiguous 1 failed")
	}
	if MustParseGenotypes("0110")[0].IsAmbiguous() {
		t.Error("IsAmbiguous 2 failed")
	}
}

func TestExplains(t *testing.T) {
	cases := []struct {
		h1, h2, g string
		want      bool
	}{
		{"00", "00", "00", true},
		{"11", "11", "11", true},
		{"01", "10", "22", true},
		{"00", "11", "22", true},
		{"01", "01", "22", false},
		{"01", "11", "21", true},
		{"01", "11", "20", false},
		{"0", "0", "1", false},
		{"010", "010", "01", false},
	}
	for _, tc := range cases {
		got := Explains(MustParseHaplotype(tc.h1), MustParseHaplotype(tc.h2), MustParseGenotypes(tc.g)[0])
		if got != tc.want {
			t.Errorf("Explains(%v, %v, %v) = %v; want %v", tc.h1, tc.h2, tc.g, got, tc.want)
		}
	}
}

// TestExplainsRepresentations checks that Explains agrees with the
// character-based rule for haplotypes built from compact indices as
// well as from strings.
func TestExplainsRepresentations(t *testing.T) {
	const width = 3
	for _, g := range allGenotypes(width) {
		for i := uint64(0); i < 1<<width; i++ {
			for j := uint64(0); j < 1<<width; j++ {
				h1, h2 := HaplotypeFromIndex(i, width), HaplotypeFromIndex(j, width)
				want := explainsString(h1.String(), h2.String(), g.String())
				if got := Explains(h1, h2, g); got != want {
					t.Errorf("Explains(%v, %v, %v) on indices = %v; want %v", h1, h2, g, got, want)
				}
				s1, s2 := MustParseHaplotype(h1.String()), MustParseHaplotype(h2.String())
				if got := Explains(s1, s2, g); got != want {
					t.Errorf("Explains(%v, %v, %v) on strings = %v; want %v", s1, s2, g, got, want)
				}
			}
		}
	}
}
