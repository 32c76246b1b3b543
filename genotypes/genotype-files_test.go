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
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadGenotypes(t *testing.T) {
	input := "# three samples\n0120\n\n  2201 \n1111\n"
	gs, err := ReadGenotypes(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 3 || gs[0].String() != "0120" || gs[1].String() != "2201" || gs[2].String() != "1111" {
		t.Error("ReadGenotypes failed")
	}
}

func TestReadGenotypesErrors(t *testing.T) {
	_, err := ReadGenotypes(strings.NewReader("012\n0x2\n"))
	if !errors.Is(err, ErrInvalidInput) || !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("ReadGenotypes with invalid symbol returned %v", err)
	}
	if _, err := ReadGenotypes(strings.NewReader("012\n01\n")); !errors.Is(err, ErrInvalidInput) {
		t.Error("ragged ReadGenotypes failed")
	}
	if _, err := ReadGenotypes(strings.NewReader("# nothing\n")); !errors.Is(err, ErrInvalidInput) {
		t.Error("empty ReadGenotypes failed")
	}
}

func TestWriteHaplotypes(t *testing.T) {
	hs := []Haplotype{MustParseHaplotype("001"), MustParseHaplotype("110")}
	var buf bytes.Buffer
	if err := WriteHaplotypes(&buf, hs, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "001\n110\n" {
		t.Errorf("WriteHaplotypes without frequencies wrote %q", buf.String())
	}
	buf.Reset()
	if err := WriteHaplotypes(&buf, hs, []float64{0.25, 0.75}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "001\t0.25\n110\t0.75\n" {
		t.Errorf("WriteHaplotypes with frequencies wrote %q", buf.String())
	}
}

func TestGenotypeFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	haplotypes := filepath.Join(dir, "haplotypes.txt")
	ToHaplotypeFile(haplotypes, []Haplotype{MustParseHaplotype("0110")}, nil)
	gs, err := ParseGenotypeFile(haplotypes)
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 1 || gs[0].String() != "0110" {
		t.Error("ParseGenotypeFile failed")
	}
}
