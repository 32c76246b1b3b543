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
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/exascience/hapem/internal"
)

// ReadGenotypes reads one genotype per line. Blank lines and lines
// starting with '#' are skipped.
func ReadGenotypes(r io.Reader) ([]Genotype, error) {
	var gs []Genotype
	scanner := bufio.NewScanner(r)
	for lineNr := 1; scanner.Scan(); lineNr++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := ParseGenotype(line)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", lineNr, err)
		}
		gs = append(gs, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if _, err := Validate(gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// ParseGenotypeFile reads a genotype file with ReadGenotypes.
func ParseGenotypeFile(filename string) ([]Genotype, error) {
	file := internal.FileOpen(filename)
	defer internal.Close(file)
	return ReadGenotypes(bufio.NewReader(file))
}

// WriteHaplotypes writes one haplotype per line. If frequencies is
// not nil, each haplotype is followed by a tab and its frequency.
func WriteHaplotypes(w io.Writer, haplotypes []Haplotype, frequencies []float64) error {
	out := bufio.NewWriter(w)
	for i, h := range haplotypes {
		if _, err := out.WriteString(h.String()); err != nil {
			return err
		}
		if frequencies != nil {
			if err := out.WriteByte('\t'); err != nil {
				return err
			}
			if _, err := out.WriteString(strconv.FormatFloat(frequencies[i], 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return out.Flush()
}

// ToHaplotypeFile writes a haplotype file with WriteHaplotypes.
func ToHaplotypeFile(filename string, haplotypes []Haplotype, frequencies []float64) {
	file := internal.FileCreate(filename)
	defer internal.Close(file)
	if err := WriteHaplotypes(file, haplotypes, frequencies); err != nil {
		log.Panic(err)
	}
}
