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

package phasing

import (
	"fmt"

	"github.com/exascience/hapem/genotypes"
)

// A Result is the outcome of an EM recurrence.
type Result struct {
	// Haplotypes are the candidates with a frequency above the
	// threshold, in candidate order.
	Haplotypes []genotypes.Haplotype

	// Weights are the frequencies of Haplotypes.
	Weights []float64

	// Frequencies are the final frequencies of all candidates.
	Frequencies []float64

	// Rounds is the number of rounds that were executed.
	Rounds int

	// Unexplained are the indices of the genotypes that no pair of
	// candidates explains. Only Ligate produces them.
	Unexplained []int

	candidate func(index int) genotypes.Haplotype
}

// Candidate returns the candidate haplotype that Frequencies[index]
// refers to.
func (r *Result) Candidate(index int) genotypes.Haplotype {
	return r.candidate(index)
}

// Strings renders the significant haplotypes.
func (r *Result) Strings() []string {
	return genotypes.HaplotypeStrings(r.Haplotypes)
}

func newResult(frequencies []float64, rounds int, threshold float64, candidate func(int) genotypes.Haplotype) *Result {
	r := &Result{Frequencies: frequencies, Rounds: rounds, candidate: candidate}
	for i, f := range frequencies {
		if f > threshold {
			r.Haplotypes = append(r.Haplotypes, candidate(i))
			r.Weights = append(r.Weights, f)
		}
	}
	return r
}

// SolveEM infers haplotype frequencies for a set of genotypes over the
// universe of all 2^L haplotypes of their width L.
//
// Every round enumerates the pairs that explain each genotype,
// weighs them by the current frequencies, and makes the normalized
// weights the expected counts of their members.
func SolveEM(gs []genotypes.Genotype, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	width, err := genotypes.Validate(gs)
	if err != nil {
		return nil, err
	}
	if width > opts.MaxDenseWidth {
		return nil, fmt.Errorf("%w: %v SNPs exceed the exhaustive EM limit of %v, use partition-ligation", genotypes.ErrInvalidInput, width, opts.MaxDenseWidth)
	}
	candidatePairs := make([][]genotypes.Pair, len(gs))
	for i, g := range gs {
		candidatePairs[i] = genotypes.EnumeratePairs(g)
	}
	frequencies, rounds, err := runEM(1<<uint(width), candidatePairs, normalizedBoth, opts.MaxIterations, opts.Epsilon, opts.OnMaximize)
	if err != nil {
		return nil, err
	}
	return newResult(frequencies, rounds, opts.Threshold, func(index int) genotypes.Haplotype {
		return genotypes.HaplotypeFromIndex(uint64(index), width)
	}), nil
}
