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
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/exascience/hapem/genotypes"
)

var (
	// ErrDegenerateNormalization indicates that the pair weights of a
	// genotype, or all expected counts, summed to zero.
	ErrDegenerateNormalization = errors.New("phasing: degenerate normalization")

	// ErrUnevenPartition indicates an odd number of blocks at a
	// ligation level under RejectOdd.
	ErrUnevenPartition = errors.New("phasing: odd number of blocks")
)

type accumulation int

const (
	// per genotype normalized weights, added to both members
	normalizedBoth accumulation = iota
	// raw weights, added to the first member only
	rawFirst
)

// Converged reports whether the L1 distance between two frequency
// vectors is at most eps.
func Converged(old, next []float64, eps float64) bool {
	return floats.Distance(old, next, 1) <= eps
}

// runEM runs the expectation-maximization recurrence over a universe
// of candidate haplotypes, starting from uniform frequencies.
//
// candidatePairs holds, for every genotype, the candidate index pairs
// that explain it. Every pair of a genotype must be distinct as an
// unordered pair, and equal indices must denote the same haplotype.
func runEM(universe int, candidatePairs [][]genotypes.Pair, mode accumulation, rounds int, epsilon float64, onMaximize func(int, []float64)) (frequencies []float64, executed int, err error) {
	frequencies = make([]float64, universe)
	p0 := 1 / float64(universe)
	for i := range frequencies {
		frequencies[i] = p0
	}
	counts := make([]float64, universe)
	var previous, weights []float64
	if epsilon > 0 {
		previous = make([]float64, universe)
	}
	for round := 1; round <= rounds; round++ {
		for i := range counts {
			counts[i] = 0
		}

		// expectation
		for g, pairs := range candidatePairs {
			switch mode {
			case normalizedBoth:
				weights = weights[:0]
				var sum float64
				for _, p := range pairs {
					w := frequencies[p.H1] * frequencies[p.H2] * p.Delta()
					weights = append(weights, w)
					sum += w
				}
				if !(sum > 0) || math.IsInf(sum, 0) {
					return nil, round, fmt.Errorf("%w: genotype %v in round %v", ErrDegenerateNormalization, g, round)
				}
				for k, p := range pairs {
					w := weights[k] / sum
					counts[p.H1] += w
					counts[p.H2] += w
				}
			case rawFirst:
				for _, p := range pairs {
					counts[p.H1] += frequencies[p.H1] * frequencies[p.H2] * p.Delta()
				}
			}
		}

		// maximization
		total := floats.Sum(counts)
		if !(total > 0) {
			return nil, round, fmt.Errorf("%w: no expected counts in round %v", ErrDegenerateNormalization, round)
		}
		if previous != nil {
			copy(previous, frequencies)
		}
		copy(frequencies, counts)
		floats.Scale(1/total, frequencies)
		if onMaximize != nil {
			onMaximize(round, frequencies)
		}
		if previous != nil && Converged(previous, frequencies, epsilon) {
			return frequencies, round, nil
		}
	}
	return frequencies, rounds, nil
}
