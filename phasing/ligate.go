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
	"log"

	"github.com/exascience/hapem/genotypes"
)

// Ligate combines the haplotypes inferred for two adjacent blocks.
//
// The candidates are all concatenations a ++ b of a haplotype a from
// left and a haplotype b from right, in the order of left, then
// right. Their frequencies are refined against gs, the per-sample
// concatenations of the genotypes of both blocks, starting from
// uniform frequencies. Neither left nor right may contain the same
// haplotype twice.
//
// A genotype that no pair of candidates explains, typically because
// a rare block haplotype fell below the threshold, does not take part
// in the recurrence. Its index is reported in Result.Unexplained.
func Ligate(left, right []genotypes.Haplotype, gs []genotypes.Genotype, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	width, err := genotypes.Validate(gs)
	if err != nil {
		return nil, err
	}
	if len(left) == 0 || len(right) == 0 {
		return nil, fmt.Errorf("%w: no haplotypes to ligate", genotypes.ErrInvalidInput)
	}
	candidates := make([]genotypes.Haplotype, 0, len(left)*len(right))
	for _, a := range left {
		for _, b := range right {
			if a.Width()+b.Width() != width {
				return nil, fmt.Errorf("%w: haplotypes %v and %v do not span %v SNPs", genotypes.ErrInvalidInput, a, b, width)
			}
			candidates = append(candidates, a.Concat(b))
		}
	}

	// compatible pairs do not depend on frequencies
	candidatePairs := make([][]genotypes.Pair, 0, len(gs))
	var unexplained []int
	for i, g := range gs {
		var pairs []genotypes.Pair
		for j := range candidates {
			for k := j; k < len(candidates); k++ {
				if genotypes.Explains(candidates[j], candidates[k], g) {
					pairs = append(pairs, genotypes.Pair{H1: uint64(j), H2: uint64(k)})
				}
			}
		}
		if len(pairs) == 0 {
			unexplained = append(unexplained, i)
			continue
		}
		candidatePairs = append(candidatePairs, pairs)
	}
	if len(unexplained) > 0 && opts.Verbose {
		log.Printf("Ligation leaves %v of %v genotypes unexplained, first %v.\n", len(unexplained), len(gs), gs[unexplained[0]])
	}

	mode := rawFirst
	if opts.Ligation == LigateSymmetric {
		mode = normalizedBoth
	}
	frequencies, rounds, err := runEM(len(candidates), candidatePairs, mode, opts.LigationIterations, opts.Epsilon, opts.OnMaximize)
	if err != nil {
		return nil, err
	}
	result := newResult(frequencies, rounds, opts.Threshold, func(index int) genotypes.Haplotype {
		return candidates[index]
	})
	result.Unexplained = unexplained
	return result, nil
}
