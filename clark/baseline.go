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

package clark

import (
	"fmt"
	"math/bits"

	"github.com/exascience/hapem/genotypes"
)

// MaxBaselineWidth is the widest genotype Baseline accepts. Baseline
// inspects all 2^(2^L) sets of haplotypes of width L.
const MaxBaselineWidth = 4

// explainsAll reports whether every genotype is explained by some
// pair of the given haplotypes.
func explainsAll(gs []genotypes.Genotype, haplotypes []genotypes.Haplotype) bool {
	for _, g := range gs {
		explained := false
	search:
		for j := range haplotypes {
			for k := j; k < len(haplotypes); k++ {
				if genotypes.Explains(haplotypes[j], haplotypes[k], g) {
					explained = true
					break search
				}
			}
		}
		if !explained {
			return false
		}
	}
	return true
}

// Baseline returns a smallest set of haplotypes that explains all
// genotypes, by exhaustive search over all sets of haplotypes.
//
// Sets are visited in the order of their membership masks, and the
// first set of the smallest size wins.
func Baseline(gs []genotypes.Genotype) ([]genotypes.Haplotype, error) {
	width, err := genotypes.Validate(gs)
	if err != nil {
		return nil, err
	}
	if width > MaxBaselineWidth {
		return nil, fmt.Errorf("%w: %v SNPs exceed the baseline limit of %v", genotypes.ErrInvalidInput, width, MaxBaselineWidth)
	}
	universe := make([]genotypes.Haplotype, 1<<uint(width))
	for i := range universe {
		universe[i] = genotypes.HaplotypeFromIndex(uint64(i), width)
	}
	var best []genotypes.Haplotype
	bestSize := len(universe) + 1
	subset := make([]genotypes.Haplotype, 0, len(universe))
	for mask := uint64(1); mask < uint64(1)<<uint(len(universe)); mask++ {
		size := bits.OnesCount64(mask)
		if size >= bestSize {
			continue
		}
		subset = subset[:0]
		for i := range universe {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, universe[i])
			}
		}
		if explainsAll(gs, subset) {
			best = append([]genotypes.Haplotype(nil), subset...)
			bestSize = size
		}
	}
	return best, nil
}
