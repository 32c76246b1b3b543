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
	"github.com/bits-and-blooms/bitset"

	"github.com/exascience/hapem/genotypes"
)

// A Resolution is the outcome of Clark's method.
type Resolution struct {
	// Haplotypes are the known haplotypes, in the order in which they
	// became known, without duplicates.
	Haplotypes []genotypes.Haplotype

	// Unresolved are the distinct ambiguous genotypes that no known
	// haplotype could explain.
	Unresolved []genotypes.Genotype
}

type knownSet struct {
	haplotypes []genotypes.Haplotype
	index      map[string]struct{}
}

func (known *knownSet) add(h genotypes.Haplotype) {
	key := h.String()
	if _, found := known.index[key]; found {
		return
	}
	known.index[key] = struct{}{}
	known.haplotypes = append(known.haplotypes, h)
}

// Clark resolves genotypes with Clark's inference rule.
//
// Genotypes without heterozygous positions are resolved first and
// their haplotypes become known. Then, as long as progress is made,
// every ambiguous genotype that is compatible with a known haplotype h
// is resolved as h together with its complement, which becomes known
// as well. The outcome depends on the order of the genotypes, and
// some genotypes may remain unresolved.
func Clark(gs []genotypes.Genotype) (*Resolution, error) {
	if _, err := genotypes.Validate(gs); err != nil {
		return nil, err
	}
	known := &knownSet{index: make(map[string]struct{})}
	var ambiguous []genotypes.Genotype
	seen := make(map[string]struct{})
	for _, g := range gs {
		if !g.IsAmbiguous() {
			known.add(genotypes.HaplotypeFromGenotype(g))
			continue
		}
		key := g.String()
		if _, found := seen[key]; found {
			continue
		}
		seen[key] = struct{}{}
		ambiguous = append(ambiguous, g)
	}

	unexplained := bitset.New(uint(len(ambiguous)))
	for i := range ambiguous {
		unexplained.Set(uint(i))
	}
	for remaining := unexplained.Count(); remaining > 0; {
		for k := 0; k < len(known.haplotypes); k++ {
			h := known.haplotypes[k]
			for i, ok := unexplained.NextSet(0); ok; i, ok = unexplained.NextSet(i + 1) {
				if complement, compatible := h.Complement(ambiguous[i]); compatible {
					known.add(complement)
					unexplained.Clear(i)
				}
			}
		}
		count := unexplained.Count()
		if count == remaining {
			break
		}
		remaining = count
	}

	result := &Resolution{Haplotypes: known.haplotypes}
	for i, ok := unexplained.NextSet(0); ok; i, ok = unexplained.NextSet(i + 1) {
		result.Unresolved = append(result.Unresolved, ambiguous[i])
	}
	return result, nil
}
