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

// A Pair is an unordered pair of haplotypes, given by their compact
// indices, that explains a genotype. H1 and H2 may be equal.
type Pair struct {
	H1, H2 uint64
}

type pairKey struct {
	low, high uint64
}

func (p Pair) key() pairKey {
	if p.H1 <= p.H2 {
		return pairKey{p.H1, p.H2}
	}
	return pairKey{p.H2, p.H1}
}

// Same reports whether p and q are the same unordered pair.
func (p Pair) Same(q Pair) bool {
	return p.key() == q.key()
}

// Delta is 1 for a homozygous pair and 2 otherwise, accounting for
// the two orderings of a heterozygous pair.
func (p Pair) Delta() float64 {
	if p.H1 == p.H2 {
		return 1
	}
	return 2
}

// EnumeratePairs returns all unordered haplotype pairs that explain
// g, without duplicates.
//
// Positions are processed from left to right. Homozygous positions
// extend both members of every partial pair; heterozygous positions
// branch every partial pair into a (0,1) and a (1,0) successor.
//
// The result has 2^(k-1) pairs for k > 0 heterozygous positions, so
// g must be narrow enough for exhaustive enumeration. g must not be
// wider than MaxIndexWidth. The empty genotype has no pairs.
func EnumeratePairs(g Genotype) []Pair {
	if len(g) == 0 {
		return nil
	}
	if len(g) > MaxIndexWidth {
		panic("genotype too wide for pair enumeration")
	}
	capacity := 1
	if k := g.Ambiguous().Count(); k > 0 {
		capacity = 1 << (k - 1)
	}
	pairs := make([]Pair, 1, capacity)
	next := make([]Pair, 0, capacity)
	seen := make(map[pairKey]struct{}, capacity)
	for _, s := range g {
		switch s {
		case Homozygous0, Homozygous1:
			bit := uint64(s)
			for j := range pairs {
				pairs[j].H1 = pairs[j].H1<<1 | bit
				pairs[j].H2 = pairs[j].H2<<1 | bit
			}
		case Heterozygous:
			next = next[:0]
			for k := range seen {
				delete(seen, k)
			}
			for _, p := range pairs {
				for _, q := range [2]Pair{
					{p.H1 << 1, p.H2<<1 | 1},
					{p.H1<<1 | 1, p.H2 << 1},
				} {
					key := q.key()
					if _, found := seen[key]; found {
						continue
					}
					seen[key] = struct{}{}
					next = append(next, q)
				}
			}
			pairs, next = next, pairs
		default:
			panic("invalid genotype symbol")
		}
	}
	return pairs
}
