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

import "github.com/exascience/hapem/internal"

// Generate returns n random genotypes of the given width. Every
// symbol is drawn uniformly from {0, 1, 2}.
func Generate(rnd *internal.Rand, n, width int) []Genotype {
	gs := make([]Genotype, n)
	for i := range gs {
		g := make(Genotype, width)
		for j := range g {
			g[j] = byte(rnd.Int31n(3))
		}
		gs[i] = g
	}
	return gs
}
