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
	"testing"

	"github.com/exascience/hapem/internal"
)

func TestGenerate(t *testing.T) {
	gs := Generate(internal.NewRand(42), 20, 7)
	width, err := Validate(gs)
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 20 || width != 7 {
		t.Error("Generate returned the wrong shape")
	}
	again := Generate(internal.NewRand(42), 20, 7)
	for i := range gs {
		if gs[i].String() != again[i].String() {
			t.Errorf("Generate is not deterministic at genotype %v", i)
		}
	}
}
