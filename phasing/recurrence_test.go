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
	"testing"

	"github.com/exascience/hapem/genotypes"
)

func TestConverged(t *testing.T) {
	if !Converged([]float64{0.5, 0.5}, []float64{0.5, 0.5}, 0) {
		t.Error("Converged 1 failed")
	}
	if !Converged([]float64{0.5, 0.5}, []float64{0.4, 0.6}, 0.2) {
		t.Error("Converged 2 failed")
	}
	if Converged([]float64{0.5, 0.5}, []float64{0.4, 0.6}, 0.1) {
		t.Error("Converged 3 failed")
	}
}

func TestRunEMDegenerate(t *testing.T) {
	_, _, err := runEM(2, [][]genotypes.Pair{{}}, normalizedBoth, 5, 0, nil)
	if !errors.Is(err, ErrDegenerateNormalization) {
		t.Errorf("runEM without pairs returned %v", err)
	}
	_, _, err = runEM(2, [][]genotypes.Pair{{}}, rawFirst, 5, 0, nil)
	if !errors.Is(err, ErrDegenerateNormalization) {
		t.Errorf("raw runEM without pairs returned %v", err)
	}
}

func TestRunEMSumsToOne(t *testing.T) {
	pairs := [][]genotypes.Pair{{{H1: 0, H2: 3}, {H1: 1, H2: 2}}, {{H1: 0, H2: 0}}}
	rounds := 0
	frequencies, executed, err := runEM(4, pairs, normalizedBoth, 10, 0, func(round int, frequencies []float64) {
		rounds++
		if round != rounds {
			t.Errorf("maximization hook called with round %v; want %v", round, rounds)
		}
		var sum float64
		for _, f := range frequencies {
			sum += f
		}
		if sum < 1-1e-12 || sum > 1+1e-12 {
			t.Errorf("frequencies of round %v sum to %v", round, sum)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if executed != 10 || rounds != 10 {
		t.Errorf("executed %v rounds with %v hook calls; want 10", executed, rounds)
	}
	if !(frequencies[0] > frequencies[1]) {
		t.Error("the homozygous sample did not favor haplotype 0")
	}
}
