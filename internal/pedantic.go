// +build pedantic

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

package internal

const (
	// PedanticMessage can be added to the overall program message
	PedanticMessage = "pedantic mode "
)

// Rand produces random numbers with a linear congruential generator,
// mimicking the behavior of the Java standard library, so that
// generated genotype data does not depend on the Go release.
type Rand struct {
	seed int64
}

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	bits       = 31
	mask       = (1 << 48) - 1
)

// NewRand returns a Java-style random number generator.
func NewRand(seed int64) *Rand {
	return &Rand{seed: (seed ^ multiplier) & mask}
}

// Int31 produces the next non-negative int32.
func (r *Rand) Int31() int32 {
	r.seed = (r.seed*multiplier + addend) & mask
	return int32(r.seed >> (48 - bits))
}

// Int31n produces the next int32 in [0, n).
func (r *Rand) Int31n(n int32) int32 {
	if n <= 0 {
		panic("invalid argument to Int31n")
	}
	l := r.Int31()
	m := n - 1
	if (n & m) == 0 {
		return int32((int64(n) * int64(l)) >> 31)
	}
	for u := l; ; u = r.Int31() {
		l = u % n
		if u-l+m >= 0 {
			return l
		}
	}
}
