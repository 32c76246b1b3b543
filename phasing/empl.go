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

	"github.com/exascience/pargo/parallel"

	"github.com/exascience/hapem/genotypes"
)

// forEach calls f for every index in [0, n), concurrently if
// requested, and returns the error of the lowest failing index.
func forEach(n int, concurrent bool, f func(i int) error) error {
	errs := make([]error, n)
	if concurrent {
		parallel.Range(0, n, 0, func(low, high int) {
			for i := low; i < high; i++ {
				errs[i] = f(i)
			}
		})
	} else {
		for i := range errs {
			errs[i] = f(i)
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Infer infers the haplotypes of a set of genotypes.
//
// Genotypes narrower than opts.PartitionThreshold are solved with
// SolveEM directly. Wider genotypes are partitioned into blocks of
// opts.RegionWidth SNPs, every block is solved with SolveEM, and
// adjacent blocks are then ligated pairwise, level by level, until a
// single block remains.
func Infer(gs []genotypes.Genotype, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	width, err := genotypes.Validate(gs)
	if err != nil {
		return nil, err
	}
	if width < opts.PartitionThreshold {
		return SolveEM(gs, opts)
	}

	blocks, err := Partition(gs, opts.RegionWidth)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("Solving %v blocks of %v genotypes.\n", len(blocks), len(gs))
	}
	if err := forEach(len(blocks), opts.Parallel, func(i int) error {
		block := blocks[i]
		result, err := SolveEM(block.Genotypes, opts)
		if err != nil {
			return fmt.Errorf("block [%v, %v): %w", block.Start, block.End, err)
		}
		block.Haplotypes, block.result = result.Haplotypes, result
		return nil
	}); err != nil {
		return nil, err
	}

	for level := 1; len(blocks) > 1; level++ {
		if blocks, err = ligateLevel(blocks, opts); err != nil {
			return nil, fmt.Errorf("ligation level %v: %w", level, err)
		}
		if opts.Verbose {
			log.Printf("Ligation level %v left %v blocks.\n", level, len(blocks))
		}
	}
	return blocks[0].result, nil
}

// ligateLevel ligates blocks 0 and 1, 2 and 3, and so on.
func ligateLevel(blocks []*Block, opts Options) ([]*Block, error) {
	pairs := len(blocks) / 2
	odd := len(blocks)%2 == 1
	if odd && opts.OddBlocks == RejectOdd {
		return nil, fmt.Errorf("%w: %v blocks", ErrUnevenPartition, len(blocks))
	}
	next := make([]*Block, pairs, pairs+1)
	if err := forEach(pairs, opts.Parallel, func(i int) error {
		left, right := blocks[2*i], blocks[2*i+1]
		block := merge(left, right)
		result, err := Ligate(left.Haplotypes, right.Haplotypes, block.Genotypes, opts)
		if err != nil {
			return fmt.Errorf("blocks [%v, %v) and [%v, %v): %w", left.Start, left.End, right.Start, right.End, err)
		}
		block.Haplotypes, block.result = result.Haplotypes, result
		next[i] = block
		return nil
	}); err != nil {
		return nil, err
	}
	if odd {
		next = append(next, blocks[len(blocks)-1])
	}
	return next, nil
}
