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

	"github.com/exascience/hapem/genotypes"
)

// A Block is a set of genotypes restricted to the SNP columns
// [Start, End), together with the haplotypes currently inferred for
// them.
type Block struct {
	Start, End int
	Genotypes  []genotypes.Genotype
	Haplotypes []genotypes.Haplotype

	result *Result
}

// Width returns the number of SNPs of the block.
func (b *Block) Width() int {
	return b.End - b.Start
}

// Partition splits genotypes into blocks of regionWidth consecutive
// SNPs. The last block is shorter if the genotype width is not a
// multiple of regionWidth.
func Partition(gs []genotypes.Genotype, regionWidth int) ([]*Block, error) {
	if regionWidth < 1 {
		return nil, fmt.Errorf("%w: region width %v", genotypes.ErrInvalidInput, regionWidth)
	}
	width, err := genotypes.Validate(gs)
	if err != nil {
		return nil, err
	}
	blocks := make([]*Block, 0, (width+regionWidth-1)/regionWidth)
	for start := 0; start < width; start += regionWidth {
		end := start + regionWidth
		if end > width {
			end = width
		}
		block := &Block{Start: start, End: end, Genotypes: make([]genotypes.Genotype, len(gs))}
		for i, g := range gs {
			block.Genotypes[i] = g.Slice(start, end)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// merge joins the genotype columns of two adjacent blocks per sample.
func merge(left, right *Block) *Block {
	block := &Block{Start: left.Start, End: right.End, Genotypes: make([]genotypes.Genotype, len(left.Genotypes))}
	for i, g := range left.Genotypes {
		block.Genotypes[i] = g.Concat(right.Genotypes[i])
	}
	return block
}
