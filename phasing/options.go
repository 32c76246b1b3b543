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

// Default values for Options.
const (
	DefaultThreshold          = 1e-5
	DefaultMaxIterations      = 100
	DefaultLigationIterations = 5
	DefaultRegionWidth        = 5
	DefaultPartitionThreshold = 15
	DefaultMaxDenseWidth      = 24
)

// maxDenseWidth bounds Options.MaxDenseWidth. A dense universe of
// that width already needs 8 GiB per frequency vector.
const maxDenseWidth = 30

// A LigationMode selects how ligation accumulates expected counts.
type LigationMode int

const (
	// LigateSymmetric normalizes the pair weights per genotype and adds
	// them to both members of the pair, like SolveEM does.
	LigateSymmetric LigationMode = iota

	// LigateFirstIndex adds the unnormalized weight of a compatible
	// candidate pair (j, k), j <= k, to the expected count of j only.
	// Candidates that never occur first in a weighted pair lose all
	// mass after one round, which can leave no expected counts at all.
	LigateFirstIndex
)

func (mode LigationMode) String() string {
	switch mode {
	case LigateSymmetric:
		return "symmetric"
	case LigateFirstIndex:
		return "first-index"
	default:
		return fmt.Sprintf("LigationMode(%d)", int(mode))
	}
}

// An OddBlockPolicy determines what happens to the last block of a
// ligation level with an odd number of blocks.
type OddBlockPolicy int

const (
	// CarryForward passes the last block unmerged to the next level.
	CarryForward OddBlockPolicy = iota

	// RejectOdd aborts the inference with ErrUnevenPartition.
	RejectOdd
)

// Options configure SolveEM, Ligate, and Infer.
type Options struct {
	// Threshold is the frequency a haplotype must exceed to be
	// reported.
	Threshold float64

	// MaxIterations caps the number of rounds of SolveEM.
	MaxIterations int

	// LigationIterations caps the number of rounds of Ligate.
	LigationIterations int

	// Epsilon stops a recurrence early once the L1 distance between
	// two consecutive frequency vectors is at most Epsilon. Zero
	// disables early stopping.
	Epsilon float64

	// RegionWidth is the number of SNPs per block.
	RegionWidth int

	// PartitionThreshold is the number of SNPs from which on Infer uses
	// partition-ligation instead of plain EM.
	PartitionThreshold int

	// MaxDenseWidth is the widest genotype SolveEM accepts.
	MaxDenseWidth int

	Ligation  LigationMode
	OddBlocks OddBlockPolicy

	// Parallel lets Infer solve the blocks of a ligation level
	// concurrently.
	Parallel bool

	// Verbose makes Infer log its progress.
	Verbose bool

	// OnMaximize, if not nil, is called after every maximization step
	// with the round number (starting at 1) and the new frequencies.
	// The frequencies must not be retained or modified. When Parallel
	// is set, OnMaximize must be safe for concurrent use.
	OnMaximize func(round int, frequencies []float64)
}

// DefaultOptions returns the options of the reference configuration.
func DefaultOptions() Options {
	return Options{
		Threshold:          DefaultThreshold,
		MaxIterations:      DefaultMaxIterations,
		LigationIterations: DefaultLigationIterations,
		RegionWidth:        DefaultRegionWidth,
		PartitionThreshold: DefaultPartitionThreshold,
		MaxDenseWidth:      DefaultMaxDenseWidth,
		Ligation:           LigateSymmetric,
		OddBlocks:          CarryForward,
	}
}

func (opts *Options) validate() error {
	switch {
	case opts.Threshold < 0 || opts.Threshold >= 1:
		return fmt.Errorf("%w: threshold %v not in [0, 1)", genotypes.ErrInvalidInput, opts.Threshold)
	case opts.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %v", genotypes.ErrInvalidInput, opts.MaxIterations)
	case opts.LigationIterations < 1:
		return fmt.Errorf("%w: ligation iterations %v", genotypes.ErrInvalidInput, opts.LigationIterations)
	case opts.Epsilon < 0:
		return fmt.Errorf("%w: negative epsilon %v", genotypes.ErrInvalidInput, opts.Epsilon)
	case opts.MaxDenseWidth < 1 || opts.MaxDenseWidth > maxDenseWidth:
		return fmt.Errorf("%w: max dense width %v not in [1, %v]", genotypes.ErrInvalidInput, opts.MaxDenseWidth, maxDenseWidth)
	case opts.RegionWidth < 1 || opts.RegionWidth > opts.MaxDenseWidth:
		return fmt.Errorf("%w: region width %v not in [1, %v]", genotypes.ErrInvalidInput, opts.RegionWidth, opts.MaxDenseWidth)
	case opts.PartitionThreshold < 1 || opts.PartitionThreshold > opts.MaxDenseWidth+1:
		return fmt.Errorf("%w: partition threshold %v not in [1, %v]", genotypes.ErrInvalidInput, opts.PartitionThreshold, opts.MaxDenseWidth+1)
	case opts.Ligation != LigateFirstIndex && opts.Ligation != LigateSymmetric:
		return fmt.Errorf("%w: unknown ligation mode %v", genotypes.ErrInvalidInput, opts.Ligation)
	case opts.OddBlocks != CarryForward && opts.OddBlocks != RejectOdd:
		return fmt.Errorf("%w: unknown odd block policy %v", genotypes.ErrInvalidInput, int(opts.OddBlocks))
	}
	return nil
}
