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

// Package phasing infers haplotypes from population genotype data
// with an expectation-maximization (EM) haplotyper and its
// partition-ligation (PL) extension.
//
// SolveEM estimates the frequencies of all 2^L haplotypes of width L,
// which limits it to narrow genotypes. Infer lifts that limit by
// splitting the SNPs into small blocks, solving each block with
// SolveEM, and ligating the solutions of adjacent blocks with Ligate,
// which refines the frequencies of the concatenated candidates only.
//
// Both SolveEM and Ligate share one EM recurrence. They differ in the
// candidate universe, in how the compatible pairs of a genotype are
// found, and, for Ligate, in how expected counts are accumulated (see
// LigationMode).
//
// The blocks of one ligation level are independent. With
// Options.Parallel, Infer solves them concurrently using the pargo
// library; the results do not depend on this setting.
package phasing
