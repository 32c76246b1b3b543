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

// Package genotypes defines genotypes and haplotypes over biallelic
// SNPs, the compatibility relation between them, and the enumeration
// of all haplotype pairs that explain a genotype.
//
// Genotypes use the symbols 0 and 1 for homozygous positions and 2
// for heterozygous positions, where the phase is unknown. A pair of
// haplotypes explains a genotype if it reproduces the homozygous
// alleles and splits every heterozygous position into one 0 and one
// 1.
//
// The package also provides simple line-oriented genotype and
// haplotype files, and a generator for random genotype data.
package genotypes
