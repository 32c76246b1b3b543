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

// Package clark provides two simple haplotype inference methods that
// serve as points of comparison for the EM haplotyper of package
// phasing: an exhaustive search for a smallest explaining set of
// haplotypes, and Clark's greedy inference rule.
//
// Baseline is exponential in the number of haplotypes and is only
// usable for a handful of SNPs. It is meant as a test oracle for
// small instances, not for production use.
package clark
