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

package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/exascience/hapem/clark"
	"github.com/exascience/hapem/genotypes"
	"github.com/exascience/hapem/internal"
	"github.com/exascience/hapem/phasing"
)

// CompareHelp is the help string for this command.
const CompareHelp = "compare parameters:\n" +
	"hapem compare nr-of-genotypes nr-of-snps\n" +
	"[--seed n]\n" +
	"[--log-path path]\n"

// Compare implements the hapem compare command. It runs EM, Clark's
// method, and, for very few SNPs, the exhaustive baseline on the same
// random genotypes and reports the sizes of their solutions.
func Compare(args []string) error {
	var (
		seed    int64
		logPath string
	)

	var flags flag.FlagSet
	flags.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for the random genotype generator")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	if len(args) < 2 {
		usage(CompareHelp)
	}
	nrOfGenotypes := getPositiveInt(args[0], CompareHelp)
	nrOfSNPs := getPositiveInt(args[1], CompareHelp)
	parseFlags(&flags, args[2:], CompareHelp)

	setLogOutput(logPath)

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " compare ", nrOfGenotypes, " ", nrOfSNPs)
	fmt.Fprint(&command, " --seed ", seed)
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}
	log.Println("Executing command:\n", command.String())

	gs := genotypes.Generate(internal.NewRand(seed), nrOfGenotypes, nrOfSNPs)

	opts := phasing.DefaultOptions()
	if nrOfSNPs <= opts.MaxDenseWidth {
		result, err := phasing.SolveEM(gs, opts)
		if err != nil {
			return err
		}
		fmt.Println("Size of solution from EM:", len(result.Haplotypes))
	} else {
		log.Printf("Skipping EM: %v SNPs exceed the exhaustive EM limit of %v.\n", nrOfSNPs, opts.MaxDenseWidth)
	}

	resolution, err := clark.Clark(gs)
	if err != nil {
		return err
	}
	fmt.Printf("Size of solution from Clark's method: %v (%v genotypes unresolved)\n", len(resolution.Haplotypes), len(resolution.Unresolved))

	if nrOfSNPs <= clark.MaxBaselineWidth {
		optimal, err := clark.Baseline(gs)
		if err != nil {
			return err
		}
		fmt.Println(nrOfSNPs, "SNPs, optimal solution:", len(optimal), "haplotypes.")
	} else {
		log.Printf("Skipping baseline: %v SNPs exceed the baseline limit of %v.\n", nrOfSNPs, clark.MaxBaselineWidth)
	}
	return nil
}
