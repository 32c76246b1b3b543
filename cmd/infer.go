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

	"github.com/exascience/hapem/genotypes"
	"github.com/exascience/hapem/internal"
	"github.com/exascience/hapem/phasing"
)

// InferHelp is the help string for this command.
const InferHelp = "infer parameters:\n" +
	"hapem [infer] nr-of-genotypes nr-of-snps\n" +
	"[--seed n]\n" +
	"[--output haplotype-file]\n" +
	phasingFlagsHelp

// Infer implements the hapem infer command. It runs the EM-PL
// haplotyper and plain EM on random genotypes and reports the sizes
// of both solutions.
func Infer(args []string) error {
	var (
		pf     phasingFlags
		seed   int64
		output string
	)

	var flags flag.FlagSet
	pf.register(&flags)
	flags.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for the random genotype generator")
	flags.StringVar(&output, "output", "", "write the EM-PL haplotypes to a file")

	if len(args) < 2 {
		usage(InferHelp)
	}
	nrOfGenotypes := getPositiveInt(args[0], InferHelp)
	nrOfSNPs := getPositiveInt(args[1], InferHelp)
	parseFlags(&flags, args[2:], InferHelp)

	setLogOutput(pf.logPath)

	// sanity checks

	opts, success := pf.check()
	if output != "" && !checkCreate("--output", output) {
		success = false
	}
	if !success {
		fmt.Fprint(os.Stderr, InferHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " infer ", nrOfGenotypes, " ", nrOfSNPs)
	fmt.Fprint(&command, " --seed ", seed)
	if output != "" {
		fmt.Fprint(&command, " --output ", output)
	}
	pf.describe(&command)

	// executing command

	log.Println("Executing command:\n", command.String())

	gs := genotypes.Generate(internal.NewRand(seed), nrOfGenotypes, nrOfSNPs)

	var (
		result *phasing.Result
		err    error
	)
	timedRun(pf.timed, pf.profile, "Running EM-PL.", 1, func() {
		result, err = phasing.Infer(gs, opts)
	})
	if err != nil {
		return err
	}
	fmt.Println("Size of solution from EM-PL:", len(result.Haplotypes))

	if nrOfSNPs <= opts.MaxDenseWidth {
		var plain *phasing.Result
		timedRun(pf.timed, pf.profile, "Running plain EM.", 2, func() {
			plain, err = phasing.SolveEM(gs, opts)
		})
		if err != nil {
			return err
		}
		fmt.Println("Size of solution from EM:", len(plain.Haplotypes))
	} else {
		log.Printf("Skipping plain EM: %v SNPs exceed the exhaustive EM limit of %v.\n", nrOfSNPs, opts.MaxDenseWidth)
	}

	if output != "" {
		genotypes.ToHaplotypeFile(output, result.Haplotypes, result.Weights)
	}
	return nil
}
