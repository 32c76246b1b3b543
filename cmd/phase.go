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

	"github.com/exascience/hapem/genotypes"
	"github.com/exascience/hapem/internal"
	"github.com/exascience/hapem/phasing"
)

// PhaseHelp is the help string for this command.
const PhaseHelp = "phase parameters:\n" +
	"hapem phase genotype-file haplotype-file\n" +
	phasingFlagsHelp

// Phase implements the hapem phase command. It reads genotypes from
// a file, runs the EM-PL haplotyper, and writes the haplotypes with
// their frequencies.
func Phase(args []string) error {
	var pf phasingFlags

	var flags flag.FlagSet
	pf.register(&flags)

	if len(args) < 2 {
		usage(PhaseHelp)
	}
	input := getFilename(args[0], PhaseHelp)
	output := getFilename(args[1], PhaseHelp)
	parseFlags(&flags, args[2:], PhaseHelp)

	setLogOutput(pf.logPath)

	// sanity checks

	opts, success := pf.check()
	if !checkExist("", input) {
		success = false
	}
	if !checkCreate("", output) {
		success = false
	}
	if !success {
		fmt.Fprint(os.Stderr, PhaseHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " phase ", input, " ", output)
	pf.describe(&command)

	// executing command

	log.Println("Executing command:\n", command.String())

	fullInput, err := internal.FullPathname(input)
	if err != nil {
		return err
	}
	gs, err := genotypes.ParseGenotypeFile(fullInput)
	if err != nil {
		return err
	}
	log.Printf("Read %v genotypes of %v SNPs from %v.\n", len(gs), len(gs[0]), fullInput)

	var result *phasing.Result
	timedRun(pf.timed, pf.profile, "Running EM-PL.", 1, func() {
		result, err = phasing.Infer(gs, opts)
	})
	if err != nil {
		return err
	}
	log.Printf("Inferred %v haplotypes.\n", len(result.Haplotypes))
	genotypes.ToHaplotypeFile(output, result.Haplotypes, result.Weights)
	return nil
}
