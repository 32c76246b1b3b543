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

// hapEM infers haplotypes from population genotype data with an
// expectation-maximization haplotyper and its partition-ligation
// extension.
//
// Please see https://github.com/exascience/hapem for a documentation
// of the tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/exascience/hapem/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: infer, phase, compare")
	fmt.Fprint(os.Stderr, "\n", cmd.InferHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.PhaseHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.CompareHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Incorrect number of parameters.")
		fmt.Fprintln(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(0)
	}

	var err error
	switch os.Args[1] {
	case "infer":
		err = cmd.Infer(os.Args[2:])
	case "phase":
		err = cmd.Phase(os.Args[2:])
	case "compare":
		err = cmd.Compare(os.Args[2:])
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		err = cmd.Infer(os.Args[1:])
	}
	if err != nil {
		log.Fatal(err)
	}
}
