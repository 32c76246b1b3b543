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
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/exascience/hapem/internal"
	"github.com/exascience/hapem/phasing"
	"github.com/exascience/hapem/utils"
)

// ProgramMessage is the first line printed when the hapem binary is
// called.
var ProgramMessage string

func init() {
	ProgramMessage = fmt.Sprint(
		"\n", utils.ProgramName, " version ", utils.ProgramVersion,
		" compiled with ", runtime.Version(), " ", internal.PedanticMessage,
		"- see ", utils.ProgramURL, " for more information.\n",
	)
}

// HelpMessage is printed to show the --help flag
const HelpMessage = "Print command details:\n" +
	"[--help]\n"

// usage prints the help string and exits with status 0. Missing or
// malformed positional parameters are not treated as errors.
func usage(help string) {
	fmt.Fprint(os.Stderr, help)
	os.Exit(0)
}

func getFilename(s, help string) string {
	switch s {
	case "-h", "--h", "-help", "--help":
		usage(help)
	default:
		if strings.HasPrefix(s, "-") {
			log.Println("Filename(s) in command line missing.")
			fmt.Fprint(os.Stderr, help)
			os.Exit(1)
		}
	}
	return s
}

// getPositiveInt parses a positional count, or prints the help string
// and exits if that is not possible.
func getPositiveInt(s, help string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "Expected a positive integer, got %v.\n", s)
		usage(help)
	}
	return n
}

func parseFlags(flags *flag.FlagSet, args []string, help string) {
	flags.SetOutput(ioutil.Discard)
	if err := flags.Parse(args); err != nil {
		x := 0
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			x = 1
		}
		fmt.Fprint(os.Stderr, help)
		os.Exit(x)
	}
	if flags.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Cannot parse remaining parameters:", flags.Args())
		fmt.Fprint(os.Stderr, help)
		os.Exit(1)
	}
}

// phasingFlags are the command line parameters shared by the
// commands that run the EM haplotyper.
type phasingFlags struct {
	opts                               phasing.Options
	firstIndexLigation, rejectOddBlocks bool
	timed                              bool
	nrOfThreads                        int
	logPath, profile                   string
}

const phasingFlagsHelp = "[--region-width n]\n" +
	"[--max-iterations n]\n" +
	"[--ligation-iterations n]\n" +
	"[--epsilon e]\n" +
	"[--threshold t]\n" +
	"[--first-index-ligation]\n" +
	"[--reject-odd-blocks]\n" +
	"[--nr-of-threads n]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n"

func (pf *phasingFlags) register(flags *flag.FlagSet) {
	pf.opts = phasing.DefaultOptions()
	flags.IntVar(&pf.opts.RegionWidth, "region-width", pf.opts.RegionWidth, "number of SNPs per partition block")
	flags.IntVar(&pf.opts.MaxIterations, "max-iterations", pf.opts.MaxIterations, "maximum number of EM rounds per block")
	flags.IntVar(&pf.opts.LigationIterations, "ligation-iterations", pf.opts.LigationIterations, "maximum number of EM rounds per ligation")
	flags.Float64Var(&pf.opts.Epsilon, "epsilon", 0, "stop EM early when frequencies change less than this")
	flags.Float64Var(&pf.opts.Threshold, "threshold", pf.opts.Threshold, "minimum frequency of a reported haplotype")
	flags.BoolVar(&pf.firstIndexLigation, "first-index-ligation", false, "count unnormalized ligation weights for the first pair member only")
	flags.BoolVar(&pf.rejectOddBlocks, "reject-odd-blocks", false, "fail instead of carrying an odd block to the next level")
	flags.IntVar(&pf.nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&pf.timed, "timed", false, "measure the runtime")
	flags.StringVar(&pf.profile, "profile", "", "write a CPU profile")
	flags.StringVar(&pf.logPath, "log-path", "", "write log files to the specified directory")
}

// check performs sanity checks and returns the resulting options.
func (pf *phasingFlags) check() (phasing.Options, bool) {
	success := true
	if pf.nrOfThreads < 0 {
		log.Println("Error: Invalid nr-of-threads: ", pf.nrOfThreads)
		success = false
	}
	if pf.opts.RegionWidth < 1 || pf.opts.RegionWidth > pf.opts.MaxDenseWidth {
		log.Printf("Error: Invalid region-width %v, expected a value between 1 and %v.\n", pf.opts.RegionWidth, pf.opts.MaxDenseWidth)
		success = false
	}
	if pf.opts.MaxIterations < 1 || pf.opts.LigationIterations < 1 {
		log.Println("Error: The number of EM rounds must be positive.")
		success = false
	}
	if pf.opts.Epsilon < 0 {
		log.Println("Error: Invalid epsilon: ", pf.opts.Epsilon)
		success = false
	}
	if pf.opts.Threshold < 0 || pf.opts.Threshold >= 1 {
		log.Println("Error: Invalid threshold: ", pf.opts.Threshold)
		success = false
	}
	opts := pf.opts
	if pf.firstIndexLigation {
		opts.Ligation = phasing.LigateFirstIndex
	}
	if pf.rejectOddBlocks {
		opts.OddBlocks = phasing.RejectOdd
	}
	if pf.nrOfThreads > 0 {
		runtime.GOMAXPROCS(pf.nrOfThreads)
	}
	opts.Parallel = runtime.GOMAXPROCS(0) > 1
	opts.Verbose = pf.timed
	return opts, success
}

// describe appends the flags to a command line for the log.
func (pf *phasingFlags) describe(command *bytes.Buffer) {
	fmt.Fprint(command, " --region-width ", pf.opts.RegionWidth)
	fmt.Fprint(command, " --max-iterations ", pf.opts.MaxIterations)
	fmt.Fprint(command, " --ligation-iterations ", pf.opts.LigationIterations)
	if pf.opts.Epsilon > 0 {
		fmt.Fprint(command, " --epsilon ", pf.opts.Epsilon)
	}
	fmt.Fprint(command, " --threshold ", pf.opts.Threshold)
	if pf.firstIndexLigation {
		fmt.Fprint(command, " --first-index-ligation")
	}
	if pf.rejectOddBlocks {
		fmt.Fprint(command, " --reject-odd-blocks")
	}
	if pf.nrOfThreads > 0 {
		fmt.Fprint(command, " --nr-of-threads ", pf.nrOfThreads)
	}
	if pf.timed {
		fmt.Fprint(command, " --timed")
	}
	if pf.profile != "" {
		fmt.Fprint(command, " --profile ", pf.profile)
	}
	if pf.logPath != "" {
		fmt.Fprint(command, " --log-path ", pf.logPath)
	}
}

func logCheckFile(parameter, format string, v ...interface{}) {
	if parameter != "" {
		log.Printf(format+" for command line parameter %v.\n", append(v, parameter)...)
	} else {
		log.Printf(format+".\n", v...)
	}
}

func checkExist(parameter, filename string) bool {
	if len(filename) == 0 {
		logCheckFile(parameter, "Error: Missing filename")
		return false
	}
	if filename[0] == '-' {
		logCheckFile(parameter, "Error: Missing filename before %v", filename)
		return false
	}
	if _, err := os.Stat(filename); err == nil {
		return true
	} else if os.IsNotExist(err) {
		logCheckFile(parameter, "Error: File %v does not exist", filename)
		return false
	} else if os.IsPermission(err) {
		logCheckFile(parameter, "Error: No permission to read file %v", filename)
		return false
	} else {
		logCheckFile(parameter, "Error %v when trying to access file %v", err, filename)
		return false
	}
}

func checkCreate(parameter, filename string) bool {
	if len(filename) == 0 {
		logCheckFile(parameter, "Error: Missing filename")
		return false
	}
	if filename[0] == '-' {
		logCheckFile(parameter, "Error: Missing filename before %v", filename)
		return false
	}
	if _, err := os.Stat(filename); err == nil {
		// Assume that the file has been written by previous hapem runs, and can be overwritten.
		return true
	}
	err := os.MkdirAll(filepath.Dir(filename), 0700)
	if err == nil {
		err = ioutil.WriteFile(filename, nil, 0666)
	}
	if err != nil {
		if os.IsPermission(err) {
			logCheckFile(parameter, "Error: No permission to create file %v", filename)
		} else {
			logCheckFile(parameter, "Error %v when trying to create file %v", err, filename)
		}
		return false
	}
	_ = os.Remove(filename)
	return true
}

func createLogFilename() string {
	t := time.Now()
	zone, _ := t.Zone()
	return fmt.Sprintf("logs/hapem/hapem-%d-%02d-%02d-%02d-%02d-%02d-%09d-%v.log", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone)
}

func setLogOutput(path string) {
	logPath := createLogFilename()
	var fullPath string
	if path == "" {
		fullPath = filepath.Join(os.Getenv("HOME"), logPath)
	} else {
		fullPath = filepath.Join(path, logPath)
	}
	internal.MkdirAll(filepath.Dir(fullPath), 0700)
	f := internal.FileCreate(fullPath)
	fmt.Fprintln(f, ProgramMessage)

	orgStderr, err := unix.Dup(2)
	if err != nil {
		log.Panic(err)
	}
	ferr := os.NewFile(uintptr(orgStderr), "/dev/stderr")
	if err := unix.Dup2(int(f.Fd()), 2); err != nil {
		log.Panic(err)
	}

	multi := io.MultiWriter(f, ferr)

	log.SetOutput(multi)
	log.Println("Created log file at", fullPath)
	log.Println("Run id:", uuid.New())
	log.Println("Command line:", os.Args)
}

func timedRun(timed bool, profile, msg string, phase int64, f func()) {
	if profile != "" {
		filename := profile + strconv.FormatInt(phase, 10) + ".prof"
		file := internal.FileCreate(filename)
		defer internal.Close(file)
		if err := pprof.StartCPUProfile(file); err != nil {
			log.Panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	if timed {
		log.Println(msg)
		start := time.Now()
		defer func() {
			end := time.Now()
			log.Println("Elapsed time: ", end.Sub(start))
		}()
	}
	f()
}
