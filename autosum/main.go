package main

import (
	. "fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/klauspost/cpuid/v2"
	"github.com/p7r0x7/autosum/search"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
)

// Copyright © 2023 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This program exhaustively searches for autological sentences: sentences that correctly state
// their own CRC-32 checksum, and optionally their own length. It handles various flags, splits the
// 32-bit value space across every spare core, and prints findings as they occur.

const n = "\n"
const success = 0

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits. To consistently correctly render this menu in most
// terminal windows, its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "autosum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "An exhaustive search for sentences that state their own CRC-32.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-j <int>] [-d <int>] [--no-codes]"+n,
		spaces, "[-s <uint>] [-d <int>] [--no-codes]"+n+n+
			"Options:"+n)
	PrintDefaults()
	Fprint(os.Stderr, n+"With no arguments, the entire 32-bit value space is swept; expect that to"+n+
		"take a long while. Long-form flag equivalents are above."+n)
}

func program() int {
	if pHelp {
		help()
		return success
	}

	Print(yell, `A tool to create "autological sentences" for testing/fun, ie: sentences that describe themselves`, zero, n)
	Print("\tSee source code to configure or make changes." + n + n)

	jobs := pJobs
	if jobs < 1 {
		if cores := cpuid.CPU.LogicalCores; cores == 0 {
			Fprint(os.Stderr, purp, "Could not detect cpu cores properly, using 1 thread.", zero, n)
			jobs = 1
		} else {
			Print("Detected ability to use ", cores, " threads."+n)
			if jobs = cores - 1; jobs < 1 {
				/* Leave a core spare only if one exists to spare. */
				jobs = 1
			}
		}
	}

	if pSample > 0 {
		s := search.New(os.Stdout)
		s.Distance = pDistance
		d := s.Sample(int(pSample), [32]byte{}) /* The zero key keeps runs repeatable. */
		Print("done: ", pSample, " samples in ", d.Milliseconds(), "ms"+n)
		return success
	}

	var group sync.WaitGroup
	for k, r := range search.Partition(jobs) {
		group.Add(1)
		go func(k int, r search.Range) {
			s := search.New(os.Stdout)
			s.Distance = pDistance
			d := s.Sweep(r, k == 0) /* The first worker launched reports its percent complete. */
			Printf("done: %d to %d in %dms"+n, r.Start, r.End, d.Milliseconds())
			group.Done()
		}(k, r)
	}
	group.Wait()
	return success
}
