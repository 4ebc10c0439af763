package main

import (
	. "github.com/spf13/pflag"
	"os"
)

// Copyright © 2023 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pJobs, pDistance, pNoCodesDefault = 0, int64(25), false
var pHelp, pNoCodes bool
var pSample uint
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	Int64VarP(&pDistance, "distance", "d", 25,
		purp+"report computed checksums strictly closer than this to"+zero+
			n+purp+"the candidate value as near misses"+zero)

	IntVarP(&pJobs, "jobs", "j", 0,
		purp+"set the worker thread count"+zero+" (default one per spare"+
			n+"core)")

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes"+zero)

	UintVarP(&pSample, "sample", "s", 0,
		purp+"probe this many keystream-chosen candidates instead of"+zero+
			n+purp+"sweeping the full 32-bit space"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
