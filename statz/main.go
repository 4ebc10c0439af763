package main

import (
	. "fmt"
	"hash/crc32"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/autosum/sentence"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2023 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* Statz estimates how many candidate sentences per second a single core can test and what each one
costs in cycles, for the CRC-32 oracle the search actually uses and for heavier hashes one might be
tempted to swap in. Cycle counts come from polling the TSC while each benchmark runs. */

var calltime = gotsc.TSCOverhead()

var oracles = [...]struct {
	name string
	sum  func([]byte) uint32
}{
	{"CRC-32 ", crc32.ChecksumIEEE},
	{"XXH3   ", func(p []byte) uint32 { return uint32(xxh3.Hash(p)) }},
	{"BLAKE3 ", func(p []byte) uint32 {
		d := blake3.Sum256(p)
		return uint32(d[0])<<24 | uint32(d[1])<<16 | uint32(d[2])<<8 | uint32(d[3])
	}},
	{"SHA-256", func(p []byte) uint32 {
		d := sha256.Sum256(p)
		return uint32(d[0])<<24 | uint32(d[1])<<16 | uint32(d[2])<<8 | uint32(d[3])
	}},
}

// benchOracle times the full render-generate-checksum treatment of one candidate value per
// iteration and returns sentences per second plus, when the TSC is usable, cycles per sentence.
func benchOracle(sum func([]byte) uint32) (perSec, cycles float64) {
	totalHz, polls, mut := uint64(0), uint64(0), &sync.Mutex{}
	if calltime > 0 {
		go func() {
			for {
				tsc1 := gotsc.BenchStart()
				time.Sleep(time.Millisecond)
				tsc2 := gotsc.BenchEnd()

				mut.Lock()
				totalHz += tsc2 - tsc1 - calltime
				polls++
				mut.Unlock()

				time.Sleep(time.Millisecond * 9)
			}
		}()
	}
	r := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			crcString := sentence.CRCString(uint32(i), i&1 != 0)
			for op := 0; op < sentence.MaxOps; op++ {
				sum([]byte(sentence.Generate(op, crcString)))
			}
		}
	})
	mut.Lock()
	defer mut.Unlock()

	perSec = float64(r.N) * sentence.MaxOps / r.T.Seconds()
	if polls > 0 {
		hz := float64(totalHz) / float64(polls) * 1000
		cycles = hz / perSec
	}
	return perSec, cycles
}

func main() {
	Printf("Running Statz on %d CPUs!\n\n"+
		"         sentences/s   cycles/sentence\n", runtime.NumCPU())
	t := time.Now()

	for _, v := range oracles {
		perSec, cycles := benchOracle(v.sum)
		if cycles > 0 {
			Printf("%s  %12.0f   %15.1f\n", v.name, perSec, cycles)
		} else {
			Printf("%s  %12.0f   %15s\n", v.name, perSec, "n/a")
		}
	}

	Printf("\nFinished in %s on %s/%s.\n", time.Since(t), runtime.GOOS, runtime.GOARCH)
}
