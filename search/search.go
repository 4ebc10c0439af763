package search

import (
	"fmt"
	"hash/crc32"
	"io"
	"time"

	"github.com/p7r0x7/autosum/sentence"
)

// Copyright © 2023 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* This file drives the sentence grammar and the checksum oracle over ranges of candidate values:
each candidate is rendered into every sentence variant in both letter cases, and any variant whose
computed CRC-32 lands on (or near) the candidate itself is reported as it is found. */

// space is one past the largest candidate checksum value.
const space = uint64(1) << 32

// DefaultDistance is the near-miss radius: computed checksums strictly closer than this to the
// candidate value are reported so operators can estimate the empirical hit rate.
const DefaultDistance = 25

const rule = "--------------------------------------------"

// Range is a half-open slice [Start, End) of the 32-bit checksum value space.
type Range struct{ Start, End uint64 }

// Partition splits the full value space into n contiguous, disjoint ranges. The last range absorbs
// the remainder of the division so that coverage is exact.
func Partition(n int) []Range {
	if n < 1 {
		n = 1
	}
	bucket := space / uint64(n)
	ranges := make([]Range, n)
	for k := range ranges {
		ranges[k] = Range{uint64(k) * bucket, uint64(k+1) * bucket}
	}
	ranges[n-1].End = space
	return ranges
}

// A Searcher tests candidate checksum values and writes hit, near-miss, and progress lines to Out.
// Sum is the checksum oracle; zero-value fields are filled in by New.
type Searcher struct {
	Sum      func([]byte) uint32
	Out      io.Writer
	Distance int64
}

// New returns a Searcher backed by the standard CRC-32 (IEEE, reflected) oracle.
func New(w io.Writer) *Searcher {
	return &Searcher{Sum: crc32.ChecksumIEEE, Out: w, Distance: DefaultDistance}
}

// Sweep tests every candidate value in r in ascending order and returns the elapsed wall time.
// When report is set, an integer percentage of this range is printed every 256 candidates, and only
// when it has changed; the percentage is local state, so no cross-worker synchronization exists.
func (s *Searcher) Sweep(r Range, report bool) time.Duration {
	start, last := time.Now(), -1
	for i := r.Start; i < r.End; i++ {
		if report && i&0xff == 0 {
			if per := int((i - r.Start) * 100 / (r.End - r.Start)); per != last {
				last = per
				fmt.Fprintf(s.Out, "%d%% complete.\n", per)
			}
		}
		s.test(uint32(i))
	}
	return time.Since(start)
}

// test renders candidate i in both letter cases and runs every operation code through the oracle.
// A purely numeric checksum string is identical in both cases, so the uppercase pass is skipped.
func (s *Searcher) test(i uint32) {
	for c := 0; c < 2; c++ {
		crcString := sentence.CRCString(i, c == 1)
		for op := 0; op < sentence.MaxOps; op++ {
			text := sentence.Generate(op, crcString)
			dist := int64(s.Sum([]byte(text))) - int64(i)
			if dist == 0 {
				fmt.Fprintf(s.Out, "%s\nHIT: (i=%d, op=%09b, dist=%d)\n%s\n%s\n", rule, i, op, dist, text, rule)
			} else if dist > -s.Distance && dist < s.Distance {
				fmt.Fprintf(s.Out, "NEAR MISS (i=%d, op=%09b, dist=%d): %s\n", i, op, dist, text)
			}
		}
		if !sentence.HasLetters(crcString) {
			break
		}
	}
}
