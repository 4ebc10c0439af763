package search

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/p7r0x7/autosum/sentence"
	"github.com/zeebo/xxh3"
	"go.uber.org/goleak"
)

// Copyright © 2023 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

func TestChecksumVector(t *testing.T) {
	t.Parallel()
	if sum := New(io.Discard).Sum([]byte("123456789")); sum != 0xcbf43926 {
		t.Fatalf("checksum of \"123456789\" = %#x, want 0xcbf43926", sum)
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()
	for _, n := range [...]int{1, 2, 3, 5, 7, 16, 31, 255} {
		ranges := Partition(n)
		if len(ranges) != n {
			t.Fatalf("Partition(%d) returned %d ranges", n, len(ranges))
		}
		if ranges[0].Start != 0 || ranges[n-1].End != space {
			t.Fatalf("Partition(%d) spans [%d, %d)", n, ranges[0].Start, ranges[n-1].End)
		}
		for k := 0; k < n; k++ {
			if ranges[k].Start >= ranges[k].End {
				t.Fatalf("Partition(%d)[%d] is empty or inverted", n, k)
			}
			if k > 0 && ranges[k].Start != ranges[k-1].End {
				t.Fatalf("Partition(%d) has a gap or overlap at range %d", n, k)
			}
		}
	}
	if len(Partition(0)) != 1 {
		t.Fatal("Partition(0) did not fall back to a single range")
	}
}

// A candidate whose rendered string has no hex letters must skip the uppercase pass entirely,
// halving the oracle calls for that value.
func TestCaseSkip(t *testing.T) {
	t.Parallel()
	calls, s := 0, New(io.Discard)
	s.Sum = func([]byte) uint32 { calls++; return 1 << 31 }

	s.Sweep(Range{0x01234567, 0x01234568}, false) /* "01234567": digits only */
	if calls != sentence.MaxOps {
		t.Errorf("letterless candidate took %d oracle calls, want %d", calls, sentence.MaxOps)
	}

	calls = 0
	s.Sweep(Range{0x0000000a, 0x0000000b}, false) /* "0000000a"/"0000000A" */
	if calls != 2*sentence.MaxOps {
		t.Errorf("lettered candidate took %d oracle calls, want %d", calls, 2*sentence.MaxOps)
	}
}

// With an oracle rigged to land on exactly one sentence, the sweep must report that sentence as a
// hit and stay silent about everything else.
func TestHitDetection(t *testing.T) {
	t.Parallel()
	const i, op = uint32(42), 0b0000111
	target := sentence.Generate(op, sentence.CRCString(i, false))

	out := &bytes.Buffer{}
	s := New(out)
	s.Sum = func(p []byte) uint32 {
		if string(p) == target {
			return i
		}
		return 1 << 31 /* Far from every candidate under test. */
	}
	s.Sweep(Range{40, 45}, false)

	if hits := strings.Count(out.String(), "HIT: "); hits != 1 {
		t.Fatalf("got %d hits, want 1:\n%s", hits, out.String())
	}
	if !strings.Contains(out.String(), "HIT: (i=42, op=000000111, dist=0)") {
		t.Errorf("hit line malformed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "\n"+target+"\n") {
		t.Errorf("hit block lacks the sentence itself:\n%s", out.String())
	}
	if strings.Contains(out.String(), "NEAR MISS") {
		t.Errorf("unexpected near miss:\n%s", out.String())
	}
}

// Distances of exactly Distance are not near misses; anything strictly closer (either side) is.
func TestNearMissBoundary(t *testing.T) {
	t.Parallel()
	const i = uint32(0x01234567) /* Letterless, so one case pass. */
	out := &bytes.Buffer{}
	s := New(out)

	s.Sum = func([]byte) uint32 { return i + 25 }
	s.Sweep(Range{uint64(i), uint64(i) + 1}, false)
	if out.Len() != 0 {
		t.Errorf("distance 25 was reported:\n%s", out.String())
	}

	s.Sum = func([]byte) uint32 { return i - 24 }
	s.Sweep(Range{uint64(i), uint64(i) + 1}, false)
	if misses := strings.Count(out.String(), "NEAR MISS (i=19088743, op="); misses != sentence.MaxOps {
		t.Errorf("got %d near misses, want %d", misses, sentence.MaxOps)
	}
	if !strings.Contains(out.String(), "dist=-24)") {
		t.Errorf("near-miss distance malformed:\n%s", out.String())
	}
}

func TestSweepProgress(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	s := New(out)
	s.Sum = func([]byte) uint32 { return 1 << 31 }

	s.Sweep(Range{0, 512}, true)
	if got := out.String(); got != "0% complete.\n50% complete.\n" {
		t.Errorf("progress output = %q", got)
	}

	out.Reset()
	s.Sweep(Range{0, 512}, false)
	if out.Len() != 0 {
		t.Errorf("non-reporter printed progress: %q", out.String())
	}
}

func BenchmarkSweep(b *testing.B) {
	s := New(io.Discard)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Sweep(Range{uint64(i) & 0xffffffff, uint64(i)&0xffffffff + 1}, false)
	}
}

func BenchmarkCRC32(b *testing.B) {
	text := []byte(sentence.Generate(0b10011111, "deadbeef"))
	sum := New(io.Discard).Sum
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum(text)
	}
}

func BenchmarkXXH3(b *testing.B) {
	text := []byte(sentence.Generate(0b10011111, "deadbeef"))
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(text)
	}
}
