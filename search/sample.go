package search

import (
	"encoding/binary"
	"time"

	"github.com/aead/chacha20/chacha"
)

// Copyright © 2023 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* Random probing of the candidate space, for estimating hit density without committing to a full
sweep. Candidates are drawn from a ChaCha8 keystream so that runs with the same key are exactly
repeatable. */

const sampleBuf = 4 << 10

// Sample tests count candidate values drawn from the keystream keyed by key, giving each the same
// two-case treatment as Sweep, and returns the elapsed wall time.
func (s *Searcher) Sample(count int, key [chacha.KeySize]byte) time.Duration {
	start := time.Now()
	nonce := [chacha.NonceSize]byte{}
	stream, _ := chacha.NewCipher(nonce[:], key[:], 8) /* Inputs are fixed-size; cannot fail. */

	zero, buf := make([]byte, sampleBuf), make([]byte, sampleBuf)
	for count > 0 {
		stream.XORKeyStream(buf, zero)
		for off := 0; off+4 <= sampleBuf && count > 0; off += 4 {
			s.test(binary.LittleEndian.Uint32(buf[off:]))
			count--
		}
	}
	return time.Since(start)
}
