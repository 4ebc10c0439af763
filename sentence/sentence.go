package sentence

import (
	"strconv"
	"strings"
)

// Copyright © 2023 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* This file renders every variant of the fixed sentence grammar from a compact operation code and a
pre-rendered checksum string. Generation is pure and total: any code below MaxOps and any string
yield a sentence, so callers can enumerate the whole space without error handling. */

// MaxOps is one past the largest valid operation code. The grammar only decodes the low 8 bits, so
// the upper half of the space repeats the lower half verbatim.
const MaxOps = 512

var openings = [4]string{
	"",
	"believe it or not, ",
	"useful for testing, ",
	"handily, ",
}

var bodies = [4]string{
	"this text has a CRC of",
	"this string has a CRC of",
	"this has a CRC of",
	"have a CRC value of", /* Prefixed by "I " or "I happen to ". */
}

// Generate builds the sentence variant selected by op around crcString. Field layout of op, LSB
// first: 2 bits body template, capitalize flag, full-stop flag, colon flag, 2 bits opening phrase,
// append-length flag.
func Generate(op int, crcString string) string {
	body := op & 0b11
	capital := op&0b100 != 0
	fullStop := op&0b1000 != 0
	colon := op&0b10000 != 0
	opening := op & 0b1100000 >> 5
	appendLength := op&0b10000000 != 0

	var out strings.Builder
	if opening != 0 {
		phrase := openings[opening]
		if capital {
			out.WriteByte(phrase[0] &^ 0x20)
			phrase = phrase[1:]
			capital = false /* The opening consumes the capital. */
		}
		out.WriteString(phrase)
	}

	if body == 3 {
		/* Not using a lowercase 'i' for self. */
		if capital {
			out.WriteString("I ")
		} else {
			out.WriteString("I happen to ")
		}
		out.WriteString(bodies[3])
	} else {
		if capital {
			out.WriteByte('T')
		} else {
			out.WriteByte('t')
		}
		out.WriteString(bodies[body][1:])
	}
	if colon {
		out.WriteString(": ")
	} else {
		out.WriteByte(' ')
	}
	out.WriteString(crcString)

	if appendLength {
		out.WriteString(" and a length of ")

		/* The claimed length must count the full stop that may still follow. */
		strLen := out.Len()
		if fullStop {
			strLen++
		}
		/* It must also count its own decimal rendering; appending those digits can in turn grow
		the digit count, so one second-order correction is applied. */
		chars := digits(strLen)
		strLen += chars
		if digits(strLen) > chars {
			strLen++
		}
		out.WriteString(strconv.Itoa(strLen))
	}

	if fullStop {
		out.WriteByte('.')
	}
	return out.String()
}

// CRCString renders v as the 8-character, zero-padded hexadecimal string injected into sentences.
func CRCString(v uint32, upperCase bool) string {
	if upperCase {
		return strings.ToUpper(strconv.FormatUint(uint64(v)|1<<32, 16)[1:])
	}
	return strconv.FormatUint(uint64(v)|1<<32, 16)[1:]
}

// HasLetters reports whether s contains any ASCII letters; a rendered checksum string without them
// is identical in both cases.
func HasLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i] | 0x20; c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}

func digits(n int) int {
	count := 1
	for n > 9 {
		n /= 10
		count++
	}
	return count
}
