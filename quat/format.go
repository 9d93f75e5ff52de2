package quat

import (
	"math"
	"strconv"
	"strings"
)

// String returns the canonical rendering, e.g. "1.0+2.0i-j+4.0k".
//
// Zero components are omitted (-0 included); unit coefficients ±1 drop the
// number. A quaternion with no nonzero component renders as "0".
func (q Quaternion) String() string {
	var sb strings.Builder
	appendTerm := func(term string) {
		if sb.Len() > 0 && term[0] != '-' {
			sb.WriteByte('+')
		}
		sb.WriteString(term)
	}

	if q.a != 0 {
		appendTerm(FormatFloat(q.a))
	}
	for _, t := range [...]struct {
		v    float64
		unit string
	}{{q.b, "i"}, {q.c, "j"}, {q.d, "k"}} {
		switch {
		case t.v == 0:
		case t.v == 1:
			appendTerm(t.unit)
		case t.v == -1:
			appendTerm("-" + t.unit)
		default:
			appendTerm(FormatFloat(t.v) + t.unit)
		}
	}

	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// FormatFloat renders f with the shortest digits that round-trip.
//
// Decimal exponents in [-4, 16) use positional notation with at least one
// fractional digit ("1.0", "0.0001"); others use scientific notation with
// a signed two-digit exponent ("1e+16", "1.5e-05").
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if f != 0 {
		exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return sci
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
