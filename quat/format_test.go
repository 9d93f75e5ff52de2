package quat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringCanonical(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		q    Quaternion
		want string
	}{
		{Quaternion{}, "0"},
		{New(1, 0, 0, 0), "1.0"},
		{New(0, 1, 0, 0), "i"},
		{New(0, -1, 0, 0), "-i"},
		{New(0, 0, 1, 0), "j"},
		{New(0, 0, 0, -1), "-k"},
		{New(1, 2, 3, 4), "1.0+2.0i+3.0j+4.0k"},
		{New(1, -2, 0, 4), "1.0-2.0i+4.0k"},
		{New(-1, -1, -1, -1), "-1.0-i-j-k"},
		{New(0, 1, 1, 1), "i+j+k"},
		{New(0, 0, -2.5, 1), "-2.5j+k"},
		{New(0.5, 0, 0, -0.25), "0.5-0.25k"},
		{New(negZero, negZero, 0, 0), "0"},
		{New(negZero, 3, 0, 0), "3.0i"},
		{New(1e16, 0, 0, 1.5e-5), "1e+16+1.5e-05k"},
		{New(0, -1e20, 0, 0), "-1e+20i"},
		{New(math.Inf(1), 0, 0, math.Inf(-1)), "inf-infk"},
		{New(0, math.NaN(), 0, 0), "nani"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}

func TestStringerIntegration(t *testing.T) {
	var s interface{ String() string } = New(1, -2, 0, 4)
	assert.Equal(t, "1.0-2.0i+4.0k", s.String())
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-2, "-2.0"},
		{0.1, "0.1"},
		{0.30000000000000004, "0.30000000000000004"},
		{1.0 / 3, "0.3333333333333333"},
		{123456.789, "123456.789"},
		{1e15, "1000000000000000.0"},
		{9999999999999998, "9999999999999998.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{0.0001, "0.0001"},
		{0.00012, "0.00012"},
		{0.00001, "1e-05"},
		{-2.5e-7, "-2.5e-07"},
		{5e-324, "5e-324"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f))
		})
	}
}

func TestFormatFloatRuntimeSum(t *testing.T) {
	x, y := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", FormatFloat(x+y))
	assert.Equal(t, "0.30000000000000004i", New(0, x+y, 0, 0).String())
}
