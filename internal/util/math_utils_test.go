package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow10(t *testing.T) {
	tests := []struct {
		exp     int
		want    int
		wantErr bool
	}{
		{0, 1, false},
		{1, 10, false},
		{2, 100, false},
		{9, 1_000_000_000, false},
		{18, 1_000_000_000_000_000_000, false},
		{-1, 0, true},
		{19, 0, true},
	}

	for _, tt := range tests {
		got, err := Pow10(tt.exp)
		if tt.wantErr {
			assert.Error(t, err, "exp=%d", tt.exp)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "exp=%d", tt.exp)
	}
}

func TestRoundedQuotient_MatchesFloorPlusHalf(t *testing.T) {
	for dividend := 0; dividend < 100; dividend++ {
		for divisor := 1; divisor < 100; divisor++ {
			want := int(math.Floor(float64(dividend)/float64(divisor) + 0.5))
			got, err := RoundedQuotient(dividend, divisor)
			require.NoError(t, err)
			if got != want {
				t.Fatalf("RoundedQuotient(%d, %d) = %d, want %d", dividend, divisor, got, want)
			}
		}
	}
}

func TestRoundedQuotient_TiesRoundUp(t *testing.T) {
	got, err := RoundedQuotient(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = RoundedQuotient(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRoundedQuotient_InvalidOperands(t *testing.T) {
	_, err := RoundedQuotient(4, 0)
	assert.Error(t, err)

	_, err = RoundedQuotient(-4, 2)
	assert.Error(t, err)
}
