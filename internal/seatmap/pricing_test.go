package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_RulePrecedence(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int64
	}{
		{"exit row wins over window", "12A", 300000},
		{"exit row wins over aisle", "13C", 300000},
		{"row one is an exit row", "1D", 300000},
		{"front row wins over window", "3A", 200000},
		{"front row wins over middle", "5B", 200000},
		{"window left", "20A", 150000},
		{"window right", "20F", 150000},
		{"window wide-body", "20K", 150000},
		{"aisle", "20C", 120000},
		{"aisle right", "20D", 120000},
		{"aisle wide-body", "20H", 120000},
		{"aisle wide-body J", "20J", 120000},
		{"middle", "20B", 100000},
		{"middle E", "20E", 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrice_Pure(t *testing.T) {
	first, err := Price("7E")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Price("7E")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPrice_LowercaseCode(t *testing.T) {
	got, err := Price("12a")
	require.NoError(t, err)
	assert.Equal(t, ExitRowPrice, got)
}

func TestPrice_InvalidCodes(t *testing.T) {
	for _, code := range []string{"", "A", "12", "A12", "0A", "-1A", "12?"} {
		_, err := Price(code)
		assert.Error(t, err, "code %q", code)
	}
}

func TestParseSeatCode(t *testing.T) {
	row, letter, err := ParseSeatCode("34K")
	require.NoError(t, err)
	assert.Equal(t, 34, row)
	assert.Equal(t, "K", letter)
}

func TestExitRows_FlightGlobal(t *testing.T) {
	// The exit-row set is absolute row numbers shared by every class on
	// the flight.
	assert.True(t, ExitRows[1])
	assert.True(t, ExitRows[12])
	assert.True(t, ExitRows[13])
	assert.False(t, ExitRows[14])
}
