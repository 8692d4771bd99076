package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatsPerRow(t *testing.T) {
	assert.Equal(t, 4, SeatsPerRow(Business, OneTwoOne))
	assert.Equal(t, 6, SeatsPerRow(Business, ThreeThree))
	assert.Equal(t, 6, SeatsPerRow(Economy, OneTwoOne))
	assert.Equal(t, 6, SeatsPerRow(PremiumEconomy, ThreeThree))
}

func TestRowsFor(t *testing.T) {
	tests := []struct {
		seats, perRow, want int
	}{
		{24, 6, 4},
		{8, 4, 2},
		{25, 6, 5},
		{1, 6, 1},
		{0, 6, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RowsFor(tt.seats, tt.perRow), "seats=%d perRow=%d", tt.seats, tt.perRow)
	}
}

func TestGenerate_BusinessOneTwoOne(t *testing.T) {
	l := Generate(Business, OneTwoOne, 8, 0)
	assert.Equal(t, 1, l.StartRow)
	assert.Equal(t, 2, l.EndRow)
	assert.Equal(t, [][]string{{"A"}, {"D", "E"}, {"K"}}, l.ColumnGroups)
	assert.Equal(t, []string{"A", "D", "E", "K"}, l.Columns())
}

func TestGenerate_BusinessThreeThree(t *testing.T) {
	l := Generate(Business, ThreeThree, 12, 0)
	assert.Equal(t, 1, l.StartRow)
	assert.Equal(t, 2, l.EndRow)
	assert.Equal(t, [][]string{{"A", "C", "D"}, {"H", "J", "K"}}, l.ColumnGroups)
}

func TestGenerate_EconomyStacksAfterEarlierClasses(t *testing.T) {
	l := Generate(Economy, OneTwoOne, 24, 10)
	assert.Equal(t, 11, l.StartRow)
	assert.Equal(t, 14, l.EndRow)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E", "F"}}, l.ColumnGroups)
}

func TestPlan_RowsGloballyUnique(t *testing.T) {
	layouts := Plan(OneTwoOne, []ClassInventory{
		{Class: Economy, Seats: 120},
		{Class: Business, Seats: 8},
		{Class: PremiumEconomy, Seats: 24},
	})
	require.Len(t, layouts, 3)

	// Cabin order front to back regardless of input order.
	assert.Equal(t, Business, layouts[0].Class)
	assert.Equal(t, PremiumEconomy, layouts[1].Class)
	assert.Equal(t, Economy, layouts[2].Class)

	// Business: 8 seats at 4 per row -> rows 1-2.
	assert.Equal(t, 1, layouts[0].StartRow)
	assert.Equal(t, 2, layouts[0].EndRow)
	// Premium economy: 24 seats at 6 per row -> rows 3-6.
	assert.Equal(t, 3, layouts[1].StartRow)
	assert.Equal(t, 6, layouts[1].EndRow)
	// Economy: 120 seats at 6 per row -> rows 7-26.
	assert.Equal(t, 7, layouts[2].StartRow)
	assert.Equal(t, 26, layouts[2].EndRow)

	seen := make(map[int]CabinClass)
	for _, l := range layouts {
		for _, r := range l.Rows() {
			_, dup := seen[r]
			assert.False(t, dup, "row %d used by two classes", r)
			seen[r] = l.Class
		}
	}
}

func TestPlan_SkipsEmptyClasses(t *testing.T) {
	layouts := Plan(ThreeThree, []ClassInventory{
		{Class: Business, Seats: 0},
		{Class: Economy, Seats: 6},
	})
	require.Len(t, layouts, 1)
	assert.Equal(t, Economy, layouts[0].Class)
	assert.Equal(t, 1, layouts[0].StartRow)
}

func TestLayout_SeatCodes(t *testing.T) {
	l := Generate(Business, OneTwoOne, 8, 0)
	codes := l.SeatCodes()
	assert.Equal(t, []string{"1A", "1D", "1E", "1K", "2A", "2D", "2E", "2K"}, codes)
}

func TestLayout_Contains(t *testing.T) {
	l := Generate(Economy, ThreeThree, 24, 10) // rows 11-14, columns A-F
	assert.True(t, l.Contains("11A"))
	assert.True(t, l.Contains("14F"))
	assert.False(t, l.Contains("10A"))
	assert.False(t, l.Contains("15A"))
	assert.False(t, l.Contains("11K"))
	assert.False(t, l.Contains("bogus"))
}

func TestParseCabinClass(t *testing.T) {
	tests := []struct {
		in      string
		want    CabinClass
		wantErr bool
	}{
		{"Economy", Economy, false},
		{"economy", Economy, false},
		{"BUSINESS", Business, false},
		{"Premium Economy", PremiumEconomy, false},
		{"premium_economy", PremiumEconomy, false},
		{"first", Economy, true},
	}
	for _, tt := range tests {
		got, err := ParseCabinClass(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestConventionFor(t *testing.T) {
	assert.Equal(t, OneTwoOne, ConventionFor("Vietnam Airlines"))
	assert.Equal(t, OneTwoOne, ConventionFor("vietnam airlines"))
	assert.Equal(t, ThreeThree, ConventionFor("VietJet Air"))
	assert.Equal(t, ThreeThree, ConventionFor(""))
}
