package seatmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat prices in VND. The rules below are an ordered tie-break contract:
// a seat matching several rules always takes the earliest match.
const (
	ExitRowPrice  int64 = 300000
	FrontRowPrice int64 = 200000
	WindowPrice   int64 = 150000
	AislePrice    int64 = 120000
	MiddlePrice   int64 = 100000
)

// ExitRows are the absolute row numbers priced as emergency-exit rows.
// They are flight-global, not per-class: if business rows happen to cover
// 12 or 13, those rows still price as exit rows. Kept as observed; scoping
// exit rows per class would be a change to this set only.
var ExitRows = map[int]bool{1: true, 12: true, 13: true}

// frontRowMax is the last row priced as front-of-cabin.
const frontRowMax = 5

var (
	windowLetters = map[string]bool{"A": true, "F": true, "K": true}
	aisleLetters  = map[string]bool{"C": true, "D": true, "H": true, "J": true}
)

// ParseSeatCode splits a seat code like "12A" into row and column letter.
func ParseSeatCode(code string) (row int, letter string, err error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return 0, "", fmt.Errorf("invalid seat code %q", code)
	}
	letter = code[len(code)-1:]
	if letter[0] < 'A' || letter[0] > 'Z' {
		return 0, "", fmt.Errorf("invalid seat code %q", code)
	}
	row, err = strconv.Atoi(code[:len(code)-1])
	if err != nil || row < 1 {
		return 0, "", fmt.Errorf("invalid seat code %q", code)
	}
	return row, letter, nil
}

// Price resolves the price of a seat code. Rule order is load-bearing:
// exit row, then front rows, then window, then aisle, then middle.
func Price(code string) (int64, error) {
	row, letter, err := ParseSeatCode(code)
	if err != nil {
		return 0, err
	}
	switch {
	case ExitRows[row]:
		return ExitRowPrice, nil
	case row <= frontRowMax:
		return FrontRowPrice, nil
	case windowLetters[letter]:
		return WindowPrice, nil
	case aisleLetters[letter]:
		return AislePrice, nil
	default:
		return MiddlePrice, nil
	}
}
