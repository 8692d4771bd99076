package seatmap

import (
	"fmt"
	"strings"
)

// CabinClass is one of the closed catalog of cabin tiers.
type CabinClass int

const (
	Economy CabinClass = iota
	PremiumEconomy
	Business
)

// String returns the catalog class name.
func (c CabinClass) String() string {
	switch c {
	case Business:
		return "Business"
	case PremiumEconomy:
		return "Premium Economy"
	default:
		return "Economy"
	}
}

// ParseCabinClass resolves a class name case-insensitively.
func ParseCabinClass(name string) (CabinClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "economy":
		return Economy, nil
	case "premium economy", "premium_economy":
		return PremiumEconomy, nil
	case "business":
		return Business, nil
	}
	return Economy, fmt.Errorf("unknown cabin class %q", name)
}

// Convention distinguishes wide-bodied 1-2-1 carriers from narrow-bodied
// 3-3 carriers. It decides the business-cabin row shape.
type Convention int

const (
	ThreeThree Convention = iota
	OneTwoOne
)

// ConventionFor maps an airline name to its cabin convention. Wide-body
// carriers get the 1-2-1 business layout; everyone else flies 3-3.
func ConventionFor(airlineName string) Convention {
	if strings.EqualFold(strings.TrimSpace(airlineName), "Vietnam Airlines") {
		return OneTwoOne
	}
	return ThreeThree
}
