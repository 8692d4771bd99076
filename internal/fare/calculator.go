package fare

import (
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/seatmap"
)

// PricingConfig is the rate card for add-ons and age-based fare tiers.
// It is passed in rather than read from package globals so tests can vary
// the rates.
type PricingConfig struct {
	BaggageUnitPrice   int64 // per extra checked bag, VND
	InsuranceUnitPrice int64 // per passenger, VND
	ChildFarePercent   int64 // of base price
	InfantFarePercent  int64 // of base price
}

// DefaultPricingConfig returns the production rate card.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BaggageUnitPrice:   200000,
		InsuranceUnitPrice: 150000,
		ChildFarePercent:   90,
		InfantFarePercent:  10,
	}
}

// PassengerCounts is the age composition of a booking. Adults must be at
// least one for a bookable fare.
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total returns the passenger total, the hard cap on seat selections.
func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// AddOns are the optional extras attached to a booking.
type AddOns struct {
	ExtraBaggageCount int  `json:"extraBaggageCount"`
	Insurance         bool `json:"insurance"`
}

// Breakdown is the derived fare. It is recomputed from current state on
// every read, never stored.
type Breakdown struct {
	TicketTotal    int64 `json:"ticketTotal"`
	BaggageTotal   int64 `json:"baggageTotal"`
	InsuranceTotal int64 `json:"insuranceTotal"`
	SeatTotal      int64 `json:"seatTotal"`
	GrandTotal     int64 `json:"grandTotal"`
}

// Calculate combines the per-age ticket prices, add-ons and the seat-price
// sum into a fare breakdown. Child and infant fares use integer percent
// arithmetic truncating toward zero, which matches the observed float
// truncation for any base price that is a multiple of 10.
func Calculate(cfg PricingConfig, basePrice int64, pax PassengerCounts, addOns AddOns, selectedSeats []string) Breakdown {
	childFare := basePrice * cfg.ChildFarePercent / 100
	infantFare := basePrice * cfg.InfantFarePercent / 100

	var b Breakdown
	b.TicketTotal = int64(pax.Adults)*basePrice +
		int64(pax.Children)*childFare +
		int64(pax.Infants)*infantFare
	b.BaggageTotal = int64(addOns.ExtraBaggageCount) * cfg.BaggageUnitPrice
	if addOns.Insurance {
		b.InsuranceTotal = int64(pax.Total()) * cfg.InsuranceUnitPrice
	}
	for _, code := range selectedSeats {
		price, err := seatmap.Price(code)
		if err != nil {
			continue // unparseable codes contribute nothing
		}
		b.SeatTotal += price
	}
	b.GrandTotal = b.TicketTotal + b.BaggageTotal + b.InsuranceTotal + b.SeatTotal
	return b
}
