package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/booking"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/fare"
)

func testProvider(t *testing.T) *catalog.MemoryProvider {
	t.Helper()
	p := catalog.NewMemoryProvider()
	dep := time.Now().Add(24 * time.Hour)
	p.AddFlight(&catalog.Flight{
		ID:            "VN1546",
		AirlineName:   "Vietnam Airlines",
		FlightNumber:  "VN1546",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(2 * time.Hour),
		Classes: []catalog.FlightClass{
			{ClassName: "Business", Price: 5000000, AvailableSeats: 8},
			{ClassName: "Premium Economy", Price: 2000000, AvailableSeats: 24},
			{ClassName: "Economy", Price: 1000000, AvailableSeats: 120},
		},
		UpcomingSchedules: []catalog.Schedule{
			{ID: "sched-A", DepartureTime: dep, ArrivalTime: dep.Add(2 * time.Hour)},
			{ID: "sched-B", DepartureTime: dep.Add(24 * time.Hour), ArrivalTime: dep.Add(26 * time.Hour)},
		},
	})
	return p
}

func newTestService(t *testing.T) (QuoteService, *catalog.MemoryProvider) {
	t.Helper()
	p := testProvider(t)
	return NewQuoteService(p, p, nil, fare.DefaultPricingConfig()), p
}

func TestQuote_EndToEnd(t *testing.T) {
	svc, _ := newTestService(t)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		FlightID:      "VN1546",
		ScheduleID:    "sched-A",
		CabinClass:    "Economy",
		Passengers:    fare.PassengerCounts{Adults: 2, Children: 1},
		AddOns:        fare.AddOns{ExtraBaggageCount: 1, Insurance: true},
		SeatSelection: []string{"3A"},
	})
	require.NoError(t, err)

	// Economy base 1,000,000: 2 adults + 1 child at 90% = 2,900,000;
	// bag 200,000; insurance 3 x 150,000; seat 3A front-row 200,000.
	assert.Equal(t, int64(2900000), quote.Fare.TicketTotal)
	assert.Equal(t, int64(200000), quote.Fare.BaggageTotal)
	assert.Equal(t, int64(450000), quote.Fare.InsuranceTotal)
	assert.Equal(t, int64(200000), quote.Fare.SeatTotal)
	assert.Equal(t, int64(3750000), quote.Fare.GrandTotal)

	assert.Equal(t, "sched-A", quote.ScheduleID)
	assert.Equal(t, "economy", quote.CabinClass)
	assert.Equal(t, []string{"3A"}, quote.SeatSelection)
	assert.NotEmpty(t, quote.QuoteID)
}

func TestQuote_DefaultsScheduleAndClass(t *testing.T) {
	svc, _ := newTestService(t)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		FlightID:   "VN1546",
		Passengers: fare.PassengerCounts{Adults: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "sched-A", quote.ScheduleID)
	// First class in the catalog, lower-cased.
	assert.Equal(t, "business", quote.CabinClass)
	assert.Equal(t, int64(5000000), quote.Fare.GrandTotal)
}

func TestQuote_OccupiedSeatRejected(t *testing.T) {
	svc, p := newTestService(t)
	require.NoError(t, p.PutSeatStatuses(context.Background(), "VN1546", "sched-A", []catalog.SeatStatus{
		{SeatNumber: "20A", Status: "booked"},
	}))

	_, err := svc.Quote(context.Background(), QuoteRequest{
		FlightID:      "VN1546",
		ScheduleID:    "sched-A",
		Passengers:    fare.PassengerCounts{Adults: 1},
		SeatSelection: []string{"20A"},
	})
	assert.ErrorIs(t, err, booking.ErrSeatOccupied)
}

func TestQuote_SelectionCapEnforced(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Quote(context.Background(), QuoteRequest{
		FlightID:      "VN1546",
		ScheduleID:    "sched-A",
		Passengers:    fare.PassengerCounts{Adults: 1},
		SeatSelection: []string{"20A", "20B"},
	})
	assert.ErrorIs(t, err, booking.ErrSelectionCapExceeded)
}

func TestQuote_UnknownFlightAndSchedule(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Quote(context.Background(), QuoteRequest{
		FlightID:   "missing",
		Passengers: fare.PassengerCounts{Adults: 1},
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = svc.Quote(context.Background(), QuoteRequest{
		FlightID:   "VN1546",
		ScheduleID: "missing",
		Passengers: fare.PassengerCounts{Adults: 1},
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestQuote_InvalidSeatCode(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Quote(context.Background(), QuoteRequest{
		FlightID:      "VN1546",
		Passengers:    fare.PassengerCounts{Adults: 1},
		SeatSelection: []string{"not-a-seat"},
	})
	assert.Error(t, err)
}

func TestGetSeatMap_SynthesizedLayout(t *testing.T) {
	svc, p := newTestService(t)
	require.NoError(t, p.PutSeatStatuses(context.Background(), "VN1546", "sched-A", []catalog.SeatStatus{
		{SeatNumber: "7A", Status: "booked"},
	}))

	sm, err := svc.GetSeatMap(context.Background(), "VN1546", "sched-A")
	require.NoError(t, err)
	require.Len(t, sm.Cabins, 3)

	// Vietnam Airlines flies 1-2-1 business: 8 seats -> rows 1-2.
	business := sm.Cabins[0]
	assert.Equal(t, "Business", business.ClassName)
	assert.Equal(t, 1, business.StartRow)
	assert.Equal(t, 2, business.EndRow)
	assert.Equal(t, [][]string{{"A"}, {"D", "E"}, {"K"}}, business.ColumnGroups)
	assert.Len(t, business.Seats, 8)

	// Premium economy rows 3-6, economy rows 7-26.
	assert.Equal(t, 3, sm.Cabins[1].StartRow)
	assert.Equal(t, 6, sm.Cabins[1].EndRow)
	assert.Equal(t, 7, sm.Cabins[2].StartRow)
	assert.Equal(t, 26, sm.Cabins[2].EndRow)

	var seat7A, seat12A, seat20B *SeatInfo
	for i := range sm.Cabins[2].Seats {
		s := &sm.Cabins[2].Seats[i]
		switch s.SeatNumber {
		case "7A":
			seat7A = s
		case "12A":
			seat12A = s
		case "20B":
			seat20B = s
		}
	}
	require.NotNil(t, seat7A)
	require.NotNil(t, seat12A)
	require.NotNil(t, seat20B)

	assert.True(t, seat7A.Occupied)
	assert.Equal(t, int64(150000), seat7A.Price)
	// Exit rows are absolute flight-global rows, priced as exit wherever
	// they land.
	assert.False(t, seat12A.Occupied)
	assert.Equal(t, int64(300000), seat12A.Price)
	assert.Equal(t, int64(100000), seat20B.Price)
}

func TestGetSeatMap_UnknownSchedule(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetSeatMap(context.Background(), "VN1546", "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestGetOccupancy_FailOpenOnFetchError(t *testing.T) {
	p := testProvider(t)
	svc := NewQuoteService(failingSeatMapProvider{p}, nil, nil, fare.DefaultPricingConfig())

	seats, err := svc.GetOccupancy(context.Background(), "VN1546", "sched-A")
	require.NoError(t, err)
	assert.Empty(t, seats)
}

func TestUpdateOccupancy_ReadOnlyCatalog(t *testing.T) {
	p := testProvider(t)
	svc := NewQuoteService(p, nil, nil, fare.DefaultPricingConfig())

	err := svc.UpdateOccupancy(context.Background(), "VN1546", "sched-A", []catalog.SeatStatus{
		{SeatNumber: "20A", Status: "booked"},
	})
	assert.ErrorIs(t, err, ErrReadOnlyCatalog)
}

func TestUpdateOccupancy_StoresSnapshot(t *testing.T) {
	svc, p := newTestService(t)

	err := svc.UpdateOccupancy(context.Background(), "VN1546", "sched-A", []catalog.SeatStatus{
		{SeatNumber: "20A", Status: "booked"},
	})
	require.NoError(t, err)

	seats, err := p.GetSeatMap(context.Background(), "VN1546", "sched-A")
	require.NoError(t, err)
	require.Len(t, seats, 1)
	assert.Equal(t, "20A", seats[0].SeatNumber)
}

// failingSeatMapProvider wraps a provider with a failing seat-map fetch.
type failingSeatMapProvider struct {
	*catalog.MemoryProvider
}

func (f failingSeatMapProvider) GetSeatMap(ctx context.Context, flightID, scheduleID string) ([]catalog.SeatStatus, error) {
	return nil, context.DeadlineExceeded
}
