package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/service"
)

// MockQuoteService is a mock implementation of QuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) GetFlight(ctx context.Context, flightID string) (*catalog.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Flight), args.Error(1)
}

func (m *MockQuoteService) GetSeatMap(ctx context.Context, flightID, scheduleID string) (*service.SeatMapResponse, error) {
	args := m.Called(ctx, flightID, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeatMapResponse), args.Error(1)
}

func (m *MockQuoteService) GetOccupancy(ctx context.Context, flightID, scheduleID string) ([]catalog.SeatStatus, error) {
	args := m.Called(ctx, flightID, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SeatStatus), args.Error(1)
}

func (m *MockQuoteService) Quote(ctx context.Context, req service.QuoteRequest) (*service.QuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QuoteResponse), args.Error(1)
}

func (m *MockQuoteService) UpdateOccupancy(ctx context.Context, flightID, scheduleID string, seats []catalog.SeatStatus) error {
	args := m.Called(ctx, flightID, scheduleID, seats)
	return args.Error(0)
}
