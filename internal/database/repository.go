package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
)

// Repository is the Postgres-backed flight catalog. It implements
// catalog.Provider and catalog.OccupancyStore.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository over a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetFlightByID returns a flight with its class inventory and upcoming
// schedules.
func (r *Repository) GetFlightByID(ctx context.Context, id string) (*catalog.Flight, error) {
	query := `
		SELECT id, airline_name, flight_number, origin, destination,
		       departure_time, arrival_time
		FROM flights
		WHERE id = $1
	`

	var f catalog.Flight
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.AirlineName, &f.FlightNumber, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	if f.Classes, err = r.getFlightClasses(ctx, id); err != nil {
		return nil, err
	}
	if f.UpcomingSchedules, err = r.getUpcomingSchedules(ctx, id); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) getFlightClasses(ctx context.Context, flightID string) ([]catalog.FlightClass, error) {
	query := `
		SELECT class_name, price, available_seats
		FROM flight_classes
		WHERE flight_id = $1
		ORDER BY price DESC
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight classes: %w", err)
	}
	defer rows.Close()

	var classes []catalog.FlightClass
	for rows.Next() {
		var c catalog.FlightClass
		if err := rows.Scan(&c.ClassName, &c.Price, &c.AvailableSeats); err != nil {
			return nil, fmt.Errorf("failed to scan flight class: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func (r *Repository) getUpcomingSchedules(ctx context.Context, flightID string) ([]catalog.Schedule, error) {
	query := `
		SELECT id, departure_time, arrival_time, remaining_seats, current_price
		FROM schedules
		WHERE flight_id = $1 AND departure_time > NOW()
		ORDER BY departure_time ASC
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []catalog.Schedule
	for rows.Next() {
		var s catalog.Schedule
		if err := rows.Scan(&s.ID, &s.DepartureTime, &s.ArrivalTime, &s.RemainingSeats, &s.CurrentPrice); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// GetSeatMap returns the occupancy snapshot for a flight schedule. No
// rows is a valid snapshot: every seat is available.
func (r *Repository) GetSeatMap(ctx context.Context, flightID, scheduleID string) ([]catalog.SeatStatus, error) {
	query := `
		SELECT seat_number, status
		FROM seat_occupancy
		WHERE flight_id = $1 AND schedule_id = $2
		ORDER BY seat_number
	`

	rows, err := r.pool.Query(ctx, query, flightID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seat occupancy: %w", err)
	}
	defer rows.Close()

	var seats []catalog.SeatStatus
	for rows.Next() {
		var s catalog.SeatStatus
		if err := rows.Scan(&s.SeatNumber, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan seat status: %w", err)
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// PutSeatStatuses upserts occupancy rows pushed from the booking backend.
func (r *Repository) PutSeatStatuses(ctx context.Context, flightID, scheduleID string, seats []catalog.SeatStatus) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range seats {
		_, err := tx.Exec(ctx, `
			INSERT INTO seat_occupancy (flight_id, schedule_id, seat_number, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (flight_id, schedule_id, seat_number)
			DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		`, flightID, scheduleID, s.SeatNumber, s.Status)
		if err != nil {
			return fmt.Errorf("failed to upsert seat status: %w", err)
		}
	}

	return tx.Commit(ctx)
}
