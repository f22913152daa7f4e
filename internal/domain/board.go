package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DepartureBoard is an append-only, insertion-ordered list of flights.
// It is not safe for concurrent use.
type DepartureBoard struct {
	airport    Airport
	flights    []Flight
	timeLayout string
}

func NewDepartureBoard(airport Airport, flights ...Flight) *DepartureBoard {
	b := &DepartureBoard{
		airport:    airport,
		flights:    make([]Flight, 0, len(flights)),
		timeLayout: FullTimeLayout,
	}
	for _, f := range flights {
		b.flights = append(b.flights, f.clone())
	}
	return b
}

// SetTimeLayout sets how departures are written in alerts; see ResolveTimeLayout.
func (b *DepartureBoard) SetTimeLayout(layout string) {
	b.timeLayout = ResolveTimeLayout(layout)
}

func (b *DepartureBoard) Airport() Airport {
	return b.airport
}

// AddFlight appends without validation; duplicates are kept.
func (b *DepartureBoard) AddFlight(flight Flight) {
	b.flights = append(b.flights, flight.clone())
}

// Flights returns a copy of the board in insertion order.
func (b *DepartureBoard) Flights() []Flight {
	out := make([]Flight, 0, len(b.flights))
	for _, f := range b.flights {
		out = append(out, f.clone())
	}
	return out
}

func (b *DepartureBoard) Len() int {
	return len(b.flights)
}

// Alerts builds the passenger messages for every flight, in board order.
func (b *DepartureBoard) Alerts() []Alert {
	alerts := make([]Alert, 0, len(b.flights))
	for _, f := range b.flights {
		for _, msg := range alertMessages(f, b.timeLayout) {
			alerts = append(alerts, Alert{
				ID:           uuid.New(),
				Airline:      f.Airline,
				FlightNumber: f.FlightNumber,
				Status:       f.Status,
				Message:      msg,
			})
		}
	}
	return alerts
}

// AlertPassengers sends every alert to sink, stopping at the first sink error.
func (b *DepartureBoard) AlertPassengers(ctx context.Context, sink AlertSink) error {
	for _, a := range b.Alerts() {
		if err := sink.Send(ctx, a); err != nil {
			return fmt.Errorf("alert flight %s %d: %w", a.Airline, a.FlightNumber, err)
		}
	}
	return nil
}
