package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const (
	// AlertPlaceholder stands in for an unknown departure time or terminal in alerts.
	AlertPlaceholder = "TBD"

	InfoDeskMessage = "Please see the nearest information desk for more details."
)

type Alert struct {
	ID           uuid.UUID
	Airline      Airline
	FlightNumber int
	Status       FlightStatus
	Message      string
}

// AlertSink receives passenger alerts in board order.
type AlertSink interface {
	Send(ctx context.Context, alert Alert) error
}

// alertMessages returns the lines for one flight, selected purely by status.
func alertMessages(f Flight, layout string) []string {
	terminal := f.TerminalOr(AlertPlaceholder)

	var msgs []string
	switch f.Status {
	case FlightStatusBoarding:
		msgs = append(msgs, fmt.Sprintf("Your flight is boarding, please head to terminal: %s immediately. The doors are closing soon.", terminal))
	case FlightStatusCanceled:
		return []string{fmt.Sprintf("We're sorry your flight to %s was canceled, here is a $500 voucher", f.Destination.City)}
	case FlightStatusScheduled:
		msgs = append(msgs, fmt.Sprintf("Your flight to %s is scheduled to depart at %s from terminal: %s",
			f.Destination.City, f.DepartureOr(layout, AlertPlaceholder), terminal))
	case FlightStatusDelayed:
		return []string{"Your flight is delayed. It will arrive shortly."}
	case FlightStatusEnRoute:
		return []string{"Your flight is on the way."}
	default:
		return []string{fmt.Sprintf("Your flight status is %s.", f.Status.Label())}
	}

	if f.Terminal == nil {
		msgs = append(msgs, InfoDeskMessage)
	}
	return msgs
}
