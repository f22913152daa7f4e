package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	FullTimeLayout  = "2006-01-02 15:04:05 -0700"
	ShortTimeLayout = "3:04 PM"
)

// ResolveTimeLayout maps "" to FullTimeLayout and "short" to ShortTimeLayout;
// anything else is used as a Go time layout.
func ResolveTimeLayout(layout string) string {
	switch layout {
	case "":
		return FullTimeLayout
	case "short":
		return ShortTimeLayout
	}
	return layout
}

type FlightStatus string

const (
	FlightStatusEnRoute   FlightStatus = "EN_ROUTE"
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusCanceled  FlightStatus = "CANCELED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusBoarding  FlightStatus = "BOARDING"
)

var statusLabels = map[FlightStatus]string{
	FlightStatusEnRoute:   "En Route - On Time",
	FlightStatusScheduled: "Scheduled",
	FlightStatusCanceled:  "Canceled",
	FlightStatusDelayed:   "Scheduled - Delayed",
	FlightStatusBoarding:  "Boarding",
}

// Label returns the text shown to passengers on the board.
func (s FlightStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s FlightStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseFlightStatus accepts either the tag ("EN_ROUTE", "en_route") or the label ("En Route - On Time").
func ParseFlightStatus(s string) (FlightStatus, error) {
	s = strings.TrimSpace(s)
	tag := FlightStatus(strings.ToUpper(s))
	if tag.Valid() {
		return tag, nil
	}
	for status, label := range statusLabels {
		if strings.EqualFold(label, s) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown flight status %q", s)
}

type Airline string

const (
	AirlineDelta     Airline = "Delta"
	AirlineUnited    Airline = "United"
	AirlineSouthwest Airline = "Southwest"
	AirlineAmerican  Airline = "American"
)

var airlines = []Airline{AirlineDelta, AirlineUnited, AirlineSouthwest, AirlineAmerican}

func (a Airline) String() string {
	return string(a)
}

func ParseAirline(s string) (Airline, error) {
	s = strings.TrimSpace(s)
	for _, a := range airlines {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown airline %q", s)
}

// Flight is a value: departure and terminal are nil when not yet known.
type Flight struct {
	Airline      Airline
	FlightNumber int
	Departure    *time.Time
	Terminal     *string
	Destination  Airport
	Status       FlightStatus
}

// NewFlight copies the optional fields so the returned flight shares no state with the caller.
func NewFlight(airline Airline, number int, departure *time.Time, terminal *string, destination Airport, status FlightStatus) Flight {
	return Flight{
		Airline:      airline,
		FlightNumber: number,
		Departure:    departure,
		Terminal:     terminal,
		Destination:  destination,
		Status:       status,
	}.clone()
}

// clone returns f with its optional fields pointing at fresh copies.
func (f Flight) clone() Flight {
	if f.Departure != nil {
		d := *f.Departure
		f.Departure = &d
	}
	if f.Terminal != nil {
		t := *f.Terminal
		f.Terminal = &t
	}
	return f
}

func (f Flight) DepartureOr(layout, placeholder string) string {
	if f.Departure == nil {
		return placeholder
	}
	return f.Departure.Format(layout)
}

func (f Flight) TerminalOr(placeholder string) string {
	if f.Terminal == nil {
		return placeholder
	}
	return *f.Terminal
}
