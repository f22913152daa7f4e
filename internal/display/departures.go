// Package display renders a departure board as text rows, one line per flight.
package display

import (
	"fmt"
	"io"

	"github.com/Domenick1991/departures/internal/domain"
)

const DefaultPlaceholder = "TBA"

type Printer struct {
	timeLayout  string
	placeholder string
}

// NewPrinter returns a printer using layout for departure times and placeholder
// for absent departure or terminal. Empty arguments fall back to the defaults;
// layout "short" selects domain.ShortTimeLayout.
func NewPrinter(layout, placeholder string) *Printer {
	layout = domain.ResolveTimeLayout(layout)
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Printer{timeLayout: layout, placeholder: placeholder}
}

var defaultPrinter = NewPrinter("", "")

func PrintDepartures(w io.Writer, board *domain.DepartureBoard) {
	defaultPrinter.PrintDepartures(w, board)
}

func PrintDepartures2(w io.Writer, board *domain.DepartureBoard) {
	defaultPrinter.PrintDepartures2(w, board)
}

// PrintDepartures writes "City(IATA) Airline Number Departure Terminal Status" per flight.
func (p *Printer) PrintDepartures(w io.Writer, board *domain.DepartureBoard) {
	for _, f := range board.Flights() {
		fmt.Fprintln(w, p.FormatRow(f))
	}
}

// PrintDepartures2 writes the labeled form of each row.
func (p *Printer) PrintDepartures2(w io.Writer, board *domain.DepartureBoard) {
	for _, f := range board.Flights() {
		fmt.Fprintln(w, p.FormatVerboseRow(f))
	}
}

func (p *Printer) FormatRow(f domain.Flight) string {
	return fmt.Sprintf("%s %s %d %s %s %s",
		f.Destination, f.Airline, f.FlightNumber,
		f.DepartureOr(p.timeLayout, p.placeholder),
		f.TerminalOr(p.placeholder),
		f.Status.Label())
}

func (p *Printer) FormatVerboseRow(f domain.Flight) string {
	return fmt.Sprintf("Destination: %s Airline: %s Flight: %d Departure Time: %s Terminal: %s Status: %s",
		f.Destination, f.Airline, f.FlightNumber,
		f.DepartureOr(p.timeLayout, p.placeholder),
		f.TerminalOr(p.placeholder),
		f.Status.Label())
}

func FormatRow(f domain.Flight) string {
	return defaultPrinter.FormatRow(f)
}

func FormatVerboseRow(f domain.Flight) string {
	return defaultPrinter.FormatVerboseRow(f)
}
