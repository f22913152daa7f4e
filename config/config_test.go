package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
board:
  airport: {city: Detroit, iata: DTW}
  flights:
    - airline: american
      flight_number: 2764
      terminal: E83
      destination: {city: San Francisco, iata: SFO}
      status: canceled
    - airline: Delta
      flight_number: 2987
      departure: "2019-05-30T17:09:20Z"
      destination: {city: Atlanta, iata: ATL}
      status: Scheduled
    - airline: United
      flight_number: 780
      terminal: ""
      destination: {city: Houston, iata: IAH}
      status: boarding
display:
  time_layout: short
  placeholder: "--"
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "short", cfg.Display.TimeLayout)
	assert.Equal(t, "--", cfg.Display.Placeholder)
	assert.Equal(t, "debug", cfg.Log.Level)

	board, err := cfg.BuildBoard()
	require.NoError(t, err)
	assert.Equal(t, domain.Airport{City: "Detroit", IATA: "DTW"}, board.Airport())

	flights := board.Flights()
	require.Len(t, flights, 3)

	assert.Equal(t, domain.AirlineAmerican, flights[0].Airline)
	assert.Equal(t, domain.FlightStatusCanceled, flights[0].Status)
	assert.Nil(t, flights[0].Departure)
	require.NotNil(t, flights[0].Terminal)
	assert.Equal(t, "E83", *flights[0].Terminal)

	assert.Equal(t, domain.FlightStatusScheduled, flights[1].Status)
	assert.Nil(t, flights[1].Terminal)
	require.NotNil(t, flights[1].Departure)
	assert.True(t, flights[1].Departure.Equal(time.Date(2019, 5, 30, 17, 9, 20, 0, time.UTC)))

	assert.Nil(t, flights[2].Terminal, "empty terminal means not assigned yet")

	var messages []string
	for _, a := range board.Alerts() {
		messages = append(messages, a.Message)
	}
	assert.Equal(t, []string{
		"We're sorry your flight to San Francisco was canceled, here is a $500 voucher",
		"Your flight to Atlanta is scheduled to depart at 5:09 PM from terminal: TBD",
		domain.InfoDeskMessage,
		"Your flight is boarding, please head to terminal: TBD immediately. The doors are closing soon.",
		domain.InfoDeskMessage,
	}, messages)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown status", "board:\n  flights:\n    - {airline: Delta, status: diverted}\n", ErrUnknownStatus},
		{"unknown airline", "board:\n  flights:\n    - {airline: KLM, status: boarding}\n", ErrUnknownAirline},
		{"bad departure", "board:\n  flights:\n    - {airline: Delta, status: boarding, departure: \"tomorrow\"}\n", ErrInvalidDeparture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "board: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestDefault(t *testing.T) {
	now := time.Date(2019, 5, 30, 17, 9, 20, 0, time.UTC)

	board, err := Default(now).BuildBoard()
	require.NoError(t, err)

	flights := board.Flights()
	require.Len(t, flights, 3)
	assert.Equal(t, "DTW", board.Airport().IATA)

	assert.Equal(t, "SFO", flights[0].Destination.IATA)
	assert.Nil(t, flights[0].Departure)
	assert.Equal(t, "E83", flights[0].TerminalOr(""))

	assert.Equal(t, domain.FlightStatusEnRoute, flights[1].Status)
	assert.True(t, flights[1].Departure.Equal(now))

	assert.Equal(t, domain.FlightStatusScheduled, flights[2].Status)
	assert.Nil(t, flights[2].Terminal)
}
