package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Domenick1991/departures/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownStatus    = errors.New("unknown flight status")
	ErrUnknownAirline   = errors.New("unknown airline")
	ErrInvalidDeparture = errors.New("invalid departure time")
)

type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

type BoardConfig struct {
	Airport domain.Airport `yaml:"airport"`
	Flights []FlightConfig `yaml:"flights"`
}

// FlightConfig is one seeded flight. Departure is RFC3339; an empty
// departure or terminal means the value is not known yet.
type FlightConfig struct {
	Airline      string         `yaml:"airline"`
	FlightNumber int            `yaml:"flight_number"`
	Departure    string         `yaml:"departure"`
	Terminal     *string        `yaml:"terminal"`
	Destination  domain.Airport `yaml:"destination"`
	Status       string         `yaml:"status"`
}

type DisplayConfig struct {
	TimeLayout  string `yaml:"time_layout"`
	Placeholder string `yaml:"placeholder"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.Flights(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default is the Detroit board: a canceled San Francisco flight with no
// departure, an en route Houston flight and a scheduled Atlanta flight
// without a terminal. Departures are stamped with now.
func Default(now time.Time) *Config {
	dep := now.Format(time.RFC3339)
	e83, a03 := "E83", "A03"

	return &Config{
		Board: BoardConfig{
			Airport: domain.Airport{City: "Detroit", IATA: "DTW"},
			Flights: []FlightConfig{
				{
					Airline: "American", FlightNumber: 2764, Terminal: &e83,
					Destination: domain.Airport{City: "San Francisco", IATA: "SFO"}, Status: "CANCELED",
				},
				{
					Airline: "United", FlightNumber: 780, Departure: dep, Terminal: &a03,
					Destination: domain.Airport{City: "Houston", IATA: "IAH"}, Status: "EN_ROUTE",
				},
				{
					Airline: "Delta", FlightNumber: 2987, Departure: dep,
					Destination: domain.Airport{City: "Atlanta", IATA: "ATL"}, Status: "SCHEDULED",
				},
			},
		},
	}
}

// Flights converts the seeded flights into domain values, in file order.
func (c *Config) Flights() ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0, len(c.Board.Flights))
	for i, fc := range c.Board.Flights {
		f, err := fc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("board.flights[%d]: %w", i, err)
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// BuildBoard returns a new board for the configured airport holding the seeded flights.
func (c *Config) BuildBoard() (*domain.DepartureBoard, error) {
	flights, err := c.Flights()
	if err != nil {
		return nil, err
	}
	board := domain.NewDepartureBoard(c.Board.Airport)
	board.SetTimeLayout(c.Display.TimeLayout)
	for _, f := range flights {
		board.AddFlight(f)
	}
	return board, nil
}

func (fc FlightConfig) toDomain() (domain.Flight, error) {
	airline, err := domain.ParseAirline(fc.Airline)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("%w: %q", ErrUnknownAirline, fc.Airline)
	}
	status, err := domain.ParseFlightStatus(fc.Status)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("%w: %q", ErrUnknownStatus, fc.Status)
	}

	var departure *time.Time
	if fc.Departure != "" {
		t, err := time.Parse(time.RFC3339, fc.Departure)
		if err != nil {
			return domain.Flight{}, fmt.Errorf("%w %q: %v", ErrInvalidDeparture, fc.Departure, err)
		}
		departure = &t
	}

	terminal := fc.Terminal
	if terminal != nil && *terminal == "" {
		terminal = nil
	}

	return domain.NewFlight(airline, fc.FlightNumber, departure, terminal, fc.Destination, status), nil
}
