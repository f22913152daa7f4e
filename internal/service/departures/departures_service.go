package departures

import (
	"context"
	"fmt"

	"github.com/Domenick1991/departures/internal/domain"
	"go.uber.org/zap"
)

type DepartureUseCase interface {
	Board() *domain.DepartureBoard
	List() []domain.Flight
	AddFlight(flight domain.Flight)
	Announce(ctx context.Context) error
}

type DepartureService struct {
	board  *domain.DepartureBoard
	sink   domain.AlertSink
	logger *zap.Logger
}

func NewDepartureService(board *domain.DepartureBoard, sink domain.AlertSink, logger *zap.Logger) *DepartureService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartureService{board: board, sink: sink, logger: logger}
}

func (s *DepartureService) Board() *domain.DepartureBoard {
	return s.board
}

func (s *DepartureService) List() []domain.Flight {
	return s.board.Flights()
}

func (s *DepartureService) AddFlight(flight domain.Flight) {
	s.board.AddFlight(flight)
	s.logger.Debug("flight added",
		zap.String("airline", flight.Airline.String()),
		zap.Int("flight_number", flight.FlightNumber),
		zap.String("destination", flight.Destination.IATA),
		zap.String("status", string(flight.Status)),
	)
}

// Announce alerts every passenger on the board through the configured sink.
func (s *DepartureService) Announce(ctx context.Context) error {
	airport := s.board.Airport()
	s.logger.Info("alerting passengers",
		zap.String("airport", airport.IATA),
		zap.Int("flights", s.board.Len()),
	)
	if err := s.board.AlertPassengers(ctx, s.sink); err != nil {
		s.logger.Error("alert passengers", zap.Error(err))
		return fmt.Errorf("announce departures at %s: %w", airport.IATA, err)
	}
	return nil
}

var _ DepartureUseCase = (*DepartureService)(nil)
