package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/departures/internal/domain"
	"go.uber.org/zap"
)

// ConsoleSender writes each alert message as one line to w.
type ConsoleSender struct {
	w      io.Writer
	logger *zap.Logger
}

func NewConsoleSender(w io.Writer, logger *zap.Logger) *ConsoleSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleSender{w: w, logger: logger}
}

func (s *ConsoleSender) Send(ctx context.Context, alert domain.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.w, alert.Message); err != nil {
		return fmt.Errorf("write alert: %w", err)
	}
	s.logger.Debug("alert sent",
		zap.String("alert_id", alert.ID.String()),
		zap.String("airline", alert.Airline.String()),
		zap.Int("flight_number", alert.FlightNumber),
		zap.String("status", string(alert.Status)),
	)
	return nil
}

var _ domain.AlertSink = (*ConsoleSender)(nil)
