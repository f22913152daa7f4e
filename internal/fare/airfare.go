package fare

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	BagCost  = 25.00
	MileCost = 0.10
)

var (
	ErrNegativeBags     = errors.New("checked bags must not be negative")
	ErrNegativeDistance = errors.New("distance must not be negative")
	ErrInvalidTravelers = errors.New("travelers must be at least 1")
)

// CalculateAirfare returns (BagCost*checkedBags + MileCost*distance) * travelers.
func CalculateAirfare(checkedBags, distance, travelers int) (float64, error) {
	if checkedBags < 0 {
		return 0, ErrNegativeBags
	}
	if distance < 0 {
		return 0, ErrNegativeDistance
	}
	if travelers < 1 {
		return 0, ErrInvalidTravelers
	}

	ticket := BagCost*float64(checkedBags) + MileCost*float64(distance)
	return ticket * float64(travelers), nil
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders amount as US dollars with cents, e.g. "$750.00".
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}
