package domain

import "fmt"

type Airport struct {
	City string `yaml:"city"`
	IATA string `yaml:"iata"`
}

// String renders the airport as "City(IATA)".
func (a Airport) String() string {
	return fmt.Sprintf("%s(%s)", a.City, a.IATA)
}
