package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Domenick1991/departures/internal/fare"
)

// demoCmd walks through the whole board: both row formats, the passenger
// alerts, then the fare for 2 bags, 2000 miles and 3 travelers.
func demoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the board, alert passengers and price a sample trip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			board := a.service.Board()

			a.printer.PrintDepartures(out, board)
			fmt.Fprintln(out)
			a.printer.PrintDepartures2(out, board)
			fmt.Fprintln(out)
			if err := a.service.Announce(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out)

			amount, err := fare.CalculateAirfare(2, 2000, 3)
			if err != nil {
				return err
			}
			printFare(cmd, amount, true)
			return nil
		},
	}
}
