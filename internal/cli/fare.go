package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Domenick1991/departures/internal/fare"
)

func fareCmd() *cobra.Command {
	var (
		bags, distance, travelers int
		currency                  bool
	)

	cmd := &cobra.Command{
		Use:   "fare",
		Short: "Calculate the total airfare for checked bags and distance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := fare.CalculateAirfare(bags, distance, travelers)
			if err != nil {
				return err
			}
			printFare(cmd, amount, currency)
			return nil
		},
	}

	cmd.Flags().IntVar(&bags, "bags", 0, "Checked bags per traveler")
	cmd.Flags().IntVar(&distance, "distance", 0, "Distance in miles")
	cmd.Flags().IntVar(&travelers, "travelers", 1, "Number of travelers")
	cmd.Flags().BoolVar(&currency, "currency", false, "Format the amount in US dollars")
	return cmd
}

func printFare(cmd *cobra.Command, amount float64, currency bool) {
	if currency {
		fmt.Fprintln(cmd.OutOrStdout(), fare.FormatUSD(amount))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", amount)
}
