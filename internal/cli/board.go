package cli

import (
	"github.com/spf13/cobra"
)

func boardCmd(opts *options) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the departure board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			if verbose {
				a.printer.PrintDepartures2(cmd.OutOrStdout(), a.service.Board())
			} else {
				a.printer.PrintDepartures(cmd.OutOrStdout(), a.service.Board())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print labeled rows")
	return cmd
}
