package cli

import (
	"github.com/spf13/cobra"
)

func alertsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Send an alert to the passengers of every flight",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			return a.service.Announce(cmd.Context())
		},
	}
}
