package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "villadash",
	Short: "Villa rental admin dashboard backend",
	Long: `villadash serves the villa rental admin dashboard. It signs in against the
villa API, keeps the session tokens, caches villas and bookings, and derives
calendars and price previews from them.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the command line; serve is the default command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newCalendarCommand())
	rootCmd.AddCommand(newQuoteCommand())
}
