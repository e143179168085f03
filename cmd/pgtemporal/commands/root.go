package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/theory/pgtemporal/types"
)

// Execute runs the pgtemporal CLI with the arguments in os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var tzName string
	root := &cobra.Command{
		Use:          "pgtemporal",
		Short:        "Encode and decode PostgreSQL date and time binary values",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			tz, err := time.LoadLocation(tzName)
			if err != nil {
				return fmt.Errorf("invalid --tz %q: %w", tzName, err)
			}
			cmd.SetContext(types.ContextWithTZ(cmd.Context(), tz))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&tzName, "tz", "UTC", "session time zone (IANA name)")

	root.AddCommand(encodeCmd(), decodeCmd(), typesCmd())
	return root
}
