package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <type> <hex>",
		Short: "Print the literal for a binary value",
		Long: `Print the literal for a PostgreSQL binary value given as hex. The
value may start with "\x", as psql displays bytea.

Example:
  pgtemporal decode date 000022b5
  pgtemporal --tz America/New_York decode timestamptz '\x0002a5f42cd23c00'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := lookupType(args[0])
			if err != nil {
				return err
			}

			data, err := hex.DecodeString(strings.TrimPrefix(args[1], `\x`))
			if err != nil {
				return fmt.Errorf("invalid hex %q: %w", args[1], err)
			}

			val, err := typ.decode(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	}
	return cmd
}
