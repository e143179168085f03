package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theory/pgtemporal/types"
)

// microsecondPrecision rounds parsed literals to the PostgreSQL resolution.
const microsecondPrecision = 6

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <type> <literal>",
		Short: "Print the binary encoding of a literal",
		Long: `Print the PostgreSQL binary encoding of a literal as hex.

Example:
  pgtemporal encode date 2024-04-29
  pgtemporal --tz America/New_York encode timestamptz '2023-08-15 12:34:56'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := lookupType(args[0])
			if err != nil {
				return err
			}

			parsed, ok := types.ParseTime(args[1], microsecondPrecision)
			if !ok {
				return fmt.Errorf("%w: invalid %v literal %q", types.ErrSQLType, typ.name, args[1])
			}

			val, err := typ.coerce(cmd.Context(), parsed)
			if err != nil {
				return err
			}

			data, err := val.AppendBinary(nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\\x%v\n", hex.EncodeToString(data))
			return nil
		},
	}
	return cmd
}
