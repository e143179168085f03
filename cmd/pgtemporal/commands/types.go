package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/lib/pq/oid"
	"github.com/spf13/cobra"
)

func typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the supported types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOID\tDRIVER NAME")
			for _, typ := range pgTypes {
				fmt.Fprintf(w, "%v\t%d\t%v\n", typ.name, typ.oid, oid.TypeName[typ.oid])
			}
			return w.Flush()
		},
	}
	return cmd
}
