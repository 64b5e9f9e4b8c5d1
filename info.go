package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danthegoodman1/hgcalntuple/ntuple"
	"github.com/danthegoodman1/hgcalntuple/schema"
	"github.com/danthegoodman1/hgcalntuple/utils"
	"github.com/spf13/cobra"
)

func newInfoCommand(stdout io.Writer) *cobra.Command {
	var tree string
	ccmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print the entry count and columns of an ntuple",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			n, err := ntuple.Open(c.Context(), args[0], tree)
			if err != nil {
				return fmt.Errorf("error in ntuple.Open: %w", err)
			}
			defer n.Close()
			return printInfo(stdout, n)
		},
	}
	ccmd.Flags().StringVar(&tree, "tree", utils.NTUPLE_TREE, "tree path inside a ROOT file, or table name of a parquet file")
	return ccmd
}

func printInfo(w io.Writer, n *ntuple.Ntuple) error {
	columns, err := schema.Describe(n)
	if err != nil {
		return fmt.Errorf("error in schema.Describe: %w", err)
	}
	fmt.Fprintf(w, "events:\t%d\n", n.NEvents())
	fmt.Fprintf(w, "hits:\t%t\n", n.HasHits())
	fmt.Fprintf(w, "columns:\t%d\n\n", len(columns))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tTYPE\tKIND")
	for _, col := range columns {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", col.Name, col.Type, col.Kind)
	}
	return tw.Flush()
}
