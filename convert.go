package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/danthegoodman1/hgcalntuple/catalog"
	"github.com/danthegoodman1/hgcalntuple/ntuple"
	"github.com/danthegoodman1/hgcalntuple/schema"
	"github.com/danthegoodman1/hgcalntuple/utils"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	Tree      string
	Table     string
	MaxEvents int
	// plural kind names whose columns are copied, every column when empty
	Kinds []string
}

func newConvertCommand(stdout io.Writer) *cobra.Command {
	var opts convertOptions
	ccmd := &cobra.Command{
		Use:   "convert <file> <out.parquet>",
		Short: "Copy the columns of an ntuple into a parquet file",
		Long: `
Copies every column of every event, or only the id columns and the columns of
the selected kinds, into a local parquet file that can be read back with the
same tools.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			n, err := ntuple.Open(c.Context(), args[0], opts.Tree)
			if err != nil {
				return fmt.Errorf("error in ntuple.Open: %w", err)
			}
			defer n.Close()

			f, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("error creating %s: %w", args[1], err)
			}
			defer f.Close()

			written, err := convert(f, n, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %d events to %s\n", written, args[1])
			return nil
		},
	}

	flags := ccmd.Flags()
	flags.StringVar(&opts.Tree, "tree", utils.NTUPLE_TREE, "tree path inside a ROOT file, or table name of a parquet file")
	flags.StringVar(&opts.Table, "table", "hgc", "table name of the written parquet file")
	flags.IntVar(&opts.MaxEvents, "max-events", int(utils.MAX_EVENTS), "stop after this many events, negative for all")
	flags.StringSliceVar(&opts.Kinds, "kinds", nil, "kinds to copy, e.g. tracks,rechits")
	return ccmd
}

func selectColumns(n *ntuple.Ntuple, names []string) ([]string, error) {
	if len(names) == 0 {
		return n.Columns(), nil
	}
	var prefixes []string
	for _, name := range names {
		k, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown kind %s", name)
		}
		prefixes = append(prefixes, k.Prefix)
	}
	var columns []string
	for _, col := range n.Columns() {
		if utils.ContainsString(catalog.IDColumns, col) {
			columns = append(columns, col)
			continue
		}
		if kind, ok := catalog.KindOfColumn(col); ok && utils.ContainsString(prefixes, kind.Prefix) {
			columns = append(columns, col)
		}
	}
	return columns, nil
}

func convert(w io.Writer, n *ntuple.Ntuple, opts convertOptions) (int, error) {
	columns, err := selectColumns(n, opts.Kinds)
	if err != nil {
		return 0, err
	}

	var rows []map[string]any
	for ev := range n.All() {
		if opts.MaxEvents >= 0 && len(rows) >= opts.MaxEvents {
			break
		}
		row := make(map[string]any, len(columns))
		for _, col := range columns {
			v, err := ev.Column(col)
			if err != nil {
				return 0, fmt.Errorf("error reading %s of entry %d: %w", col, ev.Entry(), err)
			}
			// stores reuse their buffers on the next row
			row[col] = cloneColumn(v)
		}
		rows = append(rows, row)
	}

	if err = schema.WriteParquet(w, opts.Table, rows); err != nil {
		return 0, fmt.Errorf("error in schema.WriteParquet: %w", err)
	}
	logger.Debug().Int("events", len(rows)).Int("columns", len(columns)).Msg("converted ntuple")
	return len(rows), nil
}

// cloneColumn deep copies slice values, nil slices become empty ones.
func cloneColumn(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return v
	}
	return cloneSlice(rv).Interface()
}

func cloneSlice(rv reflect.Value) reflect.Value {
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	if rv.Type().Elem().Kind() != reflect.Slice {
		reflect.Copy(out, rv)
		return out
	}
	for i := 0; i < rv.Len(); i++ {
		out.Index(i).Set(cloneSlice(rv.Index(i)))
	}
	return out
}
