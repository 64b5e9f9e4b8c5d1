package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/danthegoodman1/hgcalntuple/catalog"
	"github.com/danthegoodman1/hgcalntuple/ntuple"
	"github.com/danthegoodman1/hgcalntuple/utils"
	"github.com/spf13/cobra"
)

type dumpOptions struct {
	Tree      string
	MaxEvents int
	Flat      bool
	// plural kind names, all present kinds when empty
	Kinds []string
	// column prefixes of PFCluster collections to include
	PFClusters []string
}

func newDumpCommand(stdout io.Writer) *cobra.Command {
	var opts dumpOptions
	ccmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Write every event as one JSON line",
		Long: `
Writes one JSON object per event to stdout, holding the entry number, the
run:lumi:event id and every object of the selected kinds.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			n, err := ntuple.Open(c.Context(), args[0], opts.Tree)
			if err != nil {
				return fmt.Errorf("error in ntuple.Open: %w", err)
			}
			defer n.Close()
			return dump(stdout, n, opts)
		},
	}

	flags := ccmd.Flags()
	flags.StringVar(&opts.Tree, "tree", utils.NTUPLE_TREE, "tree path inside a ROOT file, or table name of a parquet file")
	flags.IntVar(&opts.MaxEvents, "max-events", int(utils.MAX_EVENTS), "stop after this many events, negative for all")
	flags.BoolVar(&opts.Flat, "flat", false, "flatten objects into dotted keys")
	flags.StringSliceVar(&opts.Kinds, "kinds", nil, "kinds to dump, e.g. multiclusters,layerclusters")
	flags.StringSliceVar(&opts.PFClusters, "pfclusters", nil, "column prefixes of PFCluster collections to dump")
	return ccmd
}

func selectKinds(n *ntuple.Ntuple, opts dumpOptions) ([]catalog.Kind, error) {
	columns := n.Columns()
	var kinds []catalog.Kind
	if len(opts.Kinds) == 0 {
		for _, k := range catalog.Kinds {
			if utils.ContainsString(columns, k.Column(k.SizeField)) {
				kinds = append(kinds, k)
			}
		}
	}
	for _, name := range opts.Kinds {
		k, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown kind %s", name)
		}
		kinds = append(kinds, k)
	}
	for _, prefix := range opts.PFClusters {
		kinds = append(kinds, catalog.PFCluster.WithPrefix(prefix))
	}
	return kinds, nil
}

func dump(w io.Writer, n *ntuple.Ntuple, opts dumpOptions) error {
	kinds, err := selectKinds(n, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	written := 0
	for ev := range n.All() {
		if opts.MaxEvents >= 0 && written >= opts.MaxEvents {
			break
		}
		out, err := eventJSON(ev, kinds)
		if err != nil {
			return fmt.Errorf("error in eventJSON for entry %d: %w", ev.Entry(), err)
		}
		if opts.Flat {
			if out, err = utils.FlattenJSON(out); err != nil {
				return fmt.Errorf("error in FlattenJSON: %w", err)
			}
		}
		if err = enc.Encode(out); err != nil {
			return fmt.Errorf("error in enc.Encode: %w", err)
		}
		written++
	}
	logger.Debug().Int("events", written).Msg("dumped events")
	return nil
}

func eventJSON(ev *ntuple.Event, kinds []catalog.Kind) (map[string]any, error) {
	out := map[string]any{"entry": ev.Entry()}
	id, err := ev.IDString()
	switch {
	case err == nil:
		out["id"] = id
	case !errors.Is(err, ntuple.ErrSchema):
		return nil, err
	}

	for _, kind := range kinds {
		name := kind.Plural()
		if kind.Name == catalog.PFCluster.Name {
			name = kind.Prefix
		}
		objects := []map[string]any{}
		for o, err := range ev.Collection(kind).All() {
			if errors.Is(err, ntuple.ErrSchema) {
				logger.Warn().Err(err).Int("entry", ev.Entry()).Str("kind", name).Msg("skipping kind")
				objects = nil
				break
			}
			if err != nil {
				return nil, err
			}
			exported, err := o.Export()
			if err != nil {
				return nil, fmt.Errorf("error exporting %s %d: %w", name, o.Index(), err)
			}
			objects = append(objects, exported)
		}
		if objects != nil {
			out[name] = objects
		}
	}
	return out, nil
}
