package schema

import (
	"fmt"

	"github.com/danthegoodman1/hgcalntuple/catalog"
	"github.com/danthegoodman1/hgcalntuple/ntuple"
)

type (
	Column struct {
		Name string
		// string, float, int, bool, list(x) or unknown
		Type string
		// Kind is the plural catalog kind owning the column, empty for event level columns
		Kind string `json:",omitempty"`
	}
)

// Describe lists the columns of an ntuple with the types found in its first
// entry. It loads entry 0, so views of the current entry are invalidated.
func Describe(n *ntuple.Ntuple) ([]Column, error) {
	names := n.Columns()
	types := map[string]string{}

	if n.NEvents() > 0 {
		ev, err := n.Event(0)
		if err != nil {
			return nil, fmt.Errorf("error in n.Event: %w", err)
		}
		row := make(map[string]any, len(names))
		for _, name := range names {
			v, err := ev.Column(name)
			if err != nil {
				continue
			}
			row[name] = v
		}
		acc := NewAccumulator("describe")
		acc.WriteRow(row)
		accTypes := acc.GetColumnTypes()
		for i, name := range acc.GetColumnNames() {
			types[name] = accTypes[i]
		}
	}

	cols := make([]Column, 0, len(names))
	for _, name := range names {
		col := Column{
			Name: name,
			Type: "unknown",
		}
		if t, ok := types[name]; ok {
			col.Type = t
		}
		if k, ok := catalog.KindOfColumn(name); ok {
			col.Kind = k.Plural()
		}
		cols = append(cols, col)
	}
	return cols, nil
}
