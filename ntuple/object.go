package ntuple

import (
	"errors"
	"fmt"

	"github.com/danthegoodman1/hgcalntuple/catalog"
)

// Object is object Index of its kind in one event. Field f is read from the
// column "<prefix>_f" at Index, every time it is asked for.
type Object struct {
	row   row
	kind  catalog.Kind
	index int
}

func (o Object) Index() int {
	return o.index
}

func (o Object) IsValid() bool {
	return o.index != InvalidIndex
}

func (o Object) Prefix() string {
	return o.kind.Prefix
}

func (o Object) Kind() catalog.Kind {
	return o.kind
}

// Get returns the raw element of column <prefix>_field for this object.
func (o Object) Get(field string) (any, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%s %s: %w", o.kind.Name, field, ErrInvalidObject)
	}
	col, err := o.row.column(o.kind.Column(field))
	if err != nil {
		return nil, err
	}
	v, err := element(col, o.index)
	if errors.Is(err, ErrIndex) {
		// the index was checked against the size column, so this column is shorter
		// than the rest of the kind
		return nil, fmt.Errorf("%s: %s: %w: %w", o.kind.Column(field), err, errFieldLength, ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.kind.Column(field), err)
	}
	return v, nil
}

// Field reads a numeric field converted to T.
func Field[T Number](o Object, field string) (T, error) {
	v, err := o.Get(field)
	if err != nil {
		var zero T
		return zero, err
	}
	t, err := convert[T](v)
	if err != nil {
		return t, fmt.Errorf("%s: %w", o.kind.Column(field), err)
	}
	return t, nil
}

// Fields reads a per object list field, converting each element to T.
func Fields[T Number](o Object, field string) ([]T, error) {
	v, err := o.Get(field)
	if err != nil {
		return nil, err
	}
	ts, err := convertSlice[T](v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.kind.Column(field), err)
	}
	return ts, nil
}

// Indices reads a per object list of indices into another kind.
func Indices(o Object, field string) ([]int, error) {
	return Fields[int](o, field)
}

// Export reads every catalog field of the kind that is present in the entry.
func (o Object) Export() (map[string]any, error) {
	out := map[string]any{"index": o.index}
	for _, f := range o.kind.Fields {
		var (
			v   any
			err error
		)
		switch f.Type {
		case catalog.Indices:
			v, err = Indices(o, f.Name)
		case catalog.Int:
			v, err = Field[int](o, f.Name)
		default:
			v, err = Field[float64](o, f.Name)
		}
		if errors.Is(err, ErrSchema) && !errors.Is(err, errFieldLength) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	return out, nil
}
