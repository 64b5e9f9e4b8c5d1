package ntuple

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/danthegoodman1/hgcalntuple/catalog"
)

// InvalidIndex is the index stored in reference columns when there is no object.
const InvalidIndex = -1

// Collection is every object of one kind in an event. It holds no data of its
// own: sizes and objects are computed from the entry buffer on each call.
type Collection[T any] struct {
	row  row
	kind catalog.Kind
	wrap func(Object) T
}

func newCollection[T any](r row, kind catalog.Kind, wrap func(Object) T) Collection[T] {
	return Collection[T]{
		row:  r,
		kind: kind,
		wrap: wrap,
	}
}

func (c Collection[T]) Kind() catalog.Kind {
	return c.kind
}

func (c Collection[T]) Prefix() string {
	return c.kind.Prefix
}

// Size is the number of objects in the event. Every list column of the kind
// must hold exactly that many entries, otherwise ErrSchema is returned.
func (c Collection[T]) Size() (int, error) {
	n, err := c.count()
	if err != nil {
		return 0, err
	}

	sizeColumn := c.kind.Column(c.kind.SizeField)
	family := c.kind.Prefix + "_"
	for _, name := range c.row.columns() {
		if name == sizeColumn || !strings.HasPrefix(name, family) {
			continue
		}
		col, err := c.row.column(name)
		if errors.Is(err, ErrSchema) {
			// not present in this entry
			continue
		}
		if err != nil {
			return 0, err
		}
		if l, isList := length(col); isList && l != n {
			return 0, fmt.Errorf("column %s has %d entries but %s has %d: %w", name, l, sizeColumn, n, ErrSchema)
		}
	}
	return n, nil
}

// count reads only the size column.
func (c Collection[T]) count() (int, error) {
	col, err := c.row.column(c.kind.Column(c.kind.SizeField))
	if err != nil {
		return 0, err
	}
	return count(col)
}

// Get returns object i. InvalidIndex gives the sentinel object, whose IsValid is
// false; any other index outside [0, Size()) is an ErrIndex.
func (c Collection[T]) Get(i int) (T, error) {
	if i == InvalidIndex {
		return c.wrap(c.object(i)), nil
	}
	n, err := c.count()
	if err != nil {
		var zero T
		return zero, err
	}
	if i < 0 || i >= n {
		var zero T
		return zero, fmt.Errorf("%s %d of %d: %w", c.kind.Prefix, i, n, ErrIndex)
	}
	return c.wrap(c.object(i)), nil
}

// All yields the objects in index order. Ranging over it again starts over.
// A size error is yielded once, with a zero object.
func (c Collection[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		n, err := c.Size()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for i := 0; i < n; i++ {
			if !yield(c.wrap(c.object(i)), nil) {
				return
			}
		}
	}
}

func (c Collection[T]) Slice() ([]T, error) {
	return Collect(c.All())
}

func (c Collection[T]) object(i int) Object {
	return Object{
		row:   c.row,
		kind:  c.kind,
		index: i,
	}
}

// Collect drains a fallible sequence, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
