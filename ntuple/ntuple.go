package ntuple

import (
	"context"
	"fmt"
	"iter"

	"github.com/danthegoodman1/hgcalntuple/gologger"
	"github.com/danthegoodman1/hgcalntuple/storage"
	"github.com/danthegoodman1/hgcalntuple/utils"
)

var logger = gologger.NewLogger()

type (
	// Ntuple is an open ntuple tree. It owns the store and its row buffer: only
	// the most recently loaded entry can be read, and loading another entry
	// invalidates every Event, Collection and Object derived from the previous one.
	//
	// An Ntuple must not be shared between goroutines.
	Ntuple struct {
		store   storage.Store
		entries int64
		current int64
		// gen is bumped on every load so views can detect they outlived their entry
		gen uint64
	}

	// row is the handle views keep on the entry they were made from.
	row struct {
		n   *Ntuple
		gen uint64
	}
)

// Open opens tree inside the file at path, see storage.Open for the supported
// formats and locations.
func Open(ctx context.Context, path, tree string) (*Ntuple, error) {
	s, err := storage.Open(ctx, path, tree)
	if err != nil {
		return nil, fmt.Errorf("error in storage.Open: %w", err)
	}
	return New(s), nil
}

// New wraps an already open store.
func New(s storage.Store) *Ntuple {
	return &Ntuple{
		store:   s,
		entries: s.Entries(),
		current: -1,
	}
}

func (n *Ntuple) NEvents() int {
	return int(n.entries)
}

// HasHits reports whether the ntuple was written with rechit information.
func (n *Ntuple) HasHits() bool {
	return utils.ContainsString(n.store.Columns(), "rechit_x")
}

func (n *Ntuple) Columns() []string {
	return n.store.Columns()
}

func (n *Ntuple) Store() storage.Store {
	return n.store
}

// LoadRow makes entry i current. It returns false if i is out of range or the
// entry could not be read.
func (n *Ntuple) LoadRow(i int) bool {
	if err := n.load(i); err != nil {
		logger.Debug().Err(err).Int("entry", i).Msg("failed to load entry")
		return false
	}
	return true
}

func (n *Ntuple) load(i int) error {
	// views of the previous entry are dead even if this load fails
	n.gen++
	n.current = -1
	if err := n.store.LoadRow(int64(i)); err != nil {
		return err
	}
	n.current = int64(i)
	return nil
}

// Event loads entry i and returns the cursor on it.
func (n *Ntuple) Event(i int) (*Event, error) {
	if err := n.load(i); err != nil {
		return nil, fmt.Errorf("error loading entry %d: %w", i, err)
	}
	return &Event{
		row:   row{n: n, gen: n.gen},
		entry: i,
	}, nil
}

// All iterates over the events in entry order. Entries that fail to load are
// logged and skipped. Each event is only valid until the next one is yielded.
func (n *Ntuple) All() iter.Seq[*Event] {
	return func(yield func(*Event) bool) {
		for i := 0; i < n.NEvents(); i++ {
			ev, err := n.Event(i)
			if err != nil {
				logger.Warn().Err(err).Int("entry", i).Msg("skipping unreadable entry")
				continue
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Each calls f for every readable event, stopping at the first error f returns.
func (n *Ntuple) Each(f func(*Event) error) error {
	for ev := range n.All() {
		if err := f(ev); err != nil {
			return fmt.Errorf("error at entry %d: %w", ev.Entry(), err)
		}
	}
	return nil
}

func (n *Ntuple) Close() error {
	n.gen++
	n.current = -1
	return n.store.Close()
}

func (r row) column(name string) (any, error) {
	if r.n.gen != r.gen || r.n.current < 0 {
		return nil, fmt.Errorf("reading %s: %w", name, ErrStale)
	}
	v, ok := r.n.store.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column %s: %w", name, ErrSchema)
	}
	return v, nil
}

func (r row) columns() []string {
	return r.n.store.Columns()
}
