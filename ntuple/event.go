package ntuple

import (
	"fmt"

	"github.com/danthegoodman1/hgcalntuple/catalog"
)

type (
	// Event is the cursor on the currently loaded entry. It is cheap, and every
	// collection method returns a fresh view over the shared entry buffer.
	Event struct {
		row   row
		entry int
	}

	EventID struct {
		Run   uint64
		Lumi  uint64
		Event uint64
	}
)

func (id EventID) String() string {
	return fmt.Sprintf("%d:%d:%d", id.Run, id.Lumi, id.Event)
}

func (e *Event) Entry() int {
	return e.entry
}

func (e *Event) Run() (uint64, error) {
	return e.scalar("run")
}

func (e *Event) Lumi() (uint64, error) {
	return e.scalar("lumi")
}

// Number is the event number within its run.
func (e *Event) Number() (uint64, error) {
	return e.scalar("event")
}

func (e *Event) ID() (EventID, error) {
	var (
		id  EventID
		err error
	)
	if id.Run, err = e.Run(); err != nil {
		return id, err
	}
	if id.Lumi, err = e.Lumi(); err != nil {
		return id, err
	}
	if id.Event, err = e.Number(); err != nil {
		return id, err
	}
	return id, nil
}

// IDString formats the event id as run:lumi:event.
func (e *Event) IDString() (string, error) {
	id, err := e.ID()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Column returns the raw value of any column for this entry.
func (e *Event) Column(name string) (any, error) {
	return e.row.column(name)
}

func (e *Event) scalar(column string) (uint64, error) {
	v, err := e.row.column(column)
	if err != nil {
		return 0, err
	}
	return convert[uint64](v)
}

func (e *Event) Tracks() Tracks {
	return newTracks(e.row)
}

func (e *Event) GenParticles() GenParticles {
	return newGenParticles(e.row)
}

func (e *Event) CaloParticles() CaloParticles {
	return newCaloParticles(e.row)
}

func (e *Event) MultiClusters() MultiClusters {
	return newMultiClusters(e.row)
}

func (e *Event) LayerClusters() LayerClusters {
	return newLayerClusters(e.row)
}

func (e *Event) RecHits() RecHits {
	return newRecHits(e.row)
}

func (e *Event) Electrons() Electrons {
	return newElectrons(e.row)
}

// PFClusters returns the PFClusters stored under the given column prefix.
func (e *Event) PFClusters(prefix string) PFClusters {
	return newPFClusters(e.row, prefix)
}

// PFClustersFromMultiCl returns the PFClusters rebuilt from the HGCal multiclusters.
func (e *Event) PFClustersFromMultiCl() PFClustersFromMultiCl {
	return newPFClustersFromMultiCl(e.row)
}

// Collection returns an untyped view of any kind, for callers that pick the
// kind at runtime.
func (e *Event) Collection(kind catalog.Kind) Collection[Object] {
	return newCollection(e.row, kind, func(o Object) Object { return o })
}
