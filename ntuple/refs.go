package ntuple

import (
	"fmt"
	"iter"
)

// Follow treats field of o as a list of indices into target and yields the
// referenced objects lazily, in stored order, duplicates included. InvalidIndex
// entries yield the sentinel object; the first failing lookup is yielded and
// ends the sequence.
func Follow[T any](o Object, field string, target Collection[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		idx, err := Indices(o, field)
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for _, i := range idx {
			t, err := target.Get(i)
			if err != nil {
				yield(t, fmt.Errorf("following %s: %w", o.kind.Column(field), err))
				return
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}

// Ref resolves a single index field of o into target.
func Ref[T any](o Object, field string, target Collection[T]) (T, error) {
	i, err := Field[int](o, field)
	if err != nil {
		var zero T
		return zero, err
	}
	return target.Get(i)
}

// LayerClusters yields the layer clusters making up the multicluster.
func (m MultiCluster) LayerClusters() iter.Seq2[LayerCluster, error] {
	return Follow(m.Object, "cluster2d", newLayerClusters(m.row))
}

// RecHits yields the rechits of the layer cluster.
func (l LayerCluster) RecHits() iter.Seq2[RecHit, error] {
	return Follow(l.Object, "rechits", newRecHits(l.row))
}

// ParentMultiCluster is the multicluster holding the layer cluster, or the
// sentinel if it is not part of one.
func (l LayerCluster) ParentMultiCluster() (MultiCluster, error) {
	return Ref(l.Object, "multicluster", newMultiClusters(l.row))
}

// LayerCluster is the layer cluster holding the hit, or the sentinel.
func (h RecHit) LayerCluster() (LayerCluster, error) {
	return Ref(h.Object, "cluster2d", newLayerClusters(h.row))
}

// ClustersFromMultiCl yields the multicluster PFClusters associated to the
// electron's supercluster.
func (e Electron) ClustersFromMultiCl() iter.Seq2[PFClusterFromMultiCl, error] {
	return Follow(e.Object, "pfClusterIndex", newPFClustersFromMultiCl(e.row))
}

// Hits yields the rechits of the PFCluster.
func (p PFClusterFromMultiCl) Hits() iter.Seq2[RecHit, error] {
	return Follow(p.Object, "rechits", newRecHits(p.row))
}

func (p PFClusterFromMultiCl) String() string {
	if !p.IsValid() {
		return "PFClusterFromMultiCl (invalid)"
	}
	x, errX := p.X()
	y, errY := p.Y()
	z, errZ := p.Z()
	eta, errEta := p.Eta()
	phi, errPhi := p.Phi()
	energy, errEnergy := p.Energy()
	for _, err := range []error{errX, errY, errZ, errEta, errPhi, errEnergy} {
		if err != nil {
			return fmt.Sprintf("PFClusterFromMultiCl %d: %s", p.Index(), err)
		}
	}
	return fmt.Sprintf("PFClusterFromMultiCl position: (%g, %g, %g) eta: %g, phi: %g, energy: %g", x, y, z, eta, phi, energy)
}
