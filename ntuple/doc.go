// Package ntuple browses HGCal analysis ntuples one event at a time.
//
// An Ntuple owns the open tree. Loading an entry gives an Event, whose
// collection methods (Tracks, LayerClusters, ...) return Collections, which hand
// out Objects. None of them copy data: every field access reads column
// "<prefix>_<field>" of the loaded entry at the object's index. Loading another
// entry overwrites that buffer, after which older views return ErrStale.
//
//	n, err := ntuple.Open(ctx, "hgcalNtuple.root", "ana/hgc")
//	...
//	for ev := range n.All() {
//		for mcl, err := range ev.MultiClusters().All() {
//			...
//			for lcl, err := range mcl.LayerClusters() {
//				energy, err := lcl.Energy()
//			}
//		}
//	}
package ntuple

//go:generate go run ../cmd/kindgen -o objects_gen.go
