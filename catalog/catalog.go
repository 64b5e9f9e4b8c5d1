// Package catalog declares the object kinds stored in HGCal analysis ntuples.
//
// Every kind lives in its own column family: field f of kind k is the column
// "<k.Prefix>_<f>". The table below is the single source for the typed
// accessors in package ntuple, which are generated from it by cmd/kindgen.
package catalog

import "strings"

type FieldType int

const (
	Float FieldType = iota
	Int
	// Indices is a per object list of indices into another kind of the same event
	Indices
)

func (t FieldType) String() string {
	switch t {
	case Float:
		return "float"
	case Int:
		return "int"
	case Indices:
		return "indices"
	default:
		return "unknown"
	}
}

type (
	Field struct {
		Name string
		Type FieldType
		Doc  string
	}

	Kind struct {
		// Name is the Go type name of one object of this kind
		Name string
		// Collection is the Go type name of the collection of this kind
		Collection string
		// Prefix is the column family. Empty means the prefix is chosen per collection.
		Prefix string
		// SizeField is the field whose per event length is the object count
		SizeField string
		Fields    []Field
	}
)

// Column returns the column holding field for this kind.
func (k Kind) Column(field string) string {
	return ColumnName(k.Prefix, field)
}

// Plural is the lower case collection name used on the command line and in URLs.
func (k Kind) Plural() string {
	return strings.ToLower(k.Collection)
}

// WithPrefix returns a copy of a prefix-less kind bound to prefix.
func (k Kind) WithPrefix(prefix string) Kind {
	k.Prefix = prefix
	return k
}

func (k Kind) Field(name string) (Field, bool) {
	for _, f := range k.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func ColumnName(prefix, field string) string {
	return prefix + "_" + field
}

var (
	Track = Kind{
		Name: "Track", Collection: "Tracks", Prefix: "track", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, "transverse momentum"},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"charge", Int, ""},
		},
	}

	GenParticle = Kind{
		Name: "GenParticle", Collection: "GenParticles", Prefix: "genpart", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, ""},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"dvx", Float, "decay vertex x"},
			{"dvy", Float, "decay vertex y"},
			{"dvz", Float, "decay vertex z"},
			{"pid", Int, "PDG id"},
			{"gen", Int, "index of the generator particle"},
			{"reachedEE", Int, "flag set when the particle reached the endcap calorimeter"},
			{"fromBeamPipe", Int, ""},
		},
	}

	CaloParticle = Kind{
		Name: "CaloParticle", Collection: "CaloParticles", Prefix: "calopart", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, ""},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"simEnergy", Float, "sum of the simulated hit energies"},
		},
	}

	MultiCluster = Kind{
		Name: "MultiCluster", Collection: "MultiClusters", Prefix: "multiclus", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, ""},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"z", Float, ""},
			{"slopeX", Float, ""},
			{"slopeY", Float, ""},
			{"cluster2d", Indices, "indices of the layer clusters in this multicluster"},
			{"cl2dSeed", Int, "index of the seeding layer cluster"},
			{"firstLayer", Int, ""},
			{"lastLayer", Int, ""},
			{"NLay", Int, "number of layers with a cluster"},
		},
	}

	LayerCluster = Kind{
		Name: "LayerCluster", Collection: "LayerClusters", Prefix: "cluster2d", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, ""},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"x", Float, ""},
			{"y", Float, ""},
			{"z", Float, ""},
			{"layer", Int, ""},
			{"nhitCore", Int, ""},
			{"nhitAll", Int, ""},
			{"rechitSeed", Int, "index of the seeding rechit"},
			{"multicluster", Int, "index of the owning multicluster, -1 if none"},
			{"rechits", Indices, "indices of the rechits in this cluster"},
		},
	}

	RecHit = Kind{
		Name: "RecHit", Collection: "RecHits", Prefix: "rechit", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, ""},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"x", Float, ""},
			{"y", Float, ""},
			{"z", Float, ""},
			{"time", Float, ""},
			{"thickness", Float, ""},
			{"layer", Int, ""},
			{"detid", Int, ""},
			{"isHalf", Int, ""},
			{"flags", Int, ""},
			{"cluster2d", Int, "index of the owning layer cluster, -1 if none"},
		},
	}

	Electron = Kind{
		Name: "Electron", Collection: "Electrons", Prefix: "ecalDrivenGsfele", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, ""},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"charge", Int, ""},
			{"seedEnergy", Float, ""},
			{"fbrem", Float, ""},
			{"isEB", Int, ""},
			{"pfClusterIndex", Indices, "indices of the multicluster PFClusters of the supercluster"},
		},
	}

	PFCluster = Kind{
		Name: "PFCluster", Collection: "PFClusters", Prefix: "", SizeField: "pt",
		Fields: []Field{
			{"pt", Float, ""},
			{"eta", Float, ""},
			{"phi", Float, ""},
			{"energy", Float, ""},
			{"correctedEnergy", Float, ""},
			{"x", Float, ""},
			{"y", Float, ""},
			{"z", Float, ""},
			{"rechits", Indices, "indices of the rechits in this cluster"},
		},
	}

	PFClusterFromMultiCl = Kind{
		Name: "PFClusterFromMultiCl", Collection: "PFClustersFromMultiCl", Prefix: "pfclusterFromMultiCl", SizeField: "pt",
		Fields: PFCluster.Fields,
	}

	// IDColumns hold the run, lumi section and event number of an entry
	IDColumns = []string{"run", "lumi", "event"}

	// Kinds lists every kind with a fixed prefix
	Kinds = []Kind{Track, GenParticle, CaloParticle, MultiCluster, LayerCluster, RecHit, Electron, PFClusterFromMultiCl}
	// All also includes the kinds whose prefix is picked per collection
	All = append(append([]Kind{}, Kinds...), PFCluster)
)

// Lookup finds a fixed prefix kind by plural name, type name or prefix.
func Lookup(name string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(k.Collection, name) || strings.EqualFold(k.Name, name) || k.Prefix == name {
			return k, true
		}
	}
	return Kind{}, false
}

// KindOfColumn returns the fixed prefix kind owning column, if any.
func KindOfColumn(column string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.HasPrefix(column, k.Prefix+"_") {
			return k, true
		}
	}
	return Kind{}, false
}
