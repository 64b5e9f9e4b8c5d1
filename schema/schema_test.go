package schema

import (
	"reflect"
	"testing"

	"github.com/danthegoodman1/hgcalntuple/ntuple"
	"github.com/danthegoodman1/hgcalntuple/storage"
)

func TestGetSchemaString(t *testing.T) {
	a := NewAccumulator("hgc")
	a.WriteRow(map[string]any{
		"track_pt": []float32{1.5},
		"run":      uint32(1),
	})
	a.WriteRow(map[string]any{
		"run":     uint32(2),
		"flag":    true,
		"skipped": nil,
		"nested":  map[string]any{"a": 1},
	})

	schemaString, err := a.GetSchemaString()
	if err != nil {
		t.Fatal(err)
	}
	if schemaString != `{"Tag":"name=hgc, repetitiontype=REQUIRED","Fields":[{"Tag":"name=run, type=INT64, repetitiontype=REQUIRED"},{"Tag":"name=track_pt, type=LIST, repetitiontype=REQUIRED","Fields":[{"Tag":"name=element, type=FLOAT, repetitiontype=REQUIRED"}]},{"Tag":"name=flag, type=BOOLEAN, repetitiontype=REQUIRED"}]}` {
		t.Log(schemaString)
		t.Fatal("got incorrect schema string")
	}
}

func TestGetColumnTypes(t *testing.T) {
	a := NewAccumulator("hgc")
	a.WriteRow(map[string]any{
		"a_index":   [][]int32{{1}},
		"b_energy":  []float64{1},
		"c_det":     "EE",
		"d_layer":   int16(3),
		"e_flagged": []bool{false},
	})
	if !reflect.DeepEqual(a.GetColumnNames(), []string{"a_index", "b_energy", "c_det", "d_layer", "e_flagged"}) {
		t.Fatalf("unexpected columns %v", a.GetColumnNames())
	}
	want := []string{"list(list(int))", "list(float)", "string", "int", "list(bool)"}
	if !reflect.DeepEqual(a.GetColumnTypes(), want) {
		t.Fatalf("expected %v, got %v", want, a.GetColumnTypes())
	}
}

func TestDescribe(t *testing.T) {
	n := ntuple.New(storage.NewMemStore([]map[string]any{
		{
			"run":               uint32(1),
			"track_pt":          []float32{1},
			"cluster2d_rechits": [][]int32{{0}},
		},
		{
			"run":      uint32(2),
			"rechit_x": []float32{},
		},
	}))
	defer n.Close()

	cols, err := Describe(n)
	if err != nil {
		t.Fatal(err)
	}
	want := []Column{
		{Name: "cluster2d_rechits", Type: "list(list(int))", Kind: "layerclusters"},
		{Name: "rechit_x", Type: "unknown", Kind: "rechits"},
		{Name: "run", Type: "int"},
		{Name: "track_pt", Type: "list(float)", Kind: "tracks"},
	}
	if !reflect.DeepEqual(cols, want) {
		t.Fatalf("expected %+v, got %+v", want, cols)
	}
}
