package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danthegoodman1/hgcalntuple/schema"
	"github.com/danthegoodman1/hgcalntuple/storage"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

func TestMemStore(t *testing.T) {
	ms := storage.NewMemStore([]map[string]any{
		{"run": 1, "track_pt": []float32{1}},
		{"run": 2, "rechit_pt": []float32{}},
	})
	if ms.Entries() != 2 {
		t.Fatalf("expected 2 entries, got %d", ms.Entries())
	}
	if !reflect.DeepEqual(ms.Columns(), []string{"rechit_pt", "run", "track_pt"}) {
		t.Fatalf("unexpected columns %v", ms.Columns())
	}
	if _, ok := ms.Column("run"); ok {
		t.Fatal("no row is loaded yet")
	}
	if err := ms.LoadRow(1); err != nil {
		t.Fatal(err)
	}
	if v, ok := ms.Column("run"); !ok || v != 2 {
		t.Fatalf("expected run 2, got %v", v)
	}
	if _, ok := ms.Column("track_pt"); ok {
		t.Fatal("track_pt is not in row 1")
	}
	if err := ms.LoadRow(2); !errors.Is(err, storage.ErrIndex) {
		t.Fatalf("expected ErrIndex, got %v", err)
	}

	ms.Fail = map[int64]bool{0: true}
	if err := ms.LoadRow(0); !errors.Is(err, storage.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func writeParquetNtuple(t *testing.T, rows []map[string]any) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "ntuple.parquet")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err = schema.WriteParquet(f, "hgc", rows); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestParquetRoundTrip(t *testing.T) {
	rows := []map[string]any{
		{
			"run":                 int64(1),
			"track_pt":            []float32{1.5, 2.5},
			"multiclus_cluster2d": [][]int32{{0, 1}, {}},
		},
		{
			"run":                 int64(2),
			"track_pt":            []float32{},
			"multiclus_cluster2d": [][]int32{},
		},
	}
	fname := writeParquetNtuple(t, rows)

	s, err := storage.Open(context.Background(), fname, "ana/hgc")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.Entries() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Entries())
	}
	if !reflect.DeepEqual(s.Columns(), []string{"multiclus_cluster2d", "run", "track_pt"}) {
		t.Fatalf("unexpected columns %v", s.Columns())
	}
	for i, row := range rows {
		if err = s.LoadRow(int64(i)); err != nil {
			t.Fatal(err)
		}
		for name, want := range row {
			got, ok := s.Column(name)
			if !ok {
				t.Fatalf("row %d: missing %s", i, name)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("row %d %s: expected %#v, got %#v", i, name, want, got)
			}
		}
	}
}

func TestParquetWrongTable(t *testing.T) {
	fname := writeParquetNtuple(t, []map[string]any{{"run": int64(1)}})
	_, err := storage.Open(context.Background(), fname, "ana/other")
	if !errors.Is(err, storage.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestOpenMissing(t *testing.T) {
	for _, name := range []string{"missing.parquet", "missing.root"} {
		_, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), name), "ana/hgc")
		if !errors.Is(err, storage.ErrStorage) {
			t.Fatalf("%s: expected ErrStorage, got %v", name, err)
		}
	}
}

func TestTableMatches(t *testing.T) {
	for _, c := range []struct {
		root, table string
		want        bool
	}{
		{"hgc", "ana/hgc", true},
		{"Hgc", "hgc", true},
		{"hgc", "ana/hgcal", false},
		{"parquet_go_root", "ana/hgc", false},
	} {
		if got := storage.TableMatches(c.root, c.table); got != c.want {
			t.Fatalf("TableMatches(%q, %q) = %t", c.root, c.table, got)
		}
	}
}

func writeRootNtuple(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "ntuple.root")
	f, err := groot.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dir, err := riofs.Dir(f).Mkdir("ana")
	if err != nil {
		t.Fatal(err)
	}

	var (
		run    uint32
		n      int32
		pt     []float32
		charge []int32
	)
	w, err := rtree.NewWriter(dir, "hgc", []rtree.WriteVar{
		{Name: "run", Value: &run},
		{Name: "track_n", Value: &n},
		{Name: "track_pt", Value: &pt, Count: "track_n"},
		{Name: "track_charge", Value: &charge, Count: "track_n"},
	})
	if err != nil {
		t.Fatal(err)
	}

	for i, evt := range []struct {
		pt     []float32
		charge []int32
	}{
		{[]float32{10, 20, 30}, []int32{1, -1, 1}},
		{[]float32{}, []int32{}},
	} {
		run = uint32(i + 1)
		pt = evt.pt
		charge = evt.charge
		n = int32(len(pt))
		if _, err = w.Write(); err != nil {
			t.Fatal(err)
		}
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestRootRoundTrip(t *testing.T) {
	fname := writeRootNtuple(t)

	s, err := storage.Open(context.Background(), fname, "ana/hgc")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.Entries() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Entries())
	}
	if err = s.LoadRow(0); err != nil {
		t.Fatal(err)
	}
	pt, ok := s.Column("track_pt")
	if !ok {
		t.Fatal("missing track_pt")
	}
	if !reflect.DeepEqual(pt, []float32{10, 20, 30}) {
		t.Fatalf("unexpected track_pt %#v", pt)
	}
	if run, _ := s.Column("run"); run != uint32(1) {
		t.Fatalf("expected run 1, got %#v", run)
	}

	if err = s.LoadRow(1); err != nil {
		t.Fatal(err)
	}
	charge, _ := s.Column("track_charge")
	if c, ok := charge.([]int32); !ok || len(c) != 0 {
		t.Fatalf("expected no charges, got %#v", charge)
	}
	if run, _ := s.Column("run"); run != uint32(2) {
		t.Fatalf("expected run 2, got %#v", run)
	}

	if err = s.LoadRow(2); !errors.Is(err, storage.ErrIndex) {
		t.Fatalf("expected ErrIndex, got %v", err)
	}
}

func TestRootMissingTree(t *testing.T) {
	fname := writeRootNtuple(t)
	for _, tree := range []string{"ana/other", "hgc", "ana/hgc/deeper"} {
		if _, err := storage.Open(context.Background(), fname, tree); !errors.Is(err, storage.ErrStorage) {
			t.Fatalf("%s: expected ErrStorage, got %v", tree, err)
		}
	}
}
