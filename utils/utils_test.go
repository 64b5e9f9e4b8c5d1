package utils

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("NTUPLE_TEST_STR", "ana/hgc")
	t.Setenv("NTUPLE_TEST_INT", "100000")
	if v := GetEnvOrDefault("NTUPLE_TEST_STR", "x"); v != "ana/hgc" {
		t.Fatalf("got %s", v)
	}
	if v := GetEnvOrDefault("NTUPLE_TEST_UNSET", "x"); v != "x" {
		t.Fatalf("got %s", v)
	}
	// larger than an int16
	if v := GetEnvOrDefaultInt("NTUPLE_TEST_INT", 1); v != 100000 {
		t.Fatalf("got %d", v)
	}
	if v := GetEnvOrDefaultInt("NTUPLE_TEST_UNSET", -1); v != -1 {
		t.Fatalf("got %d", v)
	}
}

func TestFlattenJSON(t *testing.T) {
	flat, err := FlattenJSON(map[string]any{
		"index": 1,
		"pos":   map[string]any{"x": float32(1.5), "y": 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if flat["index"] != float64(1) {
		t.Fatalf("unexpected flat map %v", flat)
	}
	if _, ok := flat["pos"]; ok {
		t.Fatalf("nested maps should be flattened, got %v", flat)
	}
	if len(flat) != 3 {
		t.Fatalf("expected 3 keys, got %v", flat)
	}
}

func TestIsPermanent(t *testing.T) {
	if !IsPermanent(fmt.Errorf("wrapped: %w", PermError("gone"))) {
		t.Fatal("wrapped PermError should be permanent")
	}
	if IsPermanent(errors.New("flaky")) {
		t.Fatal("plain error should not be permanent")
	}
}

func TestIDs(t *testing.T) {
	if id := GenRandomShortID(); len(id) != 8 {
		t.Fatalf("expected 8 characters, got %s", id)
	}
	a, b := GenKSortedID("ntuple_"), GenKSortedID("ntuple_")
	if a == b {
		t.Fatal("ids should be unique")
	}
	if !reflect.DeepEqual(ArrayOrEmpty[int](nil), []int{}) {
		t.Fatal("expected an empty slice")
	}
}
