package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danthegoodman1/hgcalntuple/schema"
)

func writeNtuple(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "ntuple.parquet")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	err = schema.WriteParquet(f, "hgc", []map[string]any{
		{
			"run":              int64(1),
			"lumi":             int64(2),
			"event":            int64(3),
			"track_pt":         []float32{10, 20},
			"rechit_pt":        []float32{1},
			"rechit_x":         []float32{0.5},
			"rechit_cluster2d": []int32{-1},
		},
		{
			"run":              int64(1),
			"lumi":             int64(2),
			"event":            int64(4),
			"track_pt":         []float32{},
			"rechit_pt":        []float32{},
			"rechit_x":         []float32{},
			"rechit_cluster2d": []int32{},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func dumpLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var events []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var ev map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatal(err)
		}
		events = append(events, ev)
	}
	return events
}

func TestInfo(t *testing.T) {
	out := run(t, "info", writeNtuple(t), "--tree", "ana/hgc")
	for _, want := range []string{"events:\t2", "hits:\ttrue", "track_pt", "list(float)", "rechits"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestDump(t *testing.T) {
	events := dumpLines(t, run(t, "dump", writeNtuple(t), "--tree", "hgc"))
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0]["id"] != "1:2:3" || events[1]["entry"] != float64(1) {
		t.Fatalf("unexpected events %v", events)
	}
	tracks, ok := events[0]["tracks"].([]any)
	if !ok || len(tracks) != 2 {
		t.Fatalf("unexpected tracks %v", events[0]["tracks"])
	}
	if empty, ok := events[1]["tracks"].([]any); !ok || len(empty) != 0 {
		t.Fatalf("expected an empty track list, got %v", events[1]["tracks"])
	}
	if _, ok := events[0]["rechits"]; !ok {
		t.Fatal("expected rechits")
	}
}

func TestDumpOptions(t *testing.T) {
	fname := writeNtuple(t)
	events := dumpLines(t, run(t, "dump", fname, "--tree", "hgc", "--max-events", "1", "--kinds", "tracks"))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if _, ok := events[0]["rechits"]; ok {
		t.Fatal("rechits were not selected")
	}
	if _, ok := events[0]["tracks"]; !ok {
		t.Fatal("expected tracks")
	}

	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs([]string{"dump", fname, "--tree", "hgc", "--kinds", "bogus"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an unknown kind error")
	}
}

func TestConvert(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tracks.parquet")
	msg := run(t, "convert", writeNtuple(t), out, "--tree", "hgc", "--kinds", "tracks")
	if !strings.Contains(msg, "wrote 2 events") {
		t.Fatalf("unexpected output %s", msg)
	}

	events := dumpLines(t, run(t, "dump", out, "--tree", "hgc"))
	if len(events) != 2 || events[0]["id"] != "1:2:3" {
		t.Fatalf("unexpected events %v", events)
	}
	if tracks, ok := events[0]["tracks"].([]any); !ok || len(tracks) != 2 {
		t.Fatalf("unexpected tracks %v", events[0]["tracks"])
	}
	if _, ok := events[0]["rechits"]; ok {
		t.Fatal("rechits were not converted")
	}

	var buf bytes.Buffer
	cmd := newRootCommand(&buf)
	cmd.SetArgs([]string{"convert", writeNtuple(t), out, "--tree", "hgc", "--kinds", "bogus"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an unknown kind error")
	}
}

func TestCloneColumn(t *testing.T) {
	src := [][]int32{{1, 2}, {}}
	clone := cloneColumn(src).([][]int32)
	src[0][0] = 9
	if clone[0][0] != 1 || len(clone[1]) != 0 {
		t.Fatalf("clone shares memory with its source: %v", clone)
	}
	if cloneColumn(int64(3)) != int64(3) {
		t.Fatal("scalars are returned as is")
	}
}
