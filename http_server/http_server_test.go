package http_server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danthegoodman1/hgcalntuple/ntuple"
	"github.com/danthegoodman1/hgcalntuple/schema"
	"github.com/danthegoodman1/hgcalntuple/storage"
	"github.com/labstack/echo/v4"
)

func fixtureRows() []map[string]any {
	return []map[string]any{
		{
			"run":                 int64(1),
			"lumi":                int64(7),
			"event":               int64(1001),
			"track_pt":            []float32{10, 20, 30},
			"track_charge":        []int32{1, -1, 1},
			"multiclus_pt":        []float32{50},
			"multiclus_cluster2d": [][]int32{{0, 1}},
			"cluster2d_pt":        []float32{1, 2},
		},
		{
			"run":                 int64(1),
			"lumi":                int64(7),
			"event":               int64(1002),
			"track_pt":            []float32{},
			"track_charge":        []int32{},
			"multiclus_pt":        []float32{},
			"multiclus_cluster2d": [][]int32{},
			"cluster2d_pt":        []float32{},
		},
	}
}

func do(t *testing.T, s *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
}

func memSession(t *testing.T, s *HTTPServer) string {
	t.Helper()
	sess := s.Sessions.Add("mem", "hgc", ntuple.New(storage.NewMemStore(fixtureRows())))
	return sess.ID
}

func TestHealthCheck(t *testing.T) {
	rec := do(t, NewHTTPServer(), http.MethodGet, "/hc", "")
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "ok" {
		t.Fatalf("got %s", rec.Body.String())
	}
}

func TestCreateSession(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "ntuple.parquet")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err = schema.WriteParquet(f, "hgc", fixtureRows()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s := NewHTTPServer()
	defer s.Sessions.CloseAll()

	rec := do(t, s, http.MethodPost, "/sessions", `{"Path": "`+fname+`", "Tree": "ana/hgc"}`)
	expectStatus(t, rec, http.StatusOK)
	var res SessionResponse
	if err = json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.ID == "" || res.Events != 2 || res.HasHits {
		t.Fatalf("unexpected session %+v", res)
	}

	rec = do(t, s, http.MethodGet, "/sessions/"+res.ID+"/columns", "")
	expectStatus(t, rec, http.StatusOK)
	var cols []schema.Column
	if err = json.Unmarshal(rec.Body.Bytes(), &cols); err != nil {
		t.Fatal(err)
	}
	if len(cols) != len(fixtureRows()[0]) {
		t.Fatalf("unexpected columns %+v", cols)
	}

	rec = do(t, s, http.MethodDelete, "/sessions/"+res.ID, "")
	expectStatus(t, rec, http.StatusOK)
	rec = do(t, s, http.MethodDelete, "/sessions/"+res.ID, "")
	expectStatus(t, rec, http.StatusNotFound)
	if s.Sessions.Len() != 0 {
		t.Fatalf("expected no sessions, got %d", s.Sessions.Len())
	}
}

func TestCreateSessionBadRequest(t *testing.T) {
	s := NewHTTPServer()
	expectStatus(t, do(t, s, http.MethodPost, "/sessions", `{"Tree": "ana/hgc"}`), http.StatusBadRequest)
	missing := filepath.Join(t.TempDir(), "missing.root")
	expectStatus(t, do(t, s, http.MethodPost, "/sessions", `{"Path": "`+missing+`"}`), http.StatusBadRequest)
	expectStatus(t, do(t, s, http.MethodPost, "/sessions", `{"Path": "s3://bucket"}`), http.StatusBadRequest)
}

func TestGetEvent(t *testing.T) {
	s := NewHTTPServer()
	defer s.Sessions.CloseAll()
	id := memSession(t, s)

	rec := do(t, s, http.MethodGet, "/sessions/"+id+"/events/0", "")
	expectStatus(t, rec, http.StatusOK)
	var res EventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.ID != "1:7:1001" {
		t.Fatalf("unexpected id %s", res.ID)
	}
	if res.Collections["tracks"] != 3 || res.Collections["multiclusters"] != 1 || res.Collections["layerclusters"] != 2 {
		t.Fatalf("unexpected collections %v", res.Collections)
	}
	if _, ok := res.Collections["rechits"]; ok {
		t.Fatal("rechits are not in the ntuple")
	}

	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/2", ""), http.StatusNotFound)
	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/x", ""), http.StatusBadRequest)
	expectStatus(t, do(t, s, http.MethodGet, "/sessions/nope/events/0", ""), http.StatusNotFound)
}

func TestGetCollection(t *testing.T) {
	s := NewHTTPServer()
	defer s.Sessions.CloseAll()
	id := memSession(t, s)

	rec := do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/tracks", "")
	expectStatus(t, rec, http.StatusOK)
	var objects []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &objects); err != nil {
		t.Fatal(err)
	}
	if len(objects) != 3 || objects[2]["pt"] != float64(30) || objects[1]["charge"] != float64(-1) {
		t.Fatalf("unexpected tracks %v", objects)
	}

	rec = do(t, s, http.MethodGet, "/sessions/"+id+"/events/1/tracks", "")
	expectStatus(t, rec, http.StatusOK)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected no tracks, got %s", rec.Body.String())
	}

	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/bogus", ""), http.StatusNotFound)
	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/pfclusters", ""), http.StatusBadRequest)
	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/rechits", ""), http.StatusUnprocessableEntity)
}

func TestGetObject(t *testing.T) {
	s := NewHTTPServer()
	defer s.Sessions.CloseAll()
	id := memSession(t, s)

	rec := do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/multiclusters/0", "")
	expectStatus(t, rec, http.StatusOK)
	var obj map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &obj); err != nil {
		t.Fatal(err)
	}
	idx, ok := obj["cluster2d"].([]any)
	if !ok || len(idx) != 2 || idx[1] != float64(1) {
		t.Fatalf("unexpected multicluster %v", obj)
	}

	rec = do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/tracks/0?flat=1", "")
	expectStatus(t, rec, http.StatusOK)

	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/tracks/-1", ""), http.StatusUnprocessableEntity)
	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/0/tracks/3", ""), http.StatusNotFound)
	expectStatus(t, do(t, s, http.MethodGet, "/sessions/"+id+"/events/1/tracks/0", ""), http.StatusNotFound)
}
