package storage

import (
	"fmt"
	"reflect"
	"strings"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/groot/rtree"
)

type (
	// RootStore reads a TTree from a ROOT file. Every branch gets one read
	// variable, and LoadRow decodes the requested entry into those variables, so
	// the slices handed out by Column are reused across rows.
	RootStore struct {
		f       *groot.File
		tree    rtree.Tree
		rvars   []rtree.ReadVar
		index   map[string]int
		columns []string
		loaded  bool
		// cleanup removes a downloaded copy of the file on Close
		cleanup func()
	}
)

func OpenRootStore(path, treeName string) (*RootStore, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error in groot.Open for %s: %s: %w", path, err, ErrStorage)
	}

	obj, err := getObject(f, treeName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error getting tree %s from %s: %s: %w", treeName, path, err, ErrStorage)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("object %s in %s is a %s, not a tree: %w", treeName, path, obj.Class(), ErrStorage)
	}

	rs := &RootStore{
		f:     f,
		tree:  tree,
		rvars: usableReadVars(tree),
		index: map[string]int{},
	}
	for i, rv := range rs.rvars {
		rs.index[rv.Name] = i
		rs.columns = append(rs.columns, rv.Name)
	}

	logger.Debug().Str("path", path).Str("tree", treeName).Int64("entries", tree.Entries()).Int("columns", len(rs.columns)).Msg("opened ROOT ntuple")
	return rs, nil
}

// getObject walks a slash separated path (like ana/hgc) through ROOT directories.
func getObject(dir riofs.Directory, name string) (root.Object, error) {
	parts := strings.Split(strings.Trim(name, "/"), "/")
	for i, part := range parts {
		obj, err := dir.Get(part)
		if err != nil {
			return nil, fmt.Errorf("error in Get(%s): %w", part, err)
		}
		if i == len(parts)-1 {
			return obj, nil
		}
		sub, ok := obj.(riofs.Directory)
		if !ok {
			return nil, fmt.Errorf("%s is not a directory", part)
		}
		dir = sub
	}
	return nil, fmt.Errorf("empty object name")
}

// usableReadVars drops branches whose type the reader cannot decode, so a single
// exotic branch does not make the whole ntuple unreadable.
func usableReadVars(tree rtree.Tree) []rtree.ReadVar {
	all := rtree.NewReadVars(tree)
	if r, err := rtree.NewReader(tree, all, rtree.WithRange(0, 0)); err == nil {
		r.Close()
		return all
	}

	var usable []rtree.ReadVar
	for _, rv := range all {
		r, err := rtree.NewReader(tree, []rtree.ReadVar{rv}, rtree.WithRange(0, 0))
		if err != nil {
			logger.Warn().Err(err).Str("branch", rv.Name).Msg("skipping unreadable branch")
			continue
		}
		r.Close()
		usable = append(usable, rv)
	}
	return usable
}

func (rs *RootStore) Entries() int64 {
	return rs.tree.Entries()
}

func (rs *RootStore) LoadRow(i int64) error {
	if i < 0 || i >= rs.tree.Entries() {
		return fmt.Errorf("entry %d of %d: %w", i, rs.tree.Entries(), ErrIndex)
	}
	rs.loaded = false

	r, err := rtree.NewReader(rs.tree, rs.rvars, rtree.WithRange(i, i+1))
	if err != nil {
		return fmt.Errorf("error in rtree.NewReader for entry %d: %s: %w", i, err, ErrStorage)
	}
	defer r.Close()

	err = r.Read(func(rtree.RCtx) error { return nil })
	if err != nil {
		return fmt.Errorf("error reading entry %d: %s: %w", i, err, ErrStorage)
	}
	rs.loaded = true
	return nil
}

func (rs *RootStore) Column(name string) (any, bool) {
	if !rs.loaded {
		return nil, false
	}
	idx, ok := rs.index[name]
	if !ok {
		return nil, false
	}
	// read vars hold pointers to the decoded values
	return reflect.ValueOf(rs.rvars[idx].Value).Elem().Interface(), true
}

func (rs *RootStore) Columns() []string {
	return rs.columns
}

func (rs *RootStore) Close() error {
	rs.loaded = false
	err := rs.f.Close()
	if rs.cleanup != nil {
		rs.cleanup()
	}
	if err != nil {
		return fmt.Errorf("error closing ROOT file: %w", err)
	}
	return nil
}
