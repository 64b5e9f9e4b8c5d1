package storage

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/common"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
)

type (
	// ParquetStore serves a parquet export of an ntuple. The root schema element
	// is named after the tree and every top level field is one column: scalars for
	// per event values, lists for per object values and lists of lists for per
	// object index lists. Columns are decoded once at open time.
	ParquetStore struct {
		*MemStore
		pf source.ParquetFile
	}
)

func OpenParquetStore(path, table string) (*ParquetStore, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("can't open file %s: %s: %w", path, err, ErrStorage)
	}
	return NewParquetStore(fr, table)
}

// NewParquetStore reads the table from an already opened parquet source, and
// takes ownership of it.
func NewParquetStore(pf source.ParquetFile, table string) (*ParquetStore, error) {
	pr, err := reader.NewParquetReader(pf, nil, 4)
	if err != nil {
		pf.Close()
		return nil, fmt.Errorf("error creating parquet reader: %s: %w", err, ErrStorage)
	}
	defer pr.ReadStop()

	rootName := pr.Footer.Schema[0].GetName()
	if !TableMatches(rootName, table) {
		pf.Close()
		return nil, fmt.Errorf("table %s not found, file holds %s: %w", table, rootName, ErrStorage)
	}

	numRows := pr.GetNumRows()
	rows := make([]map[string]any, numRows)
	for i := range rows {
		rows[i] = map[string]any{}
	}

	for idx, inPath := range pr.SchemaHandler.ValueColumns {
		path := strings.Split(inPath, common.PAR_GO_PATH_DELIMITER)
		if len(path) < 2 {
			continue
		}
		name := lowerFirst(path[1])

		values, rls, dls, err := pr.ReadColumnByIndex(int64(idx), numRows)
		if err != nil {
			pf.Close()
			return nil, fmt.Errorf("error reading column %s: %s: %w", name, err, ErrStorage)
		}

		layout, err := columnLayout(pr, path)
		if err != nil {
			pf.Close()
			return nil, fmt.Errorf("error in columnLayout for %s: %s: %w", name, err, ErrStorage)
		}

		decoded := layout.decode(values, rls, dls)
		if int64(len(decoded)) != numRows {
			pf.Close()
			return nil, fmt.Errorf("column %s decoded to %d rows, expected %d: %w", name, len(decoded), numRows, ErrStorage)
		}
		for i, v := range decoded {
			rows[i][name] = v
		}
	}

	logger.Debug().Str("table", rootName).Int64("rows", numRows).Int("columns", len(pr.SchemaHandler.ValueColumns)).Msg("decoded parquet ntuple")

	return &ParquetStore{
		MemStore: NewMemStore(rows),
		pf:       pf,
	}, nil
}

func (ps *ParquetStore) Close() error {
	ps.MemStore.Close()
	if err := ps.pf.Close(); err != nil {
		return fmt.Errorf("error closing parquet file: %w", err)
	}
	return nil
}

// TableMatches compares a parquet root schema name with a tree path. Only the
// last path element is compared (ana/hgc matches hgc), and parquet-go may
// upper-case the first letter of names.
func TableMatches(rootName, table string) bool {
	if i := strings.LastIndex(table, "/"); i >= 0 {
		table = table[i+1:]
	}
	return lowerFirst(rootName) == lowerFirst(table)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

type (
	columnLayoutInfo struct {
		elem  reflect.Type
		maxRL int32
		// listDL is the definition level at which the outer list has an entry
		listDL int32
	}
)

func columnLayout(pr *reader.ParquetReader, path []string) (columnLayoutInfo, error) {
	sh := pr.SchemaHandler
	var info columnLayoutInfo

	maxRL, err := sh.MaxRepetitionLevel(path)
	if err != nil {
		return info, fmt.Errorf("error in MaxRepetitionLevel: %w", err)
	}
	info.maxRL = maxRL

	leaf := sh.SchemaElements[sh.MapIndex[strings.Join(path, common.PAR_GO_PATH_DELIMITER)]]
	info.elem, err = parquetGoType(leaf.GetType())
	if err != nil {
		return info, err
	}

	for k := 2; k <= len(path); k++ {
		el := sh.SchemaElements[sh.MapIndex[strings.Join(path[:k], common.PAR_GO_PATH_DELIMITER)]]
		if el.GetRepetitionType() == parquet.FieldRepetitionType_REPEATED {
			info.listDL, err = sh.MaxDefinitionLevel(path[:k])
			if err != nil {
				return info, fmt.Errorf("error in MaxDefinitionLevel: %w", err)
			}
			break
		}
	}
	return info, nil
}

func parquetGoType(t parquet.Type) (reflect.Type, error) {
	switch t {
	case parquet.Type_BOOLEAN:
		return reflect.TypeOf(false), nil
	case parquet.Type_INT32:
		return reflect.TypeOf(int32(0)), nil
	case parquet.Type_INT64:
		return reflect.TypeOf(int64(0)), nil
	case parquet.Type_FLOAT:
		return reflect.TypeOf(float32(0)), nil
	case parquet.Type_DOUBLE:
		return reflect.TypeOf(float64(0)), nil
	case parquet.Type_BYTE_ARRAY:
		return reflect.TypeOf(""), nil
	default:
		return nil, fmt.Errorf("unsupported parquet type %s", t)
	}
}

// decode turns the flat values of one column back into one value per row using
// the repetition levels: 0 starts a row, 1 starts an inner list.
func (l columnLayoutInfo) decode(values []any, rls, dls []int32) []any {
	var out []any
	switch l.maxRL {
	case 0:
		out = append(out, values...)
	case 1:
		sliceT := reflect.SliceOf(l.elem)
		var cur reflect.Value
		for i, v := range values {
			if rls[i] == 0 {
				if cur.IsValid() {
					out = append(out, cur.Interface())
				}
				cur = reflect.MakeSlice(sliceT, 0, 0)
			}
			if v != nil {
				cur = reflect.Append(cur, reflect.ValueOf(v))
			}
		}
		if cur.IsValid() {
			out = append(out, cur.Interface())
		}
	default:
		innerT := reflect.SliceOf(l.elem)
		outerT := reflect.SliceOf(innerT)
		var outer, inner reflect.Value
		flushInner := func() {
			if inner.IsValid() {
				outer = reflect.Append(outer, inner)
				inner = reflect.Value{}
			}
		}
		for i, v := range values {
			if rls[i] == 0 {
				flushInner()
				if outer.IsValid() {
					out = append(out, outer.Interface())
				}
				outer = reflect.MakeSlice(outerT, 0, 0)
			}
			if rls[i] <= 1 {
				flushInner()
				if dls[i] >= l.listDL {
					inner = reflect.MakeSlice(innerT, 0, 0)
				}
			}
			if v != nil && inner.IsValid() {
				inner = reflect.Append(inner, reflect.ValueOf(v))
			}
		}
		flushInner()
		if outer.IsValid() {
			out = append(out, outer.Interface())
		}
	}
	return out
}
