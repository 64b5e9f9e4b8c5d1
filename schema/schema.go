package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

type (
	// Accumulator collects the column types seen across rows of an ntuple. It
	// describes open ntuples and produces parquet-go JSON schemas.
	Accumulator struct {
		schema ParquetSchema
	}

	ParquetSchema struct {
		TagStructs SchemaTag        `json:"-,omitempty"`
		Fields     []*ParquetSchema `json:",omitempty"`
	}

	ParquetJSONSchema struct {
		Tag    string               `json:",omitempty"`
		Fields []*ParquetJSONSchema `json:",omitempty"`
	}

	SchemaTag struct {
		Name           string         `json:"name,omitempty"`
		Type           string         `json:"type,omitempty"`
		ConvertedType  string         `json:"convertedtype,omitempty"`
		RepetitionType RepetitionType `json:"repetitiontype,omitempty"`
		Encoding       string         `json:"encoding,omitempty"`
	}

	RepetitionType string
)

var (
	Optional RepetitionType = "OPTIONAL"
	Required RepetitionType = "REQUIRED"
)

// NewAccumulator starts an empty schema whose root element is named after the tree.
func NewAccumulator(root string) Accumulator {
	return Accumulator{
		schema: ParquetSchema{
			TagStructs: SchemaTag{
				Name:           root,
				RepetitionType: Required,
			},
		},
	}
}

func (a *Accumulator) WriteRow(row map[string]any) {
	keys := make([]string, 0, len(row))
	for key := range row {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if a.fieldExists(key) {
			continue
		}
		val := row[key]
		if val == nil {
			continue
		}
		rowSchema := getParquetSchema(key, reflect.TypeOf(val))
		if rowSchema != nil {
			a.schema.Fields = append(a.schema.Fields, rowSchema)
		}
	}
}

// getParquetSchema maps a Go column type to its parquet representation, nil if
// it has none. Ntuple columns are all required: empty lists are stored as such.
func getParquetSchema(key string, t reflect.Type) *ParquetSchema {
	schema := &ParquetSchema{
		TagStructs: SchemaTag{
			Name:           key,
			RepetitionType: Required,
		},
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		elem := getParquetSchema("element", t.Elem())
		if elem == nil {
			return nil
		}
		schema.TagStructs.Type = "LIST"
		schema.Fields = append(schema.Fields, elem)
	case reflect.String:
		schema.TagStructs.Type = "BYTE_ARRAY"
		schema.TagStructs.ConvertedType = "UTF8"
		schema.TagStructs.Encoding = "PLAIN"
	case reflect.Bool:
		schema.TagStructs.Type = "BOOLEAN"
	case reflect.Float32:
		schema.TagStructs.Type = "FLOAT"
	case reflect.Float64:
		schema.TagStructs.Type = "DOUBLE"
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		schema.TagStructs.Type = "INT32"
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64:
		schema.TagStructs.Type = "INT64"
	default:
		return nil
	}

	return schema
}

func (a *Accumulator) fieldExists(fieldName string) (exists bool) {
	for _, field := range a.schema.Fields {
		if field.TagStructs.Name == fieldName {
			return true
		}
	}
	return
}

func (a *Accumulator) GetColumnNames() []string {
	var cols []string
	for _, field := range a.schema.Fields {
		cols = append(cols, field.TagStructs.Name)
	}
	return cols
}

func (ps *ParquetSchema) GetType() string {
	switch ps.TagStructs.Type {
	case "BYTE_ARRAY":
		return "string"
	case "FLOAT", "DOUBLE":
		return "float"
	case "INT32", "INT64":
		return "int"
	case "BOOLEAN":
		return "bool"
	case "LIST":
		return fmt.Sprintf("list(%s)", ps.Fields[0].GetType())
	default:
		return "unknown"
	}
}

// GetColumnTypes returns the types of columns in the same order as
// GetColumnNames: `string`, `float`, `int`, `bool` or `list(x)` (recursive)
func (a *Accumulator) GetColumnTypes() []string {
	var cols []string
	for _, field := range a.schema.Fields {
		cols = append(cols, field.GetType())
	}
	return cols
}

// ToParquetJSONSchema recursively converts
func (ps *ParquetSchema) ToParquetJSONSchema() *ParquetJSONSchema {
	var tagArr []string
	if ps.TagStructs.Name != "" {
		tagArr = append(tagArr, "name="+ps.TagStructs.Name)
	}
	if ps.TagStructs.Type != "" {
		tagArr = append(tagArr, "type="+ps.TagStructs.Type)
	}
	if ps.TagStructs.ConvertedType != "" {
		tagArr = append(tagArr, "convertedtype="+ps.TagStructs.ConvertedType)
	}
	if ps.TagStructs.Encoding != "" {
		tagArr = append(tagArr, "encoding="+ps.TagStructs.Encoding)
	}
	if string(ps.TagStructs.RepetitionType) != "" {
		tagArr = append(tagArr, "repetitiontype="+string(ps.TagStructs.RepetitionType))
	}
	var fields []*ParquetJSONSchema
	for _, field := range ps.Fields {
		fields = append(fields, field.ToParquetJSONSchema())
	}
	return &ParquetJSONSchema{
		Tag:    strings.Join(tagArr, ", "),
		Fields: fields,
	}
}

// GetSchemaString returns the JSON formatted schema string
func (a *Accumulator) GetSchemaString() (string, error) {
	b, err := json.Marshal(a.schema.ToParquetJSONSchema())
	if err != nil {
		return "", fmt.Errorf("error in json.Marshal: %w", err)
	}
	return string(b), nil
}
