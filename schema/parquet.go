package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes rows as a parquet ntuple readable by storage.ParquetStore,
// with root as the table name. List columns must hold empty slices, not nil,
// for objectless events.
func WriteParquet(w io.Writer, root string, rows []map[string]any) error {
	acc := NewAccumulator(root)
	for _, row := range rows {
		acc.WriteRow(row)
	}
	parquetSchema, err := acc.GetSchemaString()
	if err != nil {
		return fmt.Errorf("error in GetSchemaString: %w", err)
	}

	pw, err := writer.NewJSONWriterFromWriter(parquetSchema, w, 4)
	if err != nil {
		return fmt.Errorf("error in NewJSONWriterFromWriter: %w", err)
	}
	for _, row := range rows {
		b, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("error in json.Marshal of row: %w", err)
		}
		if err = pw.Write(string(b)); err != nil {
			return fmt.Errorf("error in pw.Write for row %s: %w", string(b), err)
		}
	}
	if err = pw.WriteStop(); err != nil {
		return fmt.Errorf("error in pw.WriteStop: %w", err)
	}
	return nil
}
