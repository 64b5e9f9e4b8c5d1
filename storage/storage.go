package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/danthegoodman1/hgcalntuple/fetch"
	"github.com/danthegoodman1/hgcalntuple/gologger"
	"github.com/rs/zerolog"
	s3_pq "github.com/xitongsys/parquet-go-source/s3"
)

var (
	logger = gologger.NewLogger()

	// ErrStorage is returned when a file or table cannot be opened or a row cannot be read.
	ErrStorage = errors.New("storage error")
	// ErrIndex is returned when a row position is out of range.
	ErrIndex = errors.New("index out of range")
)

type (
	// Store is one open table of a columnar file. Exactly one row is loaded at a
	// time, and the values returned by Column are only meaningful until the next
	// call to LoadRow: backends are free to overwrite them in place.
	Store interface {
		// Entries is the number of rows in the table
		Entries() int64
		// LoadRow makes row i the current row
		LoadRow(i int64) error
		// Column returns the current row's value for the named column
		Column(name string) (any, bool)
		// Columns lists every column name in the table
		Columns() []string

		Close() error
	}
)

// Open opens the table inside the file at p. Paths ending in .parquet are read
// with the parquet backend, everything else is treated as a ROOT file. s3://
// parquet files are streamed, s3:// ROOT files are downloaded first.
func Open(ctx context.Context, p, table string) (Store, error) {
	logger := zerolog.Ctx(ctx)
	isParquet := strings.EqualFold(path.Ext(p), ".parquet")

	if !fetch.IsRemote(p) {
		if isParquet {
			return OpenParquetStore(p, table)
		}
		return OpenRootStore(p, table)
	}

	bucket, key, err := fetch.ParseS3URL(p)
	if err != nil {
		return nil, fmt.Errorf("error in ParseS3URL: %s: %w", err, ErrStorage)
	}

	if isParquet {
		logger.Debug().Str("bucket", bucket).Str("key", key).Msg("streaming parquet ntuple from s3")
		client, err := fetch.NewS3Client()
		if err != nil {
			return nil, fmt.Errorf("error in NewS3Client: %s: %w", err, ErrStorage)
		}
		r, err := s3_pq.NewS3FileReaderWithClient(ctx, client, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("error creating new s3 file reader: %s: %w", err, ErrStorage)
		}
		return NewParquetStore(r, table)
	}

	local, cleanup, err := fetch.Download(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("error in fetch.Download: %s: %w", err, ErrStorage)
	}
	rs, err := OpenRootStore(local, table)
	if err != nil {
		cleanup()
		return nil, err
	}
	rs.cleanup = cleanup
	return rs, nil
}
