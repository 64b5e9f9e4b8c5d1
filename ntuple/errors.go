package ntuple

import (
	"errors"

	"github.com/danthegoodman1/hgcalntuple/storage"
)

var (
	// ErrStorage is returned when the file or tree cannot be opened or an entry cannot be read
	ErrStorage = storage.ErrStorage
	// ErrIndex is returned for entry or object indices outside their range
	ErrIndex = storage.ErrIndex
	// ErrSchema is returned for missing columns, non numeric values and columns
	// of one kind whose lengths disagree within an event
	ErrSchema = errors.New("schema error")
	// ErrInvalidObject is returned when reading fields of the -1 sentinel object
	ErrInvalidObject = errors.New("invalid object")
	// ErrStale is returned when a view is used after its ntuple loaded another entry
	ErrStale = errors.New("view used after its entry was replaced")

	// errFieldLength marks an ErrSchema caused by a field column shorter than its
	// collection, which Export reports instead of skipping
	errFieldLength = errors.New("field length disagrees with the collection")
)
