package bitstore

import (
	"context"
	"errors"
	"log/slog"
	"os"

	bitvec "github.com/nic-obert/bitvec-padded"
)

// ErrNotFound is returned when no sequence exists under the requested name.
//
// Implementations return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned for names a backend cannot represent, such as
// empty names or names containing path separators.
var ErrInvalidName = errors.New("invalid sequence name")

// Store is an abstraction for persisting named bit sequences.
//
// Implementations must be safe for concurrent use. Get returns a freshly
// owned Sequence on every call; mutating it never affects the stored copy.
type Store interface {
	// Put stores the sequence's current contents under name, replacing any
	// previous value.
	Put(ctx context.Context, name string, seq *bitvec.Sequence) error
	// Get loads the sequence stored under name.
	Get(ctx context.Context, name string) (*bitvec.Sequence, error)
	// Delete removes the sequence stored under name. Deleting a missing
	// name is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all stored sequences matching the prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Options configures a Store implementation.
type Options struct {
	// Logger receives debug-level operation logs. Defaults to a discarding
	// logger.
	Logger *slog.Logger
}

// WithLogger configures the logger used for operation logs.
func WithLogger(l *slog.Logger) func(*Options) {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func applyOptions(optFns []func(*Options)) Options {
	opts := Options{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
