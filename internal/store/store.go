// Package store persists collections as flat JSON array files.
//
// Every read loads the whole file and every write rewrites it wholesale.
// There is no locking: two request handlers that both read, append, and
// write the same collection can interleave, and the last completed write
// wins — the earlier writer's record is silently lost. That lost-update
// race is part of the persisted contract of this system and is covered by
// tests rather than fixed here.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Collection binds one record type to one JSON array file on disk
type Collection[T any] struct {
	path    string
	lenient bool
	log     zerolog.Logger
}

// Option configures a Collection
type Option func(*options)

type options struct {
	lenient bool
}

// WithLenientParse makes ReadAll treat a malformed file as an empty
// collection instead of returning an error. Only the users collection
// opts into this.
func WithLenientParse() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// NewCollection creates a Collection backed by the given file path
func NewCollection[T any](path string, log zerolog.Logger, opts ...Option) *Collection[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{
		path:    path,
		lenient: o.lenient,
		log:     log.With().Str("collection", filepath.Base(path)).Logger(),
	}
}

// Path returns the backing file path
func (c *Collection[T]) Path() string {
	return c.path
}

// ReadAll returns every record in stored order. A missing file is an empty
// collection, not an error.
func (c *Collection[T]) ReadAll() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		if c.lenient {
			c.log.Warn().Err(err).Msg("Malformed collection file, treating as empty")
			return []T{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// WriteAll serializes the full ordered collection as pretty-printed JSON and
// overwrites the file. The write is not atomic: a crash mid-write can leave
// a truncated file behind.
func (c *Collection[T]) WriteAll(records []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
