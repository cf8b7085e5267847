package bitstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	bitvec "github.com/nic-obert/bitvec-padded"
)

// LocalStore implements Store using the local file system: one file per
// name under a root directory, containing the sequence's wire
// representation.
type LocalStore struct {
	root   string
	logger *slog.Logger
}

// NewLocalStore creates a LocalStore rooted at the given directory,
// creating it if necessary.
func NewLocalStore(root string, optFns ...func(*Options)) (*LocalStore, error) {
	opts := applyOptions(optFns)

	if err := os.MkdirAll(root, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &LocalStore{
		root:   root,
		logger: opts.Logger,
	}, nil
}

// Put stores the sequence under name. The write is atomic: the wire bytes
// are written to a temporary file and renamed into place, so a reader never
// observes a partially written sequence.
func (s *LocalStore) Put(ctx context.Context, name string, seq *bitvec.Sequence) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data := seq.AppendTo(nil)
	path := filepath.Join(s.root, name)

	tmp, err := os.CreateTemp(s.root, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write sequence: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	s.logger.Debug("sequence stored", "name", name, "bits", seq.Len(), "path", path)
	return nil
}

// Get loads the sequence stored under name.
func (s *LocalStore) Get(ctx context.Context, name string) (*bitvec.Sequence, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("sequence not found", "name", name)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}
	return bitvec.Deserialize(data)
}

// Delete removes the sequence stored under name.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete sequence: %w", err)
	}

	s.logger.Debug("sequence deleted", "name", name)
	return nil
}

// List returns the names of all stored sequences matching the prefix.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list store directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

// checkName rejects names the filesystem backend cannot store as a single
// file directly under the root.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
