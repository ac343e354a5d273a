// Package store implements the persistence of assets.
//
// The file store keeps one file per asset in a directory, named after the
// asset. The file encoding is provided by a codec: spreadsheet (.xlsx) or
// JSON lines (.jsonl). The memory store is a test double.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/etnz/dca"
)

// codec encodes the tables of an asset file.
type codec interface {
	ext() string
	encode(w io.Writer, t tables) error
	// decode returns an error only if the container itself is unreadable,
	// missing tables are reported in the returned tables.
	decode(r io.Reader) (tables, error)
}

// Formats supported by New.
const (
	FormatXLSX  = "xlsx"
	FormatJSONL = "jsonl"
)

// File is a dca.Repository storing each asset in its own file.
type File struct {
	dir   string
	codec codec
	now   func() time.Time
}

var _ dca.Repository = (*File)(nil)

// New returns a file store in 'dir' for the given format.
func New(dir, format string) (*File, error) {
	switch format {
	case FormatXLSX:
		return NewXLSX(dir), nil
	case FormatJSONL:
		return NewJSONL(dir), nil
	default:
		return nil, fmt.Errorf("unknown store format %q: %w", format, dca.ErrInvalidArgument)
	}
}

// NewXLSX returns a file store of spreadsheets in 'dir'.
func NewXLSX(dir string) *File { return &File{dir: dir, codec: xlsxCodec{}, now: time.Now} }

// NewJSONL returns a file store of JSON lines files in 'dir'.
func NewJSONL(dir string) *File { return &File{dir: dir, codec: jsonlCodec{}, now: time.Now} }

// Dir returns the store's directory.
func (s *File) Dir() string { return s.dir }

// Path returns the path of the file of the asset 'name'.
func (s *File) Path(name string) string {
	return filepath.Join(s.dir, name+s.codec.ext())
}

// Export writes the asset file, refreshing UpdatedAt first.
//
// The file is written next to its destination and then renamed, so that a
// reader never sees a partial file, and a failed write leaves the previous
// file untouched.
func (s *File) Export(a *dca.Asset) (err error) {
	if err := dca.ValidName(a.Name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create assets directory %q: %w", s.dir, err)
	}
	a.UpdatedAt = s.now()

	tmp, err := os.CreateTemp(s.dir, "."+a.Name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", a.Name, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := s.codec.encode(tmp, toTables(a)); err != nil {
		return fmt.Errorf("could not encode asset %q: %w", a.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write asset %q: %w", a.Name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(a.Name)); err != nil {
		return fmt.Errorf("could not replace asset file %q: %w", s.Path(a.Name), err)
	}
	return nil
}

// Import reads the asset file. It returns (nil, nil) if there is none.
func (s *File) Import(name string) (*dca.Asset, error) {
	if err := dca.ValidName(name); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open asset file %q: %w", s.Path(name), err)
	}
	defer f.Close()

	t, err := s.codec.decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode asset file %q: %w", s.Path(name), err)
	}
	return t.asset(name, s.now())
}

// Delete removes the asset file. It reports whether it existed.
func (s *File) Delete(name string) (bool, error) {
	if err := dca.ValidName(name); err != nil {
		return false, err
	}
	err := os.Remove(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not delete asset file %q: %w", s.Path(name), err)
	}
	return true, nil
}

// List returns the names of the asset files in the store directory, sorted.
// A missing directory is an empty store.
func (s *File) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not list assets in %q: %w", s.dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, s.codec.ext()) {
			continue
		}
		names = append(names, strings.TrimSuffix(n, s.codec.ext()))
	}
	slices.Sort(names)
	return names, nil
}
