package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/handiism/woodstock/internal/codec"
	ioutils "github.com/handiism/woodstock/internal/io"
	"github.com/handiism/woodstock/internal/logging"
	"github.com/handiism/woodstock/internal/model"
)

const ext = ".json"

var (
	// ErrNotFound is returned when no entry with the given name exists.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidName is returned for names that slugify to nothing.
	ErrInvalidName = errors.New("invalid entry name")
)

// Option configures a JSONStore.
type Option func(*JSONStore)

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *JSONStore) { s.logger = logging.OrNop(l) }
}

// WithIndent sets the indentation of written files. An empty indent writes compact JSON.
func WithIndent(indent string) Option {
	return func(s *JSONStore) { s.indent = indent }
}

// JSONStore keeps tagged entities as one JSON file each under a directory.
//
// Entry names are slugified, so "Woodstock 1969" lives in woodstock-1969.json.
//
// Example usage:
//
//	st := store.New(dataDir, store.WithLogger(logger))
//	path, err := st.Save("Woodstock 1969", festival)
//	f, err := st.LoadFestival("woodstock-1969")
type JSONStore struct {
	dir    string
	indent string
	logger *zap.Logger
}

// New creates a JSONStore rooted at dir. Files are indented with two spaces by default.
func New(dir string, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir:    dir,
		indent: "  ",
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory the store writes to.
func (s *JSONStore) Dir() string {
	return s.dir
}

// Path returns the file path for the entry name.
func (s *JSONStore) Path(name string) (string, error) {
	slug := ioutils.Slugify(strings.TrimSuffix(name, ext))
	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, slug+ext), nil
}

// Save encodes v with the tagged codec and writes it under name.
// It returns the path written.
func (s *JSONStore) Save(name string, v any) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}

	var data []byte
	if s.indent == "" {
		data, err = codec.Encode(v)
	} else {
		data, err = codec.EncodeIndent(v, s.indent)
	}
	if err != nil {
		return "", err
	}

	if err := ioutils.WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	s.logger.Info("entry saved", zap.String("name", name), zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}

// Load reads the entry name and decodes whatever entity it holds.
func (s *JSONStore) Load(name string) (any, error) {
	data, err := s.read(name)
	if err != nil {
		return nil, err
	}
	return codec.Decode(data)
}

// LoadFestival reads the entry name as a festival.
func (s *JSONStore) LoadFestival(name string) (*model.Festival, error) {
	data, err := s.read(name)
	if err != nil {
		return nil, err
	}
	return codec.DecodeFestival(data)
}

// LoadLineup reads the entry name as a lineup.
func (s *JSONStore) LoadLineup(name string) (*model.Lineup, error) {
	data, err := s.read(name)
	if err != nil {
		return nil, err
	}
	return codec.DecodeLineup(data)
}

// LoadPerformer reads the entry name as a performer.
func (s *JSONStore) LoadPerformer(name string) (model.Performer, error) {
	data, err := s.read(name)
	if err != nil {
		return model.Performer{}, err
	}
	return codec.DecodePerformer(data)
}

// Tag returns the type tag of the entry name without decoding it.
func (s *JSONStore) Tag(name string) (string, error) {
	data, err := s.read(name)
	if err != nil {
		return "", err
	}
	return codec.Tag(data)
}

// Delete removes the entry name.
func (s *JSONStore) Delete(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	s.logger.Info("entry deleted", zap.String("name", name))
	return nil
}

// List returns the sorted names of all entries. A missing directory lists nothing.
func (s *JSONStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

func (s *JSONStore) read(name string) ([]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	s.logger.Debug("entry read", zap.String("path", path))
	return data, nil
}
