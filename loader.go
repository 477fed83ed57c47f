package corrector

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Store persists lexicon tables as JSON documents addressed by name
// (SubjectsTable, VerbsTable, ObjectsTable). Read must return an error
// matching ErrNotFound for a table that does not exist.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}

// FileStore keeps each table in <Dir>/<name>.json.
type FileStore struct {
	Dir string
}

// Path returns the file that holds table name.
func (s FileStore) Path(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

func (s FileStore) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return data, err
}

func (s FileStore) Write(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create dictionary directory: %w", err)
	}
	return os.WriteFile(s.Path(name), data, 0o644)
}

// LoadLexicon reads the three tables from s. A missing table is
// replaced by an empty one, which is written back so that the next
// load finds it; the substitution is logged and listed in
// Lexicon.Warnings. A malformed document is an error.
func LoadLexicon(s Store) (*Lexicon, error) {
	lex := NewLexicon()
	var warnings [3]error

	load := func(i int, fn func() (*MissingResourceError, error)) func() error {
		return func() error {
			w, err := fn()
			if w != nil {
				warnings[i] = w
			}
			return err
		}
	}

	var g errgroup.Group
	g.Go(load(0, func() (*MissingResourceError, error) {
		return LoadTable(s, SubjectsTable, lex.Subjects)
	}))
	g.Go(load(1, func() (*MissingResourceError, error) {
		return LoadTable(s, VerbsTable, lex.Verbs)
	}))
	g.Go(load(2, func() (*MissingResourceError, error) {
		return LoadTable(s, ObjectsTable, lex.Objects)
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, w := range warnings {
		if w != nil {
			lex.warnings = append(lex.warnings, w)
		}
	}
	return lex, nil
}

// LoadTable decodes table name from s into dst. When the table does not
// exist dst is left empty, saved to s, and a *MissingResourceError is
// returned as the warning.
func LoadTable[V any](s Store, name string, dst *Table[V]) (*MissingResourceError, error) {
	data, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		warning := &MissingResourceError{Name: name, Err: err}
		log.Warn().Str("table", name).Msg("dictionary table not found, creating empty table")
		dst.reset()
		if err := SaveTable(s, name, dst); err != nil {
			return warning, err
		}
		return warning, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	log.Debug().Str("table", name).Int("entries", dst.Len()).Msg("dictionary table loaded")
	return nil, nil
}

// SaveTable writes table as indented JSON, non-ASCII text verbatim.
func SaveTable(s Store, name string, table json.Marshaler) error {
	data, err := encodeTable(table)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.Write(name, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// SaveLexicon writes all three tables of lex to s.
func SaveLexicon(s Store, lex *Lexicon) error {
	if err := SaveTable(s, SubjectsTable, lex.Subjects); err != nil {
		return err
	}
	if err := SaveTable(s, VerbsTable, lex.Verbs); err != nil {
		return err
	}
	return SaveTable(s, ObjectsTable, lex.Objects)
}

// CopyLexicon copies the raw table documents from src to dst. Tables
// missing in src are skipped.
func CopyLexicon(dst, src Store) error {
	for _, name := range []string{SubjectsTable, VerbsTable, ObjectsTable} {
		data, err := src.Read(name)
		if errors.Is(err, ErrNotFound) {
			log.Warn().Str("table", name).Msg("table missing in source, skipped")
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if !json.Valid(data) {
			return fmt.Errorf("parse %s: invalid JSON document", name)
		}
		if err := dst.Write(name, data); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func encodeTable(table json.Marshaler) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
