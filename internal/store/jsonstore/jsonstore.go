package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/finmetrics/internal/model"
)

// JSON-backed run storage. One human-readable file per run, named
// <UTC timestamp>_<short id>.json so a directory listing sorts by age.
// No locking; fine for a local single-user CLI.

const (
	fileExt    = ".json"
	timeLayout = "20060102T150405Z"
	shortIDLen = 8
)

type Store struct {
	dir string
	now func() time.Time
}

type Option func(*Store)

// WithNow overrides the clock used to stamp new runs.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Dir() string { return s.dir }

func storageErr(op string, err error) error {
	return &model.OpError{Op: op, Kind: model.KindStorage, Err: err}
}

func notFound(op, id string) error {
	return &model.OpError{Op: op, Kind: model.KindNotFound, Err: fmt.Errorf("no run with id %q", id)}
}

// Save assigns an id and timestamp to run and writes it atomically.
func (s *Store) Save(run model.Run) (model.Run, error) {
	const op = "store.save"
	run.ID = uuid.NewString()
	run.CreatedAt = s.now().UTC().Truncate(time.Second)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return model.Run{}, storageErr(op, fmt.Errorf("mkdir: %w", err))
	}
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return model.Run{}, storageErr(op, fmt.Errorf("json marshal: %w", err))
	}
	name := run.CreatedAt.Format(timeLayout) + "_" + run.ID[:shortIDLen] + fileExt
	final := filepath.Join(s.dir, name)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return model.Run{}, storageErr(op, fmt.Errorf("write file: %w", err))
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return model.Run{}, storageErr(op, fmt.Errorf("rename: %w", err))
	}
	return run, nil
}

type entry struct {
	path string
	run  model.Run
}

func (s *Store) load(op string) ([]entry, error) {
	des, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, storageErr(op, fmt.Errorf("read dir: %w", err))
	}
	var out []entry
	for _, de := range des {
		if de.IsDir() || !strings.HasSuffix(de.Name(), fileExt) {
			continue
		}
		p := filepath.Join(s.dir, de.Name())
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, storageErr(op, fmt.Errorf("read file: %w", err))
		}
		var r model.Run
		if err := json.Unmarshal(b, &r); err != nil {
			return nil, storageErr(op, fmt.Errorf("json unmarshal %s: %w", de.Name(), err))
		}
		out = append(out, entry{path: p, run: r})
	}
	slices.SortStableFunc(out, func(a, b entry) int {
		return b.run.CreatedAt.Compare(a.run.CreatedAt)
	})
	return out, nil
}

// List returns all saved runs, newest first. A missing directory is empty.
func (s *Store) List() ([]model.Run, error) {
	entries, err := s.load("store.list")
	if err != nil {
		return nil, err
	}
	runs := make([]model.Run, len(entries))
	for i, e := range entries {
		runs[i] = e.run
	}
	return runs, nil
}

// find matches the full id or a unique prefix of it.
func (s *Store) find(op, id string) (entry, error) {
	if id == "" {
		return entry{}, model.Invalid(op, "run id is required")
	}
	entries, err := s.load(op)
	if err != nil {
		return entry{}, err
	}
	var hits []entry
	for _, e := range entries {
		if e.run.ID == id {
			return e, nil
		}
		if strings.HasPrefix(e.run.ID, id) {
			hits = append(hits, e)
		}
	}
	switch len(hits) {
	case 0:
		return entry{}, notFound(op, id)
	case 1:
		return hits[0], nil
	}
	return entry{}, model.Invalid(op, "id prefix %q matches %d runs", id, len(hits))
}

func (s *Store) Get(id string) (model.Run, error) {
	e, err := s.find("store.get", id)
	if err != nil {
		return model.Run{}, err
	}
	return e.run, nil
}

func (s *Store) Delete(id string) error {
	const op = "store.delete"
	e, err := s.find(op, id)
	if err != nil {
		return err
	}
	if err := os.Remove(e.path); err != nil {
		return storageErr(op, fmt.Errorf("remove: %w", err))
	}
	return nil
}
