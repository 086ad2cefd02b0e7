package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// File persists the store as one JSON document. Writes replace the whole
// file atomically, and Lock enforces the single-writer discipline: a
// semaphore serializes goroutines sharing this File, a sibling lock file
// serializes processes pointing at the same data dir.
type File struct {
	path string
	sem  chan struct{}
	lock *flock.Flock
}

func NewFile(path string) *File {
	return &File{
		path: path,
		sem:  make(chan struct{}, 1),
		lock: flock.New(path + ".lock"),
	}
}

func (f *File) Path() string { return f.path }

// Lock takes the exclusive write lock, polling until the context expires.
// flock grants are reentrant per instance, so the in-process semaphore must
// be taken before the file lock.
func (f *File) Lock(ctx context.Context) error {
	select {
	case f.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	ok, err := f.lock.TryLockContext(ctx, 200*time.Millisecond)
	if err != nil || !ok {
		<-f.sem
		if err != nil {
			return err
		}
		return errors.New("store lock held by another writer")
	}
	return nil
}

func (f *File) Unlock() error {
	err := f.lock.Unlock()
	<-f.sem
	return err
}

// Load reads the persisted store. A missing or undecodable file yields an
// empty store, never an error; a run that starts from nothing is normal.
func (f *File) Load() Store {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return Empty()
	}
	var s Store
	if err := json.Unmarshal(b, &s); err != nil {
		return Empty()
	}
	if s.Postings == nil {
		s.Postings = Empty().Postings
	}
	return s
}

// Save writes the store atomically: marshal to a temp file, keep the old
// document as .bak, rename into place. A failed write leaves the previous
// document intact.
func (f *File) Save(s Store) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	bak := f.path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(f.path, bak)

	return os.Rename(tmp, f.path)
}
