package photos

import (
	"os"
	"path/filepath"
)

// ContentStore persists photo bytes under a flat directory, one file per
// reference. Writes go through a temp file and rename so a partially
// written photo is never visible under its reference name.
type ContentStore struct {
	dir string
}

func NewContentStore(dir string) (*ContentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ContentStore{dir: dir}, nil
}

// Path resolves a reference to its on-disk location.
func (s *ContentStore) Path(ref string) string {
	return filepath.Join(s.dir, ref)
}

func (s *ContentStore) Write(ref string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+ref+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path(ref))
}

func (s *ContentStore) Remove(ref string) error {
	return os.Remove(s.Path(ref))
}

// Exists reports whether the referenced content is present on disk.
func (s *ContentStore) Exists(ref string) bool {
	_, err := os.Stat(s.Path(ref))
	return err == nil
}
