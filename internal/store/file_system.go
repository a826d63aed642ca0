package store

import "os"

// osFileSystem is the [FileSystem] backed by the real operating system.
type osFileSystem struct {
	atomic bool
}

// NewOSFileSystem returns a [FileSystem] over the local disk.
//
// With atomic unset WriteFile truncates and rewrites the target in place, so
// an interrupted write can leave a partial file. With atomic set WriteFile
// writes a temporary sibling, syncs it and renames it over the target where
// the platform supports it.
func NewOSFileSystem(atomic bool) FileSystem {
	return &osFileSystem{atomic: atomic}
}

func (f *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *osFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (f *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if f.atomic {
		return writeFileAtomic(name, data, perm)
	}
	return os.WriteFile(name, data, perm)
}
