package batch

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is a file tree that can also be written back.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type dirFS struct {
	fs.FS
	root string
}

// DirFS returns the tree rooted at dir on the local disk.
func DirFS(dir string) FS { //nolint:ireturn
	return &dirFS{FS: os.DirFS(dir), root: dir}
}

func (d *dirFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrInvalid}
	}

	return os.WriteFile(filepath.Join(d.root, filepath.FromSlash(name)), data, perm)
}
