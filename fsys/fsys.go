// Package fsys defines the filesystem collaborator that resolves File-
// and Folder-typed arguments into open handles, plus a production
// implementation rooted at an OS directory.
package fsys

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrNotFile   = errors.New("path is not a regular file")
	ErrNotFolder = errors.New("path is not a folder")
)

// FS resolves paths into open handles. Implementations must be safe for
// concurrent use: every File/Folder argument of a command is opened in
// parallel during a single execute call.
type FS interface {
	OpenFile(ctx context.Context, path string) (File, error)
	OpenFolder(ctx context.Context, path string) (Folder, error)
}

// File is an open, readable file handle together with the path it was
// resolved from. The caller owns Reader and is responsible for closing it.
type File struct {
	Path   string
	Reader io.ReadCloser
}

// Folder is a resolved folder handle: its path and directory entries.
type Folder struct {
	Path    string
	Entries []fs.DirEntry
}

// OS returns an FS rooted at dir. Relative paths resolve beneath dir;
// absolute paths are used as given. An empty dir roots at the current
// working directory.
func OS(dir string) FS {
	return &osFS{root: dir}
}

type osFS struct {
	root string
}

func (o *osFS) OpenFile(ctx context.Context, path string) (File, error) {
	if err := ctx.Err(); err != nil {
		return File{}, err
	}

	full := o.join(path)

	f, err := os.Open(full)
	if err != nil {
		return File{}, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return File{}, err
	}

	if info.IsDir() {
		_ = f.Close()
		return File{}, fmt.Errorf("%w: %s", ErrNotFile, path)
	}

	return File{Path: full, Reader: f}, nil
}

func (o *osFS) OpenFolder(ctx context.Context, path string) (Folder, error) {
	if err := ctx.Err(); err != nil {
		return Folder{}, err
	}

	full := o.join(path)

	info, err := os.Stat(full)
	if err != nil {
		return Folder{}, err
	}

	if !info.IsDir() {
		return Folder{}, fmt.Errorf("%w: %s", ErrNotFolder, path)
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		return Folder{}, err
	}

	return Folder{Path: full, Entries: entries}, nil
}

func (o *osFS) join(path string) string {
	if o.root == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(o.root, path)
}
