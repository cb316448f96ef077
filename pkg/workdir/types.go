// Package workdir provides listing and entry operations on the working directory.
package workdir

import "errors"

var (
	// ErrNotFound is returned when a named entry does not exist.
	ErrNotFound = errors.New("entry not found")
	// ErrExists is returned when the target name is already taken.
	ErrExists = errors.New("entry already exists")
	// ErrEmptyName is returned when an entry name is blank.
	ErrEmptyName = errors.New("name must not be empty")
)

// Kind classifies a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is one immediate child of a listed directory.
type Entry struct {
	Name string
	Kind Kind
	Size int64 // bytes, files only
}

// Listing holds the partitioned children of a directory, each sorted by name.
type Listing struct {
	Files []Entry
	Dirs  []Entry
}

// Empty reports whether the directory had no files and no subdirectories.
func (l Listing) Empty() bool {
	return len(l.Files) == 0 && len(l.Dirs) == 0
}

// FileNames returns the file names in listing order.
func (l Listing) FileNames() []string {
	return names(l.Files)
}

// DirNames returns the directory names in listing order.
func (l Listing) DirNames() []string {
	return names(l.Dirs)
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
