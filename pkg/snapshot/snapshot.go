// Package snapshot writes and reads the plain-text directory listing record.
//
// The record has two sections:
//
//	files:
//	a.txt
//	b.txt
//
//	dirs:
//	z
//
// Each section lists one name per line in sorted order. There is no
// trailing newline after the last name.
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/shunichi-ikebuchi/file-manager/pkg/pathutil"
)

const (
	FilesHeader = "files:"
	DirsHeader  = "dirs:"
)

// ErrWrite marks a failed snapshot write.
var ErrWrite = errors.New("failed to write snapshot")

// Snapshot is the content of a snapshot record.
type Snapshot struct {
	Files []string
	Dirs  []string
}

// Summary reports what was written.
type Summary struct {
	Path  string
	Files int
	Dirs  int
}

// New builds a snapshot from file and directory names, sorting copies of both.
func New(files, dirs []string) Snapshot {
	s := Snapshot{Files: slices.Clone(files), Dirs: slices.Clone(dirs)}
	slices.Sort(s.Files)
	slices.Sort(s.Dirs)
	return s
}

// Format renders the record.
func (s Snapshot) Format() string {
	parts := make([]string, 0, len(s.Files)+len(s.Dirs)+2)
	parts = append(parts, FilesHeader)
	parts = append(parts, s.Files...)
	parts = append(parts, "\n"+DirsHeader)
	parts = append(parts, s.Dirs...)
	return strings.Join(parts, "\n")
}

// Write replaces the record at path. On error the previous record, if any,
// is left in place.
func Write(path string, s Snapshot) (Summary, error) {
	if err := pathutil.WriteFileAtomic(path, []byte(s.Format()), 0644); err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return Summary{Path: path, Files: len(s.Files), Dirs: len(s.Dirs)}, nil
}

// Read loads a record from path.
func Read(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a record. Blank lines are ignored.
func Parse(r io.Reader) (Snapshot, error) {
	var s Snapshot
	var section *[]string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch line {
		case "":
			continue
		case FilesHeader:
			section = &s.Files
			continue
		case DirsHeader:
			section = &s.Dirs
			continue
		}

		if section == nil {
			return Snapshot{}, fmt.Errorf("line %d: entry %q before any section header", lineNo, line)
		}
		*section = append(*section, line)
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return s, nil
}
