package workdir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shunichi-ikebuchi/file-manager/pkg/pathutil"
)

// Repository defines the operations the shell performs on the working directory.
type Repository interface {
	// List enumerates the immediate children of the working directory
	List() (Listing, error)

	// CreateDir creates a new directory
	CreateDir(name string) (string, error)

	// Delete removes a file, or a directory with its contents
	Delete(name string) (string, error)

	// Copy copies a file or a directory tree to a new name
	Copy(src, dst string) (string, error)
}

// FileSystemRepository is a file system implementation of Repository.
// Names are resolved through the PathResolver, so they follow the current
// working directory.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
	}
}

// List enumerates the working directory.
func (r *FileSystemRepository) List() (Listing, error) {
	return ListDir(r.pathResolver.GetWorkDir())
}

// ListDir enumerates the immediate children of dir, classifying each one by
// querying the filesystem now. Symlinks are followed; dangling links and
// entries that are neither files nor directories are skipped. Any other stat
// failure fails the whole listing.
func ListDir(dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var listing Listing
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && entry.Type()&fs.ModeSymlink != 0 {
				continue
			}
			return Listing{}, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		switch {
		case info.IsDir():
			listing.Dirs = append(listing.Dirs, Entry{Name: entry.Name(), Kind: KindDir})
		case info.Mode().IsRegular():
			listing.Files = append(listing.Files, Entry{Name: entry.Name(), Kind: KindFile, Size: info.Size()})
		}
	}

	byName := func(a, b Entry) int { return strings.Compare(a.Name, b.Name) }
	slices.SortFunc(listing.Files, byName)
	slices.SortFunc(listing.Dirs, byName)

	return listing, nil
}

// CreateDir creates a directory, including missing parents.
// It fails with ErrExists when anything already occupies the name.
func (r *FileSystemRepository) CreateDir(name string) (string, error) {
	path, err := r.target(name)
	if err != nil {
		return "", err
	}

	if _, err := os.Lstat(path); err == nil {
		return "", fmt.Errorf("%s: %w", name, ErrExists)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", name, err)
	}

	return path, nil
}

// Delete removes a file or a directory tree. Symlinks are removed, not followed.
func (r *FileSystemRepository) Delete(name string) (string, error) {
	path, err := r.target(name)
	if err != nil {
		return "", err
	}

	if contains(path, r.pathResolver.GetWorkDir()) {
		return "", fmt.Errorf("refusing to delete %s: it contains the working directory", name)
	}

	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("failed to stat %s: %w", name, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to delete %s: %w", name, err)
	}

	return path, nil
}

// Copy copies src to dst. Files keep their permission bits and modification
// time; directories are copied recursively. dst must not exist.
func (r *FileSystemRepository) Copy(src, dst string) (string, error) {
	srcPath, err := r.target(src)
	if err != nil {
		return "", err
	}
	dstPath, err := r.target(dst)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", src, ErrNotFound)
		}
		return "", fmt.Errorf("failed to stat %s: %w", src, err)
	}

	if _, err := os.Lstat(dstPath); err == nil {
		return "", fmt.Errorf("%s: %w", dst, ErrExists)
	}

	if info.IsDir() {
		if contains(srcPath, dstPath) {
			return "", fmt.Errorf("cannot copy %s into itself", src)
		}
		if err := os.CopyFS(dstPath, os.DirFS(srcPath)); err != nil {
			return "", fmt.Errorf("failed to copy directory %s: %w", src, err)
		}
		return dstPath, nil
	}

	if err := copyFile(srcPath, dstPath, info); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return dstPath, nil
}

// target resolves a user-supplied entry name against the working directory.
func (r *FileSystemRepository) target(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return r.pathResolver.Resolve(name), nil
}

// copyFile copies contents, permission bits and modification time.
func copyFile(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// contains reports whether path equals dir or is an ancestor of it.
func contains(path, dir string) bool {
	rel, err := filepath.Rel(path, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
