package shell

import (
	"errors"
	"io/fs"

	"github.com/shunichi-ikebuchi/file-manager/pkg/console"
	"github.com/shunichi-ikebuchi/file-manager/pkg/ledger"
	"github.com/shunichi-ikebuchi/file-manager/pkg/pathutil"
	"github.com/shunichi-ikebuchi/file-manager/pkg/snapshot"
	"github.com/shunichi-ikebuchi/file-manager/pkg/workdir"
)

// ErrorKind groups handler failures for display.
type ErrorKind string

const (
	KindInput       ErrorKind = "input"
	KindRejected    ErrorKind = "rejected"
	KindFilesystem  ErrorKind = "filesystem"
	KindPersistence ErrorKind = "persistence"
	KindOther       ErrorKind = "other"
)

// Classify returns the kind of a handler failure.
func Classify(err error) ErrorKind {
	var saveErr *ledger.SaveError
	var pathErr *fs.PathError

	switch {
	case errors.Is(err, console.ErrEmptyInput),
		errors.Is(err, workdir.ErrEmptyName),
		errors.Is(err, pathutil.ErrEmptyPath),
		errors.Is(err, ledger.ErrInvalidAmount):
		return KindInput
	case errors.Is(err, ledger.ErrNonPositiveAmount),
		errors.Is(err, ledger.ErrInsufficientFunds):
		return KindRejected
	case errors.As(err, &saveErr), errors.Is(err, snapshot.ErrWrite):
		return KindPersistence
	case errors.Is(err, workdir.ErrNotFound),
		errors.Is(err, workdir.ErrExists),
		errors.Is(err, pathutil.ErrNotDirectory),
		errors.As(err, &pathErr):
		return KindFilesystem
	}
	return KindOther
}

// Describe returns the user-facing message for a handler failure.
func Describe(err error) string {
	switch {
	case errors.Is(err, console.ErrEmptyInput),
		errors.Is(err, workdir.ErrEmptyName),
		errors.Is(err, pathutil.ErrEmptyPath):
		return "Error: input must not be empty!"
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Invalid amount!"
	case errors.Is(err, ledger.ErrNonPositiveAmount):
		return "Amount must be positive!"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "Insufficient funds!"
	case errors.Is(err, pathutil.ErrNotDirectory):
		return "Path does not exist or is not a folder!"
	}

	switch Classify(err) {
	case KindFilesystem:
		return "Error: " + err.Error()
	case KindPersistence:
		return "Save error: " + err.Error()
	}
	return "Unexpected error: " + err.Error()
}
