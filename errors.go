package mytar

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotATar         = errors.New("not a tar archive")
	ErrUnsupportedType = errors.New("unsupported header type")
	ErrUnexpectedEOF   = errors.New("unexpected EOF in archive")
	ErrShortRead       = errors.New("short block read")
	ErrCannotCreate    = errors.New("cannot create extraction target")
	ErrNotFound        = errors.New("not found in archive")
)

// UnsupportedTypeError is returned for any header whose type flag is not a
// regular file.
type UnsupportedTypeError struct {
	Name     string
	Typeflag byte
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported header type %d", e.Name, e.Typeflag)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// ExtractError records a failed open, write or close of an output file.
type ExtractError struct {
	Op   string
	Name string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

func (e *ExtractError) Is(target error) bool {
	return target == ErrCannotCreate && e.Op == "open"
}

// NotFoundError lists requested members that never matched an entry.
type NotFoundError struct {
	Names []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%d requested member(s) not found in archive: %v", len(e.Names), e.Names)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
