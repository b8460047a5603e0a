package mytar

import (
	"os"
)

// Extractor creates output files for extracted members under one directory.
// Existing files are truncated and overwritten without asking; parent
// directories are never created.
type Extractor struct {
	dir string
}

func NewExtractor(dir string) *Extractor {
	if dir == "" {
		dir = "."
	}
	return &Extractor{dir: dir}
}

// Open creates (or truncates) the file for member name.
func (e *Extractor) Open(name string) (*Sink, error) {
	target, err := memberPath(e.dir, name)
	if err != nil {
		return nil, &ExtractError{Op: "open", Name: name, Err: err}
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, &ExtractError{Op: "open", Name: name, Err: err}
	}
	return newSink(name, f), nil
}
