package mytar

import "io"

// progressReader wraps an io.Reader and advances the progress line.
type progressReader struct {
	r io.Reader
	p *progressData
}

func (pr progressReader) Read(b []byte) (int, error) {
	n, err := pr.r.Read(b)
	if pr.p != nil {
		pr.p.current += int64(n)
		pr.p.tick()
	}
	return n, err
}
