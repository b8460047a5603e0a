package mytar

import (
	"fmt"
	"hash"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Stats summarises one walk.
type Stats struct {
	Entries  int64
	Selected int64
	Written  int64
}

// Walker drives one pass over an archive: it reads header blocks, decides
// per entry whether it is selected, and consumes exactly the entry's content
// blocks, handing the data bytes to an output file when extracting.
type Walker struct {
	src      *BlockReader
	sel      *Selection
	mode     Mode
	verbose  bool
	digest   string
	ext      *Extractor
	out      io.Writer
	log      zerolog.Logger
	progress *progressData
	stats    Stats
}

// NewWalker returns a walker reading src. Member names (and digests) are
// printed to out; diagnostics go to log.
func NewWalker(src *BlockReader, sel *Selection, cfg Config, out io.Writer, log zerolog.Logger) *Walker {
	w := &Walker{
		src:     src,
		sel:     sel,
		mode:    cfg.Mode,
		verbose: cfg.verbose(),
		digest:  cfg.Digest,
		out:     out,
		log:     log,
	}
	if cfg.Mode == ModeExtract {
		w.ext = NewExtractor(cfg.Directory)
	}
	return w
}

// Stats returns the counters gathered so far.
func (w *Walker) Stats() Stats {
	return w.stats
}

// Walk runs until the end of the archive or the first fatal error. Entries
// listed or extracted before a fatal error stay listed or extracted.
func (w *Walker) Walk() error {
	var blk Block
	for {
		err := w.src.ReadBlock(&blk)
		switch {
		case err == io.EOF:
			w.log.Debug().Int64("block", w.src.Position()).Msg("archive ends without zero blocks")
			return nil
		case errors.Is(err, ErrShortRead):
			return errors.Wrapf(ErrUnexpectedEOF, "header: %v", err)
		case err != nil:
			return err
		}

		if blk.IsZero() {
			return w.endOfArchive(&blk)
		}

		hdr, err := DecodeHeader(&blk)
		if err != nil {
			return errors.Wrapf(err, "block %d", w.src.Position()-1)
		}
		if err := w.entry(hdr); err != nil {
			return err
		}
	}
}

// endOfArchive checks that the zero block just read is followed by another.
// Running out of data there only earns a warning; a read failure is fatal.
func (w *Walker) endOfArchive(blk *Block) error {
	err := w.src.ReadBlock(blk)
	switch {
	case err == nil && blk.IsZero():
		w.log.Debug().Int64("block", w.src.Position()).Msg("end of archive")
		return nil
	case err != nil && err != io.EOF && !errors.Is(err, ErrShortRead):
		return err
	}
	w.log.Warn().Msgf("A lone zero block at %d", w.src.Position())
	return nil
}

func (w *Walker) entry(hdr *Header) (err error) {
	w.stats.Entries++
	w.log.Debug().
		Str("name", hdr.Name).
		Int64("size", hdr.Size).
		Int64("blocks", hdr.Blocks()).
		Int64("block", w.src.Position()-1).
		Msg("header")

	if !w.sel.Consume(hdr.Name) {
		return w.consume(hdr, nil)
	}
	w.stats.Selected++
	w.progress.setFile(hdr.Name)

	var dst []io.Writer
	if w.mode == ModeExtract {
		sink, oerr := w.ext.Open(hdr.Name)
		if oerr != nil {
			return oerr
		}
		defer func() {
			if cerr := sink.Close(); cerr != nil && err == nil {
				err = cerr
			}
			w.stats.Written += sink.Written()
		}()
		dst = append(dst, sink)
	}

	var h hash.Hash
	if w.digest != "" {
		h = newHasher(w.digest)
		dst = append(dst, h)
	} else if w.mode == ModeList || w.verbose {
		fmt.Fprintln(w.out, hdr.Name)
	}

	if err := w.consume(hdr, dst); err != nil {
		return err
	}

	if h != nil {
		fmt.Fprintln(w.out, formatDigest(h, hdr.Name))
	}
	return nil
}

// consume reads the content blocks of hdr, writing the data bytes of each
// block to dst and dropping the padding.
func (w *Walker) consume(hdr *Header, dst []io.Writer) error {
	var out io.Writer
	switch len(dst) {
	case 0:
	case 1:
		out = dst[0]
	default:
		out = io.MultiWriter(dst...)
	}

	var blk Block
	n := hdr.Blocks()
	for i := int64(0); i < n; i++ {
		if err := w.src.ReadBlock(&blk); err != nil {
			if err == io.EOF || errors.Is(err, ErrShortRead) {
				return errors.Wrapf(ErrUnexpectedEOF, "%s: content block %d of %d", hdr.Name, i+1, n)
			}
			return err
		}
		if out == nil {
			continue
		}
		if _, err := out.Write(blk[:hdr.BlockBytes(i)]); err != nil {
			return err
		}
	}
	return nil
}
