package mytar

import (
	"io"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const stdinArchive = "-"

// Run lists or extracts the archive described by cfg and returns the process
// exit status. The archive and any output file are closed before it returns.
func Run(cfg Config, stdout, stderr io.Writer) int {
	log := newLogger(stderr, cfg.Options.IsSet(OptDebug))

	if err := cfg.Validate(); err != nil {
		log.Error().Msg(err.Error())
		return ExitFailure
	}
	log.Debug().
		Str("mode", cfg.Mode.String()).
		Str("archive", cfg.ArchivePath).
		Strs("options", cfg.Options.Names()).
		Strs("members", cfg.Members).
		Msg("starting")

	in, size, err := openArchive(cfg.ArchivePath)
	if err != nil {
		log.Error().Msgf("%s: Cannot open: %v", cfg.ArchivePath, pathCause(err))
		log.Error().Msg("Error is not recoverable: exiting now")
		return ExitFailure
	}
	defer in.Close()

	var r io.Reader = in
	var p *progressData
	if cfg.Options.IsSet(OptProgress) {
		if p = newProgress(stderr, size); p != nil {
			r = progressReader{r: in, p: p}
		}
	}

	sel := NewSelection(cfg.Members)
	w := NewWalker(NewBlockReader(r), sel, cfg, stdout, log)
	w.progress = p

	err = w.Walk()
	p.finish()

	stats := w.Stats()
	log.Debug().
		Int64("entries", stats.Entries).
		Int64("selected", stats.Selected).
		Str("written", humanize.Bytes(uint64(stats.Written))).
		Msg("walk finished")

	if err == nil {
		err = sel.Err()
	}
	if err != nil {
		report(log, err)
		return ExitFailure
	}
	return ExitOK
}

// openArchive opens path for reading and returns its size when known.
func openArchive(path string) (io.ReadCloser, int64, error) {
	if path == stdinArchive {
		return io.NopCloser(os.Stdin), 0, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	var size int64
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() {
		size = info.Size()
	}
	return f, size, nil
}

// report prints the diagnostics for the error that ended the run.
func report(log zerolog.Logger, err error) {
	log.Debug().Msgf("%+v", err)

	var typeErr *UnsupportedTypeError
	var extErr *ExtractError
	var notFound *NotFoundError
	switch {
	case errors.Is(err, ErrUnexpectedEOF):
		log.Error().Msg("Unexpected EOF in archive")
		log.Error().Msg("Error is not recoverable: exiting now")
		return
	case errors.Is(err, ErrNotATar):
		log.Error().Msg("This does not look like a tar archive")
	case errors.As(err, &typeErr):
		log.Error().Msgf("Unsupported header type: %d", typeErr.Typeflag)
	case errors.As(err, &extErr):
		log.Error().Msgf("%s: Cannot %s: %v", extErr.Name, extErr.Op, pathCause(extErr.Err))
	case errors.As(err, &notFound):
		for _, name := range notFound.Names {
			log.Error().Msgf("%s: Not found in archive", name)
		}
	default:
		log.Error().Msg(err.Error())
	}
	log.Error().Msg("Exiting with failure status due to previous errors")
}

// pathCause strips the operation and path from a *fs.PathError.
func pathCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
