package mytar

import (
	"github.com/pkg/errors"
)

// Mode selects what the walker does with selected members.
type Mode int

const (
	ModeNone Mode = iota
	ModeList
	ModeExtract
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeExtract:
		return "extract"
	default:
		return "none"
	}
}

// Config is the resolved configuration for one invocation.
type Config struct {
	// ArchivePath is the archive to read; "-" reads standard input.
	ArchivePath string
	Mode        Mode
	Options     BitFlags
	// Directory receives extracted members.
	Directory string
	// Digest names a content hash printed next to each selected member.
	Digest string
	// Members restricts the operation to these names; empty means all.
	Members []string
}

// Validate reports configuration errors that must stop the run before the
// archive is opened.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeList, ModeExtract:
	case ModeNone:
		return errors.New("You must specify one of the '-tx' options")
	default:
		return errors.Errorf("unknown mode %d", c.Mode)
	}
	if c.ArchivePath == "" {
		return errors.New("No archive file specified")
	}
	if c.Digest != "" && !validDigest(c.Digest) {
		return errors.Errorf("unknown digest %q (want one of %v)", c.Digest, digestNames)
	}
	return nil
}

func (c Config) verbose() bool {
	// Verbose only affects extraction.
	return c.Mode == ModeExtract && c.Options.IsSet(OptVerbose)
}
