package mytar

import "os"

// TapeEnv names the environment variable supplying the default archive.
const TapeEnv = "TAPE"

// DefaultConfig returns the configuration used before any flag is applied.
func DefaultConfig() Config {
	return Config{
		ArchivePath: os.Getenv(TapeEnv),
		Mode:        ModeNone,
		Directory:   ".",
	}
}
