package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mytar"
)

type cliOptions struct {
	list, extract, verbose, progress, debug bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := mytar.DefaultConfig()
	var opts cliOptions
	status := mytar.ExitOK

	cmd := &cobra.Command{
		Use:           "mytar [options] [member...]",
		Short:         "List or extract members of a ustar archive",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, members []string) error {
			if opts.list && opts.extract {
				return fmt.Errorf("You may not specify more than one '-tx' option")
			}
			switch {
			case opts.list:
				cfg.Mode = mytar.ModeList
			case opts.extract:
				cfg.Mode = mytar.ModeExtract
			}
			if opts.verbose {
				cfg.Options.Set(mytar.OptVerbose)
			}
			if opts.progress {
				cfg.Options.Set(mytar.OptProgress)
			}
			if opts.debug {
				cfg.Options.Set(mytar.OptDebug)
			}
			cfg.Members = members
			status = mytar.Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	bindFlags(cmd.Flags(), &cfg, &opts)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "mytar: %v\n", err)
		fmt.Fprintf(stderr, "Try 'mytar --help' for more information.\n")
		return mytar.ExitFailure
	}
	return status
}

func bindFlags(fs *pflag.FlagSet, cfg *mytar.Config, opts *cliOptions) {
	fs.SortFlags = false
	fs.StringVarP(&cfg.ArchivePath, "file", "f", cfg.ArchivePath, "use archive file `ARCHIVE` (- for stdin, default $"+mytar.TapeEnv+")")
	fs.BoolVarP(&opts.list, "list", "t", false, "list archive contents")
	fs.BoolVarP(&opts.extract, "extract", "x", false, "extract archive contents")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "print extracted member names")
	fs.StringVarP(&cfg.Directory, "directory", "C", cfg.Directory, "extract into `DIR`")
	fs.StringVar(&cfg.Digest, "digest", "", "print a content digest next to each member (crc16, crc32, xxhash, sha256, blake3)")
	fs.BoolVar(&opts.progress, "progress", false, "show a progress line on a terminal")
	fs.BoolVar(&opts.debug, "debug", false, "log archive structure while reading")
}
