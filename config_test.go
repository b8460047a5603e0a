package mytar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigUsesTape(t *testing.T) {
	t.Setenv(TapeEnv, "/dev/nst0")
	cfg := DefaultConfig()
	assert.Equal(t, "/dev/nst0", cfg.ArchivePath)
	assert.Equal(t, ".", cfg.Directory)
	assert.Equal(t, ModeNone, cfg.Mode)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"list", Config{Mode: ModeList, ArchivePath: "a.tar"}, ""},
		{"extract", Config{Mode: ModeExtract, ArchivePath: "-"}, ""},
		{"no mode", Config{ArchivePath: "a.tar"}, "You must specify one of the '-tx' options"},
		{"no archive", Config{Mode: ModeList}, "No archive file specified"},
		{"bad digest", Config{Mode: ModeList, ArchivePath: "a.tar", Digest: "md5"}, "unknown digest"},
		{"digest", Config{Mode: ModeList, ArchivePath: "a.tar", Digest: sumBlake3}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestVerboseOnlyForExtract(t *testing.T) {
	cfg := Config{Mode: ModeList}
	cfg.Options.Set(OptVerbose)
	assert.False(t, cfg.verbose())
	cfg.Mode = ModeExtract
	assert.True(t, cfg.verbose())
}

func TestOptionNames(t *testing.T) {
	var f BitFlags
	assert.Empty(t, f.Names())
	f.Set(OptVerbose | OptDebug)
	assert.Equal(t, []string{"Verbose", "Debug"}, f.Names())
	f.Clear(OptVerbose)
	assert.True(t, f.IsNotSet(OptVerbose))
	assert.True(t, f.IsSet(OptDebug))
}

func TestLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Warn().Msg("A lone zero block at 3")
	log.Debug().Msg("hidden")
	assert.Equal(t, "mytar: A lone zero block at 3\n", buf.String())

	buf.Reset()
	log = newLogger(&buf, true)
	log.Debug().Int64("block", 7).Msg("header")
	assert.Contains(t, buf.String(), "mytar: header")
	assert.Contains(t, buf.String(), "block=7")
}
