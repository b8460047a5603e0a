package mytar

import (
	"archive/tar"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type tarFileSpec struct {
	name string
	data []byte
}

// buildTar writes a well-formed ustar archive, terminated by two zero blocks.
// Members must be non-empty: the standard writer stores no content block for
// an empty member.
func buildTar(t testing.TB, files []tarFileSpec) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, f := range files {
		require.NotEmpty(t, f.data, "buildTar cannot encode empty member %s", f.name)
		hdr := &tar.Header{
			Name:     f.name,
			Mode:     0o644,
			Size:     int64(len(f.data)),
			Typeflag: tar.TypeReg,
			Format:   tar.FormatUSTAR,
		}
		require.NoError(t, tw.WriteHeader(hdr))
		_, err := tw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

// rawHeader lays out a header block by hand so tests can produce blocks the
// standard writer refuses to.
func rawHeader(name string, size int64, typeflag byte, mag string) Block {
	var b Block
	copy(b[nameOffset:nameOffset+nameLength], name)
	copy(b[100:], "0000644\x00")
	copy(b[sizeOffset:], fmt.Sprintf("%011o\x00", size))
	b[typeOffset] = typeflag
	copy(b[magicOffset:], mag+"\x0000")
	return b
}

// rawArchive assembles blocks and content into a byte stream.
type rawArchive struct {
	buf bytes.Buffer
}

func (a *rawArchive) header(name string, size int64) *rawArchive {
	b := rawHeader(name, size, typeRegular, magic)
	a.buf.Write(b[:])
	return a
}

func (a *rawArchive) block(b Block) *rawArchive {
	a.buf.Write(b[:])
	return a
}

// content writes data padded to whole blocks, always at least one block.
func (a *rawArchive) content(data []byte) *rawArchive {
	a.buf.Write(data)
	pad := int(BlockCount(int64(len(data))))*blockSize - len(data)
	a.buf.Write(bytes.Repeat([]byte{0xAA}, pad))
	return a
}

func (a *rawArchive) member(name string, data []byte) *rawArchive {
	return a.header(name, int64(len(data))).content(data)
}

func (a *rawArchive) zeros(n int) *rawArchive {
	a.buf.Write(make([]byte, n*blockSize))
	return a
}

func (a *rawArchive) raw(p []byte) *rawArchive {
	a.buf.Write(p)
	return a
}

func (a *rawArchive) bytes() []byte {
	return a.buf.Bytes()
}

func writeArchive(t testing.TB, dir string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, "test.tar")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func checkFile(t testing.TB, path string, expect []byte) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "read %v", path)
	require.Equal(t, expect, data, "content mismatch for %v", path)
}
