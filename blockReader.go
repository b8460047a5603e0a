package mytar

import (
	"io"

	"github.com/pkg/errors"
)

// Block is one 512-byte unit of archive storage.
type Block [blockSize]byte

var zeroBlock Block

// IsZero reports whether b is a sentinel block.
func (b *Block) IsZero() bool {
	return *b == zeroBlock
}

// BlockReader reads an archive one block at a time. It never buffers more
// than the block handed to ReadBlock and never seeks.
type BlockReader struct {
	r      io.Reader
	blocks int64
}

func NewBlockReader(r io.Reader) *BlockReader {
	return &BlockReader{r: r}
}

// ReadBlock fills b with the next block. It returns io.EOF only when the
// stream ends exactly on a block boundary and ErrShortRead when it ends
// inside a block.
func (br *BlockReader) ReadBlock(b *Block) error {
	n, err := io.ReadFull(br.r, b[:])
	switch {
	case err == nil:
		br.blocks++
		return nil
	case err == io.EOF:
		return io.EOF
	case err == io.ErrUnexpectedEOF:
		return errors.Wrapf(ErrShortRead, "block %d: got %d of %d bytes", br.blocks, n, blockSize)
	default:
		return errors.Wrapf(err, "read block %d", br.blocks)
	}
}

// Position returns the number of whole blocks consumed.
func (br *BlockReader) Position() int64 {
	return br.blocks
}

// Offset returns the byte offset of the next block.
func (br *BlockReader) Offset() int64 {
	return br.blocks * blockSize
}
