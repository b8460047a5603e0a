package mytar

import (
	"bytes"

	"github.com/pkg/errors"
)

// Header is the decoded form of one ustar header block.
type Header struct {
	Name     string
	Size     int64
	Typeflag byte
	Magic    string
}

// Field accessors over the raw block. Widths are the declared field widths;
// nothing past them is ever read.

func (b *Block) name() []byte { return b[nameOffset : nameOffset+nameLength] }
func (b *Block) size() []byte { return b[sizeOffset : sizeOffset+sizeLength] }
func (b *Block) typeflag() byte { return b[typeOffset] }
func (b *Block) magic() []byte { return b[magicOffset : magicOffset+magicLength] }

// DecodeHeader decodes b. The magic is checked before the type flag, so a
// block that is not a header at all reports ErrNotATar.
func DecodeHeader(b *Block) (*Header, error) {
	hdr := &Header{
		Name:     cString(b.name()),
		Size:     parseOctal(b.size()),
		Typeflag: b.typeflag(),
		Magic:    string(b.magic()),
	}
	if hdr.Magic != magic {
		return nil, errors.Wrapf(ErrNotATar, "magic %q", hdr.Magic)
	}
	if hdr.Typeflag != typeRegular {
		return nil, &UnsupportedTypeError{Name: hdr.Name, Typeflag: hdr.Typeflag}
	}
	return hdr, nil
}

// cString returns the bytes of b up to the first NUL, or all of b.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// parseOctal parses the longest run of octal digits after any leading spaces.
// Whatever follows (NUL or space padding, garbage) is ignored, and a field
// with no digits is 0.
func parseOctal(b []byte) int64 {
	i := 0
	for i < len(b) && b[i] == ' ' {
		i++
	}
	var x int64
	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '7' {
			break
		}
		x = x<<3 | int64(c-'0')
	}
	return x
}

// BlockCount returns the number of content blocks following a header for a
// member of the given size. An empty member still occupies one block.
func BlockCount(size int64) int64 {
	if size <= 0 {
		return 1
	}
	return 1 + (size-1)/blockSize
}

// Blocks returns the number of content blocks of the entry.
func (h *Header) Blocks() int64 {
	return BlockCount(h.Size)
}

// BlockBytes returns how many bytes of content block i are member data; the
// rest of the block is padding.
func (h *Header) BlockBytes(i int64) int {
	if i < h.Blocks()-1 {
		return blockSize
	}
	return h.LastBlockBytes()
}

// LastBlockBytes returns the number of data bytes in the final content block.
func (h *Header) LastBlockBytes() int {
	if h.Size <= 0 {
		return 0
	}
	if r := h.Size % blockSize; r != 0 {
		return int(r)
	}
	return blockSize
}
