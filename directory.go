package wad

import (
	"encoding/binary"
	"iter"

	"golang.org/x/exp/constraints"
)

// Directory record offsets
const (
	dirOffsetFilepos = 0
	dirOffsetSize    = 4
	dirOffsetName    = 8
)

// dirEntry is one 16 byte record of the info table
type dirEntry struct {
	Filepos int32
	Size    int32
	Name    String8
}

// directory yields records in file order with their directory index
type directory = iter.Seq2[int, dirEntry]

// scanDirectory checks that the whole info table lies inside data and returns a lazy scan over it.
func scanDirectory(data []byte, h Header) (directory, error) {
	if !withinBounds(h.InfoTableOfs, h.NumLumps, dirRecordSize, len(data)) {
		return nil, invalidFile(ReasonDirOutOfBounds)
	}
	start := int(h.InfoTableOfs)
	count := int(h.NumLumps)
	return func(yield func(int, dirEntry) bool) {
		for i := 0; i < count; i++ {
			rec := data[start+i*dirRecordSize : start+(i+1)*dirRecordSize]
			var e dirEntry
			e.Filepos = int32(binary.LittleEndian.Uint32(rec[dirOffsetFilepos:]))
			e.Size = int32(binary.LittleEndian.Uint32(rec[dirOffsetSize:]))
			copy(e.Name[:], rec[dirOffsetName:])
			if !yield(i, e) {
				return
			}
		}
	}, nil
}

// lump decodes the entry name and converts it to a Lump
func (e dirEntry) lump(index int) (Lump, error) {
	name, err := e.Name.decode(index)
	if err != nil {
		return Lump{}, err
	}
	return Lump{Name: name, Filepos: e.Filepos, Size: e.Size}, nil
}

// withinBounds reports whether n records of size bytes starting at off fit in limit bytes.
// The end offset is computed in 64 bits so hostile counts cannot wrap.
func withinBounds[T constraints.Signed](off, n, size T, limit int) bool {
	if off < 0 || n < 0 {
		return false
	}
	end := int64(off) + int64(n)*int64(size)
	return end <= int64(limit)
}
