package wad

import (
	"encoding/binary"
)

// Magic is the only accepted header tag
const Magic = "IWAD"

const (
	headerSize    = 12
	dirRecordSize = 16
)

// Header offsets
const (
	headerOffsetMagic        = 0
	headerOffsetNumLumps     = 4
	headerOffsetInfoTableOfs = 8
)

// Header is the fixed 12 byte block at the start of a WAD
type Header struct {
	Magic        string
	NumLumps     int32
	InfoTableOfs int32
}

// Header decodes and validates the file header.
func (r *Reader) Header() (Header, error) {
	return readHeader(r.data)
}

func readHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, invalidFile(ReasonTooSmall)
	}
	magic := string(data[headerOffsetMagic:headerOffsetNumLumps])
	if magic != Magic {
		return Header{}, invalidFile(ReasonWrongMagic)
	}
	h := Header{
		Magic:        magic,
		NumLumps:     int32(binary.LittleEndian.Uint32(data[headerOffsetNumLumps:])),
		InfoTableOfs: int32(binary.LittleEndian.Uint32(data[headerOffsetInfoTableOfs:])),
	}
	if h.NumLumps <= 0 || h.InfoTableOfs <= headerSize {
		return Header{}, invalidFile(ReasonEmptyOrCorrupt)
	}
	return h, nil
}
