package wad

import (
	"encoding/binary"
)

// testDirOffset leaves a gap after the header, since the info table must start past byte 12
const testDirOffset = 16

// buildWAD returns an IWAD whose directory holds lumps in order
func buildWAD(lumps ...Lump) []byte {
	names := make([]String8, len(lumps))
	for i, l := range lumps {
		copy(names[i][:], l.Name)
	}
	return buildRawWAD(lumps, names)
}

// buildRawWAD is buildWAD with the name fields given byte for byte
func buildRawWAD(lumps []Lump, names []String8) []byte {
	buf := make([]byte, 0, testDirOffset+len(lumps)*dirRecordSize)
	buf = append(buf, Magic...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(lumps)))
	buf = binary.LittleEndian.AppendUint32(buf, testDirOffset)
	buf = append(buf, 0, 0, 0, 0)
	for i, l := range lumps {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(l.Filepos))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(l.Size))
		buf = append(buf, names[i][:]...)
	}
	return buf
}

// namedLumps returns one lump per name with distinct offsets and sizes
func namedLumps(names ...string) []Lump {
	lumps := make([]Lump, len(names))
	for i, n := range names {
		lumps[i] = Lump{Name: n, Filepos: int32(100 + i*10), Size: int32(i)}
	}
	return lumps
}

func lumpNames(lumps []Lump) []string {
	names := make([]string, len(lumps))
	for i, l := range lumps {
		names[i] = l.Name
	}
	return names
}
