// Package wad provides access to the directory of Doom's data archives also known as WAD files.
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html

package wad

import (
	"go.uber.org/zap"
)

// Reader holds the raw bytes of a WAD file. The buffer is never modified after load, so
// a Reader may be parsed any number of times.
type Reader struct {
	data []byte
}

// Lump is a single named directory entry
type Lump struct {
	Name    string `json:"name"`
	Filepos int32  `json:"filepos"`
	Size    int32  `json:"size"`
}

// Special lump names
const (
	ThingsLumpName = "THINGS"
)

// /////////////////////////////////////
// Open reads the WAD file into memory. It returns a Reader that
// can be used to parse the directory.
// /////////////////////////////////////
func Open(filename string) (*Reader, error) {
	data, err := loadFile(filename)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded WAD", zap.String("path", filename), zap.Int("bytes", len(data)))
	return &Reader{data: data}, nil
}

// New returns a Reader over a copy of data.
func New(data []byte) *Reader {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Reader{data: buf}
}

// Size returns the length of the file in bytes
func (r *Reader) Size() int {
	return len(r.data)
}

// Parse returns the lumps between F_START and F_END, in directory order.
func (r *Reader) Parse() ([]Lump, error) {
	return r.ParseSection(FloorSection)
}

// ParseSection returns the lumps inside every start/end pair of sec, in directory order.
// The marker lumps themselves are never returned.
func (r *Reader) ParseSection(sec Section) ([]Lump, error) {
	entries, err := r.entries()
	if err != nil {
		return nil, err
	}
	lumps, err := filterSection(entries, sec)
	if err != nil {
		return nil, err
	}
	logger.Debug("collected section",
		zap.String("start", sec.Start),
		zap.String("end", sec.End),
		zap.Int("lumps", len(lumps)))
	return lumps, nil
}

// Directory returns every lump in the directory
func (r *Reader) Directory() ([]Lump, error) {
	entries, err := r.entries()
	if err != nil {
		return nil, err
	}
	lumps := []Lump{}
	for i, e := range entries {
		lump, err := e.lump(i)
		if err != nil {
			return nil, err
		}
		lumps = append(lumps, lump)
	}
	return lumps, nil
}

// LevelNames returns the map marker names. A map marker is the lump directly before THINGS.
func (r *Reader) LevelNames() ([]string, error) {
	lumps, err := r.Directory()
	if err != nil {
		return nil, err
	}
	names := []string{}
	for i := 1; i < len(lumps); i++ {
		if lumps[i].Name == ThingsLumpName {
			names = append(names, lumps[i-1].Name)
		}
	}
	return names, nil
}

// entries validates the header and returns the directory scan
func (r *Reader) entries() (directory, error) {
	header, err := r.Header()
	if err != nil {
		return nil, err
	}
	logger.Debug("read header",
		zap.Int32("lumps", header.NumLumps),
		zap.Int32("infoTableOfs", header.InfoTableOfs))
	return scanDirectory(r.data, header)
}
