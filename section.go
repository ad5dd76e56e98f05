package wad

// Section is a range of the directory delimited by a pair of marker lumps
type Section struct {
	Start string
	End   string
}

// Well-known marker pairs
var (
	FloorSection  = Section{Start: "F_START", End: "F_END"}
	SpriteSection = Section{Start: "S_START", End: "S_END"}
	PatchSection  = Section{Start: "P_START", End: "P_END"}
)

// filterSection collects the lumps that sit between sec.Start and sec.End. The markers toggle
// the inside state and are not collected. A section left open at the end of the directory
// is accepted as is.
func filterSection(entries directory, sec Section) ([]Lump, error) {
	lumps := []Lump{}
	inside := false
	for i, e := range entries {
		lump, err := e.lump(i)
		if err != nil {
			return nil, err
		}
		switch {
		case lump.Name == sec.Start:
			inside = true
		case lump.Name == sec.End:
			inside = false
		case inside:
			lumps = append(lumps, lump)
		}
	}
	return lumps, nil
}
