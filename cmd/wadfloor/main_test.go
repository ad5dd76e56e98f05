package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wad "github.com/stuarthighley/wadfloor"
)

// writeWAD writes an IWAD whose directory holds names, in order, and returns its path.
func writeWAD(t *testing.T, names ...string) string {
	t.Helper()
	buf := []byte("IWAD")
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(names)))
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = append(buf, 0, 0, 0, 0)
	for i, name := range names {
		var field [8]byte
		copy(field[:], name)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(1000+i))
		buf = binary.LittleEndian.AppendUint32(buf, 4096)
		buf = append(buf, field[:]...)
	}
	path := filepath.Join(t.TempDir(), "test.wad")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Table(t *testing.T) {
	path := writeWAD(t, "PLAYPAL", "F_START", "FLOOR0_1", "F_END")
	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "FLOOR0_1")
	assert.NotContains(t, out, "PLAYPAL")
	assert.NotContains(t, out, "F_START")
}

func TestRun_JSON(t *testing.T) {
	path := writeWAD(t, "F_START", "FLOOR0_1", "FLOOR0_3", "F_END")
	out, err := execute(t, "--json", path)
	require.NoError(t, err)

	var lumps []wad.Lump
	require.NoError(t, json.Unmarshal([]byte(out), &lumps))
	assert.Equal(t, []wad.Lump{
		{Name: "FLOOR0_1", Filepos: 1001, Size: 4096},
		{Name: "FLOOR0_3", Filepos: 1002, Size: 4096},
	}, lumps)
}

func TestRun_All(t *testing.T) {
	path := writeWAD(t, "PLAYPAL", "F_START", "FLOOR0_1", "F_END")
	out, err := execute(t, "--all", "--json", path)
	require.NoError(t, err)

	var lumps []wad.Lump
	require.NoError(t, json.Unmarshal([]byte(out), &lumps))
	assert.Len(t, lumps, 4)
}

func TestRun_Levels(t *testing.T) {
	path := writeWAD(t, "E1M1", "THINGS", "LINEDEFS")
	out, err := execute(t, "--levels", path)
	require.NoError(t, err)
	assert.Equal(t, "E1M1\n", out)
}

func TestRun_SectionFromEnv(t *testing.T) {
	t.Setenv("WADFLOOR_SECTION_START", "S_START")
	t.Setenv("WADFLOOR_SECTION_END", "S_END")
	path := writeWAD(t, "S_START", "TROOA1", "S_END", "F_START", "FLOOR0_1", "F_END")
	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "TROOA1")
	assert.NotContains(t, out, "FLOOR0_1")
}

func TestRun_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wad")
	require.NoError(t, os.WriteFile(path, []byte("PWAD\x01\x00\x00\x00\x10\x00\x00\x00"), 0o644))
	_, err := execute(t, path)
	assert.ErrorIs(t, err, wad.ErrInvalidFile)
	assert.EqualError(t, err, "invalid WAD file: wrong magic")
}

func TestRun_MissingArg(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)
}
