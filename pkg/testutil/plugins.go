package testutil

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// PluginBuilder assembles the TES3 header record of a synthetic plugin.
type PluginBuilder struct {
	magic string
	body  bytes.Buffer
	// sizeDelta lets tests lie about the record size to simulate truncation
	sizeDelta int
}

// NewPlugin starts a TES3 plugin header
func NewPlugin() *PluginBuilder {
	return &PluginBuilder{magic: "TES3"}
}

// WithMagic overrides the 4-byte record tag
func (b *PluginBuilder) WithMagic(magic string) *PluginBuilder {
	b.magic = magic
	return b
}

// WithSizeDelta adds delta to the declared record size
func (b *PluginBuilder) WithSizeDelta(delta int) *PluginBuilder {
	b.sizeDelta = delta
	return b
}

// Subrecord appends a raw subrecord
func (b *PluginBuilder) Subrecord(tag string, payload []byte) *PluginBuilder {
	b.body.WriteString(tag)
	_ = binary.Write(&b.body, binary.LittleEndian, uint32(len(payload)))
	b.body.Write(payload)
	return b
}

// Master appends a MAST subrecord and its DATA size subrecord
func (b *PluginBuilder) Master(name string, size uint64) *PluginBuilder {
	b.Subrecord("MAST", append([]byte(name), 0))
	sizeBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(sizeBytes, size)
	return b.Subrecord("DATA", sizeBytes)
}

// Bytes returns the encoded header
func (b *PluginBuilder) Bytes() []byte {
	var out bytes.Buffer
	out.WriteString(b.magic)
	_ = binary.Write(&out, binary.LittleEndian, uint32(b.body.Len()+b.sizeDelta))
	out.Write(make([]byte, 8))
	out.Write(b.body.Bytes())
	return out.Bytes()
}

// PluginBytes builds a plugin header with a HEDR record and the given masters
func PluginBytes(masters ...string) []byte {
	b := NewPlugin().Subrecord("HEDR", make([]byte, 300))
	for _, m := range masters {
		b.Master(m, 1024)
	}
	return b.Bytes()
}

// WritePlugin writes a synthetic plugin declaring masters to dir/name
func WritePlugin(t testing.TB, fsys afero.Fs, dir, name string, masters ...string) string {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, afero.WriteFile(fsys, path, PluginBytes(masters...), 0644))
	return path
}

// WriteFile writes arbitrary content to path, creating parent directories
func WriteFile(t testing.TB, fsys afero.Fs, path string, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}
