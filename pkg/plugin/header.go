package plugin

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// Magic is the record tag every TES3 plugin starts with
	Magic = "TES3"

	// TagMaster is the subrecord naming a master file
	TagMaster = "MAST"

	// TagMasterSize is the subrecord that follows every MAST
	TagMasterSize = "DATA"

	recordHeaderSize    = 16
	subrecordHeaderSize = 8
)

// Master is a dependency declared in a plugin header.
type Master struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	// Size is the master file size recorded by the editor, when present
	Size uint64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
}

// Header holds the parts of a TES3 header that load ordering cares about.
type Header struct {
	Masters []Master
}

// MasterNames returns the declared master filenames in file order.
func (h Header) MasterNames() []string {
	names := make([]string, 0, len(h.Masters))
	for _, m := range h.Masters {
		names = append(names, m.Name)
	}
	return names
}

// ReadMasters returns the master filenames declared by the plugin at path.
// It returns an empty slice for any file that is missing, unreadable or not
// a TES3 plugin.
func ReadMasters(fsys afero.Fs, path string, logger zerolog.Logger) []string {
	header, _ := ReadHeader(fsys, path, logger)
	return header.MasterNames()
}

// ReadHeader parses the TES3 header of the plugin at path. The boolean is
// false when the file could not be opened or lacks the TES3 magic; a
// truncated subrecord stream still reports true with partial masters.
func ReadHeader(fsys afero.Fs, path string, logger zerolog.Logger) (Header, bool) {
	f, err := fsys.Open(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Could not open plugin file")
		return Header{}, false
	}
	defer f.Close()

	return parseHeader(f, logger.With().Str("path", path).Logger())
}

func parseHeader(r io.Reader, logger zerolog.Logger) (Header, bool) {
	var head [recordHeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		logger.Debug().Err(err).Msg("Plugin too short for a TES3 header")
		return Header{}, false
	}
	if string(head[0:4]) != Magic {
		logger.Debug().Str("magic", string(head[0:4])).Msg("Not a TES3 plugin")
		return Header{}, false
	}

	size := binary.LittleEndian.Uint32(head[4:8])
	logger.Trace().Uint32("recordSize", size).Msg("Reading TES3 subrecords")

	// Only the TES3 record is read; a short file yields what is there.
	data, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		logger.Debug().Err(err).Msg("Failed reading TES3 record body")
	}

	return Header{Masters: scanSubrecords(data, logger)}, true
}

// scanSubrecords walks the TES3 record body collecting MAST entries.
func scanSubrecords(data []byte, logger zerolog.Logger) []Master {
	masters := []Master{}
	pos := 0

	for pos+subrecordHeaderSize <= len(data) {
		tag := string(data[pos : pos+4])
		length := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		pos += subrecordHeaderSize

		if length < 0 || pos+length > len(data) {
			logger.Debug().
				Str("tag", tag).
				Int("length", length).
				Int("offset", pos).
				Msg("Truncated subrecord, stopping scan")
			break
		}
		payload := data[pos : pos+length]
		pos += length

		if tag != TagMaster {
			continue
		}

		master := Master{Name: trimNul(payload)}

		// The DATA subrecord after MAST keeps the stream aligned.
		if pos+subrecordHeaderSize <= len(data) && string(data[pos:pos+4]) == TagMasterSize {
			dataLen := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
			if dataLen >= 0 && pos+subrecordHeaderSize+dataLen <= len(data) {
				if dataLen == 8 {
					master.Size = binary.LittleEndian.Uint64(data[pos+subrecordHeaderSize:])
				}
				pos += subrecordHeaderSize + dataLen
			} else {
				pos = len(data)
			}
		}

		logger.Trace().Str("master", master.Name).Uint64("size", master.Size).Msg("Found master dependency")
		masters = append(masters, master)
	}

	return masters
}

func trimNul(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
