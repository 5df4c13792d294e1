// Package plugin reads the header of TES3 content files (.esm/.esp/.omwaddon)
// to discover the masters a plugin declares, and locates plugin files
// across an ordered list of data directories.
//
// # Header layout
//
//	"TES3"  uint32 size  [8]byte reserved
//	  repeated subrecords until 16+size:
//	  [4]byte tag  uint32 length  [length]byte payload
//
// A MAST subrecord carries a NUL-terminated master filename and is always
// followed by a DATA subrecord holding the master's file size. Every other
// subrecord is skipped by its declared length.
//
// Reading never fails: unreadable, foreign, or truncated files produce the
// masters collected so far, which may be none.
package plugin
