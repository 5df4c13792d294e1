// Package rules parses mlox-style load order rule files.
//
// Rule files are line oriented. A bracketed keyword opens a block, plain
// lines name plugins (literal or wildcard patterns, see package pattern),
// indented lines carry message text, `;` starts a comment, and a blank
// line ends the block:
//
//	; Morrowind must come first
//	[Order]
//	Morrowind.esm
//	Tribunal.esm
//	Bloodmoon.esm
//
//	[NearEnd]
//	Merged Objects.esp
//
//	[Note]
//	 Requires the Lighting Mod to be installed first.
//	Lighting Addon*.esp
//
// # Rule Kinds
//
//   - ORDER - each plugin loads after the one listed before it
//   - NEARSTART / NEAREND - placement hints toward the front or back
//   - NOTE / CONFLICT / REQUIRES / PATCH - advisory messages only
//   - ANY / ALL / NOT / VER / DESC / SIZE - expression keywords recognised
//     for compatibility and ignored by the sorter
//
// Several files are concatenated in the order given, so user rules placed
// after the base rules add to them. Parsing never fails on malformed input;
// unknown keywords and stray text are ignored.
package rules
