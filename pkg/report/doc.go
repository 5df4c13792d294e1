// Package report renders sort results and advisory messages.
//
// The same Report can be printed for people (styled terminal output,
// plain text, markdown) or for tools (JSON, YAML, TOML). FormatAuto picks
// styled output on a color terminal and plain text otherwise. Plain text
// is a content list that gamecfg.ReadContentList reads back.
package report
