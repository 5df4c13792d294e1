// Package gamecfg reads content lists from the game's configuration.
//
// Two inputs are understood: OpenMW's openmw.cfg, where `data=` lines
// name data directories and `content=` lines the active plugins (a
// commented `#content=` line is a disabled plugin), and a plain list with
// one plugin per line. Nothing here writes configuration back.
package gamecfg
