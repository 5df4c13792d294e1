// Package config loads loadorder settings.
//
// Settings come from three layers, later ones winning: the embedded
// defaults, a TOML file in the user's config directory and LOADORDER_*
// environment variables. Command-line overrides can be layered on top.
package config
