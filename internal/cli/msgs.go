package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Sort Morrowind and OpenMW plugins with mlox rules"
	MsgSortShort       = "Sort the load order and print it"
	MsgMessagesShort   = "Show rule messages for plugins"
	MsgMastersShort    = "List the masters declared by plugin files"
	MsgMatchShort      = "Test a rule pattern against plugin names"
	MsgRulesShort      = "Summarize the loaded rule files"
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigInitShort = "Print or write a commented default config file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/loadorder/config.toml)"
	MsgFlagOpenMWCfg  = "openmw.cfg to read content and data paths from"
	MsgFlagList       = "Plain content list to read instead of openmw.cfg"
	MsgFlagData       = "Extra data directory to search for plugin files (repeatable)"
	MsgFlagRules      = "Rule file to load instead of the configured ones (repeatable)"
	MsgFlagFormat     = "Output format: auto, term, text, json, yaml, toml, markdown"
	MsgFlagMaxPasses  = "Maximum constraint passes before giving up"
	MsgFlagNoHeaders  = "Do not read masters from plugin headers"
	MsgFlagWrite      = "Write the config file instead of printing it"
	MsgFlagShowSource = "Print only the path of the loaded config file"

	// Status messages
	MsgRulesMissing   = "No rule file could be read; the order is left unchanged."
	MsgConfigWritten  = "Wrote default configuration to %s\n"
	MsgNoConfigFile   = "(no config file loaded)"
	MsgNotAPlugin     = "(not a TES3 plugin)"
	MsgNoMasters      = "(none)"
	MsgVersionFormat  = "loadorder version %s\n"
	MsgCommitFormat   = "Commit: %s\n"
	MsgBuiltFormat    = "Built:  %s\n"
	MsgRuleFileFormat = "  %s %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrConfigExist = "config file %s already exists"
	MsgErrUnreadable  = "%d of %d plugin files could not be read"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sort-long.txt
	msgSortLongRaw string
	MsgSortLong    = strings.TrimSpace(msgSortLongRaw)

	//go:embed msgs/sort-example.txt
	msgSortExampleRaw string
	MsgSortExample    = strings.TrimRight(msgSortExampleRaw, "\n")

	//go:embed msgs/messages-long.txt
	msgMessagesLongRaw string
	MsgMessagesLong    = strings.TrimSpace(msgMessagesLongRaw)

	//go:embed msgs/masters-long.txt
	msgMastersLongRaw string
	MsgMastersLong    = strings.TrimSpace(msgMastersLongRaw)

	//go:embed msgs/match-long.txt
	msgMatchLongRaw string
	MsgMatchLong    = strings.TrimSpace(msgMatchLongRaw)

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
