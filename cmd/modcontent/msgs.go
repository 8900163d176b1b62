package modcontent

import (
	_ "embed"
	"strings"
)

const (
	// Command descriptions
	MsgRootShort       = "Classify mod folders by the kind of content they hold"
	MsgScanShort       = "List the content categories of mod folders"
	MsgSortShort       = "Order mod folders by their content"
	MsgCategoriesShort = "List the content categories"
	MsgRulesShort      = "Show how file names resolve to categories"
	MsgModsShort       = "List the mods of a staging folder by content"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgPending        = "%s does not exist yet, try again once it is installed"
	MsgScanFailed     = "%s: %v"
	MsgScanSummaryErr = "%d of %d folders could not be scanned"
	MsgNoMatch        = "-"
	MsgUnknownFilter  = "unknown filter %q, expected one of: %s"
	MsgVersionFormat  = "modcontent version %s\n  commit: %s\n  built:  %s\n"

	// Headings
	MsgCategoriesTitle = "Content categories, highest priority first"
	MsgModsTitle       = "Mods in %s"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/modcontent/config.toml)"
	MsgFlagConcurrency = "How many folders are walked at the same time"
	MsgFlagGame        = "Game id the mods belong to (skyrimse, stardewvalley, ...)"
	MsgFlagFormat      = "Output format: auto, term, text, json or yaml"
	MsgFlagFilter      = "Only list mods holding this content (Texture, Plugin, ..., <No Content>)"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/scan-long.txt
	msgScanLongRaw string
	MsgScanLong    = strings.TrimSpace(msgScanLongRaw)

	//go:embed msgs/scan-example.txt
	msgScanExampleRaw string
	MsgScanExample    = strings.TrimRight(msgScanExampleRaw, "\n")

	//go:embed msgs/sort-long.txt
	msgSortLongRaw string
	MsgSortLong    = strings.TrimSpace(msgSortLongRaw)

	//go:embed msgs/mods-long.txt
	msgModsLongRaw string
	MsgModsLong    = strings.TrimSpace(msgModsLongRaw)

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
