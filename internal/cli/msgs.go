package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep directories out of the Spotlight index"
	MsgExcludeShort    = "Exclude matching directories from Spotlight"
	MsgIncludeShort    = "Drop the exclusions a rule matches"
	MsgAddShort        = "Register a rule and apply all rules"
	MsgRemoveShort     = "Unregister a rule and drop its exclusions"
	MsgListShort       = "List registered rules"
	MsgJobShort        = "Apply every registered rule"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgLegacyConfig = "Using legacy config file %s; move it to %s to silence this notice\n"
	MsgVersionLine  = "spotlight-manager version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrWorkingDir = "failed to get current directory: %w"
	MsgErrFormat     = "invalid --format: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Show what would change without writing anything"
	MsgFlagConfig    = "Config file holding the registered rules"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagForce     = "Apply the change without asking for confirmation"
	MsgFlagStrict    = "Fail when the rule is not registered"
	MsgFlagShowPaths = "Show the exclusions each rule matches"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/exclude-long.txt
	msgExcludeLongRaw string
	MsgExcludeLong    = strings.TrimSpace(msgExcludeLongRaw)

	//go:embed msgs/exclude-example.txt
	msgExcludeExampleRaw string
	MsgExcludeExample    = strings.TrimRight(msgExcludeExampleRaw, "\n")

	//go:embed msgs/include-long.txt
	msgIncludeLongRaw string
	MsgIncludeLong    = strings.TrimSpace(msgIncludeLongRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/job-long.txt
	msgJobLongRaw string
	MsgJobLong    = strings.TrimSpace(msgJobLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
