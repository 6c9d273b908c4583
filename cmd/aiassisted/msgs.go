package aiassisted

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Install and update AI engineering guidelines in your project"
	MsgInstallShort     = "Install .aiassisted into a project"
	MsgUpdateShort      = "Update an existing .aiassisted installation"
	MsgCheckShort       = "Check whether an update is available"
	MsgVerifyShort      = "Verify installed files against their checksums"
	MsgConfigShort      = "Inspect and reset configuration"
	MsgConfigShowShort  = "Print the effective configuration as TOML"
	MsgConfigGetShort   = "Print one configuration value"
	MsgConfigPathShort  = "Print the user configuration file location"
	MsgConfigResetShort = "Overwrite the user configuration file with the defaults"
	MsgRuntimeShort     = "List, inspect and select runtimes"
	MsgRuntimeListShort = "List available runtimes, marking the selected one"
	MsgRuntimeInfoShort = "Show the selected runtime"
	MsgRuntimeSetShort  = "Make NAME the default runtime in the user configuration"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"

	// Install
	MsgInstalling        = "Installing .aiassisted to %s"
	MsgInstalled         = "Installed .aiassisted (version: %s, %d files)"
	MsgAlreadyUpToDate   = ".aiassisted is already up-to-date (version: %s)"
	MsgInstalledOutdated = ".aiassisted already exists but is outdated"
	MsgSuggestUpdate     = "Run 'aiassisted update' to update to the latest version"
	MsgNoLocalVersion    = ".aiassisted exists but no version information was found"
	MsgSuggestForce      = "Run 'aiassisted update --force' to overwrite with the latest version"
	MsgNoRemoteVersion   = "The remote version marker has no identity, the installed version cannot be compared"

	// Update
	MsgCheckingUpdates = "Checking for updates in %s"
	MsgUpdateAvailable = "Update available"
	MsgUpdateCancelled = "Update cancelled. No changes were made."
	MsgUpdated         = "Updated to version %s (%d updated, %d unchanged)"
	MsgNothingChanged  = "Version marker refreshed to %s, no files changed"
	MsgLocalOnlyKept   = "Kept files that are no longer in the remote manifest:"
	MsgSuggestInstall  = "Run 'aiassisted install' first"

	// Check
	MsgUpToDate         = "You are up-to-date!"
	MsgAnUpdateIsReady  = "An update is available"
	MsgPendingNew       = "New files:"
	MsgPendingModified  = "Modified files:"
	MsgPendingUnknown   = "Could not list pending file changes: %v"
	MsgPendingLocalOnly = "Files not in the remote manifest (kept on update):"

	// Verify
	MsgVerified        = "All %d files match their checksums"
	MsgVerifyMismatch  = "Modified files:"
	MsgVerifyMissing   = "Missing files:"
	MsgVerifyFailed    = "%d of %d files failed verification"
	MsgVerifyRepairTip = "Remove .aiassisted and run 'aiassisted install' to restore them"

	// Config
	MsgConfigReset = "Wrote default configuration to %s"

	// Runtime
	MsgRuntimeSet           = "Default runtime set to %s in %s"
	MsgRuntimeNotExecutable = "(not executable by this binary)"

	// Field labels
	MsgLabelCurrent    = "Current version"
	MsgLabelLatest     = "Latest version"
	MsgLabelRuntime    = "Runtime"
	MsgLabelDefault    = "Default"
	MsgLabelAvailable  = "Available"
	MsgLabelExecutable = "Executable"

	MsgYes = "yes"
	MsgNo  = "no"

	// Version
	MsgVersionFormat = "aiassisted version %s (go runtime)\n  commit: %s\n  built:  %s\n"

	// Errors
	MsgErrNotInstalled   = ".aiassisted not found in %s"
	MsgErrNoCommand      = "no command specified"
	MsgErrRuntime        = "runtime %q is not available (available: %s)"
	MsgErrRuntimeExec    = "runtime %q cannot be executed by this binary"
	MsgErrConfigFallback = "Configuration could not be loaded, using defaults"
	MsgErrCancelled      = "Cancelled by user"

	// Flag descriptions
	MsgFlagPath    = "Target directory that holds .aiassisted"
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet   = "Only print errors"
	MsgFlagRuntime = "Runtime to execute with (default from runtime.default)"
	MsgFlagBaseURL = "Override the remote source URL (source.url)"
	MsgFlagConfig  = "Configuration file (default $XDG_CONFIG_HOME/aiassisted/config.toml)"
	MsgFlagFormat  = "Output format: auto, term or text"
	MsgFlagForce   = "Skip the diff preview and confirmation"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/install-tips.txt
	msgInstallTipsRaw string
	MsgInstallTips    = strings.TrimSpace(msgInstallTipsRaw)

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/update-example.txt
	msgUpdateExampleRaw string
	MsgUpdateExample    = strings.TrimRight(msgUpdateExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/verify-long.txt
	msgVerifyLongRaw string
	MsgVerifyLong    = strings.TrimSpace(msgVerifyLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/runtime-long.txt
	msgRuntimeLongRaw string
	MsgRuntimeLong    = strings.TrimSpace(msgRuntimeLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
