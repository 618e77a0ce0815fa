package devup

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A one-shot developer environment bootstrapper"
	MsgRootLong        = "devup bootstraps a developer machine in one pass: it installs missing\npackages, configures git, installs editor extensions and optionally\nclones your repositories. Items already present are skipped, and a\nfailing item never stops the rest of the run."
	MsgProvisionShort  = "Run the full provisioning pass"
	MsgProvisionLong   = "Provision installs missing packages, configures git and installs\neditor extensions, in that order. Repository cloning is opt-in via\n--clone. Already-present items are skipped."
	MsgPackagesShort   = "Install the missing packages from the catalog"
	MsgGitconfigShort  = "Apply git identity and aliases"
	MsgGitconfigLong   = "Gitconfig sets user.name and user.email globally when both are\nconfigured, and always applies the alias table when git is present."
	MsgExtensionsShort = "Install editor extensions into every present editor"
	MsgCloneShort      = "Clone the repositories listed in a file"
	MsgCloneLong       = "Clone reads a newline-delimited list of repositories and clones each\ninto the target directory. A missing list file is not an error; blank\nlines are ignored; one failed clone never blocks the rest."
	MsgStatusShort     = "Show which catalog items are already present"
	MsgTopicsShort     = "Display available documentation topics"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice  = "\nDRY RUN MODE - No changes were made"
	MsgNothingToDo   = "Nothing to do."
	MsgCloneDisabled = "Repository cloning is opt-in: pass --clone to enable it."

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrLoadCatalog = "failed to load catalog: %w"
	MsgErrProvision   = "provisioning failed: %w"
	MsgErrClone       = "clone failed: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview commands without executing them"
	MsgFlagStrict  = "Exit non-zero when any item failed"
	MsgFlagConfig  = "Config file (default is ~/.config/devup/devup.toml)"
	MsgFlagManager = "Package manager to use (default: auto-detect)"
	MsgFlagClone   = "Also clone the repositories listed in the repos file"
	MsgFlagDest    = "Directory to clone repositories into"

	// Examples
	MsgProvisionExample = `  # Full run with auto-detected package manager
  devup provision

  # Preview what would happen
  devup provision --dry-run

  # Full run including repository clones
  devup provision --clone`
	MsgCloneExample = `  # Clone everything listed in ./repos.txt into ~/src
  devup clone

  # Custom list file and destination
  devup clone work-repos.txt --dest ~/work`
)
