package termsys

// Short messages (one-liners)
const (
	MsgRootShort = "An in-memory virtual file system shell"
	MsgRootLong  = `termsys simulates a Unix-like file system entirely in memory and drives
it with a small line-oriented shell: navigate with cd, inspect with ls,
pwd, cat and tree, and build the hierarchy with mkdir, touch, write, cp
and mv. Nothing touches real storage; the tree vanishes when the process
exits.

With no argument termsys starts an interactive session. With a script
file argument (or piped stdin) it executes the commands and exits.`

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable styled prompt and output"
	MsgFlagConfig  = "Path to a config file (default: $XDG_CONFIG_HOME/termsys/termsys.toml)"
)
