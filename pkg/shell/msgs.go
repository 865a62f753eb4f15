package shell

// Human-readable messages, bash-flavored where a convention exists.
const (
	MsgNotFound        = "No such file or directory"
	MsgNotADirectory   = "Not a directory"
	MsgIsADirectory    = "Is a directory"
	MsgAlreadyExists   = "File exists"
	MsgRootForbidden   = "Operation not permitted"
	MsgDirectoryBusy   = "Directory in use"
	MsgInvalidInput    = "Invalid argument"
	MsgUnknownError    = "Unknown error"
	MsgCommandNotFound = "%s: command not found"
	MsgUsage           = "usage: %s"
)
