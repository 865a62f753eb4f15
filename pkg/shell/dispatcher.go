// Package shell turns input lines into operations on a vfs.Tree and back
// into printable output. The Dispatcher is the single translator from
// typed errors to human messages; the REPL owns reading, prompting and
// printing.
package shell

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/orcnighte/terminal-system/pkg/config"
	"github.com/orcnighte/terminal-system/pkg/errors"
	"github.com/orcnighte/terminal-system/pkg/logging"
	"github.com/orcnighte/terminal-system/pkg/style"
	"github.com/orcnighte/terminal-system/pkg/vfs"
)

// Result is the outcome of dispatching one input line.
type Result struct {
	Lines  []string
	Quit   bool
	Failed bool
}

// Dispatcher maps a command keyword plus arguments to a tree operation.
type Dispatcher struct {
	tree  *vfs.Tree
	cfg   *config.Config
	color bool
	log   zerolog.Logger
}

// NewDispatcher wires a dispatcher to a tree. cfg may be nil, which means
// the embedded defaults.
func NewDispatcher(tree *vfs.Tree, cfg *config.Config) *Dispatcher {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Dispatcher{
		tree: tree,
		cfg:  cfg,
		log:  logging.GetLogger("shell"),
	}
}

// command describes one shell builtin. run returns output lines; a typed
// error is rendered by Dispatch.
type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 means unlimited
	run     func(d *Dispatcher, args []string) ([]string, error)
}

var commands = map[string]command{
	"pwd":    {usage: "pwd", minArgs: 0, maxArgs: 0, run: cmdPwd},
	"ls":     {usage: "ls [<path>]", minArgs: 0, maxArgs: 1, run: cmdLs},
	"cd":     {usage: "cd <path>", minArgs: 1, maxArgs: 1, run: cmdCd},
	"mkdir":  {usage: "mkdir <path>", minArgs: 1, maxArgs: 1, run: cmdMkdir},
	"touch":  {usage: "touch <path>", minArgs: 1, maxArgs: 1, run: cmdTouch},
	"cat":    {usage: "cat <path>", minArgs: 1, maxArgs: 1, run: cmdCat},
	"rm":     {usage: "rm <path>", minArgs: 1, maxArgs: 1, run: cmdRm},
	"rename": {usage: "rename <path> <new-name>", minArgs: 2, maxArgs: 2, run: cmdRename},
	"cp":     {usage: "cp <src> <dst>", minArgs: 2, maxArgs: 2, run: cmdCp},
	"mv":     {usage: "mv <src> <dst>", minArgs: 2, maxArgs: 2, run: cmdMv},
	"write":  {usage: "write <path> [<text>...]", minArgs: 1, maxArgs: -1, run: cmdWrite},
	"append": {usage: "append <path> <text>...", minArgs: 2, maxArgs: -1, run: cmdAppend},
	"tree":   {usage: "tree [<path>]", minArgs: 0, maxArgs: 1, run: cmdTree},
	"help":   {usage: "help", minArgs: 0, maxArgs: 0, run: cmdHelp},
	"exit":   {usage: "exit", minArgs: 0, maxArgs: 0, run: nil},
}

// Dispatch tokenizes line on whitespace and executes it. Empty lines are
// ignored. No error terminates the loop; only exit sets Quit.
func (d *Dispatcher) Dispatch(line string) Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}
	}
	name, args := fields[0], fields[1:]
	logging.LogCommand(name, args)

	cmd, ok := commands[name]
	if !ok {
		return d.fail(name, args, errors.Newf(errors.ErrUnknownCommand, "unknown command %q", name))
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		err := errors.Newf(errors.ErrUsage, "wrong argument count for %s", name).
			WithDetail("usage", cmd.usage)
		return d.fail(name, args, err)
	}
	if name == "exit" {
		return Result{Quit: true}
	}

	lines, err := cmd.run(d, args)
	if err != nil {
		return d.fail(name, args, err)
	}
	return Result{Lines: lines}
}

// fail logs a typed error and turns it into a failed Result.
func (d *Dispatcher) fail(name string, args []string, err error) Result {
	d.log.Debug().Str("command", name).Err(err).Msg("Command failed")
	return Result{
		Lines:  []string{renderError(name, args, err)},
		Failed: true,
	}
}

// renderError formats a typed error. Command-level errors (unknown name,
// wrong arguments) keep their shell-conventional one-liners; everything
// else renders as "<command>: <path>: <message>".
func renderError(name string, args []string, err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrUnknownCommand:
		return fmt.Sprintf(MsgCommandNotFound, name)
	case errors.ErrUsage:
		usage := name
		if u, ok := errors.GetErrorDetails(err)["usage"].(string); ok {
			usage = u
		}
		return fmt.Sprintf(MsgUsage, usage)
	}
	subject := name
	if len(args) > 0 {
		subject = args[0]
	}
	return fmt.Sprintf("%s: %s: %s", name, subject, humanMessage(errors.GetErrorCode(err)))
}

func humanMessage(code errors.ErrorCode) string {
	switch code {
	case errors.ErrNotFound:
		return MsgNotFound
	case errors.ErrNotADirectory:
		return MsgNotADirectory
	case errors.ErrIsADirectory:
		return MsgIsADirectory
	case errors.ErrAlreadyExists:
		return MsgAlreadyExists
	case errors.ErrRootForbidden:
		return MsgRootForbidden
	case errors.ErrDirectoryBusy:
		return MsgDirectoryBusy
	case errors.ErrInvalidInput:
		return MsgInvalidInput
	default:
		return MsgUnknownError
	}
}

func cmdPwd(d *Dispatcher, _ []string) ([]string, error) {
	return []string{d.tree.CurrentPath()}, nil
}

func cmdLs(d *Dispatcher, args []string) ([]string, error) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	entries, err := d.tree.List(path)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if d.cfg.LS.Classify && e.Kind == vfs.KindDirectory {
			name += "/"
		}
		if d.color && e.Kind == vfs.KindDirectory {
			name = style.DirectoryStyle.Render(name)
		}
		lines = append(lines, name)
	}
	return lines, nil
}

func cmdCd(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.ChangeDir(args[0])
}

func cmdMkdir(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.Mkdir(args[0])
}

func cmdTouch(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.Touch(args[0])
}

func cmdCat(d *Dispatcher, args []string) ([]string, error) {
	content, err := d.tree.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

func cmdRm(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.Remove(args[0])
}

func cmdRename(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.Rename(args[0], args[1])
}

func cmdCp(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.Copy(args[0], args[1])
}

func cmdMv(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.Move(args[0], args[1])
}

func cmdWrite(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.WriteFile(args[0], strings.Join(args[1:], " "))
}

func cmdAppend(d *Dispatcher, args []string) ([]string, error) {
	return nil, d.tree.Append(args[0], strings.Join(args[1:], " "))
}

// cmdTree walks the subtree below the target directory through the
// read-only io/fs view and renders one indented line per node.
func cmdTree(d *Dispatcher, args []string) ([]string, error) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	node, err := d.tree.Stat(path)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", node.Name())
	}

	abs := d.tree.AbsPath(node)
	start := "."
	if abs != "/" {
		start = strings.TrimPrefix(abs, "/")
	}

	lines := []string{abs}
	fsys := vfs.AsReadOnlyFS(d.tree)
	walkErr := fs.WalkDir(fsys, start, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == start {
			return nil
		}
		rel := p
		if start != "." {
			rel = strings.TrimPrefix(p, start+"/")
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		lines = append(lines, strings.Repeat("  ", strings.Count(rel, "/"))+name)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(walkErr, errors.ErrInternal, "walk failed")
	}
	return lines, nil
}

// cmdHelp renders the command table with pterm.
func cmdHelp(_ *Dispatcher, _ []string) ([]string, error) {
	data := pterm.TableData{
		{"COMMAND", "DESCRIPTION"},
		{"pwd", "Print the absolute path of the current directory"},
		{"ls [<path>]", "List directory contents, sorted by name"},
		{"cd <path>", "Change the current directory"},
		{"mkdir <path>", "Create a directory"},
		{"touch <path>", "Create an empty file (no-op if it exists)"},
		{"cat <path>", "Print file content"},
		{"write <path> [<text>...]", "Replace file content"},
		{"append <path> <text>...", "Append a line to a file"},
		{"rm <path>", "Remove a file or directory subtree"},
		{"rename <path> <new-name>", "Rename a file or directory"},
		{"cp <src> <dst>", "Copy a file or directory"},
		{"mv <src> <dst>", "Move a file or directory"},
		{"tree [<path>]", "Recursively list a directory"},
		{"help", "Show this message"},
		{"exit", "Leave the shell"},
	}
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render help table")
	}
	return strings.Split(strings.TrimRight(rendered, "\n"), "\n"), nil
}
