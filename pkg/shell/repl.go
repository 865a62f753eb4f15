package shell

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/orcnighte/terminal-system/pkg/config"
	"github.com/orcnighte/terminal-system/pkg/logging"
	"github.com/orcnighte/terminal-system/pkg/style"
	"github.com/orcnighte/terminal-system/pkg/vfs"
)

// Options controls REPL behavior. Interactive enables the banner and
// prompt; Color additionally styles prompt, banner and error lines. Color
// is ignored when Interactive is false so piped output stays plain.
type Options struct {
	Interactive bool
	Color       bool
}

// REPL reads lines, feeds them to a Dispatcher and prints the results.
// Success output goes to out, errors to errOut, like a real shell.
type REPL struct {
	tree   *vfs.Tree
	disp   *Dispatcher
	cfg    *config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	opts   Options
	log    zerolog.Logger
}

// NewREPL builds a REPL over the given tree. cfg may be nil for defaults.
func NewREPL(tree *vfs.Tree, cfg *config.Config, in io.Reader, out, errOut io.Writer, opts Options) *REPL {
	if cfg == nil {
		cfg = config.Default()
	}
	disp := NewDispatcher(tree, cfg)
	disp.color = opts.Interactive && opts.Color
	return &REPL{
		tree:   tree,
		disp:   disp,
		cfg:    cfg,
		in:     in,
		out:    out,
		errOut: errOut,
		opts:   opts,
		log:    logging.GetLogger("repl"),
	}
}

// Run loops until exit or end of input. Every command error is printed
// and the loop continues; only the exit command or EOF ends the session.
func (r *REPL) Run() error {
	defer logging.LogDuration(time.Now(), "shell session")

	if r.opts.Interactive && r.cfg.Banner.Enabled {
		fmt.Fprintln(r.out, r.styled(style.BannerStyle, r.cfg.Banner.Text))
	}

	scanner := bufio.NewScanner(r.in)
	for {
		if r.opts.Interactive {
			fmt.Fprint(r.out, r.prompt())
		}
		if !scanner.Scan() {
			break
		}
		res := r.disp.Dispatch(scanner.Text())
		r.print(res)
		if res.Quit {
			r.log.Debug().Msg("Session ended by exit command")
			return nil
		}
	}
	return scanner.Err()
}

func (r *REPL) print(res Result) {
	for _, line := range res.Lines {
		if res.Failed {
			fmt.Fprintln(r.errOut, r.styled(style.ErrorStyle, line))
		} else {
			fmt.Fprintln(r.out, line)
		}
	}
}

// prompt renders the configured format with the current absolute path.
func (r *REPL) prompt() string {
	p := fmt.Sprintf(r.cfg.Prompt.Format, r.tree.CurrentPath())
	if r.cfg.Prompt.Color {
		return r.styled(style.PromptStyle, p)
	}
	return p
}

func (r *REPL) styled(s lipgloss.Style, text string) string {
	if !r.opts.Interactive || !r.opts.Color {
		return text
	}
	return s.Render(text)
}
