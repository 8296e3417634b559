// Package interactive provides the cwmp-tree shell for browsing and
// editing a document.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/cwmp-model/cwmp-go/pkg/codec"
	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/journal"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
	"github.com/cwmp-model/cwmp-go/pkg/validate"
)

// Shell edits one document interactively.
type Shell struct {
	file      string
	tree      *paramtree.Tree
	saved     *paramtree.Tree
	rec       *journal.Recorder
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	log       zerolog.Logger
	out       io.Writer
	dirty     bool
}

// New creates a shell over tree, which was loaded from file. Writes are
// recorded to logger.
func New(file string, tree *paramtree.Tree, formatter *inspect.Formatter, logger journal.Logger, log zerolog.Logger) *Shell {
	return &Shell{
		file:      file,
		tree:      tree,
		saved:     snapshotOf(tree),
		rec:       journal.NewRecorder(tree, logger).WithSource(file),
		inspector: inspect.NewInspector(tree, formatter),
		formatter: formatter,
		log:       log,
		out:       os.Stdout,
	}
}

// snapshotOf returns a detached copy of tree for diffing against.
func snapshotOf(tree *paramtree.Tree) *paramtree.Tree {
	node := tree.Schema().New()
	data, err := codec.Marshal(codec.FormatJSON, tree.Root())
	if err == nil {
		err = codec.Unmarshal(codec.FormatJSON, data, node)
	}
	if err != nil {
		// entities always encode; keep an empty baseline if they do not
		node = tree.Schema().New()
	}
	return paramtree.MustNew(node, tree.Prefix())
}

// Run starts the interactive command loop.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.tree.Schema().Name + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
		if quit := s.Exec(line); quit {
			return nil
		}
	}
}

func (s *Shell) completer() readline.AutoCompleter {
	paths := readline.PcItemDynamic(func(line string) []string {
		fields := strings.Fields(line)
		word := ""
		if len(fields) > 1 && !strings.HasSuffix(line, " ") {
			word = fields[len(fields)-1]
		}
		return s.inspector.Complete(word)
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("show", paths),
		readline.PcItem("ls", paths),
		readline.PcItem("get", paths),
		readline.PcItem("set", paths),
		readline.PcItem("force", paths),
		readline.PcItem("unset", paths),
		readline.PcItem("validate"),
		readline.PcItem("diff"),
		readline.PcItem("save"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// SetOutput directs command output to w. Run sets it to the readline
// stdout.
func (s *Shell) SetOutput(w io.Writer) { s.out = w }

// Dirty reports whether there are unsaved changes.
func (s *Shell) Dirty() bool { return s.dirty }

// Exec runs one command line and reports whether the shell should exit.
func (s *Shell) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "show", "s":
		s.cmdShow(args)
	case "ls", "names":
		s.cmdNames(args)
	case "get", "g":
		s.cmdGet(args)
	case "set":
		s.cmdSet(input, false)
	case "force":
		s.cmdSet(input, true)
	case "unset":
		s.cmdUnset(args)
	case "validate", "v":
		s.cmdValidate()
	case "diff", "d":
		fmt.Fprint(s.out, s.formatter.FormatChanges(paramtree.Diff(s.saved, s.tree)))
	case "save", "w":
		s.cmdSave(args)
	case "quit", "exit", "q":
		if s.dirty && (len(args) == 0 || args[0] != "!") {
			fmt.Fprintln(s.out, "Unsaved changes; 'save' first or 'quit !' to discard")
			return false
		}
		fmt.Fprintln(s.out, "Exiting...")
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintf(s.out, `Commands (paths are case-insensitive and may omit %s):
  show [path]          Show the tree or a subtree/parameter
  ls [path]            List next-level names
  get <path>...        Print parameter values
  set <path> <value>   Write a parameter (value may contain spaces, "" is empty)
  force <path> <value> Write a read-only parameter
  unset <path>         Clear a parameter
  validate             Check declared size and range constraints
  diff                 Show changes since the last save
  save [file]          Write the document
  quit [!]             Exit ('!' discards unsaved changes)
`, s.tree.Prefix())
}

func (s *Shell) fail(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Shell) cmdShow(args []string) {
	if len(args) == 0 {
		fmt.Fprint(s.out, s.formatter.FormatTree(s.tree))
		return
	}
	out, err := s.inspector.Show(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprint(s.out, out)
}

func (s *Shell) cmdNames(args []string) {
	in := ""
	if len(args) > 0 {
		in = args[0]
	}
	path, err := s.inspector.Resolve(in)
	if err != nil {
		s.fail(err)
		return
	}
	names, err := s.tree.Names(path, strings.HasSuffix(path, "."))
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatNames(names))
}

func (s *Shell) cmdGet(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: get <path>...")
		return
	}
	for _, in := range args {
		path, err := s.inspector.Resolve(in)
		if err != nil {
			s.fail(err)
			continue
		}
		p, err := s.tree.Get(path)
		if err != nil {
			s.fail(err)
			continue
		}
		fmt.Fprint(s.out, s.formatter.FormatParameters([]paramtree.Parameter{p}))
	}
}

// cmdSet takes the raw line so values keep their inner spacing.
func (s *Shell) cmdSet(line string, force bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		fmt.Fprintf(s.out, "Usage: %s <path> <value> (use \"\" for an empty value)\n", fields[0])
		return
	}
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
	rest = strings.TrimSpace(strings.TrimPrefix(rest, fields[1]))
	value := strings.Trim(rest, `"`)

	path, err := s.inspector.Resolve(fields[1])
	if err != nil {
		s.fail(err)
		return
	}
	if force {
		err = s.rec.SetForce(path, value)
	} else {
		err = s.rec.Set(path, value)
	}
	if err != nil {
		if errors.Is(err, paramtree.ErrNotWritable) {
			fmt.Fprintf(s.out, "Error: %v (use 'force')\n", err)
			return
		}
		s.fail(err)
		return
	}
	s.dirty = true
	fmt.Fprintf(s.out, "OK: %s = %q\n", path, value)
}

func (s *Shell) cmdUnset(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: unset <path>")
		return
	}
	path, err := s.inspector.Resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.rec.Unset(path); err != nil {
		s.fail(err)
		return
	}
	s.dirty = true
	fmt.Fprintf(s.out, "OK: %s unset\n", path)
}

func (s *Shell) cmdValidate() {
	fmt.Fprint(s.out, s.formatter.FormatViolations(validate.Tree(s.tree)))
}

func (s *Shell) cmdSave(args []string) {
	file := s.file
	if len(args) > 0 {
		file = args[0]
	}
	if err := codec.WriteFile(file, s.tree.Root()); err != nil {
		s.fail(err)
		return
	}
	s.saved = snapshotOf(s.tree)
	s.dirty = false
	s.log.Info().Str("file", file).Msg("document saved")
	fmt.Fprintf(s.out, "Saved %s\n", file)
}
