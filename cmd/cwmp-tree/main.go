// Command cwmp-tree inspects and edits CWMP data-model documents.
//
// Documents are XML, JSON, YAML or CBOR snapshot files holding one
// InternetGatewayDevice (TR-098), STBService (TR-135) or FAPService
// (TR-196) tree. The format follows the file extension.
//
// Usage:
//
//	cwmp-tree <command> [flags] <file> [args]
//
// Commands:
//
//	show         Print the document as a tree
//	get          Print parameter values
//	set          Write parameters and save the document
//	names        List parameter names (GetParameterNames style)
//	validate     Check size and range constraints
//	diff         Compare two documents
//	convert      Re-encode a document in another format
//	fingerprint  Print the tree fingerprint
//	schema       List the supported object templates
//	journal      Print a change journal
//	shell        Edit a document interactively
//
// Examples:
//
//	# Show only set parameters of a gateway
//	cwmp-tree show gateway.xml
//
//	# Write two parameters and journal the change
//	cwmp-tree set -journal changes.cjl gateway.xml time.ntpserver1=pool.ntp.org Time.Enable=true
//
//	# Convert a YAML STB document to a CBOR snapshot
//	cwmp-tree convert -root stb stb.yaml stb.cbor
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwmp-model/cwmp-go/cmd/cwmp-tree/commands"
	"github.com/cwmp-model/cwmp-go/cmd/cwmp-tree/interactive"
	"github.com/cwmp-model/cwmp-go/internal/logging"
	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/journal"
)

const usage = `cwmp-tree - CWMP data-model document tool

Usage:
  cwmp-tree <command> [flags] <file> [args]

Commands:
  show         Print the document as a tree
  get          Print parameter values
  set          Write parameters and save the document
  names        List parameter names (GetParameterNames style)
  validate     Check size and range constraints
  diff         Compare two documents
  convert      Re-encode a document in another format
  fingerprint  Print the tree fingerprint
  schema       List the supported object templates
  journal      Print a change journal
  shell        Edit a document interactively

Use "cwmp-tree <command> -help" for more information about a command.
`

// options are the flags shared by every command.
type options struct {
	config   string
	envFile  string
	logLevel string
	jsonLog  bool
	noColor  bool
	root     string
	journal  string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&o.envFile, "env-file", ".env", "Environment file with CWMPTREE_* variables")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&o.jsonLog, "json-log", false, "Log JSON lines instead of console output")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colors")
	fs.StringVar(&o.root, "root", "", "Document root for JSON/YAML files: igd, stb, fap")
	fs.StringVar(&o.journal, "journal", "", "Append parameter changes to this journal file")
}

// setup resolves the configuration and builds the command environment.
// Flags that were set explicitly override the config file and environment.
func (o *options) setup(fs *flag.FlagSet) (*commands.Env, Config, error) {
	cfg, err := LoadConfig(o.config, o.envFile)
	if err != nil {
		return nil, cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = o.logLevel
		case "json-log":
			cfg.JSONLog = o.jsonLog
		case "no-color":
			cfg.NoColor = o.noColor
		case "root":
			cfg.Root = o.root
		case "journal":
			cfg.Journal = o.journal
		}
	})

	env := commands.NewEnv()
	env.Root = cfg.Root
	env.Log = logging.New(logging.Config{
		Level:   cfg.LogLevel,
		JSON:    cfg.JSONLog,
		NoColor: cfg.NoColor,
	})
	env.Formatter = inspect.NewFormatter()
	env.Formatter.NoColor = cfg.NoColor
	env.Formatter.ShowMetadata = cfg.ShowMetadata
	return env, cfg, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "show":
		err = runShow(args)
	case "get":
		err = runGet(args)
	case "set":
		err = runSet(args)
	case "names":
		err = runNames(args)
	case "validate":
		err = runFileCommand("validate", args, commands.RunValidate)
	case "fingerprint":
		err = runFileCommand("fingerprint", args, commands.RunFingerprint)
	case "diff":
		err = runDiff(args)
	case "convert":
		err = runConvert(args)
	case "schema":
		err = runSchema(args)
	case "journal":
		err = runJournal(args)
	case "shell":
		err = runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, commands.ErrInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the shared options and a usage text.
func newFlagSet(name, synopsis, description string) (*flag.FlagSet, *options) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	opts := &options{}
	opts.register(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "cwmp-tree %s - %s\n\nUsage:\n  cwmp-tree %s %s\n\nFlags:\n", name, description, name, synopsis)
		fs.PrintDefaults()
	}
	return fs, opts
}

func parse(fs *flag.FlagSet, args []string, minArgs int) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < minArgs {
		fs.Usage()
		return fmt.Errorf("%s: expected at least %d arguments", fs.Name(), minArgs)
	}
	return nil
}

func runShow(args []string) error {
	fs, opts := newFlagSet("show", "[flags] <file>", "Print the document as a tree")
	path := fs.String("path", "", "Show only this subtree or parameter")
	unset := fs.Bool("unset", false, "Include parameters without a value")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return commands.RunShow(env, fs.Arg(0), commands.ShowOptions{Path: *path, Unset: *unset})
}

func runGet(args []string) error {
	fs, opts := newFlagSet("get", "[flags] <file> <path>...", "Print parameter values")
	raw := fs.Bool("raw", false, "Print only the values")
	if err := parse(fs, args, 2); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return commands.RunGet(env, fs.Arg(0), fs.Args()[1:], *raw)
}

func runSet(args []string) error {
	fs, opts := newFlagSet("set", "[flags] <file> <path=value>...", "Write parameters and save the document")
	force := fs.Bool("force", false, "Also write read-only parameters")
	unset := fs.Bool("unset", false, "Clear the named parameters")
	create := fs.Bool("create", false, "Start from an empty document when the file does not exist (needs -root)")
	output := fs.String("o", "", "Write the result to this file instead")
	if err := parse(fs, args, 2); err != nil {
		return err
	}
	env, cfg, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return commands.RunSet(env, fs.Arg(0), commands.SetOptions{
		Assignments: fs.Args()[1:],
		Unset:       *unset,
		Force:       *force,
		Create:      *create,
		Output:      *output,
		Journal:     cfg.Journal,
	})
}

func runNames(args []string) error {
	fs, opts := newFlagSet("names", "[flags] <file> [path]", "List parameter names")
	next := fs.Bool("next", false, "List only the next level")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return commands.RunNames(env, fs.Arg(0), fs.Arg(1), *next)
}

func runFileCommand(name string, args []string, run func(*commands.Env, string) error) error {
	fs, opts := newFlagSet(name, "[flags] <file>", strings.ToUpper(name[:1])+name[1:]+" a document")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return run(env, fs.Arg(0))
}

func runDiff(args []string) error {
	fs, opts := newFlagSet("diff", "[flags] <from> <to>", "Compare two documents")
	if err := parse(fs, args, 2); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return commands.RunDiff(env, fs.Arg(0), fs.Arg(1))
}

func runConvert(args []string) error {
	fs, opts := newFlagSet("convert", "[flags] <in> <out>", "Re-encode a document")
	if err := parse(fs, args, 2); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return commands.RunConvert(env, fs.Arg(0), fs.Arg(1))
}

func runSchema(args []string) error {
	fs, opts := newFlagSet("schema", "[flags] [template-prefix]", "List object templates")
	params := fs.Bool("params", false, "Include parameters")
	if err := parse(fs, args, 0); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}
	return commands.RunSchema(env, fs.Arg(0), *params)
}

func runJournal(args []string) error {
	fs, opts := newFlagSet("journal", "[flags] <file.cjl>", "Print a change journal")
	prefix := fs.String("path", "", "Filter by path prefix")
	kind := fs.String("kind", "", "Filter by kind: set, unset, rejected")
	session := fs.String("session", "", "Filter by session ID")
	since := fs.Duration("since", 0, "Only events newer than this (e.g. 1h)")
	jsonOut := fs.Bool("json", false, "Print JSON lines")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	env, _, err := opts.setup(fs)
	if err != nil {
		return err
	}

	filter := journal.Filter{PathPrefix: *prefix, SessionID: *session}
	if *kind != "" {
		k, ok := journal.ParseKind(*kind)
		if !ok {
			return fmt.Errorf("unknown kind %q", *kind)
		}
		filter.Kind = &k
	}
	if *since > 0 {
		start := time.Now().Add(-*since)
		filter.TimeStart = &start
	}
	return commands.RunJournal(env, fs.Arg(0), commands.JournalOptions{Filter: filter, JSON: *jsonOut})
}

func runShell(args []string) error {
	fs, opts := newFlagSet("shell", "[flags] <file>", "Edit a document interactively")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	env, cfg, err := opts.setup(fs)
	if err != nil {
		return err
	}
	tree, err := env.Open(fs.Arg(0))
	if err != nil {
		return err
	}

	var file journal.Logger
	if cfg.Journal != "" {
		fl, err := journal.NewFileLogger(cfg.Journal)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer fl.Close()
		file = fl
	}
	logger := journal.NewMultiLogger(journal.NewZerologAdapter(env.Log), file)

	return interactive.New(fs.Arg(0), tree, env.Formatter, logger, env.Log).Run()
}
