package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/flatjson/internal/config"
	"github.com/mcncl/flatjson/internal/errors"
	"github.com/mcncl/flatjson/internal/formatter"
	"github.com/mcncl/flatjson/internal/generator"
	"github.com/mcncl/flatjson/internal/models"
	"github.com/mcncl/flatjson/internal/parser"
)

// Parse modes
const (
	ModeTolerant   = "tolerant"
	ModeStrict     = "strict"
	ModePermissive = "permissive"
	ModeQuoted     = "quoted"
	ModePack       = "pack"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Mode        string `help:"Parse mode: tolerant, strict, permissive, quoted or pack." short:"m" enum:"tolerant,strict,permissive,quoted,pack" default:"tolerant"`
	Format      string `help:"Output format: json, yaml or kv. Overrides the config file." short:"F"`
	KeyCase     string `help:"Key case: none, snake, camel, lower_camel or kebab. Overrides the config file." short:"k"`
	Config      string `help:"Path to config file. Defaults to .flatjson.yml in the current directory or a parent." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger *slog.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	app := kong.Must(&CLI,
		kong.Name("flatjson"),
		kong.Description("A tolerant converter from JSON-like text to flat key-value maps"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := app.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("flatjson version %s\n", Version)
		return
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Format, CLI.KeyCase, CLI.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{
		Debug:  cfg.Dev.Debug,
		Config: cfg,
		Logger: newLogger(os.Stderr, cfg.Dev.Debug),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: flatjson --help\n")
		os.Exit(1)
	}
}

// newLogger returns a text logger that reports warnings, or everything when
// debug is set
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run executes the main program logic
func run(ctx *Context) error {
	if ctx.Config == nil {
		ctx.Config = config.NewConfig()
	}
	if ctx.Logger == nil {
		ctx.Logger = newLogger(os.Stderr, ctx.Debug)
	}

	text, err := parseInput()
	if err != nil {
		return err
	}

	out, err := convert(ctx, CLI.Mode, text)
	if err != nil {
		return err
	}

	return writeOutput(out)
}

// convert runs text through the given mode and renders the result
func convert(ctx *Context, mode, text string) (string, error) {
	p, err := parser.NewParserWithConfig(ctx.Config, parser.WithLogger(ctx.Logger))
	if err != nil {
		return "", err
	}

	var result models.FlatMap
	switch mode {
	case ModeTolerant, "":
		result = p.ParseTolerant(text)
	case ModeStrict:
		result, err = p.StrictObjectParse(text)
		if err != nil {
			return "", err
		}
	case ModePermissive:
		result = p.PermissiveParse(text)
	case ModeQuoted:
		result = p.ParseQuotedPairs(text)
	case ModePack:
		return generator.PackList(inputLines(text)), nil
	default:
		return "", errors.NewInputError(fmt.Sprintf("unknown mode '%s'", mode), errors.ErrUnknownMode)
	}

	ctx.Logger.Debug("converted input", slog.String("mode", mode), slog.Int("keys", len(result)))
	return formatter.NewFormatter().Format(result, ctx.Config.Output.Format)
}

// inputLines returns the non-blank lines of text, trimmed
func inputLines(text string) models.StringList {
	var lines models.StringList
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseInput reads text from file or stdin
func parseInput() (string, error) {
	if CLI.Input != "" {
		return parser.ReadFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	return parser.ReadInput(os.Stdin)
}

// writeOutput writes the result to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(out+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(out)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput lets users paste text and signal completion with
// Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "flatjson Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your input below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		builder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	fmt.Fprintln(os.Stderr, "\nProcessing input...")
	return parser.ReadInput(strings.NewReader(builder.String()))
}
