package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/brewin-lang/brewin/brewin"
	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/config"
	"github.com/brewin-lang/brewin/brewin/diagnostic"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const programName = "brewin"
const version = "latest"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

// The configuration file overridden by the global flags.
type settings struct {
	cfg    *config.Config
	color  bool
	logger zerolog.Logger
}

func loadSettings(c *cli.Context) (settings, error) {
	cfg, err := config.Load(c.String("config"), os.Getenv)
	if err != nil {
		return settings{}, err
	}

	if c.IsSet("trace") {
		cfg.Trace = c.Bool("trace")
	}
	if c.IsSet("max-depth") {
		cfg.MaxCallDepth = c.Uint("max-depth")
	}
	if c.IsSet("color") {
		cfg.Color = config.ColorMode(c.String("color"))
	}

	if err := config.Validate(cfg); err != nil {
		return settings{}, err
	}

	color := false
	switch cfg.Color {
	case config.ColorAlways:
		color = true
	case config.ColorAuto:
		color = term.IsTerminal(int(os.Stderr.Fd()))
	}

	zerolog.SetGlobalLevel(cfg.Level())
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !color,
		TimeFormat: time.TimeOnly,
	}).Level(cfg.Level()).With().Timestamp().Logger()

	return settings{cfg: cfg, color: color, logger: logger}, nil
}

func (self settings) options() brewin.Options {
	return brewin.Options{
		MaxCallDepth: self.cfg.MaxCallDepth,
		Logger:       self.logger,
	}
}

func printErrors(errs []errors.Error, source string, color bool) {
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, diagnostic.FromError(err).Display(source, color))
	}
}

// Executes a parsed or loaded program on the console.
// Language errors are rendered by the executor, everything else is rendered here.
func execute(s settings, source string, run func(ctx context.Context, executor brewin.Executor) *errors.Error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	executor := newConsoleExecutor(source, s.color, s.cfg.InputPromptNewline)
	defer executor.Close()

	if err := run(ctx, executor); err != nil {
		if !err.Kind.IsLanguageError() {
			printErrors([]errors.Error{*err}, source, s.color)
		}
		return cli.Exit("", 1)
	}

	return nil
}

func main() {
	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Usage:    "Run Brewin programs",
		Version:  version,
		Compiled: time.Now(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   fmt.Sprintf("Path to the configuration file (default: $%s or ./%s)", config.EnvVar, config.DefaultFile),
				Aliases: []string{"c"},
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "Log every scope change, declaration and call",
			},
			&cli.UintFlag{
				Name:  "max-depth",
				Usage: "Maximum depth of nested function calls, 0 disables the limit",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Colorize diagnostics: auto, always or never",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run a Brewin source file",
				ArgsUsage: "[file]",
				Args:      true,
				Before:    fileValidator,
				Action: func(c *cli.Context) error {
					filename := c.Args().Get(0)

					file, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					s, err := loadSettings(c)
					if err != nil {
						return err
					}

					return execute(s, string(file), func(ctx context.Context, executor brewin.Executor) *errors.Error {
						_, err := brewin.Run(ctx, executor, filename, string(file), s.options())
						return err
					})
				},
			},
			{
				Name:      "exec",
				Usage:     "Run a syntax tree stored as YAML",
				ArgsUsage: "[ast.yaml]",
				Args:      true,
				Before:    fileValidator,
				Action: func(c *cli.Context) error {
					filename := c.Args().Get(0)

					file, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					s, err := loadSettings(c)
					if err != nil {
						return err
					}

					program, err := ast.LoadYAML(file, filename)
					if err != nil {
						return err
					}

					return execute(s, string(file), func(ctx context.Context, executor brewin.Executor) *errors.Error {
						_, err := brewin.RunAST(ctx, executor, program, s.options())
						return err
					})
				},
			},
			{
				Name:      "ast",
				Usage:     "Print the syntax tree of a Brewin source file",
				ArgsUsage: "[file]",
				Args:      true,
				Before:    fileValidator,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Usage:   "Output format: yaml, spew or tree",
						Value:   "yaml",
						Aliases: []string{"f"},
					},
				},
				Action: func(c *cli.Context) error {
					filename := c.Args().Get(0)

					file, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					s, err := loadSettings(c)
					if err != nil {
						return err
					}

					program, syntaxErrors := brewin.Parse(filename, string(file))
					if len(syntaxErrors) > 0 {
						printErrors(syntaxErrors, string(file), s.color)
						return cli.Exit("", 1)
					}

					switch c.String("format") {
					case "yaml":
						out, err := ast.DumpYAML(program)
						if err != nil {
							return err
						}
						fmt.Print(string(out))
					case "spew":
						spew.Dump(program)
					case "tree":
						fmt.Println(program)
					default:
						return fmt.Errorf("Illegal format `%s`: Valid values are `yaml`, `spew` and `tree`", c.String("format"))
					}

					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "Report syntax errors without running the program",
				ArgsUsage: "[file]",
				Args:      true,
				Before:    fileValidator,
				Action: func(c *cli.Context) error {
					filename := c.Args().Get(0)

					file, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					s, err := loadSettings(c)
					if err != nil {
						return err
					}

					program, syntaxErrors := brewin.Parse(filename, string(file))
					if len(syntaxErrors) == 0 {
						if err := ast.Validate(program); err != nil {
							syntaxErrors = append(syntaxErrors, *err)
						}
					}

					if len(syntaxErrors) > 0 {
						printErrors(syntaxErrors, string(file), s.color)
						return cli.Exit("", 1)
					}

					fmt.Printf("%s: no syntax errors\n", filename)
					return nil
				},
			},
			{
				Name:      "test",
				Usage:     "Run every program in a directory and compare its output against the expected one",
				ArgsUsage: "[dir]",
				Args:      true,
				Before: func(ctx *cli.Context) error {
					if ctx.Args().Len() != 1 {
						return fmt.Errorf("Expected exactly one argument <dir>")
					}
					return nil
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "workers",
						Usage:   "Number of programs to run concurrently (default: number of CPUs)",
						Aliases: []string{"w"},
					},
				},
				Action: func(c *cli.Context) error {
					s, err := loadSettings(c)
					if err != nil {
						return err
					}

					return validateDir(c.Args().Get(0), c.Int("workers"), s)
				},
			},
		},
	}

	// exit coders terminate the process inside `Run`
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
