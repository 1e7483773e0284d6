package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/kdvornik/metra/internal/analysis"
	"github.com/kdvornik/metra/internal/fileproc"
	"github.com/kdvornik/metra/internal/output"
	"github.com/kdvornik/metra/internal/progress"
	"github.com/kdvornik/metra/internal/report"
	"github.com/kdvornik/metra/internal/server"
	"github.com/kdvornik/metra/pkg/config"
	"github.com/kdvornik/metra/pkg/parser"
	"github.com/kdvornik/metra/pkg/spaces"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

// getPaths returns paths from positional args, defaulting to ["."]
func getPaths(c *cli.Context) []string {
	if c.Args().Len() > 0 {
		return c.Args().Slice()
	}
	return []string{"."}
}

func main() {
	app := &cli.App{
		Name:     "metra",
		Usage:    "Multi-language source code metrics",
		Version:  version,
		Metadata: make(map[string]interface{}),
		Description: `Metra parses source files into their function spaces and computes
complexity metrics per space: cyclomatic complexity, Halstead metrics,
lines of code, argument and exit counts, and the maintainability index.

Supports: Go, Rust, Python, TypeScript, JavaScript, TSX, Java, C, C++`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"METRA_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, yaml, markdown",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Disable caching",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
			&cli.StringFlag{
				Name:  "pprof",
				Usage: "Enable pprof profiling and write to specified prefix (creates <prefix>.cpu.pprof and <prefix>.mem.pprof)",
			},
		},
		Before: func(c *cli.Context) error {
			if pprofPrefix := c.String("pprof"); pprofPrefix != "" {
				cpuFile, err := os.Create(pprofPrefix + ".cpu.pprof")
				if err != nil {
					return fmt.Errorf("failed to create CPU profile: %w", err)
				}
				if err := pprof.StartCPUProfile(cpuFile); err != nil {
					cpuFile.Close()
					return fmt.Errorf("failed to start CPU profile: %w", err)
				}
				c.App.Metadata["pprofCPU"] = cpuFile
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if pprofPrefix := c.String("pprof"); pprofPrefix != "" {
				pprof.StopCPUProfile()
				if cpuFile, ok := c.App.Metadata["pprofCPU"].(*os.File); ok {
					cpuFile.Close()
					color.Green("CPU profile written to %s.cpu.pprof", pprofPrefix)
				}

				memFile, err := os.Create(pprofPrefix + ".mem.pprof")
				if err != nil {
					return fmt.Errorf("failed to create memory profile: %w", err)
				}
				defer memFile.Close()

				runtime.GC() // Get up-to-date statistics
				if err := pprof.WriteHeapProfile(memFile); err != nil {
					return fmt.Errorf("failed to write memory profile: %w", err)
				}
				color.Green("Memory profile written to %s.mem.pprof", pprofPrefix)
			}
			return nil
		},
		Commands: []*cli.Command{
			metricsCmd(),
			opsCmd(),
			serveCmd(),
			cacheCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

func metricsCmd() *cli.Command {
	return &cli.Command{
		Name:      "metrics",
		Aliases:   []string{"mx"},
		Usage:     "Compute per-space complexity metrics",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "metrics",
				Aliases: []string{"m"},
				Usage:   "Metric families to compute: nargs, nexits, cyclomatic, halstead, loc, nom, mi (default all)",
			},
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "Restrict to one language",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Number of parallel workers (default 2x CPUs)",
			},
			&cli.BoolFlag{
				Name:  "detail",
				Usage: "Show the per-space breakdown of every file",
			},
		},
		Action: runMetricsCmd,
	}
}

func runMetricsCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if jobs := c.Int("jobs"); jobs > 0 {
		cfg.Analysis.Jobs = jobs
	}

	names := c.StringSlice("metrics")
	if len(names) == 0 {
		names = cfg.Metrics
	}
	sel, err := spaces.ParseSelection(names)
	if err != nil {
		return err
	}

	language, err := parseLanguage(c.String("language"))
	if err != nil {
		return err
	}

	svc, err := analysis.New(cfg)
	if err != nil {
		return err
	}

	files, err := svc.CollectFiles(getPaths(c), language)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	tracker := progress.NewTracker("Computing metrics...", len(files))
	results, errs := svc.MetricsFiles(c.Context, files, analysis.Options{
		Selection: sel,
		NoCache:   c.Bool("no-cache"),
		Progress:  tracker.Tick,
	})
	tracker.FinishSuccess()

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := formatter.Output(report.Metrics(results)); err != nil {
		return err
	}

	if c.Bool("detail") && formatter.Format() != output.FormatJSON && formatter.Format() != output.FormatYAML {
		for _, f := range results {
			if err := formatter.Output(report.Detail(f)); err != nil {
				return err
			}
		}
	}

	reportErrors(formatter, errs, c.Bool("verbose"))
	return nil
}

func opsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ops",
		Usage:     "List the distinct operators and operands of every space",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "Restrict to one language",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Number of parallel workers (default 2x CPUs)",
			},
		},
		Action: runOpsCmd,
	}
}

func runOpsCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if jobs := c.Int("jobs"); jobs > 0 {
		cfg.Analysis.Jobs = jobs
	}

	language, err := parseLanguage(c.String("language"))
	if err != nil {
		return err
	}

	svc, err := analysis.New(cfg)
	if err != nil {
		return err
	}

	files, err := svc.CollectFiles(getPaths(c), language)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	tracker := progress.NewTracker("Extracting operators...", len(files))
	results, errs := svc.OpsFiles(c.Context, files, analysis.Options{
		Progress: tracker.Tick,
	})
	tracker.FinishSuccess()

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := formatter.Output(report.Ops(results)); err != nil {
		return err
	}

	reportErrors(formatter, errs, c.Bool("verbose"))
	return nil
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the analysis engine over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind (default from config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind (default from config)",
			},
		},
		Action: runServeCmd,
	}
}

func runServeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	host := cfg.Server.Host
	if c.IsSet("host") {
		host = c.String("host")
	}
	port := cfg.Server.Port
	if c.IsSet("port") {
		port = c.Int("port")
	}

	color.Cyan("Listening on %s:%d", host, port)
	return server.New(c.Bool("verbose")).Run(host, port)
}

func cacheCmd() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the analysis cache",
		Subcommands: []*cli.Command{
			{
				Name:  "clear",
				Usage: "Remove every cached result",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					svc, err := analysis.New(cfg)
					if err != nil {
						return err
					}
					if err := svc.Cache().Clear(); err != nil {
						return err
					}
					color.Green("Cache cleared")
					return nil
				},
			},
		},
	}
}

// reportErrors prints per-file failures. Without verbose only a summary
// shows.
func reportErrors(formatter *output.Formatter, errs *fileproc.ProcessingErrors, verbose bool) {
	if errs == nil || !errs.HasErrors() {
		return
	}
	if !verbose {
		formatter.Warning("%d files failed to process (re-run with --verbose for details)", len(errs.Errors))
		return
	}
	for _, e := range errs.Errors {
		formatter.Warning("%s", e.Error())
	}
}

// parseLanguage resolves a --language value, accepting the common short
// names.
func parseLanguage(s string) (parser.Language, error) {
	switch s {
	case "":
		return "", nil
	case "go", "golang":
		return parser.LangGo, nil
	case "rust", "rs":
		return parser.LangRust, nil
	case "python", "py":
		return parser.LangPython, nil
	case "typescript", "ts":
		return parser.LangTypeScript, nil
	case "javascript", "js":
		return parser.LangJavaScript, nil
	case "tsx":
		return parser.LangTSX, nil
	case "java":
		return parser.LangJava, nil
	case "c":
		return parser.LangC, nil
	case "cpp", "c++", "cxx":
		return parser.LangCPP, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}
