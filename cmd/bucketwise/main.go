package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bucketwise/bucketwise/internal/compare"
	"github.com/bucketwise/bucketwise/internal/config"
	"github.com/bucketwise/bucketwise/internal/output"
	"github.com/bucketwise/bucketwise/internal/simulation"
	"github.com/bucketwise/bucketwise/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zapLogger adapts a zap sugared logger to the simulation.Logger interface
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z zapLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z zapLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z zapLogger) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }

// newEngine builds a simulation engine, wiring a zap development logger
// behind it when debug output is requested.
func newEngine(debugMode bool) (*simulation.Engine, func(), error) {
	engine := simulation.NewEngine()
	cleanup := func() {}

	if debugMode {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		engine.SetLogger(zapLogger{s: logger.Sugar()})
		cleanup = func() { _ = logger.Sync() }
	}

	return engine, cleanup, nil
}

var rootCmd = &cobra.Command{
	Use:   "bucketwise",
	Short: "Three-bucket retirement drawdown simulator",
	Long: `Bucketwise projects the multi-year evolution of a retirement corpus
split across cash, debt, and growth buckets under configurable withdrawal,
replenishment, rebalancing, and market-stress policies.`,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [plan-file]",
	Short: "Run the drawdown simulation for one scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		scenarioName, _ := cmd.Flags().GetString("scenario")
		scenario := cfg.Scenario(scenarioName)
		if scenarioName == "" {
			scenario = &cfg.Scenarios[0]
		}
		if scenario == nil {
			return fmt.Errorf("scenario %s not found in %s", scenarioName, args[0])
		}

		debugMode, _ := cmd.Flags().GetBool("debug")
		engine, cleanup, err := newEngine(debugMode)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := engine.Run(cfg.ParameterSet(), scenario)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unsupported format %q (available: %s)",
				formatName, strings.Join(output.FormatterNames(), ", "))
		}

		data, err := formatter.Format(result)
		if err != nil {
			return err
		}

		if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Printf("Wrote %s report to %s\n", formatter.Name(), outFile)
		} else {
			fmt.Print(string(data))
		}

		if showChart, _ := cmd.Flags().GetBool("chart"); showChart {
			fmt.Println()
			fmt.Println(output.BucketTrendChart(result).Render())
			fmt.Println()
			fmt.Println(output.ExpenseTrendChart(result).Render())
		}

		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [plan-file]",
	Short: "Compare scenarios against a base scenario",
	Long: `Compare a base scenario against the other scenarios in a plan file.

Examples:
  bucketwise compare plan.yaml --base Base
  bucketwise compare plan.yaml --base Base --with Crash3,HighInflation --format csv
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		baseName, _ := cmd.Flags().GetString("base")
		if baseName == "" {
			baseName = cfg.Scenarios[0].Name
		}

		var alternatives []string
		if with, _ := cmd.Flags().GetString("with"); with != "" {
			for _, name := range strings.Split(with, ",") {
				alternatives = append(alternatives, strings.TrimSpace(name))
			}
		}

		debugMode, _ := cmd.Flags().GetBool("debug")
		engine, cleanup, err := newEngine(debugMode)
		if err != nil {
			return err
		}
		defer cleanup()

		compEngine := compare.NewCompareEngine(engine)
		compSet, err := compEngine.CompareScenarios(cfg, baseName, alternatives)
		if err != nil {
			return err
		}
		compSet.ConfigPath = args[0]

		formatName, _ := cmd.Flags().GetString("format")
		switch formatName {
		case "table", "":
			fmt.Print((&compare.TableFormatter{}).Format(compSet))
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Print(out)
		case "json":
			out, err := (&compare.JSONFormatter{}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Print(out)
		default:
			return fmt.Errorf("unsupported format %q (available: table, csv, json)", formatName)
		}

		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Plan file %s is valid (%d scenarios)\n", args[0], len(cfg.Scenarios))
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [plan-file]",
	Short: "Browse simulation results interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.NewModel(args[0]), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI failed: %w", err)
		}
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "bucketwise %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func init() {
	simulateCmd.Flags().StringP("scenario", "s", "", "scenario name (default: first scenario in the plan)")
	simulateCmd.Flags().StringP("format", "f", "console", "output format: "+strings.Join(output.FormatterNames(), ", "))
	simulateCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	simulateCmd.Flags().Bool("chart", false, "render bucket and expense trend charts")
	simulateCmd.Flags().Bool("debug", false, "enable debug logging")

	compareCmd.Flags().String("base", "", "base scenario name (default: first scenario in the plan)")
	compareCmd.Flags().String("with", "", "comma-separated alternative scenario names (default: all others)")
	compareCmd.Flags().StringP("format", "f", "table", "output format: table, csv, json")
	compareCmd.Flags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
