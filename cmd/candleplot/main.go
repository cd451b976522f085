package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/0xc0d3d00d/candleplot/internal/domain"
	"github.com/0xc0d3d00d/candleplot/internal/plot"
	"github.com/0xc0d3d00d/candleplot/internal/process"
	"github.com/0xc0d3d00d/candleplot/internal/storage"
)

type config struct {
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type runArgs struct {
	input     string
	csvFile   string
	outputDir string
	renderer  string
}

var (
	csvFile      string
	outputDir    string
	rendererName string
)

var rootCmd = &cobra.Command{
	Use:           "candleplot [flags] input_string",
	Short:         "Echo a string uppercased and plot OHLCV candlestick data",
	Version:       "0.1.0",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.OutOrStdout(), runArgs{
			input:     args[0],
			csvFile:   csvFile,
			outputDir: outputDir,
			renderer:  rendererName,
		})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&csvFile, "csv-file", "c", "HistoricalData_1756580762948.csv", "path to the OHLCV csv file")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output", "directory plot artifacts are written to")
	rootCmd.Flags().StringVar(&rendererName, "renderer", "simulate", "plot renderer (simulate|table)")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config{}
	err := loadConfig(&cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.DateTime,
		}),
	))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.ErrorContext(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, args runArgs) error {
	fmt.Fprintln(out, strings.ToUpper(args.input))

	fs := afero.NewOsFs()
	store := storage.NewStore(fs)

	if err := store.EnsureDir(ctx, args.outputDir); err != nil {
		return err
	}

	processor := process.NewProcessor(store)
	records, err := processor.Load(ctx, args.csvFile)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "loaded records", "count", len(records))

	renderer, err := newRenderer(args.renderer, fs)
	if err != nil {
		return err
	}

	datasets := map[string][]domain.HistoricalRecord{plot.DefaultDataset: records}
	return renderer.Render(ctx, datasets, args.outputDir)
}

func newRenderer(name string, fs afero.Fs) (plot.Renderer, error) {
	switch name {
	case "simulate":
		return plot.NewSimulated(), nil
	case "table":
		return plot.NewTable(fs), nil
	default:
		return nil, fmt.Errorf("unknown renderer `%s`", name)
	}
}

func loadConfig(config any) error {
	// Ignore error if .env is missing
	err := godotenv.Load()

	if err != nil && !os.IsNotExist(err) {
		return err
	}

	// Parse for built-in types
	if err := env.Parse(config); err != nil {
		return err
	}

	return nil
}
