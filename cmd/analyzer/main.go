package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chensirou3/marketnewsanaylzer/internal/asset"
	"github.com/chensirou3/marketnewsanaylzer/internal/config"
)

var (
	flagAsset   string
	flagDate    string
	flagTest    bool
	flagOutput  string
	flagVerbose bool
)

func main() {
	// No arguments drops into the interactive menu.
	if len(os.Args) == 1 {
		setupLogging(false)
		interactiveMode()
		return
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyzer",
		Short: "Analyze financial market news for one asset class and date",
		Long: `Fetches financial news for an asset class (oil, gold, stock, crypto, forex),
filters it to a target date, scores and ranks the items, and writes a
markdown analysis report. Run without flags for an interactive menu.`,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringVarP(&flagAsset, "asset", "a", "oil",
		fmt.Sprintf("asset to analyze (%s)", strings.Join(asset.Keys(), "|")))
	cmd.Flags().StringVarP(&flagDate, "date", "d", "",
		"target date in YYYYMMDD form (default: today)")
	cmd.Flags().BoolVarP(&flagTest, "test", "t", false,
		"use fixture data instead of the live provider")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"data output directory (default: data)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(flagVerbose)

	cfg := config.Load()
	if flagOutput != "" {
		cfg.DataDir = flagOutput
	}

	date := flagDate
	if date == "" {
		date = time.Now().Format("20060102")
	}
	if _, err := time.Parse("20060102", date); err != nil {
		fmt.Printf("Error: invalid date %q, expected YYYYMMDD (e.g. 20250307)\n", date)
		return nil
	}

	if _, err := asset.Lookup(flagAsset); err != nil {
		fmt.Printf("Error: invalid asset %q\nValid assets: %s\n", flagAsset, strings.Join(asset.Keys(), ", "))
		return nil
	}

	return runAnalysis(cfg, flagAsset, date, flagTest)
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
