package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rishabh931/balsheet/internal/app"
	"github.com/rishabh931/balsheet/internal/common"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to balsheet.toml (default: config/balsheet.toml)")
		outputDir  = flag.String("output", "", "output directory for charts and report (overrides config)")
		limit      = flag.Int("limit", 0, "number of reporting periods to fetch (overrides config)")
		skipAI     = flag.Bool("skip-ai", false, "skip the AI commentary call")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] SYMBOL\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Analyzes the balance sheet of an Indian-listed equity, e.g. RELIANCE or TCS.NS\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(common.GetFullVersion())
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	symbol := flag.Arg(0)

	path := *configPath
	if path == "" {
		path = os.Getenv("BALSHEET_CONFIG")
	}
	if path == "" {
		path = "config/balsheet.toml"
	}

	// Cancel on Ctrl-C so in-flight API calls shut down cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(ctx, app.Options{
		ConfigPath: path,
		OutputDir:  *outputDir,
		Limit:      *limit,
		SkipAI:     *skipAI,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	common.PrintBanner(a.Config, a.Logger)

	paths, err := a.Run(ctx, symbol, *skipAI)
	if err != nil {
		a.Logger.Error().Err(err).Str("symbol", symbol).Msg("Analysis failed")
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}

	for _, p := range paths {
		fmt.Println(p)
	}
}
