package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"

	"TrendSpotter/internal/analysis"
	"TrendSpotter/internal/collector"
	"TrendSpotter/internal/config"
	"TrendSpotter/internal/logging"
	"TrendSpotter/internal/notifier"
	"TrendSpotter/internal/scheduler"
)

func main() {
	ticker := flag.String("ticker", "", "analyze this ticker once and exit")
	compare := flag.String("compare", "", "second ticker; with -ticker, run a correlation analysis")
	asJSON := flag.Bool("json", false, "print the analysis result as JSON")
	mock := flag.Bool("mock", false, "use generated data instead of Gemini")
	flag.Parse()

	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *mock && cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = "mock"
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *ticker != "" {
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("config validation")
		}
		fetcher, err := newFetcher(ctx, cfg, *mock)
		if err != nil {
			log.Fatal().Err(err).Msg("init fetcher")
		}
		an := analysis.NewAnalyzer(fetcher, cfg.Params())
		if err := runOnce(ctx, os.Stdout, an, *ticker, *compare, *asJSON); err != nil {
			fmt.Fprintln(os.Stderr, notifier.StripTags(notifier.FormatError(err)))
			os.Exit(1)
		}
		return
	}

	log.Info().Msg("TrendSpotter starting...")
	if err := cfg.ValidateBot(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	fetcher, err := newFetcher(ctx, cfg, *mock)
	if err != nil {
		log.Fatal().Err(err).Msg("init fetcher")
	}
	log.Info().Str("source", fetcher.Name()).Msg("fetcher ready")

	an := analysis.NewAnalyzer(fetcher, cfg.Params())
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	sched := scheduler.NewScheduler(ctx, an, tn, cfg.Schedule.Watchlist, cfg.Schedule.Pairs)
	if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info().Msg("telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, running watchlist now")
		go sched.RunWatchNow()
	}

	log.Info().Msg("TrendSpotter is running. Press Ctrl+C to stop.")
	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping...")
}

func newFetcher(ctx context.Context, cfg *config.Config, mock bool) (collector.Fetcher, error) {
	if mock {
		return &collector.MockFetcher{Price: 100}, nil
	}
	return collector.NewGeminiFetcher(ctx, collector.GeminiOptions{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		Proxy:             cfg.Proxy,
		Timeout:           cfg.Gemini.Timeout,
		MaxRetries:        cfg.Gemini.MaxRetries,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
	})
}

func runOnce(ctx context.Context, w io.Writer, an *analysis.Analyzer, ticker1, ticker2 string, asJSON bool) error {
	out, err := an.Analyze(ctx, ticker1, ticker2)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	_, err = fmt.Fprint(w, notifier.StripTags(notifier.FormatOutcome(out)))
	return err
}
