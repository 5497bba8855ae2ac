package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TickerRank/internal/analyzer"
	"TickerRank/internal/batch"
	"TickerRank/internal/collector"
	"TickerRank/internal/config"
	"TickerRank/internal/fundamentals"
	"TickerRank/internal/model"
	"TickerRank/internal/notifier"
	"TickerRank/internal/recorder"
	"TickerRank/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		cfgPath = flag.String("config", "", "config file path (default configs/config.yaml, or CONFIG_PATH)")
		ticker  = flag.String("ticker", "", "score a single ticker and print the factor breakdown")
		asOfStr = flag.String("asof", "", "analysis date YYYY-MM-DD (default today)")
		watch   = flag.Bool("watch", false, "keep running and execute batch runs on the cron schedule")
	)
	flag.Parse()

	if *cfgPath == "" {
		*cfgPath = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			*cfgPath = v
		}
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	asOf := time.Now()
	if *asOfStr != "" {
		asOf, err = time.Parse("2006-01-02", *asOfStr)
		if err != nil {
			log.Fatalf("[FATAL] parse -asof: %v", err)
		}
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "yahoo" {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	} else {
		fetcher = collector.NewPolygonFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey,
			cfg.Proxy, cfg.DataSource.RequestsPerMinute)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init fundamentals adapter (optional; absent source degrades scores)
	var fundSource fundamentals.Source
	if cfg.Fundamentals.BaseURL != "" {
		fundSource = fundamentals.NewHTTPSource(cfg.Fundamentals.BaseURL, cfg.Fundamentals.APIKey,
			cfg.Proxy, cfg.Fundamentals.RequestsPerMinute)
	} else {
		log.Println("[WARN] no fundamentals source configured, scoring on technicals only")
	}
	fund := fundamentals.NewAdapter(fundSource)

	an := analyzer.New(fetcher, fund)

	// Single-ticker mode
	if *ticker != "" {
		for _, horizon := range []struct {
			lookback int
			params   model.IndicatorParams
		}{
			{5, model.Params5},
			{20, model.Params20},
		} {
			bd, err := an.Analyze(*ticker, asOf, horizon.lookback, horizon.params)
			if err != nil {
				log.Fatalf("[FATAL] analyze %s: %v", *ticker, err)
			}
			fmt.Println(notifier.FormatBreakdown(bd))
		}
		return
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	runner := batch.NewRunner(an, rec, cfg.Batch.TickersFile, cfg.Batch.OutputCSV, cfg.Batch.StateFile)

	// One-shot batch run
	if !*watch {
		summary, err := runner.Run(asOf, true)
		if err != nil {
			log.Fatalf("[FATAL] batch run: %v", err)
		}
		printSummary(summary)
		return
	}

	// Watch mode
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if cfg.Telegram.MaxRetries > 0 {
		tn.MaxRetries = cfg.Telegram.MaxRetries
	}
	sched := scheduler.NewScheduler(ctx, runner, tn)
	if err := sched.Register(cfg.Schedule.BatchCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing batch now")
		go sched.RunNow()
	}

	log.Println("[INFO] TickerRank is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TickerRank stopped")
}

func printSummary(summary *model.RunSummary) {
	if summary == nil || len(summary.Results) == 0 {
		fmt.Println("No tickers scored successfully. Check for errors above.")
		return
	}
	if summary.Best5 != nil {
		fmt.Printf("Best 5-day performer : %s  →  %.1f/100\n", summary.Best5.Ticker, summary.Best5.Score5)
	}
	if summary.Best20 != nil {
		fmt.Printf("Best 20-day performer: %s  →  %.1f/100\n", summary.Best20.Ticker, summary.Best20.Score20)
	}
}
