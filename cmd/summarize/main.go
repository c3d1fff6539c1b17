package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"rss-summarizer/api/dto"
	"rss-summarizer/config"
	"rss-summarizer/internal/app"
	"rss-summarizer/internal/logger"
	"rss-summarizer/models"
	"rss-summarizer/services"
)

// summarize runs the pipeline once for a single feed and prints the result.
//
//	summarize -url https://www.bleepingcomputer.com/feed/ -creativity low
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	feedURL := flag.String("url", cfg.Feed.DefaultURL, "rss feed url")
	creativityFlag := flag.String("creativity", string(models.CreativityMedium), "Low, Medium or High")
	asJSON := flag.Bool("json", false, "print the JSON response instead of text panels")
	flag.Parse()

	if strings.TrimSpace(*feedURL) == "" {
		fmt.Fprintln(os.Stderr, "Enter a rss feed url")
		os.Exit(2)
	}
	creativity, err := models.ParseCreativity(*creativityFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, cleanup, err := app.NewSummaryService(ctx, cfg)
	if err != nil {
		logger.Log.Errorf("failed to build summary service: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	report, err := svc.Run(ctx, strings.TrimSpace(*feedURL), creativity)
	if err != nil {
		logger.Log.Errorf("summarize %s: %v", *feedURL, err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dto.NewSummaryResponseDTO(report)); err != nil {
			logger.Log.Errorf("encode report: %v", err)
			os.Exit(1)
		}
		return
	}
	printReport(os.Stdout, report, cfg.Presenter.ShowFailures)
}

func printReport(w io.Writer, report *services.Report, showFailures bool) {
	for _, p := range report.Succeeded() {
		fmt.Fprintf(w, "== %s\n", p.Title)
		if p.Topic != "" {
			fmt.Fprintf(w, "topic:\n %s\n", p.Topic)
		}
		fmt.Fprintf(w, "summary:\n %s\n", p.Summary)
		fmt.Fprintf(w, "published:\n %s\n", p.PublishedRaw)
		fmt.Fprintf(w, "link: %s\n\n", p.Link)
	}
	if !showFailures {
		return
	}
	for _, f := range report.Failed() {
		fmt.Fprintf(w, "!! %s (%s): %v\n", f.Post.Title, f.Stage, f.Err)
	}
}
