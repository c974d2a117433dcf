package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"newsquiz/internal/api"
	"newsquiz/internal/config"
	"newsquiz/internal/db"
	"newsquiz/internal/llm"
	"newsquiz/internal/mailer"
	"newsquiz/internal/news"
	"newsquiz/internal/pipeline"
	"newsquiz/internal/quiz"
	redisdb "newsquiz/internal/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gdb, err := db.Init(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := redisdb.NewClient(cfg)

	store := quiz.NewStore(gdb, log)
	generator := quiz.NewGenerator(
		llm.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model),
		store,
		log,
	)
	scraper := news.NewScraper(cfg.NewsURL, log)
	digest := news.NewDigest(
		llm.NewClient(cfg.Perplexity.BaseURL, cfg.Perplexity.APIKey, cfg.Perplexity.Model),
	)
	notifier := mailer.New(cfg, log)
	tracker := pipeline.NewRedisTracker(rdb)

	runner := pipeline.NewRunner(
		scraper,
		digest,
		generator,
		notifier,
		tracker,
		cfg.NewsSource,
		cfg.NumQuestions,
		log,
	)

	worker := pipeline.NewWorker(cfg.TriggerURL, log)
	go worker.Start()
	defer worker.Stop()

	r := api.SetupRouter(runner, tracker, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Infof("[Main] starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
