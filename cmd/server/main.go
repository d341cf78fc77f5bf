package main

import (
	"fmt"
	"os"
	"time"

	"tutorchat/internal/api"
	"tutorchat/internal/config"
	"tutorchat/internal/llm"
	redisdb "tutorchat/internal/redis"
	"tutorchat/internal/tools"
)

func main() {
	fmt.Println("Starting up")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	completer, err := llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "LLM client error: %v\n", err)
		os.Exit(1)
	}
	searcher := tools.NewSearchClient(cfg.SerpAPI.APIKey, 30*time.Second)
	fetcher := tools.NewFetcher(cfg.Fetch.Timeout)
	cache := redisdb.NewPreviewCache(redisdb.NewClient(cfg))

	r := api.SetupRouter(completer, searcher, fetcher, cache)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s\n", addr)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Shutting down")
}
