package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/gcbaptista/tfidf-search-engine/api"
	"github.com/gcbaptista/tfidf-search-engine/config"
	"github.com/gcbaptista/tfidf-search-engine/internal/console"
	"github.com/gcbaptista/tfidf-search-engine/internal/engine"
	"github.com/gcbaptista/tfidf-search-engine/internal/metrics"
)

const version = "v1.0.0"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	serve      bool
	port       string
	configPath string
	maxResults int
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("search_engine", pflag.ContinueOnError)
	flagSet.SetOutput(stdout)
	flagSet.BoolVar(&opts.serve, "serve", false, "Run the HTTP API instead of answering one query from stdin")
	flagSet.StringVar(&opts.port, "port", "", "Port to run the server on (default 8080)")
	flagSet.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	flagSet.IntVar(&opts.maxResults, "max-results", 0, "Maximum number of documents returned per query (default 5)")
	help := flagSet.BoolP("help", "h", false, "Show help message")
	showVersion := flagSet.Bool("version", false, "Show version information")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if *help {
		printHelp(stdout, flagSet)
		return nil
	}
	if *showVersion {
		fmt.Fprintf(stdout, "TF-IDF Search Engine %s\n", version)
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.serve {
		return serve(cfg)
	}
	return console.Run(stdin, stdout, cfg.Index)
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Command-line flags override file values
	if opts.port != "" {
		cfg.Server.Port = opts.port
	}
	if opts.maxResults != 0 {
		cfg.Index.MaxResultDocumentCount = opts.maxResults
		if problems := cfg.Index.Validate(); len(problems) > 0 {
			return nil, fmt.Errorf("invalid index settings: %v", problems)
		}
	}
	return cfg, nil
}

func serve(cfg *config.Config) error {
	m := metrics.New()
	searchEngine := engine.NewEngine(m)
	if err := searchEngine.CreateIndex(cfg.Index); err != nil {
		return fmt.Errorf("failed to create index '%s': %w", cfg.Index.Name, err)
	}

	router := gin.Default()
	api.SetupRoutes(router, searchEngine, api.Options{Metrics: m, MaxBodySize: cfg.Server.MaxBodySize})

	log.Printf("Starting server on port %s...", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "TF-IDF Search Engine - ranks documents against a query with TF-IDF\n\n")
	fmt.Fprintf(w, "Usage: search_engine [options]\n\n")
	fmt.Fprintf(w, "Without --serve, stdin holds one line of stop words, a line with the\n")
	fmt.Fprintf(w, "document count N, N document lines and a query line.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, flagSet.FlagUsages())
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  search_engine < input.txt                 # Answer the query in input.txt\n")
	fmt.Fprintf(w, "  search_engine --max-results 10 < in.txt   # Return up to 10 documents\n")
	fmt.Fprintf(w, "  search_engine --serve --port 9000         # Start the HTTP API on port 9000\n")
	fmt.Fprintf(w, "  search_engine --serve --config app.yaml   # Use a configuration file\n")
}
