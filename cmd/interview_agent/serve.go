package main

import (
	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/extraction"
	"github.com/jonathan/interview-prep/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis and question ranking.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveRoles      string
	serveQuestions  string
	serveVocabulary string
	serveConfig     string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveRoles, "roles", "", "Path to role catalog (CSV or JSON)")
	serveCmd.Flags().StringVar(&serveQuestions, "questions", "", "Path to question catalog (CSV or JSON)")
	serveCmd.Flags().StringVar(&serveVocabulary, "vocabulary", "", "Path to skill vocabulary file (built-in default)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig, config.Config{
		Roles:      serveRoles,
		Questions:  serveQuestions,
		Vocabulary: serveVocabulary,
		Port:       servePort,
	})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	cat, vocab, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		Analyzer: analyzer.New(cat, vocab, &extraction.AcronymAnnotator{}),
		Catalog:  cat,
	})

	return srv.Start()
}
