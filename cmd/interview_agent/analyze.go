package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/extraction"
	"github.com/jonathan/interview-prep/internal/ingestion"
	"github.com/jonathan/interview-prep/internal/observability"
	"github.com/jonathan/interview-prep/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job role",
	Long:  "Extracts skills from a resume file, scores the match against a job role's required skills, and ranks the catalog's interview questions for that role by relevance to the resume.",
	RunE:  runAnalyze,
}

var (
	analyzeResume     string
	analyzeRole       string
	analyzeCategory   string
	analyzeTopN       int
	analyzeOutput     string
	analyzeRoles      string
	analyzeQuestions  string
	analyzeVocabulary string
	analyzeConfig     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf, .docx, .html or .txt) (required)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Job role to analyze against (required)")
	analyzeCmd.Flags().StringVar(&analyzeCategory, "category", "", "Restrict ranking to one question category (Technical, Behavioral, Scenario-based)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "Number of questions per category (default 10)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to write ranked questions as CSV (optional)")
	analyzeCmd.Flags().StringVar(&analyzeRoles, "roles", "", "Path to role catalog (CSV or JSON)")
	analyzeCmd.Flags().StringVar(&analyzeQuestions, "questions", "", "Path to question catalog (CSV or JSON)")
	analyzeCmd.Flags().StringVar(&analyzeVocabulary, "vocabulary", "", "Path to skill vocabulary file (built-in default)")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the full analysis breakdown")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(analyzeConfig, config.Config{
		Roles:      analyzeRoles,
		Questions:  analyzeQuestions,
		Vocabulary: analyzeVocabulary,
		TopN:       analyzeTopN,
		Category:   analyzeCategory,
		Verbose:    analyzeVerbose,
	})
	if err != nil {
		return err
	}

	if cfg.Category != "" && !types.ValidCategory(types.Category(cfg.Category)) {
		return &types.InvalidCategoryError{Category: cfg.Category}
	}

	cat, vocab, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// 1. Extract resume text from the input file
	data, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", analyzeResume, err)
	}

	resumeText, err := ingestion.ExtractText(filepath.Base(analyzeResume), data)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	// 2. Run the analysis
	a := analyzer.New(cat, vocab, &extraction.AcronymAnnotator{})
	analysis, err := a.Analyze(context.Background(), resumeText, analyzeRole, types.Category(cfg.Category), cfg.TopN)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	// 3. Write CSV output if requested
	if analyzeOutput != "" {
		if err := writeAnalysisCSV(analyzeOutput, analysis); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote ranked questions to %s\n", analyzeOutput)
	}

	// 4. Print results
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchReport(&analysis.Match)
	if cfg.Verbose || analyzeVerbose {
		printer.PrintSkills(analysis.Skills)
		printer.PrintStats(analysis)
	}
	printer.PrintQuestions(analysis.Questions)

	fmt.Fprintf(os.Stdout, "\n%s\n", analysis.Recommendation)

	return nil
}

func writeAnalysisCSV(path string, analysis *types.Analysis) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer f.Close()

	if err := analyzer.WriteCSV(f, analysis); err != nil {
		return fmt.Errorf("failed to write CSV to %s: %w", path, err)
	}

	return nil
}
