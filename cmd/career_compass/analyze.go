package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/pipeline"
	"github.com/jonathan/career-compass/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a career field",
	Long:  "Runs the full analysis pipeline over extracted resume text: ATS compatibility, skill depth, and experience quality, blended into one readiness report.",
	RunE:  runAnalyze,
}

var (
	analyzeResume string
	analyzeField  string
	analyzeLevel  string
	analyzeAsOf   string
	analyzeOutput string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to extracted resume text file (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzeField, "field", "f", "", "Target field key, see 'fields' command (default from config)")
	analyzeCmd.Flags().StringVarP(&analyzeLevel, "level", "l", "", "Experience level: entry, mid, senior (default mid)")
	analyzeCmd.Flags().StringVar(&analyzeAsOf, "as-of", "", "Scoring date YYYY-MM-DD (default today)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to write the report JSON (optional)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	text, err := readResume(firstNonEmpty(analyzeResume, cliConfig.Resume))
	if err != nil {
		return err
	}

	level, err := types.ParseExperienceLevel(firstNonEmpty(analyzeLevel, cliConfig.Level, "mid"))
	if err != nil {
		return err
	}

	asOf, err := parseAsOf(firstNonEmpty(analyzeAsOf, cliConfig.AsOf))
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	fieldKey := firstNonEmpty(analyzeField, cliConfig.Field, engine.DefaultField())
	report, err := engine.Analyze(cmd.Context(), pipeline.AnalyzeRequest{
		ResumeText: text,
		FieldKey:   fieldKey,
		Level:      level,
		AsOf:       asOf,
	})
	if err != nil {
		return err
	}

	if cliConfig.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintExtractedSkills(engine.ExtractSkills(text))
		printer.PrintReport(&report)
	} else {
		fmt.Fprintf(os.Stdout, "Overall score: %d/100 (%s)\n", report.OverallScore, report.Grade)
	}
	if report.Meta.FieldFallback {
		fmt.Fprintf(os.Stderr, "Warning: unknown field %q, scored against default field %q\n", fieldKey, report.Meta.FieldKey)
	}

	if analyzeOutput != "" {
		if err := writeJSON(analyzeOutput, report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", analyzeOutput)
	}

	return nil
}
