package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/observability"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract known skills from resume text",
	Long:  "Scans extracted resume text against the skill taxonomy and reports every canonical skill found, with proficiency, duration, and certification evidence where present.",
	RunE:  runExtractSkills,
}

var (
	extractSkillsResume string
	extractSkillsOutput string
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractSkillsResume, "resume", "r", "", "Path to extracted resume text file (required unless set in config)")
	extractSkillsCmd.Flags().StringVarP(&extractSkillsOutput, "out", "o", "", "Path to write the skill set JSON (optional)")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	text, err := readResume(firstNonEmpty(extractSkillsResume, cliConfig.Resume))
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	extracted := engine.ExtractSkills(text)

	if cliConfig.Verbose {
		observability.NewPrinter(os.Stdout).PrintExtractedSkills(extracted)
	} else {
		payload, err := json.MarshalIndent(extracted, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal skills to JSON: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(payload))
	}

	if extractSkillsOutput != "" {
		if err := writeJSON(extractSkillsOutput, extracted); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Skills written to %s\n", extractSkillsOutput)
	}

	return nil
}
