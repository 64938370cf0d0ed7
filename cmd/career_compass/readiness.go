package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/types"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Compute readiness for a target career role",
	Long:  "Matches a skill set against a target role's core, technical, and tool requirements and reports a readiness score with gaps and next actions. Skills can be given directly or extracted from a resume file.",
	RunE:  runReadiness,
}

var (
	readinessInterest string
	readinessLevel    string
	readinessSkills   string
	readinessResume   string
	readinessOutput   string
)

func init() {
	readinessCmd.Flags().StringVarP(&readinessInterest, "interest", "i", "", "Career interest key, see 'roles' command (required unless set in config)")
	readinessCmd.Flags().StringVar(&readinessLevel, "role-level", "", "Role ladder rung: beginner, junior, intermediate, senior, lead (default beginner)")
	readinessCmd.Flags().StringVarP(&readinessSkills, "skills", "s", "", "Comma-separated skill list")
	readinessCmd.Flags().StringVarP(&readinessResume, "resume", "r", "", "Resume text file to extract skills from, used when --skills is empty")
	readinessCmd.Flags().StringVarP(&readinessOutput, "out", "o", "", "Path to write the readiness JSON (optional)")

	rootCmd.AddCommand(readinessCmd)
}

func runReadiness(_ *cobra.Command, _ []string) error {
	interest := firstNonEmpty(readinessInterest, cliConfig.Interest)
	if interest == "" {
		return fmt.Errorf("no interest given: pass --interest or set \"interest\" in the config file")
	}

	level, err := types.ParseRoleLevel(firstNonEmpty(readinessLevel, cliConfig.Role, "beginner"))
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	userSkills := splitSkills(readinessSkills)
	if len(userSkills) == 0 {
		resumePath := firstNonEmpty(readinessResume, cliConfig.Resume)
		if resumePath == "" {
			return fmt.Errorf("no skills given: pass --skills or --resume")
		}
		text, err := readResume(resumePath)
		if err != nil {
			return err
		}
		userSkills = engine.ExtractSkills(text).Names()
	}

	components := engine.Readiness(interest, level, userSkills)

	if cliConfig.Verbose {
		observability.NewPrinter(os.Stdout).PrintReadiness(&components)
	} else {
		fmt.Fprintf(os.Stdout, "%s readiness: %d/100 (confidence %s)\n",
			components.Role.Title, components.ReadinessScore, components.ConfidenceLevel)
	}
	if components.RoleFallback {
		fmt.Fprintf(os.Stderr, "Warning: unknown interest %q, using fallback role %q\n", interest, components.Role.Title)
	}

	if readinessOutput != "" {
		if err := writeJSON(readinessOutput, components); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Readiness written to %s\n", readinessOutput)
	}

	return nil
}
