package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/pipeline"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the configured career interests and role ladders",
	RunE:  runRoles,
}

var rolesInterest string

func init() {
	rolesCmd.Flags().StringVarP(&rolesInterest, "interest", "i", "", "Show the full ladder for one interest")

	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	if rolesInterest != "" {
		return printLadder(engine, rolesInterest)
	}

	for _, interest := range engine.Interests() {
		fmt.Fprintf(os.Stdout, "%-18s %s\n", interest, engine.InterestName(interest))
	}
	return nil
}

func printLadder(engine *pipeline.Engine, interest string) error {
	found := false
	for _, profile := range engine.Profiles() {
		if profile.Interest != interest {
			continue
		}
		found = true
		fmt.Fprintf(os.Stdout, "%-14s %-40s market demand: %s\n",
			profile.Level, profile.Title, profile.MarketDemand)
	}
	if !found {
		return fmt.Errorf("unknown interest %q, run 'roles' for the configured list", interest)
	}
	return nil
}
