package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the configured career fields",
	RunE:  runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(_ *cobra.Command, _ []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	defaultKey := engine.DefaultField()
	for _, key := range engine.Fields() {
		cfg, _ := engine.FieldConfig(key)
		marker := ""
		if key == defaultKey {
			marker = " (default)"
		}
		fmt.Fprintf(os.Stdout, "%-20s %s%s\n", key, cfg.Name, marker)
	}
	return nil
}
