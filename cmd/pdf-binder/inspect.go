// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [files...]",
	Short: "Show how a session resolves without generating anything",
	Long: `Inspect ingests the inputs and prints the resolved session view in
generation order: kind, inclusion, order key, and group tag per item.
Useful for checking a manifest before a build.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("manifest", "", "YAML session manifest instead of file arguments")
	inspectCmd.Flags().Bool("json", false, "output the resolved view as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	s, _, err := loadSession(cmd, args, cfg)
	if err != nil {
		return err
	}

	view := s.View()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding view: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(view) == 0 {
		fmt.Println("session is empty")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s %-14s %-8s %-5s %s\n", "ORDER", "KIND", "INCLUDE", "GROUP", "NAME")
	for _, it := range view {
		fmt.Fprintf(os.Stdout, "%-5d %-14s %-8t %-5s %s\n", it.Order, it.Kind, it.Include, it.Group, it.Name)
	}
	return nil
}
