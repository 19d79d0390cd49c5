// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-binder/internal/pipeline"
)

const (
	defaultGroupAName = "group_a.pdf"
	defaultGroupBName = "group_b.pdf"
)

var groupCmd = &cobra.Command{
	Use:   "group [files...]",
	Short: "Merge the inputs into two grouped PDFs",
	Long: `Group partitions the included inputs into buckets A and B and merges
each bucket into its own PDF.

By default items route by their manual group tag (set in the manifest);
group A holds the tagged items, group B everything else. With
--keywords-a, items route by substring match of the item name against
the comma-separated keyword list instead; unmatched items land in B.`,
	RunE: runGroup,
}

func init() {
	groupCmd.Flags().String("output-a", "", "group A output filename (default "+defaultGroupAName+")")
	groupCmd.Flags().String("output-b", "", "group B output filename (default "+defaultGroupBName+")")
	groupCmd.Flags().String("manifest", "", "YAML session manifest instead of file arguments")
	groupCmd.Flags().Bool("manual", false, "route by manual group tags (the default)")
	groupCmd.Flags().String("keywords-a", "", "comma-separated keywords routing items to group A")
	groupCmd.Flags().String("keywords-b", "", "comma-separated keywords for group B (informational; B is the default bucket)")
	groupCmd.Flags().Bool("case-sensitive", false, "match keywords case-sensitively")
	groupCmd.Flags().Bool("preview", false, "also write inline-embedded HTML previews")

	rootCmd.AddCommand(groupCmd)
}

func runGroup(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	manual, _ := cmd.Flags().GetBool("manual")
	keywordsA, _ := cmd.Flags().GetString("keywords-a")
	keywordsB, _ := cmd.Flags().GetString("keywords-b")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")

	if manual && (keywordsA != "" || keywordsB != "") {
		return fmt.Errorf("--manual and keyword flags are mutually exclusive")
	}

	policy := pipeline.ManualPolicy()
	if keywordsA != "" || keywordsB != "" {
		policy = pipeline.KeywordPolicy(keywordsA, keywordsB, caseSensitive)
	}

	s, manifest, err := loadSession(cmd, args, cfg)
	if err != nil {
		return err
	}

	gen := newGenerator(cfg)
	result := gen.BuildGrouped(s, policy, os.Stdout)

	nameA, _ := cmd.Flags().GetString("output-a")
	nameB, _ := cmd.Flags().GetString("output-b")
	if manifest != nil {
		if nameA == "" {
			nameA = manifest.OutputA
		}
		if nameB == "" {
			nameB = manifest.OutputB
		}
	}
	if nameA == "" {
		nameA = defaultGroupAName
	}
	if nameB == "" {
		nameB = defaultGroupBName
	}

	previewWanted, _ := cmd.Flags().GetBool("preview")

	for _, out := range []struct {
		label  string
		name   string
		result pipelineResult
	}{
		{"A", nameA, result.A},
		{"B", nameB, result.B},
	} {
		if out.result.Empty() {
			fmt.Printf("group %s: no items; nothing was written\n", out.label)
			continue
		}
		if err := os.WriteFile(out.name, out.result.PDF, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out.name, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", out.name, len(out.result.PDF))
		if previewWanted {
			if err := writePreview(out.name, out.result.PDF, defaultPreviewPx); err != nil {
				return err
			}
		}
	}
	return nil
}

// pipelineResult is a local alias to keep the output loop readable.
type pipelineResult = pipeline.BuildResult
