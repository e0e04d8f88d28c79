package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magazine233/lexstage/config"
	"github.com/magazine233/lexstage/stage"
)

func newMergeCmd(cfg *config.Config) *cobra.Command {
	var (
		seed string
		core []string
		rels []string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge lexicon and relations into a seed document",
		Long: `Merge shallow-copies an existing seed document and overwrites only
its verbs and rels top-level keys with the loaded lexicon and relation
vocabulary. Every other top-level key is preserved verbatim.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == "" {
				seed = cfg.Seed
			}
			if len(core) == 0 {
				core = cfg.Core
			}
			if len(rels) == 0 {
				rels = cfg.Rels
			}
			if out == "" {
				out = strings.TrimSuffix(seed, filepath.Ext(seed)) + ".merged.json"
			}

			coreFiles, err := stage.ExpandInputs(core)
			if err != nil {
				return err
			}
			relsFiles, err := stage.ExpandInputs(rels)
			if err != nil {
				return err
			}
			if err := stage.WriteMergedSeed(seed, out, coreFiles, relsFiles); err != nil {
				return err
			}
			fmt.Printf("Merged seed written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Seed document to merge into")
	cmd.Flags().StringSliceVar(&core, "core", nil, "Core verb lexicon inputs (paths or glob patterns)")
	cmd.Flags().StringSliceVar(&rels, "rels", nil, "Relation vocabulary inputs (paths or glob patterns)")
	cmd.Flags().StringVarP(&out, "out", "O", "", "Output path (default: <seed>.merged.json)")

	return cmd
}
