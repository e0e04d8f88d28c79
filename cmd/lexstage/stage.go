package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/magazine233/lexstage/config"
	"github.com/magazine233/lexstage/stage"
)

func newStageCmd(cfg *config.Config) *cobra.Command {
	var (
		core      []string
		rels      []string
		outDir    string
		format    string
		dropVerbs bool
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Resolve relations against the lexicon and write staged previews",
		Long: `Stage loads the core verb lexicon and the relation vocabulary,
resolves each relation's verbs_resolved set, and writes three artifacts
to the output directory: the resolved relation preview, the lexicon
echo, and the issue report. Data-quality issues are recorded in the
report; only load and parse failures abort the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(core) == 0 {
				core = cfg.Core
			}
			if len(rels) == 0 {
				rels = cfg.Rels
			}
			if outDir == "" {
				outDir = cfg.OutDir
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Format
			}
			if !cmd.Flags().Changed("drop-verbs") {
				dropVerbs = cfg.DropVerbs
			}

			f, err := stage.ParseFormat(format)
			if err != nil {
				return err
			}
			stager := stage.New(outDir, f, dropVerbs)

			run := func() error {
				coreFiles, err := stage.ExpandInputs(core)
				if err != nil {
					return err
				}
				relsFiles, err := stage.ExpandInputs(rels)
				if err != nil {
					return err
				}
				summary, err := stager.Run(coreFiles, relsFiles)
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			if err := run(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			files, err := stage.ExpandInputs(append(append([]string{}, core...), rels...))
			if err != nil {
				return err
			}
			return stage.Watch(cmd.Context(), files, 500*time.Millisecond, run, slog.Default())
		},
	}

	cmd.Flags().StringSliceVar(&core, "core", nil, "Core verb lexicon inputs (paths or glob patterns)")
	cmd.Flags().StringSliceVar(&rels, "rels", nil, "Relation vocabulary inputs (paths or glob patterns)")
	cmd.Flags().StringVarP(&outDir, "outdir", "o", "", "Output directory for staged artifacts")
	cmd.Flags().StringVar(&format, "format", "json", "Artifact format (json, yaml)")
	cmd.Flags().BoolVar(&dropVerbs, "drop-verbs", false, "Drop the legacy verbs field from relation previews")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-stage whenever a source document changes")

	return cmd
}
