package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magazine233/lexstage/config"
	"github.com/magazine233/lexstage/stage"
	"github.com/magazine233/lexstage/taxonomy"
	"github.com/magazine233/lexstage/validate"
)

func newValidateCmd(cfg *config.Config) *cobra.Command {
	var (
		seed string
		core []string
		rels []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check referential integrity and duplicate terms",
		Long: `Validate loads a combined seed document (or a lexicon/relations file
pair with --core/--rels), checks every lex_ref and inverse_of reference,
required relation fields, and the three duplicate-term checks, and
prints the structured report. Exits non-zero when issues are found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				lex *taxonomy.Lexicon
				rel *taxonomy.Relations
				err error
			)
			switch {
			case len(core) > 0 || len(rels) > 0:
				if len(core) == 0 || len(rels) == 0 {
					return fmt.Errorf("--core and --rels must be given together")
				}
				var coreFiles, relsFiles []string
				if coreFiles, err = stage.ExpandInputs(core); err != nil {
					return err
				}
				if relsFiles, err = stage.ExpandInputs(rels); err != nil {
					return err
				}
				if lex, err = taxonomy.LoadLexiconFiles(coreFiles...); err != nil {
					return err
				}
				if rel, err = taxonomy.LoadRelationsFiles(relsFiles...); err != nil {
					return err
				}
			default:
				if seed == "" {
					seed = cfg.Seed
				}
				if lex, rel, err = taxonomy.LoadSeedFile(seed); err != nil {
					return err
				}
			}

			report := validate.Run(lex, rel)
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if report.Status != validate.StatusOK {
				return fmt.Errorf("validation found %d issues", report.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Combined seed document to validate")
	cmd.Flags().StringSliceVar(&core, "core", nil, "Core verb lexicon inputs (paths or glob patterns)")
	cmd.Flags().StringSliceVar(&rels, "rels", nil, "Relation vocabulary inputs (paths or glob patterns)")

	return cmd
}
