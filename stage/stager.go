// Package stage writes the reviewable artifacts of a resolution run and
// merges the source vocabularies into a seed document. Staging is pure
// serialization: it loads, resolves, and writes, adding no logic of its
// own beyond the shared run summary that lets downstream tools correlate
// the three artifacts.
package stage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/magazine233/lexstage/resolve"
	"github.com/magazine233/lexstage/taxonomy"
)

// Artifact base names. The format extension is appended at write time.
const (
	RelsPreviewName    = "rels_resolved.preview"
	LexiconPreviewName = "core_verb_lexicon.preview"
	ReportName         = "stage_report"
)

// Summary describes one staging run. All three artifacts embed the same
// summary, run id included, so a review can be correlated end to end.
type Summary struct {
	GeneratedAt string         `json:"generated_at" yaml:"generated_at"`
	RunID       string         `json:"run_id" yaml:"run_id"`
	CoreFiles   []string       `json:"core_files" yaml:"core_files"`
	RelsFiles   []string       `json:"rels_files" yaml:"rels_files"`
	RelsCount   int            `json:"rels_count" yaml:"rels_count"`
	VerbsCount  int            `json:"verbs_count" yaml:"verbs_count"`
	Issues      map[string]int `json:"issues" yaml:"issues"`
}

type relsArtifact struct {
	Rels    []*taxonomy.RelationEntry `json:"rels" yaml:"rels"`
	Summary *Summary                  `json:"summary" yaml:"summary"`
}

type lexiconArtifact struct {
	Verbs   []*taxonomy.VerbEntry `json:"verbs" yaml:"verbs"`
	Summary *Summary              `json:"summary" yaml:"summary"`
}

type reportArtifact struct {
	Summary      *Summary        `json:"summary" yaml:"summary"`
	IssuesDetail *resolve.Issues `json:"issues_detail" yaml:"issues_detail"`
}

// Stager writes staged preview artifacts for one resolution run.
type Stager struct {
	OutDir    string
	Format    Format
	DropVerbs bool

	// Now and NewRunID are injectable so tests get reproducible output.
	Now      func() time.Time
	NewRunID func() string
	Logger   *slog.Logger
}

// New creates a Stager with wall-clock time and random run ids.
func New(outDir string, format Format, dropVerbs bool) *Stager {
	return &Stager{
		OutDir:    outDir,
		Format:    format,
		DropVerbs: dropVerbs,
		Now:       time.Now,
		NewRunID:  uuid.NewString,
		Logger:    slog.Default(),
	}
}

// Run loads the lexicon and relation files, resolves every relation, and
// writes the three artifacts: the resolved relation preview, the lexicon
// echo, and the issue report. Data-quality issues never fail the run;
// only load, parse, and write failures do, and those fail before any
// artifact is written.
func (s *Stager) Run(coreFiles, relsFiles []string) (*Summary, error) {
	lex, err := taxonomy.LoadLexiconFiles(coreFiles...)
	if err != nil {
		return nil, err
	}
	rels, err := taxonomy.LoadRelationsFiles(relsFiles...)
	if err != nil {
		return nil, err
	}

	result := resolve.Relations(lex, rels, s.DropVerbs)

	summary := &Summary{
		GeneratedAt: s.Now().UTC().Format(time.RFC3339),
		RunID:       s.NewRunID(),
		CoreFiles:   coreFiles,
		RelsFiles:   relsFiles,
		RelsCount:   len(result.Relations),
		VerbsCount:  lex.Len(),
		Issues:      result.Issues.Counts(),
	}

	if err := os.MkdirAll(s.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	artifacts := []struct {
		name string
		body any
	}{
		{RelsPreviewName, &relsArtifact{Rels: result.Relations, Summary: summary}},
		{LexiconPreviewName, &lexiconArtifact{Verbs: lex.Entries, Summary: summary}},
		{ReportName, &reportArtifact{Summary: summary, IssuesDetail: &result.Issues}},
	}
	for _, artifact := range artifacts {
		if err := s.write(artifact.name, artifact.body); err != nil {
			return nil, err
		}
	}

	s.Logger.Info("staged previews written",
		"outdir", s.OutDir,
		"rels", summary.RelsCount,
		"verbs", summary.VerbsCount,
		"issues", result.Issues.Total(),
		"run_id", summary.RunID)
	return summary, nil
}

func (s *Stager) write(name string, body any) error {
	info, ok := GetFormatInfo(s.Format)
	if !ok {
		return fmt.Errorf("unknown format: %s", s.Format)
	}
	data, err := s.Format.Encode(body)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.OutDir, name+info.Extension)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
