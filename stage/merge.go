package stage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/magazine233/lexstage/taxonomy"
)

// MergeSeed combines the lexicon and relation documents into an existing
// seed document: the seed is shallow-copied and only its verbs and rels
// top-level keys are overwritten. Every other key survives verbatim as
// raw JSON. There is no deep merge and no conflict detection beyond the
// key overwrite.
func MergeSeed(seedPath string, coreFiles, relsFiles []string) ([]byte, error) {
	seedData, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var seed map[string]json.RawMessage
	if err := json.Unmarshal(seedData, &seed); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", seedPath, err)
	}

	lex, err := taxonomy.LoadLexiconFiles(coreFiles...)
	if err != nil {
		return nil, err
	}
	rels, err := taxonomy.LoadRelationsFiles(relsFiles...)
	if err != nil {
		return nil, err
	}

	verbs, err := json.Marshal(lex.Entries)
	if err != nil {
		return nil, fmt.Errorf("encode verbs: %w", err)
	}
	relsJSON, err := json.Marshal(rels.All())
	if err != nil {
		return nil, fmt.Errorf("encode rels: %w", err)
	}
	seed["verbs"] = verbs
	seed["rels"] = relsJSON

	out, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode merged seed: %w", err)
	}
	return append(out, '\n'), nil
}

// WriteMergedSeed merges and writes the combined seed document.
func WriteMergedSeed(seedPath, outPath string, coreFiles, relsFiles []string) error {
	merged, err := MergeSeed(seedPath, coreFiles, relsFiles)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, merged, 0o644); err != nil {
		return fmt.Errorf("write merged seed: %w", err)
	}
	return nil
}
