// Package taxonomy loads and indexes the two source vocabularies that make
// up the lexical taxonomy: the core verb lexicon (canonical verbs with
// synonym lists) and the relation vocabulary (semantic relations that each
// reference one lexicon verb and may declare inverse relations).
//
// Entries are read-only once loaded. Structural problems (unparseable
// documents, a verb without an id, a rels value that is not a mapping) fail
// the load; data-quality problems (dangling references, duplicate terms)
// are left in place for the resolve and validate packages to report.
package taxonomy
