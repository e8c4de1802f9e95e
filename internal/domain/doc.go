// Package domain contains the core entities of the vocabulary trainer:
// vocabulary items, their spaced-repetition schedule state, per-skill
// performance counters, drill sessions, and derived progress statistics.
// The scheduling decision logic itself lives in the subpackages srs,
// review, queue, and progress; this package only defines the shapes they
// operate on, together with validation rules.
package domain
