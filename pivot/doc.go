// Package pivot computes, for a chamber's failed cloture votes, how much
// persuasion cost would have been required to flip each outcome, and
// aggregates those costs into a flip-count distribution.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - record.go: input record types (RollCallVote, MemberVote, Member) and keys
//   - pipeline.go: the stage ordering and validation policy
//   - pivotal.go: boundary-member selection within the minimal flipping coalition
//
// # Architecture
//
// The pipeline is a pure batch computation over in-memory tables; each stage
// consumes an immutable input and produces a new collection:
//
//	Threshold (threshold.go) → CandidateVote filter (filter.go) →
//	eligible-Nay join (join.go) → pivotal ranking (pivotal.go) →
//	cost (cost.go) → flip curve (aggregate.go) → summary (summary.go)
//
// Identical inputs always produce identical outputs; all tie-breaking uses
// explicit secondary sort keys.
//
// Table loading and result export live in the pivot/dataset sub-package.
package pivot
