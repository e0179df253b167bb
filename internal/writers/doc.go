// Package writers turns aggregated cells into the workflow's documents.
//
// Design:
//   • Writers own all presentation knowledge (YAML metadata, JSON inputs).
//   • Aggregation stays domain-only; writers never mutate what they are given.
//   • Documents go through pkg/api (v1) for a stable wire format.
package writers
