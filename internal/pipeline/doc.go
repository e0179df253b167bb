// Package pipeline runs one manifest through ingest, grouping and export.
//
// Each stage fails fast; there is no partial output mode. The metadata
// document is written before inputs.json, which points at it.
package pipeline
