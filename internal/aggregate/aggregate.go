// internal/aggregate/aggregate.go
package aggregate

import (
	"fmt"

	"go.uber.org/zap"

	"leapfastq/internal/classify"
	"leapfastq/internal/manifest"
)

// GroupKey identifies one lane of one cell.
type GroupKey struct {
	Cell     string
	FlowCell string
	Well     string
}

// LaneRecord holds the FASTQ pair of one lane. Either mate may be empty.
type LaneRecord struct {
	FlowCellID string
	LaneID     string
	Fastq1     string
	Fastq2     string
}

// CellAggregate is a cell's attributes plus the lane its GroupKey names.
type CellAggregate struct {
	Key GroupKey

	CellID     string
	Column     int
	Row        int
	LibraryID  string
	SampleID   string
	IsControl  bool
	PrimerI5   string
	PrimerI7   string
	Condition  string
	SampleType string

	Lane LaneRecord
}

// Options controls how rows become aggregates.
type Options struct {
	StoragePrefix string
	Condition     string
	SampleType    string
}

// Stats summarises one pass.
type Stats struct {
	Rows    int
	Created int
	Updated int
	Skipped int
}

// Grouper accumulates rows in a single forward pass.
type Grouper struct {
	opts  Options
	log   *zap.Logger
	index map[GroupKey]*CellAggregate
	order []GroupKey
	stats Stats
}

// NewGrouper returns an empty Grouper. A nil logger discards diagnostics.
func NewGrouper(opts Options, log *zap.Logger) *Grouper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Grouper{opts: opts, log: log, index: make(map[GroupKey]*CellAggregate)}
}

// Add folds one row into the grouping.
//
// The key is built before the existence check, so a row whose filename does
// not match still updates an aggregate whose well token is empty. Only
// matched rows can create aggregates.
func (g *Grouper) Add(row manifest.SourceRow) error {
	g.stats.Rows++

	storagePath, err := classify.RewritePath(row.FilePath, g.opts.StoragePrefix)
	if err != nil {
		return fmt.Errorf("line %d: %w", row.Line, err)
	}
	c := classify.Classify(row.FilePath)
	key := GroupKey{Cell: row.Cell, FlowCell: row.FlowCell, Well: c.Well}

	if agg, ok := g.index[key]; ok {
		if setMate(&agg.Lane, c.Mate, storagePath) {
			g.stats.Updated++
		}
		return nil
	}

	if !c.Matched {
		g.stats.Skipped++
		g.log.Warn("filename does not match FASTQ pattern, row skipped",
			zap.Int("line", row.Line),
			zap.String("cell", row.Cell),
			zap.String("path", row.FilePath))
		return nil
	}

	lane := LaneRecord{FlowCellID: row.FlowCell, LaneID: c.Well}
	if !setMate(&lane, c.Mate, storagePath) {
		g.stats.Skipped++
		g.log.Warn("unrecognised mate token, row skipped",
			zap.Int("line", row.Line),
			zap.String("cell", row.Cell),
			zap.String("mate", c.Mate))
		return nil
	}

	g.index[key] = &CellAggregate{
		Key:        key,
		CellID:     row.Cell,
		Column:     row.Column,
		Row:        row.Row,
		LibraryID:  row.LibraryID,
		SampleID:   row.SampleID,
		IsControl:  row.IsControl,
		PrimerI5:   row.IndexI5,
		PrimerI7:   row.IndexI7,
		Condition:  g.opts.Condition,
		SampleType: g.opts.SampleType,
		Lane:       lane,
	}
	g.order = append(g.order, key)
	g.stats.Created++
	g.log.Debug("new lane",
		zap.String("cell", key.Cell),
		zap.String("flowcell", key.FlowCell),
		zap.String("well", key.Well))
	return nil
}

// setMate writes path into the slot named by mate and reports whether it did.
func setMate(l *LaneRecord, mate, path string) bool {
	switch mate {
	case classify.Mate1:
		l.Fastq1 = path
	case classify.Mate2:
		l.Fastq2 = path
	default:
		return false
	}
	return true
}

// Aggregates returns copies of the aggregates in first-insertion order.
func (g *Grouper) Aggregates() []CellAggregate {
	out := make([]CellAggregate, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, *g.index[k])
	}
	return out
}

// Stats returns the counters of the pass so far.
func (g *Grouper) Stats() Stats { return g.stats }

// Group runs a full pass over rows and stops at the first error.
func Group(rows []manifest.SourceRow, opts Options, log *zap.Logger) ([]CellAggregate, Stats, error) {
	g := NewGrouper(opts, log)
	for _, r := range rows {
		if err := g.Add(r); err != nil {
			return nil, g.Stats(), err
		}
	}
	return g.Aggregates(), g.Stats(), nil
}
