// internal/writers/metadata.go
package writers

import (
	"io"

	"leapfastq/internal/aggregate"
	"leapfastq/pkg/api"
)

// Metadata document identity.
const (
	MetadataType    = "dlp_fastqs"
	MetadataVersion = "v1"
)

// BuildMetadata lays out one entry per cell id, in first-seen order.
func BuildMetadata(aggs []aggregate.CellAggregate) api.MetadataV1 {
	cells := aggregate.ByCell(aggs)
	out := api.MetadataV1{
		Meta: api.MetaV1{
			Type:      MetadataType,
			Version:   MetadataVersion,
			CellCount: len(cells),
		},
		Cells: make([]api.CellV1, 0, len(cells)),
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, api.CellV1{
			CellID:     c.CellID,
			Column:     c.Column,
			Row:        c.Row,
			LibraryID:  c.LibraryID,
			SampleID:   c.SampleID,
			IsControl:  c.IsControl,
			PrimerI5:   c.PrimerI5,
			PrimerI7:   c.PrimerI7,
			Condition:  c.Condition,
			SampleType: c.SampleType,
			Lanes:      toAPILanes(c.Lanes),
		})
	}
	return out
}

func toAPILanes(lanes []aggregate.LaneRecord) []api.LaneV1 {
	out := make([]api.LaneV1, 0, len(lanes))
	for _, l := range lanes {
		out = append(out, api.LaneV1{
			FlowcellID: l.FlowCellID,
			LaneID:     l.LaneID,
			Fastq1:     l.Fastq1,
			Fastq2:     l.Fastq2,
		})
	}
	return out
}

// WriteMetadata writes the metadata YAML for aggs to dest.
func WriteMetadata(dest string, stdout io.Writer, aggs []aggregate.CellAggregate) error {
	return WriteDocument(dest, stdout, "yaml", BuildMetadata(aggs))
}
