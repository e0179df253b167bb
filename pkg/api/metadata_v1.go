// pkg/api/metadata_v1.go
package api

// MetadataV1 is the metadata.yaml document read by the alignment workflow.
// Keep fields, names, and types stable.
type MetadataV1 struct {
	Meta  MetaV1   `yaml:"meta" json:"meta"`
	Cells []CellV1 `yaml:"cells" json:"cells"`
}

// MetaV1 describes the document itself.
type MetaV1 struct {
	Type      string `yaml:"type" json:"type"`
	Version   string `yaml:"version" json:"version"`
	CellCount int    `yaml:"cell_count" json:"cell_count"`
}

// CellV1 is one sequenced cell.
type CellV1 struct {
	CellID     string   `yaml:"cell_id" json:"cell_id"`
	Column     int      `yaml:"column" json:"column"`
	Row        int      `yaml:"row" json:"row"`
	LibraryID  string   `yaml:"library_id" json:"library_id"`
	SampleID   string   `yaml:"sample_id" json:"sample_id"`
	IsControl  bool     `yaml:"is_control" json:"is_control"`
	PrimerI5   string   `yaml:"primer_i5" json:"primer_i5"`
	PrimerI7   string   `yaml:"primer_i7" json:"primer_i7"`
	Condition  string   `yaml:"condition" json:"condition"`
	SampleType string   `yaml:"sample_type" json:"sample_type"`
	Lanes      []LaneV1 `yaml:"lanes" json:"lanes"`
}

// LaneV1 is one FASTQ pair. Missing mates are empty strings, never omitted.
type LaneV1 struct {
	FlowcellID string `yaml:"flowcell_id" json:"flowcell_id"`
	LaneID     string `yaml:"lane_id" json:"lane_id"`
	Fastq1     string `yaml:"fastq1" json:"fastq1"`
	Fastq2     string `yaml:"fastq2" json:"fastq2"`
}
