// pkg/api/inputs_v1.go
package api

// InputsV1 is the inputs.json document handed to the alignment workflow.
type InputsV1 struct {
	Cells             []InputCellV1       `json:"cells"`
	AlignmentWorkflow AlignmentWorkflowV1 `json:"alignment_workflow"`
}

// InputCellV1 lists the lanes of one cell.
type InputCellV1 struct {
	CellID string   `json:"cell_id"`
	Lanes  []LaneV1 `json:"lanes"`
}

type AlignmentWorkflowV1 struct {
	DockerImage             string        `json:"docker_image"`
	MetadataYaml            string        `json:"metadata_yaml"`
	Reference               ReferenceV1   `json:"reference"`
	SupplementaryReferences []ReferenceV1 `json:"supplementary_references"`
	FastqFiles              []InputCellV1 `json:"fastq_files"`
}

// ReferenceV1 is a BWA-indexed genome: the FASTA plus its six index files.
type ReferenceV1 struct {
	GenomeName     string `json:"genome_name"`
	Reference      string `json:"reference"`
	ReferenceFaFai string `json:"reference_fa_fai"`
	ReferenceFaAmb string `json:"reference_fa_amb"`
	ReferenceFaAnn string `json:"reference_fa_ann"`
	ReferenceFaBwt string `json:"reference_fa_bwt"`
	ReferenceFaPac string `json:"reference_fa_pac"`
	ReferenceFaSa  string `json:"reference_fa_sa"`
}
