// internal/writers/inputs.go
package writers

import (
	"io"

	"leapfastq/internal/aggregate"
	"leapfastq/internal/reference"
	"leapfastq/pkg/api"
)

// Workflow is the fixed part of inputs.json.
type Workflow struct {
	DockerImage   string
	MetadataYaml  string // where the workflow will find metadata.yaml
	ReferenceRoot string
	Reference     reference.Genome
	Supplementary []reference.Genome
}

// BuildInputs combines the per-cell lanes with the workflow descriptor.
func BuildInputs(aggs []aggregate.CellAggregate, wf Workflow) api.InputsV1 {
	cells := aggregate.ByCell(aggs)
	in := api.InputsV1{
		Cells: make([]api.InputCellV1, 0, len(cells)),
		AlignmentWorkflow: api.AlignmentWorkflowV1{
			DockerImage:             wf.DockerImage,
			MetadataYaml:            wf.MetadataYaml,
			Reference:               toAPIReference(wf.Reference.Resolve(wf.ReferenceRoot)),
			SupplementaryReferences: make([]api.ReferenceV1, 0, len(wf.Supplementary)),
			FastqFiles:              []api.InputCellV1{},
		},
	}
	for _, c := range cells {
		in.Cells = append(in.Cells, api.InputCellV1{CellID: c.CellID, Lanes: toAPILanes(c.Lanes)})
	}
	for _, g := range wf.Supplementary {
		in.AlignmentWorkflow.SupplementaryReferences = append(in.AlignmentWorkflow.SupplementaryReferences,
			toAPIReference(g.Resolve(wf.ReferenceRoot)))
	}
	return in
}

func toAPIReference(p reference.Paths) api.ReferenceV1 {
	return api.ReferenceV1{
		GenomeName:     p.Name,
		Reference:      p.Fasta,
		ReferenceFaFai: p.Fai,
		ReferenceFaAmb: p.Amb,
		ReferenceFaAnn: p.Ann,
		ReferenceFaBwt: p.Bwt,
		ReferenceFaPac: p.Pac,
		ReferenceFaSa:  p.Sa,
	}
}

// WriteInputs writes inputs.json for aggs and wf to dest.
func WriteInputs(dest string, stdout io.Writer, aggs []aggregate.CellAggregate, wf Workflow) error {
	return WriteDocument(dest, stdout, "json", BuildInputs(aggs, wf))
}
