// internal/manifest/row.go
package manifest

// Header names of the run manifest, in the order the sequencing core exports them.
const (
	ColCell      = "cell"
	ColFlowCells = "flow_cells"
	ColColumn    = "column"
	ColRow       = "row"
	ColLibraryID = "library_id"
	ColSampleID  = "sample_id"
	ColIsControl = "is_control"
	ColIndexI5   = "index_i5_list"
	ColIndexI7   = "index_i7_list"
	ColFilePaths = "file_paths"
)

// Columns lists every required manifest column.
var Columns = []string{
	ColCell, ColFlowCells, ColColumn, ColRow, ColLibraryID,
	ColSampleID, ColIsControl, ColIndexI5, ColIndexI7, ColFilePaths,
}

// SourceRow is one manifest line.
type SourceRow struct {
	Line int // 1-based line in the source file

	Cell      string
	FlowCell  string
	Column    int
	Row       int
	LibraryID string
	SampleID  string
	IsControl bool
	IndexI5   string
	IndexI7   string
	FilePath  string
}
