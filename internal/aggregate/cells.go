package aggregate

// Cell collects every lane recorded for one cell id.
type Cell struct {
	CellAggregate
	Lanes []LaneRecord
}

// ByCell folds aggregates sharing a cell id into one Cell, in first-seen
// order. Cell attributes come from the first aggregate of each id.
func ByCell(aggs []CellAggregate) []Cell {
	pos := make(map[string]int, len(aggs))
	var cells []Cell
	for _, a := range aggs {
		i, ok := pos[a.CellID]
		if !ok {
			i = len(cells)
			pos[a.CellID] = i
			cells = append(cells, Cell{CellAggregate: a})
		}
		cells[i].Lanes = append(cells[i].Lanes, a.Lane)
	}
	return cells
}
