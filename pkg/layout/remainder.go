package layout

// Distribute spreads the row's slack evenly over its blocks so the row
// spans exactly usableWidth, then lays the blocks out contiguously from
// left.
//
// Rows are only ever stretched. A row wider than usableWidth can only hold a
// single oversized block, which keeps its width and overflows the margin.
func Distribute(row Row, usableWidth, left float64) {
	if len(row) == 0 {
		return
	}
	inc := max(0, (usableWidth-row.Width())/float64(len(row)))
	x := left
	for i := range row {
		row[i].Width += inc
		row[i].X = x
		x += row[i].Width
	}
}
