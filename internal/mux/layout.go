// Package mux implements the pane multiplexer: pane lifecycle, row
// arrangement, geometry, focus tracking, and the display-mode state machine.
// This file contains layout constants and the row/geometry calculations.
package mux

// Pane frame allowances - the cells consumed by each pane's chrome, reserved
// before splitting the remaining space among occupants.
const (
	// PaneBorderWidth is the horizontal allowance per pane (left + right
	// frame columns).
	PaneBorderWidth = 2

	// PaneBorderHeight is the vertical allowance per pane (title bar +
	// bottom frame row).
	PaneBorderHeight = 2

	// MinPaneCols is the smallest interior width a pane is ever given.
	MinPaneCols = 10

	// MinPaneRows is the smallest interior height a pane is ever given.
	MinPaneRows = 3
)

// splitRows partitions n live panes into top and bottom row counts. With two
// panes or fewer everything sits in the top row; beyond that the top row
// takes the first n/2 (integer division) and the bottom row the rest.
func splitRows(n int) (top, bottom int) {
	if n <= 2 {
		return n, 0
	}
	top = n / 2
	return top, n - top
}

// paneCols returns the interior width for each of count panes sharing width
// columns, after reserving the per-pane frame allowance.
func paneCols(width, count int) int {
	if count == 0 {
		return 0
	}
	cols := width/count - PaneBorderWidth
	if cols < MinPaneCols {
		return MinPaneCols
	}
	return cols
}

// paneRows returns the interior height for panes in one of rowCount
// populated rows sharing height rows.
func paneRows(height, rowCount int) int {
	if rowCount == 0 {
		return 0
	}
	rows := height/rowCount - PaneBorderHeight
	if rows < MinPaneRows {
		return MinPaneRows
	}
	return rows
}
