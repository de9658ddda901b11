package engine

import "github.com/lixenwraith/rsnake/core"

// Snake is the body as an ordered cell list, head at index 0
type Snake struct {
	cells []core.Cell
}

// NewSnake creates a single-cell snake
func NewSnake(head core.Cell) *Snake {
	cells := make([]core.Cell, 1, 64)
	cells[0] = head
	return &Snake{cells: cells}
}

// Head returns the most recently inserted cell
func (s *Snake) Head() core.Cell {
	return s.cells[0]
}

// Len returns the number of cells, always at least 1
func (s *Snake) Len() int {
	return len(s.cells)
}

// Cells returns the live head-first view; callers must not retain it across frames
func (s *Snake) Cells() []core.Cell {
	return s.cells
}

// Push inserts a new head
func (s *Snake) Push(head core.Cell) {
	s.cells = append(s.cells, core.Cell{})
	copy(s.cells[1:], s.cells)
	s.cells[0] = head
}

// TrimTail drops the last cell; a single-cell snake is left untouched
func (s *Snake) TrimTail() {
	if len(s.cells) > 1 {
		s.cells = s.cells[:len(s.cells)-1]
	}
}
