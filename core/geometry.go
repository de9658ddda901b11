package core

// Cell is a character position on the terminal grid
type Cell struct {
	Row, Col int
}

// Bounds holds the terminal size used for wrap-around
type Bounds struct {
	Rows, Cols int
}

// Direction is one of the four movement headings
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directionDeltas holds (dRow, dCol) per direction; horizontal steps are 2 cells wide
// so motion looks even on cells roughly twice as tall as they are wide
var directionDeltas = [4]Cell{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 2},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -2},
}

// adjacentDirections lists the headings reachable from each direction: everything but a reversal
var adjacentDirections = [4][3]Direction{
	Up:    {Left, Right, Up},
	Down:  {Left, Right, Down},
	Left:  {Up, Down, Left},
	Right: {Up, Down, Right},
}

var directionNames = [4]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

// Delta returns the per-step offset for the direction
func (d Direction) Delta() Cell {
	return directionDeltas[d]
}

// Adjacent returns the directions a turn from d may pick
func (d Direction) Adjacent() [3]Direction {
	return adjacentDirections[d]
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	if d < Up || d > Left {
		return "unknown"
	}
	return directionNames[d]
}

// Wrap moves cell one step in dir and folds the result back onto the grid.
// At most one correction is applied per call, checked in order: row underflow,
// row overflow, column underflow, column overflow. The last terminal row is never used.
func Wrap(cell Cell, dir Direction, b Bounds) Cell {
	delta := dir.Delta()
	next := Cell{Row: cell.Row + delta.Row, Col: cell.Col + delta.Col}

	switch {
	case next.Row < 0:
		next.Row = b.Rows - 2
	case next.Row >= b.Rows-1:
		next.Row = 0
	case next.Col < 0:
		next.Col = b.Cols - 1
	case next.Col > b.Cols-1:
		next.Col = 0
	}
	return next
}
