package chess

import "fmt"

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

// Square is a (row, col) pair. Row 0 is White's back rank.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

func (s Square) index() int { return s.Row*Cols + s.Col }

func squareAt(idx int) Square { return Square{Row: idx / Cols, Col: idx % Cols} }

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// AllSquares returns the 64 squares in index order.
func AllSquares() []Square {
	out := make([]Square, NumSquares)
	for i := range out {
		out[i] = squareAt(i)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
