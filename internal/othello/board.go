package othello

const Size = 8

// Cell - state of a single square. Black and White double as player colors.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// directions - the 8 neighbours of a cell as (row, col) offsets.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Opponent - returns the other player's color. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (that Cell) IsPlayer() bool {
	return that == Black || that == White
}

// Move - a (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board - 8x8 grid stored by value, so assignment copies it.
type Board [Size][Size]Cell

// NewBoard - returns the standard opening position.
func NewBoard() Board {
	var board Board

	board[3][3] = White
	board[3][4] = Black
	board[4][3] = Black
	board[4][4] = White

	return board
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At - returns the cell at (row, col), Empty when out of bounds.
func (that *Board) At(row, col int) Cell {
	if !InBounds(row, col) {
		return Empty
	}

	return that[row][col]
}

// IsValidMove - checks whether player may place a disc at (row, col).
func (that *Board) IsValidMove(row, col int, player Cell) bool {
	if !InBounds(row, col) || that[row][col] != Empty || !player.IsPlayer() {
		return false
	}

	for _, dir := range directions {
		if len(that.flipsInDirection(row, col, player, dir)) > 0 {
			return true
		}
	}

	return false
}

// ApplyMove - places player's disc at (row, col) and flips every bracketed run.
// Returns the flipped cells. Legality is the caller's concern: an illegal target still
// receives the disc but flips nothing.
func (that *Board) ApplyMove(row, col int, player Cell) []Move {
	if !InBounds(row, col) {
		return nil
	}

	that[row][col] = player

	var flipped []Move
	for _, dir := range directions {
		run := that.flipsInDirection(row, col, player, dir)
		for _, cell := range run {
			that[cell.Row][cell.Col] = player
		}
		flipped = append(flipped, run...)
	}

	return flipped
}

// ValidMoves - all legal moves for player in row-major order.
func (that *Board) ValidMoves(player Cell) []Move {
	var moves []Move

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsValidMove(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) HasValidMove(player Cell) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsValidMove(row, col, player) {
				return true
			}
		}
	}

	return false
}

// Count - number of cells holding the given value.
func (that *Board) Count(player Cell) int {
	count := 0

	for row := range that {
		for _, cell := range that[row] {
			if cell == player {
				count++
			}
		}
	}

	return count
}

// flipsInDirection - walks from (row, col) along dir collecting opponent discs.
// The run is returned only when a disc of player's color closes it.
func (that *Board) flipsInDirection(row, col int, player Cell, dir [2]int) []Move {
	opponent := player.Opponent()

	var run []Move
	r, c := row+dir[0], col+dir[1]
	for InBounds(r, c) && that[r][c] == opponent {
		run = append(run, Move{Row: r, Col: c})
		r += dir[0]
		c += dir[1]
	}

	if len(run) == 0 || !InBounds(r, c) || that[r][c] != player {
		return nil
	}

	return run
}
