package othello

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid notation")

const (
	emptySymbol = '.'
	blackSymbol = 'B'
	whiteSymbol = 'W'
)

func (that Cell) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParseColor - parses "black" or "white", case-insensitive.
func ParseColor(s string) (Cell, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

func (that Cell) symbol() byte {
	switch that {
	case Black:
		return blackSymbol
	case White:
		return whiteSymbol
	default:
		return emptySymbol
	}
}

// String - algebraic notation, column letter then 1-based row ("d3" is row 2, col 3).
func (that Move) String() string {
	if !InBounds(that.Row, that.Col) {
		return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
	}

	return string(rune('a'+that.Col)) + strconv.Itoa(that.Row+1)
}

// ParseMove - parses algebraic notation such as "d3".
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidNotation, s)
	}

	move := Move{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
	if !InBounds(move.Row, move.Col) {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidNotation, s)
	}

	return move, nil
}

// MovesToStrings - algebraic form of each move, order preserved.
func MovesToStrings(moves []Move) []string {
	result := make([]string, 0, len(moves))
	for _, move := range moves {
		result = append(result, move.String())
	}

	return result
}

// ParseBoard - parses 8 rows of 8 symbols: '.' empty, 'B' black, 'W' white.
func ParseBoard(rows []string) (Board, error) {
	var board Board

	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidNotation, Size, len(rows))
	}

	for r, line := range rows {
		if len(line) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidNotation, r+1, len(line))
		}

		for c := 0; c < Size; c++ {
			switch line[c] {
			case emptySymbol:
				board[r][c] = Empty
			case blackSymbol, 'b':
				board[r][c] = Black
			case whiteSymbol, 'w':
				board[r][c] = White
			default:
				return board, fmt.Errorf("%w: row %d has symbol %q", ErrInvalidNotation, r+1, line[c])
			}
		}
	}

	return board, nil
}

// Rows - inverse of ParseBoard.
func (that *Board) Rows() []string {
	rows := make([]string, Size)

	line := make([]byte, Size)
	for r := range that {
		for c, cell := range that[r] {
			line[c] = cell.symbol()
		}
		rows[r] = string(line)
	}

	return rows
}

func (that *Board) String() string {
	var sb strings.Builder

	sb.WriteString("  a b c d e f g h\n")
	for r := range that {
		sb.WriteString(strconv.Itoa(r + 1))
		for _, cell := range that[r] {
			sb.WriteByte(' ')
			sb.WriteByte(cell.symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
