package othello

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameOver     = errors.New("game is over")
	ErrNoLegalMove  = errors.New("no legal move")
	ErrInvalidColor = errors.New("invalid player color")
)

type State uint8

const (
	AwaitingBlack State = iota
	AwaitingWhite
	GameOver
)

func (that State) String() string {
	switch that {
	case AwaitingBlack:
		return "awaiting_black"
	case AwaitingWhite:
		return "awaiting_white"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func awaiting(player Cell) State {
	if player == White {
		return AwaitingWhite
	}

	return AwaitingBlack
}

// Result - final disc counts. Winner is Empty on a tie.
type Result struct {
	Black  int
	White  int
	Winner Cell
}

func (that Result) IsTie() bool {
	return that.Winner == Empty
}

// Outcome - disc counts and winner derived from the board alone.
func Outcome(board *Board) Result {
	result := Result{
		Black: board.Count(Black),
		White: board.Count(White),
	}

	switch {
	case result.Black > result.White:
		result.Winner = Black
	case result.White > result.Black:
		result.Winner = White
	}

	return result
}

// Resolve - decides whose turn it is when toMove is due to play.
// passed is the color whose turn gets skipped, Empty if nobody passes.
func Resolve(board *Board, toMove Cell) (State, Cell) {
	if board.HasValidMove(toMove) {
		return awaiting(toMove), Empty
	}

	opponent := toMove.Opponent()
	if board.HasValidMove(opponent) {
		return awaiting(opponent), toMove
	}

	return GameOver, Empty
}

// Game - a single live board plus the turn state machine around it.
type Game struct {
	board  Board
	state  State
	passed Cell
}

// NewGame - fresh game, Black to move.
func NewGame() *Game {
	return RestoreGame(NewBoard(), Black)
}

// RestoreGame - resumes from a position where toMove is due to play.
func RestoreGame(board Board, toMove Cell) *Game {
	game := &Game{board: board}
	game.state, game.passed = Resolve(&game.board, toMove)

	return game
}

// Board - returns a copy of the live board.
func (that *Game) Board() Board {
	return that.board
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) IsOver() bool {
	return that.state == GameOver
}

// Turn - the color to move, Empty once the game is over.
func (that *Game) Turn() Cell {
	switch that.state {
	case AwaitingBlack:
		return Black
	case AwaitingWhite:
		return White
	default:
		return Empty
	}
}

// Passed - the color skipped by the latest turn resolution, Empty if none.
func (that *Game) Passed() Cell {
	return that.passed
}

func (that *Game) ValidMoves() []Move {
	if that.IsOver() {
		return nil
	}

	return that.board.ValidMoves(that.Turn())
}

// Play - applies a move for the player to move and hands the turn over.
// The board is left untouched when an error is returned.
func (that *Game) Play(row, col int) ([]Move, error) {
	if that.IsOver() {
		return nil, ErrGameOver
	}

	player := that.Turn()
	if !that.board.IsValidMove(row, col, player) {
		return nil, fmt.Errorf("%w: (%d,%d) for %s", ErrInvalidMove, row, col, player)
	}

	flipped := that.board.ApplyMove(row, col, player)
	that.state, that.passed = Resolve(&that.board, player.Opponent())

	return flipped, nil
}

// PlayStrategy - lets strategy choose and play the move for the player to move.
func (that *Game) PlayStrategy(strategy Strategy) (Move, []Move, error) {
	if that.IsOver() {
		return Move{}, nil, ErrGameOver
	}

	move, ok := strategy.SelectMove(that.board, that.Turn())
	if !ok {
		return Move{}, nil, ErrNoLegalMove
	}

	flipped, err := that.Play(move.Row, move.Col)
	if err != nil {
		return Move{}, nil, fmt.Errorf("strategy picked an unplayable move: %w", err)
	}

	return move, flipped, nil
}

func (that *Game) Result() Result {
	return Outcome(&that.board)
}
