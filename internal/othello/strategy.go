package othello

// Strategy - picks a move for player on the given board.
// The board is passed by value; implementations are free to mutate their copy.
// ok is false when player has no legal move.
type Strategy interface {
	SelectMove(board Board, player Cell) (move Move, ok bool)
}

// Greedy - one-ply strategy maximizing the mover's disc count after the move.
// Ties go to the earliest move in row-major order.
type Greedy struct{}

func NewGreedy() Greedy {
	return Greedy{}
}

func (that Greedy) SelectMove(board Board, player Cell) (Move, bool) {
	candidates := board.ValidMoves(player)
	if len(candidates) == 0 {
		return Move{}, false
	}

	best := candidates[0]
	bestScore := -1

	for _, move := range candidates {
		simulated := board
		simulated.ApplyMove(move.Row, move.Col, player)

		if score := simulated.Count(player); score > bestScore {
			bestScore = score
			best = move
		}
	}

	return best, true
}
