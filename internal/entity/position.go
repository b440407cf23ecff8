package entity

const (
	WinnerBlack = "black"
	WinnerWhite = "white"
	WinnerTie   = "tie"
)

// Position - a board as 8 rows of '.', 'B', 'W' plus the color due to move.
type Position struct {
	Board  []string `json:"board"`
	Player string   `json:"player,omitempty"`
}

// Analysis - everything the presentation layer needs to render a position.
type Analysis struct {
	Position      Position `json:"position"`
	State         string   `json:"state"`
	Passed        string   `json:"passed,omitempty"`
	LegalMoves    []string `json:"legal_moves"`
	SuggestedMove string   `json:"suggested_move,omitempty"`
	Black         int      `json:"black"`
	White         int      `json:"white"`
	Winner        string   `json:"winner,omitempty"`
}

func (that *Analysis) IsFinished() bool {
	return that.Winner != ""
}

// Turn - a move that was played and the position it led to.
type Turn struct {
	Player  string    `json:"player"`
	Move    string    `json:"move"`
	Flipped []string  `json:"flipped"`
	Next    *Analysis `json:"next"`
}
