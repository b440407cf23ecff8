package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
)

type analysisRepo interface {
	Get(ctx context.Context, position entity.Position) (*entity.Analysis, error)
	Save(ctx context.Context, position entity.Position, analysis *entity.Analysis) error
}

// Engine - stateless front of the rules engine. The caller owns the live board and
// sends it with every request.
type Engine struct {
	logger   *slog.Logger
	repo     analysisRepo
	strategy othello.Strategy
}

func NewEngine(logger *slog.Logger, repo analysisRepo, strategy othello.Strategy) *Engine {
	return &Engine{
		logger:   logger.With("component", "engine"),
		repo:     repo,
		strategy: strategy,
	}
}

// NewGame - analysis of the opening position.
func (that *Engine) NewGame(ctx context.Context) (*entity.Analysis, error) {
	return that.analyze(ctx, othello.NewBoard(), othello.Black), nil
}

// Analyze - resolves whose turn it is in position and describes it.
func (that *Engine) Analyze(ctx context.Context, position entity.Position) (*entity.Analysis, error) {
	board, player, err := parsePosition(position)
	if err != nil {
		return nil, err
	}

	return that.analyze(ctx, board, player), nil
}

// MakeTurn - plays move for the player to move in position.
func (that *Engine) MakeTurn(ctx context.Context, position entity.Position, move string) (*entity.Turn, error) {
	game, err := that.restoreOngoing(position)
	if err != nil {
		return nil, err
	}

	target, err := othello.ParseMove(move)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedMove, err)
	}

	player := game.Turn()

	flipped, err := game.Play(target.Row, target.Col)
	if errors.Is(err, othello.ErrInvalidMove) {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to play move: %w", err)
	}

	return that.turn(ctx, game, player, target, flipped), nil
}

// MakeBotTurn - lets the configured strategy play for the player to move in position.
func (that *Engine) MakeBotTurn(ctx context.Context, position entity.Position) (*entity.Turn, error) {
	log := that.logger.With("method", "MakeBotTurn")

	game, err := that.restoreOngoing(position)
	if err != nil {
		return nil, err
	}

	player := game.Turn()

	move, flipped, err := game.PlayStrategy(that.strategy)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot played", "player", player.String(), "move", move.String(), "flipped", len(flipped))

	return that.turn(ctx, game, player, move, flipped), nil
}

func (that *Engine) restoreOngoing(position entity.Position) (*othello.Game, error) {
	board, player, err := parsePosition(position)
	if err != nil {
		return nil, err
	}

	game := othello.RestoreGame(board, player)
	if game.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	return game, nil
}

func (that *Engine) turn(ctx context.Context, game *othello.Game, player othello.Cell, move othello.Move, flipped []othello.Move) *entity.Turn {
	return &entity.Turn{
		Player:  player.String(),
		Move:    move.String(),
		Flipped: othello.MovesToStrings(flipped),
		Next:    that.analyze(ctx, game.Board(), player.Opponent()),
	}
}

// analyze - cached description of the position where toMove is due to play.
// Cache failures are logged and never fail the request.
func (that *Engine) analyze(ctx context.Context, board othello.Board, toMove othello.Cell) *entity.Analysis {
	log := that.logger.With("method", "analyze")

	key := entity.Position{Board: board.Rows(), Player: toMove.String()}

	cached, err := that.repo.Get(ctx, key)
	if err == nil {
		log.Debug("analysis cache hit")
		return cached
	}

	if !errors.Is(err, repository.ErrAnalysisNotFound) {
		log.Warn("failed to read analysis cache", "error", err)
	}

	analysis := that.describe(othello.RestoreGame(board, toMove))

	if err = that.repo.Save(ctx, key, analysis); err != nil {
		log.Warn("failed to save analysis", "error", err)
	}

	return analysis
}

func (that *Engine) describe(game *othello.Game) *entity.Analysis {
	board := game.Board()
	result := game.Result()

	analysis := &entity.Analysis{
		Position:   entity.Position{Board: board.Rows()},
		State:      game.State().String(),
		LegalMoves: othello.MovesToStrings(game.ValidMoves()),
		Black:      result.Black,
		White:      result.White,
	}

	if passed := game.Passed(); passed != othello.Empty {
		analysis.Passed = passed.String()
	}

	if game.IsOver() {
		analysis.Winner = winnerName(result)
		return analysis
	}

	analysis.Position.Player = game.Turn().String()
	if move, ok := that.strategy.SelectMove(board, game.Turn()); ok {
		analysis.SuggestedMove = move.String()
	}

	return analysis
}

func winnerName(result othello.Result) string {
	switch result.Winner {
	case othello.Black:
		return entity.WinnerBlack
	case othello.White:
		return entity.WinnerWhite
	default:
		return entity.WinnerTie
	}
}

func parsePosition(position entity.Position) (othello.Board, othello.Cell, error) {
	board, err := othello.ParseBoard(position.Board)
	if err != nil {
		return board, othello.Empty, fmt.Errorf("%w: %w", apperror.ErrInvalidPosition, err)
	}

	player, err := othello.ParseColor(position.Player)
	if err != nil {
		return board, othello.Empty, fmt.Errorf("%w: %w", apperror.ErrInvalidPosition, err)
	}

	return board, player, nil
}
