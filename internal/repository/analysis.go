package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository - cache of analyses keyed by the position they were computed for.
type AnalysisRepository interface {
	Get(ctx context.Context, position entity.Position) (*entity.Analysis, error)
	Save(ctx context.Context, position entity.Position, analysis *entity.Analysis) error
}

type dbAnalysis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisRepository(client *redis.Client, ttl time.Duration) AnalysisRepository {
	return &dbAnalysis{
		client: client,
		ttl:    ttl,
	}
}

func analysisKey(position entity.Position) string {
	return "analysis:" + position.Player + ":" + strings.Join(position.Board, "/")
}

func (that *dbAnalysis) Get(ctx context.Context, position entity.Position) (*entity.Analysis, error) {
	response, err := that.client.Get(ctx, analysisKey(position)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAnalysisNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis entity.Analysis
	if err = json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &analysis, nil
}

func (that *dbAnalysis) Save(ctx context.Context, position entity.Position, analysis *entity.Analysis) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("could not marshal analysis: %w", err)
	}

	if err = that.client.Set(ctx, analysisKey(position), analysisJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set analysis: %w", err)
	}

	return nil
}
