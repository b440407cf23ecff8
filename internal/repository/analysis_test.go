package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var openingPosition = entity.Position{
	Board: []string{
		"........",
		"........",
		"........",
		"...WB...",
		"...BW...",
		"........",
		"........",
		"........",
	},
	Player: "black",
}

func openingAnalysis() *entity.Analysis {
	return &entity.Analysis{
		Position:      openingPosition,
		State:         "awaiting_black",
		LegalMoves:    []string{"d3", "c4", "f5", "e6"},
		SuggestedMove: "d3",
		Black:         2,
		White:         2,
	}
}

func TestAnalysisRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewAnalysisRepository(st.Storage, time.Minute)

	// When: an analysis is saved
	err := repo.Save(ctx, openingPosition, openingAnalysis())

	// Then: it is stored with the configured expiry
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, analysisKey(openingPosition)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestAnalysisRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewAnalysisRepository(st.Storage, time.Minute)

		// Given: a saved analysis
		require.NoError(t, repo.Save(ctx, openingPosition, openingAnalysis()))

		// When: it is fetched for the same position
		analysis, err := repo.Get(ctx, openingPosition)

		// Then: the stored analysis is returned
		require.NoError(t, err)
		assert.Equal(t, openingAnalysis(), analysis)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewAnalysisRepository(st.Storage, time.Minute)

		// Given: the same board with the other color to move
		position := openingPosition
		position.Player = "white"

		// When: nothing was saved for it
		analysis, err := repo.Get(ctx, position)

		// Then: ErrAnalysisNotFound is returned
		require.Error(t, err)
		assert.Equal(t, ErrAnalysisNotFound, err)
		assert.Nil(t, analysis)
	})

	t.Run("Get_Expired", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewAnalysisRepository(st.Storage, time.Second)

		require.NoError(t, repo.Save(ctx, openingPosition, openingAnalysis()))

		require.Eventually(t, func() bool {
			_, err := repo.Get(ctx, openingPosition)
			return err == ErrAnalysisNotFound //nolint: errorlint // sentinel is returned unwrapped
		}, 5*time.Second, 100*time.Millisecond)
	})
}

func TestAnalysisKey(t *testing.T) {
	key := analysisKey(openingPosition)

	assert.Equal(t, "analysis:black:......../......../......../...WB.../...BW.../......../......../........", key)
}
