package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashank-tomar0/RankSense-AI/internal/models"
)

func newTestRepo(t *testing.T) CandidateRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Candidate{}))

	return NewCandidateRepository(db)
}

func insertWithScore(t *testing.T, repo CandidateRepository, filename string, score float64) {
	t.Helper()

	err := repo.Create(&models.Candidate{
		Filename: filename,
		Score:    score,
		Payload:  datatypes.JSON(`{"filename": "` + filename + `"}`),
	})
	require.NoError(t, err)
}

func TestListByScoreDescOrdering(t *testing.T) {
	repo := newTestRepo(t)

	insertWithScore(t, repo, "a.pdf", 55.0)
	insertWithScore(t, repo, "b.pdf", 90.0)
	insertWithScore(t, repo, "c.pdf", 72.5)

	candidates, err := repo.ListByScoreDesc()
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, []float64{90.0, 72.5, 55.0}, []float64{
		candidates[0].Score, candidates[1].Score, candidates[2].Score,
	})
}

func TestListByScoreDescTiesKeepInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)

	insertWithScore(t, repo, "first.pdf", 80.0)
	insertWithScore(t, repo, "second.pdf", 80.0)

	candidates, err := repo.ListByScoreDesc()
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "first.pdf", candidates[0].Filename)
	assert.Equal(t, "second.pdf", candidates[1].Filename)
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)

	insertWithScore(t, repo, "a.pdf", 10)
	insertWithScore(t, repo, "b.pdf", 20)

	candidates, err := repo.ListByScoreDesc()
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Greater(t, candidates[0].ID, candidates[1].ID,
		"higher score inserted later gets the larger surrogate key")
	for _, candidate := range candidates {
		assert.False(t, candidate.CreatedAt.IsZero(), "insert must assign a timestamp")
	}
}

func TestDeleteAll(t *testing.T) {
	repo := newTestRepo(t)

	insertWithScore(t, repo, "a.pdf", 10)
	insertWithScore(t, repo, "b.pdf", 20)
	require.NoError(t, repo.DeleteAll())

	candidates, err := repo.ListByScoreDesc()
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestDeleteAllOnEmptyTable(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.DeleteAll())
}
