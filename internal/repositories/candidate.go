package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashank-tomar0/RankSense-AI/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	ListByScoreDesc() ([]models.Candidate, error)
	DeleteAll() error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// ListByScoreDesc implements CandidateRepository. Ties keep insertion order.
func (r *candidateRepository) ListByScoreDesc() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("score DESC, id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}

// DeleteAll implements CandidateRepository.
func (r *candidateRepository) DeleteAll() error {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Candidate{})

	if result.Error != nil {
		return fmt.Errorf("failed to clear candidates: %w", result.Error)
	}

	return nil
}
