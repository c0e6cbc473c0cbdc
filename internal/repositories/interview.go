package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mockmate/interview-api/internal/models"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	FindRecent(ctx context.Context, limit int) ([]models.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create implements InterviewRepository.
func (r *interviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	if interview.ID == uuid.Nil {
		interview.ID = uuid.New()
	}
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}

	return nil
}

// FindRecent implements InterviewRepository. Newest rows come first.
func (r *interviewRepository) FindRecent(ctx context.Context, limit int) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&interviews).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find interviews: %w", err)
	}

	return interviews, nil
}

type noopInterviewRepository struct{}

// NewNoopInterviewRepository is used when no database is configured: writes
// are dropped and reads are empty.
func NewNoopInterviewRepository() InterviewRepository {
	return noopInterviewRepository{}
}

func (noopInterviewRepository) Create(context.Context, *models.Interview) error {
	return nil
}

func (noopInterviewRepository) FindRecent(context.Context, int) ([]models.Interview, error) {
	return []models.Interview{}, nil
}
