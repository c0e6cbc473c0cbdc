package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmate/interview-api/internal/models"
)

func TestNoopInterviewRepository(t *testing.T) {
	repo := NewNoopInterviewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Interview{UserQuestion: "q", AIResponse: "a"}))

	rows, err := repo.FindRecent(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
