package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeInactivate(t *testing.T) {
	by := uuid.New()
	r := &Recipe{ID: uuid.New(), Title: "Pancakes", Status: RecipeStatusActive}

	require.NoError(t, r.Inactivate(by))
	assert.Equal(t, RecipeStatusInactive, r.Status)
	require.NotNil(t, r.DeletedBy)
	assert.Equal(t, by, *r.DeletedBy)
	assert.NotNil(t, r.DeletedAt)

	// only ACTIVE -> INACTIVE is legal
	err := r.Inactivate(by)
	assert.ErrorIs(t, err, ErrRecipeAlreadyInactive)
}

func TestRecipePartialUpdate(t *testing.T) {
	by := uuid.New()
	r := &Recipe{Title: "Pancakes", Description: "Fluffy", PreparationTime: 20}

	title := "Crepes"
	r.Update(&title, nil, nil, by)

	assert.Equal(t, "Crepes", r.Title)
	assert.Equal(t, "Fluffy", r.Description)
	assert.Equal(t, 20, r.PreparationTime)
	require.NotNil(t, r.UpdatedBy)
	assert.Equal(t, by, *r.UpdatedBy)
	assert.NotNil(t, r.UpdatedAt)
}
