package ingredient_test

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/internal/testutil"
	"Recipe-Book-API/pkg/ingredient"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ingredientFixture struct {
	svc         ingredient.IngredientService
	ingredients *testutil.IngredientRepositoryFake
	recipes     *testutil.RecipeRepositoryFake
	userID      uuid.UUID
	otherUserID uuid.UUID
	recipeID    uuid.UUID
}

func newIngredientFixture(t *testing.T) *ingredientFixture {
	t.Helper()

	ingredients := testutil.NewIngredientRepositoryFake()
	recipes := testutil.NewRecipeRepositoryFake()

	userID := uuid.New()
	recipeID := uuid.New()
	recipes.Recipes = append(recipes.Recipes, &entities.Recipe{
		ID:        recipeID,
		Title:     "Pancakes",
		Status:    entities.RecipeStatusActive,
		CreatedBy: userID,
	})

	return &ingredientFixture{
		svc:         ingredient.NewIngredientService(ingredients, recipes),
		ingredients: ingredients,
		recipes:     recipes,
		userID:      userID,
		otherUserID: uuid.New(),
		recipeID:    recipeID,
	}
}

func (f *ingredientFixture) createRequest() domain.CreateIngredientRequest {
	return domain.CreateIngredientRequest{
		Ingredient: "Flour",
		Amount:     "200",
		Unit:       "GRAM",
		RecipeID:   f.recipeID.String(),
	}
}

func TestCreateIngredient(t *testing.T) {
	f := newIngredientFixture(t)

	res, err := f.svc.CreateIngredient(context.Background(), f.createRequest(), f.userID.String())
	require.NoError(t, err)
	assert.Equal(t, "Flour", res.Ingredient)
	assert.Equal(t, "GRAM", res.Unit)
	assert.Len(t, f.ingredients.Ingredients, 1)
}

func TestCreateIngredientGuards(t *testing.T) {
	f := newIngredientFixture(t)
	ctx := context.Background()

	missing := f.createRequest()
	missing.RecipeID = uuid.NewString()
	_, err := f.svc.CreateIngredient(ctx, missing, f.userID.String())
	assert.ErrorIs(t, err, domain.NewNotFound("Recipe"))

	// ownership is checked before status
	require.NoError(t, f.recipes.Recipes[0].Inactivate(f.userID))
	_, err = f.svc.CreateIngredient(ctx, f.createRequest(), f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))

	_, err = f.svc.CreateIngredient(ctx, f.createRequest(), f.userID.String())
	assert.ErrorIs(t, err, domain.NewInactive("Recipe"))
}

func TestEditIngredient(t *testing.T) {
	f := newIngredientFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateIngredient(ctx, f.createRequest(), f.userID.String())
	require.NoError(t, err)

	amount := "250"
	unit := "KILOGRAM"
	res, err := f.svc.EditIngredient(ctx, created.ID, domain.EditIngredientRequest{Amount: &amount, Unit: &unit}, f.userID.String())
	require.NoError(t, err)
	assert.Equal(t, "250", res.Amount)
	assert.Equal(t, "KILOGRAM", res.Unit)
	assert.Equal(t, "Flour", res.Ingredient)
}

func TestEditIngredientGuards(t *testing.T) {
	f := newIngredientFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateIngredient(ctx, f.createRequest(), f.userID.String())
	require.NoError(t, err)

	amount := "250"

	_, err = f.svc.EditIngredient(ctx, uuid.NewString(), domain.EditIngredientRequest{Amount: &amount}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewNotFound("Ingredient"))

	_, err = f.svc.EditIngredient(ctx, created.ID, domain.EditIngredientRequest{Amount: &amount}, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))

	require.NoError(t, f.recipes.Recipes[0].Inactivate(f.userID))
	_, err = f.svc.EditIngredient(ctx, created.ID, domain.EditIngredientRequest{Amount: &amount}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInactive("Recipe"))
}

func TestDeleteIngredient(t *testing.T) {
	f := newIngredientFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateIngredient(ctx, f.createRequest(), f.userID.String())
	require.NoError(t, err)

	err = f.svc.DeleteIngredient(ctx, created.ID, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))

	require.NoError(t, f.svc.DeleteIngredient(ctx, created.ID, f.userID.String()))
	assert.Empty(t, f.ingredients.Ingredients)

	err = f.svc.DeleteIngredient(ctx, created.ID, f.userID.String())
	assert.ErrorIs(t, err, domain.NewNotFound("Ingredient"))
}

func TestGetIngredientsByRecipe(t *testing.T) {
	f := newIngredientFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateIngredient(ctx, f.createRequest(), f.userID.String())
	require.NoError(t, err)

	second := f.createRequest()
	second.Ingredient = "Milk"
	second.Unit = "MILLILITER"
	_, err = f.svc.CreateIngredient(ctx, second, f.userID.String())
	require.NoError(t, err)

	res, err := f.svc.GetIngredientsByRecipe(ctx, f.recipeID.String(), 1, 10, f.userID.String())
	require.NoError(t, err)
	assert.Len(t, res.Ingredients, 2)
	assert.EqualValues(t, 2, res.Meta.TotalCount)

	// listing is owner-only too
	_, err = f.svc.GetIngredientsByRecipe(ctx, f.recipeID.String(), 1, 10, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))
}
