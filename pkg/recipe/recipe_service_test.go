package recipe_test

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/internal/testutil"
	"Recipe-Book-API/pkg/recipe"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeFixture struct {
	svc         recipe.RecipeService
	recipes     *testutil.RecipeRepositoryFake
	categories  *testutil.CategoryRepositoryFake
	users       *testutil.UserRepositoryFake
	userID      uuid.UUID
	categoryID  uuid.UUID
	otherUserID uuid.UUID
}

func newRecipeFixture(t *testing.T) *recipeFixture {
	t.Helper()

	recipes := testutil.NewRecipeRepositoryFake()
	categories := testutil.NewCategoryRepositoryFake()
	users := testutil.NewUserRepositoryFake()

	userID := uuid.New()
	otherUserID := uuid.New()
	users.Users = append(users.Users,
		&entities.User{ID: userID, Name: "Alice", Email: "alice@example.com"},
		&entities.User{ID: otherUserID, Name: "Bob", Email: "bob@example.com"},
	)

	categoryID := uuid.New()
	categories.Categories = append(categories.Categories, &entities.Category{
		ID: categoryID, Name: "Dessert", Description: "Sweet",
	})

	return &recipeFixture{
		svc:         recipe.NewRecipeService(recipes, categories, users),
		recipes:     recipes,
		categories:  categories,
		users:       users,
		userID:      userID,
		categoryID:  categoryID,
		otherUserID: otherUserID,
	}
}

func validCreateRequest(categoryID uuid.UUID) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:           "Pancakes",
		Description:     "Fluffy pancakes",
		PreparationTime: 20,
		CategoryID:      categoryID.String(),
		Ingredients: []domain.CreateRecipeIngredientItem{
			{Ingredient: "Flour", Amount: "200", Unit: "GRAM"},
			{Ingredient: "Milk", Amount: "300", Unit: "MILLILITER"},
		},
		Steps: []domain.CreateRecipeStepItem{
			{Step: 1, Description: "Mix everything"},
			{Step: 2, Description: "Fry"},
		},
	}
}

func TestCreateRecipe(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	res, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", res.Title)
	assert.Equal(t, string(entities.RecipeStatusActive), res.Status)

	// recipe and both child batches land together
	assert.Len(t, f.recipes.Recipes, 1)
	assert.Len(t, f.recipes.Ingredients, 2)
	assert.Len(t, f.recipes.Steps, 2)
}

func TestCreateRecipeUnknownCategory(t *testing.T) {
	f := newRecipeFixture(t)

	req := validCreateRequest(f.categoryID)
	req.CategoryID = uuid.NewString()

	_, err := f.svc.CreateRecipe(context.Background(), req, f.userID.String())
	assert.ErrorIs(t, err, domain.NewNotFound("Category"))
}

func TestCreateRecipeEmptyElements(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	noIngredients := validCreateRequest(f.categoryID)
	noIngredients.Ingredients = nil
	_, err := f.svc.CreateRecipe(ctx, noIngredients, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInvalidFields("Elements"))

	noSteps := validCreateRequest(f.categoryID)
	noSteps.Steps = nil
	_, err = f.svc.CreateRecipe(ctx, noSteps, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInvalidFields("Elements"))
}

func TestCreateRecipeNonPositivePreparationTime(t *testing.T) {
	f := newRecipeFixture(t)

	req := validCreateRequest(f.categoryID)
	req.PreparationTime = 0

	_, err := f.svc.CreateRecipe(context.Background(), req, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInvalidFields("PreparationTime"))
}

func TestCreateRecipeDuplicateTitle(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	// same owner, different case, still a duplicate
	dup := validCreateRequest(f.categoryID)
	dup.Title = "PANCAKES"
	_, err = f.svc.CreateRecipe(ctx, dup, f.userID.String())
	assert.ErrorIs(t, err, domain.NewAlreadyExists("Recipe"))

	// a different user may reuse the title
	_, err = f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.otherUserID.String())
	assert.NoError(t, err)
}

func TestCreateRecipeDuplicateStepNumbers(t *testing.T) {
	f := newRecipeFixture(t)

	req := validCreateRequest(f.categoryID)
	req.Steps = []domain.CreateRecipeStepItem{
		{Step: 1, Description: "Mix"},
		{Step: 1, Description: "Mix again"},
	}

	_, err := f.svc.CreateRecipe(context.Background(), req, f.userID.String())
	assert.ErrorIs(t, err, domain.NewAlreadyExists("Step"))
}

func TestCreateRecipeNonPositiveStepNumber(t *testing.T) {
	f := newRecipeFixture(t)

	req := validCreateRequest(f.categoryID)
	req.Steps = []domain.CreateRecipeStepItem{
		{Step: 0, Description: "Mix"},
		{Step: 2, Description: "Fry"},
	}

	_, err := f.svc.CreateRecipe(context.Background(), req, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInvalidFields("Step"))
}

func TestEditRecipe(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	title := "Crepes"
	prep := 15
	res, err := f.svc.EditRecipe(ctx, created.ID, domain.EditRecipeRequest{Title: &title, PreparationTime: &prep}, f.userID.String())
	require.NoError(t, err)
	assert.Equal(t, "Crepes", res.Title)
	assert.Equal(t, 15, res.PreparationTime)
	assert.NotNil(t, res.UpdatedAt)
}

func TestEditRecipeCheckOrder(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	title := "Crepes"

	_, err = f.svc.EditRecipe(ctx, uuid.NewString(), domain.EditRecipeRequest{Title: &title}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewNotFound("Recipe"))

	_, err = f.svc.EditRecipe(ctx, created.ID, domain.EditRecipeRequest{Title: &title}, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))

	require.NoError(t, f.svc.DeleteRecipe(ctx, created.ID, f.userID.String()))

	// inactive beats ownership: even a stranger sees the inactive error
	_, err = f.svc.EditRecipe(ctx, created.ID, domain.EditRecipeRequest{Title: &title}, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewInactive("Recipe"))
}

func TestEditRecipeNonPositivePreparationTime(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	prep := 0
	_, err = f.svc.EditRecipe(ctx, created.ID, domain.EditRecipeRequest{PreparationTime: &prep}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInvalidFields("PreparationTime"))
}

func TestEditRecipeTitleTakenByOwnOtherRecipe(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	second := validCreateRequest(f.categoryID)
	second.Title = "Waffles"
	created, err := f.svc.CreateRecipe(ctx, second, f.userID.String())
	require.NoError(t, err)

	taken := "Pancakes"
	_, err = f.svc.EditRecipe(ctx, created.ID, domain.EditRecipeRequest{Title: &taken}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewAlreadyExists("Recipe"))

	// renaming to your current title is fine
	same := "Waffles"
	_, err = f.svc.EditRecipe(ctx, created.ID, domain.EditRecipeRequest{Title: &same}, f.userID.String())
	assert.NoError(t, err)
}

func TestDeleteRecipeSoftDeletes(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteRecipe(ctx, created.ID, f.userID.String()))

	stored := f.recipes.Recipes[0]
	assert.Equal(t, entities.RecipeStatusInactive, stored.Status)
	assert.NotNil(t, stored.DeletedAt)
	require.NotNil(t, stored.DeletedBy)
	assert.Equal(t, f.userID, *stored.DeletedBy)

	// no second soft delete
	err = f.svc.DeleteRecipe(ctx, created.ID, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInactive("Recipe"))
}

func TestDeleteRecipeNotOwner(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	err = f.svc.DeleteRecipe(ctx, created.ID, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))
}

func TestGetMyRecipes(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	second := validCreateRequest(f.categoryID)
	second.Title = "Waffles"
	_, err = f.svc.CreateRecipe(ctx, second, f.userID.String())
	require.NoError(t, err)

	res, err := f.svc.GetMyRecipes(ctx, domain.FetchMyRecipesRequest{Page: 1, PerPage: 10}, f.userID.String())
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 2)
	assert.EqualValues(t, 2, res.Meta.TotalCount)

	filtered, err := f.svc.GetMyRecipes(ctx, domain.FetchMyRecipesRequest{Page: 1, PerPage: 10, Title: "waff"}, f.userID.String())
	require.NoError(t, err)
	require.Len(t, filtered.Recipes, 1)
	assert.Equal(t, "Waffles", filtered.Recipes[0].Title)
}

func TestGetMyRecipesUnknownUser(t *testing.T) {
	f := newRecipeFixture(t)

	_, err := f.svc.GetMyRecipes(context.Background(), domain.FetchMyRecipesRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.NewNotFound("User"))
}

func TestGetRecipeDetails(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)

	res, err := f.svc.GetRecipeDetails(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", res.Recipe.Title)
	assert.Len(t, res.Ingredients, 2)
	assert.Len(t, res.Steps, 2)
}

func TestGetRecipeDetailsHidesInactive(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, validCreateRequest(f.categoryID), f.userID.String())
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteRecipe(ctx, created.ID, f.userID.String()))

	_, err = f.svc.GetRecipeDetails(ctx, created.ID)
	assert.ErrorIs(t, err, domain.NewNotFound("Recipe"))
}
