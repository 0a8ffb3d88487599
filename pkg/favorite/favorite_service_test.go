package favorite_test

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/internal/testutil"
	"Recipe-Book-API/pkg/favorite"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favoriteFixture struct {
	svc         favorite.FavoriteService
	favorites   *testutil.FavoriteRepositoryFake
	recipes     *testutil.RecipeRepositoryFake
	userID      uuid.UUID
	otherUserID uuid.UUID
	recipeID    uuid.UUID
}

func newFavoriteFixture(t *testing.T) *favoriteFixture {
	t.Helper()

	recipes := testutil.NewRecipeRepositoryFake()
	favorites := testutil.NewFavoriteRepositoryFake(recipes)

	userID := uuid.New()
	recipeID := uuid.New()
	recipes.Recipes = append(recipes.Recipes, &entities.Recipe{
		ID:        recipeID,
		Title:     "Pancakes",
		Status:    entities.RecipeStatusActive,
		CreatedBy: userID,
	})

	return &favoriteFixture{
		svc:         favorite.NewFavoriteService(favorites, recipes),
		favorites:   favorites,
		recipes:     recipes,
		userID:      userID,
		otherUserID: uuid.New(),
		recipeID:    recipeID,
	}
}

func TestCreateFavorite(t *testing.T) {
	f := newFavoriteFixture(t)

	res, err := f.svc.CreateFavorite(context.Background(), domain.CreateFavoriteRequest{RecipeID: f.recipeID.String()}, f.userID.String())
	require.NoError(t, err)
	assert.Equal(t, f.recipeID.String(), res.RecipeID)
	assert.Len(t, f.favorites.Favorites, 1)
}

func TestCreateFavoriteOnlyForOwnRecipe(t *testing.T) {
	f := newFavoriteFixture(t)

	_, err := f.svc.CreateFavorite(context.Background(), domain.CreateFavoriteRequest{RecipeID: f.recipeID.String()}, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))
}

func TestCreateFavoriteGuards(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateFavorite(ctx, domain.CreateFavoriteRequest{RecipeID: uuid.NewString()}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewNotFound("Recipe"))

	require.NoError(t, f.recipes.Recipes[0].Inactivate(f.userID))
	_, err = f.svc.CreateFavorite(ctx, domain.CreateFavoriteRequest{RecipeID: f.recipeID.String()}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewInactive("Recipe"))
}

func TestCreateFavoriteTwice(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateFavorite(ctx, domain.CreateFavoriteRequest{RecipeID: f.recipeID.String()}, f.userID.String())
	require.NoError(t, err)

	_, err = f.svc.CreateFavorite(ctx, domain.CreateFavoriteRequest{RecipeID: f.recipeID.String()}, f.userID.String())
	assert.ErrorIs(t, err, domain.NewAlreadyExists("Favorite"))
}

func TestDeleteFavorite(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFavorite(ctx, domain.CreateFavoriteRequest{RecipeID: f.recipeID.String()}, f.userID.String())
	require.NoError(t, err)

	err = f.svc.DeleteFavorite(ctx, created.ID, f.otherUserID.String())
	assert.ErrorIs(t, err, domain.NewNotAllowed("User"))

	require.NoError(t, f.svc.DeleteFavorite(ctx, created.ID, f.userID.String()))
	assert.Empty(t, f.favorites.Favorites)

	err = f.svc.DeleteFavorite(ctx, created.ID, f.userID.String())
	assert.ErrorIs(t, err, domain.NewNotFound("Favorite"))
}

func TestGetMyFavoritesHidesInactiveRecipes(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	// a second recipe owned by the same user
	secondID := uuid.New()
	f.recipes.Recipes = append(f.recipes.Recipes, &entities.Recipe{
		ID:        secondID,
		Title:     "Waffles",
		Status:    entities.RecipeStatusActive,
		CreatedBy: f.userID,
	})

	_, err := f.svc.CreateFavorite(ctx, domain.CreateFavoriteRequest{RecipeID: f.recipeID.String()}, f.userID.String())
	require.NoError(t, err)
	_, err = f.svc.CreateFavorite(ctx, domain.CreateFavoriteRequest{RecipeID: secondID.String()}, f.userID.String())
	require.NoError(t, err)

	res, err := f.svc.GetMyFavorites(ctx, 1, 10, f.userID.String())
	require.NoError(t, err)
	assert.Len(t, res.Favorites, 2)
	require.NotNil(t, res.Favorites[0].Recipe)

	// soft-deleting a recipe drops it from the favorites listing
	require.NoError(t, f.recipes.Recipes[0].Inactivate(f.userID))

	res, err = f.svc.GetMyFavorites(ctx, 1, 10, f.userID.String())
	require.NoError(t, err)
	require.Len(t, res.Favorites, 1)
	assert.Equal(t, secondID.String(), res.Favorites[0].RecipeID)
	assert.EqualValues(t, 1, res.Meta.TotalCount)
}
