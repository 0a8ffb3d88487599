// Package testutil provides in-memory repository and cache fakes for
// service tests. The fakes mimic the GORM-backed implementations just
// enough for the services: misses surface gorm.ErrRecordNotFound and
// unique constraint hits surface gorm.ErrDuplicatedKey.
package testutil

import (
	"Recipe-Book-API/entities"
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserRepositoryFake struct {
	Users []*entities.User
}

func NewUserRepositoryFake() *UserRepositoryFake {
	return &UserRepositoryFake{}
}

func (f *UserRepositoryFake) CreateUser(_ context.Context, user *entities.User) error {
	for _, u := range f.Users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.CreatedAt = time.Now()
	f.Users = append(f.Users, user)
	return nil
}

func (f *UserRepositoryFake) SaveUser(_ context.Context, user *entities.User) error {
	for i, u := range f.Users {
		if u.ID == user.ID {
			f.Users[i] = user
			return nil
		}
	}
	f.Users = append(f.Users, user)
	return nil
}

func (f *UserRepositoryFake) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range f.Users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *UserRepositoryFake) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type CategoryRepositoryFake struct {
	Categories []*entities.Category
}

func NewCategoryRepositoryFake() *CategoryRepositoryFake {
	return &CategoryRepositoryFake{}
}

func (f *CategoryRepositoryFake) CreateCategory(_ context.Context, category *entities.Category) error {
	for _, c := range f.Categories {
		if c.Name == category.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	category.CreatedAt = time.Now()
	f.Categories = append(f.Categories, category)
	return nil
}

func (f *CategoryRepositoryFake) SaveCategory(_ context.Context, category *entities.Category) error {
	for i, c := range f.Categories {
		if c.ID == category.ID {
			f.Categories[i] = category
			return nil
		}
	}
	f.Categories = append(f.Categories, category)
	return nil
}

func (f *CategoryRepositoryFake) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	for _, c := range f.Categories {
		if c.ID.String() == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *CategoryRepositoryFake) GetCategoryByName(_ context.Context, name string) (*entities.Category, error) {
	for _, c := range f.Categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *CategoryRepositoryFake) GetCategories(_ context.Context, page, perPage int) ([]*entities.Category, int64, error) {
	total := int64(len(f.Categories))
	start := (page - 1) * perPage
	if start >= len(f.Categories) {
		return nil, total, nil
	}
	end := start + perPage
	if end > len(f.Categories) {
		end = len(f.Categories)
	}
	return f.Categories[start:end], total, nil
}

func (f *CategoryRepositoryFake) GetAllCategories(_ context.Context) ([]*entities.Category, error) {
	return f.Categories, nil
}

type RecipeRepositoryFake struct {
	Recipes     []*entities.Recipe
	Ingredients []*entities.RecipeIngredient
	Steps       []*entities.RecipeStep
}

func NewRecipeRepositoryFake() *RecipeRepositoryFake {
	return &RecipeRepositoryFake{}
}

func (f *RecipeRepositoryFake) CreateRecipeWithElements(_ context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, steps []*entities.RecipeStep) error {
	for _, r := range f.Recipes {
		if r.CreatedBy == recipe.CreatedBy &&
			strings.EqualFold(r.Title, recipe.Title) &&
			r.IsActive() && r.DeletedAt == nil {
			return gorm.ErrDuplicatedKey
		}
	}
	recipe.CreatedAt = time.Now()
	f.Recipes = append(f.Recipes, recipe)
	f.Ingredients = append(f.Ingredients, ingredients...)
	f.Steps = append(f.Steps, steps...)
	return nil
}

func (f *RecipeRepositoryFake) SaveRecipe(_ context.Context, recipe *entities.Recipe) error {
	for i, r := range f.Recipes {
		if r.ID == recipe.ID {
			f.Recipes[i] = recipe
			return nil
		}
	}
	f.Recipes = append(f.Recipes, recipe)
	return nil
}

func (f *RecipeRepositoryFake) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	for _, r := range f.Recipes {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *RecipeRepositoryFake) GetRecipeByUserIDAndTitle(_ context.Context, userID, title string) (*entities.Recipe, error) {
	for _, r := range f.Recipes {
		if r.CreatedBy.String() == userID &&
			strings.EqualFold(r.Title, title) &&
			r.IsActive() && r.DeletedAt == nil {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *RecipeRepositoryFake) GetRecipesByUserID(_ context.Context, userID string, page, perPage int, title, categoryID string) ([]*entities.Recipe, int64, error) {
	var matched []*entities.Recipe
	for _, r := range f.Recipes {
		if r.CreatedBy.String() != userID || !r.IsActive() || r.DeletedAt != nil {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(title)) {
			continue
		}
		if categoryID != "" && r.CategoryID.String() != categoryID {
			continue
		}
		matched = append(matched, r)
	}

	total := int64(len(matched))
	start := (page - 1) * perPage
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *RecipeRepositoryFake) GetRecipeDetails(ctx context.Context, id string) (*entities.Recipe, []*entities.RecipeIngredient, []*entities.RecipeStep, error) {
	recipe, err := f.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if !recipe.IsActive() || recipe.DeletedAt != nil {
		return nil, nil, nil, gorm.ErrRecordNotFound
	}

	var ingredients []*entities.RecipeIngredient
	for _, i := range f.Ingredients {
		if i.RecipeID == recipe.ID {
			ingredients = append(ingredients, i)
		}
	}
	var steps []*entities.RecipeStep
	for _, s := range f.Steps {
		if s.RecipeID == recipe.ID {
			steps = append(steps, s)
		}
	}
	return recipe, ingredients, steps, nil
}

type IngredientRepositoryFake struct {
	Ingredients []*entities.RecipeIngredient
}

func NewIngredientRepositoryFake() *IngredientRepositoryFake {
	return &IngredientRepositoryFake{}
}

func (f *IngredientRepositoryFake) CreateIngredient(_ context.Context, ingredient *entities.RecipeIngredient) error {
	ingredient.CreatedAt = time.Now()
	f.Ingredients = append(f.Ingredients, ingredient)
	return nil
}

func (f *IngredientRepositoryFake) SaveIngredient(_ context.Context, ingredient *entities.RecipeIngredient) error {
	for i, ing := range f.Ingredients {
		if ing.ID == ingredient.ID {
			f.Ingredients[i] = ingredient
			return nil
		}
	}
	f.Ingredients = append(f.Ingredients, ingredient)
	return nil
}

func (f *IngredientRepositoryFake) DeleteIngredient(_ context.Context, ingredient *entities.RecipeIngredient) error {
	for i, ing := range f.Ingredients {
		if ing.ID == ingredient.ID {
			f.Ingredients = append(f.Ingredients[:i], f.Ingredients[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *IngredientRepositoryFake) GetIngredientByID(_ context.Context, id string) (*entities.RecipeIngredient, error) {
	for _, i := range f.Ingredients {
		if i.ID.String() == id {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *IngredientRepositoryFake) GetIngredientsByRecipeID(_ context.Context, recipeID string, page, perPage int) ([]*entities.RecipeIngredient, int64, error) {
	var matched []*entities.RecipeIngredient
	for _, i := range f.Ingredients {
		if i.RecipeID.String() == recipeID {
			matched = append(matched, i)
		}
	}

	total := int64(len(matched))
	start := (page - 1) * perPage
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type StepRepositoryFake struct {
	Steps []*entities.RecipeStep
}

func NewStepRepositoryFake() *StepRepositoryFake {
	return &StepRepositoryFake{}
}

func (f *StepRepositoryFake) CreateStep(_ context.Context, step *entities.RecipeStep) error {
	for _, s := range f.Steps {
		if s.RecipeID == step.RecipeID && s.Step == step.Step {
			return gorm.ErrDuplicatedKey
		}
	}
	step.CreatedAt = time.Now()
	f.Steps = append(f.Steps, step)
	return nil
}

func (f *StepRepositoryFake) SaveStep(_ context.Context, step *entities.RecipeStep) error {
	for i, s := range f.Steps {
		if s.ID == step.ID {
			f.Steps[i] = step
			return nil
		}
	}
	f.Steps = append(f.Steps, step)
	return nil
}

func (f *StepRepositoryFake) DeleteStep(_ context.Context, step *entities.RecipeStep) error {
	for i, s := range f.Steps {
		if s.ID == step.ID {
			f.Steps = append(f.Steps[:i], f.Steps[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *StepRepositoryFake) GetStepByID(_ context.Context, id string) (*entities.RecipeStep, error) {
	for _, s := range f.Steps {
		if s.ID.String() == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *StepRepositoryFake) GetStepByRecipeIDAndNumber(_ context.Context, recipeID string, number int) (*entities.RecipeStep, error) {
	for _, s := range f.Steps {
		if s.RecipeID.String() == recipeID && s.Step == number {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *StepRepositoryFake) GetStepsByRecipeID(_ context.Context, recipeID string, page, perPage int) ([]*entities.RecipeStep, int64, error) {
	var matched []*entities.RecipeStep
	for _, s := range f.Steps {
		if s.RecipeID.String() == recipeID {
			matched = append(matched, s)
		}
	}

	total := int64(len(matched))
	start := (page - 1) * perPage
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// FavoriteRepositoryFake consults the recipe fake so its listing can
// filter out inactive recipes like the SQL join does.
type FavoriteRepositoryFake struct {
	Favorites []*entities.FavoriteRecipe
	Recipes   *RecipeRepositoryFake
}

func NewFavoriteRepositoryFake(recipes *RecipeRepositoryFake) *FavoriteRepositoryFake {
	return &FavoriteRepositoryFake{Recipes: recipes}
}

func (f *FavoriteRepositoryFake) CreateFavorite(_ context.Context, favorite *entities.FavoriteRecipe) error {
	for _, fav := range f.Favorites {
		if fav.CreatedBy == favorite.CreatedBy && fav.RecipeID == favorite.RecipeID {
			return gorm.ErrDuplicatedKey
		}
	}
	favorite.CreatedAt = time.Now()
	f.Favorites = append(f.Favorites, favorite)
	return nil
}

func (f *FavoriteRepositoryFake) DeleteFavorite(_ context.Context, favorite *entities.FavoriteRecipe) error {
	for i, fav := range f.Favorites {
		if fav.ID == favorite.ID {
			f.Favorites = append(f.Favorites[:i], f.Favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *FavoriteRepositoryFake) GetFavoriteByID(_ context.Context, id string) (*entities.FavoriteRecipe, error) {
	for _, fav := range f.Favorites {
		if fav.ID.String() == id {
			return fav, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *FavoriteRepositoryFake) ExistsByUserAndRecipe(_ context.Context, userID, recipeID string) (bool, error) {
	for _, fav := range f.Favorites {
		if fav.CreatedBy.String() == userID && fav.RecipeID.String() == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *FavoriteRepositoryFake) GetFavoritesByUserID(ctx context.Context, userID string, page, perPage int) ([]*entities.FavoriteRecipe, int64, error) {
	var matched []*entities.FavoriteRecipe
	for _, fav := range f.Favorites {
		if fav.CreatedBy.String() != userID {
			continue
		}
		recipe, err := f.Recipes.GetRecipeByID(ctx, fav.RecipeID.String())
		if err != nil || !recipe.IsActive() || recipe.DeletedAt != nil {
			continue
		}
		fav.Recipe = recipe
		matched = append(matched, fav)
	}

	total := int64(len(matched))
	start := (page - 1) * perPage
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// CacheFake is a map-backed stand-in for the redis cache.
type CacheFake struct {
	Entries map[string]cacheEntry
	Sets    int
	Deletes int
}

func NewCacheFake() *CacheFake {
	return &CacheFake{Entries: make(map[string]cacheEntry)}
}

func (c *CacheFake) Get(_ context.Context, key string, dest any) (bool, error) {
	entry, ok := c.Entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *CacheFake) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.Entries[key] = cacheEntry{data: data, expiresAt: time.Now().Add(ttl)}
	c.Sets++
	return nil
}

func (c *CacheFake) Delete(_ context.Context, key string) error {
	delete(c.Entries, key)
	c.Deletes++
	return nil
}

func (c *CacheFake) DeletePattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.Entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.Entries, key)
		}
	}
	c.Deletes++
	return nil
}
