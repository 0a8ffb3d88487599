package routes

import (
	"Recipe-Book-API/internal/api/handlers"
	"Recipe-Book-API/internal/middleware"
	"Recipe-Book-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	CategoryHandler   handlers.CategoryHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	StepHandler       handlers.StepHandler
	FavoriteHandler   handlers.FavoriteHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Categories()
	c.Recipes()
	c.Ingredients()
	c.Steps()
	c.Favorites()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/login/google", c.UserHandler.LoginWithGoogle)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))
	{
		categories.Post("", c.CategoryHandler.CreateCategory)
		categories.Patch("/:id", c.CategoryHandler.EditCategory)
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/all", c.CategoryHandler.GetAllCategories)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetMyRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
		recipes.Patch("/:id", c.RecipeHandler.EditRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ingredients.Post("", c.IngredientHandler.CreateIngredient)
		ingredients.Get("/recipe/:recipe_id", c.IngredientHandler.GetIngredientsByRecipe)
		ingredients.Patch("/:id", c.IngredientHandler.EditIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Steps() {
	steps := c.App.Group("/api/v1/steps", c.Middleware.AuthMiddleware(c.JWTService))
	{
		steps.Post("", c.StepHandler.CreateStep)
		steps.Get("/recipe/:recipe_id", c.StepHandler.GetStepsByRecipe)
		steps.Patch("/:id", c.StepHandler.EditStep)
		steps.Delete("/:id", c.StepHandler.DeleteStep)
	}
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	{
		favorites.Post("", c.FavoriteHandler.CreateFavorite)
		favorites.Get("", c.FavoriteHandler.GetMyFavorites)
		favorites.Delete("/:id", c.FavoriteHandler.DeleteFavorite)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
