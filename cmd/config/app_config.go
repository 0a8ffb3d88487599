package config

import (
	"Recipe-Book-API/internal/api/handlers"
	"Recipe-Book-API/internal/api/routes"
	"Recipe-Book-API/internal/middleware"
	"Recipe-Book-API/internal/utils"
	rediscache "Recipe-Book-API/internal/utils/cache"
	"Recipe-Book-API/pkg/category"
	"Recipe-Book-API/pkg/favorite"
	"Recipe-Book-API/pkg/googleauth"
	"Recipe-Book-API/pkg/hash"
	"Recipe-Book-API/pkg/ingredient"
	"Recipe-Book-API/pkg/jwt"
	"Recipe-Book-API/pkg/recipe"
	"Recipe-Book-API/pkg/step"
	"Recipe-Book-API/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, redisClient *redis.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	cache := rediscache.NewRedisCache(redisClient)

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	stepRepository := step.NewStepRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	hashProvider := hash.NewBcryptProvider()
	googleVerifier := googleauth.NewGoogleVerifier(utils.GetConfig("GOOGLE_CLIENT_ID"))
	userService := user.NewUserService(userRepository, hashProvider, jwtService, googleVerifier)
	categoryService := category.NewCategoryService(categoryRepository, cache)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, userRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, recipeRepository)
	stepService := step.NewStepService(stepRepository, recipeRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	stepHandler := handlers.NewStepHandler(stepService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		CategoryHandler:   categoryHandler,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		StepHandler:       stepHandler,
		FavoriteHandler:   favoriteHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
