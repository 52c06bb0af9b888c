package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"todoapi/internal/config"
	"todoapi/internal/database"
	"todoapi/internal/middleware"
	"todoapi/internal/modules/todo"
	"todoapi/internal/modules/todolist"
	"todoapi/internal/modules/user"
	jwtsvc "todoapi/internal/pkg/jwt"
	"todoapi/internal/repository"
	"todoapi/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Println("closing database:", err)
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}
	defer redisClient.Close()

	userRepo := repository.NewUserRepository(db)
	todoListRepo := repository.NewTodoListRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	codec := jwtsvc.NewCodec(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		cfg.AccessTokenLife,
		cfg.RefreshTokenLife,
	)
	sessions := session.NewStore(redisClient)

	userService := user.NewService(userRepo, sessions, codec, cfg.PasswordSecretKey)
	userHandler := user.NewHandler(userService)

	todoListService := todolist.NewService(todoListRepo, todoRepo)
	todoListHandler := todolist.NewHandler(todoListService)

	todoService := todo.NewService(todoRepo)
	todoHandler := todo.NewHandler(todoService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	root := r.Group("")
	{
		userHandler.RegisterPublicRoutes(root)

		protected := root.Group("")
		protected.Use(middleware.Authorize(codec))
		{
			userHandler.RegisterProtectedRoutes(protected)
			todoListHandler.RegisterRoutes(protected)
			todoHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
