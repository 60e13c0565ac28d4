package server

import (
	"time"

	"backend-socialhub/internal/auth"
	"backend-socialhub/internal/config"
	"backend-socialhub/internal/post"
	"backend-socialhub/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	ttl := time.Duration(s.Cfg.TokenTTLMinutes) * time.Minute
	authSvc := auth.NewService(s.Cfg.JWTSecret, ttl, s.DB, s.Redis)

	auth.RegisterRoutes(s.App.Group("/api/auth"), authSvc)
	user.RegisterRoutes(s.App.Group("/api/users"), user.NewService(s.DB),
		authSvc.RequireAuth(), authSvc.RequireSelfOrAdmin("id"))
	post.RegisterRoutes(s.App.Group("/api/posts"), post.NewService(s.DB),
		authSvc.RequireAuth())
}
