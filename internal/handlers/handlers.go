package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"tartarus/api/internal/config"
	"tartarus/api/internal/mail"
	"tartarus/api/internal/middleware"
	"tartarus/api/internal/repository"
	"tartarus/api/internal/service"
)

type HandlerSet struct {
	log            zerolog.Logger
	cfg            *config.AppConfig
	db             *pgxpool.Pool
	cache          *redis.Client
	authService    *service.AuthService
	contactService *service.ContactService
	visitService   *service.VisitService
	users          *repository.UserRepository
	games          *repository.GameRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, mailer mail.Sender, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	contactRepo := repository.NewContactRepository(db)

	return HandlerSet{
		log:            log,
		cfg:            cfg,
		db:             db,
		cache:          cache,
		authService:    service.NewAuthService(userRepo, cfg, log),
		contactService: service.NewContactService(contactRepo, mailer, cfg, log),
		visitService:   service.NewVisitService(cache, log),
		users:          userRepo,
		games:          gameRepo,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	router.GET("/public", middleware.TrackVisits(h.visitService), h.PublicInfo)
	router.GET("/visits", h.Visits)
	router.GET("/visitors", h.Visitors)

	auth := router.Group("/auth")
	auth.POST("/register", h.RegisterUser)
	auth.POST("/login", h.Login)

	users := router.Group("/users")
	users.Use(middleware.Auth(h.cfg))
	users.GET("", h.ListUsers)

	games := router.Group("/games")
	games.GET("", h.ListGames)

	myGames := games.Group("")
	myGames.Use(middleware.Auth(h.cfg))
	myGames.GET("/me", h.MyGames)
	myGames.POST("/link", h.LinkGame)

	contact := router.Group("/contact")
	contact.Use(middleware.RateLimit(h.cfg.RateLimit, h.cache, h.log))
	contact.POST("", h.SubmitContact)
}
