package handler

import (
	"errors"
	"net/http"

	"gamevault/internal/auth"
	"gamevault/internal/config"
	"gamevault/internal/model"
	"gamevault/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const unexpectedErrorMessage = "Unexpected error occurred. Please try again later."

type Handler struct {
	accounts    service.AccountService
	catalog     service.CatalogService
	marketplace service.MarketplaceService
	tokens      *auth.TokenManager
	loginLimit  gin.HandlerFunc
	logger      zerolog.Logger
}

func NewHandler(
	accounts service.AccountService,
	catalog service.CatalogService,
	marketplace service.MarketplaceService,
	tokens *auth.TokenManager,
	rdb *redis.Client,
	rateCfg config.RateLimitConfig,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		accounts:    accounts,
		catalog:     catalog,
		marketplace: marketplace,
		tokens:      tokens,
		loginLimit:  RateLimitMiddleware(rateCfg, rdb),
		logger:      logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", h.View("gamer-index"))

	gamer := router.Group("/gamer")
	gamer.GET("/login", h.View("gamer-login"))
	gamer.GET("/registration", h.View("gamer-registration"))
	gamer.POST("/registration", h.Register)
	gamer.POST("/login", h.loginLimit, h.GamerLogin)

	gamerAuth := gamer.Group("", AuthMiddleware(h.tokens), RequireRole(model.RoleGamer))
	gamerAuth.GET("/home", h.GamerHome)
	gamerAuth.GET("/purchases", h.PurchaseHistory)
	gamerAuth.GET("/reservations", h.ReservationHistory)
	gamerAuth.GET("/cancellations", h.CancellationHistory)
	gamerAuth.POST("/buy", h.Buy)
	gamerAuth.POST("/reserve", h.Reserve)
	gamerAuth.POST("/reservations/cancel", h.CancelReservation)
	gamerAuth.POST("/reservations/buy", h.BuyReservation)

	admin := router.Group("/administrator")
	admin.GET("", h.View("administrator-index"))
	admin.GET("/login", h.View("administrator-login"))
	admin.GET("/registration", h.View("administrator-registration"))
	admin.POST("/login", h.loginLimit, h.AdministratorLogin)

	adminAuth := admin.Group("", AuthMiddleware(h.tokens), RequireRole(model.RoleAdministrator))
	adminAuth.GET("/home", h.AdministratorHome)
	adminAuth.POST("/games", h.AddGame)
	adminAuth.POST("/registration", h.RegisterAdministrator)

	return router
}

// operation selects the user facing wording of a failure
type operation string

const (
	opPurchase            operation = "purchase"
	opReservation         operation = "reservation"
	opCancellation        operation = "cancellation"
	opReservationPurchase operation = "reservation_purchase"
	opRegistration        operation = "registration"
	opLogin               operation = "login"
	opAccount             operation = "account"
	opCatalog             operation = "catalog"
)

var failureMessages = map[operation]map[error]string{
	opPurchase: {
		model.ErrInsufficientStock:   "Unsuccessful purchase - Insufficient video games available.",
		model.ErrInsufficientCredits: "Unsuccessful purchase - Insufficient credits to purchase video games in quantity specified.",
		model.ErrVideoGameNotFound:   "Unsuccessful purchase - Video Game specified is unavailable.",
		model.ErrInvalidQuantity:     "Unsuccessful purchase - Quantity must be at least 1.",
	},
	opReservation: {
		model.ErrInsufficientStock:   "Unsuccessful reservation - Insufficient video games available.",
		model.ErrInsufficientCredits: "Unsuccessful reservation - Insufficient credits to purchase video games in quantity specified.",
		model.ErrVideoGameNotFound:   "Unsuccessful reservation - Video Game specified is unavailable.",
		model.ErrInvalidQuantity:     "Unsuccessful reservation - Quantity must be at least 1.",
	},
	opCancellation: {
		model.ErrReservationNotFound: "Order to cancel cannot be found.",
		model.ErrVideoGameNotFound:   "Video Game specified in order cannot be found.",
	},
	opReservationPurchase: {
		model.ErrReservationNotFound: "Unsuccessful purchase - Reservation not found.",
		model.ErrVideoGameNotFound:   "Unsuccessful purchase - Video Game in Reservation not found.",
		model.ErrInsufficientCredits: "Unsuccessful purchase - Insufficient funds for payment of total payable credits.",
	},
}

// classify maps an error to its status, code and default message
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, model.ErrInvalidName):
		return http.StatusBadRequest, "INVALID_NAME", "Invalid name entered. Please enter a valid name."
	case errors.Is(err, model.ErrInvalidUsername):
		return http.StatusBadRequest, "INVALID_USERNAME", "Invalid username entered. Please enter a valid username."
	case errors.Is(err, model.ErrInvalidEmail):
		return http.StatusBadRequest, "INVALID_EMAIL", "Invalid email address entered. Please enter a valid email address."
	case errors.Is(err, model.ErrInvalidPassword):
		return http.StatusBadRequest, "INVALID_PASSWORD", "Invalid password entered. Please enter a valid password."
	case errors.Is(err, model.ErrUnavailableUsername):
		return http.StatusConflict, "USERNAME_UNAVAILABLE", "Username entered is unavailable. Please enter another username."
	case errors.Is(err, model.ErrUnavailableEmail):
		return http.StatusConflict, "EMAIL_UNAVAILABLE", "Email address entered is unavailable. Please enter another email address."
	case errors.Is(err, model.ErrLoginFailed):
		return http.StatusUnauthorized, "LOGIN_FAILED", "Invalid username and/or password. Please try again."
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", "Please log in to continue."
	case errors.Is(err, model.ErrInvalidQuantity):
		return http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1."
	case errors.Is(err, model.ErrInsufficientStock):
		return http.StatusBadRequest, "INSUFFICIENT_STOCK", "Insufficient video games available."
	case errors.Is(err, model.ErrInsufficientCredits):
		return http.StatusBadRequest, "INSUFFICIENT_CREDITS", "Insufficient credits."
	case errors.Is(err, model.ErrInvalidVideoGame):
		return http.StatusBadRequest, "INVALID_VIDEO_GAME", "Invalid video game details entered."
	case errors.Is(err, model.ErrDuplicateTitle):
		return http.StatusConflict, "DUPLICATE_TITLE", "A video game with this title already exists."
	case errors.Is(err, model.ErrVideoGameNotFound):
		return http.StatusNotFound, "VIDEO_GAME_NOT_FOUND", "Video Game specified is unavailable."
	case errors.Is(err, model.ErrReservationNotFound):
		return http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found."
	case errors.Is(err, model.ErrGamerNotFound):
		return http.StatusNotFound, "GAMER_NOT_FOUND", "Gamer account cannot be found."
	}
	return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", unexpectedErrorMessage
}

func (h *Handler) handleError(c *gin.Context, op operation, err error) {
	status, code, message := classify(err)

	if status == http.StatusInternalServerError {
		h.logger.WithLevel(zerolog.FatalLevel).
			Err(err).
			Str("operation", string(op)).
			Str("path", c.FullPath()).
			Msg("unexpected error")
	} else {
		for sentinel, msg := range failureMessages[op] {
			if errors.Is(err, sentinel) {
				message = msg
				break
			}
		}
		h.logger.Debug().Err(err).Str("operation", string(op)).Int("status", status).Msg("request rejected")
	}

	c.JSON(status, model.ErrorResponse{Error: message, Code: code})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

// View returns the name of a view that needs no data
func (h *Handler) View(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, model.ViewResponse{View: name})
	}
}
