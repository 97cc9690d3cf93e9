package httpserver

import (
	"context"
	"errors"
	"log"

	"ai-store/internal/domain"
	authsvc "ai-store/internal/service/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService is the slice of the auth service the router needs.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in authsvc.ProfileInput) (*domain.User, error)
	AccessTTLSeconds() int
}

type ProductService interface {
	List(ctx context.Context, query, category, tags string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type OfferService interface {
	ListActive(ctx context.Context) ([]domain.Offer, error)
}

type OrderService interface {
	Create(ctx context.Context, userID string, items []domain.OrderItem) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string, requester domain.User) (*domain.Order, error)
	SetStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

// Deps bundles the services the router depends on.
type Deps struct {
	AuthSvc    AuthService
	ProductSvc ProductService
	OfferSvc   OfferService
	OrderSvc   OrderService
}

func (d Deps) validate() error {
	if d.AuthSvc == nil {
		return errors.New("auth service required")
	}
	if d.ProductSvc == nil {
		return errors.New("product service required")
	}
	if d.OfferSvc == nil {
		return errors.New("offer service required")
	}
	if d.OrderSvc == nil {
		return errors.New("order service required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/login", loginHandler(deps.AuthSvc))
	router.POST("/auth/logout", logoutHandler(deps.AuthSvc))

	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))
	router.GET("/offers", listOffersHandler(deps.OfferSvc))

	authed := router.Group("/", authRequired(deps.AuthSvc))
	authed.PUT("/profile", updateProfileHandler(deps.AuthSvc))
	authed.POST("/orders", createOrderHandler(deps.OrderSvc))
	authed.GET("/orders", listOrdersHandler(deps.OrderSvc))
	authed.GET("/orders/all", adminRequired(), listAllOrdersHandler(deps.OrderSvc))
	authed.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	authed.PUT("/orders/:id/status", adminRequired(), setOrderStatusHandler(deps.OrderSvc))

	return router, nil
}
