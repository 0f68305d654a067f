package v1

import (
	"fmt"
	"net/http"
	"time"

	"go-form-template/config"
	"go-form-template/internal/delivery/http/middleware"
	"go-form-template/internal/delivery/http/response"
	"go-form-template/internal/delivery/http/web"
	"go-form-template/internal/domain"
	"go-form-template/internal/usecase"
	"go-form-template/pkg/formdef"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	FormUC     domain.FormUsecase
	Definition *formdef.Definition
	Redis      goredis.Scripter // optional, enables shared rate limit counters
	HealthUC   usecase.HealthUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	r := gin.New()

	cfg := deps.Config
	// nil trusts no proxy, so X-Forwarded-For cannot pick the rate limit key
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	locale := deps.Definition.Locale(cfg.FormLocale)

	globalLimit := middleware.DefaultRateLimitConfig()
	globalLimit.Limit = cfg.RateLimitGlobalThreshold
	globalLimit.Redis = deps.Redis

	submitLimit := middleware.SubmitRateLimitConfig(cfg.RateLimitSubmitThreshold, time.Duration(cfg.RateLimitWindowSeconds)*time.Second)
	submitLimit.Redis = deps.Redis
	submitLimiter := middleware.RateLimitMiddleware(submitLimit)

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.CookieSecure))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(globalLimit))
	r.Use(middleware.CSRFMiddleware(cfg.CookieSecure))

	// Pages
	NewPageHandler(r, submitLimiter, deps.FormUC, deps.Definition, locale, cfg.CookieSecure)

	v1 := r.Group("/v1")

	// Health Check
	healthUC := deps.HealthUC
	if healthUC == nil {
		healthUC = usecase.NewHealthUsecase(nil)
	}
	v1.GET("/health", func(c *gin.Context) {
		status, ok := healthUC.Check(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "Backing service unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// JSON API
	NewFormHandler(v1, submitLimiter, deps.FormUC, cfg.CookieSecure)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}
