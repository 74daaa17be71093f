package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tarimvitrin.com/app/internal/http/flash"
	"tarimvitrin.com/app/internal/http/handlers"
	"tarimvitrin.com/app/internal/http/middleware"
	"tarimvitrin.com/app/internal/http/render"
	"tarimvitrin.com/app/internal/http/sessioncookie"
	"tarimvitrin.com/app/internal/metrics"
	"tarimvitrin.com/app/internal/modules/storefront"
	"tarimvitrin.com/app/internal/shared/apperr"
	"tarimvitrin.com/app/internal/storage"
	"tarimvitrin.com/app/templates/static"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Runtime  *storefront.Runtime
	States   storage.StateStore
	Flash    *flash.Codec
	Sessions *sessioncookie.Codec
	// Metrics is optional; without it /metrics is not served.
	Metrics *metrics.Collector
}

func NewRouter(logger *slog.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ErrorHandler(logger, render.ErrorPage))
	r.Use(middleware.Recovery(logger))

	r.StaticFS("/static", http.FS(static.FS))
	r.GET("/healthz", handlers.Healthz)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	catalog := handlers.NewCatalogHandler(d.Runtime, d.States, d.Flash, logger)

	page := r.Group("/")
	page.Use(middleware.FlashMiddleware(d.Flash))
	page.Use(middleware.ViewSession(d.Sessions))
	{
		page.GET("/", catalog.Index)
		page.POST("/search", catalog.Search)
		page.POST("/reload", catalog.Reload)
		page.POST("/select/:id", catalog.Select)
		page.POST("/modal/close", catalog.CloseModal)

		admin := page.Group("/admin")
		admin.POST("/toggle", catalog.ToggleAdmin)
		admin.POST("/close", catalog.CloseAdmin)
		admin.POST("/edit/:id", catalog.Edit)
		admin.POST("/reset", catalog.ResetDraft)
		admin.POST("/products", catalog.Submit)
		admin.POST("/products/update", catalog.Update)
		admin.POST("/products/:id/delete", catalog.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.NotFoundErr("Sayfa bulunamadı."))
	})

	return r
}
