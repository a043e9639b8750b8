package router

import (
	"net/http"

	"github.com/eximroyals/backend/internal/handler"
	"github.com/eximroyals/backend/internal/middleware"
	"github.com/eximroyals/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes mounts the /api surface. Reads and enquiry submission
// are public; everything that changes content or exposes enquiries
// requires an admin token.
func registerAPIRoutes(api *echo.Group, s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) {
	requireAuth := mw.Auth.RequireAuth

	auth := api.Group("/auth")
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK))
	auth.GET("/me", handler.Handle(h.Auth.Handler, h.Auth.Me, http.StatusOK), requireAuth)

	categories := api.Group("/categories")
	categories.GET("", handler.Handle(h.Category.Handler, h.Category.ListCategories, http.StatusOK))
	categories.GET("/:id", handler.Handle(h.Category.Handler, h.Category.GetCategory, http.StatusOK))
	categories.POST("", handler.Handle(h.Category.Handler, h.Category.CreateCategory, http.StatusCreated), requireAuth)
	categories.PUT("/:id", handler.Handle(h.Category.Handler, h.Category.UpdateCategory, http.StatusOK), requireAuth)
	categories.DELETE("/:id", handler.HandleNoContent(h.Category.Handler, h.Category.DeleteCategory, http.StatusNoContent), requireAuth)

	products := api.Group("/products")
	products.GET("", handler.Handle(h.Product.Handler, h.Product.ListProducts, http.StatusOK))
	products.GET("/:id", handler.Handle(h.Product.Handler, h.Product.GetProduct, http.StatusOK))

	pages := api.Group("/static-pages")
	pages.GET("", handler.Handle(h.StaticPage.Handler, h.StaticPage.ListPages, http.StatusOK))
	pages.GET("/:pageName", handler.Handle(h.StaticPage.Handler, h.StaticPage.GetPage, http.StatusOK))
	pages.PUT("/:pageName", handler.Handle(h.StaticPage.Handler, h.StaticPage.UpdatePage, http.StatusOK), requireAuth)

	enquiries := api.Group("/enquiries")
	enquiries.POST("", handler.Handle(h.Enquiry.Handler, h.Enquiry.CreateEnquiry, http.StatusOK),
		mw.RateLimit.PerIP(s.Config.Server.EnquiryRateLimit))
	enquiries.GET("", handler.Handle(h.Enquiry.Handler, h.Enquiry.ListEnquiries, http.StatusOK), requireAuth)
}
