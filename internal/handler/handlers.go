package handler

import (
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Auth       *AuthHandler
	Category   *CategoryHandler
	Enquiry    *EnquiryHandler
	Product    *ProductHandler
	StaticPage *StaticPageHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Auth:       NewAuthHandler(s, services.Auth),
		Category:   NewCategoryHandler(s, services.Category),
		Enquiry:    NewEnquiryHandler(s, services.Enquiry),
		Product:    NewProductHandler(s, services.Product),
		StaticPage: NewStaticPageHandler(s, services.StaticPage),
	}
}
