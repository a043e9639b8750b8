package handler

import (
	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type StaticPageHandler struct {
	Handler
	pages *service.StaticPageService
}

func NewStaticPageHandler(s *server.Server, pages *service.StaticPageService) *StaticPageHandler {
	return &StaticPageHandler{
		Handler: NewHandler(s),
		pages:   pages,
	}
}

func (h *StaticPageHandler) ListPages(c echo.Context, _ *EmptyRequest) ([]model.StaticPage, error) {
	return h.pages.ListAll(c.Request().Context())
}

func (h *StaticPageHandler) GetPage(c echo.Context, req *PageNameRequest) (*model.StaticPage, error) {
	page, err := h.pages.GetByPageName(c.Request().Context(), req.PageName)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, service.ErrStaticPageNotFound(req.PageName)
	}
	return page, nil
}

func (h *StaticPageHandler) UpdatePage(c echo.Context, req *UpdateStaticPageRequest) (*model.StaticPage, error) {
	return h.pages.Update(c.Request().Context(), req.PageName, service.StaticPageDetails{
		Title:   req.Title,
		Content: req.Content,
		Extra:   nullIfBlank(req.Extra),
	})
}
