package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/siteforge/siteforge-api/internal/api/metrics"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

// WebsiteHandler handles HTTP requests for website operations.
type WebsiteHandler struct {
	service ports.WebsiteService
}

func NewWebsiteHandler(service ports.WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{service: service}
}

// Generate handles POST /api/generate.
//
// @Summary      Generate a website from a business description
// @Tags         websites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateSiteRequest  true  "Business description"
// @Success      201   {object}  generateSiteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/generate [post]
func (h *WebsiteHandler) Generate(c echo.Context) error {
	var req generateSiteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	start := time.Now()
	site, err := h.service.Generate(c.Request().Context(), ports.GenerateSiteInput{
		OwnerID:      actor.UserID,
		BusinessType: req.BusinessType,
		Industry:     req.Industry,
	})
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.GenerationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, generateSiteResponse{
		ID:      site.ID,
		Message: "website created successfully",
		Preview: "/preview/" + site.ID,
	})
}

// List handles GET /api/.
//
// @Summary      List all websites
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   websiteSummaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api [get]
func (h *WebsiteHandler) List(c echo.Context) error {
	summaries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponses(summaries))
}

// Get handles GET /api/:id.
//
// @Summary      Get a website by id
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Website id"
// @Success      200  {object}  websiteResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/{id} [get]
func (h *WebsiteHandler) Get(c echo.Context) error {
	site, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWebsiteResponse(site))
}

// Update handles PUT /api/:id. The body is either {"content": {...}} to patch
// nested content keys, or a flat object to patch top-level fields.
//
// @Summary      Update a website
// @Tags         websites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Website id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/{id} [put]
func (h *WebsiteHandler) Update(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(body) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no data provided for update")
	}

	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	in := ports.UpdateSiteInput{}
	if content, ok := body["content"].(map[string]any); ok {
		in.Content = content
	} else {
		in.Fields = body
	}

	if err := h.service.Update(c.Request().Context(), actor, c.Param("id"), in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "website updated successfully"})
}

// Delete handles DELETE /api/:id.
//
// @Summary      Delete a website
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Website id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/{id} [delete]
func (h *WebsiteHandler) Delete(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "website deleted successfully"})
}

// Preview handles GET /preview/:id — the public, unauthenticated view of a
// generated site's content.
//
// @Summary      Preview a generated website
// @Tags         websites
// @Produce      json
// @Param        id   path      string  true  "Website id"
// @Success      200  {object}  domain.WebsiteContent
// @Failure      404  {object}  errorResponse
// @Router       /preview/{id} [get]
func (h *WebsiteHandler) Preview(c echo.Context) error {
	content, err := h.service.Preview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}
