package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/food-table-reservation/internal/model"
    "github.com/iliyamo/food-table-reservation/internal/repository"
)

// CreateLocation handles POST /v1/locations and creates a new location.
func (h *CatalogHandler) CreateLocation(c echo.Context) error {
    var body struct {
        Name string `json:"name"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    loc := &model.Location{Name: name}
    if err := h.Locations.Create(c.Request().Context(), loc); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "location name already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create location"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": loc})
}

// ListLocations handles GET /v1/locations.
func (h *CatalogHandler) ListLocations(c echo.Context) error {
    items, err := h.Locations.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load locations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetLocation handles GET /v1/locations/:id.
func (h *CatalogHandler) GetLocation(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    loc, err := h.Locations.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrLocationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch location"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": loc})
}

// UpdateLocation handles PUT /v1/locations/:id and renames a location.
func (h *CatalogHandler) UpdateLocation(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        Name string `json:"name"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    loc := &model.Location{ID: id, Name: name}
    if err := h.Locations.Update(c.Request().Context(), loc); err != nil {
        if errors.Is(err, repository.ErrLocationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
        }
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "location name already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update location"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": loc})
}

// DeleteLocation handles DELETE /v1/locations/:id.  Food places in the
// location are removed by the database via ON DELETE CASCADE.
func (h *CatalogHandler) DeleteLocation(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Locations.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrLocationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete location"})
    }
    return c.NoContent(http.StatusNoContent)
}
