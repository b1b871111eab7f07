package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/food-table-reservation/internal/model"
    "github.com/iliyamo/food-table-reservation/internal/repository"
)

// CreateMenuItem handles POST /v1/food-places/:id/menu.
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
    placeID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid food place id"})
    }
    var body struct {
        Name        string  `json:"name"`
        PriceCents  uint32  `json:"price_cents"`
        Description *string `json:"description"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    if body.PriceCents == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be positive"})
    }
    if _, err := h.Places.GetByID(c.Request().Context(), placeID); err != nil {
        if errors.Is(err, repository.ErrFoodPlaceNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "food place not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create menu item"})
    }
    item := &model.MenuItem{
        Name:        name,
        PriceCents:  body.PriceCents,
        Description: body.Description,
        FoodPlaceID: placeID,
    }
    if err := h.Menu.Create(c.Request().Context(), item); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "menu item already exists in this food place"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create menu item"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": item})
}

// ListMenu handles GET /v1/food-places/:id/menu.
func (h *CatalogHandler) ListMenu(c echo.Context) error {
    placeID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid food place id"})
    }
    items, err := h.Menu.ListByPlace(c.Request().Context(), placeID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetMenuItem handles GET /v1/menu-items/:id.
func (h *CatalogHandler) GetMenuItem(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    item, err := h.Menu.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrMenuItemNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu item"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": item})
}

// DeleteMenuItem handles DELETE /v1/menu-items/:id.
func (h *CatalogHandler) DeleteMenuItem(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Menu.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrMenuItemNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete menu item"})
    }
    return c.NoContent(http.StatusNoContent)
}
