package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/food-table-reservation/internal/model"
    "github.com/iliyamo/food-table-reservation/internal/repository"
)

// CreateFoodTable handles POST /v1/food-places/:id/tables.
func (h *CatalogHandler) CreateFoodTable(c echo.Context) error {
    placeID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid food place id"})
    }
    var body struct {
        TableNumber string `json:"table_number"`
        MaxSeats    uint32 `json:"max_seats"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    number := strings.TrimSpace(body.TableNumber)
    if number == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_number is required"})
    }
    if body.MaxSeats == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_seats must be positive"})
    }
    if _, err := h.Places.GetByID(c.Request().Context(), placeID); err != nil {
        if errors.Is(err, repository.ErrFoodPlaceNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "food place not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create table"})
    }
    table := &model.FoodTable{
        TableNumber: number,
        MaxSeats:    body.MaxSeats,
        FoodPlaceID: placeID,
    }
    if err := h.Tables.Create(c.Request().Context(), table); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "table number already exists in this food place"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create table"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": table})
}

// ListFoodTables handles GET /v1/food-places/:id/tables.
func (h *CatalogHandler) ListFoodTables(c echo.Context) error {
    placeID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid food place id"})
    }
    items, err := h.Tables.ListByPlace(c.Request().Context(), placeID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tables"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetFoodTable handles GET /v1/tables/:id.
func (h *CatalogHandler) GetFoodTable(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    table, err := h.Tables.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrFoodTableNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch table"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": table})
}

// UpdateFoodTable handles PUT /v1/tables/:id.  Only the label and seat
// count change; moving a table between food places is not supported.
func (h *CatalogHandler) UpdateFoodTable(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        TableNumber string `json:"table_number"`
        MaxSeats    uint32 `json:"max_seats"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    number := strings.TrimSpace(body.TableNumber)
    if number == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_number is required"})
    }
    if body.MaxSeats == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_seats must be positive"})
    }
    table, err := h.Tables.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrFoodTableNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update table"})
    }
    table.TableNumber = number
    table.MaxSeats = body.MaxSeats
    if err := h.Tables.Update(c.Request().Context(), table); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "table number already exists in this food place"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update table"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": table})
}

// DeleteFoodTable handles DELETE /v1/tables/:id.
func (h *CatalogHandler) DeleteFoodTable(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Tables.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrFoodTableNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete table"})
    }
    return c.NoContent(http.StatusNoContent)
}
