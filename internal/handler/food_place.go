package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/food-table-reservation/internal/model"
    "github.com/iliyamo/food-table-reservation/internal/repository"
)

type foodPlaceReq struct {
    Name        string  `json:"name"`
    Address     string  `json:"address"`
    Description *string `json:"description"`
    LocationID  uint64  `json:"location_id"`
    OpenTime    string  `json:"open_time"`
    CloseTime   string  `json:"close_time"`
}

// placeFromReq validates the request body and builds a FoodPlace.  A
// close time earlier than the open time is legal and means the place
// stays open past midnight.
func placeFromReq(body foodPlaceReq) (*model.FoodPlace, string) {
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return nil, "name is required"
    }
    if body.LocationID == 0 {
        return nil, "location_id is required"
    }
    open, err := model.ParseTimeOfDay(body.OpenTime)
    if err != nil {
        return nil, "invalid open_time"
    }
    closeT, err := model.ParseTimeOfDay(body.CloseTime)
    if err != nil {
        return nil, "invalid close_time"
    }
    if open == closeT {
        return nil, "open_time and close_time must differ"
    }
    return &model.FoodPlace{
        Name:        name,
        Address:     strings.TrimSpace(body.Address),
        Description: body.Description,
        LocationID:  body.LocationID,
        OpenTime:    open,
        CloseTime:   closeT,
    }, ""
}

// CreateFoodPlace handles POST /v1/food-places.
func (h *CatalogHandler) CreateFoodPlace(c echo.Context) error {
    var body foodPlaceReq
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    place, msg := placeFromReq(body)
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    if _, err := h.Locations.GetByID(c.Request().Context(), place.LocationID); err != nil {
        if errors.Is(err, repository.ErrLocationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create food place"})
    }
    if err := h.Places.Create(c.Request().Context(), place); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "food place name already exists in this location"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create food place"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": place})
}

// ListFoodPlaces handles GET /v1/food-places.
func (h *CatalogHandler) ListFoodPlaces(c echo.Context) error {
    items, err := h.Places.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load food places"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetFoodPlace handles GET /v1/food-places/:id.
func (h *CatalogHandler) GetFoodPlace(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    place, err := h.Places.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrFoodPlaceNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "food place not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch food place"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": place})
}

// UpdateFoodPlace handles PUT /v1/food-places/:id.  The whole record is
// replaced; changing the operating window affects only future
// validations, existing reservations are not re-checked.
func (h *CatalogHandler) UpdateFoodPlace(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body foodPlaceReq
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    place, msg := placeFromReq(body)
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    place.ID = id
    if err := h.Places.Update(c.Request().Context(), place); err != nil {
        if errors.Is(err, repository.ErrFoodPlaceNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "food place not found"})
        }
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "food place name already exists in this location"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update food place"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": place})
}

// DeleteFoodPlace handles DELETE /v1/food-places/:id.
func (h *CatalogHandler) DeleteFoodPlace(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Places.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrFoodPlaceNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "food place not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete food place"})
    }
    return c.NoContent(http.StatusNoContent)
}
