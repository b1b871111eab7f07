package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/food-table-reservation/internal/model"
    "github.com/iliyamo/food-table-reservation/internal/repository"
)

// BasketHandler serves the customer's food baskets.  A basket gathers
// menu items from one food place; marking it ordered freezes it.
type BasketHandler struct {
    Baskets *repository.BasketRepo
    Menu    *repository.MenuItemRepo
    Places  *repository.FoodPlaceRepo
}

// NewBasketHandler constructs a BasketHandler.  All dependencies must
// be non-nil.
func NewBasketHandler(baskets *repository.BasketRepo, menu *repository.MenuItemRepo, places *repository.FoodPlaceRepo) *BasketHandler {
    if baskets == nil || menu == nil || places == nil {
        panic("nil dependency passed to NewBasketHandler")
    }
    return &BasketHandler{Baskets: baskets, Menu: menu, Places: places}
}

// Create handles POST /v1/baskets.  If the user already has an open
// basket for the food place it is returned instead of creating a second
// one.
func (h *BasketHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        FoodPlaceID uint64 `json:"food_place_id"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.FoodPlaceID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "food_place_id is required"})
    }
    if _, err := h.Places.GetByID(c.Request().Context(), body.FoodPlaceID); err != nil {
        if errors.Is(err, repository.ErrFoodPlaceNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "food place not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create basket"})
    }
    if open, err := h.Baskets.OpenByUserAndPlace(c.Request().Context(), userID, body.FoodPlaceID); err == nil {
        return c.JSON(http.StatusOK, echo.Map{"item": open})
    } else if !errors.Is(err, repository.ErrBasketNotFound) {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create basket"})
    }
    basket := &model.FoodBasket{UserID: userID, FoodPlaceID: body.FoodPlaceID}
    if err := h.Baskets.Create(c.Request().Context(), basket); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create basket"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": basket})
}

// List handles GET /v1/baskets and returns all of the user's baskets,
// open and ordered.
func (h *BasketHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    items, err := h.Baskets.ListByUser(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load baskets"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/baskets/:id and returns the basket together with
// its items.
func (h *BasketHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    basket, err := h.Baskets.GetByIDForUser(c.Request().Context(), id, userID)
    if err != nil {
        if errors.Is(err, repository.ErrBasketNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "basket not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch basket"})
    }
    items, err := h.Baskets.ItemsByBasket(c.Request().Context(), basket.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch basket"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": basket, "items": items})
}

// AddItem handles POST /v1/baskets/:id/items.  Items can only be added
// to an open basket, and the menu item must belong to the basket's food
// place.
func (h *BasketHandler) AddItem(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    basketID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        MenuItemID   uint64 `json:"menu_item_id"`
        ItemQuantity uint32 `json:"item_quantity"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.MenuItemID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "menu_item_id is required"})
    }
    if body.ItemQuantity == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "item_quantity must be positive"})
    }
    basket, err := h.Baskets.GetByIDForUser(c.Request().Context(), basketID, userID)
    if err != nil {
        if errors.Is(err, repository.ErrBasketNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "basket not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add item"})
    }
    if basket.IsOrdered {
        return c.JSON(http.StatusConflict, echo.Map{"error": "basket has already been ordered"})
    }
    menuItem, err := h.Menu.GetByID(c.Request().Context(), body.MenuItemID)
    if err != nil {
        if errors.Is(err, repository.ErrMenuItemNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add item"})
    }
    if menuItem.FoodPlaceID != basket.FoodPlaceID {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "menu item belongs to a different food place"})
    }
    item := &model.BasketItem{
        ItemQuantity: body.ItemQuantity,
        MenuItemID:   body.MenuItemID,
        FoodBasketID: basket.ID,
    }
    if err := h.Baskets.AddItem(c.Request().Context(), item); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add item"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": item})
}

// Order handles POST /v1/baskets/:id/order and turns the open basket
// into an order.  An empty basket cannot be ordered.
func (h *BasketHandler) Order(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    basketID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    items, err := h.Baskets.ItemsByBasket(c.Request().Context(), basketID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not order basket"})
    }
    if len(items) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "basket is empty"})
    }
    if err := h.Baskets.MarkOrdered(c.Request().Context(), basketID, userID, time.Now()); err != nil {
        if errors.Is(err, repository.ErrBasketNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "basket not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not order basket"})
    }
    basket, err := h.Baskets.GetByIDForUser(c.Request().Context(), basketID, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not order basket"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": basket})
}
