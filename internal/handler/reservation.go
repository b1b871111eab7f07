package handler

import (
    "database/sql"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/food-table-reservation/internal/booking"
    "github.com/iliyamo/food-table-reservation/internal/model"
    "github.com/iliyamo/food-table-reservation/internal/queue"
    "github.com/iliyamo/food-table-reservation/internal/repository"
    queue_publisher "github.com/iliyamo/food-table-reservation/internal/service"
)

// timeLayout is the wire format for reservation instants.  Times are
// naive local clock values matching the food place's clock; no timezone
// designator is accepted or produced.
const timeLayout = "2006-01-02T15:04:05"

// ReservationHandler exposes booking endpoints.  Creation and
// rescheduling go through the booking engine, which owns all temporal
// validation; this layer only parses requests and maps the engine's
// rejection reasons onto HTTP status codes.
type ReservationHandler struct {
    Booking      *booking.Service
    Reservations *repository.ReservationRepo
}

// NewReservationHandler constructs a ReservationHandler.  All
// dependencies must be non-nil.
func NewReservationHandler(svc *booking.Service, reservations *repository.ReservationRepo) *ReservationHandler {
    if svc == nil || reservations == nil {
        panic("nil dependency passed to NewReservationHandler")
    }
    return &ReservationHandler{Booking: svc, Reservations: reservations}
}

type createReservationReq struct {
    FoodTableID     uint64 `json:"food_table_id"`
    StartTime       string `json:"start_time"`
    DurationMinutes int    `json:"duration_minutes"`
}

// createReservationDateTimeReq is the split form of the creation
// request: the calendar date and the clock time travel as separate
// fields and are combined server-side.
type createReservationDateTimeReq struct {
    FoodTableID     uint64 `json:"food_table_id"`
    Date            string `json:"date"`
    Time            string `json:"time"`
    DurationMinutes int    `json:"duration_minutes"`
}

type patchReservationReq struct {
    FoodTableID     *uint64 `json:"food_table_id"`
    StartTime       *string `json:"start_time"`
    DurationMinutes *int    `json:"duration_minutes"`
}

type reservationResp struct {
    ID              uint64 `json:"id"`
    UserID          uint64 `json:"user_id"`
    FoodTableID     uint64 `json:"food_table_id"`
    StartTime       string `json:"start_time"`
    EndTime         string `json:"end_time"`
    DurationMinutes int    `json:"duration_minutes"`
    IsActive        bool   `json:"is_active"`
}

func toReservationResp(r *model.Reservation) reservationResp {
    return reservationResp{
        ID:              r.ID,
        UserID:          r.UserID,
        FoodTableID:     r.FoodTableID,
        StartTime:       r.StartTime.Format(timeLayout),
        EndTime:         r.EndTime().Format(timeLayout),
        DurationMinutes: r.DurationMinutes,
        IsActive:        r.IsActive,
    }
}

// parseStart accepts "2006-01-02T15:04:05" with or without the seconds
// part and with a space instead of the T separator.
func parseStart(s string) (time.Time, error) {
    for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"} {
        if t, err := time.Parse(layout, s); err == nil {
            return t, nil
        }
    }
    return time.Time{}, errors.New("invalid start_time")
}

// combineDateTime builds a start instant from a "2006-01-02" date and a
// "15:04" or "15:04:05" clock value.
func combineDateTime(date, clock string) (time.Time, error) {
    d, err := time.Parse("2006-01-02", date)
    if err != nil {
        return time.Time{}, errors.New("invalid date")
    }
    tod, err := model.ParseTimeOfDay(clock)
    if err != nil {
        return time.Time{}, errors.New("invalid time")
    }
    return tod.At(d), nil
}

// bookingStatus maps a booking rejection onto its HTTP status code.
// Unknown errors fall through to 500.
func bookingStatus(err error) int {
    switch {
    case errors.Is(err, booking.ErrInvalidDuration), errors.Is(err, booking.ErrOutsideOperatingHours):
        return http.StatusBadRequest
    case errors.Is(err, booking.ErrTableNotFound), errors.Is(err, booking.ErrReservationNotFound):
        return http.StatusNotFound
    case errors.Is(err, booking.ErrTimeSlotOccupied):
        return http.StatusConflict
    }
    return http.StatusInternalServerError
}

// Create handles POST /v1/reservations.  The request carries a table
// reference, a naive start instant and a duration in minutes.  On
// success it returns 201 with the stored reservation and publishes a
// reservation.confirmed event best-effort.
func (h *ReservationHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createReservationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.FoodTableID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "food_table_id is required"})
    }
    start, err := parseStart(req.StartTime)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time"})
    }
    return h.book(c, userID, req.FoodTableID, start, req.DurationMinutes)
}

// CreateAtDateTime handles POST /v1/reservations/date-time, the split
// date+time form of creation.  It combines the fields and runs the same
// booking path as Create.
func (h *ReservationHandler) CreateAtDateTime(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createReservationDateTimeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.FoodTableID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "food_table_id is required"})
    }
    start, err := combineDateTime(req.Date, req.Time)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    return h.book(c, userID, req.FoodTableID, start, req.DurationMinutes)
}

// book runs the engine for a parsed creation request and writes the
// HTTP response, publishing the confirmation event on success.
func (h *ReservationHandler) book(c echo.Context, userID, tableID uint64, start time.Time, duration int) error {
    res, err := h.Booking.CreateReservation(c.Request().Context(), userID, tableID, start, duration)
    if err != nil {
        if code := bookingStatus(err); code != http.StatusInternalServerError {
            return c.JSON(code, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
    }
    _ = queue_publisher.PublishReservationConfirmed(c.Request().Context(), queue.ReservationConfirmedEvent{
        ReservationID:   res.ID,
        UserID:          res.UserID,
        FoodTableID:     res.FoodTableID,
        StartTime:       res.StartTime.Format(timeLayout),
        EndTime:         res.EndTime().Format(timeLayout),
        DurationMinutes: res.DurationMinutes,
        ConfirmedAt:     time.Now().UTC().Format(time.RFC3339),
    })
    return c.JSON(http.StatusCreated, echo.Map{"item": toReservationResp(res)})
}

// Patch handles PATCH /v1/reservations/:id.  Only the table, start and
// duration may change, and the patched reservation re-enters the full
// validation pipeline before anything is persisted.
func (h *ReservationHandler) Patch(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    resID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var req patchReservationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.FoodTableID == nil && req.StartTime == nil && req.DurationMinutes == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
    }
    var patch booking.Patch
    patch.FoodTableID = req.FoodTableID
    patch.DurationMinutes = req.DurationMinutes
    if req.StartTime != nil {
        start, err := parseStart(*req.StartTime)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time"})
        }
        patch.StartTime = &start
    }
    res, err := h.Booking.Reschedule(c.Request().Context(), resID, userID, patch)
    if err != nil {
        if code := bookingStatus(err); code != http.StatusInternalServerError {
            return c.JSON(code, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update reservation"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": toReservationResp(res)})
}

// List handles GET /v1/my-reservations.  It returns all reservations
// created by the current user, newest first.
func (h *ReservationHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    items, err := h.Reservations.ListByUser(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    out := make([]reservationResp, 0, len(items))
    for i := range items {
        out = append(out, toReservationResp(&items[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListAll handles GET /v1/reservations.  Admin-only: every reservation
// in the system.
func (h *ReservationHandler) ListAll(c echo.Context) error {
    items, err := h.Reservations.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    out := make([]reservationResp, 0, len(items))
    for i := range items {
        out = append(out, toReservationResp(&items[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/reservations/:id.  Ownership is enforced in the
// repository; a foreign reservation is indistinguishable from a missing
// one.
func (h *ReservationHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    resID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    res, err := h.Reservations.GetByIDForUser(c.Request().Context(), resID, userID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": toReservationResp(res)})
}

// Delete handles DELETE /v1/reservations/:id.  Cancellation is a soft
// delete: the row survives with is_active = 0 and stops participating
// in conflict checks.  Returns 404 when the reservation does not exist,
// is not owned by the caller, or was already cancelled.
func (h *ReservationHandler) Delete(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    resID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    if err := h.Reservations.DeactivateByIDForUser(c.Request().Context(), resID, userID); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete reservation"})
    }
    return c.NoContent(http.StatusNoContent)
}
