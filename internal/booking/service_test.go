package booking

import (
    "context"
    "errors"
    "regexp"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/food-table-reservation/internal/repository"
)

const (
    tableQ    = `SELECT id, table_number, max_seats, food_place_id FROM food_tables WHERE id = ?`
    hoursQ    = `SELECT p.open_time, p.close_time`
    insertQ   = `INSERT INTO reservations (user_id, food_table_id, start_time, duration_minutes) VALUES (?, ?, ?, ?)`
    readBackQ = `FROM reservations WHERE id = ?`
)

// scanQ matches the locking conflict scan and nothing else.
const scanQ = `FOR UPDATE`

// ownRowQ matches the ownership-checked load used by Reschedule.
const ownRowQ = `WHERE id = \? AND user_id = \? AND is_active = 1`

func newServiceMock(t *testing.T) (*Service, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    t.Cleanup(func() { _ = db.Close() })
    svc := NewService(db,
        repository.NewFoodTableRepo(db),
        repository.NewFoodPlaceRepo(db),
        repository.NewReservationRepo(db),
    )
    return svc, mock
}

func reservationRows() *sqlmock.Rows {
    return sqlmock.NewRows([]string{"id", "user_id", "food_table_id", "start_time", "duration_minutes", "is_active", "created_at"})
}

func expectTable(mock sqlmock.Sqlmock, tableID uint64) {
    mock.ExpectQuery(regexp.QuoteMeta(tableQ)).
        WithArgs(tableID).
        WillReturnRows(sqlmock.NewRows([]string{"id", "table_number", "max_seats", "food_place_id"}).
            AddRow(tableID, "T1", 4, 1))
}

func expectHours(mock sqlmock.Sqlmock, tableID uint64, open, close string) {
    mock.ExpectQuery(regexp.QuoteMeta(hoursQ)).
        WithArgs(tableID).
        WillReturnRows(sqlmock.NewRows([]string{"open_time", "close_time"}).AddRow(open, close))
}

func TestCreateReservationSuccess(t *testing.T) {
    svc, mock := newServiceMock(t)
    start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    mock.ExpectQuery(scanQ).WillReturnRows(reservationRows())
    mock.ExpectExec(regexp.QuoteMeta(insertQ)).
        WithArgs(uint64(3), uint64(5), start, 90).
        WillReturnResult(sqlmock.NewResult(42, 1))
    mock.ExpectQuery(regexp.QuoteMeta(readBackQ)).
        WithArgs(uint64(42)).
        WillReturnRows(reservationRows().AddRow(42, 3, 5, start, 90, true, created))
    mock.ExpectCommit()

    res, err := svc.CreateReservation(context.Background(), 3, 5, start, 90)
    require.NoError(t, err)
    assert.Equal(t, uint64(42), res.ID)
    assert.Equal(t, start.Add(90*time.Minute), res.EndTime())
    assert.True(t, res.IsActive)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationDurationBounds(t *testing.T) {
    svc, mock := newServiceMock(t)
    start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)

    // Bounds are checked before any database work happens.
    for _, minutes := range []int{0, 29, 241, -10} {
        _, err := svc.CreateReservation(context.Background(), 3, 5, start, minutes)
        assert.ErrorIs(t, err, ErrInvalidDuration)
    }
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationTableMissing(t *testing.T) {
    svc, mock := newServiceMock(t)
    start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    mock.ExpectQuery(regexp.QuoteMeta(tableQ)).
        WithArgs(uint64(99)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "table_number", "max_seats", "food_place_id"}))
    mock.ExpectRollback()

    _, err := svc.CreateReservation(context.Background(), 3, 99, start, 60)
    assert.ErrorIs(t, err, ErrTableNotFound)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationConflict(t *testing.T) {
    svc, mock := newServiceMock(t)
    start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    // Another customer already holds 17:30-19:00 on the same table.
    mock.ExpectQuery(scanQ).WillReturnRows(
        reservationRows().AddRow(7, 8, 5, start.Add(-30*time.Minute), 90, true, created))
    mock.ExpectRollback()

    _, err := svc.CreateReservation(context.Background(), 3, 5, start, 60)
    assert.ErrorIs(t, err, ErrTimeSlotOccupied)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationTouchingSlotAllowed(t *testing.T) {
    svc, mock := newServiceMock(t)
    // Existing booking 18:00-19:00; the candidate starts exactly at 19:00.
    start := time.Date(2025, 6, 12, 19, 0, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    mock.ExpectQuery(scanQ).WillReturnRows(
        reservationRows().AddRow(7, 8, 5, start.Add(-time.Hour), 60, true, created))
    mock.ExpectExec(regexp.QuoteMeta(insertQ)).
        WithArgs(uint64(3), uint64(5), start, 60).
        WillReturnResult(sqlmock.NewResult(43, 1))
    mock.ExpectQuery(regexp.QuoteMeta(readBackQ)).
        WithArgs(uint64(43)).
        WillReturnRows(reservationRows().AddRow(43, 3, 5, start, 60, true, created))
    mock.ExpectCommit()

    res, err := svc.CreateReservation(context.Background(), 3, 5, start, 60)
    require.NoError(t, err)
    assert.Equal(t, uint64(43), res.ID)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationOutsideHours(t *testing.T) {
    svc, mock := newServiceMock(t)
    // 21:30 + 120 minutes runs past a 22:00 close.
    start := time.Date(2025, 6, 12, 21, 30, 0, 0, time.UTC)

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    mock.ExpectQuery(scanQ).WillReturnRows(reservationRows())
    mock.ExpectRollback()

    _, err := svc.CreateReservation(context.Background(), 3, 5, start, 120)
    assert.ErrorIs(t, err, ErrOutsideOperatingHours)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationBeforeOpening(t *testing.T) {
    svc, mock := newServiceMock(t)
    // 09:00 is an hour before a 10:00 opening.
    start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    mock.ExpectQuery(scanQ).WillReturnRows(reservationRows())
    mock.ExpectRollback()

    _, err := svc.CreateReservation(context.Background(), 3, 5, start, 60)
    assert.ErrorIs(t, err, ErrOutsideOperatingHours)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationMorningAfterMidnightClose(t *testing.T) {
    svc, mock := newServiceMock(t)
    // A 22:00-02:00 place: 02:30 on the start's own date is 19.5 hours
    // before that night's window opens, not half an hour after it
    // closes, so the slot lands entirely before the window.
    start := time.Date(2025, 6, 12, 2, 30, 0, 0, time.UTC)

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "22:00:00", "02:00:00")
    mock.ExpectQuery(scanQ).WillReturnRows(reservationRows())
    mock.ExpectRollback()

    _, err := svc.CreateReservation(context.Background(), 3, 5, start, 60)
    assert.ErrorIs(t, err, ErrOutsideOperatingHours)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationMidnightWindow(t *testing.T) {
    svc, mock := newServiceMock(t)
    // The place closes at 02:00 the next day; 23:30 + 120 minutes fits.
    start := time.Date(2025, 6, 12, 23, 30, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "18:00:00", "02:00:00")
    mock.ExpectQuery(scanQ).WillReturnRows(reservationRows())
    mock.ExpectExec(regexp.QuoteMeta(insertQ)).
        WithArgs(uint64(3), uint64(5), start, 120).
        WillReturnResult(sqlmock.NewResult(44, 1))
    mock.ExpectQuery(regexp.QuoteMeta(readBackQ)).
        WithArgs(uint64(44)).
        WillReturnRows(reservationRows().AddRow(44, 3, 5, start, 120, true, created))
    mock.ExpectCommit()

    res, err := svc.CreateReservation(context.Background(), 3, 5, start, 120)
    require.NoError(t, err)
    assert.Equal(t, uint64(44), res.ID)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationRetriesDeadlockOnce(t *testing.T) {
    svc, mock := newServiceMock(t)
    start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
    deadlock := errors.New("Error 1213: Deadlock found when trying to get lock; try restarting transaction")

    // First attempt dies on the locking scan, second one goes through.
    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    mock.ExpectQuery(scanQ).WillReturnError(deadlock)
    mock.ExpectRollback()

    mock.ExpectBegin()
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    mock.ExpectQuery(scanQ).WillReturnRows(reservationRows())
    mock.ExpectExec(regexp.QuoteMeta(insertQ)).
        WithArgs(uint64(3), uint64(5), start, 60).
        WillReturnResult(sqlmock.NewResult(45, 1))
    mock.ExpectQuery(regexp.QuoteMeta(readBackQ)).
        WithArgs(uint64(45)).
        WillReturnRows(reservationRows().AddRow(45, 3, 5, start, 60, true, created))
    mock.ExpectCommit()

    res, err := svc.CreateReservation(context.Background(), 3, 5, start, 60)
    require.NoError(t, err)
    assert.Equal(t, uint64(45), res.ID)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationPersistentDeadlock(t *testing.T) {
    svc, mock := newServiceMock(t)
    start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)
    deadlock := errors.New("Error 1213: Deadlock found when trying to get lock; try restarting transaction")

    for i := 0; i < 2; i++ {
        mock.ExpectBegin()
        expectTable(mock, 5)
        expectHours(mock, 5, "10:00:00", "22:00:00")
        mock.ExpectQuery(scanQ).WillReturnError(deadlock)
        mock.ExpectRollback()
    }

    // A deadlock that survives the retry is reported as an occupied slot.
    _, err := svc.CreateReservation(context.Background(), 3, 5, start, 60)
    assert.ErrorIs(t, err, ErrTimeSlotOccupied)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRescheduleExcludesOwnRow(t *testing.T) {
    svc, mock := newServiceMock(t)
    oldStart := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)
    newStart := time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    mock.ExpectQuery(ownRowQ).
        WithArgs(uint64(7), uint64(3)).
        WillReturnRows(reservationRows().AddRow(7, 3, 5, oldStart, 60, true, created))
    expectTable(mock, 5)
    expectHours(mock, 5, "10:00:00", "22:00:00")
    // The scan returns the reservation being moved; it must not
    // conflict with itself.
    mock.ExpectQuery(scanQ).WillReturnRows(
        reservationRows().AddRow(7, 3, 5, oldStart, 60, true, created))
    mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET food_table_id = ?, start_time = ?, duration_minutes = ? WHERE id = ?`)).
        WithArgs(uint64(5), newStart, 60, uint64(7)).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()

    res, err := svc.Reschedule(context.Background(), 7, 3, Patch{StartTime: &newStart})
    require.NoError(t, err)
    assert.Equal(t, newStart, res.StartTime)
    assert.Equal(t, 60, res.DurationMinutes)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRescheduleNotFound(t *testing.T) {
    svc, mock := newServiceMock(t)
    newStart := time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC)

    mock.ExpectBegin()
    mock.ExpectQuery(ownRowQ).
        WithArgs(uint64(7), uint64(3)).
        WillReturnRows(reservationRows())
    mock.ExpectRollback()

    _, err := svc.Reschedule(context.Background(), 7, 3, Patch{StartTime: &newStart})
    assert.ErrorIs(t, err, ErrReservationNotFound)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRescheduleDurationBounds(t *testing.T) {
    svc, mock := newServiceMock(t)
    bad := 15

    _, err := svc.Reschedule(context.Background(), 7, 3, Patch{DurationMinutes: &bad})
    assert.ErrorIs(t, err, ErrInvalidDuration)
    assert.NoError(t, mock.ExpectationsWereMet())
}
