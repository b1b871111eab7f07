package repository

import (
    "context"
    "database/sql"
    "regexp"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

func newReservationRepoMock(t *testing.T) (*ReservationRepo, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    t.Cleanup(func() { _ = db.Close() })
    return NewReservationRepo(db), mock
}

func TestCreateTxAssignsIDAndDefaults(t *testing.T) {
    repo, mock := newReservationRepoMock(t)
    start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reservations (user_id, food_table_id, start_time, duration_minutes) VALUES (?, ?, ?, ?)`)).
        WithArgs(uint64(3), uint64(5), start, 90).
        WillReturnResult(sqlmock.NewResult(42, 1))
    mock.ExpectQuery(regexp.QuoteMeta(`FROM reservations WHERE id = ?`)).
        WithArgs(uint64(42)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "food_table_id", "start_time", "duration_minutes", "is_active", "created_at"}).
            AddRow(42, 3, 5, start, 90, true, created))
    mock.ExpectCommit()

    tx, err := repo.DB().BeginTx(context.Background(), nil)
    require.NoError(t, err)
    res := &model.Reservation{UserID: 3, FoodTableID: 5, StartTime: start, DurationMinutes: 90}
    require.NoError(t, repo.CreateTx(context.Background(), tx, res))
    require.NoError(t, tx.Commit())

    // The insert never touches is_active or created_at; both come back
    // from the database.
    assert.Equal(t, uint64(42), res.ID)
    assert.True(t, res.IsActive)
    assert.Equal(t, created, res.CreatedAt)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveInRangeForUpdateTx(t *testing.T) {
    repo, mock := newReservationRepoMock(t)
    from := time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC)
    to := time.Date(2025, 6, 12, 23, 0, 0, 0, time.UTC)
    created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

    mock.ExpectBegin()
    mock.ExpectQuery(`FOR UPDATE`).
        WithArgs(uint64(5), from, to).
        WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "food_table_id", "start_time", "duration_minutes", "is_active", "created_at"}).
            AddRow(1, 3, 5, from.Add(4*time.Hour), 60, true, created).
            AddRow(2, 8, 5, from.Add(6*time.Hour), 120, true, created))
    mock.ExpectCommit()

    tx, err := repo.DB().BeginTx(context.Background(), nil)
    require.NoError(t, err)
    rows, err := repo.ActiveInRangeForUpdateTx(context.Background(), tx, 5, from, to)
    require.NoError(t, err)
    require.NoError(t, tx.Commit())

    require.Len(t, rows, 2)
    assert.Equal(t, uint64(1), rows[0].ID)
    assert.Equal(t, rows[0].StartTime.Add(time.Hour), rows[0].EndTime())
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateByIDForUser(t *testing.T) {
    repo, mock := newReservationRepoMock(t)

    mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET is_active = 0 WHERE id = ? AND user_id = ? AND is_active = 1`)).
        WithArgs(uint64(7), uint64(3)).
        WillReturnResult(sqlmock.NewResult(0, 1))

    require.NoError(t, repo.DeactivateByIDForUser(context.Background(), 7, 3))
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateByIDForUserMissing(t *testing.T) {
    repo, mock := newReservationRepoMock(t)

    // Already cancelled, absent, or owned by someone else: zero rows hit.
    mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET is_active = 0`)).
        WithArgs(uint64(7), uint64(3)).
        WillReturnResult(sqlmock.NewResult(0, 0))

    err := repo.DeactivateByIDForUser(context.Background(), 7, 3)
    assert.ErrorIs(t, err, sql.ErrNoRows)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserEmpty(t *testing.T) {
    repo, mock := newReservationRepoMock(t)

    mock.ExpectQuery(regexp.QuoteMeta(`FROM reservations WHERE user_id = ? ORDER BY start_time DESC`)).
        WithArgs(uint64(3)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "food_table_id", "start_time", "duration_minutes", "is_active", "created_at"}))

    rows, err := repo.ListByUser(context.Background(), 3)
    require.NoError(t, err)
    assert.NotNil(t, rows)
    assert.Empty(t, rows)
    assert.NoError(t, mock.ExpectationsWereMet())
}
