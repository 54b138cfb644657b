package analytics

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestDayOfUsesLocalCalendar(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// 23:30 UTC on 3 March is already 4 March in Paris
	at := time.Date(2025, 3, 3, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), DayOf(at, paris))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), DayOf(at, nil))
}

func TestRecordViewUpserts(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "daily_views" .* ON CONFLICT \("restaurant_id","day"\) DO UPDATE SET "views"=daily_views.views \+ 1`).
		WithArgs("r-1", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := RecordView(db, "r-1", time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC), time.UTC)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewsSince(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "daily_views" WHERE restaurant_id = \$1 AND day >= \$2 ORDER BY day ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "day", "views"}).
			AddRow("r-1", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 4))

	rows, err := ViewsSince(db, "r-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(4), rows[0].Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFillDays(t *testing.T) {
	last := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	rows := []DailyView{
		{Day: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Views: 4},
		{Day: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), Views: 9},
	}

	got := FillDays(rows, last, 4)

	require.Len(t, got, 4)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got[0].Day)
	assert.Equal(t, []int64{0, 4, 0, 9}, []int64{got[0].Views, got[1].Views, got[2].Views, got[3].Views})
}
