package billing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menu-app/config"
	"menu-app/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

var paymentCols = []string{"id", "user_id", "stripe_session_id", "amount_eur", "status", "created_at"}

func TestGetPaymentHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	database.DB, err = database.OpenWithConn(conn)
	require.NoError(t, err)

	// limit 2 asks for 3 rows to see whether another page exists
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE user_id = \$1 AND status = \$2 AND id < \$3 ORDER BY id DESC LIMIT \$4`).
		WithArgs(5, "paid", 40, 3).
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow(31, 5, "cs_31", 19.0, "paid", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)).
			AddRow(22, 5, "cs_22", 19.0, "paid", time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)).
			AddRow(10, 5, "cs_10", 19.0, "paid", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)))

	r := gin.New()
	r.GET("/payments", withUser(5), GetPaymentHistory)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments?status=paid&before=40&limit=2", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got PaymentsPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Payments, 2)
	assert.Equal(t, int64(1900), got.Payments[0].AmountCents)
	assert.Equal(t, "eur", got.Payments[0].Currency)
	require.NotNil(t, got.NextBefore)
	assert.Equal(t, uint(22), *got.NextBefore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentHistoryLastPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	database.DB, err = database.OpenWithConn(conn)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE user_id = \$1 ORDER BY id DESC LIMIT \$2`).
		WithArgs(5, 21).
		WillReturnRows(sqlmock.NewRows(paymentCols))

	r := gin.New()
	r.GET("/payments", withUser(5), GetPaymentHistory)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"payments":[]}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentHistoryRejectsBadPaging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/payments", withUser(5), GetPaymentHistory)

	for _, q := range []string{"?limit=0", "?limit=101", "?before=-1", "?limit=ten"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments"+q, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestGetPaymentHistoryRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/payments", GetPaymentHistory)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutWithoutStripeConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.STRIPE_SECRET_KEY = ""

	r := gin.New()
	r.POST("/create-checkout-session", withUser(5), CreateCheckoutSession)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/create-checkout-session", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCheckoutRejectsActiveProSubscriber(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key, price := config.STRIPE_SECRET_KEY, config.STRIPE_PRO_PRICE_ID
	config.STRIPE_SECRET_KEY, config.STRIPE_PRO_PRICE_ID = "sk_test_x", "price_pro"
	t.Cleanup(func() { config.STRIPE_SECRET_KEY, config.STRIPE_PRO_PRICE_ID = key, price })

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	database.DB, err = database.OpenWithConn(conn)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(5, "Ana", "ana@example.com"))
	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan", "status"}).AddRow(1, 5, "basic", "active"))

	r := gin.New()
	r.POST("/create-checkout-session", withUser(5), CreateCheckoutSession)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/create-checkout-session", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
