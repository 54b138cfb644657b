package billing

import (
	"net/http"
	"strconv"
	"time"

	"menu-app/database"
	"menu-app/internal/domain/billing"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PaymentDTO struct {
	ID             uint      `json:"id"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	SubscriptionID *string   `json:"stripe_subscription_id,omitempty"`
	PaidAt         time.Time `json:"paid_at"`
}

type PaymentsPage struct {
	Payments   []PaymentDTO `json:"payments"`
	NextBefore *uint        `json:"next_before,omitempty"`
}

func BuildPaymentsPage(list []billing.Payment, more bool) PaymentsPage {
	page := PaymentsPage{Payments: make([]PaymentDTO, 0, len(list))}
	for _, p := range list {
		page.Payments = append(page.Payments, PaymentDTO{
			ID:             p.ID,
			AmountCents:    int64(p.AmountEUR*100 + 0.5),
			Currency:       "eur",
			Status:         p.Status,
			SubscriptionID: p.StripeSubscriptionID,
			PaidAt:         p.CreatedAt,
		})
	}
	if more && len(list) > 0 {
		last := list[len(list)-1].ID
		page.NextBefore = &last
	}
	return page
}

func parseHistoryQuery(c *gin.Context, userID uint) (billing.HistoryQuery, bool) {
	q := billing.HistoryQuery{UserID: userID, Status: c.Query("status"), Limit: defaultPageSize}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageSize {
			return q, false
		}
		q.Limit = n
	}
	if raw := c.Query("before"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return q, false
		}
		q.BeforeID = uint(n)
	}
	return q, true
}

// GetPaymentHistory lists the caller's payments newest first. Pass
// next_before back as ?before to get the next page.
func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	q, ok := parseHistoryQuery(c, userID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit or cursor"})
		return
	}

	list, more, err := billing.History(database.DB, q)
	if err != nil {
		logging.FromContext(c).WithError(err).Error("billing: payment history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, BuildPaymentsPage(list, more))
}
