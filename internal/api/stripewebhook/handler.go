package stripewebhooks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"menu-app/config"
	"menu-app/database"
	"menu-app/internal/app/metrics"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
	"github.com/stripe/stripe-go/v75/webhook"
)

const maxBodyBytes = 65536

// fetchSubscription loads the full subscription behind a checkout session.
var fetchSubscription = func(id string) (*stripe.Subscription, error) {
	return subscription.Get(id, nil)
}

// errIgnore marks events that are acknowledged without any change, so Stripe
// does not retry them.
var errIgnore = errors.New("ignored")

func StripeWebhook(c *gin.Context) {
	log := logging.FromContext(c)

	endpointSecret := config.STRIPE_WEBHOOK_SECRET
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}
	stripe.Key = config.STRIPE_SECRET_KEY

	payload, err := readStripeBody(c, maxBodyBytes)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.WithError(err).Warn("stripe signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	eventType := string(event.Type)
	log = log.WithField("stripe_event", eventType).WithField("stripe_event_id", event.ID)

	switch eventType {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			metrics.RecordWebhookEvent(eventType, "invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		err = handleCheckoutSessionCompleted(database.DB, &session)

	case "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			metrics.RecordWebhookEvent(eventType, "invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		err = handleSubscriptionUpdated(database.DB, &sub)

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			metrics.RecordWebhookEvent(eventType, "invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		err = handleSubscriptionDeleted(database.DB, &sub)

	default:
		metrics.RecordWebhookEvent(eventType, "ignored")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	switch {
	case errors.Is(err, errIgnore):
		log.WithError(err).Info("stripe event ignored")
		metrics.RecordWebhookEvent(eventType, "ignored")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	case err != nil:
		// 500 makes Stripe retry later
		log.WithError(err).Error("stripe event failed")
		metrics.RecordWebhookEvent(eventType, "failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Info("stripe event handled")
		metrics.RecordWebhookEvent(eventType, "handled")
		c.JSON(http.StatusOK, gin.H{"status": "received"})
	}
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
