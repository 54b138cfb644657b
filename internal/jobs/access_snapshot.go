package jobs

import (
	"menu-app/internal/app/metrics"
	"menu-app/internal/domain/access"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/platform/clock"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CountAccess evaluates every restaurant at the same instant.
func CountAccess(rests []restaurants.Restaurant, subs []subscriptions.Subscription, now clock.Func) access.Counts {
	return access.Tally(rests, access.IndexByUser(subs), clock.OrSystem(now)())
}

// AccessSnapshot refreshes the restaurants-by-status gauge.
type AccessSnapshot struct {
	DB  *gorm.DB
	Now clock.Func
	Log *logrus.Logger
}

func (j *AccessSnapshot) Run() {
	var rests []restaurants.Restaurant
	if err := j.DB.Find(&rests).Error; err != nil {
		j.Log.WithError(err).Error("access snapshot: load restaurants")
		return
	}
	var subs []subscriptions.Subscription
	if err := j.DB.Find(&subs).Error; err != nil {
		j.Log.WithError(err).Error("access snapshot: load subscriptions")
		return
	}

	counts := CountAccess(rests, subs, j.Now)
	metrics.SetRestaurantsByStatus(counts.ByStatus,
		string(access.StatusPro), string(access.StatusTrial), string(access.StatusExpired))

	j.Log.WithFields(logrus.Fields{
		"restaurants":    len(rests),
		"pro":            counts.ByStatus[string(access.StatusPro)],
		"trial":          counts.ByStatus[string(access.StatusTrial)],
		"expired":        counts.ByStatus[string(access.StatusExpired)],
		"trial_warnings": counts.TrialWarnings,
	}).Info("access snapshot")
}

// Start schedules the job on spec and runs it once immediately. Call Stop on
// the returned scheduler at shutdown.
func Start(spec string, job *AccessSnapshot) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, err
	}
	go job.Run()
	c.Start()
	return c, nil
}
