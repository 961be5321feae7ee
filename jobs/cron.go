package jobs

import (
	"github.com/robfig/cron/v3"

	"villadash/services/logger"
	"villadash/services/notification"
)

// DayRolloverSpec runs at midnight in the scheduler's location.
const DayRolloverSpec = "0 0 * * *"

// InitCronJobs registers the jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, notifier notification.Service, log logger.Logger) error {
	if _, err := c.AddFunc(DayRolloverSpec, DayRollover(notifier, log)); err != nil {
		return err
	}
	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

// DayRollover tells open dashboards to reload, so cells that were upcoming
// yesterday are shown as past.
func DayRollover(notifier notification.Service, log logger.Logger) func() {
	return func() {
		log.Info("day rollover, asking dashboards to refresh")
		if err := notifier.Broadcast(notification.Toast{
			Type:    notification.ToastRefresh,
			Message: "A new day has started",
		}); err != nil {
			log.Error("broadcast day rollover: %v", err)
		}
	}
}
