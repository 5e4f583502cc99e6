package jobs

import (
	"context"

	"launchpad-backend/internal/logger"
)

// ExpireSubscriptions flips ACTIVE subscriptions whose end date has passed
// to EXPIRED. Each row is updated by its own guarded statement and
// committed on its own, so the sweep can run alongside request traffic
// without holding a long transaction.
func (jr *JobRunner) ExpireSubscriptions() {
	jr.runExclusive("ExpireSubscriptions", func() {
		ctx := context.Background()

		candidates, err := jr.subRepo.ListExpiredActive(ctx)
		if err != nil {
			logger.Error("Failed to list expired subscriptions", "error", err)
			return
		}

		count := 0
		for _, sub := range candidates {
			expired, err := jr.subRepo.ExpireOne(ctx, sub.ID)
			if err != nil {
				logger.Error("Failed to expire subscription", "subscription_id", sub.ID, "error", err)
				continue
			}
			if expired {
				count++
				logger.Debug("Expired subscription",
					"subscription_id", sub.ID, "user_id", sub.UserID, "plan", sub.Plan)
			}
		}
		logger.Info("Expired subscriptions", "count", count, "candidates", len(candidates))
	})
}

// SendExpiryReminders emails holders of ACTIVE subscriptions that end
// within the configured window. Sends are fire-and-forget: a failed email
// is logged and the subscription stays unreminded for the next run.
func (jr *JobRunner) SendExpiryReminders() {
	jr.runExclusive("SendExpiryReminders", func() {
		ctx := context.Background()
		window := jr.config.Scheduler.ReminderWindowHours

		subs, emails, err := jr.subRepo.ListExpiringWithin(ctx, window)
		if err != nil {
			logger.Error("Failed to list expiring subscriptions", "error", err)
			return
		}

		sent := 0
		for i := range subs {
			sub := subs[i]
			if err := jr.emailSvc.SendExpiryReminder(ctx, emails[i], &sub); err != nil {
				logger.Error("Failed to send expiry reminder",
					"subscription_id", sub.ID, "error", err)
				continue
			}
			if err := jr.subRepo.MarkReminderSent(ctx, sub.ID); err != nil {
				logger.Error("Failed to mark reminder as sent",
					"subscription_id", sub.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent expiry reminders", "count", sent, "window_hours", window)
	})
}
