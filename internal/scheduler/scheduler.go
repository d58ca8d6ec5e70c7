package scheduler

import (
	"context"
	"fmt"
	"time"

	"meal-planner/domain"
	"meal-planner/entities"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2/log"
)

const DefaultDailyPlanAt = "06:00"

type (
	SubscriberSource interface {
		GetDailyPlanSubscribers(ctx context.Context) ([]*entities.User, error)
	}

	PlanSender interface {
		EmailDailyPlan(ctx context.Context, userID, toEmail, name, date string) error
	}

	DailyPlanJob struct {
		users SubscriberSource
		plans PlanSender
		now   func() time.Time
	}
)

func NewDailyPlanJob(users SubscriberSource, plans PlanSender) *DailyPlanJob {
	return &DailyPlanJob{users: users, plans: plans, now: time.Now}
}

// Run mails today's plan to every subscriber and returns how many mails
// went out. A failing user is logged and skipped.
func (j *DailyPlanJob) Run(ctx context.Context) (int, error) {
	users, err := j.users.GetDailyPlanSubscribers(ctx)
	if err != nil {
		return 0, err
	}

	date := j.now().Format(domain.DateLayout)
	sent := 0
	for _, u := range users {
		if err := j.plans.EmailDailyPlan(ctx, u.ID.String(), u.Email, u.Name, date); err != nil {
			log.Errorf("daily plan for %s: %v", u.Email, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// ParseAt reads an HH:MM wall clock time.
func ParseAt(at string) (uint, uint, error) {
	if at == "" {
		at = DefaultDailyPlanAt
	}
	t, err := time.Parse("15:04", at)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid DAILY_PLAN_AT %q: %w", at, err)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}

// Start registers the daily plan job at the given HH:MM and starts the
// scheduler. Callers own Shutdown.
func Start(job *DailyPlanJob, at string) (gocron.Scheduler, error) {
	hour, minute, err := ParseAt(at)
	if err != nil {
		return nil, err
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			sent, err := job.Run(context.Background())
			if err != nil {
				log.Errorf("daily plan job: %v", err)
				return
			}
			log.Infof("daily plan job sent %d mails", sent)
		}),
		gocron.WithName("daily-plan-email"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
