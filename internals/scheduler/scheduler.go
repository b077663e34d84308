// file: internals/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	attemptrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/repository"
	attemptsvc "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/service"
	candidaterepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	examinationrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
)

// Start runs the periodic batch assignment. The batch is idempotent, so an
// overlap with a manual assign-all or a retried run only produces skips.
func Start(db *gorm.DB) *cron.Cron {
	sched := attemptsvc.NewScheduler(
		attemptrepo.NewTestAttemptRepository(db),
		candidaterepo.NewCandidateRepository(db),
		examinationrepo.NewExaminationRepository(db),
	)

	c := cron.New()
	if _, err := c.AddFunc("@every 10m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		report, err := sched.AssignToAllUnassigned(ctx)
		if err != nil {
			log.Printf("[SCHEDULER] periodic assignment failed: %v", err)
			return
		}
		if report.AssignedCount > 0 || len(report.Failures) > 0 {
			log.Printf("[SCHEDULER] periodic assignment: assigned=%d skipped=%d failures=%d",
				report.AssignedCount, report.SkippedCount, len(report.Failures))
		}
	}); err != nil {
		log.Printf("[SCHEDULER] cron registration failed: %v", err)
	}
	c.Start()
	return c
}
