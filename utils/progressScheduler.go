package utils

import (
	"log"
	"strconv"
	"time"

	"istem/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileEnrollmentProgress recomputes every enrollment's cached
// percentage from raw lesson and completion counts. A crash between
// writing a completion record and updating the enrollment leaves the
// cache stale; the request path only heals the one enrollment it
// touches, so this sweeps the rest. last_accessed is left alone.
func reconcileEnrollmentProgress(db *gorm.DB) {
	var enrollments []models.Enrollment
	if err := db.Find(&enrollments).Error; err != nil {
		logScheduler("Error fetching enrollments: " + err.Error())
		return
	}

	reconciled := 0
	for _, enrollment := range enrollments {
		var totalLessons int64
		var completedLessons int64

		db.Model(&models.Lesson{}).Where("course_id = ?", enrollment.CourseID).Count(&totalLessons)
		db.Model(&models.ProgressRecord{}).
			Where("user_id = ? AND course_id = ? AND completed = ?", enrollment.UserID, enrollment.CourseID, true).
			Count(&completedLessons)

		percentage := 0.0
		if totalLessons > 0 {
			percentage = float64(completedLessons) / float64(totalLessons) * 100
		}

		if percentage == enrollment.ProgressPercentage {
			continue
		}

		if err := db.Model(&models.Enrollment{}).Where("id = ?", enrollment.ID).
			Update("progress_percentage", percentage).Error; err != nil {
			logScheduler("Error updating enrollment: " + err.Error())
			continue
		}
		reconciled++
	}

	if reconciled > 0 {
		logScheduler("Reconciled " + strconv.Itoa(reconciled) + " stale enrollment(s)")
	}
}

// StartProgressScheduler runs the progress reconciler hourly. The
// returned cron can be stopped on shutdown.
func StartProgressScheduler(db *gorm.DB) *cron.Cron {
	scheduler := cron.New()

	_, err := scheduler.AddFunc("@hourly", func() {
		logScheduler("Starting enrollment progress sweep")
		reconcileEnrollmentProgress(db)
	})
	if err != nil {
		log.Fatalf("Failed to schedule progress reconciler: %v", err)
	}

	scheduler.Start()
	return scheduler
}
