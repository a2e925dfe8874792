package main

import (
	"fmt"
	"log"
	"time"

	"cargoflow/config"
	"cargoflow/database"
	"cargoflow/models"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// sweepTarget names a table to purge so the summary email can report per-table
// counts.
type sweepTarget struct {
	Name  string
	Model interface{}
}

var sweepTargets = []sweepTarget{
	{"products", &models.Product{}},
	{"orders", &models.Order{}},
	{"order_lines", &models.OrderLine{}},
	{"containers", &models.Container{}},
	{"groupages", &models.Groupage{}},
	{"bookings", &models.Booking{}},
	{"suppliers", &models.Supplier{}},
	{"clients", &models.Client{}},
	{"transitaires", &models.Transitaire{}},
	{"projects", &models.Project{}},
	{"tasks", &models.Task{}},
	{"users", &models.User{}},
}

// sweepTrash permanently removes soft-deleted rows older than the retention
// window. Rows deleted more recently stay restorable through the trash API.
func sweepTrash(db *gorm.DB, retentionDays int) map[string]int64 {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	purged := make(map[string]int64)

	for _, target := range sweepTargets {
		res := db.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(target.Model)
		if res.Error != nil {
			log.Printf("sweep %s failed: %v", target.Name, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			log.Printf("sweep %s: purged %d rows", target.Name, res.RowsAffected)
		}
		purged[target.Name] = res.RowsAffected
	}

	return purged
}

func sendSweepReport(purged map[string]int64) error {
	if config.SMTPHost == "" || config.SweepReportTo == "" {
		return nil
	}

	var total int64
	body := "<html><body><h3>Trash sweep report</h3><ul>"
	for _, target := range sweepTargets {
		if n := purged[target.Name]; n > 0 {
			body += fmt.Sprintf("<li>%s: %d</li>", target.Name, n)
			total += n
		}
	}
	body += "</ul>"
	body += fmt.Sprintf("<p>Total rows purged: <strong>%d</strong></p>", total)
	body += "<p>This is an auto-generated email. Please do not reply.</p></body></html>"

	if total == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", config.SweepReportTo)
	msg.SetHeader("Subject", fmt.Sprintf("Trash sweep: %d rows purged", total))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}

func main() {
	config.LoadConfig()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	interval := time.Duration(config.SweepIntervalHours) * time.Hour
	log.Printf("trash sweeper running, retention %d days, interval %s", config.TrashRetentionDays, interval)

	// One pass at startup, then on the ticker.
	purged := sweepTrash(db, config.TrashRetentionDays)
	if err := sendSweepReport(purged); err != nil {
		log.Printf("sweep report email failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		purged := sweepTrash(db, config.TrashRetentionDays)
		if err := sendSweepReport(purged); err != nil {
			log.Printf("sweep report email failed: %v", err)
		}
	}
}
