package repositories

import (
	"errors"
	"fmt"
	"time"

	"cargoflow/models"

	"gorm.io/gorm"
)

// Document number prefixes.
const (
	PrefixOrder     = "CMD"
	PrefixContainer = "CTN"
	PrefixGroupage  = "GRP"
)

var errSequenceConflict = errors.New("sequence row updated concurrently")

type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// FormatNumber renders a document number like CMD2608310001.
func FormatNumber(prefix, day string, n int) string {
	return fmt.Sprintf("%s%s%04d", prefix, day, n)
}

// NextNumber hands out the next per-day number for a prefix. The bump is a
// conditional update on last_number, retried on conflict, so two concurrent
// callers never receive the same value.
func (r *SequenceRepository) NextNumber(prefix string) (string, error) {
	day := time.Now().Format("060102")

	for attempt := 0; attempt < 5; attempt++ {
		number, err := r.tryNext(prefix, day)
		if errors.Is(err, errSequenceConflict) {
			continue
		}
		if err != nil {
			return "", err
		}
		return FormatNumber(prefix, day, number), nil
	}
	return "", fmt.Errorf("could not reserve %s number for %s", prefix, day)
}

func (r *SequenceRepository) tryNext(prefix, day string) (int, error) {
	var number int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var seq models.Sequence
		err := tx.Where("prefix = ? AND day = ?", prefix, day).First(&seq).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seq = models.Sequence{Prefix: prefix, Day: day}
			if err := tx.Create(&seq).Error; err != nil {
				return errSequenceConflict
			}
		} else if err != nil {
			return err
		}

		res := tx.Model(&models.Sequence{}).
			Where("id = ? AND last_number = ?", seq.ID, seq.LastNumber).
			Update("last_number", seq.LastNumber+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errSequenceConflict
		}
		number = seq.LastNumber + 1
		return nil
	})
	return number, err
}
