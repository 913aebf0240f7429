package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/models"
	"github.com/fittrack-dev/fittrack/internal/validate"
)

const weightTrendDays = 7

// MetricsService records water and weight entries and computes the
// dashboard summary.
type MetricsService struct {
	db *gorm.DB
}

func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

type LogWaterInput struct {
	AmountML  int    `json:"amount_ml"`
	Timestamp string `json:"timestamp"`
}

type LogWeightInput struct {
	WeightKG float64 `json:"weight_kg"`
	Date     string  `json:"date"`
}

// LogWater appends one water entry. The timestamp defaults to now.
func (s *MetricsService) LogWater(ctx context.Context, userID uint, input LogWaterInput) (*models.WaterLog, error) {
	if errs := validate.WaterLogPayload(input.AmountML); len(errs) > 0 {
		return nil, apperror.NewValidation(errs)
	}

	timestamp := time.Now().UTC()
	if input.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, input.Timestamp)
		if err != nil {
			return nil, apperror.NewValidation([]string{"Timestamp must be a valid RFC 3339 timestamp"})
		}
		timestamp = parsed.UTC()
	}

	entry := models.WaterLog{
		UserID:    userID,
		AmountML:  input.AmountML,
		Timestamp: timestamp,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &entry, nil
}

// LogWeight upserts by (user, date): a second write on the same date
// updates the stored value instead of inserting a new row. The returned
// bool reports whether a new row was created.
func (s *MetricsService) LogWeight(ctx context.Context, userID uint, input LogWeightInput) (*models.WeightLog, bool, error) {
	if errs := validate.WeightLogPayload(input.WeightKG, input.Date); len(errs) > 0 {
		return nil, false, apperror.NewValidation(errs)
	}

	date := today()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return nil, false, apperror.NewValidation([]string{"Date must be a valid date in YYYY-MM-DD format"})
		}
		date = parsed
	}

	var (
		entry   models.WeightLog
		created bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
		switch {
		case err == nil:
			entry.WeightKG = input.WeightKG
			return tx.Model(&entry).Update("weight_kg", input.WeightKG).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			entry = models.WeightLog{
				UserID:   userID,
				WeightKG: input.WeightKG,
				Date:     date,
			}
			return tx.Create(&entry).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, apperror.NewInternal(err)
	}

	return &entry, created, nil
}

// WaterTotalForDay sums the user's water entries whose timestamp falls on
// the given calendar day. No entries means zero, not an error.
func (s *MetricsService) WaterTotalForDay(ctx context.Context, userID uint, day time.Time) (int, error) {
	dayStart := dateOf(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var total int
	err := s.db.WithContext(ctx).Model(&models.WaterLog{}).
		Select("COALESCE(SUM(amount_ml), 0)").
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, dayStart, dayEnd).
		Scan(&total).Error
	if err != nil {
		return 0, apperror.NewInternal(err)
	}

	return total, nil
}

// LatestWeight returns the most recent weight entry, or nil when the user
// has never logged one.
func (s *MetricsService) LatestWeight(ctx context.Context, userID uint) (*models.WeightLog, error) {
	var entry models.WeightLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.NewInternal(err)
	}
	return &entry, nil
}

// WeightTrend returns the trailing week of weight entries, ascending by
// date.
func (s *MetricsService) WeightTrend(ctx context.Context, userID uint) ([]models.WeightLog, error) {
	since := today().AddDate(0, 0, -(weightTrendDays - 1))

	var logs []models.WeightLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return logs, nil
}
