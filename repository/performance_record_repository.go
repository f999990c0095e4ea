package repository

import (
	"context"

	"github.com/amirphl/copydesk/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceRecordRepositoryImpl implements the PerformanceRecordRepository interface
type PerformanceRecordRepositoryImpl struct {
	*BaseRepository[models.PerformanceRecord, models.PerformanceRecordFilter]
}

// NewPerformanceRecordRepository creates a new performance record repository
func NewPerformanceRecordRepository(db *gorm.DB) PerformanceRecordRepository {
	return &PerformanceRecordRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PerformanceRecord, models.PerformanceRecordFilter](db),
	}
}

// ByAdCopyID retrieves the records logged against an ad copy in insertion order
func (r *PerformanceRecordRepositoryImpl) ByAdCopyID(ctx context.Context, adCopyID uuid.UUID) ([]*models.PerformanceRecord, error) {
	filter := models.PerformanceRecordFilter{AdCopyID: &adCopyID}
	return r.ByFilter(ctx, filter, "created_at ASC", 0, 0)
}
