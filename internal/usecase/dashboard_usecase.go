package usecase

import (
	"context"
	"encoding/json"
	"time"

	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	dashboardStatsCacheKey = "dashboard:stats"
	dashboardStatsCacheTTL = 30 * time.Second
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	requestRepo      repository.PrescriptionRequestRepository
	prescriptionRepo repository.PrescriptionRepository
	redisClient      *redis.Client
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.PrescriptionRequestRepository,
	prescriptionRepo repository.PrescriptionRepository,
	redisClient *redis.Client,
) DashboardUsecase {
	return &dashboardUsecase{
		db:               db,
		log:              log,
		requestRepo:      requestRepo,
		prescriptionRepo: prescriptionRepo,
		redisClient:      redisClient,
	}
}

// GetStats returns the request counts for the dashboard header. Counts are
// cached briefly in Redis; approve and deny invalidate the cache so the
// numbers never lag a decision.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if cached, err := u.redisClient.Get(ctx, dashboardStatsCacheKey).Result(); err == nil {
		var stats dto.DashboardStatsResponse
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	} else if err != redis.Nil {
		u.log.Warnf("Failed to read dashboard stats cache: %+v", err)
	}

	var stats dto.DashboardStatsResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := u.requestRepo.CountByStatuses(u.db.WithContext(gctx), entity.OpenStatuses)
		stats.PendingCount = count
		return err
	})
	g.Go(func() error {
		count, err := u.prescriptionRepo.CountByStatus(u.db.WithContext(gctx), entity.PrescriptionStatusApproved)
		stats.ApprovedCount = count
		return err
	})
	g.Go(func() error {
		count, err := u.requestRepo.CountByStatuses(u.db.WithContext(gctx), []entity.RequestStatus{entity.RequestStatusDenied})
		stats.DeniedCount = count
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to count requests: %+v", err)
		return nil, err
	}

	if encoded, err := json.Marshal(&stats); err == nil {
		if err := u.redisClient.Set(ctx, dashboardStatsCacheKey, encoded, dashboardStatsCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache dashboard stats: %+v", err)
		}
	}

	return &stats, nil
}
