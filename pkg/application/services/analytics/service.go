package analytics

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/services"
)

// Service runs the four delay reports over a dataset
type Service struct {
	logger *zap.Logger

	// PerSupplierTrend computes one rolling series per supplier instead of a
	// single series across all shipments
	PerSupplierTrend bool
}

// NewService creates an analytics service. A nil logger disables logging.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger.Named("analytics")}
}

// Run derives delay records for every delivered shipment and computes the
// reports. A dangling reference aborts the run. Shipments delivered before
// their order date are dropped and reported in the result warnings.
func (s *Service) Run(ctx context.Context, ds *entities.Dataset) (*dto.AnalysisResult, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset cannot be nil")
	}

	result := &dto.AnalysisResult{}
	records := make([]entities.DelayRecord, 0, len(ds.Shipments))

	for _, shipment := range ds.Shipments {
		if shipment.InTransit() {
			result.InTransit++
		}
	}

	for record, err := range services.DeriveDelays(ds) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err != nil {
			var dataErr *entities.DataIntegrityError
			if errors.As(err, &dataErr) {
				s.logger.Warn("skipping shipment with invalid dates",
					zap.Int64("shipment_id", dataErr.ShipmentID),
					zap.Time("order_date", dataErr.OrderDate),
					zap.Time("delivery_date", dataErr.DeliveryDate))
				result.Warnings = append(result.Warnings, err)
				continue
			}
			return nil, fmt.Errorf("failed to derive delays: %w", err)
		}
		records = append(records, record)
	}

	result.Analyzed = len(records)
	if len(records) == 0 {
		s.logger.Warn("no delivered shipments to analyze",
			zap.Int("shipments", len(ds.Shipments)),
			zap.Int("in_transit", result.InTransit))
		result.Warnings = append(result.Warnings, entities.ErrEmptyDataset)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.SupplierRanking = SupplierRanking(records)
		return gctx.Err()
	})
	g.Go(func() error {
		result.WarehouseRanking = WarehouseRanking(records)
		return gctx.Err()
	})
	g.Go(func() error {
		result.ProductImpact = ProductImpact(records)
		return gctx.Err()
	})
	g.Go(func() error {
		if s.PerSupplierTrend {
			result.RollingTrend = RollingTrendBy(records, func(r entities.DelayRecord) string { return r.SupplierName })
		} else {
			result.RollingTrend = RollingTrend(records)
		}
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("analysis complete",
		zap.Int("analyzed", result.Analyzed),
		zap.Int("in_transit", result.InTransit),
		zap.Int("warnings", len(result.Warnings)))

	return result, nil
}
