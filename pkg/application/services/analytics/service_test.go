package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vsinha/supplychain/pkg/domain/entities"
	fixtures "github.com/vsinha/supplychain/pkg/infrastructure/testing"
)

func TestService_Run(t *testing.T) {
	svc := NewService(zap.NewNop())

	result, err := svc.Run(context.Background(), fixtures.BuildSupplyChainTestData())
	require.NoError(t, err)

	assert.Equal(t, 11, result.Analyzed)
	assert.Equal(t, 1, result.InTransit)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.SupplierRanking, 5)
	assert.Len(t, result.WarehouseRanking, 3)
	assert.Len(t, result.ProductImpact, 3)
	assert.Len(t, result.RollingTrend, 10)
}

func TestService_Run_Idempotent(t *testing.T) {
	svc := NewService(nil)
	ds := fixtures.BuildSupplyChainTestData()

	first, err := svc.Run(context.Background(), ds)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), ds)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	if !bytes.Equal(a, b) {
		t.Fatalf("Expected identical output across runs:\n%s", spew.Sdump(first, second))
	}
}

func TestService_Run_ReferentialErrorAborts(t *testing.T) {
	ds := fixtures.BuildSupplyChainTestData()
	ds.Shipments[4].WarehouseID = 99

	_, err := NewService(nil).Run(context.Background(), ds)
	require.Error(t, err)

	var refErr *entities.ReferentialIntegrityError
	require.True(t, errors.As(err, &refErr), "expected referential error, got %v", err)
	assert.Equal(t, int64(5), refErr.ShipmentID)
	assert.Equal(t, "warehouse", refErr.Entity)
}

func TestService_Run_DataIntegrityWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ds := fixtures.BuildSupplyChainTestData()
	ds.Shipments[0].DeliveryDate = fixtures.DatePtr(2022, 12, 1)

	result, err := NewService(zap.New(core)).Run(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, 10, result.Analyzed)
	require.Len(t, result.Warnings, 1)
	var dataErr *entities.DataIntegrityError
	assert.True(t, errors.As(result.Warnings[0], &dataErr))
	assert.Equal(t, 1, logs.FilterMessage("skipping shipment with invalid dates").Len())

	for _, row := range result.RollingTrend {
		assert.NotEqual(t, int64(1), row.ShipmentID)
	}
}

func TestService_Run_EmptyDataset(t *testing.T) {
	ds := fixtures.BuildSingleShipmentData()
	ds.Shipments[0].DeliveryDate = nil

	result, err := NewService(nil).Run(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Analyzed)
	assert.Equal(t, 1, result.InTransit)
	require.Len(t, result.Warnings, 1)
	assert.ErrorIs(t, result.Warnings[0], entities.ErrEmptyDataset)
	assert.NotNil(t, result.SupplierRanking)
	assert.Empty(t, result.SupplierRanking)
	assert.Empty(t, result.WarehouseRanking)
	assert.Empty(t, result.ProductImpact)
	assert.Empty(t, result.RollingTrend)
}

func TestService_Run_PerSupplierTrend(t *testing.T) {
	svc := NewService(nil)
	svc.PerSupplierTrend = true

	result, err := svc.Run(context.Background(), fixtures.BuildSupplyChainTestData())
	require.NoError(t, err)
	require.NotEmpty(t, result.RollingTrend)
	for _, row := range result.RollingTrend {
		assert.NotEmpty(t, row.Series)
	}
}

func TestService_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(nil).Run(ctx, fixtures.BuildSupplyChainTestData())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Run_NilDataset(t *testing.T) {
	_, err := NewService(nil).Run(context.Background(), nil)
	assert.Error(t, err)
}
