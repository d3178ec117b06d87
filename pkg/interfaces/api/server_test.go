package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/application/services/analytics"
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	fixtures "github.com/vsinha/supplychain/pkg/infrastructure/testing"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T, ds *entities.Dataset, cfg config.ServerConfig, logger *zap.Logger) *Server {
	t.Helper()
	result, err := analytics.NewService(nil).Run(context.Background(), ds)
	require.NoError(t, err)

	server, err := NewServer(ds, result, cfg, logger)
	require.NoError(t, err)
	return server
}

func get(t *testing.T, server *Server, path string, headers map[string]string) (status int, body []byte, requestID string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body, resp.Header.Get(HeaderRequestID)
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload["error"]
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, fixtures.BuildSupplyChainTestData(), config.ServerConfig{}, nil)

	status, body, _ := get(t, server, "/api/health", nil)
	require.Equal(t, fiber.StatusOK, status)

	var payload struct {
		Status string         `json:"status"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "ok", payload.Status)
	assert.Equal(t, 12, payload.Counts["Shipments"])
}

func TestReports(t *testing.T) {
	server := newTestServer(t, fixtures.BuildSupplyChainTestData(), config.ServerConfig{}, nil)

	status, body, _ := get(t, server, "/api/reports", nil)
	require.Equal(t, fiber.StatusOK, status)

	var payload struct {
		dto.AnalysisResult
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 11, payload.Analyzed)
	assert.Equal(t, 1, payload.InTransit)
	assert.Len(t, payload.SupplierRanking, 5)
	assert.Len(t, payload.WarehouseRanking, 3)
	assert.Len(t, payload.ProductImpact, 3)
	assert.Len(t, payload.RollingTrend, 10)
	assert.Empty(t, payload.Warnings)
}

func TestReportSections(t *testing.T) {
	server := newTestServer(t, fixtures.BuildSupplyChainTestData(), config.ServerConfig{}, nil)

	status, body, _ := get(t, server, "/api/reports/suppliers", nil)
	require.Equal(t, fiber.StatusOK, status)
	var suppliers []dto.SupplierRankingRow
	require.NoError(t, json.Unmarshal(body, &suppliers))
	require.Len(t, suppliers, 5)
	assert.Equal(t, "Asia Logistics Hub", suppliers[0].SupplierName)
	assert.Equal(t, "9.50", suppliers[0].AvgDelay.StringFixed(2))

	status, body, _ = get(t, server, "/api/reports/warehouses", nil)
	require.Equal(t, fiber.StatusOK, status)
	var warehouses []dto.WarehouseRankingRow
	require.NoError(t, json.Unmarshal(body, &warehouses))
	require.Len(t, warehouses, 3)
	assert.Equal(t, 1, warehouses[0].Rank)

	status, body, _ = get(t, server, "/api/reports/products", nil)
	require.Equal(t, fiber.StatusOK, status)
	var products []dto.ProductImpactRow
	require.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, 3)

	status, body, _ = get(t, server, "/api/reports/trend", nil)
	require.Equal(t, fiber.StatusOK, status)
	var trend []dto.TrendRow
	require.NoError(t, json.Unmarshal(body, &trend))
	require.Len(t, trend, 10)
	assert.Equal(t, int64(11), trend[0].ShipmentID)
}

func TestShipmentDelay(t *testing.T) {
	ds := fixtures.BuildSupplyChainTestData()
	ds.Shipments[1].DeliveryDate = fixtures.DatePtr(2022, 12, 30)
	server := newTestServer(t, ds, config.ServerConfig{}, nil)

	status, body, _ := get(t, server, "/api/shipments/1/delay", nil)
	require.Equal(t, fiber.StatusOK, status)
	var record entities.DelayRecord
	require.NoError(t, json.Unmarshal(body, &record))
	assert.Equal(t, int64(1), record.ShipmentID)
	assert.Equal(t, 19, record.ActualLeadTime)
	assert.Equal(t, 4, record.DelayDays)
	assert.Equal(t, "Asia Logistics Hub", record.SupplierName)

	testCases := []struct {
		name   string
		path   string
		status int
		errMsg string
	}{
		{"unknown shipment", "/api/shipments/999/delay", fiber.StatusNotFound, "shipment 999 not found"},
		{"invalid id", "/api/shipments/abc/delay", fiber.StatusBadRequest, "shipment id must be a positive integer"},
		{"in transit", "/api/shipments/12/delay", fiber.StatusConflict, "shipment 12: shipment is in transit"},
		{"delivered before order", "/api/shipments/2/delay", fiber.StatusUnprocessableEntity, "shipment 2 delivered 2022-12-30 before order date 2023-01-03"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body, _ := get(t, server, tc.path, nil)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.errMsg, errorMessage(t, body))
		})
	}
}

func TestShipmentDelay_DanglingReference(t *testing.T) {
	ds := fixtures.BuildSupplyChainTestData()
	server := newTestServer(t, ds, config.ServerConfig{}, nil)

	// The deriver indexes master data at construction, so a later reference
	// change surfaces as an integrity violation
	ds.Shipments[0].SupplierID = 99

	status, body, _ := get(t, server, "/api/shipments/1/delay", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "shipment 1 references unknown supplier 99", errorMessage(t, body))
}

func TestJWTProtection(t *testing.T) {
	cfg := config.ServerConfig{JWTSecret: testSecret, JWTIssuer: "supplychain"}
	server := newTestServer(t, fixtures.BuildSupplyChainTestData(), cfg, nil)

	status, _, _ := get(t, server, "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, status, "health stays public")

	status, body, _ := get(t, server, "/api/reports", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "missing authorization header", errorMessage(t, body))

	status, _, _ = get(t, server, "/api/shipments/1/delay", map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	valid, err := GenerateToken(testSecret, "supplychain", "analyst", time.Hour)
	require.NoError(t, err)
	status, _, _ = get(t, server, "/api/reports/suppliers", map[string]string{"Authorization": "Bearer " + valid})
	assert.Equal(t, fiber.StatusOK, status)

	wrongSecret, err := GenerateToken("other-secret", "supplychain", "analyst", time.Hour)
	require.NoError(t, err)
	status, _, _ = get(t, server, "/api/reports", map[string]string{"Authorization": "Bearer " + wrongSecret})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	wrongIssuer, err := GenerateToken(testSecret, "someone-else", "analyst", time.Hour)
	require.NoError(t, err)
	status, _, _ = get(t, server, "/api/reports", map[string]string{"Authorization": "Bearer " + wrongIssuer})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestGenerateToken_Validation(t *testing.T) {
	_, err := GenerateToken("", "supplychain", "analyst", time.Hour)
	assert.EqualError(t, err, "jwt secret cannot be empty")

	_, err = GenerateToken(testSecret, "supplychain", "analyst", 0)
	assert.EqualError(t, err, "token ttl must be positive, got 0s")
}

func TestRequestIDAndLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	server := newTestServer(t, fixtures.BuildSupplyChainTestData(), config.ServerConfig{}, zap.New(core))

	_, _, requestID := get(t, server, "/api/health", map[string]string{HeaderRequestID: "abc-123"})
	assert.Equal(t, "abc-123", requestID)

	_, _, requestID = get(t, server, "/api/shipments/999/delay", nil)
	assert.Len(t, requestID, 36, "generated request id should be a uuid")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "request", entries[0].Message)
	assert.Equal(t, "abc-123", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "client error", entries[1].Message)
	assert.Equal(t, int64(fiber.StatusNotFound), entries[1].ContextMap()["status"])
}

func TestNewServer_RequiresInputs(t *testing.T) {
	_, err := NewServer(nil, &dto.AnalysisResult{}, config.ServerConfig{}, nil)
	assert.Error(t, err)
}

func TestNewServer_RejectsDuplicateShipmentIDs(t *testing.T) {
	ds := fixtures.BuildSupplyChainTestData()
	duplicate := *ds.Shipments[0]
	ds.Shipments = append(ds.Shipments, &duplicate)

	_, err := NewServer(ds, &dto.AnalysisResult{}, config.ServerConfig{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate shipment ids found")
}
