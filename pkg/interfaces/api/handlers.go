package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/domain/entities"
)

type reportsResponse struct {
	*dto.AnalysisResult
	Warnings []string `json:"warnings"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"counts": s.counts,
	})
}

func (s *Server) reports(c *fiber.Ctx) error {
	return c.JSON(reportsResponse{
		AnalysisResult: s.result,
		Warnings:       s.result.WarningMessages(),
	})
}

func (s *Server) supplierReport(c *fiber.Ctx) error {
	return c.JSON(s.result.SupplierRanking)
}

func (s *Server) warehouseReport(c *fiber.Ctx) error {
	return c.JSON(s.result.WarehouseRanking)
}

func (s *Server) productReport(c *fiber.Ctx) error {
	return c.JSON(s.result.ProductImpact)
}

func (s *Server) trendReport(c *fiber.Ctx) error {
	return c.JSON(s.result.RollingTrend)
}

// shipmentDelay derives the delay record of one shipment on request
func (s *Server) shipmentDelay(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "shipment id must be a positive integer")
	}

	shipment, err := s.shipments.GetShipment(id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "shipment "+strconv.FormatInt(id, 10)+" not found")
	}

	record, err := s.deriver.Derive(shipment)
	if err != nil {
		var refErr *entities.ReferentialIntegrityError
		var dataErr *entities.DataIntegrityError
		switch {
		case errors.Is(err, entities.ErrInTransit):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.As(err, &refErr), errors.As(err, &dataErr):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		default:
			return err
		}
	}
	return c.JSON(record)
}
