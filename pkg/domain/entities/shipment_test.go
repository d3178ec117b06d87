package entities

import (
	"strings"
	"testing"
	"time"
)

func TestNewShipment_Validation(t *testing.T) {
	order := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	delivery := time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)

	shipment, err := NewShipment(1, 3, 2, 1, 500, order, &delivery)
	if err != nil {
		t.Fatalf("Expected valid shipment creation to succeed: %v", err)
	}
	if shipment.InTransit() {
		t.Error("Expected delivered shipment not to be in transit")
	}

	testCases := []struct {
		name        string
		id          int64
		supplierID  int64
		quantity    int
		orderDate   time.Time
		expectError string
	}{
		{"zero id", 0, 1, 10, order, "shipment id must be positive, got 0"},
		{"missing supplier", 1, 0, 10, order, "references must be positive"},
		{"zero quantity", 1, 1, 0, order, "quantity must be positive, got 0"},
		{"negative quantity", 1, 1, -5, order, "quantity must be positive, got -5"},
		{"empty order date", 1, 1, 10, time.Time{}, "order date cannot be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewShipment(tc.id, tc.supplierID, 1, 1, tc.quantity, tc.orderDate, nil)
			if err == nil {
				t.Fatalf("Expected error containing %q, got none", tc.expectError)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestNewShipment_AllowsDeliveryBeforeOrder(t *testing.T) {
	order := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)
	delivery := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := NewShipment(7, 1, 1, 1, 100, order, &delivery); err != nil {
		t.Fatalf("Expected out-of-order dates to be representable, got %v", err)
	}
}

func TestNewShipment_InTransit(t *testing.T) {
	order := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)

	shipment, err := NewShipment(8, 1, 1, 1, 100, order, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !shipment.InTransit() {
		t.Error("Expected shipment without delivery date to be in transit")
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			"whole days",
			time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
			19,
		},
		{
			"late start early end",
			time.Date(2023, 1, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2023, 1, 2, 0, 1, 0, 0, time.UTC),
			1,
		},
		{
			"same day",
			time.Date(2023, 5, 5, 8, 0, 0, 0, time.UTC),
			time.Date(2023, 5, 5, 18, 0, 0, 0, time.UTC),
			0,
		},
		{
			"across leap day",
			time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			2,
		},
		{
			"across dst in local zone",
			time.Date(2023, 3, 11, 12, 0, 0, 0, time.FixedZone("EST", -5*3600)),
			time.Date(2023, 3, 13, 12, 0, 0, 0, time.FixedZone("EDT", -4*3600)),
			2,
		},
		{
			"negative span",
			time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			-9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.start, tc.end); got != tc.want {
				t.Errorf("Expected %d days, got %d", tc.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-07-04")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.Year() != 2023 || d.Month() != time.July || d.Day() != 4 {
		t.Errorf("Expected 2023-07-04, got %s", d.Format(DateLayout))
	}

	if _, err := ParseDate("07/04/2023"); err == nil {
		t.Error("Expected error for non ISO date, got none")
	}
}

func TestDelayRecord_Classification(t *testing.T) {
	testCases := []struct {
		delay  int
		late   bool
		severe bool
	}{
		{-2, false, false},
		{0, false, false},
		{1, true, false},
		{5, true, false},
		{6, true, true},
	}

	for _, tc := range testCases {
		r := DelayRecord{DelayDays: tc.delay}
		if r.Late() != tc.late {
			t.Errorf("delay %d: expected late=%v, got %v", tc.delay, tc.late, r.Late())
		}
		if r.Severe() != tc.severe {
			t.Errorf("delay %d: expected severe=%v, got %v", tc.delay, tc.severe, r.Severe())
		}
	}
}
