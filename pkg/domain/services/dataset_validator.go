package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// DatasetValidator checks a dataset for structural problems before analysis
type DatasetValidator struct{}

// NewDatasetValidator creates a new dataset validator
func NewDatasetValidator() *DatasetValidator {
	return &DatasetValidator{}
}

// ValidationResult contains the results of dataset validation
type ValidationResult struct {
	DanglingReferences []*entities.ReferentialIntegrityError
	DateViolations     []*entities.DataIntegrityError
	DuplicateIDs       map[string][]int64
	DuplicateNames     map[string][]string
	UnusedSuppliers    []string
	InTransit          int
	Errors             []string
	Warnings           []string
}

// Valid reports whether the dataset can be analyzed without fatal errors
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) addError(err error) {
	switch e := err.(type) {
	case *entities.ReferentialIntegrityError:
		r.DanglingReferences = append(r.DanglingReferences, e)
		r.Errors = append(r.Errors, e.Error())
	case *entities.DataIntegrityError:
		r.DateViolations = append(r.DateViolations, e)
		r.Warnings = append(r.Warnings, e.Error())
	default:
		r.Errors = append(r.Errors, err.Error())
	}
}

// ValidateDataset performs identity, referential, date and naming checks on a dataset
func (v *DatasetValidator) ValidateDataset(ds *entities.Dataset) *ValidationResult {
	result := &ValidationResult{
		DuplicateIDs:   make(map[string][]int64),
		DuplicateNames: make(map[string][]string),
		Errors:         make([]string, 0),
		Warnings:       make([]string, 0),
	}

	v.detectDuplicateIDs(ds, result)

	deriver := NewDelayDeriver(ds)
	usedSuppliers := make(map[int64]bool)

	for _, s := range ds.Shipments {
		if s.InTransit() {
			result.InTransit++
			// In-transit shipments are not derived but must still resolve
			if _, _, _, err := deriver.resolve(s); err != nil {
				result.addError(err)
			}
			continue
		}
		if _, err := deriver.Derive(s); err != nil {
			result.addError(err)
			continue
		}
		usedSuppliers[s.SupplierID] = true
	}

	v.detectDuplicateNames(ds, result)

	for _, s := range ds.Suppliers {
		if !usedSuppliers[s.ID] {
			result.UnusedSuppliers = append(result.UnusedSuppliers, s.Name)
		}
	}
	if len(result.UnusedSuppliers) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Suppliers without delivered shipments are excluded from rankings: %s",
				strings.Join(result.UnusedSuppliers, ", ")))
	}

	return result
}

// detectDuplicateIDs reports ids that appear more than once in a table.
// Lookups by id would silently keep only the last row, so these are fatal.
func (v *DatasetValidator) detectDuplicateIDs(ds *entities.Dataset, result *ValidationResult) {
	check := func(kind string, ids []int64) {
		seen := make(map[int64]int, len(ids))
		var dups []int64
		for _, id := range ids {
			seen[id]++
			if seen[id] == 2 {
				dups = append(dups, id)
			}
		}
		if len(dups) == 0 {
			return
		}
		sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
		result.DuplicateIDs[kind] = dups
		for _, id := range dups {
			result.Errors = append(result.Errors, fmt.Sprintf("duplicate %s id %d", kind, id))
		}
	}

	ids := make([]int64, 0, len(ds.Shipments))
	for _, s := range ds.Suppliers {
		ids = append(ids, s.ID)
	}
	check("supplier", ids)

	ids = ids[:0]
	for _, p := range ds.Products {
		ids = append(ids, p.ID)
	}
	check("product", ids)

	ids = ids[:0]
	for _, w := range ds.Warehouses {
		ids = append(ids, w.ID)
	}
	check("warehouse", ids)

	ids = ids[:0]
	for _, s := range ds.Shipments {
		ids = append(ids, s.ID)
	}
	check("shipment", ids)
}

// detectDuplicateNames finds names shared by several ids. Reports group by
// name, so such entities are merged into one row.
func (v *DatasetValidator) detectDuplicateNames(ds *entities.Dataset, result *ValidationResult) {
	check := func(kind string, names []string) {
		seen := make(map[string]int)
		for _, name := range names {
			seen[name]++
		}
		var dups []string
		for name, n := range seen {
			if n > 1 {
				dups = append(dups, name)
			}
		}
		if len(dups) == 0 {
			return
		}
		sort.Strings(dups)
		result.DuplicateNames[kind] = dups
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Duplicate %s names will be grouped together: %s", kind, strings.Join(dups, ", ")))
	}

	var names []string
	for _, s := range ds.Suppliers {
		names = append(names, s.Name)
	}
	check("supplier", names)

	names = names[:0]
	for _, p := range ds.Products {
		names = append(names, p.Name)
	}
	check("product", names)

	names = names[:0]
	for _, w := range ds.Warehouses {
		names = append(names, w.Name)
	}
	check("warehouse", names)
}
