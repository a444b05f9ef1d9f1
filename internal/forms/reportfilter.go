package forms

import (
	"net/url"
	"time"

	"stockdesk/internal/model"
)

// ReportFilter holds raw report filter input. Dates use the HTML date
// input format (YYYY-MM-DD).
type ReportFilter struct {
	StartDate   string
	EndDate     string
	ProductID   string
	WarehouseID string

	// RequireDates is set for the turnover and trends reports, which
	// cannot be queried without a period. Valuation leaves it unset.
	RequireDates bool
}

const dateLayout = "2006-01-02"

// ParseReportFilter reads report filter fields from query or form values.
func ParseReportFilter(v url.Values, requireDates bool) ReportFilter {
	return ReportFilter{
		StartDate:    trimmed(v, "startDate"),
		EndDate:      trimmed(v, "endDate"),
		ProductID:    trimmed(v, "productId"),
		WarehouseID:  trimmed(v, "warehouseId"),
		RequireDates: requireDates,
	}
}

// Validate checks the filter and returns per-field errors. The start date
// must not be after the end date.
func (f ReportFilter) Validate() Errors {
	errs := Errors{}

	var start, end time.Time
	if f.StartDate != "" {
		t, err := time.Parse(dateLayout, f.StartDate)
		if err != nil {
			errs["startDate"] = "Start date is invalid"
		}
		start = t
	} else if f.RequireDates {
		errs["startDate"] = "Start date is required"
	}

	if f.EndDate != "" {
		t, err := time.Parse(dateLayout, f.EndDate)
		if err != nil {
			errs["endDate"] = "End date is invalid"
		}
		end = t
	} else if f.RequireDates {
		errs["endDate"] = "End date is required"
	}

	if len(errs) == 0 && !start.IsZero() && !end.IsZero() && start.After(end) {
		errs["startDate"] = "Start date must not be after end date"
	}
	return errs
}

// Filter converts a validated form into the backend query filter.
func (f ReportFilter) Filter() model.ReportFilter {
	return model.ReportFilter{
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		ProductID:   f.ProductID,
		WarehouseID: f.WarehouseID,
	}
}
