// Package queries contains read operations for retrieving registry state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the store directly and return read models shaped for display.
package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetSummaryReportQueryIsNotConstructed = errors.New(
	"GetSummaryReportQuery must be created via NewGetSummaryReportQuery constructor",
)

// GetSummaryReportQuery retrieves aggregate statistics over the whole
// registry: counts, average weight, pending parcels bucketed by priority,
// and the delivered audit listing.
//
// Example:
//
//	query := NewGetSummaryReportQuery()
//	handler := NewGetSummaryReportQueryHandler(store)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//
//	fmt.Printf("%d registered, %d delivered\n",
//	    report.TotalRegistered, report.TotalDelivered)
type GetSummaryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSummaryReportQuery creates a query for the registry summary report.
// This is a parameterless query that reads the complete registry state.
func NewGetSummaryReportQuery() GetSummaryReportQuery {
	return GetSummaryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSummaryReportQueryIsNotConstructed if validation fails.
func (q GetSummaryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryReportQueryIsNotConstructed)
}

// GetSummaryReportQueryResponse is the registry summary read model.
// TotalRegistered counts active and delivered parcels together, and
// AverageWeight spans the same set, zero when there are none.
// PendingByPriority covers active parcels only and always carries all five
// buckets, zero-filled.
type GetSummaryReportQueryResponse struct {
	TotalRegistered   int
	TotalDelivered    int
	AverageWeight     float64
	PendingByPriority map[int]int
	Delivered         []DeliveredParcelSummary
}

// DeliveredParcelSummary is one line of the delivered audit listing.
type DeliveredParcelSummary struct {
	AuditID     kernel.UUID
	ParcelID    int
	Recipient   string
	Priority    kernel.Priority
	DeliveredAt time.Time
}
