package queries

import (
	"context"

	"parcels/internal/adapters/out/memory"
	"parcels/internal/core/domain/model/kernel"
)

// GetSummaryReportQueryHandler builds the registry summary report. Reads the
// store directly, bypassing the write-side ports, for a simple read path in
// the CQRS pattern.
type GetSummaryReportQueryHandler struct {
	store *memory.Store
}

// NewGetSummaryReportQueryHandler creates a handler for summary report
// queries. Requires the registry store for direct read access.
func NewGetSummaryReportQueryHandler(store *memory.Store) GetSummaryReportQueryHandler {
	return GetSummaryReportQueryHandler{store: store}
}

// Handle executes the query and assembles the report. The average weight
// spans active and delivered parcels; an empty registry yields zero instead
// of dividing by zero.
func (h GetSummaryReportQueryHandler) Handle(
	_ context.Context,
	query GetSummaryReportQuery,
) (GetSummaryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSummaryReportQueryResponse{}, err
	}

	active := h.store.ActiveParcels()
	delivered := h.store.DeliveredRecords()

	pending := make(map[int]int, kernel.PriorityLowest)
	for value := kernel.PriorityHighest; value <= kernel.PriorityLowest; value++ {
		pending[int(value)] = 0
	}

	var totalWeight float64
	for _, p := range active {
		totalWeight += p.Weight()
		pending[p.Priority().Value()]++
	}

	summaries := make([]DeliveredParcelSummary, 0, len(delivered))
	for _, record := range delivered {
		totalWeight += record.Parcel().Weight()
		summaries = append(summaries, DeliveredParcelSummary{
			AuditID:     record.AuditID(),
			ParcelID:    record.Parcel().ID(),
			Recipient:   record.Parcel().Recipient(),
			Priority:    record.Parcel().Priority(),
			DeliveredAt: record.DeliveredAt(),
		})
	}

	total := len(active) + len(delivered)
	response := GetSummaryReportQueryResponse{
		TotalRegistered:   total,
		TotalDelivered:    len(delivered),
		PendingByPriority: pending,
		Delivered:         summaries,
	}

	if total > 0 {
		response.AverageWeight = totalWeight / float64(total)
	}

	return response, nil
}
