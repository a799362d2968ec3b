package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/models"
)

// FetchActiveRecords queries the catalog store for active rows and returns
// them ordered ascending by provider service id. The ordering here is the
// contract the snapshot and indexer rely on; downstream code never re-sorts
// the full feed.
func FetchActiveRecords(ctx context.Context) ([]models.ServiceRecord, error) {
	rows, err := config.PanelDB.Query(ctx, `
		SELECT id, provider_service_id,
		       COALESCE(category, ''), COALESCE(name, ''), COALESCE(description, ''),
		       COALESCE(provider_rate_per_1000, 0), min_quantity, max_quantity
		FROM service_records
		WHERE active`)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer rows.Close()

	var records []models.ServiceRecord
	for rows.Next() {
		var r models.ServiceRecord
		r.Active = true
		if err := rows.Scan(
			&r.ID, &r.ProviderServiceID, &r.Category, &r.Name, &r.Description,
			&r.ProviderRatePer1000, &r.MinQuantity, &r.MaxQuantity,
		); err != nil {
			return nil, fmt.Errorf("catalog scan failed: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return CompareServiceIDs(records[i].ProviderServiceID, records[j].ProviderServiceID) < 0
	})
	return records, nil
}
