// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-logistics/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListShipmentsQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       models.ShipmentFilter
		wantArgs     []any
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "owner only",
			filter:       models.ShipmentFilter{UserID: "u-1", Page: 1, Limit: 10},
			wantArgs:     []any{"u-1"},
			wantContains: []string{"user_id = $1", "LIMIT 10", "OFFSET 0", "ORDER BY created_at DESC"},
			wantMissing:  []string{"ILIKE", "status ="},
		},
		{
			name:         "search and status",
			filter:       models.ShipmentFilter{UserID: "u-1", Search: " cocoa ", Status: models.StatusInTransit, Page: 3, Limit: 5},
			wantArgs:     []any{"u-1", "%cocoa%", "%cocoa%", "In Transit"},
			wantContains: []string{"track_id ILIKE $2", "product_name ILIKE $3", "status = $4", "LIMIT 5", "OFFSET 10"},
		},
		{
			name:         "offset past the last addressable row",
			filter:       models.ShipmentFilter{UserID: "u-1", Page: 1e18, Limit: 10},
			wantArgs:     []any{"u-1"},
			wantContains: []string{"LIMIT 10", "OFFSET 9223372036854775807"},
		},
		{
			name:         "wildcards are escaped",
			filter:       models.ShipmentFilter{UserID: "u-1", Search: "50%_off", Page: 1, Limit: 10},
			wantArgs:     []any{"u-1", `%50\%\_off%`, `%50\%\_off%`},
			wantContains: []string{"ILIKE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListShipmentsQuery(tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.wantArgs, args)
			assert.True(t, strings.HasPrefix(query, "SELECT "+shipmentColumns+" FROM shipments"))
			for _, part := range tt.wantContains {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.wantMissing {
				assert.NotContains(t, query, part)
			}
		})
	}
}

func Test_buildCountShipmentsQuery_IgnoresPagination(t *testing.T) {
	query, args, err := buildCountShipmentsQuery(models.ShipmentFilter{UserID: "u-1", Page: 4, Limit: 25})
	require.NoError(t, err)

	assert.Equal(t, []any{"u-1"}, args)
	assert.Contains(t, query, "SELECT COUNT(*) FROM shipments")
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "OFFSET")
}

func Test_buildUpdateShipmentStatusQuery(t *testing.T) {
	query, args, err := buildUpdateShipmentStatusQuery("u-1", "s-1", models.StatusDelivered)
	require.NoError(t, err)

	assert.Equal(t, []any{"Delivered", "s-1", "u-1"}, args)
	assert.Contains(t, query, "UPDATE shipments SET status = $1, updated_at = NOW()")
	assert.Contains(t, query, "WHERE id = $2 AND user_id = $3")
	assert.Contains(t, query, "RETURNING "+shipmentColumns)
}

func Test_escapeLikePattern(t *testing.T) {
	assert.Equal(t, "plain", escapeLikePattern("plain"))
	assert.Equal(t, `a\%b\_c\\d`, escapeLikePattern(`a%b_c\d`))
}
