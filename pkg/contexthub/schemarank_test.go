package contexthub

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rankNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func table(name string, columns ...string) TableSchema {
	cols := make([]TableColumn, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, TableColumn{Name: c})
	}
	return TableSchema{Source: "warehouse", Name: name, Columns: cols}
}

func usedDaysAgo(tableName string, days int, success bool) UsageEvent {
	return UsageEvent{
		TableName: tableName,
		Success:   success,
		CreatedAt: rankNow.AddDate(0, 0, -days),
	}
}

func TestRankTables_UsageBeatsStructure(t *testing.T) {
	tables := []TableSchema{
		table("customers", "id", "email", "name", "created_at"),
		table("orders", "id", "customer_id", "total", "created_at"),
		table("raw_events", "payload"),
	}
	var usage []UsageEvent
	for i := 0; i < 6; i++ {
		usage = append(usage, usedDaysAgo("orders", 1, true))
	}

	ranked, rest := RankTables(tables, usage, rankNow, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "orders", ranked[0].Name)
	assert.Equal(t, "customers", ranked[1].Name)
	assert.Equal(t, []string{"raw_events"}, rest)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankTables_FailuresDragTablesDown(t *testing.T) {
	tables := []TableSchema{
		table("steady", "id", "value"),
		table("flaky", "id", "value"),
	}
	usage := []UsageEvent{
		usedDaysAgo("steady", 3, true),
		usedDaysAgo("steady", 2, true),
		usedDaysAgo("flaky", 3, false),
		usedDaysAgo("flaky", 2, false),
	}

	ranked, _ := RankTables(tables, usage, rankNow, 0)

	require.Len(t, ranked, 2)
	assert.Equal(t, "steady", ranked[0].Name)
	assert.Equal(t, "flaky", ranked[1].Name)
	// Identical usage volume, so the gap is the success rate plus the
	// failure penalty.
	assert.Greater(t, ranked[0].Score-ranked[1].Score, 0.4)
}

func TestRankTables_NoStatsScoresStructurally(t *testing.T) {
	tables := []TableSchema{
		table("order_items", "order_id", "product_id", "quantity", "price"),
		table("tmp_backfill", "payload"),
	}

	ranked, rest := RankTables(tables, nil, rankNow, 0)

	require.Len(t, ranked, 2)
	assert.Empty(t, rest)
	assert.Equal(t, "order_items", ranked[0].Name)

	// Structural only: centrality 2/4, richness 4/12, entity-like 1.
	assert.InDelta(t, 0.2*(0.5+4.0/12+0.5), ranked[0].Score, 1e-9)
	// tmp_ prefix zeroes the entity signal.
	assert.InDelta(t, 0.2*(1.0/12), ranked[1].Score, 1e-9)
}

func TestRankTables_TiesBreakByName(t *testing.T) {
	tables := []TableSchema{
		table("zzz", "id"),
		table("aaa", "id"),
	}

	ranked, _ := RankTables(tables, nil, rankNow, 0)

	require.Len(t, ranked, 2)
	assert.Equal(t, "aaa", ranked[0].Name)
	assert.Equal(t, "zzz", ranked[1].Name)
}

func TestEntityLike(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"orders", 1},
		{"order_items", 1},
		{"orders_2024", 0},
		{"tmp_orders", 0},
		{"stg_customers", 0},
		{"raw_events", 0},
		{"int_daily_revenue", 0},
		{"a_b_c", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entityLike(tt.name))
		})
	}
}

func TestRecency(t *testing.T) {
	assert.Equal(t, 0.0, recency(time.Time{}, rankNow))
	assert.InDelta(t, 1.0, recency(rankNow, rankNow), 1e-9)
	assert.InDelta(t, math.Exp(-1), recency(rankNow.AddDate(0, 0, -14), rankNow), 1e-9)
	// Clock skew into the future clamps to full freshness.
	assert.InDelta(t, 1.0, recency(rankNow.Add(time.Hour), rankNow), 1e-9)
}
