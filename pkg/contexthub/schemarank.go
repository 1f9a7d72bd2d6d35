package contexthub

import (
	"math"
	"sort"
	"strings"
	"time"
)

// recencyHalfLifeDays shapes the exponential decay applied to usage
// timestamps. Two weeks keeps last sprint's tables warm without letting
// one-off historical spikes dominate.
const recencyHalfLifeDays = 14.0

// TableColumn is one column of a warehouse table.
type TableColumn struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// TableSchema describes one table of a data source.
type TableSchema struct {
	Source      string        `json:"source"`
	Name        string        `json:"name"`
	Columns     []TableColumn `json:"columns,omitempty"`
	Description string        `json:"description,omitempty"`
}

// UsageEvent is one recorded use of a table by a finished step.
type UsageEvent struct {
	TableName string
	Success   bool
	Feedback  int
	CreatedAt time.Time
}

// RankedTable is a table with its relevance score for the current run.
type RankedTable struct {
	TableSchema
	Score float64 `json:"score"`
}

type tableStats struct {
	weightedUsage float64
	uses          int
	successes     int
	failures      int
	feedback      int
	lastUsed      time.Time
}

// RankTables orders tables by blended usage, feedback, and structure
// signals and splits them into the detailed Top-K and a compact index of
// the rest. With no usage stats every score is structural only, which
// callers treat as the flat-rendering case.
func RankTables(tables []TableSchema, usage []UsageEvent, now time.Time, topK int) ([]RankedTable, []string) {
	stats := aggregateUsage(usage, now)

	ranked := make([]RankedTable, 0, len(tables))
	for _, table := range tables {
		ranked = append(ranked, RankedTable{
			TableSchema: table,
			Score:       tableScore(table, stats[table.Name], now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	if topK <= 0 || topK > len(ranked) {
		topK = len(ranked)
	}
	rest := make([]string, 0, len(ranked)-topK)
	for _, r := range ranked[topK:] {
		rest = append(rest, r.Name)
	}
	return ranked[:topK], rest
}

func aggregateUsage(usage []UsageEvent, now time.Time) map[string]*tableStats {
	stats := make(map[string]*tableStats)
	for _, ev := range usage {
		s := stats[ev.TableName]
		if s == nil {
			s = &tableStats{}
			stats[ev.TableName] = s
		}
		s.uses++
		s.weightedUsage += recency(ev.CreatedAt, now)
		if ev.Success {
			s.successes++
		} else {
			s.failures++
		}
		s.feedback += ev.Feedback
		if ev.CreatedAt.After(s.lastUsed) {
			s.lastUsed = ev.CreatedAt
		}
	}
	return stats
}

func tableScore(table TableSchema, s *tableStats, now time.Time) float64 {
	structural := structuralSignal(table)
	if s == nil {
		return 0.2 * structural
	}

	successRate := 0.5
	if s.uses > 0 {
		successRate = float64(s.successes) / float64(s.uses)
	}
	feedbackSignal := clamp(float64(s.feedback)/5, -1, 1)

	return 0.35*math.Sqrt(s.weightedUsage)*recency(s.lastUsed, now) +
		0.25*successRate +
		0.2*feedbackSignal +
		0.2*structural -
		0.2*math.Sqrt(float64(s.failures))
}

// structuralSignal scores a table on shape alone: how widely it joins
// (id columns), how much it carries (column count), and whether its name
// reads like a base entity rather than a staging or derived artifact.
func structuralSignal(table TableSchema) float64 {
	idColumns := 0
	for _, col := range table.Columns {
		if strings.HasSuffix(col.Name, "_id") {
			idColumns++
		}
	}
	centrality := math.Min(1, float64(idColumns)/4)
	richness := math.Min(1, float64(len(table.Columns))/12)
	return centrality + richness + 0.5*entityLike(table.Name)
}

func entityLike(name string) float64 {
	if strings.ContainsAny(name, "0123456789") {
		return 0
	}
	for _, prefix := range []string{"tmp_", "stg_", "raw_", "int_"} {
		if strings.HasPrefix(name, prefix) {
			return 0
		}
	}
	if strings.Count(name, "_") > 1 {
		return 0
	}
	return 1
}

func recency(at, now time.Time) float64 {
	if at.IsZero() {
		return 0
	}
	ageDays := now.Sub(at).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	return math.Exp(-ageDays / recencyHalfLifeDays)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
