package matchup

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/rawjson"
)

// ParseTeam extracts a TeamSnapshot from a raw team block: a sequence whose
// first element is the attribute list and whose later elements may carry
// "team_stats", "win_probability" and "team_points". Missing pieces default
// to zero values rather than failing.
func ParseTeam(node any) TeamSnapshot {
	snapshot := TeamSnapshot{Stats: map[string]any{}}

	for _, attr := range rawjson.Items(rawjson.GetOr(node, nil, rawjson.Index(0))) {
		mapping, ok := attr.(map[string]any)
		if !ok {
			continue
		}
		if v, ok := mapping["name"]; ok {
			snapshot.Name = rawjson.StringOr(v, snapshot.Name)
		}
		if v, ok := mapping["team_key"]; ok {
			snapshot.TeamKey = rawjson.StringOr(v, snapshot.TeamKey)
		}
		if v, ok := mapping["team_logos"]; ok {
			snapshot.LogoURL = rawjson.StringOr(rawjson.GetOr(v, nil, rawjson.Index(0), rawjson.Key("url")), snapshot.LogoURL)
		}
	}

	applyStats(rawjson.GetOr(node, nil, rawjson.Key("team_stats"), rawjson.Key("stats")), snapshot.Stats)

	snapshot.WinProbability = rawjson.FloatOr(rawjson.GetOr(node, nil, rawjson.Key("win_probability")), 0)
	snapshot.PointsTotal = rawjson.FloatOr(rawjson.GetOr(node, nil, rawjson.Key("team_points"), rawjson.Key("total")), 0)

	return snapshot
}

// applyStats folds a raw stats list into the category map. Fraction
// categories split into independent made/attempted counts; other values
// keep float coercion with raw-string passthrough for non-numeric entries.
func applyStats(statsNode any, stats map[string]any) {
	for _, item := range rawjson.Items(statsNode) {
		statID := rawjson.Text(rawjson.GetOr(item, nil, rawjson.Key("stat"), rawjson.Key("stat_id")), "")
		if statID == "" {
			continue
		}
		raw := rawjson.GetOr(item, nil, rawjson.Key("stat"), rawjson.Key("value"))

		category := scoring.DisplayName(statID)
		if made, attempted, ok := scoring.FractionParts(category); ok {
			madeCount, attemptedCount := splitFraction(rawjson.StringOr(raw, ""))
			stats[made] = madeCount
			stats[attempted] = attemptedCount
			continue
		}
		stats[category] = rawjson.Number(raw)
	}
}

// splitFraction splits a "made/attempted" wire value. Empty or unparseable
// halves coerce to 0, as does a value without a slash.
func splitFraction(raw string) (int, int) {
	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	return fractionHalf(parts[0]), fractionHalf(parts[1])
}

func fractionHalf(half string) int {
	trimmed := strings.TrimSpace(half)
	if trimmed == "" {
		return 0
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return n
}
