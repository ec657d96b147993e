package analytics

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/scoring"
)

// The season runs weeks 1 through 19; period requests outside that range are
// caller errors, not data degradation.
const (
	MinWeek = 1
	MaxWeek = 19
)

var (
	ErrWeekOutOfRange = errors.New("week outside season range")
	ErrWeekOrder      = errors.New("start week after end week")
)

// ValidateWeekRange fails fast on week ranges the season cannot contain.
func ValidateWeekRange(startWeek, endWeek int) error {
	if startWeek < MinWeek || startWeek > MaxWeek {
		return fmt.Errorf("%w: start_week=%d", ErrWeekOutOfRange, startWeek)
	}
	if endWeek < MinWeek || endWeek > MaxWeek {
		return fmt.Errorf("%w: end_week=%d", ErrWeekOutOfRange, endWeek)
	}
	if startWeek > endWeek {
		return fmt.Errorf("%w: start_week=%d end_week=%d", ErrWeekOrder, startWeek, endWeek)
	}
	return nil
}

// AggregateWeeks merges per-week scoreboards into one period line per team:
// percentage categories average over the weeks the team actually appeared
// in, every other category sums. Teams group by display name, the same join
// the weekly views use. Identity fields come from the team's first
// appearance.
func AggregateWeeks(weeks []matchup.Scoreboard, startWeek, endWeek int) ([]matchup.TeamSnapshot, error) {
	if err := ValidateWeekRange(startWeek, endWeek); err != nil {
		return nil, err
	}

	order := []string{}
	identities := map[string]matchup.TeamSnapshot{}
	appearances := map[string]int{}
	pointsTotals := map[string]float64{}
	sums := map[string]map[string]float64{}

	for _, week := range weeks {
		for _, team := range Flatten(week) {
			if _, seen := identities[team.Name]; !seen {
				order = append(order, team.Name)
				identities[team.Name] = team
				sums[team.Name] = map[string]float64{}
			}
			appearances[team.Name]++
			pointsTotals[team.Name] += team.PointsTotal

			for _, category := range scoring.CanonicalCategories {
				if value, ok := team.Stats[category]; ok {
					sums[team.Name][category] += scoring.NumericValue(value)
				}
			}
		}
	}

	aggregated := make([]matchup.TeamSnapshot, 0, len(order))
	for _, name := range order {
		line := matchup.TeamSnapshot{
			TeamKey:     identities[name].TeamKey,
			Name:        name,
			LogoURL:     identities[name].LogoURL,
			PointsTotal: pointsTotals[name],
			Stats:       make(map[string]any, len(sums[name])),
		}
		for category, sum := range sums[name] {
			if scoring.IsPercentage(category) {
				line.Stats[category] = sum / float64(appearances[name])
				continue
			}
			line.Stats[category] = sum
		}
		aggregated = append(aggregated, line)
	}

	return aggregated, nil
}
