// Package scoring holds the static stat catalog plus the category
// comparison and ranking rules shared by matchup normalization and the
// analytics views.
package scoring

// displayNames maps the upstream's opaque stat identifiers to category
// names. The upstream catalog is not guaranteed complete, so identifiers
// missing here pass through unmapped instead of erroring.
var displayNames = map[string]string{
	"5":       "FG%",
	"8":       "FT%",
	"10":      "3PTM",
	"12":      "PTS",
	"15":      "REB",
	"16":      "AST",
	"17":      "STL",
	"18":      "BLK",
	"19":      "TO",
	"9004003": "FGM/FGA",
	"9007006": "FTM/FTA",
}

// CanonicalCategories fixes the column order for every tabular view.
var CanonicalCategories = []string{"FG%", "FT%", "3PTM", "PTS", "REB", "AST", "STL", "BLK", "TO"}

// Turnovers are the only category where the smaller value wins.
var lowerIsBetterCategories = map[string]struct{}{
	"TO": {},
}

// Percentage categories average across weeks; everything else sums.
var percentageCategories = map[string]struct{}{
	"FG%": {},
	"FT%": {},
}

// Fraction categories arrive as "made/attempted" strings on the wire and
// split into two independent counting categories on parse.
var fractionCategories = map[string][2]string{
	"FGM/FGA": {"FGM", "FGA"},
	"FTM/FTA": {"FTM", "FTA"},
}

// DisplayName resolves a raw stat identifier to its category name. Unknown
// identifiers return unchanged.
func DisplayName(statID string) string {
	if name, ok := displayNames[statID]; ok {
		return name
	}
	return statID
}

// LowerIsBetter reports whether the smaller value wins the category.
func LowerIsBetter(category string) bool {
	_, ok := lowerIsBetterCategories[category]
	return ok
}

// IsPercentage reports whether the category is averaged rather than summed
// when aggregating multiple weeks.
func IsPercentage(category string) bool {
	_, ok := percentageCategories[category]
	return ok
}

// FractionParts returns the made/attempted counting categories behind a
// fraction category name such as "FGM/FGA".
func FractionParts(category string) (made, attempted string, ok bool) {
	parts, ok := fractionCategories[category]
	if !ok {
		return "", "", false
	}
	return parts[0], parts[1], true
}
