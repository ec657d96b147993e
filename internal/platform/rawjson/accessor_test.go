package rawjson

import (
	"reflect"
	"testing"
)

func TestGet_MappingDirectAndMissing(t *testing.T) {
	t.Parallel()

	data := map[string]any{"team": "Lakers", "wins": 42.0}

	got, ok := Get(data, Key("team"))
	if !ok || got != "Lakers" {
		t.Fatalf("Get(team) = %v, %v; want Lakers, true", got, ok)
	}

	if got := GetOr(data, "fallback", Key("missing")); got != "fallback" {
		t.Fatalf("GetOr(missing) = %v, want fallback", got)
	}
}

func TestGet_IntSegmentResolvesNumericStringKey(t *testing.T) {
	t.Parallel()

	data := map[string]any{"0": map[string]any{"team": "Lakers"}}

	got, ok := Get(data, Index(0), Key("team"))
	if !ok || got != "Lakers" {
		t.Fatalf("Get(0, team) = %v, %v; want Lakers, true", got, ok)
	}

	if _, ok := Get(data, Index(3)); ok {
		t.Fatalf("Get(3) resolved, want miss")
	}
}

func TestGet_SequenceIndexAndSearch(t *testing.T) {
	t.Parallel()

	data := []any{
		map[string]any{"name": "first"},
		map[string]any{"team_key": "418.l.1.t.2"},
		"scalar",
	}

	if got := GetOr(data, nil, Index(1), Key("team_key")); got != "418.l.1.t.2" {
		t.Fatalf("Get(1, team_key) = %v", got)
	}
	if _, ok := Get(data, Index(9)); ok {
		t.Fatalf("out-of-bounds index resolved")
	}

	// String segment scans elements for the first mapping holding the key.
	if got := GetOr(data, nil, Key("team_key")); got != "418.l.1.t.2" {
		t.Fatalf("Get(team_key) = %v", got)
	}
}

func TestGet_MappingFallsBackToNestedValues(t *testing.T) {
	t.Parallel()

	// "standings" sits one level below the addressed node; a second shape
	// buries it two levels down. Both must resolve.
	oneDeep := map[string]any{
		"league": map[string]any{"standings": "found-one"},
	}
	twoDeep := map[string]any{
		"wrapper": map[string]any{
			"inner": map[string]any{"standings": "found-two"},
		},
	}

	if got := GetOr(oneDeep, nil, Key("standings")); got != "found-one" {
		t.Fatalf("one-deep fallback = %v", got)
	}
	if got := GetOr(twoDeep, nil, Key("standings")); got != "found-two" {
		t.Fatalf("two-deep fallback = %v", got)
	}
}

func TestGet_SequenceSecondPassSearchesOneLevelDeeper(t *testing.T) {
	t.Parallel()

	data := []any{
		map[string]any{"outer": map[string]any{"week": "7"}},
	}

	if got := GetOr(data, nil, Key("week")); got != "7" {
		t.Fatalf("deep sequence search = %v", got)
	}
}

func TestGet_DegradesOnNilAndScalars(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		root any
	}{
		{name: "nil root", root: nil},
		{name: "scalar root", root: "just a string"},
		{name: "number root", root: 12.0},
		{name: "nil mid-path", root: map[string]any{"league": nil}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := GetOr(tc.root, "default", Key("league"), Key("name")); got != "default" {
				t.Fatalf("GetOr = %v, want default", got)
			}
		})
	}
}

func TestItems_CountContainer(t *testing.T) {
	t.Parallel()

	container := map[string]any{
		"count": 2.0,
		"0":     map[string]any{"id": "a"},
		"1":     map[string]any{"id": "b"},
		"2":     map[string]any{"id": "ignored beyond count"},
	}

	items := Items(container)
	if len(items) != 2 {
		t.Fatalf("Items returned %d elements, want 2", len(items))
	}
	if got := GetOr(items[1], nil, Key("id")); got != "b" {
		t.Fatalf("items[1].id = %v", got)
	}
}

func TestItems_SequencesAndNumericKeys(t *testing.T) {
	t.Parallel()

	seq := []any{"x", "y"}
	if got := Items(seq); !reflect.DeepEqual(got, seq) {
		t.Fatalf("Items(sequence) = %v", got)
	}

	noCount := map[string]any{"1": "second", "0": "first", "label": "skip"}
	got := Items(noCount)
	if !reflect.DeepEqual(got, []any{"first", "second"}) {
		t.Fatalf("Items(no count) = %v", got)
	}

	if got := Items("scalar"); got != nil {
		t.Fatalf("Items(scalar) = %v, want nil", got)
	}
}

func TestNumber_CoercionAndPassthrough(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want any
	}{
		{name: "float stays", in: 12.5, want: 12.5},
		{name: "numeric string parses", in: "0.485", want: 0.485},
		{name: "empty string zeroes", in: "", want: 0.0},
		{name: "nil zeroes", in: nil, want: 0.0},
		{name: "non-numeric passes through", in: "DNP", want: "DNP"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Number(tc.in); got != tc.want {
				t.Fatalf("Number(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCoercionHelpers(t *testing.T) {
	t.Parallel()

	if got := IntOr("15", 0); got != 15 {
		t.Fatalf("IntOr(\"15\") = %d", got)
	}
	if got := IntOr("n/a", 3); got != 3 {
		t.Fatalf("IntOr fallback = %d", got)
	}
	if got := FloatOr(".625", 0); got != 0.625 {
		t.Fatalf("FloatOr(.625) = %v", got)
	}
	if got := StringOr(42.0, "missing"); got != "missing" {
		t.Fatalf("StringOr(non-string) = %q", got)
	}
}
