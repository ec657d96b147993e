package league

import "testing"

func TestParseInfo_CoercesNumericFields(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"fantasy_content": map[string]any{
			"league": []any{
				map[string]any{
					"league_key":   "428.l.12345",
					"league_id":    "12345",
					"name":         "Hardwood Heroes",
					"num_teams":    float64(10),
					"current_week": "7",
					"start_week":   "1",
					"end_week":     float64(19),
					"season":       "2024",
					"scoring_type": "head",
				},
			},
		},
	}

	info, ok := ParseInfo(root)
	if !ok {
		t.Fatalf("expected league node to resolve")
	}
	if info.Name != "Hardwood Heroes" {
		t.Fatalf("expected name, got=%q", info.Name)
	}
	if info.NumTeams != 10 {
		t.Fatalf("expected num_teams=10, got=%d", info.NumTeams)
	}
	if info.CurrentWeek != 7 {
		t.Fatalf("expected current_week=7, got=%d", info.CurrentWeek)
	}
	if info.EndWeek != 19 {
		t.Fatalf("expected end_week=19, got=%d", info.EndWeek)
	}
}

func TestParseInfo_AbsentLeagueNode(t *testing.T) {
	t.Parallel()

	if _, ok := ParseInfo(map[string]any{}); ok {
		t.Fatalf("expected no league node in an empty payload")
	}
}

func TestParseInfo_MissingNameDefaults(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"fantasy_content": map[string]any{
			"league": []any{
				map[string]any{"league_key": "428.l.1"},
			},
		},
	}

	info, ok := ParseInfo(root)
	if !ok {
		t.Fatalf("expected league node to resolve")
	}
	if info.Name != "Unknown League" {
		t.Fatalf("expected default league name, got=%q", info.Name)
	}
}

func TestParseUserLeagues_WalksNestedContainers(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"fantasy_content": map[string]any{
			"users": map[string]any{
				"count": float64(1),
				"0": map[string]any{
					"user": []any{
						map[string]any{"guid": "ABC"},
						map[string]any{
							"games": map[string]any{
								"count": float64(1),
								"0": map[string]any{
									"game": []any{
										map[string]any{"game_key": "428"},
										map[string]any{
											"leagues": map[string]any{
												"count": float64(2),
												"0": map[string]any{
													"league": []any{
														map[string]any{
															"league_key": "428.l.111",
															"name":       "First League",
														},
													},
												},
												"1": map[string]any{
													"league": []any{
														map[string]any{"name": "keyless league"},
													},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	infos := ParseUserLeagues(root)
	if len(infos) != 1 {
		t.Fatalf("expected one league with a key, got=%d", len(infos))
	}
	if infos[0].LeagueKey != "428.l.111" || infos[0].Name != "First League" {
		t.Fatalf("unexpected league parsed: %+v", infos[0])
	}
}

func TestParseUserLeagues_EmptyPayload(t *testing.T) {
	t.Parallel()

	infos := ParseUserLeagues(map[string]any{})
	if len(infos) != 0 {
		t.Fatalf("expected no leagues, got=%d", len(infos))
	}
}
