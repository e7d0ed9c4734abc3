package model

// Team is FPL reference data, replaced wholesale on each bootstrap sync.
type Team struct {
	ID                  int32  `json:"team_id"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	StrengthOverallHome int32  `json:"strength_overall_home"`
	StrengthOverallAway int32  `json:"strength_overall_away"`
}

// Position is one of the four FPL element types (GKP, DEF, MID, FWD).
type Position struct {
	ID           int32  `json:"position_type_id"`
	SingularName string `json:"singular_name"`
	PluralName   string `json:"plural_name"`
}
