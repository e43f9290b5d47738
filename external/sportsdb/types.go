package sportsdb

// eventsEnvelope mirrors the provider's eventsday payload. The events key is
// JSON null when the provider has no rows for the requested day.
type eventsEnvelope struct {
	Events []event `json:"events"`
}

// event carries the subset of provider columns the app consumes. The provider
// serialises every column as a string, including scores.
type event struct {
	IDEvent       string `json:"idEvent"`
	IDLeague      string `json:"idLeague"`
	StrLeague     string `json:"strLeague"`
	DateEvent     string `json:"dateEvent"`
	StrTime       string `json:"strTime"`
	StrHomeTeam   string `json:"strHomeTeam"`
	StrAwayTeam   string `json:"strAwayTeam"`
	IntHomeScore  string `json:"intHomeScore"`
	IntAwayScore  string `json:"intAwayScore"`
	StrStatus     string `json:"strStatus"`
	StrPostponed  string `json:"strPostponed"`
	StrThumb      string `json:"strThumb"`
	StrVideo      string `json:"strVideo"`
	StrTimestamp  string `json:"strTimestamp"`
	IntRound      string `json:"intRound"`
	StrSeason     string `json:"strSeason"`
	StrEventAlt   string `json:"strEventAlternate"`
	StrHomeBadge  string `json:"strHomeTeamBadge"`
	StrAwayBadge  string `json:"strAwayTeamBadge"`
	StrLeagueBadg string `json:"strLeagueBadge"`
}
