package league

// League is a statically configured competition tracked by the service.
// The set is fixed at deploy time; leagues are reference data, not user data.
type League struct {
	ID               string
	DisplayName      string
	UpstreamQueryKey string
	BadgeURL         string
}

// Catalog holds the configured leagues in their static display order.
type Catalog struct {
	ordered []League
	byID    map[string]League
}

func NewCatalog(leagues []League) Catalog {
	ordered := make([]League, 0, len(leagues))
	byID := make(map[string]League, len(leagues))
	for _, item := range leagues {
		if item.ID == "" {
			continue
		}
		if _, exists := byID[item.ID]; exists {
			continue
		}
		ordered = append(ordered, item)
		byID[item.ID] = item
	}

	return Catalog{ordered: ordered, byID: byID}
}

func (c Catalog) All() []League {
	out := make([]League, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c Catalog) ByID(id string) (League, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// DefaultOrder returns the static display order of league ids.
func (c Catalog) DefaultOrder() []string {
	out := make([]string, 0, len(c.ordered))
	for _, item := range c.ordered {
		out = append(out, item.ID)
	}
	return out
}

func (c Catalog) Len() int {
	return len(c.ordered)
}

// DefaultLeagues is the reference deployment's tracked set.
func DefaultLeagues() []League {
	return []League{
		{ID: "4328", DisplayName: "Premier League", UpstreamQueryKey: "English_Premier_League", BadgeURL: "https://r2.thesportsdb.com/images/media/league/badge/4328.png"},
		{ID: "4335", DisplayName: "La Liga", UpstreamQueryKey: "Spanish_La_Liga", BadgeURL: "https://r2.thesportsdb.com/images/media/league/badge/4335.png"},
		{ID: "4331", DisplayName: "Bundesliga", UpstreamQueryKey: "German_Bundesliga", BadgeURL: "https://r2.thesportsdb.com/images/media/league/badge/4331.png"},
		{ID: "4332", DisplayName: "Serie A", UpstreamQueryKey: "Italian_Serie_A", BadgeURL: "https://r2.thesportsdb.com/images/media/league/badge/4332.png"},
		{ID: "4334", DisplayName: "Ligue 1", UpstreamQueryKey: "French_Ligue_1", BadgeURL: "https://r2.thesportsdb.com/images/media/league/badge/4334.png"},
		{ID: "4337", DisplayName: "Eredivisie", UpstreamQueryKey: "Dutch_Eredivisie", BadgeURL: "https://r2.thesportsdb.com/images/media/league/badge/4337.png"},
		{ID: "4339", DisplayName: "Scottish Premiership", UpstreamQueryKey: "Scottish_Premiership", BadgeURL: "https://r2.thesportsdb.com/images/media/league/badge/4339.png"},
	}
}
