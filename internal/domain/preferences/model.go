package preferences

// Document is a user's display preferences, stored as one flexible record
// per user. Slices are never nil so an empty document serializes as [] and
// first-time users read defaults instead of an error.
type Document struct {
	CollapsedLeagues []string `json:"collapsedLeagues"`
	HiddenLeagues    []string `json:"hiddenLeagues"`
	LeagueOrder      []string `json:"leagueOrder"`
}

// Partial is a preference update. A nil field leaves the stored value
// untouched; a present field fully replaces it (no array-level merge).
type Partial struct {
	CollapsedLeagues *[]string `json:"collapsedLeagues,omitempty"`
	HiddenLeagues    *[]string `json:"hiddenLeagues,omitempty"`
	LeagueOrder      *[]string `json:"leagueOrder,omitempty"`
}

func DefaultDocument() Document {
	return Document{
		CollapsedLeagues: []string{},
		HiddenLeagues:    []string{},
		LeagueOrder:      []string{},
	}
}

func (p Partial) IsEmpty() bool {
	return p.CollapsedLeagues == nil && p.HiddenLeagues == nil && p.LeagueOrder == nil
}

// Merge applies partial onto doc key by key. Each present key replaces the
// stored value wholesale, so merges of disjoint keys commute and same-key
// conflicts resolve last-write-wins.
func Merge(doc Document, partial Partial) Document {
	out := normalize(doc)
	if partial.CollapsedLeagues != nil {
		out.CollapsedLeagues = copyStrings(*partial.CollapsedLeagues)
	}
	if partial.HiddenLeagues != nil {
		out.HiddenLeagues = copyStrings(*partial.HiddenLeagues)
	}
	if partial.LeagueOrder != nil {
		out.LeagueOrder = copyStrings(*partial.LeagueOrder)
	}
	return out
}

func normalize(doc Document) Document {
	return Document{
		CollapsedLeagues: copyStrings(doc.CollapsedLeagues),
		HiddenLeagues:    copyStrings(doc.HiddenLeagues),
		LeagueOrder:      copyStrings(doc.LeagueOrder),
	}
}

func copyStrings(values []string) []string {
	out := make([]string, 0, len(values))
	return append(out, values...)
}
