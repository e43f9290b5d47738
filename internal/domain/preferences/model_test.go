package preferences

import (
	"reflect"
	"testing"
)

func TestMerge_PresentKeyReplacesWholesale(t *testing.T) {
	t.Parallel()

	doc := Document{
		CollapsedLeagues: []string{"L1", "L2"},
		HiddenLeagues:    []string{"L3"},
		LeagueOrder:      []string{"L1", "L2", "L3"},
	}
	hidden := []string{"L4"}
	out := Merge(doc, Partial{HiddenLeagues: &hidden})

	if !reflect.DeepEqual(out.HiddenLeagues, []string{"L4"}) {
		t.Fatalf("expected hidden leagues replaced, got %v", out.HiddenLeagues)
	}
	if !reflect.DeepEqual(out.CollapsedLeagues, []string{"L1", "L2"}) {
		t.Fatalf("expected collapsed leagues untouched, got %v", out.CollapsedLeagues)
	}
	if !reflect.DeepEqual(out.LeagueOrder, []string{"L1", "L2", "L3"}) {
		t.Fatalf("expected league order untouched, got %v", out.LeagueOrder)
	}
}

func TestMerge_DisjointKeysCommute(t *testing.T) {
	t.Parallel()

	hidden := []string{"L1"}
	collapsed := []string{"L2"}
	a := Partial{HiddenLeagues: &hidden}
	b := Partial{CollapsedLeagues: &collapsed}

	ab := Merge(Merge(DefaultDocument(), a), b)
	ba := Merge(Merge(DefaultDocument(), b), a)

	if !reflect.DeepEqual(ab, ba) {
		t.Fatalf("disjoint merges must commute: %+v vs %+v", ab, ba)
	}
}

func TestMerge_SameKeyLastWriteWins(t *testing.T) {
	t.Parallel()

	first := []string{"L1"}
	second := []string{"L2"}
	out := Merge(Merge(DefaultDocument(), Partial{HiddenLeagues: &first}), Partial{HiddenLeagues: &second})

	if !reflect.DeepEqual(out.HiddenLeagues, []string{"L2"}) {
		t.Fatalf("expected last write to win, got %v", out.HiddenLeagues)
	}
}

func TestMerge_NormalizesNilSlices(t *testing.T) {
	t.Parallel()

	out := Merge(Document{}, Partial{})
	if out.CollapsedLeagues == nil || out.HiddenLeagues == nil || out.LeagueOrder == nil {
		t.Fatalf("expected non-nil slices, got %+v", out)
	}
}

func TestMerge_CopiesPartialSlices(t *testing.T) {
	t.Parallel()

	hidden := []string{"L1"}
	out := Merge(DefaultDocument(), Partial{HiddenLeagues: &hidden})
	hidden[0] = "mutated"

	if out.HiddenLeagues[0] != "L1" {
		t.Fatalf("merged document must not alias the partial's slice")
	}
}

func TestPartial_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(Partial{}).IsEmpty() {
		t.Fatalf("zero partial should be empty")
	}
	empty := []string{}
	if (Partial{LeagueOrder: &empty}).IsEmpty() {
		t.Fatalf("present-but-empty key is not an empty partial")
	}
}
