package league

import (
	"reflect"
	"testing"
)

func TestNewCatalog_DropsDuplicatesAndBlankIDs(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog([]League{
		{ID: "L1", DisplayName: "First"},
		{ID: "", DisplayName: "Blank"},
		{ID: "L2", DisplayName: "Second"},
		{ID: "L1", DisplayName: "Duplicate"},
	})

	if catalog.Len() != 2 {
		t.Fatalf("expected 2 leagues, got %d", catalog.Len())
	}
	if got := catalog.DefaultOrder(); !reflect.DeepEqual(got, []string{"L1", "L2"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if lg, ok := catalog.ByID("L1"); !ok || lg.DisplayName != "First" {
		t.Fatalf("expected first occurrence kept, got %+v ok=%v", lg, ok)
	}
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog([]League{{ID: "L1", DisplayName: "First"}})
	items := catalog.All()
	items[0].DisplayName = "mutated"

	if lg, _ := catalog.ByID("L1"); lg.DisplayName != "First" {
		t.Fatalf("catalog must not expose internal state")
	}
}

func TestDefaultLeagues_HaveQueryKeys(t *testing.T) {
	t.Parallel()

	for _, lg := range DefaultLeagues() {
		if lg.ID == "" || lg.DisplayName == "" || lg.UpstreamQueryKey == "" {
			t.Fatalf("incomplete league entry: %+v", lg)
		}
	}
}
