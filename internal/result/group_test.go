package result

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"basket-reconciler/internal/match"
)

func TestGroup(t *testing.T) {
	hits := []Hit{
		{ContainerID: "W3", Section: "P3 | P3.01", Coefficient: 2.0, Baskets: []string{"K7"}},
		{ContainerID: "W2", Section: "P2 | P2.02", Coefficient: 1.5, Baskets: []string{"K1", "K2"}},
		{ContainerID: "W1", Section: "P2 | P2.02", Coefficient: 1.5, Baskets: []string{"K2"}},
		{ContainerID: "W2", Section: "P2 | P2.02", Coefficient: 1.5, Baskets: []string{"K1"}},
	}

	want := []Record{
		{
			Section:      "P2",
			Baskets:      []string{"K1", "K2"},
			Coefficient:  "1.50",
			Value:        1.5,
			ContainerIDs: []string{"W1", "W2"},
			Phase:        match.PhaseBasketOnly,
		},
		{
			Section:      "P3",
			Baskets:      []string{"K7"},
			Coefficient:  "2.00",
			Value:        2.0,
			ContainerIDs: []string{"W3"},
			Phase:        match.PhaseBasketOnly,
		},
	}

	if diff := cmp.Diff(want, Group(hits)); diff != "" {
		t.Errorf("Group() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_ExactKeys(t *testing.T) {
	hits := []Hit{
		{ContainerID: "W1", Section: "P2 | P2.02", Coefficient: 1.5},
		{ContainerID: "W2", Section: "P2 | P2.03", Coefficient: 1.5},
		{ContainerID: "W3", Section: "P2 | P2.02", Coefficient: 1.5000001},
	}

	got := Group(hits)

	if len(got) != 3 {
		t.Fatalf("Group() returned %d records, want 3", len(got))
	}

	// Equal coefficients keep first-appearance order.
	wantIDs := [][]string{{"W1"}, {"W2"}, {"W3"}}
	for i, rec := range got {
		if diff := cmp.Diff(wantIDs[i], rec.ContainerIDs); diff != "" {
			t.Errorf("record %d container IDs mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestGroup_Empty(t *testing.T) {
	if got := Group(nil); len(got) != 0 {
		t.Errorf("Group(nil) = %v, want empty", got)
	}
}
