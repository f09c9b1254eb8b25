package resolve

import "testing"

func TestSuggestRanksClosestFirst(t *testing.T) {
	names := []string{"Completely Different.mp3", "Midnight City.mp3", "Midday Run.mp3"}

	suggestions := Suggest("midnight cty", names, 3)
	if len(suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(suggestions))
	}
	if suggestions[0].Name != "Midnight City.mp3" {
		t.Errorf("top suggestion = %q, want Midnight City.mp3", suggestions[0].Name)
	}
	if suggestions[0].Score <= suggestions[1].Score-1e-12 {
		t.Errorf("suggestions not sorted: %v then %v", suggestions[0].Score, suggestions[1].Score)
	}
}

func TestSuggestLimitsCount(t *testing.T) {
	names := []string{"a.mp3", "b.mp3", "c.mp3", "d.mp3"}

	suggestions := Suggest("a", names, 2)
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
}

func TestSuggestDisabled(t *testing.T) {
	if got := Suggest("query", []string{"a.mp3"}, 0); got != nil {
		t.Errorf("Suggest with n=0 = %v, want nil", got)
	}
	if got := Suggest("query", nil, 5); got != nil {
		t.Errorf("Suggest with no names = %v, want nil", got)
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	if got := Suggest("(!!)", []string{"a.mp3"}, 5); got != nil {
		t.Errorf("Suggest with empty normalized query = %v, want nil", got)
	}
}

func TestSuggestEqualScoresKeepTableOrder(t *testing.T) {
	names := []string{"Twin.mp3", "Twin.mp3"}

	suggestions := Suggest("twin", names, 2)
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
	if suggestions[0].Index != 0 || suggestions[1].Index != 1 {
		t.Errorf("equal scores reordered: %+v", suggestions)
	}
}
