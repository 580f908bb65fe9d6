package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

func TestGenerateText_InsertsBridge(t *testing.T) {
	g := scenarioGraph(t)

	got := GenerateText(g, "a c", seeded(1), MembershipAllVertices)
	if got.Text != "a b c" {
		t.Errorf("Text = %q, want %q", got.Text, "a b c")
	}
	if len(got.Insertions) != 1 || got.Insertions[0] != (Insertion{After: "a", Bridge: "b", Before: "c"}) {
		t.Errorf("Insertions = %+v", got.Insertions)
	}
}

func TestGenerateText_NormalizesInput(t *testing.T) {
	g := scenarioGraph(t)

	got := GenerateText(g, "  A, c!! zebra ", seeded(1), MembershipAllVertices)
	if got.Text != "a b c zebra" {
		t.Errorf("Text = %q, want %q", got.Text, "a b c zebra")
	}
}

func TestGenerateText_Degenerate(t *testing.T) {
	g := scenarioGraph(t)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"123 ...", ""},
		{"a", "a"},
		{"c d", "c d"},
	}

	for _, tt := range tests {
		got := GenerateText(g, tt.input, seeded(1), MembershipAllVertices)
		if got.Text != tt.want {
			t.Errorf("GenerateText(%q) = %q, want %q", tt.input, got.Text, tt.want)
		}
	}
}

func TestGenerateText_ChoosesAmongBridges(t *testing.T) {
	g := graph.BuildFromText("x q y x p y")

	seen := make(map[string]bool)
	for seed := uint64(0); seed < 64; seed++ {
		got := GenerateText(g, "x y", seeded(seed), MembershipAllVertices)
		seen[got.Text] = true
	}

	if !seen["x p y"] || !seen["x q y"] || len(seen) != 2 {
		t.Errorf("outputs = %v, want both x p y and x q y", seen)
	}
}

func TestGenerateText_SameSeedSameOutput(t *testing.T) {
	g := graph.BuildFromText("x q y x p y x r y")

	first := GenerateText(g, "x y x y x y", seeded(42), MembershipAllVertices)
	second := GenerateText(g, "x y x y x y", seeded(42), MembershipAllVertices)
	if first.Text != second.Text {
		t.Errorf("same seed gave %q and %q", first.Text, second.Text)
	}
}
