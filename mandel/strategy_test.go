package mandel

import "testing"

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"static", "chunked", "rows"} {
		s, err := ParseStrategy(name)
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", name, err)
		}
		if got := s.String(); got != name {
			t.Errorf("ParseStrategy(%q).String() = %q", name, got)
		}
	}

	for _, name := range []string{"", "Static", "perrow", "pooled"} {
		if _, err := ParseStrategy(name); err == nil {
			t.Errorf("ParseStrategy(%q) accepted", name)
		}
	}
}

func TestStrategyZeroValue(t *testing.T) {
	var s Strategy
	if got := s.String(); got != "static" {
		t.Fatalf("zero Strategy is %q, want static", got)
	}
}
