package dbhelpers

import (
	"errors"
	"testing"
)

func TestPlaceholderDiscoveryOnce(t *testing.T) {
	engine, driver := newTestEngine(t, "@p%d")

	for i := 0; i < 5; i++ {
		marker, err := engine.placeholder(i)
		if err != nil {
			t.Fatal(err)
		}
		if want := "@p" + string(rune('0'+i)); marker != want {
			t.Errorf("placeholder(%d) = %q, want %q", i, marker, want)
		}
	}
	if driver.renderCalls != 1 {
		t.Errorf("renderCalls = %d, want 1", driver.renderCalls)
	}
}

func TestPlaceholderFormats(t *testing.T) {
	tests := []struct {
		rendered string // marker for representativeIndex
		index    int
		want     string
	}{
		{"@p348", 2, "@p2"},   // sql server style, zero-based
		{"$349", 2, "$3"},     // postgres style, one-based
		{"?349", 0, "?1"},     // ql style, one-based
		{"?", 7, "?"},         // positional, no embedded index
		{":param348:", 5, ":param5:"},
	}
	for _, tt := range tests {
		format := derivePlaceholderFormat(tt.rendered)
		if got := format.render(tt.index); got != tt.want {
			t.Errorf("derive(%q).render(%d) = %q, want %q", tt.rendered, tt.index, got, tt.want)
		}
	}
}

func TestPlaceholderDiscoveryFailureIsTerminal(t *testing.T) {
	driver := &fakeDriver{renderErr: errors.New("no placeholder capability")}
	engine, err := New(driver, "test:source")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if _, err := engine.placeholder(0); !errors.Is(err, ErrUnsupportedDriver) {
			t.Fatalf("want ErrUnsupportedDriver, got %v", err)
		}
	}
	// the failure is cached, not retried
	if driver.renderCalls != 1 {
		t.Errorf("renderCalls = %d, want 1", driver.renderCalls)
	}
}
