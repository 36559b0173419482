package config

import (
	"strings"
	"testing"
)

func TestParseBasicDirectives(t *testing.T) {
	text := `
# tick budget and one splitter feeding the console
ticks 100
split 0 1 8
console 0 2
pin 2 3
`
	cfg, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cfg.Ticks == nil || *cfg.Ticks != 100 {
		t.Fatalf("Ticks = %v, want 100", cfg.Ticks)
	}
	if len(cfg.Splits) != 1 || cfg.Splits[0].LowPort != 0 || cfg.Splits[0].HighPort != 1 || cfg.Splits[0].CombinedWidth != 8 {
		t.Fatalf("Splits = %+v, want one 0/1/8 split", cfg.Splits)
	}
	if cfg.Console == nil || cfg.Console.SplitIndex != 0 || cfg.Console.StrobePin != 2 {
		t.Fatalf("Console = %+v, want split 0, strobe pin 2", cfg.Console)
	}
	if len(cfg.PinLinks) != 1 || cfg.PinLinks[0] != [2]int{2, 3} {
		t.Fatalf("PinLinks = %v, want [[2 3]]", cfg.PinLinks)
	}
}

func TestParseUnknownDirectiveIsCollected(t *testing.T) {
	text := "bogus 1 2\nticks notanumber\n"
	_, err := Parse(strings.NewReader(text))
	if err == nil {
		t.Fatalf("expected error for unknown directive and bad number")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 1") || !strings.Contains(msg, "line 2") {
		t.Fatalf("error %q does not report both offending lines", msg)
	}
}

func TestParseIgnoresCommentsAndBlankLines(t *testing.T) {
	text := "\n# just a comment\n   \nticks 5 # trailing comment\n"
	cfg, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cfg.Ticks == nil || *cfg.Ticks != 5 {
		t.Fatalf("Ticks = %v, want 5", cfg.Ticks)
	}
}

func TestParseDoubleConsoleIsRejected(t *testing.T) {
	text := "console 0 1\nconsole 0 2\n"
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Fatalf("expected error for duplicate console directive")
	}
}
