package interpret

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

func TestInterpretRecognizedCommands(t *testing.T) {
	in := New()

	tests := []struct {
		name     string
		command  string
		category domain.ActionCategory
		action   domain.Action
	}{
		{"click with comma", "click at 100, 200", domain.CategoryClick,
			domain.ClickAction{X: 100, Y: 200, Button: domain.ButtonLeft}},
		{"click with spaces", "click 100 200", domain.CategoryClick,
			domain.ClickAction{X: 100, Y: 200, Button: domain.ButtonLeft}},
		{"click with position and parens", "click at position (150, 250)", domain.CategoryClick,
			domain.ClickAction{X: 150, Y: 250, Button: domain.ButtonLeft}},
		{"explicit left click", "left click at 10, 20", domain.CategoryClick,
			domain.ClickAction{X: 10, Y: 20, Button: domain.ButtonLeft}},
		{"right click", "right click at 300, 400", domain.CategoryClick,
			domain.ClickAction{X: 300, Y: 400, Button: domain.ButtonRight}},
		{"double click", "double click at 500, 600", domain.CategoryClick,
			domain.ClickAction{X: 500, Y: 600, Button: domain.ButtonLeft, Double: true}},
		{"uppercase right click", "RIGHT CLICK AT 300, 400", domain.CategoryClick,
			domain.ClickAction{X: 300, Y: 400, Button: domain.ButtonRight}},

		{"type double quoted", `type "Hello World"`, domain.CategoryType,
			domain.TypeAction{Text: "Hello World"}},
		{"write", `write "some text"`, domain.CategoryType,
			domain.TypeAction{Text: "some text"}},
		{"enter", `enter "username"`, domain.CategoryType,
			domain.TypeAction{Text: "username"}},
		{"input single quoted", `input 'single quoted'`, domain.CategoryType,
			domain.TypeAction{Text: "single quoted"}},
		{"uppercase verb keeps payload case", `TYPE "MiXeD Case"`, domain.CategoryType,
			domain.TypeAction{Text: "MiXeD Case"}},

		{"press enter", "press enter", domain.CategoryKey,
			domain.PressKeyAction{Key: "enter"}},
		{"press return maps to enter", "press return", domain.CategoryKey,
			domain.PressKeyAction{Key: "enter"}},
		{"press the escape key", "press the escape key", domain.CategoryKey,
			domain.PressKeyAction{Key: "esc"}},
		{"hit tab", "hit tab", domain.CategoryKey,
			domain.PressKeyAction{Key: "tab"}},
		{"hit the spacebar", "hit the spacebar", domain.CategoryKey,
			domain.PressKeyAction{Key: "space"}},
		{"press windows maps to winleft", "press windows", domain.CategoryKey,
			domain.PressKeyAction{Key: "winleft"}},
		{"press f5", "press f5", domain.CategoryKey,
			domain.PressKeyAction{Key: "f5"}},
		{"unknown key passes through", "press q", domain.CategoryKey,
			domain.PressKeyAction{Key: "q"}},

		{"bare combo", "ctrl+c", domain.CategoryKey,
			domain.PressComboAction{Keys: [2]string{"ctrl", "c"}}},
		{"press combo", "press ctrl+c", domain.CategoryKey,
			domain.PressComboAction{Keys: [2]string{"ctrl", "c"}}},
		{"command synonym", "command+v", domain.CategoryKey,
			domain.PressComboAction{Keys: [2]string{"cmd", "v"}}},
		{"windows synonym with spaces", "windows + d", domain.CategoryKey,
			domain.PressComboAction{Keys: [2]string{"winleft", "d"}}},
		{"combo second member passthrough", "alt+f4", domain.CategoryKey,
			domain.PressComboAction{Keys: [2]string{"alt", "f4"}}},
		{"shift tab order", "shift+tab", domain.CategoryKey,
			domain.PressComboAction{Keys: [2]string{"shift", "tab"}}},

		{"scroll up default amount", "scroll up", domain.CategoryScroll,
			domain.ScrollAction{Direction: "up", Amount: 3}},
		{"scroll down with amount", "scroll down 5", domain.CategoryScroll,
			domain.ScrollAction{Direction: "down", Amount: 5}},
		{"count before direction", "scroll 2 times down", domain.CategoryScroll,
			domain.ScrollAction{Direction: "down", Amount: 2}},
		{"singular time", "scroll 1 time up", domain.CategoryScroll,
			domain.ScrollAction{Direction: "up", Amount: 1}},

		{"move mouse", "move mouse to 500, 600", domain.CategoryMove,
			domain.MoveAction{X: 500, Y: 600}},
		{"move without noun", "move to 100, 50", domain.CategoryMove,
			domain.MoveAction{X: 100, Y: 50}},
		{"move cursor with parens", "move cursor to position (300, 400)", domain.CategoryMove,
			domain.MoveAction{X: 300, Y: 400}},
		{"move with space separator", "move mouse 700 800", domain.CategoryMove,
			domain.MoveAction{X: 700, Y: 800}},

		{"take a screenshot", "take a screenshot", domain.CategoryScreenshot, domain.ScreenshotAction{}},
		{"take screenshot", "take screenshot", domain.CategoryScreenshot, domain.ScreenshotAction{}},
		{"capture screen", "capture screen", domain.CategoryScreenshot, domain.ScreenshotAction{}},
		{"bare screenshot", "screenshot", domain.CategoryScreenshot, domain.ScreenshotAction{}},
		{"screenshot inside sentence", "please take a screenshot now", domain.CategoryScreenshot, domain.ScreenshotAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, ok := in.Interpret(tt.command)
			if !ok {
				t.Fatalf("Interpret(%q) found no match", tt.command)
			}
			if intent.Category != tt.category {
				t.Errorf("category = %q, want %q", intent.Category, tt.category)
			}
			if diff := cmp.Diff(tt.action, intent.Action); diff != "" {
				t.Errorf("action mismatch (-want +got):\n%s", diff)
			}
			if intent.Confidence != domain.FixedConfidence {
				t.Errorf("confidence = %v, want %v", intent.Confidence, domain.FixedConfidence)
			}
		})
	}
}

func TestInterpretTrimsAndFoldsRawCommand(t *testing.T) {
	in := New()

	padded, ok := in.Interpret("   CLICK at 100, 200  ")
	if !ok {
		t.Fatal("padded command found no match")
	}
	plain, ok := in.Interpret("click at 100, 200")
	if !ok {
		t.Fatal("plain command found no match")
	}

	if padded.RawCommand != "click at 100, 200" {
		t.Errorf("RawCommand = %q, want trimmed lowercase form", padded.RawCommand)
	}
	if diff := cmp.Diff(plain, padded); diff != "" {
		t.Errorf("padded interpretation differs from plain (-plain +padded):\n%s", diff)
	}
}

func TestInterpretNoMatch(t *testing.T) {
	in := New()

	tests := []struct {
		name    string
		command string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"free prose", "do something useful"},
		{"type without quotes", "type hello"},
		{"negative coordinates", "click at -5, 10"},
		{"missing space after verb", "clickat 100, 200"},
		{"press without key", "press"},
		{"unsupported scroll direction word", "scroll sideways"},
		{"move does not accept at", "move mouse at 100, 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if intent, ok := in.Interpret(tt.command); ok {
				t.Fatalf("Interpret(%q) unexpectedly matched: %+v", tt.command, intent)
			}
		})
	}
}

// The table is consulted category by category, click first. A quoted click
// phrase inside a type command therefore parses as a click; the test pins
// the traversal order rather than any per-category anchoring.
func TestInterpretCategoryOrder(t *testing.T) {
	in := New()

	intent, ok := in.Interpret(`type "click at 5, 5"`)
	if !ok {
		t.Fatal("command found no match")
	}
	if intent.Category != domain.CategoryClick {
		t.Fatalf("category = %q, want %q", intent.Category, domain.CategoryClick)
	}
	want := domain.ClickAction{X: 5, Y: 5, Button: domain.ButtonLeft}
	if diff := cmp.Diff(want, intent.Action); diff != "" {
		t.Errorf("action mismatch (-want +got):\n%s", diff)
	}
}

// Oversized digit runs overflow Atoi after the click rule has already
// matched. Interpretation must stop there; the later key rule would
// otherwise pick up "press enter".
func TestInterpretExtractionFailureStopsScan(t *testing.T) {
	in := New()

	if intent, ok := in.Interpret("click at 99999999999999999999, 5 then press enter"); ok {
		t.Fatalf("expected no match after failed extraction, got %+v", intent)
	}

	if intent, ok := in.Interpret("scroll up 99999999999999999999"); ok {
		t.Fatalf("expected no match for oversized scroll amount, got %+v", intent)
	}

	// Control: the same shapes parse when the numbers fit.
	if _, ok := in.Interpret("click at 99, 5 then press enter"); !ok {
		t.Fatal("control click command should parse")
	}
}

func TestExamplesCatalogue(t *testing.T) {
	in := New()

	first := in.Examples()
	second := in.Examples()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("catalogue is not stable between calls (-first +second):\n%s", diff)
	}

	if len(first) != len(domain.Categories()) {
		t.Fatalf("catalogue covers %d categories, want %d", len(first), len(domain.Categories()))
	}

	for _, category := range domain.Categories() {
		examples, ok := first[category]
		if !ok || len(examples) == 0 {
			t.Fatalf("category %q has no examples", category)
		}
		for _, example := range examples {
			intent, ok := in.Interpret(example)
			if !ok {
				t.Errorf("example %q does not parse", example)
				continue
			}
			if intent.Category != category {
				t.Errorf("example %q parsed into %q, want %q", example, intent.Category, category)
			}
		}
	}
}
