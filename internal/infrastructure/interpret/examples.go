package interpret

import "github.com/doeshing/intent-apparatus/internal/domain"

// Examples returns representative commands per category. Every example
// parses into its own category, which the tests pin down. A fresh map is
// returned on each call so callers cannot corrupt the catalogue.
func (i *Interpreter) Examples() map[domain.ActionCategory][]string {
	return map[domain.ActionCategory][]string{
		domain.CategoryClick: {
			"click at 100, 200",
			"right click at 300, 400",
			"double click at 500, 600",
		},
		domain.CategoryType: {
			`type "Hello World"`,
			`write "some text"`,
			`enter "username"`,
		},
		domain.CategoryKey: {
			"press enter",
			"press ctrl+c",
			"hit escape",
			"press alt+tab",
		},
		domain.CategoryScroll: {
			"scroll up",
			"scroll down 5",
			"scroll up 3 times",
		},
		domain.CategoryMove: {
			"move mouse to 400, 300",
			"move cursor to 100, 50",
		},
		domain.CategoryScreenshot: {
			"take a screenshot",
			"capture screen",
			"screenshot",
		},
	}
}
