package interpret

import "strings"

// singleKeySynonyms maps spoken key names onto the canonical names the
// actuator understands. Identity entries document the accepted vocabulary.
var singleKeySynonyms = map[string]string{
	"enter":     "enter",
	"return":    "enter",
	"space":     "space",
	"spacebar":  "space",
	"tab":       "tab",
	"escape":    "esc",
	"esc":       "esc",
	"delete":    "delete",
	"backspace": "backspace",
	"ctrl":      "ctrl",
	"alt":       "alt",
	"shift":     "shift",
	"windows":   "winleft",
	"win":       "winleft",
	"cmd":       "cmd",
	"f1":        "f1",
	"f2":        "f2",
	"f3":        "f3",
	"f4":        "f4",
	"f5":        "f5",
	"f6":        "f6",
	"f7":        "f7",
	"f8":        "f8",
	"f9":        "f9",
	"f10":       "f10",
	"f11":       "f11",
	"f12":       "f12",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pageup":    "pageup",
	"pagedown":  "pagedown",
}

// comboKeySynonyms normalizes modifier names inside key combinations. It is
// deliberately narrower than the single-key table: combo members that are
// ordinary letters pass through untouched.
var comboKeySynonyms = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"cmd":     "cmd",
	"command": "cmd",
	"win":     "winleft",
	"windows": "winleft",
}

// canonicalKey lowercases a captured single-key token and resolves it
// through the synonym table. Unknown tokens pass through unchanged so novel
// key names still reach the actuator.
func canonicalKey(token string) string {
	token = strings.ToLower(token)
	if canonical, ok := singleKeySynonyms[token]; ok {
		return canonical
	}
	return token
}

// canonicalComboKey is canonicalKey for combination members.
func canonicalComboKey(token string) string {
	token = strings.ToLower(token)
	if canonical, ok := comboKeySynonyms[token]; ok {
		return canonical
	}
	return token
}
