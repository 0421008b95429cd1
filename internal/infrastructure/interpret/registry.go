package interpret

import (
	"regexp"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

// extractorKind tags how a matched rule turns regex captures into an action.
type extractorKind int

const (
	extractCoordinates extractorKind = iota
	extractRightCoordinates
	extractDoubleCoordinates
	extractMoveCoordinates
	extractText
	extractSingleKey
	extractKeyCombo
	extractDirection
	extractDirectionCount
	extractSimple
)

// compiledRule pairs a recognition pattern with its extraction strategy.
type compiledRule struct {
	re      *regexp.Regexp
	extract extractorKind
}

// ruleSet holds the ordered rules of one category.
type ruleSet struct {
	category domain.ActionCategory
	rules    []compiledRule
}

// coordPair matches "(x, y)" style coordinate pairs with optional
// parentheses and either comma or whitespace separation.
const coordPair = `(?:\()?(\d+)(?:\s*,\s*|\s+)(\d+)(?:\))?`

// buildRuleTable compiles the recognition table. Order is load-bearing twice
// over: categories are consulted click, type, key, scroll, move, screenshot,
// and within a category specific rules precede generic ones ("right click"
// before "click", combos before single keys). Patterns search anywhere in
// the command, case-insensitively.
func buildRuleTable() []ruleSet {
	rule := func(pattern string, kind extractorKind) compiledRule {
		return compiledRule{re: regexp.MustCompile(`(?i)` + pattern), extract: kind}
	}

	return []ruleSet{
		{
			category: domain.CategoryClick,
			rules: []compiledRule{
				rule(`right\s+click\s+(?:at\s+)?(?:position\s+)?`+coordPair, extractRightCoordinates),
				rule(`double\s+click\s+(?:at\s+)?(?:position\s+)?`+coordPair, extractDoubleCoordinates),
				rule(`(?:left\s+)?click\s+(?:at\s+)?(?:position\s+)?`+coordPair, extractCoordinates),
			},
		},
		{
			category: domain.CategoryType,
			rules: []compiledRule{
				rule(`type\s+["']([^"']+)["']`, extractText),
				rule(`write\s+["']([^"']+)["']`, extractText),
				rule(`enter\s+["']([^"']+)["']`, extractText),
				rule(`input\s+["']([^"']+)["']`, extractText),
			},
		},
		{
			category: domain.CategoryKey,
			rules: []compiledRule{
				// Combos before single keys, or "press ctrl+c" would stop at
				// the single-key rule with just "ctrl".
				rule(`press\s+(\w+)\s*\+\s*(\w+)`, extractKeyCombo),
				rule(`(\w+)\s*\+\s*(\w+)`, extractKeyCombo),
				rule(`press\s+(?:the\s+)?(\w+)(?:\s+key)?`, extractSingleKey),
				rule(`hit\s+(?:the\s+)?(\w+)(?:\s+key)?`, extractSingleKey),
			},
		},
		{
			category: domain.CategoryScroll,
			rules: []compiledRule{
				rule(`scroll\s+(up|down)(?:\s+(\d+))?`, extractDirection),
				rule(`scroll\s+(\d+)\s+times?\s+(up|down)`, extractDirectionCount),
			},
		},
		{
			category: domain.CategoryMove,
			rules: []compiledRule{
				rule(`move\s+(?:mouse\s+)?(?:to\s+)?(?:position\s+)?`+coordPair, extractMoveCoordinates),
				rule(`move\s+(?:cursor\s+)?(?:to\s+)?(?:position\s+)?`+coordPair, extractMoveCoordinates),
			},
		},
		{
			category: domain.CategoryScreenshot,
			rules: []compiledRule{
				rule(`take\s+(?:a\s+)?screenshot`, extractSimple),
				rule(`capture\s+screen`, extractSimple),
				rule(`screenshot`, extractSimple),
			},
		},
	}
}
