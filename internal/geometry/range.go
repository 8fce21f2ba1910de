// Package geometry converts range descriptors and normalized map coordinates
// into feet. It is the only package that knows a grid square is 5 ft and that
// token positions are percentages of the map.
package geometry

import (
	"regexp"
	"strconv"
	"strings"
)

// RangeKind classifies how an ability reaches its target.
type RangeKind string

const (
	RangeSelf   RangeKind = "self"
	RangeTouch  RangeKind = "touch"
	RangeRanged RangeKind = "ranged"
)

// TouchFeet is the reach assigned to touch and melee abilities.
const TouchFeet = 5

// RangeInfo is the normalized range profile of an ability.
type RangeInfo struct {
	Kind RangeKind `json:"kind"`
	Feet int       `json:"feet"`
}

var (
	selfPattern     = regexp.MustCompile(`(?i)\bself\b`)
	touchPattern    = regexp.MustCompile(`(?i)\btouch\b`)
	meleePattern    = regexp.MustCompile(`(?i)\bmelee\b`)
	firstIntPattern = regexp.MustCompile(`\d+`)
)

// descriptionPattern is one free text form, tried in declaration order.
type descriptionPattern struct {
	re   *regexp.Regexp
	kind RangeKind
}

var descriptionPatterns = []descriptionPattern{
	{regexp.MustCompile(`(?i)range\s+(\d+)\s*/\s*\d+\s*(?:ft|feet)`), RangeRanged},
	{regexp.MustCompile(`(?i)range\s+of\s+(\d+)\s*(?:ft|feet)`), RangeRanged},
	{regexp.MustCompile(`(?i)(\d+)[-\s]foot\s+range`), RangeRanged},
	{regexp.MustCompile(`(?i)(\d+)-foot-radius`), RangeRanged},
	{regexp.MustCompile(`(?i)(\d+)\s*ft\.?\s+radius`), RangeRanged},
	{regexp.MustCompile(`(?i)reach\s+(\d+)\s*(?:ft|feet)`), RangeTouch},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:ft|feet)\b`), RangeRanged},
}

// ParseSpellRange reads a spell's structured range field ("Self",
// "Touch", "150 feet", "Self (15-foot cone)").
func ParseSpellRange(text string) (RangeInfo, bool) {
	if info, ok := parseKeywords(text); ok {
		return info, true
	}

	match := firstIntPattern.FindString(text)
	if match == "" {
		return RangeInfo{}, false
	}
	feet, err := strconv.Atoi(match)
	if err != nil {
		return RangeInfo{}, false
	}
	return RangeInfo{Kind: RangeRanged, Feet: feet}, true
}

// ParseDescription reads free action text such as
// "Ranged Weapon Attack: +4 to hit, range 80/320 ft." The second return is
// false when the text carries no range, meaning the ability needs no target.
func ParseDescription(text string) (RangeInfo, bool) {
	if info, ok := parseKeywords(text); ok {
		return info, true
	}

	for _, p := range descriptionPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		feet, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return RangeInfo{Kind: p.kind, Feet: feet}, true
	}

	if meleePattern.MatchString(text) {
		return RangeInfo{Kind: RangeTouch, Feet: TouchFeet}, true
	}

	return RangeInfo{}, false
}

func parseKeywords(text string) (RangeInfo, bool) {
	switch {
	case strings.TrimSpace(text) == "":
		return RangeInfo{}, false
	case selfPattern.MatchString(text):
		return RangeInfo{Kind: RangeSelf, Feet: 0}, true
	case touchPattern.MatchString(text):
		return RangeInfo{Kind: RangeTouch, Feet: TouchFeet}, true
	}
	return RangeInfo{}, false
}
