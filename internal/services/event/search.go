package event

import (
	"sort"
	"strings"
	"unicode"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// stopWords are dropped from queries and event text before matching
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {},
	"for": {}, "from": {}, "has": {}, "have": {}, "i": {}, "in": {}, "is": {}, "it": {},
	"its": {}, "me": {}, "my": {}, "of": {}, "on": {}, "or": {}, "our": {}, "so": {},
	"some": {}, "that": {}, "the": {}, "their": {}, "this": {}, "to": {}, "us": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {}, "who": {},
	"will": {}, "with": {}, "you": {}, "your": {}, "want": {}, "looking": {}, "like": {},
}

// Field weights for relevance scoring
const (
	titleWeight       = 3
	categoryWeight    = 2
	descriptionWeight = 1
)

// tokenize lowercases text and returns its alphabetic, non-stop-word terms
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		terms = append(terms, stem(f))
	}
	return terms
}

// stem folds simple English plurals so "hikes" matches "hike"
func stem(term string) string {
	switch {
	case len(term) > 4 && strings.HasSuffix(term, "ies"):
		return term[:len(term)-3] + "y"
	case strings.HasSuffix(term, "sses"):
		return term[:len(term)-2]
	case len(term) > 3 && strings.HasSuffix(term, "s") && !strings.HasSuffix(term, "ss"):
		return term[:len(term)-1]
	}
	return term
}

func termSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range tokenize(text) {
		set[t] = struct{}{}
	}
	return set
}

// relevance scores an event against query terms; zero means no match
func relevance(e *models.Event, terms []string) int {
	title := termSet(e.Title)
	category := termSet(e.Category)
	description := termSet(e.Description)

	score := 0
	for _, t := range terms {
		if _, ok := title[t]; ok {
			score += titleWeight
		}
		if _, ok := category[t]; ok {
			score += categoryWeight
		}
		if _, ok := description[t]; ok {
			score += descriptionWeight
		}
	}
	return score
}

// rankByQuery drops events that do not match and orders the rest by score.
// Ties keep their start-time order.
func rankByQuery(events []*models.Event, query string) []*models.Event {
	terms := tokenize(query)
	if len(terms) == 0 {
		return []*models.Event{}
	}

	type scored struct {
		event *models.Event
		score int
	}

	matches := make([]scored, 0, len(events))
	for _, e := range events {
		if sc := relevance(e, terms); sc > 0 {
			matches = append(matches, scored{event: e, score: sc})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	ranked := make([]*models.Event, len(matches))
	for i, m := range matches {
		ranked[i] = m.event
	}
	return ranked
}
