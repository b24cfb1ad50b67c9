package solver

import (
	"strings"

	"github.com/luyichen/kaobang/internal/subject"
)

// buildRetrieval shapes the search-service input: a whitespace-
// collapsed, length-capped base query plus subject and expert tags.
func buildRetrieval(text string, hint subject.Subject, chosen []subject.ExpertProbe, cfg Config) Retrieval {
	base := strings.Join(strings.Fields(text), " ")
	if runes := []rune(base); len(runes) > cfg.BaseQueryMaxRunes {
		base = string(runes[:cfg.BaseQueryMaxRunes])
	}

	tags := collectTags(hint, chosen)

	search := base
	if len(tags) > 0 {
		search = base + " " + strings.Join(tags, " ")
	}

	return Retrieval{
		BaseQuery:   base,
		Tags:        tags,
		SearchQuery: search,
	}
}

func collectTags(hint subject.Subject, chosen []subject.ExpertProbe) []string {
	seen := make(map[string]bool)
	var tags []string

	add := func(tag string) {
		if tag != "" && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	if hint != subject.SubjectUnknown {
		add(string(hint))
	}
	for _, expert := range chosen {
		for _, t := range expert.Tags {
			add(t)
		}
	}
	return tags
}
