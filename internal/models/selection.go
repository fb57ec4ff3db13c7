package models

import (
	"sort"
	"strings"
)

// MirrorSeparator joins selected topics into the theme string sent to the
// backend, which splits on commas and trims.
const MirrorSeparator = ", "

// Selection is the set of topics picked on the dashboard.
type Selection struct {
	topics map[string]struct{}
}

func NewSelection(topics ...string) Selection {
	s := Selection{topics: make(map[string]struct{}, len(topics))}
	for _, t := range topics {
		s.topics[t] = struct{}{}
	}
	return s
}

func (s Selection) Contains(topic string) bool {
	_, ok := s.topics[topic]
	return ok
}

func (s Selection) Len() int {
	return len(s.topics)
}

// Toggle flips membership and reports whether topic is selected afterwards.
func (s *Selection) Toggle(topic string) bool {
	if s.topics == nil {
		s.topics = make(map[string]struct{})
	}
	if _, ok := s.topics[topic]; ok {
		delete(s.topics, topic)
		return false
	}
	s.topics[topic] = struct{}{}
	return true
}

func (s Selection) Sorted() []string {
	out := make([]string, 0, len(s.topics))
	for t := range s.topics {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s Selection) Mirror() string {
	return strings.Join(s.Sorted(), MirrorSeparator)
}
