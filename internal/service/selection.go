package service

import "github.com/Cj170303/PPIA-Pro/internal/models"

type Chip struct {
	Topic    string
	Selected bool
}

// Chips lists the catalog topics in catalog order, marking those in selected.
func Chips(catalog []string, selected []string) []Chip {
	sel := models.NewSelection(selected...)
	chips := make([]Chip, 0, len(catalog))
	for _, topic := range catalog {
		chips = append(chips, Chip{Topic: topic, Selected: sel.Contains(topic)})
	}
	return chips
}
