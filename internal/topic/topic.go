// Package topic defines the fixed topic menu.
package topic

import (
	"strings"

	"github.com/davidrencse/Folder-Generator/internal/model"
)

var topics = []model.Topic{
	{Key: "1", Label: "Computer Architecture", File: "computer_architecture_words.csv"},
	{Key: "2", Label: "Object Oriented Programming", File: "oop_words.csv"},
	{Key: "3", Label: "Operating Systems", File: "operating_systems_words.csv"},
	{Key: "4", Label: "Data Structures", File: "data_structures_words.csv"},
	{Key: "5", Label: "Computer Networking", File: "computer_networking_words.csv"},
}

// All returns the menu entries in key order.
func All() []model.Topic {
	return append([]model.Topic(nil), topics...)
}

// Lookup resolves a menu selection such as "3".
func Lookup(selection string) (model.Topic, bool) {
	selection = strings.TrimSpace(selection)
	for _, t := range topics {
		if t.Key == selection {
			return t, true
		}
	}
	return model.Topic{}, false
}
