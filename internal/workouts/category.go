package workouts

import (
	"slices"
	"strings"
)

type Category string

var CategoryName = struct {
	Chest     Category
	Back      Category
	Legs      Category
	Shoulders Category
	Arms      Category
	Core      Category
	Cardio    Category
	Other     Category
}{
	Chest:     "CHEST",
	Back:      "BACK",
	Legs:      "LEGS",
	Shoulders: "SHOULDERS",
	Arms:      "ARMS",
	Core:      "CORE",
	Cardio:    "CARDIO",
	Other:     "OTHER",
}

// Categories is the fixed display order.
var Categories = []Category{
	CategoryName.Chest,
	CategoryName.Back,
	CategoryName.Legs,
	CategoryName.Shoulders,
	CategoryName.Arms,
	CategoryName.Core,
	CategoryName.Cardio,
	CategoryName.Other,
}

func (c Category) IsValid() bool {
	return slices.Contains(Categories, c)
}

// NormalizeCategory upper-cases the input and maps anything unknown to OTHER.
func NormalizeCategory(raw string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return CategoryName.Other
	}
	return c
}

type CategoryGroup struct {
	Category      Category       `json:"category"`
	ExerciseTypes []ExerciseType `json:"exerciseTypes"`
}

// GroupByCategory groups exercise types following the Categories order.
// Types within a group are sorted by name, empty groups are left out.
func GroupByCategory(types []ExerciseType) []CategoryGroup {
	byCategory := make(map[Category][]ExerciseType, len(Categories))
	for _, t := range types {
		c := t.Category
		if !c.IsValid() {
			c = CategoryName.Other
		}
		byCategory[c] = append(byCategory[c], t)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, c := range Categories {
		groupTypes, ok := byCategory[c]
		if !ok {
			continue
		}
		slices.SortStableFunc(groupTypes, func(a, b ExerciseType) int {
			return strings.Compare(a.Name, b.Name)
		})
		groups = append(groups, CategoryGroup{
			Category:      c,
			ExerciseTypes: groupTypes,
		})
	}

	return groups
}
