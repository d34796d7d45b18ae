package workouts

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type DefaultExerciseType struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type defaultsCatalog struct {
	ExerciseTypes []DefaultExerciseType `yaml:"exercise_types"`
}

// ParseDefaultExerciseTypes parses a YAML exercise type catalog.
// Names are upper-cased and categories normalized.
func ParseDefaultExerciseTypes(data []byte) ([]DefaultExerciseType, error) {
	var catalog defaultsCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("unmarshal exercise types catalog: %w", err)
	}

	types := make([]DefaultExerciseType, 0, len(catalog.ExerciseTypes))
	for i, t := range catalog.ExerciseTypes {
		name := strings.ToUpper(strings.TrimSpace(t.Name))
		if name == "" {
			return nil, fmt.Errorf("exercise type #%d: empty name", i)
		}
		types = append(types, DefaultExerciseType{
			Name:     name,
			Category: string(NormalizeCategory(t.Category)),
		})
	}

	return types, nil
}

func DefaultExerciseTypes() ([]DefaultExerciseType, error) {
	return ParseDefaultExerciseTypes(defaultsYAML)
}
