package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name     string `yaml:"name"`
	Activity `yaml:",inline"`
}

// LoadSeed reads the activity catalog fixture. The file is read once
// at startup; the returned map is the seed for NewStore.
func LoadSeed(path string) (map[string]Activity, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open seed file: %w", err)
	}
	defer file.Close()

	var seed seedFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("roster: parse seed file: %w", err)
	}

	activities := make(map[string]Activity, len(seed.Activities))
	for _, sa := range seed.Activities {
		if sa.Name == "" {
			return nil, fmt.Errorf("roster: seed activity with empty name")
		}
		if _, dup := activities[sa.Name]; dup {
			return nil, fmt.Errorf("roster: duplicate seed activity %q", sa.Name)
		}
		if sa.MaxParticipants <= 0 {
			return nil, fmt.Errorf("roster: activity %q: max_participants must be positive", sa.Name)
		}
		seen := make(map[string]bool, len(sa.Participants))
		for _, p := range sa.Participants {
			if seen[p] {
				return nil, fmt.Errorf("roster: activity %q: duplicate participant %q", sa.Name, p)
			}
			seen[p] = true
		}
		activities[sa.Name] = sa.Activity
	}

	return activities, nil
}
