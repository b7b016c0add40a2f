package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type facilityConfig struct {
	Facilities []facilityEntry `yaml:"facilities"`
}

type facilityEntry struct {
	Selector string `yaml:"selector"`
	User     string `yaml:"user"`
	Host     string `yaml:"host"`
}

// loadFacilityTable returns the built-in facility table, with entries
// from the config file at path replacing or extending it. An empty path
// means the built-in table as-is.
func loadFacilityTable(path string) ([]facility, error) {
	table := append([]facility(nil), builtinFacilities...)
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read facility config: %w", err)
	}

	var cfg facilityConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse facility config %s: %w", path, err)
	}

	seen := map[string]bool{}
	for _, e := range cfg.Facilities {
		if e.Selector == "" || e.User == "" || e.Host == "" {
			return nil, fmt.Errorf("incomplete facility entry %+v in %s", e, path)
		}

		if seen[e.Selector] {
			return nil, fmt.Errorf("duplicate selector %q in %s", e.Selector, path)
		}
		seen[e.Selector] = true

		table = upsertFacility(table, facility{
			selector: e.Selector,
			user:     e.User,
			host:     e.Host,
		})
	}

	return table, nil
}

func upsertFacility(table []facility, f facility) []facility {
	for i := range table {
		if table[i].selector == f.selector {
			table[i] = f
			return table
		}
	}

	return append(table, f)
}
