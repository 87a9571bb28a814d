package toml

import (
	"fmt"

	"studiohub/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int      `toml:"version"`
	View        string   `toml:"view"`
	Departments []string `toml:"departments,omitempty"`
	People      []string `toml:"people,omitempty"`
	Statuses    []string `toml:"statuses,omitempty"`
	GroupBy     string   `toml:"group_by"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.View == "" {
		s.View = string(domain.ViewMine)
	}
	if s.GroupBy == "" {
		s.GroupBy = string(domain.GroupByStatus)
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported filters schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

func toSchema(defaults domain.FilterDefaults) fileSchema {
	return fileSchema{
		Version:     currentSchemaVersion,
		View:        string(defaults.View),
		Departments: defaults.Departments,
		People:      defaults.People,
		Statuses:    defaults.Statuses,
		GroupBy:     string(defaults.GroupBy),
	}
}

func fromSchema(file fileSchema) domain.FilterDefaults {
	return domain.FilterDefaults{
		View:        domain.ViewMode(file.View),
		Departments: file.Departments,
		People:      file.People,
		Statuses:    file.Statuses,
		GroupBy:     domain.GroupBy(file.GroupBy),
	}
}
