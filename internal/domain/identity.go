package domain

import "strings"

// CallerIdentity describes the directory user on whose behalf queries run.
// DepartmentManagers carries the raw delimiter-separated list of departments
// the caller manages, exactly as stored in the directory.
type CallerIdentity struct {
	Username           string
	DisplayName        string
	IsManager          bool
	IsDesigner         bool
	Department         string
	DepartmentManagers string
}

// KnownDepartments is the fixed set of studio departments.
var KnownDepartments = []string{
	"Graphics",
	"Structural",
	"Industrial",
	"Engineering",
	"Environmental",
}

// ManagedDepartments parses DepartmentManagers, which may be comma- or
// semicolon-separated, and keeps only known departments.
func (c CallerIdentity) ManagedDepartments() []string {
	if c.DepartmentManagers == "" {
		return nil
	}

	parts := strings.FieldsFunc(c.DepartmentManagers, func(r rune) bool {
		return r == ',' || r == ';'
	})

	managed := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" || !isKnownDepartment(name) {
			continue
		}
		managed = append(managed, name)
	}

	return managed
}

func isKnownDepartment(name string) bool {
	for _, dept := range KnownDepartments {
		if dept == name {
			return true
		}
	}
	return false
}
