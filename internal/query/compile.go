// Package query compiles filter state into the remote store's native
// find-query shape: an OR of AND-blocks over field equality.
package query

import "studiohub/internal/domain"

// Remote field names used by deliverable queries. StaffDepartment lives
// on the assignees join table, hence the qualified name.
const (
	FieldDesignerName    = "DesignerName"
	FieldDisplayStatus   = "DisplayStatus"
	FieldStaffDepartment = "request_deliverables__ASSIGNEES__RequestDeliverableID__cre_del::StaffDepartment"
)

// Compile turns a filter context into a Query. It is pure and
// deterministic: CriterionSets come out status-major, department-minor,
// so equal inputs always produce identical queries.
func Compile(f domain.FilterContext) domain.Query {
	statuses := f.Statuses
	if len(statuses) == 0 {
		statuses = domain.DefaultStatuses()
	}

	switch f.View {
	case domain.ViewMine:
		q := make(domain.Query, 0, len(statuses))
		for _, status := range statuses {
			q = append(q, domain.CriterionSet{
				FieldDesignerName:  f.Caller.DisplayName,
				FieldDisplayStatus: status,
			})
		}
		return q

	case domain.ViewDepartment:
		if f.Caller.Department == "" {
			return statusOnly(statuses)
		}
		q := make(domain.Query, 0, len(statuses))
		for _, status := range statuses {
			q = append(q, domain.CriterionSet{
				FieldDisplayStatus:   status,
				FieldStaffDepartment: f.Caller.Department,
			})
		}
		return q

	case domain.ViewAll:
		departments := f.Departments
		if len(departments) == 0 {
			departments = f.Caller.ManagedDepartments()
		}
		if len(departments) == 0 {
			return statusOnly(statuses)
		}
		q := make(domain.Query, 0, len(statuses)*len(departments))
		for _, status := range statuses {
			for _, dept := range departments {
				q = append(q, domain.CriterionSet{
					FieldDisplayStatus:   status,
					FieldStaffDepartment: dept,
				})
			}
		}
		return q

	default:
		return statusOnly(statuses)
	}
}

func statusOnly(statuses []string) domain.Query {
	q := make(domain.Query, 0, len(statuses))
	for _, status := range statuses {
		q = append(q, domain.CriterionSet{FieldDisplayStatus: status})
	}
	return q
}
