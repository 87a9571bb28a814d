package memstore

import (
	"time"

	"studiohub/internal/domain"
)

const (
	DeliverablesLayout = "REQUEST_DELIVERABLES"
	EmployeeLayout     = "EMPLOYEE"
)

const dateLayout = "01/02/2006"

// Seed loads a small demo dataset with due dates placed relative to
// now, so the summary counts stay meaningful whenever it runs.
func Seed(s *Store, now time.Time) {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(dateLayout)
	}

	s.Load(EmployeeLayout,
		employee("e1", "sarah.chen", "Sarah Chen", "1", "0", "Graphics", "Graphics;Industrial", "s3cret"),
		employee("e2", "mike.torres", "Mike Torres", "0", "1", "Graphics", "", "s3cret"),
		employee("e3", "dana.wolf", "Dana Wolf", "0", "1", "Structural", "", "s3cret"),
	)

	s.Load(DeliverablesLayout,
		deliverable("d1", "Package dieline", day(-3), "Overdue", "20-2630 Acme Foods / Spring Display", "Mike Torres", "Graphics", ""),
		deliverable("d2", "Shelf render", day(0), "In Progress", "21-1040 Brightway / Endcap", "Mike Torres", "Graphics", "Brightway"),
		deliverable("d3", "Pallet skirt art", day(2), "In Progress", "Acme Foods / Pallet Program", "Sarah Chen", "Graphics", ""),
		deliverable("d4", "Corrugate spec", day(-1), "Overdue", "22-0015 Northstar / Club Tray", "Dana Wolf", "Structural", ""),
		deliverable("d5", "Load test report", day(6), "In Progress", "Northstar / Club Tray", "Dana Wolf", "Structural", "Northstar"),
		deliverable("d6", "Concept sketches", day(9), "Not Started", "Vista Brands / Launch Kit", "", "Industrial", ""),
		deliverable("d7", "Final mechanicals", day(-10), "Complete", "Acme Foods / Spring Display", "Mike Torres", "Graphics", ""),
	)
}

func employee(id, logon, fullName, manager, designer, department, managed, password string) domain.RawRecord {
	return domain.RawRecord{
		ID: id,
		Fields: map[string]string{
			"nameLogon":            logon,
			"zctFirstNameLastName": fullName,
			"bool_studioManager":   manager,
			"bool_studioDesigner":  designer,
			"department":           department,
			"departmentManager":    managed,
			"active":               "1",
			"fm_password":          password,
		},
	}
}

func deliverable(id, title, due, displayStatus, project, assignee, department, client string) domain.RawRecord {
	rawStatus := displayStatus
	if displayStatus == "Overdue" {
		rawStatus = "In Progress"
	}

	fields := map[string]string{
		"__kptID":         id,
		"DeliverableName": title,
		"DueDate":         due,
		"Status":          rawStatus,
		"DisplayStatus":   displayStatus,
		"ProjectName":     project,
		"_kftProjectID":   "P-" + id,
		"request_deliverables__ASSIGNEES__RequestDeliverableID__cre_del::StaffFullName":   assignee,
		"request_deliverables__ASSIGNEES__RequestDeliverableID__cre_del::StaffDepartment": department,
	}
	if assignee != "" {
		fields["DesignerName"] = assignee
	}
	if client != "" {
		fields["request_deliverables__PROJECTS__ProjectID::ClientName"] = client
	}
	return domain.RawRecord{ID: id, Fields: fields}
}
