// Package normalize converts raw store records into canonical domain
// entities. All type coercions (string-to-date, string-to-bool,
// string-to-number) happen here, once; unrecognized fields are inert.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"studiohub/internal/domain"
)

// Deliverable layout field names, including the qualified names of
// joined project, assignee, customer and studio-request data.
const (
	fieldID                  = "__kptID"
	fieldTitle               = "DeliverableName"
	fieldDueDate             = "DueDate"
	fieldStatus              = "Status"
	fieldDisplayStatus       = "DisplayStatus"
	fieldProjectName         = "ProjectName"
	fieldProjectID           = "_kftProjectID"
	fieldStudioRequestNumber = "StudioRequestNumber"
	fieldStudioRequestID     = "_kftStudioRequestID"
	fieldDesignerName        = "DesignerName"
	fieldCategory            = "CategoryName"
	fieldNotes               = "Notes"
	fieldCompleteDate        = "completeDate"
	fieldEstimatedHours      = "EstimatedHours_Graphics"
	fieldActualHours         = "zci_Sum_ActualHours_Total"

	fieldJoinedClientName   = "request_deliverables__PROJECTS__ProjectID::ClientName"
	fieldJoinedCustomerName = "request_deliverables__PROJECTS__ProjectID::request_deliverables__CUSTOMER__ClientID::custName"
	fieldAssigneeName       = "request_deliverables__ASSIGNEES__RequestDeliverableID__cre_del::StaffFullName"
	fieldAssigneeRole       = "request_deliverables__ASSIGNEES__RequestDeliverableID__cre_del::RoleName"
	fieldAssigneeDepartment = "request_deliverables__ASSIGNEES__RequestDeliverableID__cre_del::StaffDepartment"
	fieldRequestCreated     = "request_deliverables__STUDIO_REQUESTS__StudioRequestID::CreationTStamp"
	fieldRequestAccountName = "request_deliverables__STUDIO_REQUESTS__StudioRequestID::AccountName"
)

// Employee layout field names.
const (
	fieldLogon              = "nameLogon"
	fieldFullName           = "zctFirstNameLastName"
	fieldStudioManager      = "bool_studioManager"
	fieldStudioDesigner     = "bool_studioDesigner"
	fieldDepartment         = "department"
	fieldDepartmentManagers = "departmentManager"
	fieldActive             = "active"

	// FieldPassword is read directly during login verification; it is
	// deliberately not part of the normalized identity.
	FieldPassword = "fm_password"
)

var projectCodePrefix = regexp.MustCompile(`^\d+-\d+\s+`)

// Record maps a raw deliverable record to its canonical entity. Absent
// or malformed fields degrade to zero values, never errors.
func Record(r domain.RawRecord) domain.Deliverable {
	id := r.Field(fieldID)
	if id == "" {
		id = r.ID
	}

	assignee := r.Field(fieldAssigneeName)
	if assignee == "" {
		assignee = r.Field(fieldDesignerName)
	}

	return domain.Deliverable{
		ID:                  id,
		Title:               r.Field(fieldTitle),
		DueDate:             parseDate(r.Field(fieldDueDate)),
		RawStatus:           r.Field(fieldStatus),
		DisplayStatus:       r.Field(fieldDisplayStatus),
		ProjectName:         r.Field(fieldProjectName),
		ProjectID:           r.Field(fieldProjectID),
		ClientName:          clientName(r),
		StudioRequestNumber: r.Field(fieldStudioRequestNumber),
		StudioRequestID:     r.Field(fieldStudioRequestID),
		Assignee:            assignee,
		AssigneeRole:        r.Field(fieldAssigneeRole),
		AssigneeDepartment:  r.Field(fieldAssigneeDepartment),
		Category:            r.Field(fieldCategory),
		Notes:               r.Field(fieldNotes),
		CompleteDate:        parseDate(r.Field(fieldCompleteDate)),
		EstimatedHours:      parseHours(r.Field(fieldEstimatedHours)),
		ActualHours:         parseHours(r.Field(fieldActualHours)),
		CreatedAt:           parseTimestamp(r.Field(fieldRequestCreated)),
		AccountName:         r.Field(fieldRequestAccountName),
	}
}

// Records maps a batch of raw records in order.
func Records(raw []domain.RawRecord) []domain.Deliverable {
	items := make([]domain.Deliverable, 0, len(raw))
	for _, r := range raw {
		items = append(items, Record(r))
	}
	return items
}

// Employee maps a directory record to a caller identity.
func Employee(r domain.RawRecord) domain.CallerIdentity {
	displayName := r.Field(fieldFullName)
	if displayName == "" {
		displayName = r.Field(fieldLogon)
	}

	return domain.CallerIdentity{
		Username:           r.Field(fieldLogon),
		DisplayName:        displayName,
		IsManager:          parseBool(r.Field(fieldStudioManager)),
		IsDesigner:         parseBool(r.Field(fieldStudioDesigner)),
		Department:         r.Field(fieldDepartment),
		DepartmentManagers: r.Field(fieldDepartmentManagers),
	}
}

// EmployeeActive reports whether a directory record is flagged active.
func EmployeeActive(r domain.RawRecord) bool {
	return parseBool(r.Field(fieldActive))
}

// clientName resolves the client label: the joined customer name wins,
// then the joined project client name, then a best-effort parse of the
// project name ("20-2630 Client / Project" style). May legitimately be
// empty.
func clientName(r domain.RawRecord) string {
	if name := r.Field(fieldJoinedCustomerName); name != "" {
		return name
	}
	if name := r.Field(fieldJoinedClientName); name != "" {
		return name
	}
	return ClientFromProjectName(r.Field(fieldProjectName))
}

// ClientFromProjectName extracts the client from a project name by
// taking the text before the first "/" and stripping a leading
// "<digits>-<digits> " project code.
func ClientFromProjectName(projectName string) string {
	if !strings.Contains(projectName, "/") {
		return ""
	}
	first := strings.TrimSpace(strings.SplitN(projectName, "/", 2)[0])
	return strings.TrimSpace(projectCodePrefix.ReplaceAllString(first, ""))
}

// Store dates arrive as MM/DD/YYYY; ISO dates are accepted as a
// fallback for the in-memory store's fixtures.
var dateLayouts = []string{"01/02/2006", "2006-01-02"}

var timestampLayouts = []string{"01/02/2006 15:04:05", time.RFC3339, "2006-01-02 15:04:05"}

func parseDate(value string) time.Time {
	return parseFirst(value, dateLayouts)
}

func parseTimestamp(value string) time.Time {
	return parseFirst(value, timestampLayouts)
}

func parseFirst(value string, layouts []string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseHours(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	hours, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return hours
}

// The store encodes booleans as "1"/"0" strings.
func parseBool(value string) bool {
	return strings.TrimSpace(value) == "1"
}
