package application

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"studiohub/internal/domain"
	"studiohub/internal/normalize"
	"studiohub/internal/ports"
)

const (
	EmployeeLayout = "EMPLOYEE"

	directoryPageSize = 500
)

// DirectoryService answers identity questions against the employee
// directory layout: login verification and manager filter data.
type DirectoryService struct {
	source ports.RecordSource
	logger *zap.Logger
}

func NewDirectoryService(source ports.RecordSource, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{source: source, logger: logger}
}

// Employee is one directory entry offered in manager filters.
type Employee struct {
	ID         string
	Name       string
	Department string
}

// ManagerData is the filter vocabulary available to managers.
type ManagerData struct {
	Departments []string
	Employees   []Employee
}

// Login verifies directory credentials and returns the caller identity.
// A missing user and a wrong password are indistinguishable to the
// caller.
func (s *DirectoryService) Login(ctx context.Context, username, password string) (domain.CallerIdentity, error) {
	if username == "" || password == "" {
		return domain.CallerIdentity{}, domain.ErrInvalidLogin
	}

	records, err := s.source.Find(ctx, EmployeeLayout, domain.Query{{"nameLogon": username}}, 1)
	if err != nil {
		return domain.CallerIdentity{}, fmt.Errorf("look up user: %w", err)
	}
	if len(records) == 0 {
		return domain.CallerIdentity{}, domain.ErrInvalidLogin
	}

	record := records[0]
	if record.Field(normalize.FieldPassword) != password {
		return domain.CallerIdentity{}, domain.ErrInvalidLogin
	}

	identity := normalize.Employee(record)
	s.logger.Debug("login verified", zap.String("username", identity.Username))
	return identity, nil
}

// ManagerData collects the distinct departments and the active studio
// staff a manager can filter by. Non-managers are refused.
func (s *DirectoryService) ManagerData(ctx context.Context, caller domain.CallerIdentity) (ManagerData, error) {
	if !caller.IsManager {
		return ManagerData{}, domain.ErrManagerRequired
	}

	records, err := s.source.GetAll(ctx, EmployeeLayout, directoryPageSize, 1)
	if err != nil {
		return ManagerData{}, fmt.Errorf("list employees: %w", err)
	}

	departments := make(map[string]struct{})
	employees := make([]Employee, 0, len(records))

	for _, record := range records {
		identity := normalize.Employee(record)
		if identity.Department != "" {
			departments[identity.Department] = struct{}{}
		}

		if identity.Username == "" || !normalize.EmployeeActive(record) {
			continue
		}
		if !identity.IsManager && !identity.IsDesigner {
			continue
		}

		department := identity.Department
		if department == "" {
			department = "Unknown"
		}
		employees = append(employees, Employee{
			ID:         identity.Username,
			Name:       identity.DisplayName,
			Department: department,
		})
	}

	data := ManagerData{
		Departments: make([]string, 0, len(departments)),
		Employees:   employees,
	}
	for department := range departments {
		data.Departments = append(data.Departments, department)
	}
	sort.Strings(data.Departments)
	sort.Slice(data.Employees, func(i, j int) bool { return data.Employees[i].Name < data.Employees[j].Name })

	return data, nil
}
