package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiohub/internal/domain"
)

func TestCompileMineOneSetPerStatus(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:     domain.ViewMine,
		Statuses: []string{"In Progress", "Overdue", "Pending"},
		Caller:   domain.CallerIdentity{DisplayName: "Mike Torres"},
	})

	require.Len(t, q, 3)
	for i, status := range []string{"In Progress", "Overdue", "Pending"} {
		assert.Equal(t, domain.CriterionSet{
			FieldDesignerName:  "Mike Torres",
			FieldDisplayStatus: status,
		}, q[i])
	}
}

func TestCompileMineDefaultsStatuses(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:   domain.ViewMine,
		Caller: domain.CallerIdentity{DisplayName: "Mike Torres"},
	})

	require.Len(t, q, 2)
	assert.Equal(t, "In Progress", q[0][FieldDisplayStatus])
	assert.Equal(t, "Overdue", q[1][FieldDisplayStatus])
}

func TestCompileDepartmentUsesCallerDepartment(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:     domain.ViewDepartment,
		Statuses: []string{"Overdue"},
		Caller:   domain.CallerIdentity{DisplayName: "Sarah Chen", Department: "Graphics"},
	})

	require.Len(t, q, 1)
	assert.Equal(t, domain.CriterionSet{
		FieldDisplayStatus:   "Overdue",
		FieldStaffDepartment: "Graphics",
	}, q[0])
}

func TestCompileDepartmentWithoutDepartmentFallsBackToStatusOnly(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:     domain.ViewDepartment,
		Statuses: []string{"Overdue"},
		Caller:   domain.CallerIdentity{DisplayName: "Sarah Chen"},
	})

	require.Len(t, q, 1)
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "Overdue"}, q[0])
}

func TestCompileAllIsCartesianProductStatusMajor(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:        domain.ViewAll,
		Departments: []string{"Graphics", "Structural", "Industrial"},
		Statuses:    []string{"In Progress", "Overdue"},
	})

	require.Len(t, q, 6)
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "In Progress", FieldStaffDepartment: "Graphics"}, q[0])
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "In Progress", FieldStaffDepartment: "Structural"}, q[1])
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "In Progress", FieldStaffDepartment: "Industrial"}, q[2])
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "Overdue", FieldStaffDepartment: "Graphics"}, q[3])
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "Overdue", FieldStaffDepartment: "Structural"}, q[4])
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "Overdue", FieldStaffDepartment: "Industrial"}, q[5])
}

func TestCompileAllDefaultsToManagedDepartments(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:     domain.ViewAll,
		Statuses: []string{"Overdue"},
		Caller:   domain.CallerIdentity{IsManager: true, DepartmentManagers: "Graphics;Industrial"},
	})

	require.Len(t, q, 2)
	assert.Equal(t, "Graphics", q[0][FieldStaffDepartment])
	assert.Equal(t, "Industrial", q[1][FieldStaffDepartment])
}

func TestCompileAllWithoutDepartmentsCoversEveryDepartment(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:     domain.ViewAll,
		Statuses: []string{"In Progress", "Overdue"},
	})

	require.Len(t, q, 2)
	for _, set := range q {
		assert.NotContains(t, set, FieldStaffDepartment)
	}
}

func TestCompileUnrecognizedViewFallsBackToStatusOnly(t *testing.T) {
	q := Compile(domain.FilterContext{
		View:     domain.ViewMode("calendar"),
		Statuses: []string{"Pending"},
	})

	require.Len(t, q, 1)
	assert.Equal(t, domain.CriterionSet{FieldDisplayStatus: "Pending"}, q[0])
}

func TestCompileIsDeterministic(t *testing.T) {
	f := domain.FilterContext{
		View:        domain.ViewAll,
		Departments: []string{"Graphics", "Structural"},
		Statuses:    []string{"Overdue", "In Progress"},
	}

	assert.Equal(t, Compile(f), Compile(f))
}
