package auth

import (
	"qualityhub-backend/internal/database/models"
)

// Permission is a named capability checked against a role's static grant set
type Permission string

const (
	PermViewOrganization Permission = "view_organization"
	PermViewUsers        Permission = "view_users"
	PermViewProjects     Permission = "view_projects"
	PermViewTestCases    Permission = "view_test_cases"
	PermViewTestPlans    Permission = "view_test_plans"
	PermViewTestRuns     Permission = "view_test_runs"
	PermViewTestResults  Permission = "view_test_results"

	PermCreateTestCase Permission = "create_test_case"
	PermEditTestCase   Permission = "edit_test_case"
	PermCreateTestRun  Permission = "create_test_run"
	PermExecuteTestRun Permission = "execute_test_run"
	PermEditTestResult Permission = "edit_test_result"

	PermDeleteTestCase Permission = "delete_test_case"
	PermCloseTestRun   Permission = "close_test_run"
	PermDeleteTestRun  Permission = "delete_test_run"
	PermCreateTestPlan Permission = "create_test_plan"
	PermEditTestPlan   Permission = "edit_test_plan"
	PermDeleteTestPlan Permission = "delete_test_plan"

	PermCreateProject      Permission = "create_project"
	PermEditProject        Permission = "edit_project"
	PermDeleteProject      Permission = "delete_project"
	PermManageProjectUsers Permission = "manage_project_users"

	PermManageUsers        Permission = "manage_users"
	PermManageOrganization Permission = "manage_organization"
	PermDeleteOrganization Permission = "delete_organization"
)

// rolePermissions maps each role to the permissions it holds. Each role's set
// is a superset of the role below it; the entries are duplicated by hand so the
// full grant set of a role is readable in one place.
var rolePermissions = map[models.UserRole][]Permission{
	models.RoleViewer: {
		PermViewOrganization,
		PermViewUsers,
		PermViewProjects,
		PermViewTestCases,
		PermViewTestPlans,
		PermViewTestRuns,
		PermViewTestResults,
	},
	models.RoleTester: {
		PermViewOrganization,
		PermViewUsers,
		PermViewProjects,
		PermViewTestCases,
		PermViewTestPlans,
		PermViewTestRuns,
		PermViewTestResults,
		PermCreateTestCase,
		PermEditTestCase,
		PermCreateTestRun,
		PermExecuteTestRun,
		PermEditTestResult,
	},
	models.RoleLead: {
		PermViewOrganization,
		PermViewUsers,
		PermViewProjects,
		PermViewTestCases,
		PermViewTestPlans,
		PermViewTestRuns,
		PermViewTestResults,
		PermCreateTestCase,
		PermEditTestCase,
		PermCreateTestRun,
		PermExecuteTestRun,
		PermEditTestResult,
		PermDeleteTestCase,
		PermCloseTestRun,
		PermDeleteTestRun,
		PermCreateTestPlan,
		PermEditTestPlan,
		PermDeleteTestPlan,
	},
	models.RoleProjectAdmin: {
		PermViewOrganization,
		PermViewUsers,
		PermViewProjects,
		PermViewTestCases,
		PermViewTestPlans,
		PermViewTestRuns,
		PermViewTestResults,
		PermCreateTestCase,
		PermEditTestCase,
		PermCreateTestRun,
		PermExecuteTestRun,
		PermEditTestResult,
		PermDeleteTestCase,
		PermCloseTestRun,
		PermDeleteTestRun,
		PermCreateTestPlan,
		PermEditTestPlan,
		PermDeleteTestPlan,
		PermCreateProject,
		PermEditProject,
		PermDeleteProject,
		PermManageProjectUsers,
	},
	models.RoleOrgAdmin: {
		PermViewOrganization,
		PermViewUsers,
		PermViewProjects,
		PermViewTestCases,
		PermViewTestPlans,
		PermViewTestRuns,
		PermViewTestResults,
		PermCreateTestCase,
		PermEditTestCase,
		PermCreateTestRun,
		PermExecuteTestRun,
		PermEditTestResult,
		PermDeleteTestCase,
		PermCloseTestRun,
		PermDeleteTestRun,
		PermCreateTestPlan,
		PermEditTestPlan,
		PermDeleteTestPlan,
		PermCreateProject,
		PermEditProject,
		PermDeleteProject,
		PermManageProjectUsers,
		PermManageUsers,
		PermManageOrganization,
		PermDeleteOrganization,
	},
}

// PermissionsForRole returns a copy of the permission set granted to a role.
// An unknown role has no permissions.
func PermissionsForRole(role models.UserRole) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether a role's grant set contains the permission
func HasPermission(role models.UserRole, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether a role's grant set is a superset of the
// required permissions
func HasAllPermissions(role models.UserRole, perms ...Permission) bool {
	for _, p := range perms {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}
