package models

// UserRole represents a user's access level within their organization
type UserRole string

const (
	RoleViewer       UserRole = "viewer"
	RoleTester       UserRole = "tester"
	RoleLead         UserRole = "lead"
	RoleProjectAdmin UserRole = "project_admin"
	RoleOrgAdmin     UserRole = "org_admin"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleViewer, RoleTester, RoleLead, RoleProjectAdmin, RoleOrgAdmin:
		return true
	}
	return false
}

// TestRunStatus defines the lifecycle states of a test run
type TestRunStatus string

const (
	TestRunNotStarted TestRunStatus = "not_started"
	TestRunInProgress TestRunStatus = "in_progress"
	TestRunCompleted  TestRunStatus = "completed"
)

// IsValid checks if the TestRunStatus is valid
func (s TestRunStatus) IsValid() bool {
	switch s {
	case TestRunNotStarted, TestRunInProgress, TestRunCompleted:
		return true
	}
	return false
}

// TestResultStatus defines the recorded outcome of a test case execution
type TestResultStatus string

const (
	ResultUntested TestResultStatus = "untested"
	ResultPassed   TestResultStatus = "passed"
	ResultFailed   TestResultStatus = "failed"
	ResultBlocked  TestResultStatus = "blocked"
	ResultRetest   TestResultStatus = "retest"
	ResultSkipped  TestResultStatus = "skipped"
)

// IsValid checks if the TestResultStatus is valid
func (s TestResultStatus) IsValid() bool {
	switch s {
	case ResultUntested, ResultPassed, ResultFailed, ResultBlocked, ResultRetest, ResultSkipped:
		return true
	}
	return false
}

// TestCasePriority defines how important a test case is
type TestCasePriority string

const (
	PriorityLow      TestCasePriority = "low"
	PriorityMedium   TestCasePriority = "medium"
	PriorityHigh     TestCasePriority = "high"
	PriorityCritical TestCasePriority = "critical"
)

// IsValid checks if the TestCasePriority is valid
func (p TestCasePriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
