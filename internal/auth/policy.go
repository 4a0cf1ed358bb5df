package auth

import "hr-dashboard/internal/models"

// Resource names a protected route family.
type Resource string

// Action names an operation on a resource.
type Action string

const (
	ResourceUsers          Resource = "users"
	ResourceJobs           Resource = "jobs"
	ResourceCandidates     Resource = "candidates"
	ResourceApplications   Resource = "applications"
	ResourceInterviews     Resource = "interviews"
	ResourceEmailTemplates Resource = "email-templates"
	ResourceEmail          Resource = "email"
	ResourceReports        Resource = "reports"
)

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
	ActionSend   Action = "send"
)

var allRoles = []models.Role{models.RoleAdmin, models.RoleHRManager, models.RoleHRStaff, models.RoleInterviewer}

// policy is the single source of truth for role-based access. Every protected
// route consults this table through Allowed; roles are never checked inline in
// handlers.
var policy = map[Resource]map[Action][]models.Role{
	ResourceUsers: {
		ActionRead:   {models.RoleAdmin, models.RoleHRManager},
		ActionManage: {models.RoleAdmin, models.RoleHRManager},
		ActionDelete: {models.RoleAdmin},
	},
	ResourceJobs: {
		ActionRead:   allRoles,
		ActionCreate: {models.RoleAdmin, models.RoleHRManager, models.RoleHRStaff},
		ActionUpdate: {models.RoleAdmin, models.RoleHRManager, models.RoleHRStaff},
		ActionDelete: {models.RoleAdmin, models.RoleHRManager},
	},
	ResourceCandidates: {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	ResourceApplications: {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	ResourceInterviews: {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	ResourceEmailTemplates: {
		ActionRead:   {models.RoleAdmin, models.RoleHRManager},
		ActionManage: {models.RoleAdmin, models.RoleHRManager},
	},
	ResourceEmail: {
		ActionSend: {models.RoleAdmin, models.RoleHRManager, models.RoleHRStaff},
	},
	ResourceReports: {
		ActionRead: {models.RoleAdmin, models.RoleHRManager},
	},
}

// Allowed reports whether the role may perform action on resource. Unknown
// resource/action pairs are denied.
func Allowed(role models.Role, resource Resource, action Action) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}
	roles, ok := actions[action]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
