package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-dashboard/internal/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		resource Resource
		action   Action
		want     bool
	}{
		{"admin reads users", models.RoleAdmin, ResourceUsers, ActionRead, true},
		{"hr_manager reads users", models.RoleHRManager, ResourceUsers, ActionRead, true},
		{"hr_staff cannot read users", models.RoleHRStaff, ResourceUsers, ActionRead, false},
		{"interviewer cannot read users", models.RoleInterviewer, ResourceUsers, ActionRead, false},
		{"only admin deletes users", models.RoleHRManager, ResourceUsers, ActionDelete, false},
		{"admin deletes users", models.RoleAdmin, ResourceUsers, ActionDelete, true},

		{"interviewer reads jobs", models.RoleInterviewer, ResourceJobs, ActionRead, true},
		{"interviewer cannot create jobs", models.RoleInterviewer, ResourceJobs, ActionCreate, false},
		{"hr_staff creates jobs", models.RoleHRStaff, ResourceJobs, ActionCreate, true},
		{"hr_staff cannot delete jobs", models.RoleHRStaff, ResourceJobs, ActionDelete, false},
		{"hr_manager deletes jobs", models.RoleHRManager, ResourceJobs, ActionDelete, true},

		{"interviewer manages candidates", models.RoleInterviewer, ResourceCandidates, ActionUpdate, true},
		{"interviewer manages applications", models.RoleInterviewer, ResourceApplications, ActionDelete, true},
		{"interviewer manages interviews", models.RoleInterviewer, ResourceInterviews, ActionCreate, true},

		{"hr_staff sends email", models.RoleHRStaff, ResourceEmail, ActionSend, true},
		{"hr_staff cannot manage templates", models.RoleHRStaff, ResourceEmailTemplates, ActionManage, false},
		{"interviewer cannot send email", models.RoleInterviewer, ResourceEmail, ActionSend, false},

		{"hr_manager reads reports", models.RoleHRManager, ResourceReports, ActionRead, true},
		{"hr_staff cannot read reports", models.RoleHRStaff, ResourceReports, ActionRead, false},
		{"interviewer cannot read reports", models.RoleInterviewer, ResourceReports, ActionRead, false},

		{"unknown resource denied", models.RoleAdmin, Resource("secrets"), ActionRead, false},
		{"unknown action denied", models.RoleAdmin, ResourceJobs, Action("purge"), false},
		{"unknown role denied", models.Role("guest"), ResourceJobs, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.resource, tt.action))
		})
	}
}
