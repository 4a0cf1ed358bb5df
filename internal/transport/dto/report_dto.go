package dto

import "github.com/google/uuid"

// StatusCount is one bucket of a group-by-status aggregation.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DepartmentCount is one bucket of a group-by-department aggregation.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// RecentApplication is a recent application joined with its candidate and job.
type RecentApplication struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	AppliedDate    string    `json:"appliedDate"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	JobTitle       string    `json:"jobTitle"`
	JobDepartment  string    `json:"jobDepartment"`
}

// DashboardStats is the landing-page summary, computed fresh on every call.
type DashboardStats struct {
	TotalApplications     int64               `json:"totalApplications"`
	ActiveJobs            int64               `json:"activeJobs"`
	TotalCandidates       int64               `json:"totalCandidates"`
	InterviewsThisWeek    int64               `json:"interviewsThisWeek"`
	ApplicationsThisMonth int64               `json:"applicationsThisMonth"`
	TopDepartments        []DepartmentCount   `json:"topDepartments"`
	RecentApplications    []RecentApplication `json:"recentApplications"`
}

// HiringMetricsFilter bounds the metrics report; both bounds are inclusive and
// optional.
type HiringMetricsFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// HiringMetrics is the date-ranged hiring report.
type HiringMetrics struct {
	TotalApplications int64             `json:"totalApplications"`
	ByStatus          []StatusCount     `json:"byStatus"`
	ByDepartment      []DepartmentCount `json:"byDepartment"`
	AverageTimeToHire float64           `json:"averageTimeToHire"`
}

// PipelineEntry is one application row in the candidate pipeline report.
type PipelineEntry struct {
	Status         string `json:"-"`
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	JobTitle       string `json:"jobTitle"`
	AppliedDate    string `json:"appliedDate"`
}

// PipelineBucket groups pipeline entries that share a status.
type PipelineBucket struct {
	Status     string          `json:"status"`
	Count      int             `json:"count"`
	Candidates []PipelineEntry `json:"candidates"`
}
