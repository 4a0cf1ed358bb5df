package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

// dateLayout is the ISO calendar-date layout every entity stores its dates in.
const dateLayout = "2006-01-02"

type reportsService struct {
	reports storage.ReportsRepository
	now     func() time.Time
}

// NewReportsService creates a new instance of ReportsService.
func NewReportsService(reports storage.ReportsRepository) ReportsService {
	return &reportsService{reports: reports, now: time.Now}
}

func (s *reportsService) queryErr(what string, err error) error {
	log.Printf("ReportsService: error computing %s: %v", what, err)
	return fmt.Errorf("%w: %s", ErrQueryFailure, what)
}

func (s *reportsService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	now := s.now()
	weekStart := now.AddDate(0, 0, -6).Format(dateLayout)
	weekEnd := now.Format(dateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &dto.DashboardStats{}
	var err error

	if stats.TotalApplications, err = s.reports.CountApplications(ctx, "", ""); err != nil {
		return nil, s.queryErr("total applications", err)
	}
	if stats.ActiveJobs, err = s.reports.CountActiveJobs(ctx); err != nil {
		return nil, s.queryErr("active jobs", err)
	}
	if stats.TotalCandidates, err = s.reports.CountCandidates(ctx); err != nil {
		return nil, s.queryErr("total candidates", err)
	}
	if stats.InterviewsThisWeek, err = s.reports.CountInterviewsBetween(ctx, weekStart, weekEnd); err != nil {
		return nil, s.queryErr("interviews this week", err)
	}
	if stats.ApplicationsThisMonth, err = s.reports.CountApplicationsCreatedSince(ctx, monthStart); err != nil {
		return nil, s.queryErr("applications this month", err)
	}
	if stats.TopDepartments, err = s.reports.TopDepartments(ctx, 5); err != nil {
		return nil, s.queryErr("top departments", err)
	}
	if stats.RecentApplications, err = s.reports.RecentApplications(ctx, 5); err != nil {
		return nil, s.queryErr("recent applications", err)
	}
	return stats, nil
}

func (s *reportsService) HiringMetrics(ctx context.Context, filter *dto.HiringMetricsFilter) (*dto.HiringMetrics, error) {
	metrics := &dto.HiringMetrics{}
	var err error

	if metrics.TotalApplications, err = s.reports.CountApplications(ctx, filter.StartDate, filter.EndDate); err != nil {
		return nil, s.queryErr("total applications", err)
	}
	if metrics.ByStatus, err = s.reports.CountApplicationsByStatus(ctx, filter.StartDate, filter.EndDate); err != nil {
		return nil, s.queryErr("applications by status", err)
	}
	if metrics.ByDepartment, err = s.reports.CountApplicationsByDepartment(ctx, filter.StartDate, filter.EndDate); err != nil {
		return nil, s.queryErr("applications by department", err)
	}

	dates, err := s.reports.AcceptedApplicationDates(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, s.queryErr("accepted application dates", err)
	}
	metrics.AverageTimeToHire = averageTimeToHire(dates, s.now())

	return metrics, nil
}

func (s *reportsService) CandidatePipeline(ctx context.Context) ([]dto.PipelineBucket, error) {
	entries, err := s.reports.PipelineEntries(ctx)
	if err != nil {
		return nil, s.queryErr("candidate pipeline", err)
	}

	// Preserve first-seen status order so the buckets follow the store's
	// ordering of the underlying rows.
	var order []string
	grouped := make(map[string][]dto.PipelineEntry)
	for _, entry := range entries {
		if _, seen := grouped[entry.Status]; !seen {
			order = append(order, entry.Status)
		}
		grouped[entry.Status] = append(grouped[entry.Status], entry)
	}

	buckets := make([]dto.PipelineBucket, 0, len(order))
	for _, status := range order {
		buckets = append(buckets, dto.PipelineBucket{
			Status:     status,
			Count:      len(grouped[status]),
			Candidates: grouped[status],
		})
	}
	return buckets, nil
}

// averageTimeToHire averages the span in days between each accepted
// candidate's applied date and now. The span deliberately runs to now rather
// than to an acceptance timestamp, matching how the dashboard has always
// reported this figure. Unparsable dates are skipped; no dates yields zero.
func averageTimeToHire(appliedDates []string, now time.Time) float64 {
	var total float64
	var counted int
	for _, raw := range appliedDates {
		applied, err := time.Parse(dateLayout, raw)
		if err != nil {
			continue
		}
		total += now.Sub(applied).Hours() / 24
		counted++
	}
	if counted == 0 {
		return 0
	}
	return math.Round(total/float64(counted)*10) / 10
}
