package postgres

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

// ReportsRepo implements storage.ReportsRepository on gorm. Every method
// computes its aggregation fresh; nothing is cached or maintained
// incrementally.
type ReportsRepo struct {
	db *gorm.DB
}

// NewReportsRepo creates a new ReportsRepo.
func NewReportsRepo(db *gorm.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

var _ storage.ReportsRepository = (*ReportsRepo)(nil)

// rangeQuery bounds applications by applied_date. The dates are ISO strings,
// so lexicographic comparison matches chronological order.
func rangeQuery(q *gorm.DB, startDate, endDate string) *gorm.DB {
	if startDate != "" {
		q = q.Where("applications.applied_date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("applications.applied_date <= ?", endDate)
	}
	return q
}

func (r *ReportsRepo) CountApplications(ctx context.Context, startDate, endDate string) (int64, error) {
	var count int64
	q := rangeQuery(r.db.WithContext(ctx).Model(&models.Application{}), startDate, endDate)
	if err := q.Count(&count).Error; err != nil {
		log.Printf("Error counting applications: %v", err)
		return 0, mapError(err)
	}
	return count, nil
}

func (r *ReportsRepo) CountApplicationsByStatus(ctx context.Context, startDate, endDate string) ([]dto.StatusCount, error) {
	var rows []dto.StatusCount
	q := rangeQuery(r.db.WithContext(ctx).Model(&models.Application{}), startDate, endDate)
	err := q.Select("status, count(*) as count").
		Group("status").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error grouping applications by status: %v", err)
		return nil, mapError(err)
	}
	return rows, nil
}

func (r *ReportsRepo) CountApplicationsByDepartment(ctx context.Context, startDate, endDate string) ([]dto.DepartmentCount, error) {
	var rows []dto.DepartmentCount
	q := rangeQuery(r.db.WithContext(ctx).Model(&models.Application{}), startDate, endDate)
	err := q.Select("jobs.department as department, count(*) as count").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Group("jobs.department").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error grouping applications by department: %v", err)
		return nil, mapError(err)
	}
	return rows, nil
}

func (r *ReportsRepo) AcceptedApplicationDates(ctx context.Context, startDate, endDate string) ([]string, error) {
	var dates []string
	q := rangeQuery(r.db.WithContext(ctx).Model(&models.Application{}), startDate, endDate)
	err := q.Joins("JOIN candidates ON candidates.id = applications.candidate_id").
		Where("applications.status = ?", models.ApplicationStatusAccepted).
		Pluck("candidates.applied_date", &dates).Error
	if err != nil {
		log.Printf("Error fetching accepted application dates: %v", err)
		return nil, mapError(err)
	}
	return dates, nil
}

func (r *ReportsRepo) CountActiveJobs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive).
		Count(&count).Error
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (r *ReportsRepo) CountCandidates(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (r *ReportsRepo) CountInterviewsBetween(ctx context.Context, startDate, endDate string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interview{}).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Count(&count).Error
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (r *ReportsRepo) CountApplicationsCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (r *ReportsRepo) TopDepartments(ctx context.Context, limit int) ([]dto.DepartmentCount, error) {
	var rows []dto.DepartmentCount
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Select("department, count(*) as count").
		Group("department").
		Order("count desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error ranking departments: %v", err)
		return nil, mapError(err)
	}
	return rows, nil
}

func (r *ReportsRepo) RecentApplications(ctx context.Context, limit int) ([]dto.RecentApplication, error) {
	var rows []dto.RecentApplication
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Select(`applications.id, applications.status, applications.applied_date,
			candidates.name as candidate_name, candidates.email as candidate_email,
			jobs.title as job_title, jobs.department as job_department`).
		Joins("JOIN candidates ON candidates.id = applications.candidate_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Order("applications.created_at desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error fetching recent applications: %v", err)
		return nil, mapError(err)
	}
	return rows, nil
}

func (r *ReportsRepo) PipelineEntries(ctx context.Context) ([]dto.PipelineEntry, error) {
	var rows []struct {
		Status         string
		CandidateName  string
		CandidateEmail string
		JobTitle       string
		AppliedDate    string
	}
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Select(`applications.status, applications.applied_date,
			candidates.name as candidate_name, candidates.email as candidate_email,
			jobs.title as job_title`).
		Joins("JOIN candidates ON candidates.id = applications.candidate_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Order("applications.applied_date asc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error fetching pipeline entries: %v", err)
		return nil, mapError(err)
	}

	entries := make([]dto.PipelineEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, dto.PipelineEntry{
			Status:         row.Status,
			CandidateName:  row.CandidateName,
			CandidateEmail: row.CandidateEmail,
			JobTitle:       row.JobTitle,
			AppliedDate:    row.AppliedDate,
		})
	}
	return entries, nil
}
