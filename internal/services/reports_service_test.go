package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hr-dashboard/internal/transport/dto"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAverageTimeToHire(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		dates []string
		want  float64
	}{
		{name: "no accepted applications", dates: nil, want: 0},
		{name: "single date", dates: []string{"2024-06-05"}, want: 10.5},
		{name: "multiple dates", dates: []string{"2024-06-05", "2024-06-11"}, want: 7.5},
		{name: "unparsable dates are skipped", dates: []string{"not-a-date", "2024-06-05"}, want: 10.5},
		{name: "only unparsable dates", dates: []string{"garbage"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, averageTimeToHire(tt.dates, now))
		})
	}
}

func TestDashboardStats_UsesCalendarWindows(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockReportsRepository)
	service := &reportsService{reports: mockRepo, now: fixedClock(now)}

	mockRepo.On("CountApplications", mock.Anything, "", "").Return(int64(42), nil)
	mockRepo.On("CountActiveJobs", mock.Anything).Return(int64(7), nil)
	mockRepo.On("CountCandidates", mock.Anything).Return(int64(19), nil)
	// Trailing seven calendar days, bounds inclusive.
	mockRepo.On("CountInterviewsBetween", mock.Anything, "2024-06-09", "2024-06-15").Return(int64(3), nil)
	mockRepo.On("CountApplicationsCreatedSince", mock.Anything, monthStart).Return(int64(11), nil)
	mockRepo.On("TopDepartments", mock.Anything, 5).Return([]dto.DepartmentCount{
		{Department: "Engineering", Count: 4},
	}, nil)
	mockRepo.On("RecentApplications", mock.Anything, 5).Return([]dto.RecentApplication{}, nil)

	stats, err := service.DashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalApplications)
	assert.Equal(t, int64(7), stats.ActiveJobs)
	assert.Equal(t, int64(19), stats.TotalCandidates)
	assert.Equal(t, int64(3), stats.InterviewsThisWeek)
	assert.Equal(t, int64(11), stats.ApplicationsThisMonth)
	mockRepo.AssertExpectations(t)
}

func TestDashboardStats_FailsWholesaleOnSubQueryError(t *testing.T) {
	mockRepo := new(MockReportsRepository)
	service := &reportsService{reports: mockRepo, now: time.Now}

	mockRepo.On("CountApplications", mock.Anything, "", "").Return(int64(0), assert.AnError)

	stats, err := service.DashboardStats(context.Background())

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrQueryFailure)
}

func TestHiringMetrics_PassesRangeThrough(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	mockRepo := new(MockReportsRepository)
	service := &reportsService{reports: mockRepo, now: fixedClock(now)}

	mockRepo.On("CountApplications", mock.Anything, "2024-01-01", "2024-03-31").Return(int64(20), nil)
	mockRepo.On("CountApplicationsByStatus", mock.Anything, "2024-01-01", "2024-03-31").Return([]dto.StatusCount{
		{Status: "pending", Count: 12},
		{Status: "accepted", Count: 8},
	}, nil)
	mockRepo.On("CountApplicationsByDepartment", mock.Anything, "2024-01-01", "2024-03-31").Return([]dto.DepartmentCount{
		{Department: "Sales", Count: 20},
	}, nil)
	mockRepo.On("AcceptedApplicationDates", mock.Anything, "2024-01-01", "2024-03-31").Return([]string{"2024-06-05"}, nil)

	metrics, err := service.HiringMetrics(context.Background(), &dto.HiringMetricsFilter{
		StartDate: "2024-01-01",
		EndDate:   "2024-03-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(20), metrics.TotalApplications)
	assert.Len(t, metrics.ByStatus, 2)
	assert.Equal(t, 10.0, metrics.AverageTimeToHire)
	mockRepo.AssertExpectations(t)
}

func TestCandidatePipeline_GroupsByStatus(t *testing.T) {
	mockRepo := new(MockReportsRepository)
	service := &reportsService{reports: mockRepo, now: time.Now}

	mockRepo.On("PipelineEntries", mock.Anything).Return([]dto.PipelineEntry{
		{Status: "pending", CandidateName: "Ada", JobTitle: "Engineer"},
		{Status: "accepted", CandidateName: "Grace", JobTitle: "Manager"},
		{Status: "pending", CandidateName: "Alan", JobTitle: "Engineer"},
	}, nil)

	buckets, err := service.CandidatePipeline(context.Background())

	assert.NoError(t, err)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "pending", buckets[0].Status)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Len(t, buckets[0].Candidates, 2)
	assert.Equal(t, "accepted", buckets[1].Status)
	assert.Equal(t, 1, buckets[1].Count)
}
