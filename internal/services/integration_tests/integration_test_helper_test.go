package integration_tests

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hr-dashboard/internal/database"
	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage/postgres"
)

var testDB *gorm.DB

// getTestDB connects to the database named by TEST_DATABASE_URL and migrates
// the schema. Tests using it are skipped when the variable is not set.
func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	if testDB == nil {
		db, err := database.Connect(dsn)
		require.NoError(t, err, "Failed to connect to test database")
		require.NoError(t, database.Migrate(db), "Failed to migrate test database")
		testDB = db
	}
	return testDB
}

// cleanupTables deletes all rows from the named tables for test isolation.
// Pass children before parents so foreign keys do not block the deletes.
func cleanupTables(ctx context.Context, t *testing.T, db *gorm.DB, tables ...string) {
	t.Helper()
	for _, table := range tables {
		err := db.WithContext(ctx).Exec("DELETE FROM " + table).Error
		require.NoError(t, err, "Failed to clean %s table", table)
	}
	log.Printf("Cleaned tables: %s", strings.Join(tables, ", "))
}

// createTestJob inserts a minimal active job posting.
func createTestJob(t *testing.T, ctx context.Context, db *gorm.DB, title string) *models.Job {
	t.Helper()
	jobRepo := postgres.NewJobRepo(db)
	job, err := jobRepo.Create(ctx, &models.Job{
		Title:       title,
		Department:  "Engineering",
		Location:    "Remote",
		Type:        models.EmploymentFullTime,
		Experience:  "3+ years",
		Salary:      "60k-80k",
		Description: "Integration fixture posting",
		Deadline:    "2026-12-31",
		Status:      models.JobStatusActive,
		PostedDate:  "2026-01-01",
	})
	require.NoError(t, err, "Failed to create test job %q", title)
	require.NotNil(t, job)
	return job
}

// createTestCandidate inserts a minimal active candidate.
func createTestCandidate(t *testing.T, ctx context.Context, db *gorm.DB, email string) *models.Candidate {
	t.Helper()
	candidateRepo := postgres.NewCandidateRepo(db)
	candidate, err := candidateRepo.Create(ctx, &models.Candidate{
		Name:        "Test Candidate",
		Email:       email,
		Phone:       "555-0100",
		Experience:  "5 years",
		Status:      models.CandidateStatusActive,
		AppliedDate: "2026-01-10",
		Source:      models.SourceWebsite,
	})
	require.NoError(t, err, "Failed to create test candidate %s", email)
	require.NotNil(t, candidate)
	return candidate
}
