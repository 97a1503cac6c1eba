package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Garimajunejaa/jobportall/internal/auth"
	"github.com/Garimajunejaa/jobportall/internal/common"
	"github.com/Garimajunejaa/jobportall/internal/models"
)

// Each test gets its own named in-memory database; cache=shared keeps every
// pooled connection on the same instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Company{}, &models.Job{}, &models.Application{}))
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
	fail    bool
}

func (f *fakeUploader) Upload(ctx context.Context, r io.Reader, folder, filename string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", common.NewError(common.CodeInternal, "Failed to upload file", nil)
	}
	f.uploads = append(f.uploads, folder+"/"+filename)
	return "https://cdn.example.com/" + folder + "/" + filename, nil
}

func createUser(t *testing.T, db *gorm.DB, email, role string, skills ...string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("pw123456")
	require.NoError(t, err)
	user := &models.User{
		Fullname: "Test User",
		Email:    email,
		Password: hash,
		Role:     role,
		Profile:  models.Profile{Skills: skills},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCompany(t *testing.T, db *gorm.DB, recruiterID uint, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, RecruiterID: recruiterID, Location: "Remote"}
	require.NoError(t, db.Create(company).Error)
	return company
}

// createJob keeps the text columns neutral so keyword and skill matching
// tests only see what they set themselves.
func createJob(t *testing.T, db *gorm.DB, companyID, recruiterID uint, title string, salary int64, createdAt time.Time) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:           title,
		Description:     "Hiring for " + title,
		Salary:          salary,
		Location:        "Bangalore",
		JobType:         "Full-time",
		ExperienceLevel: "Mid",
		Positions:       2,
		CompanyID:       companyID,
		CreatedByID:     recruiterID,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
