package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Garimajunejaa/jobportall/internal/common"
	"github.com/Garimajunejaa/jobportall/internal/models"
)

type applicationFixture struct {
	db        *gorm.DB
	svc       *ApplicationService
	student   *models.User
	recruiter *models.User
	job       *models.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	db := newTestDB(t)
	recruiter := createUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	company := createCompany(t, db, recruiter.ID, "Acme")
	job := createJob(t, db, company.ID, recruiter.ID, "Backend Engineer", 50000, time.Now().UTC())
	student := createUser(t, db, "student@x.com", models.RoleStudent)
	return &applicationFixture{db: db, svc: NewApplicationService(db), student: student, recruiter: recruiter, job: job}
}

func TestApply(t *testing.T) {
	f := newApplicationFixture(t)

	app, err := f.svc.Apply(context.Background(), f.student.ID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, f.student.ID, app.ApplicantID)
	assert.False(t, app.AppliedAt.IsZero())
}

func TestApplyTwiceConflict(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.svc.Apply(ctx, f.student.ID, f.job.ID)
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, f.student.ID, f.job.ID)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeConflict))

	var count int64
	require.NoError(t, f.db.Model(&models.Application{}).
		Where("applicant_id = ? AND job_id = ?", f.student.ID, f.job.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count, "exactly one application may exist per (applicant, job)")
}

func TestApplyUniqueIndexCatchesRace(t *testing.T) {
	f := newApplicationFixture(t)

	// Simulate the second writer of a race: the pre-check already passed, so
	// insert directly and let the index decide.
	first := &models.Application{ApplicantID: f.student.ID, JobID: f.job.ID, Status: models.StatusPending, AppliedAt: time.Now().UTC()}
	require.NoError(t, f.db.Create(first).Error)

	second := &models.Application{ApplicantID: f.student.ID, JobID: f.job.ID, Status: models.StatusPending, AppliedAt: time.Now().UTC()}
	err := f.db.Create(second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestApplyMissingEntities(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.svc.Apply(ctx, 9999, f.job.ID)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))

	_, err = f.svc.Apply(ctx, f.student.ID, 9999)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestUpdateStatusNormalizesCase(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.svc.Apply(ctx, f.student.ID, f.job.ID)
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, app.ID, "Accepted")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	var stored models.Application
	require.NoError(t, f.db.First(&stored, app.ID).Error)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

func TestUpdateStatusRejectsInvalidValues(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.svc.Apply(ctx, f.student.ID, f.job.ID)
	require.NoError(t, err)

	for _, status := range []string{"pending", "hired", "", "ACCEPTED_MAYBE"} {
		_, err := f.svc.UpdateStatus(ctx, app.ID, status)
		require.Error(t, err, "status %q must be rejected", status)
		assert.True(t, common.Is(err, common.CodeValidation))
	}
}

func TestUpdateStatusTerminal(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.svc.Apply(ctx, f.student.ID, f.job.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, app.ID, "rejected")
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, app.ID, "accepted")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeConflict))
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), 9999, "accepted")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestApplicants(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	f.student.Profile.ResumeURL = "https://cdn.example.com/resumes/cv.pdf"
	require.NoError(t, f.db.Save(f.student).Error)
	_, err := f.svc.Apply(ctx, f.student.ID, f.job.ID)
	require.NoError(t, err)

	applications, err := f.svc.Applicants(ctx, f.recruiter.ID, f.job.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, f.student.Email, applications[0].Applicant.Email)
	// The stored resume URL is returned untouched.
	assert.Equal(t, "https://cdn.example.com/resumes/cv.pdf", applications[0].Applicant.Profile.ResumeURL)
}

func TestApplicantsForeignJobForbidden(t *testing.T) {
	f := newApplicationFixture(t)
	other := createUser(t, f.db, "other@x.com", models.RoleRecruiter)

	_, err := f.svc.Applicants(context.Background(), other.ID, f.job.ID)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeForbidden))
}

func TestAppliedJobsExpandsJobAndCompany(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.svc.Apply(ctx, f.student.ID, f.job.ID)
	require.NoError(t, err)

	applications, err := f.svc.AppliedJobs(ctx, f.student.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, models.StatusPending, applications[0].Status)
	assert.Equal(t, "Backend Engineer", applications[0].Job.Title)
	assert.Equal(t, "Acme", applications[0].Job.Company.Name)
}
