package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Garimajunejaa/jobportall/internal/common"
	"github.com/Garimajunejaa/jobportall/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply creates a pending application. The pre-check gives repeat callers a
// clear message; the unique index on (applicant_id, job_id) catches the
// concurrent case the pre-check cannot.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID uint) (*models.Application, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "User not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	var existing models.Application
	err := s.DB.WithContext(ctx).Where("applicant_id = ? AND job_id = ?", userID, jobID).First(&existing).Error
	if err == nil {
		return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	application := &models.Application{
		ApplicantID: userID,
		JobID:       jobID,
		Status:      models.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return application, nil
}

// UpdateStatus moves a pending application to accepted or rejected. Input is
// lowercased first, so "Accepted" is stored as "accepted". Both target
// states are terminal.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID uint, status string) (*models.Application, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized != models.StatusAccepted && normalized != models.StatusRejected {
		return nil, common.NewError(common.CodeValidation, "Invalid status value", nil)
	}

	var application models.Application
	if err := s.DB.WithContext(ctx).First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	if application.Status != models.StatusPending {
		return nil, common.NewError(common.CodeConflict, "Application has already been "+application.Status, nil)
	}

	application.Status = normalized
	if err := s.DB.WithContext(ctx).Save(&application).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return &application, nil
}

// Applicants lists a job's applications with each applicant expanded. The
// applicant's stored resume URL is returned as-is.
func (s *ApplicationService) Applicants(ctx context.Context, recruiterID, jobID uint) ([]models.Application, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	if job.CreatedByID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "Job belongs to another recruiter", nil)
	}

	var applications []models.Application
	err := s.DB.WithContext(ctx).Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return applications, nil
}

// AppliedJobs lists the caller's applications with job and company expanded,
// newest first.
func (s *ApplicationService) AppliedJobs(ctx context.Context, userID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.WithContext(ctx).Preload("Job").Preload("Job.Company").
		Where("applicant_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return applications, nil
}
