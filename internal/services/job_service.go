package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Garimajunejaa/jobportall/internal/common"
	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Post creates a job for a company the recruiter owns.
func (s *JobService) Post(ctx context.Context, recruiterID uint, req *dtos.PostJobRequest) (*models.Job, error) {
	var company models.Company
	if err := s.DB.WithContext(ctx).First(&company, req.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Company not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	if company.RecruiterID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "Company belongs to another recruiter", nil)
	}

	job := &models.Job{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		Location:        strings.TrimSpace(req.Location),
		JobType:         strings.TrimSpace(req.JobType),
		ExperienceLevel: strings.TrimSpace(req.ExperienceLevel),
		Positions:       req.Positions,
		CompanyID:       company.ID,
		CreatedByID:     recruiterID,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to post job", err)
	}
	job.Company = company
	return job, nil
}

// All returns every job, newest first, optionally narrowed by a keyword over
// title and description.
func (s *JobService) All(ctx context.Context, keyword string) ([]models.Job, error) {
	query := s.DB.WithContext(ctx).Preload("Company").Order("created_at DESC")
	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return &job, nil
}

// AdminJobs lists the jobs the recruiter posted.
func (s *JobService) AdminJobs(ctx context.Context, recruiterID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).Preload("Company").
		Where("created_by_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return jobs, nil
}

// Filter builds a conjunctive query from the filled-in criteria. Substring
// matches are case-insensitive; experience level is exact; the salary range
// is "min-max" or "min-" for an open upper bound.
func (s *JobService) Filter(ctx context.Context, req *dtos.FilterJobsRequest) ([]models.Job, error) {
	query := s.DB.WithContext(ctx).Preload("Company")

	if req.Query != "" {
		pattern := "%" + strings.ToLower(req.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if req.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(req.Location)+"%")
	}
	if req.JobType != "" {
		query = query.Where("LOWER(job_type) LIKE ?", "%"+strings.ToLower(req.JobType)+"%")
	}
	if req.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", req.ExperienceLevel)
	}
	if req.SalaryRange != "" {
		min, max, err := parseSalaryRange(req.SalaryRange)
		if err != nil {
			return nil, err
		}
		query = query.Where("salary >= ?", min)
		if max > 0 {
			query = query.Where("salary <= ?", max)
		}
	}

	switch req.SortBy {
	case "salary-high":
		query = query.Order("salary DESC")
	case "salary-low":
		query = query.Order("salary ASC")
	case "", "recent":
		query = query.Order("created_at DESC")
	default:
		return nil, common.NewError(common.CodeValidation, "sortBy must be recent, salary-high or salary-low", nil)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return jobs, nil
}

// Recommendations matches the student's profile skills against titles,
// descriptions and requirements, best match first. Skills shorter than three
// characters are skipped: a skill like "Go" or "C" matches everything.
func (s *JobService) Recommendations(ctx context.Context, userID uint) ([]models.Job, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "User not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	skills := make([]string, 0, len(user.Profile.Skills))
	for _, skill := range user.Profile.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if len(skill) < 3 {
			continue
		}
		skills = append(skills, skill)
	}
	if len(skills) == 0 {
		return []models.Job{}, nil
	}

	var jobs []models.Job
	if err := s.DB.WithContext(ctx).Preload("Company").Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	type scored struct {
		job   models.Job
		score int
	}
	matches := make([]scored, 0, len(jobs))
	for _, job := range jobs {
		haystack := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Requirements, " "))
		score := 0
		for _, skill := range skills {
			if strings.Contains(haystack, skill) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{job: job, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].job.CreatedAt.After(matches[j].job.CreatedAt)
	})

	result := make([]models.Job, len(matches))
	for i, m := range matches {
		result[i] = m.job
	}
	return result, nil
}

// Dashboard aggregates posting and applicant counts for the recruiter.
func (s *JobService) Dashboard(ctx context.Context, recruiterID uint) (*dtos.DashboardStats, error) {
	stats := &dtos.DashboardStats{}

	err := s.DB.WithContext(ctx).Model(&models.Job{}).
		Where("created_by_id = ?", recruiterID).
		Count(&stats.TotalJobs).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	base := s.DB.WithContext(ctx).Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.created_by_id = ?", recruiterID)
	if err := base.Count(&stats.TotalApplications).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	for status, target := range map[string]*int64{
		models.StatusPending:  &stats.PendingCount,
		models.StatusAccepted: &stats.AcceptedCount,
		models.StatusRejected: &stats.RejectedCount,
	} {
		err := s.DB.WithContext(ctx).Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.created_by_id = ? AND applications.status = ?", recruiterID, status).
			Count(target).Error
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "Internal server error", err)
		}
	}
	return stats, nil
}

func parseSalaryRange(value string) (int64, int64, error) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	min, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, common.NewError(common.CodeValidation, "salaryRange must be min-max or min-", err)
	}
	if len(parts) == 1 || strings.TrimSpace(parts[1]) == "" {
		return min, 0, nil
	}
	max, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, common.NewError(common.CodeValidation, "salaryRange must be min-max or min-", err)
	}
	return min, max, nil
}
