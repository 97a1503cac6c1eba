package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"github.com/Garimajunejaa/jobportall/internal/common"
	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/models"
	"github.com/Garimajunejaa/jobportall/internal/storage"
)

type CompanyService struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewCompanyService(db *gorm.DB, uploader storage.Uploader) *CompanyService {
	return &CompanyService{DB: db, Uploader: uploader}
}

// Register creates a company shell for the recruiter; details are filled in
// via Update. Duplicate names per recruiter are rejected.
func (s *CompanyService) Register(ctx context.Context, recruiterID uint, req *dtos.RegisterCompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, common.NewError(common.CodeValidation, "Company name is required", nil)
	}

	var existing models.Company
	err := s.DB.WithContext(ctx).
		Where("recruiter_id = ? AND LOWER(name) = ?", recruiterID, strings.ToLower(name)).
		First(&existing).Error
	if err == nil {
		return nil, common.NewError(common.CodeConflict, "You already registered this company", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	company := &models.Company{Name: name, RecruiterID: recruiterID}
	if err := s.DB.WithContext(ctx).Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewError(common.CodeConflict, "You already registered this company", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return company, nil
}

func (s *CompanyService) ListByRecruiter(ctx context.Context, recruiterID uint) ([]models.Company, error) {
	var companies []models.Company
	if err := s.DB.WithContext(ctx).Where("recruiter_id = ?", recruiterID).Order("created_at DESC").Find(&companies).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.WithContext(ctx).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Company not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	return &company, nil
}

// Update applies a partial update. Only the owning recruiter may change a
// company; the logo, if attached, is uploaded before anything is persisted.
func (s *CompanyService) Update(ctx context.Context, recruiterID, id uint, req *dtos.UpdateCompanyRequest, logo *multipart.FileHeader) (*models.Company, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if company.RecruiterID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "Company belongs to another recruiter", nil)
	}

	if logo != nil {
		if err := storage.ValidateFile(logo); err != nil {
			return nil, err
		}
		file, err := logo.Open()
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "Failed to read uploaded file", err)
		}
		defer file.Close()
		url, err := s.Uploader.Upload(ctx, file, "company-logos", logo.Filename)
		if err != nil {
			return nil, err
		}
		company.Logo = url
	}

	if req.Name != "" {
		company.Name = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Website != "" {
		company.Website = strings.TrimSpace(req.Website)
	}
	if req.Location != "" {
		company.Location = strings.TrimSpace(req.Location)
	}

	if err := s.DB.WithContext(ctx).Save(company).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to update company", err)
	}
	return company, nil
}
