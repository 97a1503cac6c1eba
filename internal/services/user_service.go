package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Garimajunejaa/jobportall/internal/auth"
	"github.com/Garimajunejaa/jobportall/internal/common"
	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/models"
	"github.com/Garimajunejaa/jobportall/internal/storage"
)

type UserService struct {
	DB       *gorm.DB
	Tokens   *auth.TokenManager
	Uploader storage.Uploader
	Log      *logrus.Logger
}

func NewUserService(db *gorm.DB, tokens *auth.TokenManager, uploader storage.Uploader, log *logrus.Logger) *UserService {
	return &UserService{DB: db, Tokens: tokens, Uploader: uploader, Log: log}
}

// Register creates an account. The email is lowercased before the uniqueness
// check and before storage, so duplicates differing only in case are caught.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest, photo *multipart.FileHeader) (*models.User, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != models.RoleStudent && role != models.RoleRecruiter {
		return nil, common.NewError(common.CodeValidation, "Role must be student or recruiter", nil)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, common.NewError(common.CodeConflict, "User already exists with this email", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	user := &models.User{
		Fullname: strings.TrimSpace(req.Fullname),
		Email:    email,
		Phone:    strings.TrimSpace(req.Phone),
		Password: hash,
		Role:     role,
	}

	// Upload before create so a storage failure never leaves a half-built
	// account behind.
	if photo != nil {
		url, err := s.uploadFile(ctx, photo, "profile-photos")
		if err != nil {
			return nil, err
		}
		user.Profile.ProfilePhoto = url
	}

	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewError(common.CodeConflict, "User already exists with this email", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	s.Log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("account created")
	return user, nil
}

// Login checks credentials and the requested role against the stored one and
// issues a session token. The returned user carries no password hash in its
// JSON form.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, common.NewError(common.CodeUnauthorized, "Invalid credentials", nil)
		}
		return "", nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return "", nil, common.NewError(common.CodeUnauthorized, "Invalid credentials", nil)
	}
	if user.Role != strings.ToLower(strings.TrimSpace(req.Role)) {
		return "", nil, common.NewError(common.CodeUnauthorized, "Account does not exist with this role", nil)
	}

	token, err := s.Tokens.Generate(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	s.Log.WithField("user_id", user.ID).Info("user logged in")
	return token, &user, nil
}

// UpdateProfile applies a partial update. Role is immutable and never part
// of the payload. A resume file, if attached, is uploaded first; the record
// is only written after the upload succeeded.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req *dtos.UpdateProfileRequest, resume *multipart.FileHeader) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "User not found", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Internal server error", err)
	}

	if resume != nil {
		url, err := s.uploadFile(ctx, resume, "resumes")
		if err != nil {
			return nil, err
		}
		user.Profile.ResumeURL = url
		user.Profile.ResumeOriginalName = resume.Filename
	}

	if req.Fullname != "" {
		user.Fullname = strings.TrimSpace(req.Fullname)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			var other models.User
			err := s.DB.WithContext(ctx).Where("email = ?", email).First(&other).Error
			if err == nil {
				return nil, common.NewError(common.CodeConflict, "User already exists with this email", nil)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.NewError(common.CodeInternal, "Internal server error", err)
			}
			user.Email = email
		}
	}
	if req.Phone != "" {
		user.Phone = strings.TrimSpace(req.Phone)
	}
	if req.Bio != "" {
		user.Profile.Bio = req.Bio
	}
	if req.Skills != "" {
		parts := strings.Split(req.Skills, ",")
		skills := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}
		user.Profile.Skills = skills
	}

	if err := s.DB.WithContext(ctx).Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewError(common.CodeConflict, "User already exists with this email", nil)
		}
		return nil, common.NewError(common.CodeInternal, "Failed to update profile", err)
	}
	return &user, nil
}

func (s *UserService) uploadFile(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	if err := storage.ValidateFile(header); err != nil {
		return "", err
	}
	file, err := header.Open()
	if err != nil {
		return "", common.NewError(common.CodeInternal, "Failed to read uploaded file", err)
	}
	defer file.Close()
	return s.Uploader.Upload(ctx, file, folder, header.Filename)
}
