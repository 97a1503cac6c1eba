package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	// RoleStudent marks job seekers.
	RoleStudent = "student"
	// RoleRecruiter marks users who own companies and post jobs.
	RoleRecruiter = "recruiter"
)

const (
	// StatusPending is the initial state of every application.
	StatusPending = "pending"
	// StatusAccepted is terminal.
	StatusAccepted = "accepted"
	// StatusRejected is terminal.
	StatusRejected = "rejected"
)

// Profile is embedded in User; recruiter accounts use CompanyID, student
// accounts use the resume fields.
type Profile struct {
	Bio                string         `json:"bio"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`
	ResumeURL          string         `json:"resume"`
	ResumeOriginalName string         `json:"resumeOriginalName"`
	ProfilePhoto       string         `json:"profilePhoto"`
	CompanyID          *uint          `json:"company,omitempty"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Fullname string `gorm:"not null" json:"fullname"`
	// Email is stored lowercase so the unique index is case-insensitive.
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string  `json:"phoneNumber"`
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"not null" json:"role"`
	Profile  Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// The index is built over lower(name) so "Acme" and "acme" collide even
	// when two registrations race past the service-level check.
	Name        string `gorm:"not null;uniqueIndex:idx_recruiter_company,expression:lower(name)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`
	// RecruiterID is the owning recruiter's user id.
	RecruiterID uint `gorm:"not null;uniqueIndex:idx_recruiter_company" json:"userId"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Requirements    pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Salary          int64          `gorm:"index" json:"salary"`
	Location        string         `json:"location"`
	JobType         string         `json:"jobType"`
	ExperienceLevel string         `json:"experienceLevel"`
	Positions       int            `json:"position"`

	CompanyID uint    `gorm:"not null;index" json:"companyId"`
	Company   Company `json:"company"`
	// CreatedByID is the recruiter who posted the job.
	CreatedByID uint `gorm:"not null;index" json:"created_by"`
}

// Application links one applicant to one job. The composite unique index
// closes the duplicate-application race at the storage level, so two
// concurrent applies for the same pair cannot both commit.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AppliedAt time.Time `json:"appliedAt"`

	ApplicantID uint `gorm:"not null;uniqueIndex:idx_applicant_job" json:"applicantId"`
	Applicant   User `json:"applicant"`
	JobID       uint `gorm:"not null;uniqueIndex:idx_applicant_job" json:"jobId"`
	Job         Job  `json:"job"`

	Status string `gorm:"not null;default:'pending'" json:"status"`
}
