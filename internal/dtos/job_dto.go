package dtos

type PostJobRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Requirements    []string `json:"requirements" binding:"required"`
	Salary          int64    `json:"salary" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	JobType         string   `json:"jobType" binding:"required"`
	ExperienceLevel string   `json:"experienceLevel" binding:"required"`
	Positions       int      `json:"position" binding:"required"`
	CompanyID       uint     `json:"companyId" binding:"required"`
}

// FilterJobsRequest mirrors the search form: every field is optional and the
// filled ones are ANDed together.
type FilterJobsRequest struct {
	Query           string `json:"query"`
	Location        string `json:"location"`
	JobType         string `json:"jobType"`
	ExperienceLevel string `json:"experienceLevel"`
	// SalaryRange is "min-max", or "min-" for an open-ended minimum.
	SalaryRange string `json:"salaryRange"`
	// SortBy is one of recent, salary-high, salary-low.
	SortBy string `json:"sortBy"`
}

// DashboardStats summarises a recruiter's postings for the admin dashboard.
type DashboardStats struct {
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	PendingCount      int64 `json:"pending"`
	AcceptedCount     int64 `json:"accepted"`
	RejectedCount     int64 `json:"rejected"`
}
