package dtos

type RegisterCompanyRequest struct {
	Name string `json:"companyName" binding:"required"`
}

type UpdateCompanyRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Website     string `form:"website"`
	Location    string `form:"location"`
}
