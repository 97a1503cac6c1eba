package dtos

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
