package dtos

// RegisterRequest arrives as multipart form data so a profile photo can ride
// along with the fields.
type RegisterRequest struct {
	Fullname string `form:"fullname" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phoneNumber"`
	Password string `form:"password" binding:"required,min=6"`
	Role     string `form:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UpdateProfileRequest is a partial update: empty fields are left untouched,
// matching the presence-checked payload the frontend sends.
type UpdateProfileRequest struct {
	Fullname string `form:"fullname"`
	Email    string `form:"email"`
	Phone    string `form:"phoneNumber"`
	Bio      string `form:"bio"`
	// Skills is a comma-separated list.
	Skills string `form:"skills"`
}
