package dto

// CoordinatorCreateRequest is the admin payload to issue a coordinator
// account. When the password is omitted one is generated and emailed.
type CoordinatorCreateRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Department string `json:"department" validate:"required,max=128"`
	Password   string `json:"password" validate:"omitempty,min=8,max=72"`
}

// CoordinatorStatusRequest toggles the active flag of a coordinator.
type CoordinatorStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
