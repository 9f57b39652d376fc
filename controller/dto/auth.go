package dto

type SignupRequestDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type DesignerProfileDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}
