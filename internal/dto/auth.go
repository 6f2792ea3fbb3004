package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"reception1"`
	Password string `json:"password" example:"s3cret"`
	FullName string `json:"fullName" example:"Sita Tamang"`
	Role     string `json:"role" example:"RECEPTIONIST"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"reception1"`
	Password string `json:"password" example:"s3cret"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
