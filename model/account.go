package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
