package model

// AdminUser can log into the admin area. The password is a bcrypt hash; a
// default account is seeded at migration time from config.
type AdminUser struct {
	BaseModel
	Username string `gorm:"size:100;unique;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
