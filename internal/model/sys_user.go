package model

// SysUser 后台管理账号
type SysUser struct {
	BaseModel

	// 基础信息
	Username string `gorm:"size:100;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"` // bcrypt 哈希
	Email    string `gorm:"size:100"`

	// 系统角色: admin (管理员), operator (运营)
	Role string `gorm:"size:20;default:'operator'"`

	IsActive bool
}

func (SysUser) TableName() string {
	return "sys_users"
}
