package repository

import (
	"context"

	"gorm.io/gorm"

	"maison_shop_v1_202608/internal/model"
)

// ==================== SysUser 接口定义 ====================

// UserRepository 后台账号仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *model.SysUser) error
	GetByID(ctx context.Context, id int64) (*model.SysUser, error)
	GetByUsername(ctx context.Context, username string) (*model.SysUser, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

// ==================== SysUser 实现 ====================

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository 创建后台账号仓储
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.SysUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.SysUser{}).
		Where("id = ?", id).
		Updates(fields).Error
}
