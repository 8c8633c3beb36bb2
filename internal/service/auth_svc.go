package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/middleware"
	"maison_shop_v1_202608/internal/model"
	"maison_shop_v1_202608/internal/repository"
)

// AuthService 后台登录认证服务
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login 账号密码登录，签发 Token 对
func (s *AuthService) Login(ctx context.Context, req dto.LoginReq) (*dto.LoginResp, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户名或密码错误")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errors.New("账号已禁用")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("用户名或密码错误")
	}

	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResp{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken 用 Refresh Token 换新 Token 对
func (s *AuthService) RefreshToken(ctx context.Context, req dto.RefreshTokenReq) (*dto.LoginResp, error) {
	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errors.New("Refresh Token 无效或已过期")
	}
	if claims.Subject != "refresh" {
		return nil, errors.New("Token 类型错误")
	}

	// 换发前复查账号状态，禁用账号不再续签
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.New("账号不存在")
	}
	if !user.IsActive {
		return nil, errors.New("账号已禁用")
	}

	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResp{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// EnsureDefaultAdmin 启动时保证存在初始管理员账号
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.Create(ctx, &model.SysUser{
		Username: username,
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
	})
}
