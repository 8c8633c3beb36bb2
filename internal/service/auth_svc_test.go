package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/middleware"
	"maison_shop_v1_202608/internal/model"
	"maison_shop_v1_202608/internal/repository"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.SysUser{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func TestAuthService_EnsureDefaultAdminAndLogin(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	if err := svc.EnsureDefaultAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("EnsureDefaultAdmin() error = %v", err)
	}
	// 幂等
	if err := svc.EnsureDefaultAdmin(ctx, "admin", "other"); err != nil {
		t.Fatalf("EnsureDefaultAdmin() 二次执行 error = %v", err)
	}
	var count int64
	db.Model(&model.SysUser{}).Count(&count)
	if count != 1 {
		t.Fatalf("用户数 = %d, want 1", count)
	}

	resp, err := svc.Login(ctx, dto.LoginReq{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录成功但未签发 Token")
	}
	if resp.Role != "admin" {
		t.Errorf("Role = %s, want admin", resp.Role)
	}

	claims, err := middleware.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Username != "admin" || claims.Subject != "access" {
		t.Errorf("claims = %+v, want admin access token", claims)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	_ = svc.EnsureDefaultAdmin(ctx, "admin", "secret123")

	if _, err := svc.Login(ctx, dto.LoginReq{Username: "admin", Password: "wrong"}); err == nil {
		t.Error("密码错误应登录失败")
	}
	if _, err := svc.Login(ctx, dto.LoginReq{Username: "ghost", Password: "secret123"}); err == nil {
		t.Error("账号不存在应登录失败")
	}
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	_ = svc.EnsureDefaultAdmin(ctx, "admin", "secret123")
	db.Model(&model.SysUser{}).Where("username = ?", "admin").Update("is_active", false)

	if _, err := svc.Login(ctx, dto.LoginReq{Username: "admin", Password: "secret123"}); err == nil {
		t.Error("禁用账号应登录失败")
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	_ = svc.EnsureDefaultAdmin(ctx, "admin", "secret123")
	login, err := svc.Login(ctx, dto.LoginReq{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	resp, err := svc.RefreshToken(ctx, dto.RefreshTokenReq{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("刷新后未签发新 Access Token")
	}

	// Access Token 不能当 Refresh Token 用
	if _, err := svc.RefreshToken(ctx, dto.RefreshTokenReq{RefreshToken: login.AccessToken}); err == nil {
		t.Error("Access Token 换签应失败")
	}
}
