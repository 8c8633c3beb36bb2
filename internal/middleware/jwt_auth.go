package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey       string        // 签名密钥
	AccessTokenTTL  time.Duration // Access Token 有效期
	RefreshTokenTTL time.Duration // Refresh Token 有效期
	Issuer          string        // 签发者
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey:       "maison-shipping-secret-change-in-production",
		AccessTokenTTL:  2 * time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Issuer:          "maison-shop",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// ==================== Claims 定义 ====================

// UserClaims 用户声明
type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ==================== Token 生成 ====================

func generateToken(userID int64, username, role, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// GenerateTokenPair 生成 Token 对
func GenerateTokenPair(userID int64, username, role string) (accessToken, refreshToken string, err error) {
	accessToken, err = generateToken(userID, username, role, "access", jwtConfig.AccessTokenTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = generateToken(userID, username, role, "refresh", jwtConfig.RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ==================== Token 解析 ====================

// ParseToken 解析 Token
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// JWTAuth JWT 认证中间件
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "未提供认证信息",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "认证格式错误，应为 Bearer {token}",
			})
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token 无效或已过期",
			})
			c.Abort()
			return
		}

		// Refresh Token 不能当 Access Token 用
		if claims.Subject != "access" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token 类型错误",
			})
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RequireRole 角色权限校验中间件
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextKeyRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "未获取到用户角色",
			})
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"code":    403,
			"message": "无权限访问",
		})
		c.Abort()
	}
}

// ==================== 辅助函数 ====================

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyUserID); exists {
		return id.(int64)
	}
	return 0
}

// GetUsername 从 Context 获取用户名
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		return name.(string)
	}
	return ""
}
