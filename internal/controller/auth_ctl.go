package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/service"
)

// AuthController 后台认证接口
type AuthController struct {
	authSvc *service.AuthService
}

func NewAuthController(authSvc *service.AuthService) *AuthController {
	return &AuthController{
		authSvc: authSvc,
	}
}

// Login 登录
// @Summary 后台登录
// @Description 账号密码登录，返回 Access/Refresh Token 对
// @Tags Auth (认证)
// @Accept json
// @Produce json
// @Param request body dto.LoginReq true "登录参数"
// @Success 200 {object} dto.LoginResp "登录成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 401 {object} map[string]string "用户名或密码错误"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := c.authSvc.Login(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RefreshToken 刷新 Token
// @Summary 刷新 Token
// @Description 用 Refresh Token 换取新的 Token 对
// @Tags Auth (认证)
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenReq true "刷新参数"
// @Success 200 {object} dto.LoginResp "刷新成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 401 {object} map[string]string "Token 无效"
// @Router /api/auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := c.authSvc.RefreshToken(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
