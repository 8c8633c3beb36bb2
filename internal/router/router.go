package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"maison_shop_v1_202608/internal/controller"
	"maison_shop_v1_202608/internal/middleware"
)

// Controllers 路由依赖的控制器集合
type Controllers struct {
	RateCtl   *controller.RateController
	ConfigCtl *controller.ShippingConfigController
	AuthCtl   *controller.AuthController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls Controllers) {
	r.Use(middleware.RequestID())

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// shipping 店面报价，无需登录
		shipping := api.Group("/shipping")
		{
			// POST /api/shipping/quote
			shipping.POST("/quote", ctls.RateCtl.Quote)
			// POST /api/shipping/quotes
			shipping.POST("/quotes", ctls.RateCtl.QuoteAllMethods)
		}

		// auth 鉴权组
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctls.AuthCtl.Login)
			auth.POST("/refresh", ctls.AuthCtl.RefreshToken)
		}

		// admin 运费配置后台，需要管理员角色
		admin := api.Group("/admin/shipping")
		admin.Use(middleware.JWTAuth(), middleware.RequireRole("admin"), middleware.AuditContext())
		{
			zones := admin.Group("/zones")
			{
				zones.GET("", ctls.ConfigCtl.GetZoneList)
				zones.GET("/:id", ctls.ConfigCtl.GetZoneDetail)
				zones.POST("", ctls.ConfigCtl.CreateZone)
				zones.PUT("/:id", ctls.ConfigCtl.UpdateZone)
				zones.DELETE("/:id", ctls.ConfigCtl.DeleteZone)
			}

			sizeClasses := admin.Group("/size-classes")
			{
				sizeClasses.GET("", ctls.ConfigCtl.GetSizeClassList)
				sizeClasses.POST("", ctls.ConfigCtl.CreateSizeClass)
				sizeClasses.PUT("/:id", ctls.ConfigCtl.UpdateSizeClass)
				sizeClasses.DELETE("/:id", ctls.ConfigCtl.DeleteSizeClass)
			}

			methods := admin.Group("/methods")
			{
				methods.GET("", ctls.ConfigCtl.GetMethodList)
				methods.POST("", ctls.ConfigCtl.CreateMethod)
				methods.PUT("/:id", ctls.ConfigCtl.UpdateMethod)
				methods.DELETE("/:id", ctls.ConfigCtl.DeleteMethod)
			}

			rateRules := admin.Group("/rate-rules")
			{
				rateRules.GET("", ctls.ConfigCtl.GetRateRuleList)
				rateRules.POST("", ctls.ConfigCtl.CreateRateRule)
				rateRules.PUT("/:id", ctls.ConfigCtl.UpdateRateRule)
				rateRules.DELETE("/:id", ctls.ConfigCtl.DeleteRateRule)
			}

			thresholds := admin.Group("/thresholds")
			{
				thresholds.GET("", ctls.ConfigCtl.GetThresholdList)
				thresholds.POST("", ctls.ConfigCtl.CreateThreshold)
				thresholds.PUT("/:id", ctls.ConfigCtl.UpdateThreshold)
				thresholds.DELETE("/:id", ctls.ConfigCtl.DeleteThreshold)
			}

			options := admin.Group("/options")
			{
				options.GET("", ctls.ConfigCtl.GetOptionList)
				options.PUT("/:id", ctls.ConfigCtl.UpdateOption)
			}

			optionPrices := admin.Group("/option-prices")
			{
				optionPrices.POST("", ctls.ConfigCtl.CreateOptionPrice)
				optionPrices.DELETE("/:id", ctls.ConfigCtl.DeleteOptionPrice)
			}

			// 运营工具
			admin.POST("/simulate", ctls.ConfigCtl.Simulate)
			admin.GET("/coverage-gaps", ctls.ConfigCtl.GetCoverageGaps)
		}
	}
}
