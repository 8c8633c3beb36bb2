package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/service"
)

// ShippingConfigController 运费配置后台接口
type ShippingConfigController struct {
	configSvc *service.ShippingConfigService
	rateSvc   *service.RateService
}

func NewShippingConfigController(configSvc *service.ShippingConfigService, rateSvc *service.RateService) *ShippingConfigController {
	return &ShippingConfigController{
		configSvc: configSvc,
		rateSvc:   rateSvc,
	}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的ID"})
		return 0, false
	}
	return id, true
}

// ==================== Zone ====================

// GetZoneList 获取配送区域列表
// @Summary 获取配送区域列表
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Success 200 {object} dto.ZoneListResp
// @Router /api/admin/shipping/zones [get]
func (c *ShippingConfigController) GetZoneList(ctx *gin.Context) {
	resp, err := c.configSvc.GetZoneList(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetZoneDetail 获取配送区域详情
// @Summary 获取配送区域详情
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Param id path int true "区域ID"
// @Success 200 {object} dto.ZoneResp
// @Router /api/admin/shipping/zones/{id} [get]
func (c *ShippingConfigController) GetZoneDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	resp, err := c.configSvc.GetZoneDetail(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateZone 创建配送区域
// @Summary 创建配送区域
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Produce json
// @Param request body dto.ZoneCreateReq true "区域参数"
// @Success 200 {object} dto.ZoneResp
// @Router /api/admin/shipping/zones [post]
func (c *ShippingConfigController) CreateZone(ctx *gin.Context) {
	var req dto.ZoneCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	resp, err := c.configSvc.CreateZone(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateZone 更新配送区域
// @Summary 更新配送区域
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Param id path int true "区域ID"
// @Param request body dto.ZoneUpdateReq true "更新参数"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/zones/{id} [put]
func (c *ShippingConfigController) UpdateZone(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.ZoneUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	if err := c.configSvc.UpdateZone(ctx.Request.Context(), id, req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteZone 删除配送区域
// @Summary 删除配送区域
// @Tags ShippingConfig (运费配置)
// @Param id path int true "区域ID"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/zones/{id} [delete]
func (c *ShippingConfigController) DeleteZone(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.configSvc.DeleteZone(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== SizeClass ====================

// GetSizeClassList 获取尺寸等级列表
// @Summary 获取尺寸等级列表
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Success 200 {object} dto.SizeClassListResp
// @Router /api/admin/shipping/size-classes [get]
func (c *ShippingConfigController) GetSizeClassList(ctx *gin.Context) {
	resp, err := c.configSvc.GetSizeClassList(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateSizeClass 创建尺寸等级
// @Summary 创建尺寸等级
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Produce json
// @Param request body dto.SizeClassCreateReq true "尺寸等级参数"
// @Success 200 {object} dto.SizeClassResp
// @Router /api/admin/shipping/size-classes [post]
func (c *ShippingConfigController) CreateSizeClass(ctx *gin.Context) {
	var req dto.SizeClassCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	resp, err := c.configSvc.CreateSizeClass(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateSizeClass 更新尺寸等级
// @Summary 更新尺寸等级
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Param id path int true "尺寸等级ID"
// @Param request body dto.SizeClassUpdateReq true "更新参数"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/size-classes/{id} [put]
func (c *ShippingConfigController) UpdateSizeClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.SizeClassUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	if err := c.configSvc.UpdateSizeClass(ctx.Request.Context(), id, req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteSizeClass 删除尺寸等级
// @Summary 删除尺寸等级
// @Tags ShippingConfig (运费配置)
// @Param id path int true "尺寸等级ID"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/size-classes/{id} [delete]
func (c *ShippingConfigController) DeleteSizeClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.configSvc.DeleteSizeClass(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== ShippingMethod ====================

// GetMethodList 获取配送方式列表
// @Summary 获取配送方式列表
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Success 200 {object} dto.MethodListResp
// @Router /api/admin/shipping/methods [get]
func (c *ShippingConfigController) GetMethodList(ctx *gin.Context) {
	resp, err := c.configSvc.GetMethodList(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateMethod 创建配送方式
// @Summary 创建配送方式
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Produce json
// @Param request body dto.MethodCreateReq true "配送方式参数"
// @Success 200 {object} dto.MethodResp
// @Router /api/admin/shipping/methods [post]
func (c *ShippingConfigController) CreateMethod(ctx *gin.Context) {
	var req dto.MethodCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	resp, err := c.configSvc.CreateMethod(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateMethod 更新配送方式
// @Summary 更新配送方式
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Param id path int true "配送方式ID"
// @Param request body dto.MethodUpdateReq true "更新参数"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/methods/{id} [put]
func (c *ShippingConfigController) UpdateMethod(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.MethodUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	if err := c.configSvc.UpdateMethod(ctx.Request.Context(), id, req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteMethod 删除配送方式
// @Summary 删除配送方式
// @Tags ShippingConfig (运费配置)
// @Param id path int true "配送方式ID"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/methods/{id} [delete]
func (c *ShippingConfigController) DeleteMethod(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.configSvc.DeleteMethod(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== RateRule ====================

// GetRateRuleList 获取费率规则列表
// @Summary 获取费率规则列表
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Success 200 {object} dto.RateRuleListResp
// @Router /api/admin/shipping/rate-rules [get]
func (c *ShippingConfigController) GetRateRuleList(ctx *gin.Context) {
	resp, err := c.configSvc.GetRateRuleList(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateRateRule 创建费率规则
// @Summary 创建费率规则
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Produce json
// @Param request body dto.RateRuleCreateReq true "费率规则参数"
// @Success 200 {object} dto.RateRuleResp
// @Router /api/admin/shipping/rate-rules [post]
func (c *ShippingConfigController) CreateRateRule(ctx *gin.Context) {
	var req dto.RateRuleCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	resp, err := c.configSvc.CreateRateRule(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateRateRule 更新费率规则
// @Summary 更新费率规则
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Param id path int true "费率规则ID"
// @Param request body dto.RateRuleUpdateReq true "更新参数"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/rate-rules/{id} [put]
func (c *ShippingConfigController) UpdateRateRule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.RateRuleUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	if err := c.configSvc.UpdateRateRule(ctx.Request.Context(), id, req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteRateRule 删除费率规则
// @Summary 删除费率规则
// @Tags ShippingConfig (运费配置)
// @Param id path int true "费率规则ID"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/rate-rules/{id} [delete]
func (c *ShippingConfigController) DeleteRateRule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.configSvc.DeleteRateRule(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== FreeShippingThreshold ====================

// GetThresholdList 获取包邮门槛列表
// @Summary 获取包邮门槛列表
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Success 200 {object} dto.ThresholdListResp
// @Router /api/admin/shipping/thresholds [get]
func (c *ShippingConfigController) GetThresholdList(ctx *gin.Context) {
	resp, err := c.configSvc.GetThresholdList(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateThreshold 创建包邮门槛
// @Summary 创建包邮门槛
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Produce json
// @Param request body dto.ThresholdCreateReq true "包邮门槛参数"
// @Success 200 {object} dto.ThresholdResp
// @Router /api/admin/shipping/thresholds [post]
func (c *ShippingConfigController) CreateThreshold(ctx *gin.Context) {
	var req dto.ThresholdCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	resp, err := c.configSvc.CreateThreshold(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateThreshold 更新包邮门槛
// @Summary 更新包邮门槛
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Param id path int true "包邮门槛ID"
// @Param request body dto.ThresholdUpdateReq true "更新参数"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/thresholds/{id} [put]
func (c *ShippingConfigController) UpdateThreshold(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.ThresholdUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	if err := c.configSvc.UpdateThreshold(ctx.Request.Context(), id, req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteThreshold 删除包邮门槛
// @Summary 删除包邮门槛
// @Tags ShippingConfig (运费配置)
// @Param id path int true "包邮门槛ID"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/thresholds/{id} [delete]
func (c *ShippingConfigController) DeleteThreshold(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.configSvc.DeleteThreshold(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== ShippingOption ====================

// GetOptionList 获取附加服务列表
// @Summary 获取附加服务列表
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Success 200 {object} dto.OptionListResp
// @Router /api/admin/shipping/options [get]
func (c *ShippingConfigController) GetOptionList(ctx *gin.Context) {
	resp, err := c.configSvc.GetOptionList(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateOption 更新附加服务
// @Summary 更新附加服务
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Param id path int true "附加服务ID"
// @Param request body dto.OptionUpdateReq true "更新参数"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/options/{id} [put]
func (c *ShippingConfigController) UpdateOption(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.OptionUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	if err := c.configSvc.UpdateOption(ctx.Request.Context(), id, req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// CreateOptionPrice 创建附加服务定价
// @Summary 创建附加服务定价
// @Description 按全局 / 区域 / 方式 / 区域+方式四档配置附加服务价格，越具体越优先
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Produce json
// @Param request body dto.OptionPriceCreateReq true "定价参数"
// @Success 200 {object} dto.OptionPriceResp
// @Router /api/admin/shipping/option-prices [post]
func (c *ShippingConfigController) CreateOptionPrice(ctx *gin.Context) {
	var req dto.OptionPriceCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	resp, err := c.configSvc.CreateOptionPrice(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteOptionPrice 删除附加服务定价
// @Summary 删除附加服务定价
// @Tags ShippingConfig (运费配置)
// @Param id path int true "定价ID"
// @Success 200 {object} map[string]string
// @Router /api/admin/shipping/option-prices/{id} [delete]
func (c *ShippingConfigController) DeleteOptionPrice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.configSvc.DeleteOptionPrice(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== 模拟与覆盖 ====================

// Simulate 费率模拟
// @Summary 费率模拟
// @Description 用最新配置跑一次完整报价并返回命中轨迹（小计、总重、命中规则、包邮门槛），供运营验证定价
// @Tags ShippingConfig (运费配置)
// @Accept json
// @Produce json
// @Param request body dto.SimulateReq true "模拟参数"
// @Success 200 {object} dto.SimulateResp
// @Failure 422 {object} dto.RateErrorResp "NO_ZONE / NO_METHOD / NO_RATE_RULE"
// @Router /api/admin/shipping/simulate [post]
func (c *ShippingConfigController) Simulate(ctx *gin.Context) {
	var req dto.SimulateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := c.rateSvc.Simulate(ctx.Request.Context(), req)
	if err != nil {
		writeRateError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCoverageGaps 获取费率覆盖缺口
// @Summary 获取费率覆盖缺口
// @Description 列出没有任何启用费率规则的（启用区域 × 启用方式）组合
// @Tags ShippingConfig (运费配置)
// @Produce json
// @Success 200 {object} []dto.CoverageGapResp
// @Router /api/admin/shipping/coverage-gaps [get]
func (c *ShippingConfigController) GetCoverageGaps(ctx *gin.Context) {
	gaps, err := c.configSvc.GetCoverageGaps(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gaps)
}
