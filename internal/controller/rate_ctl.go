package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/service"
)

// RateController 店面运费报价接口
type RateController struct {
	rateSvc *service.RateService
}

func NewRateController(rateSvc *service.RateService) *RateController {
	return &RateController{
		rateSvc: rateSvc,
	}
}

// Quote 购物车运费报价
// @Summary 购物车运费报价
// @Description 按目的国家和配送方式计算购物车运费，含包邮判定、附加服务加价和交付周期
// @Tags Shipping (运费报价)
// @Accept json
// @Produce json
// @Param request body dto.RateQuoteReq true "报价参数"
// @Success 200 {object} dto.RateQuoteResp "报价结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 422 {object} dto.RateErrorResp "NO_ZONE / NO_METHOD / NO_RATE_RULE"
// @Failure 500 {object} map[string]string "服务器错误"
// @Router /api/shipping/quote [post]
func (c *RateController) Quote(ctx *gin.Context) {
	var req dto.RateQuoteReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := c.rateSvc.Quote(ctx.Request.Context(), req)
	if err != nil {
		writeRateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// QuoteAllMethods 全方式运费报价
// @Summary 全方式运费报价
// @Description 对所有启用配送方式逐个报价，供结算页方式选择列表使用；无费率覆盖的方式带错误码返回
// @Tags Shipping (运费报价)
// @Accept json
// @Produce json
// @Param request body dto.MethodQuotesReq true "报价参数"
// @Success 200 {object} dto.MethodQuotesResp "各方式报价结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 422 {object} dto.RateErrorResp "NO_ZONE"
// @Failure 500 {object} map[string]string "服务器错误"
// @Router /api/shipping/quotes [post]
func (c *RateController) QuoteAllMethods(ctx *gin.Context) {
	var req dto.MethodQuotesReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := c.rateSvc.QuoteAllMethods(ctx.Request.Context(), req)
	if err != nil {
		writeRateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// writeRateError 引擎错误映射为 422，其他错误 500
func writeRateError(ctx *gin.Context, err error) {
	var rateErr *service.RateError
	if errors.As(err, &rateErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.RateErrorResp{Error: string(rateErr.Code)})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
