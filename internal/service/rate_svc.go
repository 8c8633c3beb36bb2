package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"gorm.io/datatypes"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/model"
	"maison_shop_v1_202608/internal/repository"
)

// ==================== RateService ====================

// RateService 运费报价服务
// 持有配置快照缓存：报价热路径不读库，快照由定时任务/后台变更刷新
type RateService struct {
	configRepo repository.RateConfigRepository

	mu       sync.RWMutex
	snapshot *model.RateConfigSnapshot
	loadedAt time.Time
	maxStale time.Duration
}

// NewRateService 创建运费报价服务
func NewRateService(configRepo repository.RateConfigRepository) *RateService {
	return &RateService{
		configRepo: configRepo,
		maxStale:   5 * time.Minute, // 兜底过期时间，正常由刷新任务接管
	}
}

// ==================== 快照管理 ====================

// Snapshot 获取配置快照，缓存失效时重新整体加载
func (s *RateService) Snapshot(ctx context.Context) (*model.RateConfigSnapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	fresh := snap != nil && time.Since(s.loadedAt) < s.maxStale
	s.mu.RUnlock()

	if fresh {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Refresh 强制重新加载快照
func (s *RateService) Refresh(ctx context.Context) (*model.RateConfigSnapshot, error) {
	snap, err := s.configRepo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = snap
	s.loadedAt = time.Now()
	s.mu.Unlock()

	return snap, nil
}

// Invalidate 使缓存失效，后台配置变更后调用
func (s *RateService) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}

// ==================== 报价 ====================

// Quote 单方式报价（结算页主流程）
// 引擎错误（NO_ZONE/NO_METHOD/NO_RATE_RULE）原样返回给调用方处理
func (s *RateService) Quote(ctx context.Context, req dto.RateQuoteReq) (*dto.RateQuoteResp, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result, err := CalculateRate(snap, CalcInput{
		Items:              req.Items,
		CountryCode:        req.CountryCode,
		MethodID:           req.MethodID,
		SelectedOptions:    req.SelectedOptions,
		ShipmentPreference: req.ShipmentPreference,
	})
	if err != nil {
		s.logRateError(req.CountryCode, req.MethodID, err)
		return nil, err
	}

	s.reportUnknownSizeClasses(result.UnknownSizeClasses)
	resp := convertCalcResult(result)
	return &resp, nil
}

// QuoteAllMethods 对所有启用方式逐个报价（结算页方式选择列表）
// 引擎无共享可变状态，逐方式调用即可；无费率覆盖的方式带错误码返回而非整体失败
func (s *RateService) QuoteAllMethods(ctx context.Context, req dto.MethodQuotesReq) (*dto.MethodQuotesResp, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// 先单独解析区域，目的国家无区域时整体失败
	zone := resolveZone(snap, req.CountryCode)
	if zone == nil {
		return nil, &RateError{Code: ErrCodeNoZone}
	}

	resp := &dto.MethodQuotesResp{ZoneID: zone.ID}
	for i := range snap.Methods {
		method := &snap.Methods[i]
		if !method.IsActive {
			continue
		}

		item := dto.MethodQuoteItem{
			MethodID:   method.ID,
			MethodCode: method.Code,
		}

		result, err := CalculateRate(snap, CalcInput{
			Items:              req.Items,
			CountryCode:        req.CountryCode,
			MethodID:           method.ID,
			SelectedOptions:    req.SelectedOptions,
			ShipmentPreference: req.ShipmentPreference,
		})
		if err != nil {
			s.logRateError(req.CountryCode, method.ID, err)
			var rateErr *RateError
			if errors.As(err, &rateErr) {
				item.Error = string(rateErr.Code)
				resp.Methods = append(resp.Methods, item)
				continue
			}
			return nil, err
		}

		s.reportUnknownSizeClasses(result.UnknownSizeClasses)
		quote := convertCalcResult(result)
		item.Quote = &quote
		resp.Methods = append(resp.Methods, item)
	}

	return resp, nil
}

// Simulate 后台费率模拟，总是读取最新配置并返回命中轨迹
func (s *RateService) Simulate(ctx context.Context, req dto.SimulateReq) (*dto.SimulateResp, error) {
	snap, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	result, err := CalculateRate(snap, CalcInput{
		Items:              req.Items,
		CountryCode:        req.CountryCode,
		MethodID:           req.MethodID,
		SelectedOptions:    req.SelectedOptions,
		ShipmentPreference: req.ShipmentPreference,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.SimulateResp{
		RateQuoteResp:      convertCalcResult(result),
		SubtotalEur:        result.SubtotalEur,
		WeightPoints:       result.WeightPoints,
		MatchedRuleID:      result.Rule.ID,
		MatchedRulePrice:   result.Rule.PriceEur,
		ThresholdID:        result.ThresholdID,
		UnknownSizeClasses: result.UnknownSizeClasses,
	}
	return resp, nil
}

// ==================== 运营上报 ====================

// logRateError 费率错误上报
// NO_RATE_RULE 是运营配置缺口，必须留痕供修复定价覆盖
func (s *RateService) logRateError(countryCode string, methodID int64, err error) {
	var rateErr *RateError
	if !errors.As(err, &rateErr) {
		return
	}
	if rateErr.Code == ErrCodeNoRateRule {
		log.Printf("[RateEngine] 费率覆盖缺口: country=%s method=%d", countryCode, methodID)
	}
}

// reportUnknownSizeClasses 未识别尺寸等级上报
// 引擎按 0 重量放行（不阻塞结算），但属于商品配置问题，需要运营修复
func (s *RateService) reportUnknownSizeClasses(codes []string) {
	for _, code := range codes {
		log.Printf("[RateEngine] 未识别的尺寸等级代码: %s (按 0 重量计入)", code)
	}
}

// ==================== 结果转换 ====================

// convertCalcResult 引擎结果 → 报价响应
func convertCalcResult(result *CalcResult) dto.RateQuoteResp {
	resp := dto.RateQuoteResp{
		ZoneID:           result.Zone.ID,
		ZoneName:         i18nValue(result.Zone.NameI18n, "en"),
		MethodID:         result.Method.ID,
		MethodCode:       result.Method.Code,
		CustomsNotice:    result.Zone.CustomsNotice,
		ShippingPriceEur: result.ShippingPriceEur,
		OptionsPriceEur:  result.OptionsPriceEur,
		IsFreeShipping:   result.IsFreeShipping,
		LeadTimeDays:     result.LeadTimeDays,
		EtaMinDays:       result.EtaMinDays,
		EtaMaxDays:       result.EtaMaxDays,
	}

	if result.Split != nil {
		resp.SplitDetails = &dto.SplitDetailsResp{
			ReadyShipment: dto.ShipmentEtaResp{
				LeadTimeDays: result.Split.Ready.LeadTimeDays,
				EtaMinDays:   result.Split.Ready.EtaMinDays,
				EtaMaxDays:   result.Split.Ready.EtaMaxDays,
			},
			MadeToOrderShipment: dto.ShipmentEtaResp{
				LeadTimeDays: result.Split.MadeToOrder.LeadTimeDays,
				EtaMinDays:   result.Split.MadeToOrder.EtaMinDays,
				EtaMaxDays:   result.Split.MadeToOrder.EtaMaxDays,
			},
		}
	}

	return resp
}

// i18nValue 从多语言 JSON 字段取指定语言，缺失时取任意一个
func i18nValue(raw datatypes.JSON, lang string) string {
	if len(raw) == 0 {
		return ""
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	if v, ok := m[lang]; ok {
		return v
	}
	for _, v := range m {
		return v
	}
	return ""
}
