package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/model"
	"maison_shop_v1_202608/internal/repository"
)

// ShippingConfigService 运费配置后台服务
// 引擎只读快照，所有配置写入都走这里；写入成功后使报价缓存失效
type ShippingConfigService struct {
	zoneRepo      repository.ZoneRepository
	sizeClassRepo repository.SizeClassRepository
	methodRepo    repository.ShippingMethodRepository
	ruleRepo      repository.RateRuleRepository
	thresholdRepo repository.ThresholdRepository
	optionRepo    repository.ShippingOptionRepository
	rateSvc       *RateService
}

// NewShippingConfigService 创建运费配置后台服务
func NewShippingConfigService(
	zoneRepo repository.ZoneRepository,
	sizeClassRepo repository.SizeClassRepository,
	methodRepo repository.ShippingMethodRepository,
	ruleRepo repository.RateRuleRepository,
	thresholdRepo repository.ThresholdRepository,
	optionRepo repository.ShippingOptionRepository,
	rateSvc *RateService,
) *ShippingConfigService {
	return &ShippingConfigService{
		zoneRepo:      zoneRepo,
		sizeClassRepo: sizeClassRepo,
		methodRepo:    methodRepo,
		ruleRepo:      ruleRepo,
		thresholdRepo: thresholdRepo,
		optionRepo:    optionRepo,
		rateSvc:       rateSvc,
	}
}

// invalidate 配置变更后使报价快照失效
func (s *ShippingConfigService) invalidate() {
	if s.rateSvc != nil {
		s.rateSvc.Invalidate()
	}
}

// ==================== Zone ====================

// GetZoneList 获取配送区域列表
func (s *ShippingConfigService) GetZoneList(ctx context.Context) (*dto.ZoneListResp, error) {
	list, err := s.zoneRepo.ListWithCountries(ctx)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.ZoneResp, 0, len(list))
	for i := range list {
		respList = append(respList, convertZoneToResp(&list[i]))
	}
	return &dto.ZoneListResp{Total: int64(len(respList)), List: respList}, nil
}

// GetZoneDetail 获取配送区域详情
func (s *ShippingConfigService) GetZoneDetail(ctx context.Context, id int64) (*dto.ZoneResp, error) {
	zone, err := s.zoneRepo.GetByIDWithCountries(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("配送区域不存在")
		}
		return nil, err
	}
	resp := convertZoneToResp(zone)
	return &resp, nil
}

// CreateZone 创建配送区域
func (s *ShippingConfigService) CreateZone(ctx context.Context, req dto.ZoneCreateReq) (*dto.ZoneResp, error) {
	zone := &model.Zone{
		NameI18n:      jsonFromMap(req.NameI18n),
		DescI18n:      jsonFromMap(req.DescI18n),
		CustomsNotice: req.CustomsNotice,
		IsActive:      boolOrDefault(req.IsActive, true),
		SortOrder:     req.SortOrder,
	}
	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}
	if len(req.CountryCodes) > 0 {
		if err := s.zoneRepo.ReplaceCountries(ctx, zone.ID, req.CountryCodes); err != nil {
			return nil, err
		}
	}
	s.invalidate()
	return s.GetZoneDetail(ctx, zone.ID)
}

// UpdateZone 更新配送区域
// CountryCodes 非空时整体替换国家列表
func (s *ShippingConfigService) UpdateZone(ctx context.Context, id int64, req dto.ZoneUpdateReq) error {
	if _, err := s.zoneRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("配送区域不存在")
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.NameI18n != nil {
		fields["name_i18n"] = jsonFromMap(req.NameI18n)
	}
	if req.DescI18n != nil {
		fields["desc_i18n"] = jsonFromMap(req.DescI18n)
	}
	if req.CustomsNotice != nil {
		fields["customs_notice"] = *req.CustomsNotice
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if len(fields) > 0 {
		if err := s.zoneRepo.UpdateFields(ctx, id, fields); err != nil {
			return err
		}
	}
	if req.CountryCodes != nil {
		if err := s.zoneRepo.ReplaceCountries(ctx, id, req.CountryCodes); err != nil {
			return err
		}
	}
	s.invalidate()
	return nil
}

// DeleteZone 删除配送区域（连带国家映射）
func (s *ShippingConfigService) DeleteZone(ctx context.Context, id int64) error {
	if err := s.zoneRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// ==================== SizeClass ====================

// GetSizeClassList 获取尺寸等级列表
func (s *ShippingConfigService) GetSizeClassList(ctx context.Context) (*dto.SizeClassListResp, error) {
	list, err := s.sizeClassRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.SizeClassResp, 0, len(list))
	for i := range list {
		respList = append(respList, convertSizeClassToResp(&list[i]))
	}
	return &dto.SizeClassListResp{Total: int64(len(respList)), List: respList}, nil
}

// CreateSizeClass 创建尺寸等级
func (s *ShippingConfigService) CreateSizeClass(ctx context.Context, req dto.SizeClassCreateReq) (*dto.SizeClassResp, error) {
	if req.WeightPoints < 0 {
		return nil, errors.New("重量点数不能为负")
	}
	class := &model.SizeClass{
		Code:         req.Code,
		LabelI18n:    jsonFromMap(req.LabelI18n),
		WeightPoints: req.WeightPoints,
		IsActive:     boolOrDefault(req.IsActive, true),
		SortOrder:    req.SortOrder,
	}
	if err := s.sizeClassRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	s.invalidate()
	resp := convertSizeClassToResp(class)
	return &resp, nil
}

// UpdateSizeClass 更新尺寸等级
func (s *ShippingConfigService) UpdateSizeClass(ctx context.Context, id int64, req dto.SizeClassUpdateReq) error {
	if _, err := s.sizeClassRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("尺寸等级不存在")
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.LabelI18n != nil {
		fields["label_i18n"] = jsonFromMap(req.LabelI18n)
	}
	if req.WeightPoints != nil {
		if *req.WeightPoints < 0 {
			return errors.New("重量点数不能为负")
		}
		fields["weight_points"] = *req.WeightPoints
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.sizeClassRepo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteSizeClass 删除尺寸等级
func (s *ShippingConfigService) DeleteSizeClass(ctx context.Context, id int64) error {
	if err := s.sizeClassRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// ==================== ShippingMethod ====================

// GetMethodList 获取配送方式列表
func (s *ShippingConfigService) GetMethodList(ctx context.Context) (*dto.MethodListResp, error) {
	list, err := s.methodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.MethodResp, 0, len(list))
	for i := range list {
		respList = append(respList, convertMethodToResp(&list[i]))
	}
	return &dto.MethodListResp{Total: int64(len(respList)), List: respList}, nil
}

// CreateMethod 创建配送方式
func (s *ShippingConfigService) CreateMethod(ctx context.Context, req dto.MethodCreateReq) (*dto.MethodResp, error) {
	method := &model.ShippingMethod{
		Code:              req.Code,
		NameI18n:          jsonFromMap(req.NameI18n),
		DescI18n:          jsonFromMap(req.DescI18n),
		IsActive:          boolOrDefault(req.IsActive, true),
		SupportsInsurance: req.SupportsInsurance,
		SupportsSignature: req.SupportsSignature,
		SupportsGiftWrap:  req.SupportsGiftWrap,
		EtaMinDays:        req.EtaMinDays,
		EtaMaxDays:        req.EtaMaxDays,
		SortOrder:         req.SortOrder,
	}
	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	s.invalidate()
	resp := convertMethodToResp(method)
	return &resp, nil
}

// UpdateMethod 更新配送方式
func (s *ShippingConfigService) UpdateMethod(ctx context.Context, id int64, req dto.MethodUpdateReq) error {
	if _, err := s.methodRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("配送方式不存在")
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.NameI18n != nil {
		fields["name_i18n"] = jsonFromMap(req.NameI18n)
	}
	if req.DescI18n != nil {
		fields["desc_i18n"] = jsonFromMap(req.DescI18n)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.SupportsInsurance != nil {
		fields["supports_insurance"] = *req.SupportsInsurance
	}
	if req.SupportsSignature != nil {
		fields["supports_signature"] = *req.SupportsSignature
	}
	if req.SupportsGiftWrap != nil {
		fields["supports_gift_wrap"] = *req.SupportsGiftWrap
	}
	if req.EtaMinDays != nil {
		fields["eta_min_days"] = *req.EtaMinDays
	}
	if req.EtaMaxDays != nil {
		fields["eta_max_days"] = *req.EtaMaxDays
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.methodRepo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteMethod 删除配送方式
func (s *ShippingConfigService) DeleteMethod(ctx context.Context, id int64) error {
	if err := s.methodRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// ==================== RateRule ====================

// GetRateRuleList 获取费率规则列表
func (s *ShippingConfigService) GetRateRuleList(ctx context.Context) (*dto.RateRuleListResp, error) {
	list, err := s.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.RateRuleResp, 0, len(list))
	for i := range list {
		respList = append(respList, convertRateRuleToResp(&list[i]))
	}
	return &dto.RateRuleListResp{Total: int64(len(respList)), List: respList}, nil
}

// CreateRateRule 创建费率规则
func (s *ShippingConfigService) CreateRateRule(ctx context.Context, req dto.RateRuleCreateReq) (*dto.RateRuleResp, error) {
	if err := s.checkZoneMethod(ctx, req.ZoneID, req.MethodID); err != nil {
		return nil, err
	}
	if req.MaxSubtotalEur != nil && *req.MaxSubtotalEur <= req.MinSubtotalEur {
		return nil, errors.New("金额上界必须大于下界")
	}
	if req.MaxWeightPoints != nil && *req.MaxWeightPoints <= req.MinWeightPoints {
		return nil, errors.New("重量上界必须大于下界")
	}

	rule := &model.RateRule{
		ZoneID:          req.ZoneID,
		MethodID:        req.MethodID,
		MinSubtotalEur:  req.MinSubtotalEur,
		MaxSubtotalEur:  req.MaxSubtotalEur,
		MinWeightPoints: req.MinWeightPoints,
		MaxWeightPoints: req.MaxWeightPoints,
		PriceEur:        req.PriceEur,
		IsActive:        boolOrDefault(req.IsActive, true),
		Priority:        req.Priority,
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	s.invalidate()
	resp := convertRateRuleToResp(rule)
	return &resp, nil
}

// UpdateRateRule 更新费率规则
func (s *ShippingConfigService) UpdateRateRule(ctx context.Context, id int64, req dto.RateRuleUpdateReq) error {
	if _, err := s.ruleRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("费率规则不存在")
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.MinSubtotalEur != nil {
		fields["min_subtotal_eur"] = *req.MinSubtotalEur
	}
	if req.MaxSubtotalEur != nil {
		fields["max_subtotal_eur"] = *req.MaxSubtotalEur
	}
	if req.MinWeightPoints != nil {
		fields["min_weight_points"] = *req.MinWeightPoints
	}
	if req.MaxWeightPoints != nil {
		fields["max_weight_points"] = *req.MaxWeightPoints
	}
	if req.PriceEur != nil {
		fields["price_eur"] = *req.PriceEur
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.ruleRepo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteRateRule 删除费率规则
func (s *ShippingConfigService) DeleteRateRule(ctx context.Context, id int64) error {
	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// ==================== FreeShippingThreshold ====================

// GetThresholdList 获取包邮门槛列表
func (s *ShippingConfigService) GetThresholdList(ctx context.Context) (*dto.ThresholdListResp, error) {
	list, err := s.thresholdRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.ThresholdResp, 0, len(list))
	for i := range list {
		respList = append(respList, convertThresholdToResp(&list[i]))
	}
	return &dto.ThresholdListResp{Total: int64(len(respList)), List: respList}, nil
}

// CreateThreshold 创建包邮门槛
func (s *ShippingConfigService) CreateThreshold(ctx context.Context, req dto.ThresholdCreateReq) (*dto.ThresholdResp, error) {
	if _, err := s.zoneRepo.GetByID(ctx, req.ZoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("配送区域不存在")
		}
		return nil, err
	}
	if req.MethodID != nil {
		if _, err := s.methodRepo.GetByID(ctx, *req.MethodID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("配送方式不存在")
			}
			return nil, err
		}
	}

	threshold := &model.FreeShippingThreshold{
		ZoneID:       req.ZoneID,
		MethodID:     req.MethodID,
		ThresholdEur: req.ThresholdEur,
		IsActive:     boolOrDefault(req.IsActive, true),
	}
	if err := s.thresholdRepo.Create(ctx, threshold); err != nil {
		return nil, err
	}
	s.invalidate()
	resp := convertThresholdToResp(threshold)
	return &resp, nil
}

// UpdateThreshold 更新包邮门槛
func (s *ShippingConfigService) UpdateThreshold(ctx context.Context, id int64, req dto.ThresholdUpdateReq) error {
	if _, err := s.thresholdRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("包邮门槛不存在")
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.ThresholdEur != nil {
		fields["threshold_eur"] = *req.ThresholdEur
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.thresholdRepo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteThreshold 删除包邮门槛
func (s *ShippingConfigService) DeleteThreshold(ctx context.Context, id int64) error {
	if err := s.thresholdRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// ==================== ShippingOption ====================

// GetOptionList 获取附加服务列表（含定价）
func (s *ShippingConfigService) GetOptionList(ctx context.Context) (*dto.OptionListResp, error) {
	list, err := s.optionRepo.ListWithPrices(ctx)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.OptionResp, 0, len(list))
	for i := range list {
		respList = append(respList, convertOptionToResp(&list[i]))
	}
	return &dto.OptionListResp{Total: int64(len(respList)), List: respList}, nil
}

// UpdateOption 更新附加服务（名称/启用状态，服务代码固定）
func (s *ShippingConfigService) UpdateOption(ctx context.Context, id int64, req dto.OptionUpdateReq) error {
	if _, err := s.optionRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("附加服务不存在")
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.NameI18n != nil {
		fields["name_i18n"] = jsonFromMap(req.NameI18n)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.optionRepo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// CreateOptionPrice 创建附加服务定价
func (s *ShippingConfigService) CreateOptionPrice(ctx context.Context, req dto.OptionPriceCreateReq) (*dto.OptionPriceResp, error) {
	if _, err := s.optionRepo.GetByID(ctx, req.OptionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("附加服务不存在")
		}
		return nil, err
	}

	price := &model.OptionPrice{
		OptionID: req.OptionID,
		ZoneID:   req.ZoneID,
		MethodID: req.MethodID,
		PriceEur: req.PriceEur,
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := s.optionRepo.CreatePrice(ctx, price); err != nil {
		return nil, err
	}
	s.invalidate()
	resp := convertOptionPriceToResp(price)
	return &resp, nil
}

// DeleteOptionPrice 删除附加服务定价
func (s *ShippingConfigService) DeleteOptionPrice(ctx context.Context, id int64) error {
	if err := s.optionRepo.DeletePrice(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// ==================== 覆盖缺口 ====================

// GetCoverageGaps 列出没有任何启用费率规则的 (启用区域 × 启用方式) 组合
// 这些组合下的订单必然报 NO_RATE_RULE，属于待修复的定价缺口
func (s *ShippingConfigService) GetCoverageGaps(ctx context.Context) ([]dto.CoverageGapResp, error) {
	zones, err := s.zoneRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	methods, err := s.methodRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var gaps []dto.CoverageGapResp
	for _, zone := range zones {
		if !zone.IsActive {
			continue
		}
		for _, method := range methods {
			count, err := s.ruleRepo.CountActiveByZoneMethod(ctx, zone.ID, method.ID)
			if err != nil {
				return nil, err
			}
			if count == 0 {
				gaps = append(gaps, dto.CoverageGapResp{
					ZoneID:     zone.ID,
					MethodID:   method.ID,
					MethodCode: method.Code,
				})
			}
		}
	}
	return gaps, nil
}

// ==================== 辅助方法 ====================

func (s *ShippingConfigService) checkZoneMethod(ctx context.Context, zoneID, methodID int64) error {
	if _, err := s.zoneRepo.GetByID(ctx, zoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("配送区域不存在")
		}
		return err
	}
	if _, err := s.methodRepo.GetByID(ctx, methodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("配送方式不存在")
		}
		return err
	}
	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func jsonFromMap(m map[string]string) datatypes.JSON {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return raw
}

func mapFromJSON(raw datatypes.JSON) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// ==================== DTO 转换方法 ====================

func convertZoneToResp(zone *model.Zone) dto.ZoneResp {
	codes := make([]string, 0, len(zone.Countries))
	for _, c := range zone.Countries {
		codes = append(codes, c.CountryCode)
	}
	return dto.ZoneResp{
		ID:            zone.ID,
		NameI18n:      mapFromJSON(zone.NameI18n),
		DescI18n:      mapFromJSON(zone.DescI18n),
		CustomsNotice: zone.CustomsNotice,
		IsActive:      zone.IsActive,
		SortOrder:     zone.SortOrder,
		CountryCodes:  codes,
		CreatedAt:     zone.CreatedAt,
		UpdatedAt:     zone.UpdatedAt,
	}
}

func convertSizeClassToResp(class *model.SizeClass) dto.SizeClassResp {
	return dto.SizeClassResp{
		ID:           class.ID,
		Code:         class.Code,
		LabelI18n:    mapFromJSON(class.LabelI18n),
		WeightPoints: class.WeightPoints,
		IsActive:     class.IsActive,
		SortOrder:    class.SortOrder,
		CreatedAt:    class.CreatedAt,
		UpdatedAt:    class.UpdatedAt,
	}
}

func convertMethodToResp(method *model.ShippingMethod) dto.MethodResp {
	return dto.MethodResp{
		ID:                method.ID,
		Code:              method.Code,
		NameI18n:          mapFromJSON(method.NameI18n),
		DescI18n:          mapFromJSON(method.DescI18n),
		IsActive:          method.IsActive,
		SupportsInsurance: method.SupportsInsurance,
		SupportsSignature: method.SupportsSignature,
		SupportsGiftWrap:  method.SupportsGiftWrap,
		EtaMinDays:        method.EtaMinDays,
		EtaMaxDays:        method.EtaMaxDays,
		SortOrder:         method.SortOrder,
		CreatedAt:         method.CreatedAt,
		UpdatedAt:         method.UpdatedAt,
	}
}

func convertRateRuleToResp(rule *model.RateRule) dto.RateRuleResp {
	return dto.RateRuleResp{
		ID:              rule.ID,
		ZoneID:          rule.ZoneID,
		MethodID:        rule.MethodID,
		MinSubtotalEur:  rule.MinSubtotalEur,
		MaxSubtotalEur:  rule.MaxSubtotalEur,
		MinWeightPoints: rule.MinWeightPoints,
		MaxWeightPoints: rule.MaxWeightPoints,
		PriceEur:        rule.PriceEur,
		IsActive:        rule.IsActive,
		Priority:        rule.Priority,
		CreatedAt:       rule.CreatedAt,
		UpdatedAt:       rule.UpdatedAt,
	}
}

func convertThresholdToResp(threshold *model.FreeShippingThreshold) dto.ThresholdResp {
	return dto.ThresholdResp{
		ID:           threshold.ID,
		ZoneID:       threshold.ZoneID,
		MethodID:     threshold.MethodID,
		ThresholdEur: threshold.ThresholdEur,
		IsActive:     threshold.IsActive,
		CreatedAt:    threshold.CreatedAt,
		UpdatedAt:    threshold.UpdatedAt,
	}
}

func convertOptionToResp(opt *model.ShippingOption) dto.OptionResp {
	prices := make([]dto.OptionPriceResp, 0, len(opt.Prices))
	for i := range opt.Prices {
		prices = append(prices, convertOptionPriceToResp(&opt.Prices[i]))
	}
	return dto.OptionResp{
		ID:       opt.ID,
		Code:     opt.Code,
		NameI18n: mapFromJSON(opt.NameI18n),
		IsActive: opt.IsActive,
		Prices:   prices,
	}
}

func convertOptionPriceToResp(price *model.OptionPrice) dto.OptionPriceResp {
	return dto.OptionPriceResp{
		ID:       price.ID,
		OptionID: price.OptionID,
		ZoneID:   price.ZoneID,
		MethodID: price.MethodID,
		PriceEur: price.PriceEur,
		IsActive: price.IsActive,
	}
}
