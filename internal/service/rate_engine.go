package service

import (
	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/model"
)

// 运费引擎：基于配置快照的纯计算，不做任何 I/O。
// 调用方负责先取快照再调用（fetch-then-call），单次调用内配置一致。

// ==================== 错误定义 ====================

// RateErrorCode 报价错误码，全部为配置/输入问题，不可重试
type RateErrorCode string

const (
	ErrCodeNoZone     RateErrorCode = "NO_ZONE"      // 目的国家没有启用的区域
	ErrCodeNoMethod   RateErrorCode = "NO_METHOD"    // 配送方式不存在或已停用
	ErrCodeNoRateRule RateErrorCode = "NO_RATE_RULE" // 区域+方式下没有覆盖该金额/重量的费率
)

// RateError 报价错误
// 失败即中断，不返回任何部分结果
type RateError struct {
	Code RateErrorCode
}

func (e *RateError) Error() string {
	return string(e.Code)
}

// ==================== 计算输入/结果 ====================

// CalcInput 一次报价计算的输入
type CalcInput struct {
	Items           []dto.CartItemInput
	CountryCode     string
	MethodID        int64
	SelectedOptions dto.SelectedOptions
	// single | split，空值按 single 处理
	ShipmentPreference string
}

// ShipmentTiming 单个包裹的时效
type ShipmentTiming struct {
	LeadTimeDays int
	EtaMinDays   *int
	EtaMaxDays   *int
}

// SplitTiming 分批发货时效
type SplitTiming struct {
	Ready       ShipmentTiming // 现货包裹
	MadeToOrder ShipmentTiming // 定制包裹
}

// CalcResult 报价计算结果，含后台模拟器需要的命中轨迹
type CalcResult struct {
	Zone   *model.Zone
	Method *model.ShippingMethod
	Rule   *model.RateRule

	SubtotalEur  int64
	WeightPoints float64

	ShippingPriceEur int64
	OptionsPriceEur  int64
	IsFreeShipping   bool
	// 触发包邮的门槛 ID，未触发为空
	ThresholdID *int64

	LeadTimeDays int
	EtaMinDays   *int
	EtaMaxDays   *int
	Split        *SplitTiming

	// 未识别/已停用的尺寸等级代码，按 0 重量计入，由调用方上报运营
	UnknownSizeClasses []string
}

// ==================== 编排 ====================

// CalculateRate 运费报价编排
// 顺序执行：区域解析 → 方式解析 → 重量聚合 → 费率匹配 → 包邮判定 → 附加服务计价 → 时效计算
// 任一步失败立即返回 RateError，金额全程为整数分，不走浮点
func CalculateRate(snap *model.RateConfigSnapshot, input CalcInput) (*CalcResult, error) {
	// 1. 区域
	zone := resolveZone(snap, input.CountryCode)
	if zone == nil {
		return nil, &RateError{Code: ErrCodeNoZone}
	}

	// 2. 配送方式
	method := findActiveMethod(snap, input.MethodID)
	if method == nil {
		return nil, &RateError{Code: ErrCodeNoMethod}
	}

	// 3. 金额与重量聚合
	subtotal := cartSubtotal(input.Items)
	weight, unknownCodes := aggregateWeightPoints(snap, input.Items)

	// 4. 费率匹配
	rule := matchRateRule(snap, zone.ID, method.ID, subtotal, weight)
	if rule == nil {
		return nil, &RateError{Code: ErrCodeNoRateRule}
	}

	// 5. 包邮判定
	price := rule.PriceEur
	thresholdID, free := freeShippingApplies(snap, zone.ID, method.ID, subtotal)
	if free {
		price = 0
	}

	// 6. 附加服务
	optionsPrice := resolveOptionsPrice(snap, zone.ID, method, input.SelectedOptions)

	// 7. 时效
	timing := computeTiming(input.Items, method, input.ShipmentPreference)

	return &CalcResult{
		Zone:               zone,
		Method:             method,
		Rule:               rule,
		SubtotalEur:        subtotal,
		WeightPoints:       weight,
		ShippingPriceEur:   price,
		OptionsPriceEur:    optionsPrice,
		IsFreeShipping:     free,
		ThresholdID:        thresholdID,
		LeadTimeDays:       timing.LeadTimeDays,
		EtaMinDays:         timing.EtaMinDays,
		EtaMaxDays:         timing.EtaMaxDays,
		Split:              timing.Split,
		UnknownSizeClasses: unknownCodes,
	}, nil
}

// ==================== 区域解析 ====================

// resolveZone 目的国家 → 启用区域
// 同一国家被配置进多个启用区域属于配置错误，此处显式取 sort_order 最小者，
// 再按 ID 兜底，保证结果与存储顺序无关
func resolveZone(snap *model.RateConfigSnapshot, countryCode string) *model.Zone {
	code := model.NormalizeCountryCode(countryCode)
	if code == "" {
		return nil
	}

	zoneByID := make(map[int64]*model.Zone, len(snap.Zones))
	for i := range snap.Zones {
		if snap.Zones[i].IsActive {
			zoneByID[snap.Zones[i].ID] = &snap.Zones[i]
		}
	}

	var best *model.Zone
	for _, zc := range snap.ZoneCountries {
		if model.NormalizeCountryCode(zc.CountryCode) != code {
			continue
		}
		zone, ok := zoneByID[zc.ZoneID]
		if !ok {
			continue
		}
		if best == nil ||
			zone.SortOrder < best.SortOrder ||
			(zone.SortOrder == best.SortOrder && zone.ID < best.ID) {
			best = zone
		}
	}
	return best
}

// findActiveMethod 按 ID 查启用的配送方式
func findActiveMethod(snap *model.RateConfigSnapshot, methodID int64) *model.ShippingMethod {
	for i := range snap.Methods {
		if snap.Methods[i].ID == methodID && snap.Methods[i].IsActive {
			return &snap.Methods[i]
		}
	}
	return nil
}

// ==================== 重量聚合 ====================

// cartSubtotal 购物车小计（分）
func cartSubtotal(items []dto.CartItemInput) int64 {
	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.PriceEurCents
	}
	return total
}

// aggregateWeightPoints 聚合重量点数 = Σ(数量 × 尺寸等级点数)
// 未识别/已停用的等级按 0 计，不阻塞结算，代码列表返回给调用方上报
func aggregateWeightPoints(snap *model.RateConfigSnapshot, items []dto.CartItemInput) (float64, []string) {
	pointsByCode := make(map[string]float64, len(snap.SizeClasses))
	for _, sc := range snap.SizeClasses {
		if sc.IsActive {
			pointsByCode[sc.Code] = sc.WeightPoints
		}
	}

	var total float64
	var unknown []string
	seen := make(map[string]bool)
	for _, item := range items {
		points, ok := pointsByCode[item.SizeClassCode]
		if !ok {
			if item.SizeClassCode != "" && !seen[item.SizeClassCode] {
				seen[item.SizeClassCode] = true
				unknown = append(unknown, item.SizeClassCode)
			}
			continue
		}
		total += float64(item.Quantity) * points
	}
	return total, unknown
}

// ==================== 费率匹配 ====================

// matchRateRule 在 (区域, 方式) 下按金额/重量区间匹配费率规则
// 区间为左闭右开，max 为空视为无上界；多条命中时 priority 小者优先，再按 ID 兜底
func matchRateRule(snap *model.RateConfigSnapshot, zoneID, methodID int64, subtotal int64, weight float64) *model.RateRule {
	var best *model.RateRule
	for i := range snap.RateRules {
		rule := &snap.RateRules[i]
		if !rule.IsActive || rule.ZoneID != zoneID || rule.MethodID != methodID {
			continue
		}
		if subtotal < rule.MinSubtotalEur {
			continue
		}
		if rule.MaxSubtotalEur != nil && subtotal >= *rule.MaxSubtotalEur {
			continue
		}
		if weight < rule.MinWeightPoints {
			continue
		}
		if rule.MaxWeightPoints != nil && weight >= *rule.MaxWeightPoints {
			continue
		}
		if best == nil ||
			rule.Priority < best.Priority ||
			(rule.Priority == best.Priority && rule.ID < best.ID) {
			best = rule
		}
	}
	return best
}

// ==================== 包邮判定 ====================

// freeShippingApplies 判断订单金额是否触达包邮门槛
// 方式专属门槛先于区域通用门槛（method 为空）检查
func freeShippingApplies(snap *model.RateConfigSnapshot, zoneID, methodID int64, subtotal int64) (*int64, bool) {
	// 方式专属
	for i := range snap.FreeThresholds {
		t := &snap.FreeThresholds[i]
		if !t.IsActive || t.ZoneID != zoneID || t.MethodID == nil || *t.MethodID != methodID {
			continue
		}
		if subtotal >= t.ThresholdEur {
			id := t.ID
			return &id, true
		}
	}
	// 区域通用
	for i := range snap.FreeThresholds {
		t := &snap.FreeThresholds[i]
		if !t.IsActive || t.ZoneID != zoneID || t.MethodID != nil {
			continue
		}
		if subtotal >= t.ThresholdEur {
			id := t.ID
			return &id, true
		}
	}
	return nil, false
}

// ==================== 附加服务计价 ====================

// resolveOptionsPrice 已勾选附加服务的总价
// 仅计入 勾选∧启用∧方式支持 的服务；勾选了方式不支持的服务静默忽略，不报错
func resolveOptionsPrice(snap *model.RateConfigSnapshot, zoneID int64, method *model.ShippingMethod, selected dto.SelectedOptions) int64 {
	wanted := map[string]bool{
		model.OptionCodeInsurance: selected.Insurance && method.SupportsInsurance,
		model.OptionCodeSignature: selected.Signature && method.SupportsSignature,
		model.OptionCodeGiftWrap:  selected.GiftWrap && method.SupportsGiftWrap,
	}

	var total int64
	for i := range snap.Options {
		opt := &snap.Options[i]
		if !opt.IsActive || !wanted[opt.Code] {
			continue
		}
		total += resolveOptionPrice(snap, opt.ID, zoneID, method.ID)
	}
	return total
}

// resolveOptionPrice 单个服务的定价解析
// 优先级：区域+方式 > 仅区域 > 仅方式 > 全局；未配置定价按 0 计
func resolveOptionPrice(snap *model.RateConfigSnapshot, optionID, zoneID, methodID int64) int64 {
	bestScore := -1
	var bestID int64
	var bestPrice int64

	for i := range snap.OptionPrices {
		p := &snap.OptionPrices[i]
		if !p.IsActive || p.OptionID != optionID {
			continue
		}
		if p.ZoneID != nil && *p.ZoneID != zoneID {
			continue
		}
		if p.MethodID != nil && *p.MethodID != methodID {
			continue
		}

		score := 0
		if p.ZoneID != nil {
			score += 2
		}
		if p.MethodID != nil {
			score++
		}
		if score > bestScore || (score == bestScore && p.ID < bestID) {
			bestScore = score
			bestID = p.ID
			bestPrice = p.PriceEur
		}
	}

	if bestScore < 0 {
		return 0
	}
	return bestPrice
}

// ==================== 时效计算 ====================

// cartTiming 整单时效
type cartTiming struct {
	LeadTimeDays int
	EtaMinDays   *int
	EtaMaxDays   *int
	Split        *SplitTiming
}

// computeTiming 发货时效计算
// single：整单等最慢的定制件，时效窗口整体后移 leadDays
// split：现货与定制混装时拆成两个包裹分别给出时效，整单字段取先到的现货包裹
// 纯现货或纯定制的购物车在 split 偏好下退化为 single 语义
func computeTiming(items []dto.CartItemInput, method *model.ShippingMethod, preference string) *cartTiming {
	leadDays := 0
	hasMTO := false
	hasReady := false
	for _, item := range items {
		if !item.MadeToOrder {
			hasReady = true
			continue
		}
		hasMTO = true
		if item.LeadTimeDays != nil && *item.LeadTimeDays > leadDays {
			leadDays = *item.LeadTimeDays
		}
	}

	result := &cartTiming{}

	if preference == dto.ShipmentPreferenceSplit && hasMTO && hasReady {
		result.LeadTimeDays = 0
		result.EtaMinDays = addDays(method.EtaMinDays, 0)
		result.EtaMaxDays = addDays(method.EtaMaxDays, 0)
		result.Split = &SplitTiming{
			Ready: ShipmentTiming{
				LeadTimeDays: 0,
				EtaMinDays:   addDays(method.EtaMinDays, 0),
				EtaMaxDays:   addDays(method.EtaMaxDays, 0),
			},
			MadeToOrder: ShipmentTiming{
				LeadTimeDays: leadDays,
				EtaMinDays:   addDays(method.EtaMinDays, leadDays),
				EtaMaxDays:   addDays(method.EtaMaxDays, leadDays),
			},
		}
		return result
	}

	// single 语义：整单等最慢定制件
	if hasMTO {
		result.LeadTimeDays = leadDays
	}
	result.EtaMinDays = addDays(method.EtaMinDays, result.LeadTimeDays)
	result.EtaMaxDays = addDays(method.EtaMaxDays, result.LeadTimeDays)
	return result
}

// addDays 在可空的天数上叠加偏移，空窗口保持为空
func addDays(base *int, offset int) *int {
	if base == nil {
		return nil
	}
	v := *base + offset
	return &v
}
