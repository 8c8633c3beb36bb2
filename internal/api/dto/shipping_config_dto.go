package dto

import "time"

// ==================== Zone ====================

// ZoneCreateReq 创建配送区域请求
type ZoneCreateReq struct {
	NameI18n      map[string]string `json:"name_i18n" binding:"required"`
	DescI18n      map[string]string `json:"desc_i18n"`
	CustomsNotice bool              `json:"customs_notice"`
	IsActive      *bool             `json:"is_active"`
	SortOrder     int               `json:"sort_order"`
	CountryCodes  []string          `json:"country_codes"`
}

// ZoneUpdateReq 更新配送区域请求
// CountryCodes 非空时整体替换国家列表
type ZoneUpdateReq struct {
	NameI18n      map[string]string `json:"name_i18n"`
	DescI18n      map[string]string `json:"desc_i18n"`
	CustomsNotice *bool             `json:"customs_notice"`
	IsActive      *bool             `json:"is_active"`
	SortOrder     *int              `json:"sort_order"`
	CountryCodes  []string          `json:"country_codes"`
}

// ZoneResp 配送区域响应
type ZoneResp struct {
	ID            int64             `json:"id"`
	NameI18n      map[string]string `json:"name_i18n"`
	DescI18n      map[string]string `json:"desc_i18n"`
	CustomsNotice bool              `json:"customs_notice"`
	IsActive      bool              `json:"is_active"`
	SortOrder     int               `json:"sort_order"`
	CountryCodes  []string          `json:"country_codes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ZoneListResp 配送区域列表响应
type ZoneListResp struct {
	Total int64      `json:"total"`
	List  []ZoneResp `json:"list"`
}

// ==================== SizeClass ====================

// SizeClassCreateReq 创建尺寸等级请求
type SizeClassCreateReq struct {
	Code         string            `json:"code" binding:"required"`
	LabelI18n    map[string]string `json:"label_i18n"`
	WeightPoints float64           `json:"weight_points" binding:"min=0"`
	IsActive     *bool             `json:"is_active"`
	SortOrder    int               `json:"sort_order"`
}

// SizeClassUpdateReq 更新尺寸等级请求
type SizeClassUpdateReq struct {
	LabelI18n    map[string]string `json:"label_i18n"`
	WeightPoints *float64          `json:"weight_points"`
	IsActive     *bool             `json:"is_active"`
	SortOrder    *int              `json:"sort_order"`
}

// SizeClassResp 尺寸等级响应
type SizeClassResp struct {
	ID           int64             `json:"id"`
	Code         string            `json:"code"`
	LabelI18n    map[string]string `json:"label_i18n"`
	WeightPoints float64           `json:"weight_points"`
	IsActive     bool              `json:"is_active"`
	SortOrder    int               `json:"sort_order"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// SizeClassListResp 尺寸等级列表响应
type SizeClassListResp struct {
	Total int64           `json:"total"`
	List  []SizeClassResp `json:"list"`
}

// ==================== ShippingMethod ====================

// MethodCreateReq 创建配送方式请求
type MethodCreateReq struct {
	Code              string            `json:"code" binding:"required"`
	NameI18n          map[string]string `json:"name_i18n" binding:"required"`
	DescI18n          map[string]string `json:"desc_i18n"`
	IsActive          *bool             `json:"is_active"`
	SupportsInsurance bool              `json:"supports_insurance"`
	SupportsSignature bool              `json:"supports_signature"`
	SupportsGiftWrap  bool              `json:"supports_gift_wrap"`
	EtaMinDays        *int              `json:"eta_min_days"`
	EtaMaxDays        *int              `json:"eta_max_days"`
	SortOrder         int               `json:"sort_order"`
}

// MethodUpdateReq 更新配送方式请求
type MethodUpdateReq struct {
	NameI18n          map[string]string `json:"name_i18n"`
	DescI18n          map[string]string `json:"desc_i18n"`
	IsActive          *bool             `json:"is_active"`
	SupportsInsurance *bool             `json:"supports_insurance"`
	SupportsSignature *bool             `json:"supports_signature"`
	SupportsGiftWrap  *bool             `json:"supports_gift_wrap"`
	EtaMinDays        *int              `json:"eta_min_days"`
	EtaMaxDays        *int              `json:"eta_max_days"`
	SortOrder         *int              `json:"sort_order"`
}

// MethodResp 配送方式响应
type MethodResp struct {
	ID                int64             `json:"id"`
	Code              string            `json:"code"`
	NameI18n          map[string]string `json:"name_i18n"`
	DescI18n          map[string]string `json:"desc_i18n"`
	IsActive          bool              `json:"is_active"`
	SupportsInsurance bool              `json:"supports_insurance"`
	SupportsSignature bool              `json:"supports_signature"`
	SupportsGiftWrap  bool              `json:"supports_gift_wrap"`
	EtaMinDays        *int              `json:"eta_min_days"`
	EtaMaxDays        *int              `json:"eta_max_days"`
	SortOrder         int               `json:"sort_order"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// MethodListResp 配送方式列表响应
type MethodListResp struct {
	Total int64        `json:"total"`
	List  []MethodResp `json:"list"`
}

// ==================== RateRule ====================

// RateRuleCreateReq 创建费率规则请求
type RateRuleCreateReq struct {
	ZoneID          int64    `json:"zone_id" binding:"required"`
	MethodID        int64    `json:"method_id" binding:"required"`
	MinSubtotalEur  int64    `json:"min_subtotal_eur" binding:"min=0"`
	MaxSubtotalEur  *int64   `json:"max_subtotal_eur"`
	MinWeightPoints float64  `json:"min_weight_points" binding:"min=0"`
	MaxWeightPoints *float64 `json:"max_weight_points"`
	PriceEur        int64    `json:"price_eur" binding:"min=0"`
	IsActive        *bool    `json:"is_active"`
	Priority        int      `json:"priority"`
}

// RateRuleUpdateReq 更新费率规则请求
type RateRuleUpdateReq struct {
	MinSubtotalEur  *int64   `json:"min_subtotal_eur"`
	MaxSubtotalEur  *int64   `json:"max_subtotal_eur"`
	MinWeightPoints *float64 `json:"min_weight_points"`
	MaxWeightPoints *float64 `json:"max_weight_points"`
	PriceEur        *int64   `json:"price_eur"`
	IsActive        *bool    `json:"is_active"`
	Priority        *int     `json:"priority"`
}

// RateRuleResp 费率规则响应
type RateRuleResp struct {
	ID              int64     `json:"id"`
	ZoneID          int64     `json:"zone_id"`
	MethodID        int64     `json:"method_id"`
	MinSubtotalEur  int64     `json:"min_subtotal_eur"`
	MaxSubtotalEur  *int64    `json:"max_subtotal_eur"`
	MinWeightPoints float64   `json:"min_weight_points"`
	MaxWeightPoints *float64  `json:"max_weight_points"`
	PriceEur        int64     `json:"price_eur"`
	IsActive        bool      `json:"is_active"`
	Priority        int       `json:"priority"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RateRuleListResp 费率规则列表响应
type RateRuleListResp struct {
	Total int64          `json:"total"`
	List  []RateRuleResp `json:"list"`
}

// ==================== FreeShippingThreshold ====================

// ThresholdCreateReq 创建包邮门槛请求
type ThresholdCreateReq struct {
	ZoneID       int64  `json:"zone_id" binding:"required"`
	MethodID     *int64 `json:"method_id"` // 空=区域内全部方式
	ThresholdEur int64  `json:"threshold_eur" binding:"required,min=0"`
	IsActive     *bool  `json:"is_active"`
}

// ThresholdUpdateReq 更新包邮门槛请求
type ThresholdUpdateReq struct {
	ThresholdEur *int64 `json:"threshold_eur"`
	IsActive     *bool  `json:"is_active"`
}

// ThresholdResp 包邮门槛响应
type ThresholdResp struct {
	ID           int64     `json:"id"`
	ZoneID       int64     `json:"zone_id"`
	MethodID     *int64    `json:"method_id"`
	ThresholdEur int64     `json:"threshold_eur"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ThresholdListResp 包邮门槛列表响应
type ThresholdListResp struct {
	Total int64           `json:"total"`
	List  []ThresholdResp `json:"list"`
}

// ==================== ShippingOption ====================

// OptionUpdateReq 更新附加服务请求（服务代码固定，不支持新增）
type OptionUpdateReq struct {
	NameI18n map[string]string `json:"name_i18n"`
	IsActive *bool             `json:"is_active"`
}

// OptionResp 附加服务响应
type OptionResp struct {
	ID       int64             `json:"id"`
	Code     string            `json:"code"`
	NameI18n map[string]string `json:"name_i18n"`
	IsActive bool              `json:"is_active"`
	Prices   []OptionPriceResp `json:"prices"`
}

// OptionListResp 附加服务列表响应
type OptionListResp struct {
	Total int64        `json:"total"`
	List  []OptionResp `json:"list"`
}

// OptionPriceCreateReq 创建附加服务定价请求
type OptionPriceCreateReq struct {
	OptionID int64  `json:"option_id" binding:"required"`
	ZoneID   *int64 `json:"zone_id"`   // 空=全局
	MethodID *int64 `json:"method_id"` // 空=全部方式
	PriceEur int64  `json:"price_eur" binding:"min=0"`
	IsActive *bool  `json:"is_active"`
}

// OptionPriceResp 附加服务定价响应
type OptionPriceResp struct {
	ID       int64  `json:"id"`
	OptionID int64  `json:"option_id"`
	ZoneID   *int64 `json:"zone_id"`
	MethodID *int64 `json:"method_id"`
	PriceEur int64  `json:"price_eur"`
	IsActive bool   `json:"is_active"`
}
