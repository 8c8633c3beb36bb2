package model

import (
	"strings"

	"gorm.io/datatypes"
)

// ==================== 配送区域 ====================

// Zone 配送区域模型
// 一个区域拥有若干目的地国家，每个国家最多属于一个启用的区域
type Zone struct {
	BaseModel

	// 多语言名称/描述，如 {"fr":"Europe","en":"Europe"}
	NameI18n datatypes.JSON `gorm:"type:jsonb;comment:多语言名称"`
	DescI18n datatypes.JSON `gorm:"type:jsonb;comment:多语言描述"`

	// 该区域是否需要向客户披露关税
	CustomsNotice bool `gorm:"default:false;comment:是否需要关税提示"`

	IsActive  bool `gorm:"index;comment:是否启用"`
	SortOrder int  `gorm:"default:0;comment:排序值"`

	// 关联国家（一对多）
	Countries []ZoneCountry `gorm:"foreignKey:ZoneID"`
}

// ZoneCountry 区域-国家映射模型
type ZoneCountry struct {
	BaseModel

	ZoneID int64 `gorm:"index;not null;comment:关联区域ID"`
	Zone   *Zone `gorm:"foreignKey:ZoneID"`

	// ISO 3166-1 alpha-2 国家代码，统一存大写
	CountryCode string `gorm:"size:2;index;not null;comment:国家代码"`
}

// NormalizeCountryCode 国家代码统一为大写
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ==================== 尺寸等级 ====================

// SizeClass 尺寸等级模型
// 用重量点数描述商品的相对运输体积，与实际公斤数无关
type SizeClass struct {
	BaseModel

	Code      string         `gorm:"size:50;uniqueIndex;not null;comment:等级代码"`
	LabelI18n datatypes.JSON `gorm:"type:jsonb;comment:多语言标签"`

	// 重量点数，非负
	WeightPoints float64 `gorm:"default:0;comment:重量点数"`

	IsActive  bool `gorm:"index;comment:是否启用"`
	SortOrder int  `gorm:"default:0;comment:排序值"`
}

// ==================== 配送方式 ====================

// ShippingMethod 配送方式模型
type ShippingMethod struct {
	BaseModel

	Code     string         `gorm:"size:50;uniqueIndex;not null;comment:方式代码"`
	NameI18n datatypes.JSON `gorm:"type:jsonb;comment:多语言名称"`
	DescI18n datatypes.JSON `gorm:"type:jsonb;comment:多语言描述"`

	IsActive bool `gorm:"index;comment:是否启用"`

	// 附加服务支持能力
	SupportsInsurance bool `gorm:"default:false;comment:支持保价"`
	SupportsSignature bool `gorm:"default:false;comment:支持签收"`
	SupportsGiftWrap  bool `gorm:"default:false;comment:支持礼品包装"`

	// 运输时效（天），可为空表示未承诺时效
	EtaMinDays *int `gorm:"comment:最短运输天数"`
	EtaMaxDays *int `gorm:"comment:最长运输天数"`

	SortOrder int `gorm:"default:0;comment:排序值"`
}

// ==================== 费率规则 ====================

// RateRule 费率规则模型
// 金额区间与重量区间均为左闭右开 [min, max)，max 为空表示无上界
type RateRule struct {
	BaseModel

	ZoneID   int64           `gorm:"index;not null;comment:关联区域ID"`
	Zone     *Zone           `gorm:"foreignKey:ZoneID"`
	MethodID int64           `gorm:"index;not null;comment:关联配送方式ID"`
	Method   *ShippingMethod `gorm:"foreignKey:MethodID"`

	// 订单金额区间（单位：分）
	MinSubtotalEur int64  `gorm:"default:0;comment:最小订单金额(分)"`
	MaxSubtotalEur *int64 `gorm:"comment:最大订单金额(分),空=无上界"`

	// 重量点数区间
	MinWeightPoints float64  `gorm:"default:0;comment:最小重量点数"`
	MaxWeightPoints *float64 `gorm:"comment:最大重量点数,空=无上界"`

	// 运费（单位：分）
	PriceEur int64 `gorm:"default:0;comment:运费(分)"`

	IsActive bool `gorm:"index;comment:是否启用"`

	// 区间允许重叠，数值越小优先级越高
	Priority int `gorm:"default:100;comment:优先级,小值优先"`
}

// ==================== 包邮门槛 ====================

// FreeShippingThreshold 包邮门槛模型
// MethodID 为空表示对该区域所有配送方式生效
type FreeShippingThreshold struct {
	BaseModel

	ZoneID   int64           `gorm:"index;not null;comment:关联区域ID"`
	Zone     *Zone           `gorm:"foreignKey:ZoneID"`
	MethodID *int64          `gorm:"index;comment:关联配送方式ID,空=全部方式"`
	Method   *ShippingMethod `gorm:"foreignKey:MethodID"`

	// 订单金额达到门槛（分）即免运费
	ThresholdEur int64 `gorm:"not null;comment:包邮门槛(分)"`

	IsActive bool `gorm:"index;comment:是否启用"`
}

// ==================== 附加服务 ====================

// ShippingOption 代码常量
const (
	OptionCodeInsurance = "insurance"
	OptionCodeSignature = "signature"
	OptionCodeGiftWrap  = "gift_wrap"
)

// ShippingOption 附加服务模型（保价/签收/礼品包装）
type ShippingOption struct {
	BaseModel

	Code     string         `gorm:"size:50;uniqueIndex;not null;comment:服务代码"`
	NameI18n datatypes.JSON `gorm:"type:jsonb;comment:多语言名称"`

	IsActive bool `gorm:"index;comment:是否启用"`

	// 关联定价（一对多）
	Prices []OptionPrice `gorm:"foreignKey:OptionID"`
}

// OptionPrice 附加服务定价模型
// Zone/Method 均为空表示全局定价；越具体的定价优先级越高
type OptionPrice struct {
	BaseModel

	OptionID int64           `gorm:"index;not null;comment:关联附加服务ID"`
	Option   *ShippingOption `gorm:"foreignKey:OptionID"`

	ZoneID   *int64          `gorm:"index;comment:关联区域ID,空=全局"`
	Zone     *Zone           `gorm:"foreignKey:ZoneID"`
	MethodID *int64          `gorm:"index;comment:关联配送方式ID,空=全部方式"`
	Method   *ShippingMethod `gorm:"foreignKey:MethodID"`

	// 服务价格（单位：分）
	PriceEur int64 `gorm:"default:0;comment:价格(分)"`

	IsActive bool `gorm:"index;comment:是否启用"`
}

// ==================== 配置快照 ====================

// RateConfigSnapshot 费率配置快照
// 每次计算前整体加载，计算过程不再读库，保证单次调用内配置一致
type RateConfigSnapshot struct {
	Zones          []Zone
	ZoneCountries  []ZoneCountry
	SizeClasses    []SizeClass
	Methods        []ShippingMethod
	RateRules      []RateRule
	FreeThresholds []FreeShippingThreshold
	Options        []ShippingOption
	OptionPrices   []OptionPrice
}

func (Zone) TableName() string {
	return "shipping_zones"
}
func (ZoneCountry) TableName() string {
	return "shipping_zone_countries"
}
func (SizeClass) TableName() string {
	return "size_classes"
}
func (ShippingMethod) TableName() string {
	return "shipping_methods"
}
func (RateRule) TableName() string {
	return "shipping_rate_rules"
}
func (FreeShippingThreshold) TableName() string {
	return "free_shipping_thresholds"
}
func (ShippingOption) TableName() string {
	return "shipping_options"
}
func (OptionPrice) TableName() string {
	return "shipping_option_prices"
}
