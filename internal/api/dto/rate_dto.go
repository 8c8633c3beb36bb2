package dto

// ==================== 请求 DTO ====================

// CartItemInput 购物车条目
type CartItemInput struct {
	ProductID     int64  `json:"product_id"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	PriceEurCents int64  `json:"price_eur_cents" binding:"min=0"` // 单价（分）
	MadeToOrder   bool   `json:"made_to_order"`
	LeadTimeDays  *int   `json:"lead_time_days"` // 定制制作周期（天），非定制为空
	SizeClassCode string `json:"size_class_code"`
}

// SelectedOptions 客户勾选的附加服务
type SelectedOptions struct {
	Insurance bool `json:"insurance"`
	Signature bool `json:"signature"`
	GiftWrap  bool `json:"gift_wrap"`
}

// 发货偏好
const (
	ShipmentPreferenceSingle = "single" // 合并发货，等最慢的商品
	ShipmentPreferenceSplit  = "split"  // 分批发货，现货先发
)

// RateQuoteReq 运费报价请求
type RateQuoteReq struct {
	Items              []CartItemInput `json:"items" binding:"required,min=1,dive"`
	CountryCode        string          `json:"country_code" binding:"required"`
	MethodID           int64           `json:"method_id" binding:"required"`
	SelectedOptions    SelectedOptions `json:"selected_options"`
	ShipmentPreference string          `json:"shipment_preference"` // single | split，默认 single
}

// MethodQuotesReq 全方式报价请求（结算页方式列表）
type MethodQuotesReq struct {
	Items              []CartItemInput `json:"items" binding:"required,min=1,dive"`
	CountryCode        string          `json:"country_code" binding:"required"`
	SelectedOptions    SelectedOptions `json:"selected_options"`
	ShipmentPreference string          `json:"shipment_preference"`
}

// ==================== 响应 DTO ====================

// ShipmentEtaResp 单个包裹的时效信息
type ShipmentEtaResp struct {
	LeadTimeDays int  `json:"lead_time_days"`
	EtaMinDays   *int `json:"eta_min_days"`
	EtaMaxDays   *int `json:"eta_max_days"`
}

// SplitDetailsResp 分批发货明细
type SplitDetailsResp struct {
	ReadyShipment       ShipmentEtaResp `json:"ready_shipment"`
	MadeToOrderShipment ShipmentEtaResp `json:"made_to_order_shipment"`
}

// RateQuoteResp 运费报价响应
type RateQuoteResp struct {
	ZoneID        int64  `json:"zone_id"`
	ZoneName      string `json:"zone_name,omitempty"`
	MethodID      int64  `json:"method_id"`
	MethodCode    string `json:"method_code"`
	CustomsNotice bool   `json:"customs_notice"`

	ShippingPriceEur int64 `json:"shipping_price_eur"` // 运费（分）
	OptionsPriceEur  int64 `json:"options_price_eur"`  // 附加服务费（分）
	IsFreeShipping   bool  `json:"is_free_shipping"`

	LeadTimeDays int               `json:"lead_time_days"`
	EtaMinDays   *int              `json:"eta_min_days"`
	EtaMaxDays   *int              `json:"eta_max_days"`
	SplitDetails *SplitDetailsResp `json:"split_details,omitempty"`
}

// MethodQuoteItem 单个配送方式的报价条目
// 某个方式无费率覆盖时 Error 给出错误码，报价字段为空
type MethodQuoteItem struct {
	MethodID   int64          `json:"method_id"`
	MethodCode string         `json:"method_code"`
	Quote      *RateQuoteResp `json:"quote,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// MethodQuotesResp 全方式报价响应
type MethodQuotesResp struct {
	ZoneID  int64             `json:"zone_id"`
	Methods []MethodQuoteItem `json:"methods"`
}

// RateErrorResp 报价失败响应
type RateErrorResp struct {
	Error string `json:"error"` // NO_ZONE | NO_METHOD | NO_RATE_RULE
}

// ==================== 模拟器 DTO ====================

// SimulateReq 后台费率模拟请求，与报价请求同构
type SimulateReq = RateQuoteReq

// SimulateResp 后台费率模拟响应，带命中轨迹便于排查配置
type SimulateResp struct {
	RateQuoteResp

	// 命中轨迹
	SubtotalEur        int64    `json:"subtotal_eur"`
	WeightPoints       float64  `json:"weight_points"`
	MatchedRuleID      int64    `json:"matched_rule_id"`
	MatchedRulePrice   int64    `json:"matched_rule_price"`
	ThresholdID        *int64   `json:"threshold_id"`         // 触发包邮的门槛，未触发为空
	UnknownSizeClasses []string `json:"unknown_size_classes"` // 未识别的尺寸等级代码
}

// CoverageGapResp 费率覆盖缺口
type CoverageGapResp struct {
	ZoneID     int64  `json:"zone_id"`
	MethodID   int64  `json:"method_id"`
	MethodCode string `json:"method_code"`
}
