package repository

import (
	"context"

	"gorm.io/gorm"

	"maison_shop_v1_202608/internal/model"
)

// ==================== Zone 接口定义 ====================

// ZoneRepository 配送区域仓储接口
type ZoneRepository interface {
	Create(ctx context.Context, zone *model.Zone) error
	GetByID(ctx context.Context, id int64) (*model.Zone, error)
	GetByIDWithCountries(ctx context.Context, id int64) (*model.Zone, error)
	Update(ctx context.Context, zone *model.Zone) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context) ([]model.Zone, error)
	ListWithCountries(ctx context.Context) ([]model.Zone, error)

	// ReplaceCountries 整体替换区域的国家列表
	ReplaceCountries(ctx context.Context, zoneID int64, countryCodes []string) error
}

// ==================== Zone 实现 ====================

type zoneRepo struct {
	db *gorm.DB
}

// NewZoneRepository 创建配送区域仓储
func NewZoneRepository(db *gorm.DB) ZoneRepository {
	return &zoneRepo{db: db}
}

func (r *zoneRepo) Create(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *zoneRepo) GetByID(ctx context.Context, id int64) (*model.Zone, error) {
	var zone model.Zone
	err := r.db.WithContext(ctx).First(&zone, id).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) GetByIDWithCountries(ctx context.Context, id int64) (*model.Zone, error) {
	var zone model.Zone
	err := r.db.WithContext(ctx).
		Preload("Countries").
		First(&zone, id).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) Update(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

func (r *zoneRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Zone{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *zoneRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("zone_id = ?", id).Delete(&model.ZoneCountry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Zone{}, id).Error
	})
}

func (r *zoneRepo) List(ctx context.Context) ([]model.Zone, error) {
	var list []model.Zone
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *zoneRepo) ListWithCountries(ctx context.Context) ([]model.Zone, error) {
	var list []model.Zone
	err := r.db.WithContext(ctx).
		Preload("Countries").
		Order("sort_order ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *zoneRepo) ReplaceCountries(ctx context.Context, zoneID int64, countryCodes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("zone_id = ?", zoneID).Delete(&model.ZoneCountry{}).Error; err != nil {
			return err
		}
		if len(countryCodes) == 0 {
			return nil
		}
		rows := make([]model.ZoneCountry, 0, len(countryCodes))
		for _, code := range countryCodes {
			rows = append(rows, model.ZoneCountry{
				ZoneID:      zoneID,
				CountryCode: model.NormalizeCountryCode(code),
			})
		}
		return tx.Create(&rows).Error
	})
}

// ==================== SizeClass 接口定义 ====================

// SizeClassRepository 尺寸等级仓储接口
type SizeClassRepository interface {
	Create(ctx context.Context, class *model.SizeClass) error
	GetByID(ctx context.Context, id int64) (*model.SizeClass, error)
	GetByCode(ctx context.Context, code string) (*model.SizeClass, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.SizeClass, error)
}

// ==================== SizeClass 实现 ====================

type sizeClassRepo struct {
	db *gorm.DB
}

// NewSizeClassRepository 创建尺寸等级仓储
func NewSizeClassRepository(db *gorm.DB) SizeClassRepository {
	return &sizeClassRepo{db: db}
}

func (r *sizeClassRepo) Create(ctx context.Context, class *model.SizeClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *sizeClassRepo) GetByID(ctx context.Context, id int64) (*model.SizeClass, error) {
	var class model.SizeClass
	err := r.db.WithContext(ctx).First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *sizeClassRepo) GetByCode(ctx context.Context, code string) (*model.SizeClass, error) {
	var class model.SizeClass
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *sizeClassRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.SizeClass{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *sizeClassRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.SizeClass{}, id).Error
}

func (r *sizeClassRepo) List(ctx context.Context) ([]model.SizeClass, error) {
	var list []model.SizeClass
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&list).Error
	return list, err
}

// ==================== ShippingMethod 接口定义 ====================

// ShippingMethodRepository 配送方式仓储接口
type ShippingMethodRepository interface {
	Create(ctx context.Context, method *model.ShippingMethod) error
	GetByID(ctx context.Context, id int64) (*model.ShippingMethod, error)
	GetByCode(ctx context.Context, code string) (*model.ShippingMethod, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.ShippingMethod, error)
	ListActive(ctx context.Context) ([]model.ShippingMethod, error)
}

// ==================== ShippingMethod 实现 ====================

type shippingMethodRepo struct {
	db *gorm.DB
}

// NewShippingMethodRepository 创建配送方式仓储
func NewShippingMethodRepository(db *gorm.DB) ShippingMethodRepository {
	return &shippingMethodRepo{db: db}
}

func (r *shippingMethodRepo) Create(ctx context.Context, method *model.ShippingMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *shippingMethodRepo) GetByID(ctx context.Context, id int64) (*model.ShippingMethod, error) {
	var method model.ShippingMethod
	err := r.db.WithContext(ctx).First(&method, id).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *shippingMethodRepo) GetByCode(ctx context.Context, code string) (*model.ShippingMethod, error) {
	var method model.ShippingMethod
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&method).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *shippingMethodRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.ShippingMethod{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *shippingMethodRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ShippingMethod{}, id).Error
}

func (r *shippingMethodRepo) List(ctx context.Context) ([]model.ShippingMethod, error) {
	var list []model.ShippingMethod
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *shippingMethodRepo) ListActive(ctx context.Context) ([]model.ShippingMethod, error) {
	var list []model.ShippingMethod
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&list).Error
	return list, err
}

// ==================== RateRule 接口定义 ====================

// RateRuleRepository 费率规则仓储接口
type RateRuleRepository interface {
	Create(ctx context.Context, rule *model.RateRule) error
	GetByID(ctx context.Context, id int64) (*model.RateRule, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.RateRule, error)
	ListByZoneMethod(ctx context.Context, zoneID, methodID int64) ([]model.RateRule, error)
	CountActiveByZoneMethod(ctx context.Context, zoneID, methodID int64) (int64, error)
}

// ==================== RateRule 实现 ====================

type rateRuleRepo struct {
	db *gorm.DB
}

// NewRateRuleRepository 创建费率规则仓储
func NewRateRuleRepository(db *gorm.DB) RateRuleRepository {
	return &rateRuleRepo{db: db}
}

func (r *rateRuleRepo) Create(ctx context.Context, rule *model.RateRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *rateRuleRepo) GetByID(ctx context.Context, id int64) (*model.RateRule, error) {
	var rule model.RateRule
	err := r.db.WithContext(ctx).First(&rule, id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *rateRuleRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.RateRule{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *rateRuleRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.RateRule{}, id).Error
}

func (r *rateRuleRepo) List(ctx context.Context) ([]model.RateRule, error) {
	var list []model.RateRule
	err := r.db.WithContext(ctx).
		Order("zone_id ASC, method_id ASC, priority ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *rateRuleRepo) ListByZoneMethod(ctx context.Context, zoneID, methodID int64) ([]model.RateRule, error) {
	var list []model.RateRule
	err := r.db.WithContext(ctx).
		Where("zone_id = ? AND method_id = ?", zoneID, methodID).
		Order("priority ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *rateRuleRepo) CountActiveByZoneMethod(ctx context.Context, zoneID, methodID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RateRule{}).
		Where("zone_id = ? AND method_id = ? AND is_active = ?", zoneID, methodID, true).
		Count(&count).Error
	return count, err
}

// ==================== FreeShippingThreshold 接口定义 ====================

// ThresholdRepository 包邮门槛仓储接口
type ThresholdRepository interface {
	Create(ctx context.Context, threshold *model.FreeShippingThreshold) error
	GetByID(ctx context.Context, id int64) (*model.FreeShippingThreshold, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.FreeShippingThreshold, error)
}

// ==================== FreeShippingThreshold 实现 ====================

type thresholdRepo struct {
	db *gorm.DB
}

// NewThresholdRepository 创建包邮门槛仓储
func NewThresholdRepository(db *gorm.DB) ThresholdRepository {
	return &thresholdRepo{db: db}
}

func (r *thresholdRepo) Create(ctx context.Context, threshold *model.FreeShippingThreshold) error {
	return r.db.WithContext(ctx).Create(threshold).Error
}

func (r *thresholdRepo) GetByID(ctx context.Context, id int64) (*model.FreeShippingThreshold, error) {
	var threshold model.FreeShippingThreshold
	err := r.db.WithContext(ctx).First(&threshold, id).Error
	if err != nil {
		return nil, err
	}
	return &threshold, nil
}

func (r *thresholdRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.FreeShippingThreshold{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *thresholdRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.FreeShippingThreshold{}, id).Error
}

func (r *thresholdRepo) List(ctx context.Context) ([]model.FreeShippingThreshold, error) {
	var list []model.FreeShippingThreshold
	err := r.db.WithContext(ctx).
		Order("zone_id ASC, id ASC").
		Find(&list).Error
	return list, err
}

// ==================== ShippingOption 接口定义 ====================

// ShippingOptionRepository 附加服务仓储接口
type ShippingOptionRepository interface {
	GetByID(ctx context.Context, id int64) (*model.ShippingOption, error)
	GetByCode(ctx context.Context, code string) (*model.ShippingOption, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	ListWithPrices(ctx context.Context) ([]model.ShippingOption, error)

	// EnsureDefaults 保证三个固定服务代码存在
	EnsureDefaults(ctx context.Context) error

	CreatePrice(ctx context.Context, price *model.OptionPrice) error
	UpdatePriceFields(ctx context.Context, id int64, fields map[string]interface{}) error
	DeletePrice(ctx context.Context, id int64) error
}

// ==================== ShippingOption 实现 ====================

type shippingOptionRepo struct {
	db *gorm.DB
}

// NewShippingOptionRepository 创建附加服务仓储
func NewShippingOptionRepository(db *gorm.DB) ShippingOptionRepository {
	return &shippingOptionRepo{db: db}
}

func (r *shippingOptionRepo) GetByID(ctx context.Context, id int64) (*model.ShippingOption, error) {
	var opt model.ShippingOption
	err := r.db.WithContext(ctx).First(&opt, id).Error
	if err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *shippingOptionRepo) GetByCode(ctx context.Context, code string) (*model.ShippingOption, error) {
	var opt model.ShippingOption
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&opt).Error
	if err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *shippingOptionRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.ShippingOption{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *shippingOptionRepo) ListWithPrices(ctx context.Context) ([]model.ShippingOption, error) {
	var list []model.ShippingOption
	err := r.db.WithContext(ctx).
		Preload("Prices").
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *shippingOptionRepo) EnsureDefaults(ctx context.Context) error {
	codes := []string{
		model.OptionCodeInsurance,
		model.OptionCodeSignature,
		model.OptionCodeGiftWrap,
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, code := range codes {
			opt := model.ShippingOption{Code: code, IsActive: true}
			err := tx.Where("code = ?", code).
				FirstOrCreate(&opt).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *shippingOptionRepo) CreatePrice(ctx context.Context, price *model.OptionPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *shippingOptionRepo) UpdatePriceFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.OptionPrice{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *shippingOptionRepo) DeletePrice(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.OptionPrice{}, id).Error
}

// ==================== RateConfig 快照加载 ====================

// RateConfigRepository 费率配置快照仓储接口
// 引擎本身不读库，快照在这里一次性整体加载
type RateConfigRepository interface {
	LoadSnapshot(ctx context.Context) (*model.RateConfigSnapshot, error)
}

type rateConfigRepo struct {
	db *gorm.DB
}

// NewRateConfigRepository 创建费率配置快照仓储
func NewRateConfigRepository(db *gorm.DB) RateConfigRepository {
	return &rateConfigRepo{db: db}
}

func (r *rateConfigRepo) LoadSnapshot(ctx context.Context) (*model.RateConfigSnapshot, error) {
	snap := &model.RateConfigSnapshot{}
	db := r.db.WithContext(ctx)

	if err := db.Find(&snap.Zones).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.ZoneCountries).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.SizeClasses).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.Methods).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.RateRules).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.FreeThresholds).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.Options).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snap.OptionPrices).Error; err != nil {
		return nil, err
	}

	return snap, nil
}
