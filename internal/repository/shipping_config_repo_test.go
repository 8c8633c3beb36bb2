package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"maison_shop_v1_202608/internal/model"
)

// ==================== 测试辅助 ====================

func setupShippingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&model.Zone{}, &model.ZoneCountry{}, &model.SizeClass{},
		&model.ShippingMethod{}, &model.RateRule{},
		&model.FreeShippingThreshold{},
		&model.ShippingOption{}, &model.OptionPrice{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

// ==================== Zone ====================

func TestZoneRepo_CreateAndGet(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewZoneRepository(db)
	ctx := context.Background()

	zone := &model.Zone{
		NameI18n:  []byte(`{"en":"Europe","fr":"Europe"}`),
		IsActive:  true,
		SortOrder: 1,
	}
	if err := repo.Create(ctx, zone); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if zone.ID == 0 {
		t.Fatal("Create() 未回填 ID")
	}

	got, err := repo.GetByID(ctx, zone.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.SortOrder != 1 {
		t.Errorf("SortOrder = %d, want 1", got.SortOrder)
	}
}

func TestZoneRepo_ReplaceCountries(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewZoneRepository(db)
	ctx := context.Background()

	zone := &model.Zone{IsActive: true}
	if err := repo.Create(ctx, zone); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// 国家代码统一大写入库
	if err := repo.ReplaceCountries(ctx, zone.ID, []string{"fr", "DE"}); err != nil {
		t.Fatalf("ReplaceCountries() error = %v", err)
	}

	got, err := repo.GetByIDWithCountries(ctx, zone.ID)
	if err != nil {
		t.Fatalf("GetByIDWithCountries() error = %v", err)
	}
	if len(got.Countries) != 2 {
		t.Fatalf("len(Countries) = %d, want 2", len(got.Countries))
	}
	for _, c := range got.Countries {
		if c.CountryCode != "FR" && c.CountryCode != "DE" {
			t.Errorf("CountryCode = %s, want FR/DE", c.CountryCode)
		}
	}

	// 整体替换，旧映射清掉
	if err := repo.ReplaceCountries(ctx, zone.ID, []string{"IT"}); err != nil {
		t.Fatalf("ReplaceCountries() error = %v", err)
	}
	got, _ = repo.GetByIDWithCountries(ctx, zone.ID)
	if len(got.Countries) != 1 || got.Countries[0].CountryCode != "IT" {
		t.Errorf("Countries = %+v, want [IT]", got.Countries)
	}
}

func TestZoneRepo_DeleteCascadesCountries(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewZoneRepository(db)
	ctx := context.Background()

	zone := &model.Zone{IsActive: true}
	_ = repo.Create(ctx, zone)
	_ = repo.ReplaceCountries(ctx, zone.ID, []string{"FR"})

	if err := repo.Delete(ctx, zone.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var count int64
	db.Model(&model.ZoneCountry{}).Where("zone_id = ?", zone.ID).Count(&count)
	if count != 0 {
		t.Errorf("区域删除后残留 %d 条国家映射", count)
	}
}

// ==================== RateRule ====================

func TestRateRuleRepo_CountActiveByZoneMethod(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewRateRuleRepository(db)
	ctx := context.Background()

	rules := []*model.RateRule{
		{ZoneID: 1, MethodID: 1, PriceEur: 990, IsActive: true},
		{ZoneID: 1, MethodID: 1, PriceEur: 590, IsActive: false},
		{ZoneID: 1, MethodID: 2, PriceEur: 1990, IsActive: true},
	}
	for _, rule := range rules {
		if err := repo.Create(ctx, rule); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	count, err := repo.CountActiveByZoneMethod(ctx, 1, 1)
	if err != nil {
		t.Fatalf("CountActiveByZoneMethod() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (停用规则不计)", count)
	}

	count, _ = repo.CountActiveByZoneMethod(ctx, 9, 9)
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestRateRuleRepo_CreateInactivePersists(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewRateRuleRepository(db)
	ctx := context.Background()

	// 后台允许先停用建规则再启用，入库必须保持停用状态
	rule := &model.RateRule{ZoneID: 1, MethodID: 1, PriceEur: 990, IsActive: false}
	if err := repo.Create(ctx, rule); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, rule.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.IsActive {
		t.Error("IsActive = true, want false (停用创建不应被激活)")
	}
}

func TestRateRuleRepo_UpdateFields(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewRateRuleRepository(db)
	ctx := context.Background()

	rule := &model.RateRule{ZoneID: 1, MethodID: 1, PriceEur: 990, IsActive: true, Priority: 100}
	_ = repo.Create(ctx, rule)

	err := repo.UpdateFields(ctx, rule.ID, map[string]interface{}{
		"price_eur": int64(790),
		"priority":  50,
	})
	if err != nil {
		t.Fatalf("UpdateFields() error = %v", err)
	}

	got, _ := repo.GetByID(ctx, rule.ID)
	if got.PriceEur != 790 || got.Priority != 50 {
		t.Errorf("got = (%d, %d), want (790, 50)", got.PriceEur, got.Priority)
	}
}

// ==================== ShippingOption ====================

func TestShippingOptionRepo_EnsureDefaults(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewShippingOptionRepository(db)
	ctx := context.Background()

	if err := repo.EnsureDefaults(ctx); err != nil {
		t.Fatalf("EnsureDefaults() error = %v", err)
	}
	// 幂等：重复执行不产生重复行
	if err := repo.EnsureDefaults(ctx); err != nil {
		t.Fatalf("EnsureDefaults() 二次执行 error = %v", err)
	}

	var count int64
	db.Model(&model.ShippingOption{}).Count(&count)
	if count != 3 {
		t.Errorf("附加服务数 = %d, want 3", count)
	}

	opt, err := repo.GetByCode(ctx, model.OptionCodeGiftWrap)
	if err != nil {
		t.Fatalf("GetByCode() error = %v", err)
	}
	if !opt.IsActive {
		t.Error("默认附加服务应为启用状态")
	}
}

func TestShippingOptionRepo_Prices(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewShippingOptionRepository(db)
	ctx := context.Background()

	_ = repo.EnsureDefaults(ctx)
	opt, _ := repo.GetByCode(ctx, model.OptionCodeInsurance)

	zoneID := int64(1)
	price := &model.OptionPrice{OptionID: opt.ID, ZoneID: &zoneID, PriceEur: 300, IsActive: true}
	if err := repo.CreatePrice(ctx, price); err != nil {
		t.Fatalf("CreatePrice() error = %v", err)
	}

	list, err := repo.ListWithPrices(ctx)
	if err != nil {
		t.Fatalf("ListWithPrices() error = %v", err)
	}
	var found bool
	for _, o := range list {
		if o.ID == opt.ID && len(o.Prices) == 1 && o.Prices[0].PriceEur == 300 {
			found = true
		}
	}
	if !found {
		t.Error("ListWithPrices() 未带出定价")
	}

	if err := repo.DeletePrice(ctx, price.ID); err != nil {
		t.Fatalf("DeletePrice() error = %v", err)
	}
}

// ==================== 快照加载 ====================

func TestRateConfigRepo_LoadSnapshot(t *testing.T) {
	db := setupShippingTestDB(t)
	ctx := context.Background()

	zoneRepo := NewZoneRepository(db)
	zone := &model.Zone{IsActive: true}
	_ = zoneRepo.Create(ctx, zone)
	_ = zoneRepo.ReplaceCountries(ctx, zone.ID, []string{"FR"})

	methodRepo := NewShippingMethodRepository(db)
	method := &model.ShippingMethod{Code: "standard", IsActive: true}
	_ = methodRepo.Create(ctx, method)

	ruleRepo := NewRateRuleRepository(db)
	_ = ruleRepo.Create(ctx, &model.RateRule{
		ZoneID: zone.ID, MethodID: method.ID, PriceEur: 990, IsActive: true,
	})

	classRepo := NewSizeClassRepository(db)
	_ = classRepo.Create(ctx, &model.SizeClass{Code: "small", WeightPoints: 1, IsActive: true})

	snap, err := NewRateConfigRepository(db).LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	if len(snap.Zones) != 1 {
		t.Errorf("len(Zones) = %d, want 1", len(snap.Zones))
	}
	if len(snap.ZoneCountries) != 1 {
		t.Errorf("len(ZoneCountries) = %d, want 1", len(snap.ZoneCountries))
	}
	if len(snap.Methods) != 1 {
		t.Errorf("len(Methods) = %d, want 1", len(snap.Methods))
	}
	if len(snap.RateRules) != 1 {
		t.Errorf("len(RateRules) = %d, want 1", len(snap.RateRules))
	}
	if len(snap.SizeClasses) != 1 {
		t.Errorf("len(SizeClasses) = %d, want 1", len(snap.SizeClasses))
	}
}
