package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"maison_shop_v1_202608/internal/api/dto"
	"maison_shop_v1_202608/internal/model"
	"maison_shop_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupRateSvcTestDB(t *testing.T) *gorm.DB {
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

// seedRateConfig 落一套最小可报价配置：FR→区域，standard 方式，单档费率 9.90
func seedRateConfig(t *testing.T, db *gorm.DB) (zoneID, methodID int64) {
	t.Helper()
	ctx := context.Background()

	zoneRepo := repository.NewZoneRepository(db)
	zone := &model.Zone{NameI18n: []byte(`{"en":"Europe"}`), IsActive: true}
	if err := zoneRepo.Create(ctx, zone); err != nil {
		t.Fatalf("种子区域失败: %v", err)
	}
	if err := zoneRepo.ReplaceCountries(ctx, zone.ID, []string{"FR"}); err != nil {
		t.Fatalf("种子国家失败: %v", err)
	}

	method := &model.ShippingMethod{Code: "standard", IsActive: true}
	if err := repository.NewShippingMethodRepository(db).Create(ctx, method); err != nil {
		t.Fatalf("种子配送方式失败: %v", err)
	}

	rule := &model.RateRule{ZoneID: zone.ID, MethodID: method.ID, PriceEur: 990, IsActive: true}
	if err := repository.NewRateRuleRepository(db).Create(ctx, rule); err != nil {
		t.Fatalf("种子费率失败: %v", err)
	}

	class := &model.SizeClass{Code: "small", WeightPoints: 1, IsActive: true}
	if err := repository.NewSizeClassRepository(db).Create(ctx, class); err != nil {
		t.Fatalf("种子尺寸等级失败: %v", err)
	}

	return zone.ID, method.ID
}

func quoteReq(methodID int64) dto.RateQuoteReq {
	return dto.RateQuoteReq{
		Items: []dto.CartItemInput{
			{Quantity: 1, PriceEurCents: 4000, SizeClassCode: "small"},
		},
		CountryCode: "FR",
		MethodID:    methodID,
	}
}

// ==================== 报价 ====================

func TestRateService_Quote(t *testing.T) {
	db := setupRateSvcTestDB(t)
	_, methodID := seedRateConfig(t, db)
	svc := NewRateService(repository.NewRateConfigRepository(db))

	resp, err := svc.Quote(context.Background(), quoteReq(methodID))
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if resp.ShippingPriceEur != 990 {
		t.Errorf("ShippingPriceEur = %d, want 990", resp.ShippingPriceEur)
	}
	if resp.MethodCode != "standard" {
		t.Errorf("MethodCode = %s, want standard", resp.MethodCode)
	}
	if resp.ZoneName != "Europe" {
		t.Errorf("ZoneName = %s, want Europe", resp.ZoneName)
	}
}

func TestRateService_SnapshotCacheAndInvalidate(t *testing.T) {
	db := setupRateSvcTestDB(t)
	zoneID, methodID := seedRateConfig(t, db)
	svc := NewRateService(repository.NewRateConfigRepository(db))
	ctx := context.Background()

	// 第一次报价加载快照
	resp, err := svc.Quote(ctx, quoteReq(methodID))
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if resp.ShippingPriceEur != 990 {
		t.Fatalf("ShippingPriceEur = %d, want 990", resp.ShippingPriceEur)
	}

	// 改库但不失效，命中旧快照
	err = db.Model(&model.RateRule{}).
		Where("zone_id = ? AND method_id = ?", zoneID, methodID).
		Update("price_eur", 790).Error
	if err != nil {
		t.Fatalf("更新费率失败: %v", err)
	}

	resp, _ = svc.Quote(ctx, quoteReq(methodID))
	if resp.ShippingPriceEur != 990 {
		t.Errorf("缓存期内 ShippingPriceEur = %d, want 990", resp.ShippingPriceEur)
	}

	// 失效后重新加载
	svc.Invalidate()
	resp, err = svc.Quote(ctx, quoteReq(methodID))
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if resp.ShippingPriceEur != 790 {
		t.Errorf("失效后 ShippingPriceEur = %d, want 790", resp.ShippingPriceEur)
	}
}

func TestRateService_QuoteAllMethods(t *testing.T) {
	db := setupRateSvcTestDB(t)
	_, _ = seedRateConfig(t, db)
	ctx := context.Background()

	// 再加一个没有费率覆盖的方式
	express := &model.ShippingMethod{Code: "express", IsActive: true}
	if err := repository.NewShippingMethodRepository(db).Create(ctx, express); err != nil {
		t.Fatalf("种子配送方式失败: %v", err)
	}

	svc := NewRateService(repository.NewRateConfigRepository(db))
	resp, err := svc.QuoteAllMethods(ctx, dto.MethodQuotesReq{
		Items: []dto.CartItemInput{
			{Quantity: 1, PriceEurCents: 4000, SizeClassCode: "small"},
		},
		CountryCode: "FR",
	})
	if err != nil {
		t.Fatalf("QuoteAllMethods() error = %v", err)
	}

	if len(resp.Methods) != 2 {
		t.Fatalf("len(Methods) = %d, want 2", len(resp.Methods))
	}
	for _, m := range resp.Methods {
		switch m.MethodCode {
		case "standard":
			if m.Quote == nil || m.Quote.ShippingPriceEur != 990 {
				t.Errorf("standard 报价 = %+v, want 990", m.Quote)
			}
		case "express":
			if m.Error != string(ErrCodeNoRateRule) {
				t.Errorf("express Error = %s, want NO_RATE_RULE", m.Error)
			}
			if m.Quote != nil {
				t.Error("无费率覆盖的方式不应有报价")
			}
		default:
			t.Errorf("未知方式 %s", m.MethodCode)
		}
	}
}

func TestRateService_QuoteAllMethods_NoZone(t *testing.T) {
	db := setupRateSvcTestDB(t)
	_, _ = seedRateConfig(t, db)
	svc := NewRateService(repository.NewRateConfigRepository(db))

	_, err := svc.QuoteAllMethods(context.Background(), dto.MethodQuotesReq{
		Items: []dto.CartItemInput{
			{Quantity: 1, PriceEurCents: 4000, SizeClassCode: "small"},
		},
		CountryCode: "ZZ",
	})
	assertRateError(t, err, ErrCodeNoZone)
}

// ==================== 模拟器 ====================

func TestRateService_Simulate(t *testing.T) {
	db := setupRateSvcTestDB(t)
	zoneID, methodID := seedRateConfig(t, db)
	svc := NewRateService(repository.NewRateConfigRepository(db))
	ctx := context.Background()

	// 预热缓存后改库：模拟器必须读最新配置
	if _, err := svc.Quote(ctx, quoteReq(methodID)); err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	err := db.Model(&model.RateRule{}).
		Where("zone_id = ? AND method_id = ?", zoneID, methodID).
		Update("price_eur", 1290).Error
	if err != nil {
		t.Fatalf("更新费率失败: %v", err)
	}

	req := dto.SimulateReq(quoteReq(methodID))
	req.Items = append(req.Items, dto.CartItemInput{
		Quantity: 1, PriceEurCents: 1000, SizeClassCode: "ghost",
	})

	resp, err := svc.Simulate(ctx, req)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if resp.ShippingPriceEur != 1290 {
		t.Errorf("ShippingPriceEur = %d, want 1290 (模拟器绕过缓存)", resp.ShippingPriceEur)
	}
	if resp.SubtotalEur != 5000 {
		t.Errorf("SubtotalEur = %d, want 5000", resp.SubtotalEur)
	}
	if resp.WeightPoints != 1 {
		t.Errorf("WeightPoints = %v, want 1 (ghost 按 0 计)", resp.WeightPoints)
	}
	if resp.MatchedRulePrice != 1290 {
		t.Errorf("MatchedRulePrice = %d, want 1290", resp.MatchedRulePrice)
	}
	if len(resp.UnknownSizeClasses) != 1 || resp.UnknownSizeClasses[0] != "ghost" {
		t.Errorf("UnknownSizeClasses = %v, want [ghost]", resp.UnknownSizeClasses)
	}
}
