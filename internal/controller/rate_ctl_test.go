package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"maison_shop_v1_202608/internal/model"
	"maison_shop_v1_202608/internal/repository"
	"maison_shop_v1_202608/internal/service"
)

// ==================== 测试辅助 ====================

func setupRateCtlTestDB(t *testing.T) *gorm.DB {
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

func seedRateCtlConfig(t *testing.T, db *gorm.DB) (methodID int64) {
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

	return method.ID
}

func setupRateCtlRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	rateSvc := service.NewRateService(repository.NewRateConfigRepository(db))
	ctl := NewRateController(rateSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	shipping := r.Group("/api/shipping")
	{
		shipping.POST("/quote", ctl.Quote)
		shipping.POST("/quotes", ctl.QuoteAllMethods)
	}
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 测试用例 ====================

func TestRateController_Quote(t *testing.T) {
	db := setupRateCtlTestDB(t)
	methodID := seedRateCtlConfig(t, db)
	r := setupRateCtlRouter(db)

	w := postJSON(r, "/api/shipping/quote", gin.H{
		"country_code": "FR",
		"method_id":    methodID,
		"items": []gin.H{
			{"product_id": 1, "quantity": 1, "price_eur_cents": 4000, "size_class_code": "small"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, float64(990), resp["shipping_price_eur"])
	assert.Equal(t, "standard", resp["method_code"])
	assert.Equal(t, false, resp["is_free_shipping"])
}

func TestRateController_QuoteNoZone(t *testing.T) {
	db := setupRateCtlTestDB(t)
	methodID := seedRateCtlConfig(t, db)
	r := setupRateCtlRouter(db)

	w := postJSON(r, "/api/shipping/quote", gin.H{
		"country_code": "ZZ",
		"method_id":    methodID,
		"items": []gin.H{
			{"product_id": 1, "quantity": 1, "price_eur_cents": 4000, "size_class_code": "small"},
		},
	})

	// 配置性失败统一 422 + 错误码
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "NO_ZONE", resp["error"])
}

func TestRateController_QuoteBadRequest(t *testing.T) {
	db := setupRateCtlTestDB(t)
	seedRateCtlConfig(t, db)
	r := setupRateCtlRouter(db)

	// 空购物车被参数校验拦下
	w := postJSON(r, "/api/shipping/quote", gin.H{
		"country_code": "FR",
		"method_id":    1,
		"items":        []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateController_QuoteAllMethods(t *testing.T) {
	db := setupRateCtlTestDB(t)
	seedRateCtlConfig(t, db)
	r := setupRateCtlRouter(db)

	w := postJSON(r, "/api/shipping/quotes", gin.H{
		"country_code": "FR",
		"items": []gin.H{
			{"product_id": 1, "quantity": 1, "price_eur_cents": 4000, "size_class_code": "small"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	methods, ok := resp["methods"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, methods, 1)

	first := methods[0].(map[string]interface{})
	assert.Equal(t, "standard", first["method_code"])
	assert.NotNil(t, first["quote"])
}
