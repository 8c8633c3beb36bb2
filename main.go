package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// 1. 定义与数据库表对应的结构体
type ZoneRow struct {
	ID        int64
	IsActive  bool
	SortOrder int
}

func (ZoneRow) TableName() string {
	return "shipping_zones"
}

func main() {
	fmt.Println(">>> 开始执行全链路测试...")

	// ------------------------------------------------
	// 2. 连接数据库
	// ------------------------------------------------
	dsn := "host=localhost user=postgres password=postgres dbname=maison_shop port=5432 sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ 数据库连接失败: %v", err)
	}
	fmt.Println("✅ 数据库连接成功！")

	// ------------------------------------------------
	// 3. 检查配置数据
	// ------------------------------------------------
	var zones []ZoneRow
	if err := db.Where("is_active = ?", true).Find(&zones).Error; err != nil {
		log.Fatalf("❌ 配送区域查询失败: %v", err)
	}
	if len(zones) == 0 {
		log.Fatal("❌ 没有启用的配送区域，请先在后台配置")
	}
	fmt.Printf("✅ 读取配置成功: 启用区域数 %d\n", len(zones))

	// ------------------------------------------------
	// 4. 向本地服务发起报价请求
	// ------------------------------------------------
	client := resty.New()

	// 设置超时和重试，防止网络波动
	client.SetTimeout(10 * time.Second)
	client.SetRetryCount(3)

	fmt.Println(">>> 正在向本地服务发起报价请求...")

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"country_code": "FR",
			"method_id":    1,
			"items": []map[string]interface{}{
				{
					"product_id":      1,
					"quantity":        1,
					"price_eur_cents": 9900,
					"size_class_code": "small",
				},
			},
		}).
		Post("http://localhost:8080/api/shipping/quote")

	// ------------------------------------------------
	// 5. 结果验证
	// ------------------------------------------------
	if err != nil {
		log.Fatalf("❌ 请求失败 (服务是否已启动?): %v", err)
	}

	switch resp.StatusCode() {
	case 200:
		fmt.Println("🎉🎉🎉 测试成功！全链路已打通！")
		fmt.Printf("报价响应: %s\n", resp.String())
	case 422:
		fmt.Printf("⚠️ 服务通了，但配置不完整 (状态码 %d)\n", resp.StatusCode())
		fmt.Printf("错误信息: %s\n", resp.String())
		fmt.Println("提示: NO_ZONE 是国家没挂到区域；NO_RATE_RULE 是该区域该方式没配费率。")
	default:
		fmt.Printf("⚠️ 请求异常 (状态码 %d): %s\n", resp.StatusCode(), resp.String())
	}
}
