package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"maison_shop_v1_202608/internal/service"
)

// CoverageAuditTask 费率覆盖审计任务
// 每天扫一次没有任何启用费率规则的（区域 × 方式）组合并留痕
// 缺口组合下的订单必然报 NO_RATE_RULE，运营要么补规则要么停用方式
type CoverageAuditTask struct {
	ConfigService *service.ShippingConfigService
	Cron          *cron.Cron
}

func NewCoverageAuditTask(configSvc *service.ShippingConfigService) *CoverageAuditTask {
	return &CoverageAuditTask{
		ConfigService: configSvc,
		Cron:          cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务
func (t *CoverageAuditTask) Start() {
	// 每天早上 6 点执行
	_, err := t.Cron.AddFunc("0 0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		t.auditJob(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动费率覆盖审计任务: %v", err)
	}

	t.Cron.Start()
	log.Println("费率覆盖审计任务已启动 (每天06:00执行)")
}

// Stop 停止定时任务
func (t *CoverageAuditTask) Stop() {
	if t.Cron != nil {
		t.Cron.Stop()
	}
}

func (t *CoverageAuditTask) auditJob(ctx context.Context) {
	gaps, err := t.ConfigService.GetCoverageGaps(ctx)
	if err != nil {
		log.Printf("[Cron] 费率覆盖审计失败: %v", err)
		return
	}

	if len(gaps) == 0 {
		log.Println("[Cron] 费率覆盖审计完成，无缺口")
		return
	}

	log.Printf("[Cron] 费率覆盖审计发现 %d 个缺口:", len(gaps))
	for _, gap := range gaps {
		log.Printf("[Cron]   zone=%d method=%d(%s) 无启用费率规则", gap.ZoneID, gap.MethodID, gap.MethodCode)
	}
}
