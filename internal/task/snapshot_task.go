package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"maison_shop_v1_202608/internal/service"
)

// SnapshotTask 配置快照刷新任务
// 报价热路径只读内存快照，快照由这里周期性从库里整体重载
// 后台改完配置会直接失效缓存，这个任务兜底多实例部署时的同步
type SnapshotTask struct {
	RateService *service.RateService
	Cron        *cron.Cron
}

func NewSnapshotTask(rateSvc *service.RateService) *SnapshotTask {
	return &SnapshotTask{
		RateService: rateSvc,
		Cron:        cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *SnapshotTask) Start() {
	// 首次执行，服务启动就有快照可用
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		log.Println("[Task] 服务启动，正在加载运费配置快照...")
		t.refreshJob(ctx)
	}()

	// 每 2 分钟刷新一次
	_, err := t.Cron.AddFunc("0 0/2 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		t.refreshJob(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动配置快照定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("运费配置快照刷新任务已启动 (每2分钟刷新一次)")
}

// Stop 停止定时任务
func (t *SnapshotTask) Stop() {
	if t.Cron != nil {
		t.Cron.Stop()
	}
}

func (t *SnapshotTask) refreshJob(ctx context.Context) {
	snap, err := t.RateService.Refresh(ctx)
	if err != nil {
		log.Printf("[Cron] 运费配置快照刷新失败: %v", err)
		return
	}
	log.Printf("[Cron] 运费配置快照已刷新: zones=%d methods=%d rules=%d",
		len(snap.Zones), len(snap.Methods), len(snap.RateRules))
}
