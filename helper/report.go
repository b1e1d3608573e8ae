package helper

import (
	"capsule_store/config"
	"capsule_store/utils"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var digestScheduler gocron.Scheduler
var statsScheduler *cron.Cron

// SendDailyDigest mails the day's sales summary to the store operator
func SendDailyDigest() {
	log.Println("[CRON] SendDailyDigest triggered")

	to := config.Config("ADMIN_EMAIL")
	if to == "" {
		log.Println("ADMIN_EMAIL not configured, skipping daily digest")
		return
	}

	stats := FetchTodayStats()
	loc := time.FixedZone("BST", 6*3600)
	utils.SendDailyDigestEmail(to, utils.DailyDigestData{
		Date:          time.Now().In(loc).Format("02/01/2006"),
		TotalOrders:   stats.TotalOrders,
		TotalRevenue:  stats.TotalRevenue,
		BkashOrders:   stats.BkashOrders,
		CodOrders:     stats.CodOrders,
		PendingOrders: stats.PendingOrders,
		UnpaidBkash:   stats.UnpaidBkash,
	})
}

// StartDailyDigestScheduler runs the digest every day at 21:00 Dhaka time
func StartDailyDigestScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("BST", 6*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	digestScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(21, 0, 0),
			),
		),
		gocron.NewTask(SendDailyDigest),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Daily digest scheduler started (21:00 BST)")
}

func StopDailyDigestScheduler() {
	if digestScheduler != nil {
		_ = digestScheduler.Shutdown()
	}
}

// StartStatsScheduler keeps the cached dashboard snapshot warm
func StartStatsScheduler() {
	statsScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := statsScheduler.AddFunc("*/5 * * * *", func() {
		RefreshTodayStatsCache()
	})
	if err != nil {
		log.Printf("Failed to start stats scheduler: %v", err)
		return
	}

	statsScheduler.Start()
	log.Println("Stats cache scheduler started (every 5 minutes)")
}

func StopStatsScheduler() {
	if statsScheduler != nil {
		statsScheduler.Stop()
	}
}
