package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wealthtracker.com/dto"
	"wealthtracker.com/types"
)

type NetWorthController struct {
	db *gorm.DB
}

func NewNetWorthController(database *gorm.DB) *NetWorthController {
	return &NetWorthController{db: database}
}

func (nc *NetWorthController) totals() (dto.NetWorthResponse, error) {
	var totalAssets, totalProperties float64

	err := nc.db.Raw("SELECT COALESCE(SUM(current_value), 0) FROM assets").Scan(&totalAssets).Error
	if err != nil {
		return dto.NetWorthResponse{}, err
	}
	err = nc.db.Raw("SELECT COALESCE(SUM(current_value), 0) FROM properties").Scan(&totalProperties).Error
	if err != nil {
		return dto.NetWorthResponse{}, err
	}

	return dto.NetWorthResponse{
		TotalAssets:     totalAssets,
		TotalProperties: totalProperties,
		NetWorth:        totalAssets + totalProperties,
	}, nil
}

// GetNetWorth godoc
//
//	@Summary		Current net worth
//	@Description	Sums the stored current values of all assets and properties.
//	@Tags			NetWorth
//	@Produce		json
//	@Success		200	{object}	types.Response{data=dto.NetWorthResponse}
//	@Failure		500	{object}	types.Response
//	@Router			/net-worth [get]
func (nc *NetWorthController) GetNetWorth(c *fiber.Ctx) error {
	totals, err := nc.totals()
	if err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to compute net worth: " + err.Error(),
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    totals,
	})
}

// GetNetWorthHistory godoc
//
//	@Summary		Daily net worth snapshots
//	@Tags			NetWorth
//	@Produce		json
//	@Success		200	{object}	types.Response{data=[]dto.NetWorthSnapshotResponse}
//	@Failure		500	{object}	types.Response
//	@Router			/net-worth/history [get]
func (nc *NetWorthController) GetNetWorthHistory(c *fiber.Ctx) error {
	var snapshots []types.NetWorthSnapshot
	if err := nc.db.Order("snapshot_date").Find(&snapshots).Error; err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to fetch snapshots: " + err.Error(),
		})
	}

	results := make([]dto.NetWorthSnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		results = append(results, dto.NetWorthSnapshotResponse{
			SnapshotDate:    snapshot.SnapshotDate.Format("2006-01-02"),
			TotalAssets:     snapshot.TotalAssets,
			TotalProperties: snapshot.TotalProperties,
			NetWorth:        snapshot.NetWorth,
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    results,
	})
}

// SnapshotNetWorth writes one snapshot row per day; reruns on the same day
// are skipped.
func (nc *NetWorthController) SnapshotNetWorth() error {
	today := time.Now().Truncate(24 * time.Hour)

	var existing types.NetWorthSnapshot
	err := nc.db.Where("snapshot_date = ?", today).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	totals, err := nc.totals()
	if err != nil {
		return err
	}

	snapshot := types.NetWorthSnapshot{
		SnapshotDate:    today,
		TotalAssets:     totals.TotalAssets,
		TotalProperties: totals.TotalProperties,
		NetWorth:        totals.NetWorth,
	}
	return nc.db.Create(&snapshot).Error
}

func RunSnapshotCronJob(nc *NetWorthController) {
	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(1).Day().At("23:59").Do(func() {
		if err := nc.SnapshotNetWorth(); err != nil {
			log.Printf("Error writing net worth snapshot: %v", err)
		} else {
			log.Println("Net worth snapshot completed successfully.")
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule net worth snapshot: %v", err)
	}

	go scheduler.StartBlocking()
}

func InitNetWorthRoutes(api fiber.Router, nc *NetWorthController) {
	api.Get("/net-worth", nc.GetNetWorth)
	api.Get("/net-worth/history", nc.GetNetWorthHistory)
}
