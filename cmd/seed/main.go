// Command seed wipes the dashboard tables and loads the fixture data from
// configs/seed.yaml. Intended for demo and development databases only.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/premiertex/dyehouse/internal/config"
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type seedFile struct {
	Machines    []seedMachine    `yaml:"machines"`
	Batches     []seedBatch      `yaml:"batches"`
	Schedules   []seedSchedule   `yaml:"schedules"`
	Inventory   []seedInventory  `yaml:"inventory"`
	Inspections []seedInspection `yaml:"inspections"`
}

type seedMachine struct {
	MachineID  string  `yaml:"machineId"`
	Name       string  `yaml:"name"`
	Status     string  `yaml:"status"`
	Party      string  `yaml:"party"`
	Color      string  `yaml:"color"`
	LotNo      string  `yaml:"lotNo"`
	Quantity   string  `yaml:"quantity"`
	Stage      string  `yaml:"stage"`
	Efficiency float64 `yaml:"efficiency"`
	Runtime    string  `yaml:"runtime"`
}

type seedRecipeItem struct {
	Name string `yaml:"name"`
	Qty  string `yaml:"qty"`
}

type seedStage struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
	Temp     string `yaml:"temp"`
}

type seedBatch struct {
	BatchID    string   `yaml:"batchId"`
	Date       string   `yaml:"date"`
	Machine    string   `yaml:"machine"`
	Party      string   `yaml:"party"`
	Color      string   `yaml:"color"`
	LotNo      string   `yaml:"lotNo"`
	Quantity   string   `yaml:"quantity"`
	Duration   string   `yaml:"duration"`
	Status     string   `yaml:"status"`
	Efficiency float64  `yaml:"efficiency"`
	DeltaE     *float64 `yaml:"deltaE"`
	Operator   string   `yaml:"operator"`
	Recipe     struct {
		Dyes      []seedRecipeItem `yaml:"dyes"`
		Chemicals []seedRecipeItem `yaml:"chemicals"`
	} `yaml:"recipe"`
	Stages []seedStage `yaml:"stages"`
}

type seedSchedule struct {
	Date     string `yaml:"date"`
	Time     string `yaml:"time"`
	Machine  string `yaml:"machine"`
	Party    string `yaml:"party"`
	Color    string `yaml:"color"`
	LotNo    string `yaml:"lotNo"`
	Quantity string `yaml:"quantity"`
	Duration string `yaml:"duration"`
	Priority string `yaml:"priority"`
	Status   string `yaml:"status"`
}

type seedInventory struct {
	Name         string  `yaml:"name"`
	Category     string  `yaml:"category"`
	Stock        float64 `yaml:"stock"`
	MinThreshold float64 `yaml:"minThreshold"`
	MaxCapacity  float64 `yaml:"maxCapacity"`
	WeeklyUsage  struct {
		Sun float64 `yaml:"sun"`
		Mon float64 `yaml:"mon"`
		Tue float64 `yaml:"tue"`
		Wed float64 `yaml:"wed"`
		Thu float64 `yaml:"thu"`
		Fri float64 `yaml:"fri"`
	} `yaml:"weeklyUsage"`
}

type seedInspection struct {
	Date   string   `yaml:"date"`
	Color  string   `yaml:"color"`
	Client string   `yaml:"client"`
	LotNo  string   `yaml:"lotNo"`
	DeltaE *float64 `yaml:"deltaE"`
	Status string   `yaml:"status"`
	Notes  string   `yaml:"notes"`
}

func main() {
	seedPath := flag.String("file", "configs/seed.yaml", "seed fixture file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	raw, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := entity.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	// Start clean so the fixture is the whole dataset.
	for _, model := range []interface{}{
		&entity.Alert{}, &entity.Inspection{}, &entity.InventoryItem{},
		&entity.Schedule{}, &entity.Batch{}, &entity.Machine{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	for _, sm := range seed.Machines {
		status := sm.Status
		if status == "" {
			status = entity.MachineIdle
		}
		m := entity.Machine{
			ID:         uuid.New().String(),
			MachineID:  sm.MachineID,
			Name:       sm.Name,
			Status:     status,
			Party:      sm.Party,
			Color:      sm.Color,
			LotNo:      sm.LotNo,
			Quantity:   sm.Quantity,
			Stage:      sm.Stage,
			Efficiency: sm.Efficiency,
			Runtime:    sm.Runtime,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("Failed to seed machine %s: %v", m.MachineID, err)
		}
	}
	log.Printf("Seeded %d machines", len(seed.Machines))

	for _, sb := range seed.Batches {
		status := sb.Status
		if status == "" {
			status = entity.BatchInProgress
		}
		recipe := entity.Recipe{}
		for _, d := range sb.Recipe.Dyes {
			recipe.Dyes = append(recipe.Dyes, entity.RecipeItem{Name: d.Name, Qty: d.Qty})
		}
		for _, ch := range sb.Recipe.Chemicals {
			recipe.Chemicals = append(recipe.Chemicals, entity.RecipeItem{Name: ch.Name, Qty: ch.Qty})
		}
		stages := make(entity.StageList, 0, len(sb.Stages))
		for _, st := range sb.Stages {
			stages = append(stages, entity.Stage{Name: st.Name, Duration: st.Duration, Temp: st.Temp})
		}
		b := entity.Batch{
			ID:         uuid.New().String(),
			BatchID:    sb.BatchID,
			Date:       sb.Date,
			Machine:    sb.Machine,
			Party:      sb.Party,
			Color:      sb.Color,
			LotNo:      sb.LotNo,
			Quantity:   sb.Quantity,
			Duration:   sb.Duration,
			Status:     status,
			Efficiency: sb.Efficiency,
			DeltaE:     sb.DeltaE,
			Operator:   sb.Operator,
			Recipe:     recipe,
			Stages:     stages,
		}
		if err := db.Create(&b).Error; err != nil {
			log.Fatalf("Failed to seed batch %s: %v", b.BatchID, err)
		}
	}
	log.Printf("Seeded %d batches", len(seed.Batches))

	for _, ss := range seed.Schedules {
		priority := ss.Priority
		if priority == "" {
			priority = entity.PriorityMedium
		}
		status := ss.Status
		if status == "" {
			status = entity.ScheduleScheduled
		}
		s := entity.Schedule{
			ID:       uuid.New().String(),
			Date:     ss.Date,
			Time:     ss.Time,
			Machine:  ss.Machine,
			Party:    ss.Party,
			Color:    ss.Color,
			LotNo:    ss.LotNo,
			Quantity: ss.Quantity,
			Duration: ss.Duration,
			Priority: priority,
			Status:   status,
		}
		if err := db.Create(&s).Error; err != nil {
			log.Fatalf("Failed to seed schedule for %s: %v", s.Date, err)
		}
	}
	log.Printf("Seeded %d schedules", len(seed.Schedules))

	for _, si := range seed.Inventory {
		minThreshold := si.MinThreshold
		if minThreshold == 0 {
			minThreshold = 100
		}
		maxCapacity := si.MaxCapacity
		if maxCapacity == 0 {
			maxCapacity = 500
		}
		item := entity.InventoryItem{
			ID:           uuid.New().String(),
			Name:         si.Name,
			Category:     si.Category,
			Stock:        si.Stock,
			MinThreshold: minThreshold,
			MaxCapacity:  maxCapacity,
			WeeklyUsage: entity.WeeklyUsage{
				Sun: si.WeeklyUsage.Sun,
				Mon: si.WeeklyUsage.Mon,
				Tue: si.WeeklyUsage.Tue,
				Wed: si.WeeklyUsage.Wed,
				Thu: si.WeeklyUsage.Thu,
				Fri: si.WeeklyUsage.Fri,
			},
		}
		// Status and stock level derive in the BeforeSave hook.
		if err := db.Create(&item).Error; err != nil {
			log.Fatalf("Failed to seed inventory item %s: %v", item.Name, err)
		}
	}
	log.Printf("Seeded %d inventory items", len(seed.Inventory))

	for _, si := range seed.Inspections {
		status := si.Status
		if status == "" {
			status = entity.InspectionPending
		}
		insp := entity.Inspection{
			ID:     uuid.New().String(),
			Date:   si.Date,
			Color:  si.Color,
			Client: si.Client,
			LotNo:  si.LotNo,
			DeltaE: si.DeltaE,
			Status: status,
			Notes:  si.Notes,
		}
		if err := db.Create(&insp).Error; err != nil {
			log.Fatalf("Failed to seed inspection for lot %s: %v", insp.LotNo, err)
		}
	}
	log.Printf("Seeded %d inspections", len(seed.Inspections))

	log.Println("Seed completed")
}

func openDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
