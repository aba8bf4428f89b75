package entity

import "time"

// Machine status values
const (
	MachineRunning     = "running"
	MachineIdle        = "idle"
	MachineMaintenance = "maintenance"
)

// DefaultStage is applied when a job is assigned without an explicit stage.
const DefaultStage = "TD Load"

// Machine is a dyeing machine and its current job. Job fields are blank and
// efficiency is zero while the machine is idle or under maintenance.
type Machine struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	MachineID  string     `json:"machineId" gorm:"size:32;not null;uniqueIndex"`
	Name       string     `json:"name" gorm:"size:128;not null"`
	Status     string     `json:"status" gorm:"size:16;not null;default:idle"`
	Party      string     `json:"party" gorm:"size:128"`
	Color      string     `json:"color" gorm:"size:64"`
	LotNo      string     `json:"lotNo" gorm:"size:64"`
	Quantity   string     `json:"quantity" gorm:"size:32"`
	Stage      string     `json:"stage" gorm:"size:64"`
	Efficiency float64    `json:"efficiency" gorm:"not null;default:0"`
	Runtime    string     `json:"runtime" gorm:"size:64"`
	StartTime  *time.Time `json:"startTime"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (Machine) TableName() string {
	return "machines"
}

// AssignJob puts the machine into the running state with a fresh job.
// Efficiency starts at zero until the first reading comes in.
func (m *Machine) AssignJob(party, color, lotNo, quantity, stage string, now time.Time) {
	if stage == "" {
		stage = DefaultStage
	}
	m.Status = MachineRunning
	m.Party = party
	m.Color = color
	m.LotNo = lotNo
	m.Quantity = quantity
	m.Stage = stage
	m.Efficiency = 0
	m.Runtime = "Just started"
	m.StartTime = &now
}

// CompleteJob returns the machine to idle and clears all job fields.
// Completing an idle machine just re-applies the blank state.
func (m *Machine) CompleteJob() {
	m.Status = MachineIdle
	m.Party = ""
	m.Color = ""
	m.LotNo = ""
	m.Quantity = ""
	m.Stage = ""
	m.Efficiency = 0
	m.Runtime = ""
	m.StartTime = nil
}
