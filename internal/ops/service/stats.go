package service

import (
	"math"

	"github.com/premiertex/dyehouse/internal/ops/entity"
	"github.com/premiertex/dyehouse/internal/ops/quantity"
)

// The dashboard stats are pure functions over a full collection snapshot,
// recomputed on every request. Record counts are small enough that a plain
// scan is fine; nothing here is cached or maintained incrementally.

// BatchStats summarizes the batch history for the dashboard header.
type BatchStats struct {
	Total         int     `json:"total"`
	Completed     int     `json:"completed"`
	Rejected      int     `json:"rejected"`
	InProgress    int     `json:"inProgress"`
	AvgEfficiency int     `json:"avgEfficiency"`
	TotalQuantity float64 `json:"totalQuantity"`
}

// ComputeBatchStats scans the batch collection. Average efficiency counts
// completed batches only and is 0 when there are none.
func ComputeBatchStats(batches []entity.Batch) BatchStats {
	stats := BatchStats{Total: len(batches)}
	var effSum float64
	for _, b := range batches {
		switch b.Status {
		case entity.BatchCompleted:
			stats.Completed++
			effSum += b.Efficiency
		case entity.BatchRejected:
			stats.Rejected++
		case entity.BatchInProgress:
			stats.InProgress++
		}
		stats.TotalQuantity += quantity.Magnitude(b.Quantity)
	}
	if stats.Completed > 0 {
		stats.AvgEfficiency = int(math.Round(effSum / float64(stats.Completed)))
	}
	return stats
}

// MachineStats summarizes the machine floor.
type MachineStats struct {
	Total           int     `json:"total"`
	Running         int     `json:"running"`
	Idle            int     `json:"idle"`
	Maintenance     int     `json:"maintenance"`
	AvgEfficiency   int     `json:"avgEfficiency"`
	TotalProduction float64 `json:"totalProduction"`
}

// ComputeMachineStats scans the machine collection. Efficiency and production
// figures cover running machines only.
func ComputeMachineStats(machines []entity.Machine) MachineStats {
	stats := MachineStats{Total: len(machines)}
	var effSum float64
	for _, m := range machines {
		switch m.Status {
		case entity.MachineRunning:
			stats.Running++
			effSum += m.Efficiency
			stats.TotalProduction += quantity.Magnitude(m.Quantity)
		case entity.MachineIdle:
			stats.Idle++
		case entity.MachineMaintenance:
			stats.Maintenance++
		}
	}
	if stats.Running > 0 {
		stats.AvgEfficiency = int(math.Round(effSum / float64(stats.Running)))
	}
	return stats
}

// InspectionStats summarizes color-inspection outcomes.
type InspectionStats struct {
	Total        int     `json:"total"`
	Approved     int     `json:"approved"`
	Pending      int     `json:"pending"`
	Rejected     int     `json:"rejected"`
	ApprovalRate int     `json:"approvalRate"`
	AvgDeltaE    float64 `json:"avgDeltaE"`
}

// ComputeInspectionStats scans the inspection collection. The ΔE average
// covers only inspections that have a measurement, rounded to two decimals.
// Both rate and average report 0 rather than dividing by zero.
func ComputeInspectionStats(inspections []entity.Inspection) InspectionStats {
	stats := InspectionStats{Total: len(inspections)}
	var deltaSum float64
	var deltaCount int
	for _, i := range inspections {
		switch i.Status {
		case entity.InspectionApproved:
			stats.Approved++
		case entity.InspectionPending:
			stats.Pending++
		case entity.InspectionRejected:
			stats.Rejected++
		}
		if i.DeltaE != nil {
			deltaSum += *i.DeltaE
			deltaCount++
		}
	}
	if stats.Total > 0 {
		stats.ApprovalRate = int(math.Round(float64(stats.Approved) / float64(stats.Total) * 100))
	}
	if deltaCount > 0 {
		stats.AvgDeltaE = math.Round(deltaSum/float64(deltaCount)*100) / 100
	}
	return stats
}
