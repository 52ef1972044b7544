package plan

import "github.com/shopspring/decimal"

// Driver is a vehicle or worker resource with shifts, skills and
// optional cost and service-area constraints.
type Driver struct {
	ID         string
	StartLat   float64
	StartLng   float64
	EndLat     float64
	EndLng     float64
	WorkShifts []WorkShift
	Skills     []string

	// SpeedFactor scales the vendor's travel time estimates.
	// Omitted from the wire when zero.
	SpeedFactor float64

	ServiceRegions []ServiceRegionPolygon

	// Cost fields are money amounts, kept as decimals until encoding.
	CostPerHour            decimal.NullDecimal
	CostPerHourForOvertime decimal.NullDecimal
	CostPerKm              decimal.NullDecimal
	FixedCost              decimal.NullDecimal
}

// NewDriver returns a driver with its start and end locations set.
// Work shifts must be appended before the driver validates.
func NewDriver(id string, startLat, startLng, endLat, endLng float64) *Driver {
	return &Driver{
		ID:       id,
		StartLat: startLat,
		StartLng: startLng,
		EndLat:   endLat,
		EndLng:   endLng,
	}
}

func (d *Driver) Validate() error {
	const entity = "Driver"
	if d.ID == "" {
		return valueError(entity, "ID", "cannot be empty")
	}
	if !finite(d.StartLat) {
		return valueError(entity, "StartLat", "must be a finite number")
	}
	if !finite(d.StartLng) {
		return valueError(entity, "StartLng", "must be a finite number")
	}
	if !finite(d.EndLat) {
		return valueError(entity, "EndLat", "must be a finite number")
	}
	if !finite(d.EndLng) {
		return valueError(entity, "EndLng", "must be a finite number")
	}
	if len(d.WorkShifts) == 0 {
		return valueError(entity, "WorkShifts", "must contain at least 1 element")
	}
	for i := range d.WorkShifts {
		if err := d.WorkShifts[i].Validate(); err != nil {
			return err
		}
	}
	if d.SpeedFactor != 0 && (!finite(d.SpeedFactor) || d.SpeedFactor < 0) {
		return valueError(entity, "SpeedFactor", "must be a positive number")
	}
	for i := range d.ServiceRegions {
		if err := d.ServiceRegions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) Wire() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	shifts := make([]any, 0, len(d.WorkShifts))
	for i := range d.WorkShifts {
		sw, err := d.WorkShifts[i].Wire()
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sw)
	}
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}
	m := map[string]any{
		"id":         d.ID,
		"startLat":   d.StartLat,
		"startLon":   d.StartLng,
		"endLat":     d.EndLat,
		"endLon":     d.EndLng,
		"workShifts": shifts,
		"skills":     skills,
	}
	if d.SpeedFactor != 0 {
		m["speedFactor"] = d.SpeedFactor
	}
	if len(d.ServiceRegions) > 0 {
		regions := make([]any, 0, len(d.ServiceRegions))
		for i := range d.ServiceRegions {
			rw, err := d.ServiceRegions[i].Wire()
			if err != nil {
				return nil, err
			}
			regions = append(regions, rw)
		}
		m["serviceRegions"] = regions
	}
	if d.CostPerHour.Valid {
		m["costPerHour"] = d.CostPerHour.Decimal
	}
	if d.CostPerHourForOvertime.Valid {
		m["costPerHourForOvertime"] = d.CostPerHourForOvertime.Decimal
	}
	if d.CostPerKm.Valid {
		m["costPerKm"] = d.CostPerKm.Decimal
	}
	if d.FixedCost.Valid {
		m["fixedCost"] = d.FixedCost.Decimal
	}
	return m, nil
}

// Cost wraps a decimal as a set optional cost amount.
func Cost(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
