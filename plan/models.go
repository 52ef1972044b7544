package plan

import (
	"fmt"
	"math"
)

// TimeWindow is an interval during which an order may be served or a
// driver is unavailable. The vendor enforces no ordering between the two
// endpoints, so neither do we.
type TimeWindow struct {
	From Timestamp
	To   Timestamp
}

func (w *TimeWindow) Validate() error {
	const entity = "TimeWindow"
	if w.From.IsZero() {
		return typeError(entity, "From", "must be a set timestamp")
	}
	if w.To.IsZero() {
		return typeError(entity, "To", "must be a set timestamp")
	}
	return nil
}

func (w *TimeWindow) Wire() (any, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return map[string]any{
		"timeFrom": w.From,
		"timeTo":   w.To,
	}, nil
}

// Break is a driver's break window within a work shift: it must start
// somewhere between EarliestStart and LatestStart and lasts Duration
// minutes.
type Break struct {
	EarliestStart Timestamp
	LatestStart   Timestamp
	Duration      int // minutes
}

func (b *Break) Validate() error {
	const entity = "Break"
	if b.EarliestStart.IsZero() {
		return typeError(entity, "EarliestStart", "must be a set timestamp")
	}
	if b.LatestStart.IsZero() {
		return typeError(entity, "LatestStart", "must be a set timestamp")
	}
	if b.Duration < 0 {
		return valueError(entity, "Duration", "cannot be negative")
	}
	return nil
}

func (b *Break) Wire() (any, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return map[string]any{
		"breakStartFrom": b.EarliestStart,
		"breakStartTo":   b.LatestStart,
		"breakDuration":  b.Duration,
	}, nil
}

// WorkShift is a driver's available working interval with optional
// overtime allowance, break and unavailable windows.
type WorkShift struct {
	Start            Timestamp
	End              Timestamp
	AllowedOvertime  int // minutes, omitted from the wire when zero
	Break            *Break
	UnavailableTimes []TimeWindow
}

func (s *WorkShift) Validate() error {
	const entity = "WorkShift"
	if s.Start.IsZero() {
		return typeError(entity, "Start", "must be a set timestamp")
	}
	if s.End.IsZero() {
		return typeError(entity, "End", "must be a set timestamp")
	}
	if s.AllowedOvertime < 0 {
		return valueError(entity, "AllowedOvertime", "cannot be negative")
	}
	if s.Break != nil {
		if err := s.Break.Validate(); err != nil {
			return err
		}
	}
	for i := range s.UnavailableTimes {
		if err := s.UnavailableTimes[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *WorkShift) Wire() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	d := map[string]any{
		"workTimeFrom": s.Start,
		"workTimeTo":   s.End,
	}
	if s.AllowedOvertime > 0 {
		d["allowedOvertime"] = s.AllowedOvertime
	}
	if s.Break != nil {
		bw, err := s.Break.Wire()
		if err != nil {
			return nil, err
		}
		d["break"] = bw
	}
	if len(s.UnavailableTimes) > 0 {
		uts := make([]any, 0, len(s.UnavailableTimes))
		for i := range s.UnavailableTimes {
			utw, err := s.UnavailableTimes[i].Wire()
			if err != nil {
				return nil, err
			}
			uts = append(uts, utw)
		}
		d["unavailableTimes"] = uts
	}
	return d, nil
}

// LatLng is a geographic point.
type LatLng struct {
	Lat float64
	Lng float64
}

// ServiceRegionPolygon is a polygonal geographic area a driver is
// restricted to. It wires as a bare array of [lat, lng] pairs.
type ServiceRegionPolygon struct {
	Points []LatLng
}

func (p *ServiceRegionPolygon) Validate() error {
	const entity = "ServiceRegionPolygon"
	if len(p.Points) < 3 {
		return valueError(entity, "Points", "must contain at least 3 lat/lng pairs")
	}
	for i, pt := range p.Points {
		if !finite(pt.Lat) || pt.Lat < -90 || pt.Lat > 90 {
			return valueError(entity, "Points",
				fmt.Sprintf("pair %d: latitude %v out of range [-90, 90]", i, pt.Lat))
		}
		if !finite(pt.Lng) || pt.Lng < -180 || pt.Lng > 180 {
			return valueError(entity, "Points",
				fmt.Sprintf("pair %d: longitude %v out of range [-180, 180]", i, pt.Lng))
		}
	}
	return nil
}

func (p *ServiceRegionPolygon) Wire() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	pairs := make([][]float64, 0, len(p.Points))
	for _, pt := range p.Points {
		pairs = append(pairs, []float64{pt.Lat, pt.Lng})
	}
	return pairs, nil
}

// DriverRef identifies a driver either by bare id or by the Driver value
// itself. The wire form always carries the resolved id string.
type DriverRef struct {
	id     string
	driver *Driver
}

// ByID references a driver by its id.
func ByID(id string) DriverRef {
	return DriverRef{id: id}
}

// ByDriver references a driver by the entity itself.
func ByDriver(d *Driver) DriverRef {
	return DriverRef{driver: d}
}

// ID resolves the reference to the driver's id string.
func (r DriverRef) ID() string {
	if r.driver != nil {
		return r.driver.ID
	}
	return r.id
}

// IsZero reports whether the reference is unset.
func (r DriverRef) IsZero() bool {
	return r.driver == nil && r.id == ""
}

// SchedulingInfo is a pre-existing, possibly locked, assignment of an
// order to a driver at a time.
type SchedulingInfo struct {
	ScheduledAt     Timestamp
	ScheduledDriver DriverRef
	Locked          bool
}

func (s *SchedulingInfo) Validate() error {
	const entity = "SchedulingInfo"
	if s.ScheduledAt.IsZero() {
		return typeError(entity, "ScheduledAt", "must be a set timestamp")
	}
	if s.ScheduledDriver.IsZero() {
		return typeError(entity, "ScheduledDriver", "must reference a driver by id or value")
	}
	if s.ScheduledDriver.ID() == "" {
		return valueError(entity, "ScheduledDriver", "references a driver with an empty id")
	}
	return nil
}

func (s *SchedulingInfo) Wire() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return map[string]any{
		"scheduledAt":     s.ScheduledAt,
		"scheduledDriver": s.ScheduledDriver.ID(),
		"locked":          s.Locked,
	}, nil
}

// finite reports whether f is a usable coordinate or factor value.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
