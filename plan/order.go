package plan

// Priority is an order's planning priority.
type Priority string

// Order priorities, from lowest to critical.
const (
	PriorityLow      Priority = "L"
	PriorityMedium   Priority = "M"
	PriorityHigh     Priority = "H"
	PriorityCritical Priority = "C"
)

// Order is a delivery or service task with a location, a service
// duration in minutes, and optional time and assignment constraints.
type Order struct {
	ID             string
	Lat            float64
	Lng            float64
	Duration       int // minutes on site
	TimeWindow     *TimeWindow
	Priority       Priority
	Skills         []string
	AssignedTo     DriverRef
	SchedulingInfo *SchedulingInfo
}

// NewOrder returns an order with the vendor's default priority (medium).
func NewOrder(id string, lat, lng float64, duration int) *Order {
	return &Order{
		ID:       id,
		Lat:      lat,
		Lng:      lng,
		Duration: duration,
		Priority: PriorityMedium,
	}
}

func (o *Order) Validate() error {
	const entity = "Order"
	if o.ID == "" {
		return valueError(entity, "ID", "cannot be empty")
	}
	if !finite(o.Lat) {
		return valueError(entity, "Lat", "must be a finite number")
	}
	if !finite(o.Lng) {
		return valueError(entity, "Lng", "must be a finite number")
	}
	if o.Duration < 0 {
		return valueError(entity, "Duration", "cannot be negative")
	}
	if o.TimeWindow != nil {
		if err := o.TimeWindow.Validate(); err != nil {
			return err
		}
	}
	switch o.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
	default:
		return valueError(entity, "Priority", "must be one of ('L', 'M', 'H', 'C')")
	}
	if !o.AssignedTo.IsZero() && o.AssignedTo.ID() == "" {
		return valueError(entity, "AssignedTo", "references a driver with an empty id")
	}
	if o.SchedulingInfo != nil {
		if err := o.SchedulingInfo.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) Wire() (any, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	d := map[string]any{
		"id":       o.ID,
		"lat":      o.Lat,
		"lon":      o.Lng,
		"duration": o.Duration,
		"priority": string(o.Priority),
	}
	if o.TimeWindow != nil {
		tw, err := o.TimeWindow.Wire()
		if err != nil {
			return nil, err
		}
		d["tw"] = tw
	}
	if len(o.Skills) > 0 {
		d["skills"] = o.Skills
	}
	if !o.AssignedTo.IsZero() {
		d["assignedTo"] = o.AssignedTo.ID()
	}
	if o.SchedulingInfo != nil {
		si, err := o.SchedulingInfo.Wire()
		if err != nil {
			return nil, err
		}
		d["schedulingInfo"] = si
	}
	return d, nil
}
