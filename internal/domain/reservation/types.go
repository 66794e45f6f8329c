package reservation

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses hold one capacity unit of their parking.
var ActiveStatuses = []Status{StatusReserved, StatusPending, StatusPaid}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusPending, StatusPaid, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	switch s {
	case StatusReserved, StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusReserved, nil
	}
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func ActiveStatusStrings() []string {
	out := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		out[i] = s.String()
	}
	return out
}

// SlotEffect tells the caller what a transition does to the parking counter.
type SlotEffect int

const (
	SlotKeep SlotEffect = iota
	SlotAcquire
	SlotRelease
)

func slotEffect(from, to Status) SlotEffect {
	switch {
	case !from.IsActive() && to.IsActive():
		return SlotAcquire
	case from.IsActive() && !to.IsActive():
		return SlotRelease
	default:
		return SlotKeep
	}
}

// Change describes the side effects a caller must apply after a transition.
type Change struct {
	Slot         SlotEffect
	CheckOverlap bool
}
