package model

// PanelStatus represents the last alarm status reported by a panel
type PanelStatus string

const (
	// StatusArm means the panel reported an armed state on last contact
	StatusArm PanelStatus = "ARM"

	// StatusDisarm means the panel reported a disarmed state on last contact
	StatusDisarm PanelStatus = "DISARM"
)

// String returns the string representation of PanelStatus
func (ps PanelStatus) String() string {
	return string(ps)
}

// Valid returns true if the status is one of the known panel states
func (ps PanelStatus) Valid() bool {
	return ps == StatusArm || ps == StatusDisarm
}

// IsArmed returns true if the status is the armed state
func (ps PanelStatus) IsArmed() bool {
	return ps == StatusArm
}

// ParseStatus converts a raw bridge value into a status pointer.
// Unknown or empty values map to nil, meaning the panel never connected.
func ParseStatus(raw string) *PanelStatus {
	ps := PanelStatus(raw)
	if !ps.Valid() {
		return nil
	}
	return &ps
}
