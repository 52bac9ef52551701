package model

type Machine struct {
	MachineID    ID     `json:"machine_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	WorkCenterID ID     `json:"work_center_id,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	IsActive     bool   `json:"is_active"`
	Audit
}

func (m Machine) EntityID() string { return m.MachineID.String() }

type WorkCenter struct {
	WorkCenterID ID     `json:"work_center_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	BranchID     ID     `json:"branch_id,omitempty"`
	CostCenterID ID     `json:"cost_center_id,omitempty"`
	IsActive     bool   `json:"is_active"`
	Audit
}

func (w WorkCenter) EntityID() string { return w.WorkCenterID.String() }

// Downtime is a period a machine was stopped.
type Downtime struct {
	DowntimeID       ID     `json:"downtime_id"`
	MachineID        ID     `json:"machine_id"`
	DowntimeReasonID ID     `json:"downtime_reason_id"`
	ShiftID          ID     `json:"shift_id,omitempty"`
	StartedAt        string `json:"started_at"`
	EndedAt          string `json:"ended_at,omitempty"` // empty while the machine is still down
	Minutes          int    `json:"minutes,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Audit
}

func (d Downtime) EntityID() string { return d.DowntimeID.String() }

type DowntimeReason struct {
	DowntimeReasonID ID     `json:"downtime_reason_id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Planned          bool   `json:"planned"`
	IsActive         bool   `json:"is_active"`
	Audit
}

func (d DowntimeReason) EntityID() string { return d.DowntimeReasonID.String() }
