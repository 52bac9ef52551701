package model

type Company struct {
	CompanyID    ID     `json:"company_id"`
	Name         string `json:"name"`
	LegalName    string `json:"legal_name,omitempty"`
	TaxID        string `json:"tax_id,omitempty"` // NIT
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	CityID       ID     `json:"city_id,omitempty"`
	CurrencyID   ID     `json:"currency_id,omitempty"`
	FiscalRegime ID     `json:"fiscal_regime_id,omitempty"`
	IsActive     bool   `json:"is_active"`
	Audit
}

func (c Company) EntityID() string { return c.CompanyID.String() }

type User struct {
	UserID    ID     `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	RoleID    ID     `json:"role_id,omitempty"`
	CompanyID ID     `json:"company_id,omitempty"`
	IsActive  bool   `json:"is_active"`
	Audit
}

func (u User) EntityID() string { return u.UserID.String() }

type Role struct {
	RoleID      ID       `json:"role_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	IsActive    bool     `json:"is_active"`
	Audit
}

func (r Role) EntityID() string { return r.RoleID.String() }

type Branch struct {
	BranchID  ID     `json:"branch_id"`
	CompanyID ID     `json:"company_id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	Address   string `json:"address,omitempty"`
	CityID    ID     `json:"city_id,omitempty"`
	IsActive  bool   `json:"is_active"`
	Audit
}

func (b Branch) EntityID() string { return b.BranchID.String() }

type Position struct {
	PositionID  ID     `json:"position_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	Audit
}

func (p Position) EntityID() string { return p.PositionID.String() }

type Employee struct {
	EmployeeID     ID     `json:"employee_id"`
	DocumentTypeID ID     `json:"document_type_id,omitempty"`
	DocumentNumber string `json:"document_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name,omitempty"`
	Email          string `json:"email,omitempty"`
	PositionID     ID     `json:"position_id,omitempty"`
	BranchID       ID     `json:"branch_id,omitempty"`
	HireDate       string `json:"hire_date,omitempty"` // YYYY-MM-DD
	IsActive       bool   `json:"is_active"`
	Audit
}

func (e Employee) EntityID() string { return e.EmployeeID.String() }

type Shift struct {
	ShiftID   ID     `json:"shift_id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
	IsActive  bool   `json:"is_active"`
	Audit
}

func (s Shift) EntityID() string { return s.ShiftID.String() }
