package model

type ThirdParty struct {
	ThirdPartyID     ID     `json:"third_party_id"`
	ThirdPartyTypeID ID     `json:"third_party_type_id,omitempty"`
	PersonTypeID     ID     `json:"person_type_id,omitempty"`
	DocumentTypeID   ID     `json:"document_type_id,omitempty"`
	DocumentNumber   string `json:"document_number"`
	BusinessName     string `json:"business_name"`
	TradeName        string `json:"trade_name,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	CityID           ID     `json:"city_id,omitempty"`
	IsActive         bool   `json:"is_active"`
	Audit
}

func (t ThirdParty) EntityID() string { return t.ThirdPartyID.String() }

type ThirdPartyType struct {
	ThirdPartyTypeID ID     `json:"third_party_type_id"`
	Name             string `json:"name"` // customer, supplier, ...
	IsActive         bool   `json:"is_active"`
	Audit
}

func (t ThirdPartyType) EntityID() string { return t.ThirdPartyTypeID.String() }

type Contact struct {
	ContactID    ID     `json:"contact_id"`
	ThirdPartyID ID     `json:"third_party_id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role,omitempty"`
	IsActive     bool   `json:"is_active"`
	Audit
}

func (c Contact) EntityID() string { return c.ContactID.String() }

type Country struct {
	CountryID ID     `json:"country_id"`
	Name      string `json:"name"`
	ISOCode   string `json:"iso_code"`
}

func (c Country) EntityID() string { return c.CountryID.String() }

// State is a first-level administrative division (departamento, provincia).
type State struct {
	StateID   ID     `json:"state_id"`
	CountryID ID     `json:"country_id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
}

func (s State) EntityID() string { return s.StateID.String() }

type City struct {
	CityID   ID     `json:"city_id"`
	StateID  ID     `json:"state_id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"` // DANE code
	IsActive bool   `json:"is_active"`
	Audit
}

func (c City) EntityID() string { return c.CityID.String() }

// Department is an organizational unit of a company.
type Department struct {
	DepartmentID ID     `json:"department_id"`
	Name         string `json:"name"`
	IsActive     bool   `json:"is_active"`
}

func (d Department) EntityID() string { return d.DepartmentID.String() }

type DocumentType struct {
	DocumentTypeID ID     `json:"document_type_id"`
	Code           string `json:"code"` // CC, NIT, CE, ...
	Name           string `json:"name"`
}

func (d DocumentType) EntityID() string { return d.DocumentTypeID.String() }

type EconomicActivity struct {
	EconomicActivityID ID     `json:"economic_activity_id"`
	Code               string `json:"code"` // CIIU
	Description        string `json:"description"`
}

func (e EconomicActivity) EntityID() string { return e.EconomicActivityID.String() }

type FiscalRegime struct {
	FiscalRegimeID ID     `json:"fiscal_regime_id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
}

func (f FiscalRegime) EntityID() string { return f.FiscalRegimeID.String() }

type PersonType struct {
	PersonTypeID ID     `json:"person_type_id"`
	Name         string `json:"name"` // natural, juridica
}

func (p PersonType) EntityID() string { return p.PersonTypeID.String() }
