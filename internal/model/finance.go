package model

type Bank struct {
	BankID   ID     `json:"bank_id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	SwiftBIC string `json:"swift_bic,omitempty"`
	IsActive bool   `json:"is_active"`
	Audit
}

func (b Bank) EntityID() string { return b.BankID.String() }

type BankAccount struct {
	BankAccountID ID     `json:"bank_account_id"`
	BankID        ID     `json:"bank_id"`
	CompanyID     ID     `json:"company_id,omitempty"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type,omitempty"` // savings, checking
	CurrencyID    ID     `json:"currency_id,omitempty"`
	IsActive      bool   `json:"is_active"`
	Audit
}

func (b BankAccount) EntityID() string { return b.BankAccountID.String() }

type Currency struct {
	CurrencyID    ID     `json:"currency_id"`
	Code          string `json:"code"` // ISO 4217
	Name          string `json:"name"`
	Symbol        string `json:"symbol,omitempty"`
	DecimalPlaces int    `json:"decimal_places"`
	IsActive      bool   `json:"is_active"`
	Audit
}

func (c Currency) EntityID() string { return c.CurrencyID.String() }

type ExchangeRate struct {
	ExchangeRateID ID      `json:"exchange_rate_id"`
	FromCurrencyID ID      `json:"from_currency_id"`
	ToCurrencyID   ID      `json:"to_currency_id"`
	Rate           float64 `json:"rate"`
	EffectiveDate  string  `json:"effective_date"`
	Audit
}

func (e ExchangeRate) EntityID() string { return e.ExchangeRateID.String() }

type PaymentTerm struct {
	PaymentTermID ID     `json:"payment_term_id"`
	Name          string `json:"name"`
	Days          int    `json:"days"`
	IsActive      bool   `json:"is_active"`
	Audit
}

func (p PaymentTerm) EntityID() string { return p.PaymentTermID.String() }

type PaymentMethod struct {
	PaymentMethodID ID     `json:"payment_method_id"`
	Name            string `json:"name"`
	Code            string `json:"code,omitempty"`
	IsActive        bool   `json:"is_active"`
	Audit
}

func (p PaymentMethod) EntityID() string { return p.PaymentMethodID.String() }

type TaxType struct {
	TaxTypeID ID      `json:"tax_type_id"`
	Name      string  `json:"name"`
	Code      string  `json:"code,omitempty"`
	Rate      float64 `json:"rate"` // percent
	IsActive  bool    `json:"is_active"`
	Audit
}

func (t TaxType) EntityID() string { return t.TaxTypeID.String() }

type CostCenter struct {
	CostCenterID ID     `json:"cost_center_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	ParentID     ID     `json:"parent_id,omitempty"`
	IsActive     bool   `json:"is_active"`
	Audit
}

func (c CostCenter) EntityID() string { return c.CostCenterID.String() }
