// Package erp binds every ERP master-data entity to its REST resource.
package erp

import (
	"fmt"

	"erp-admin/internal/actions"
	"erp-admin/internal/model"
	"erp-admin/pkg/apiclient"
)

// Catalog holds the generated actions of every entity.
type Catalog struct {
	Companies          *actions.Paginated[model.Company]
	Users              *actions.Paginated[model.User]
	Roles              *actions.Paginated[model.Role]
	Branches           *actions.Paginated[model.Branch]
	Banks              *actions.Paginated[model.Bank]
	BankAccounts       *actions.Paginated[model.BankAccount]
	Currencies         *actions.Paginated[model.Currency]
	ExchangeRates      *actions.Paginated[model.ExchangeRate]
	PaymentTerms       *actions.Paginated[model.PaymentTerm]
	PaymentMethods     *actions.Paginated[model.PaymentMethod]
	TaxTypes           *actions.Paginated[model.TaxType]
	CostCenters        *actions.Paginated[model.CostCenter]
	ThirdParties       *actions.Paginated[model.ThirdParty]
	ThirdPartyTypes    *actions.Paginated[model.ThirdPartyType]
	Contacts           *actions.Paginated[model.Contact]
	Cities             *actions.Paginated[model.City]
	Lots               *actions.Paginated[model.Lot]
	Products           *actions.Paginated[model.Product]
	ProductCategories  *actions.Paginated[model.ProductCategory]
	Brands             *actions.Paginated[model.Brand]
	UnitsOfMeasure     *actions.Paginated[model.UnitOfMeasure]
	Warehouses         *actions.Paginated[model.Warehouse]
	WarehouseLocations *actions.Paginated[model.WarehouseLocation]
	Machines           *actions.Paginated[model.Machine]
	WorkCenters        *actions.Paginated[model.WorkCenter]
	Downtime           *actions.Paginated[model.Downtime]
	DowntimeReasons    *actions.Paginated[model.DowntimeReason]
	Shifts             *actions.Paginated[model.Shift]
	Employees          *actions.Paginated[model.Employee]
	Positions          *actions.Paginated[model.Position]

	Countries          *actions.List[model.Country]
	States             *actions.List[model.State]
	Departments        *actions.List[model.Department]
	DocumentTypes      *actions.List[model.DocumentType]
	EconomicActivities *actions.List[model.EconomicActivity]
	FiscalRegimes      *actions.List[model.FiscalRegime]
	PersonTypes        *actions.List[model.PersonType]
	LotStatuses        *actions.List[model.LotStatus]

	search map[string]actions.SearchFunc
}

// NewCatalog generates the actions of every entity against r.
func NewCatalog(r apiclient.Requester) (*Catalog, error) {
	c := &Catalog{
		Companies:          actions.NewPaginated[model.Company](r, Path(KeyCompanies)),
		Users:              actions.NewPaginated[model.User](r, Path(KeyUsers)),
		Roles:              actions.NewPaginated[model.Role](r, Path(KeyRoles)),
		Branches:           actions.NewPaginated[model.Branch](r, Path(KeyBranches)),
		Banks:              actions.NewPaginated[model.Bank](r, Path(KeyBanks)),
		BankAccounts:       actions.NewPaginated[model.BankAccount](r, Path(KeyBankAccounts)),
		Currencies:         actions.NewPaginated[model.Currency](r, Path(KeyCurrencies)),
		ExchangeRates:      actions.NewPaginated[model.ExchangeRate](r, Path(KeyExchangeRates)),
		PaymentTerms:       actions.NewPaginated[model.PaymentTerm](r, Path(KeyPaymentTerms)),
		PaymentMethods:     actions.NewPaginated[model.PaymentMethod](r, Path(KeyPaymentMethods)),
		TaxTypes:           actions.NewPaginated[model.TaxType](r, Path(KeyTaxTypes)),
		CostCenters:        actions.NewPaginated[model.CostCenter](r, Path(KeyCostCenters)),
		ThirdParties:       actions.NewPaginated[model.ThirdParty](r, Path(KeyThirdParties)),
		ThirdPartyTypes:    actions.NewPaginated[model.ThirdPartyType](r, Path(KeyThirdPartyTypes)),
		Contacts:           actions.NewPaginated[model.Contact](r, Path(KeyContacts)),
		Cities:             actions.NewPaginated[model.City](r, Path(KeyCities)),
		Lots:               actions.NewPaginated[model.Lot](r, Path(KeyLots)),
		Products:           actions.NewPaginated[model.Product](r, Path(KeyProducts)),
		ProductCategories:  actions.NewPaginated[model.ProductCategory](r, Path(KeyProductCategories)),
		Brands:             actions.NewPaginated[model.Brand](r, Path(KeyBrands)),
		UnitsOfMeasure:     actions.NewPaginated[model.UnitOfMeasure](r, Path(KeyUnitsOfMeasure)),
		Warehouses:         actions.NewPaginated[model.Warehouse](r, Path(KeyWarehouses)),
		WarehouseLocations: actions.NewPaginated[model.WarehouseLocation](r, Path(KeyWarehouseLocations)),
		Machines:           actions.NewPaginated[model.Machine](r, Path(KeyMachines)),
		WorkCenters:        actions.NewPaginated[model.WorkCenter](r, Path(KeyWorkCenters)),
		Downtime:           actions.NewPaginated[model.Downtime](r, Path(KeyDowntime)),
		DowntimeReasons:    actions.NewPaginated[model.DowntimeReason](r, Path(KeyDowntimeReasons)),
		Shifts:             actions.NewPaginated[model.Shift](r, Path(KeyShifts)),
		Employees:          actions.NewPaginated[model.Employee](r, Path(KeyEmployees)),
		Positions:          actions.NewPaginated[model.Position](r, Path(KeyPositions)),

		Countries:          actions.NewList[model.Country](r, Path(KeyCountries)),
		States:             actions.NewList[model.State](r, Path(KeyStates)),
		Departments:        actions.NewList[model.Department](r, Path(KeyDepartments)),
		DocumentTypes:      actions.NewList[model.DocumentType](r, Path(KeyDocumentTypes)),
		EconomicActivities: actions.NewList[model.EconomicActivity](r, Path(KeyEconomicActivities)),
		FiscalRegimes:      actions.NewList[model.FiscalRegime](r, Path(KeyFiscalRegimes)),
		PersonTypes:        actions.NewList[model.PersonType](r, Path(KeyPersonTypes)),
		LotStatuses:        actions.NewList[model.LotStatus](r, Path(KeyLotStatuses)),

		search: make(map[string]actions.SearchFunc, len(Mappings)),
	}

	for key, mapping := range Mappings {
		search, err := actions.NewSearch[map[string]any](r, Path(key), mapping)
		if err != nil {
			return nil, fmt.Errorf("erp: %s: %w", key, err)
		}
		c.search[key] = search
	}
	return c, nil
}

// Search returns the strict autocomplete action of key.
func (c *Catalog) Search(key string) (actions.SearchFunc, bool) {
	s, ok := c.search[key]
	return s, ok
}

// Searchable returns true when key has an autocomplete mapping.
func (c *Catalog) Searchable(key string) bool {
	_, ok := c.search[key]
	return ok
}
