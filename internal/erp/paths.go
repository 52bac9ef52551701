package erp

// BasePath is the root every ERP resource lives under.
const BasePath = "/onerp"

// Module keys. Each is both the cache key of the module and the last segment
// of its REST path.
const (
	KeyCompanies          = "companies"
	KeyUsers              = "users"
	KeyRoles              = "roles"
	KeyBranches           = "branches"
	KeyBanks              = "banks"
	KeyBankAccounts       = "bank-accounts"
	KeyCurrencies         = "currencies"
	KeyExchangeRates      = "exchange-rates"
	KeyPaymentTerms       = "payment-terms"
	KeyPaymentMethods     = "payment-methods"
	KeyTaxTypes           = "tax-types"
	KeyCostCenters        = "cost-centers"
	KeyThirdParties       = "third-parties"
	KeyThirdPartyTypes    = "third-party-types"
	KeyContacts           = "contacts"
	KeyCities             = "cities"
	KeyLots               = "lots"
	KeyProducts           = "products"
	KeyProductCategories  = "product-categories"
	KeyBrands             = "brands"
	KeyUnitsOfMeasure     = "units-of-measure"
	KeyWarehouses         = "warehouses"
	KeyWarehouseLocations = "warehouse-locations"
	KeyMachines           = "machines"
	KeyWorkCenters        = "work-centers"
	KeyDowntime           = "downtime"
	KeyDowntimeReasons    = "downtime-reasons"
	KeyShifts             = "shifts"
	KeyEmployees          = "employees"
	KeyPositions          = "positions"

	KeyCountries          = "countries"
	KeyStates             = "states"
	KeyDepartments        = "departments"
	KeyDocumentTypes      = "document-types"
	KeyEconomicActivities = "economic-activities"
	KeyFiscalRegimes      = "fiscal-regimes"
	KeyPersonTypes        = "person-types"
	KeyLotStatuses        = "lot-statuses"
)

// Path returns the REST base path of key.
func Path(key string) string {
	return BasePath + "/" + key
}
