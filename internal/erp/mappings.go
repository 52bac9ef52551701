package erp

import "erp-admin/internal/actions"

// Mappings is how each searchable module is projected into autocomplete options.
var Mappings = map[string]actions.AutocompleteFieldMapping{
	KeyCompanies: {
		Code:         "company_id",
		Value:        "name",
		SearchFields: []string{"name", "legal_name", "tax_id"},
		MetaFields:   []string{"tax_id", "legal_name"},
	},
	KeyBanks: {
		Code:         "bank_id",
		Value:        "name",
		SearchFields: []string{"name", "code"},
		MetaFields:   []string{"code"},
	},
	KeyCurrencies: {
		Code:         "currency_id",
		Value:        "name",
		SearchFields: []string{"code", "name"},
		MetaFields:   []string{"code", "symbol"},
	},
	KeyThirdParties: {
		Code:         "third_party_id",
		Value:        "business_name",
		SearchFields: []string{"business_name", "trade_name", "document_number"},
		MetaFields:   []string{"document_number", "trade_name"},
	},
	KeyCities: {
		Code:         "city_id",
		Value:        "name",
		SearchFields: []string{"name", "code"},
		MetaFields:   []string{"state_id", "code"},
	},
	KeyProducts: {
		Code:         "product_id",
		Value:        "name",
		SearchFields: []string{"sku", "name"},
		MetaFields:   []string{"sku", "unit_of_measure_id", "price"},
	},
	KeyLots: {
		Code:         "lot_id",
		Value:        "lot_number",
		SearchFields: []string{"lot_number"},
		MetaFields:   []string{"product_id", "quantity", "expires_at"},
	},
	KeyWarehouses: {
		Code:         "warehouse_id",
		Value:        "name",
		SearchFields: []string{"code", "name"},
		MetaFields:   []string{"code"},
	},
	KeyEmployees: {
		Code:         "employee_id",
		Value:        "full_name",
		SearchFields: []string{"first_name", "last_name", "document_number"},
		MetaFields:   []string{"document_number", "position_id"},
	},
	KeyMachines: {
		Code:         "machine_id",
		Value:        "name",
		SearchFields: []string{"code", "name", "serial_number"},
		MetaFields:   []string{"code", "work_center_id"},
	},
}
