package http

import (
	"github.com/gin-gonic/gin"

	"erp-admin/internal/actions"
	"erp-admin/internal/erp"
	"erp-admin/internal/middleware"
	"erp-admin/internal/model"
)

// RegisterRoutes mounts every module under rg (/api/v1) plus the notification inbox.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth(), mw.Session(), h.authorize())

	rg.GET("/notifications", h.Notifications)

	cat := h.catalog
	paginated[model.Company](rg, h, erp.KeyCompanies, cat.Companies)
	paginated[model.User](rg, h, erp.KeyUsers, cat.Users)
	paginated[model.Role](rg, h, erp.KeyRoles, cat.Roles)
	paginated[model.Branch](rg, h, erp.KeyBranches, cat.Branches)
	paginated[model.Bank](rg, h, erp.KeyBanks, cat.Banks)
	paginated[model.BankAccount](rg, h, erp.KeyBankAccounts, cat.BankAccounts)
	paginated[model.Currency](rg, h, erp.KeyCurrencies, cat.Currencies)
	paginated[model.ExchangeRate](rg, h, erp.KeyExchangeRates, cat.ExchangeRates)
	paginated[model.PaymentTerm](rg, h, erp.KeyPaymentTerms, cat.PaymentTerms)
	paginated[model.PaymentMethod](rg, h, erp.KeyPaymentMethods, cat.PaymentMethods)
	paginated[model.TaxType](rg, h, erp.KeyTaxTypes, cat.TaxTypes)
	paginated[model.CostCenter](rg, h, erp.KeyCostCenters, cat.CostCenters)
	paginated[model.ThirdParty](rg, h, erp.KeyThirdParties, cat.ThirdParties)
	paginated[model.ThirdPartyType](rg, h, erp.KeyThirdPartyTypes, cat.ThirdPartyTypes)
	paginated[model.Contact](rg, h, erp.KeyContacts, cat.Contacts)
	paginated[model.City](rg, h, erp.KeyCities, cat.Cities)
	paginated[model.Lot](rg, h, erp.KeyLots, cat.Lots)
	paginated[model.Product](rg, h, erp.KeyProducts, cat.Products)
	paginated[model.ProductCategory](rg, h, erp.KeyProductCategories, cat.ProductCategories)
	paginated[model.Brand](rg, h, erp.KeyBrands, cat.Brands)
	paginated[model.UnitOfMeasure](rg, h, erp.KeyUnitsOfMeasure, cat.UnitsOfMeasure)
	paginated[model.Warehouse](rg, h, erp.KeyWarehouses, cat.Warehouses)
	paginated[model.WarehouseLocation](rg, h, erp.KeyWarehouseLocations, cat.WarehouseLocations)
	paginated[model.Machine](rg, h, erp.KeyMachines, cat.Machines)
	paginated[model.WorkCenter](rg, h, erp.KeyWorkCenters, cat.WorkCenters)
	paginated[model.Downtime](rg, h, erp.KeyDowntime, cat.Downtime)
	paginated[model.DowntimeReason](rg, h, erp.KeyDowntimeReasons, cat.DowntimeReasons)
	paginated[model.Shift](rg, h, erp.KeyShifts, cat.Shifts)
	paginated[model.Employee](rg, h, erp.KeyEmployees, cat.Employees)
	paginated[model.Position](rg, h, erp.KeyPositions, cat.Positions)

	list[model.Country](rg, h, erp.KeyCountries, cat.Countries)
	list[model.State](rg, h, erp.KeyStates, cat.States)
	list[model.Department](rg, h, erp.KeyDepartments, cat.Departments)
	list[model.DocumentType](rg, h, erp.KeyDocumentTypes, cat.DocumentTypes)
	list[model.EconomicActivity](rg, h, erp.KeyEconomicActivities, cat.EconomicActivities)
	list[model.FiscalRegime](rg, h, erp.KeyFiscalRegimes, cat.FiscalRegimes)
	list[model.PersonType](rg, h, erp.KeyPersonTypes, cat.PersonTypes)
	list[model.LotStatus](rg, h, erp.KeyLotStatuses, cat.LotStatuses)
}

func paginated[E model.Entity](rg *gin.RouterGroup, h *handler, key string, a actions.PaginatedActions[E]) {
	r := paginatedResource[E]{h: h, key: key, actions: a}
	g := rg.Group("/" + key)
	{
		g.GET("", r.Page)
		g.POST("/next", r.Next)
		g.POST("/previous", r.Previous)
		g.GET("/search", r.Search)
		g.GET("/:id", r.Detail)
		g.POST("", r.Create)
		g.PATCH("/:id", r.Update)
		g.DELETE("/:id", r.Delete)
	}
}

func list[E model.Entity](rg *gin.RouterGroup, h *handler, key string, a actions.ListActions[E]) {
	r := listResource[E]{h: h, key: key, actions: a}
	g := rg.Group("/" + key)
	{
		g.GET("", r.All)
		g.GET("/search", r.Search)
		g.GET("/:id", r.Detail)
		g.POST("", r.Create)
		g.PATCH("/:id", r.Update)
		g.DELETE("/:id", r.Delete)
	}
}
