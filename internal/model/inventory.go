package model

type Lot struct {
	LotID          ID      `json:"lot_id"`
	LotNumber      string  `json:"lot_number"`
	ProductID      ID      `json:"product_id"`
	WarehouseID    ID      `json:"warehouse_id,omitempty"`
	LotStatusID    ID      `json:"lot_status_id,omitempty"`
	Quantity       float64 `json:"quantity"`
	ManufacturedAt string  `json:"manufactured_at,omitempty"`
	ExpiresAt      string  `json:"expires_at,omitempty"`
	IsActive       bool    `json:"is_active"`
	Audit
}

func (l Lot) EntityID() string { return l.LotID.String() }

type LotStatus struct {
	LotStatusID ID     `json:"lot_status_id"`
	Name        string `json:"name"` // available, quarantine, blocked, ...
	Color       string `json:"color,omitempty"`
}

func (l LotStatus) EntityID() string { return l.LotStatusID.String() }

type Product struct {
	ProductID         ID      `json:"product_id"`
	SKU               string  `json:"sku"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	ProductCategoryID ID      `json:"product_category_id,omitempty"`
	BrandID           ID      `json:"brand_id,omitempty"`
	UnitOfMeasureID   ID      `json:"unit_of_measure_id,omitempty"`
	TaxTypeID         ID      `json:"tax_type_id,omitempty"`
	Price             float64 `json:"price"`
	IsActive          bool    `json:"is_active"`
	Audit
}

func (p Product) EntityID() string { return p.ProductID.String() }

type ProductCategory struct {
	ProductCategoryID ID     `json:"product_category_id"`
	Name              string `json:"name"`
	ParentID          ID     `json:"parent_id,omitempty"`
	IsActive          bool   `json:"is_active"`
	Audit
}

func (p ProductCategory) EntityID() string { return p.ProductCategoryID.String() }

type Brand struct {
	BrandID  ID     `json:"brand_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Audit
}

func (b Brand) EntityID() string { return b.BrandID.String() }

type UnitOfMeasure struct {
	UnitOfMeasureID ID     `json:"unit_of_measure_id"`
	Code            string `json:"code"` // kg, und, lt
	Name            string `json:"name"`
	IsActive        bool   `json:"is_active"`
	Audit
}

func (u UnitOfMeasure) EntityID() string { return u.UnitOfMeasureID.String() }

type Warehouse struct {
	WarehouseID ID     `json:"warehouse_id"`
	BranchID    ID     `json:"branch_id,omitempty"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	IsActive    bool   `json:"is_active"`
	Audit
}

func (w Warehouse) EntityID() string { return w.WarehouseID.String() }

type WarehouseLocation struct {
	WarehouseLocationID ID     `json:"warehouse_location_id"`
	WarehouseID         ID     `json:"warehouse_id"`
	Code                string `json:"code"` // aisle-rack-level
	Description         string `json:"description,omitempty"`
	IsActive            bool   `json:"is_active"`
	Audit
}

func (w WarehouseLocation) EntityID() string { return w.WarehouseLocationID.String() }
