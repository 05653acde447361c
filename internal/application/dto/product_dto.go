package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code                string `json:"code" validate:"required,min=1,max=30"`
	Name                string `json:"name" validate:"required,min=2"`
	Description         string `json:"description"`
	RequiresLot         bool   `json:"requires_lot"`
	RequiresSerial      bool   `json:"requires_serial"`
	AllowsNegativeStock bool   `json:"allows_negative_stock"`
	ExpiryDays          *int   `json:"expiry_days,omitempty" validate:"omitempty,min=1"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description         *string `json:"description,omitempty"`
	RequiresLot         *bool   `json:"requires_lot,omitempty"`
	RequiresSerial      *bool   `json:"requires_serial,omitempty"`
	AllowsNegativeStock *bool   `json:"allows_negative_stock,omitempty"`
	ExpiryDays          *int    `json:"expiry_days,omitempty" validate:"omitempty,min=1"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID                  string `json:"id"`
	Code                string `json:"code"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	RequiresLot         bool   `json:"requires_lot"`
	RequiresSerial      bool   `json:"requires_serial"`
	AllowsNegativeStock bool   `json:"allows_negative_stock"`
	ExpiryDays          *int   `json:"expiry_days,omitempty"`
	Active              bool   `json:"active"`
}

// AddProductUnitRequest body para POST /api/products/:id/units.
type AddProductUnitRequest struct {
	UnitID           string          `json:"unit_id" validate:"required,uuid4"`
	ConversionFactor decimal.Decimal `json:"conversion_factor" validate:"dgt0"`
	IsPrimary        bool            `json:"is_primary"`
}

// ProductUnitResponse asociación producto-unidad con su factor.
type ProductUnitResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	UnitID           string          `json:"unit_id"`
	UnitName         string          `json:"unit_name,omitempty"`
	Abbreviation     string          `json:"abbreviation,omitempty"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	IsPrimary        bool            `json:"is_primary"`
}

// UnitOfMeasureResponse entrada del catálogo global de unidades.
type UnitOfMeasureResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Category     string `json:"category"`
}

// ConfigStockRequest body para POST /api/products/:id/stock-config.
type ConfigStockRequest struct {
	WarehouseID  string           `json:"warehouse_id" validate:"required,uuid4"`
	LocationID   *string          `json:"location_id,omitempty" validate:"omitempty,uuid4"`
	MinStock     decimal.Decimal  `json:"min_stock"`
	MaxStock     *decimal.Decimal `json:"max_stock,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
}

// StockConfigResponse configuración de umbrales persistida.
type StockConfigResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	WarehouseID  string           `json:"warehouse_id"`
	LocationID   *string          `json:"location_id,omitempty"`
	MinStock     decimal.Decimal  `json:"min_stock"`
	MaxStock     *decimal.Decimal `json:"max_stock,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
}
