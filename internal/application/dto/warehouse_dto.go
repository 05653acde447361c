package dto

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Code    string `json:"code" validate:"required,min=1,max=20"`
	Name    string `json:"name" validate:"required,min=2"`
	Address string `json:"address"`
}

// UpdateWarehouseRequest body para PUT /api/warehouses/:id.
type UpdateWarehouseRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Address *string `json:"address,omitempty"`
}

// WarehouseResponse representación pública de un almacén.
type WarehouseResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"active"`
}

// CreateLocationRequest body para POST /api/warehouses/:id/locations.
type CreateLocationRequest struct {
	Code        string  `json:"code" validate:"required,min=1,max=20"`
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id,omitempty" validate:"omitempty,uuid4"`
}

// UpdateLocationRequest body para PUT de una ubicación.
type UpdateLocationRequest struct {
	Code        *string `json:"code,omitempty" validate:"omitempty,min=1,max=20"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
}

// LocationResponse representación pública de una ubicación.
type LocationResponse struct {
	ID          string  `json:"id"`
	WarehouseID string  `json:"warehouse_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	Level       int     `json:"level"`
	Active      bool    `json:"active"`
}

// LocationTreeNode nodo de la jerarquía de ubicaciones de un almacén.
type LocationTreeNode struct {
	LocationResponse
	Children []LocationTreeNode `json:"children"`
}
