package entity

import "time"

// Location representa una ubicación física dentro de un almacén (estante,
// pasillo, nivel). Forman un árbol: ParentID nil = raíz, Level = profundidad
// desde la raíz (raíces en 1). El código es único dentro del almacén.
// No puede desactivarse mientras tenga hijas activas.
type Location struct {
	ID          string
	WarehouseID string
	Code        string
	Name        string
	Description string
	ParentID    *string
	Level       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LocationNode es un nodo del árbol de ubicaciones resuelto en memoria.
// Los hijos se resuelven por índice de ParentID sobre la lista plana, no con
// punteros cruzados.
type LocationNode struct {
	Location
	Children []*LocationNode
}

// BuildLocationTree arma la jerarquía a partir de la lista plana de
// ubicaciones de un almacén. Mantiene el orden de entrada dentro de cada
// nivel.
func BuildLocationTree(locations []*Location) []*LocationNode {
	nodes := make(map[string]*LocationNode, len(locations))
	for _, loc := range locations {
		nodes[loc.ID] = &LocationNode{Location: *loc}
	}
	var roots []*LocationNode
	for _, loc := range locations {
		node := nodes[loc.ID]
		if loc.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*loc.ParentID]
		if !ok {
			// padre fuera del conjunto (p.ej. inactivo): tratar como raíz
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}
