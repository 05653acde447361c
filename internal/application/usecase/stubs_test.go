package usecase_test

// Repositorios en memoria para probar los casos de uso de catálogo sin base
// de datos. Guardan en slices para conservar el orden de inserción.

import (
	"github.com/shopspring/decimal"

	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

type fakeProductRepo struct{ items []*entity.Product }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id, companyID string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id && p.CompanyID == companyID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByCode(code, companyID string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Code == code && p.CompanyID == companyID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if p.CompanyID == companyID && (!onlyActive || p.Active) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(companyID, query string, limit int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, it := range r.items {
		if it.ID == p.ID {
			cp := *p
			r.items[i] = &cp
		}
	}
	return nil
}

type fakeUnitRepo struct{ items []*entity.UnitOfMeasure }

var _ repository.UnitOfMeasureRepository = (*fakeUnitRepo)(nil)

func (r *fakeUnitRepo) Create(u *entity.UnitOfMeasure) error {
	cp := *u
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeUnitRepo) GetByID(id string) (*entity.UnitOfMeasure, error) {
	for _, u := range r.items {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) List() ([]*entity.UnitOfMeasure, error) {
	out := make([]*entity.UnitOfMeasure, 0, len(r.items))
	for _, u := range r.items {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProductUnitRepo struct{ items []*entity.ProductUnit }

var _ repository.ProductUnitRepository = (*fakeProductUnitRepo)(nil)

func (r *fakeProductUnitRepo) Create(pu *entity.ProductUnit) error {
	cp := *pu
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductUnitRepo) GetByID(id, productID string) (*entity.ProductUnit, error) {
	for _, pu := range r.items {
		if pu.ID == id && pu.ProductID == productID {
			cp := *pu
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductUnitRepo) GetByProductAndUnit(productID, unitID string) (*entity.ProductUnit, error) {
	for _, pu := range r.items {
		if pu.ProductID == productID && pu.UnitID == unitID {
			cp := *pu
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductUnitRepo) ListByProduct(productID string) ([]*entity.ProductUnit, error) {
	var out []*entity.ProductUnit
	for _, pu := range r.items {
		if pu.ProductID == productID {
			cp := *pu
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductUnitRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, pu := range r.items {
		if pu.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductUnitRepo) UnmarkPrimary(productID string) error {
	for _, pu := range r.items {
		if pu.ProductID == productID {
			pu.IsPrimary = false
		}
	}
	return nil
}

type fakeWarehouseRepo struct {
	items     []*entity.Warehouse
	locations *fakeLocationRepo
}

var _ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id, companyID string) (*entity.Warehouse, error) {
	for _, w := range r.items {
		if w.ID == id && w.CompanyID == companyID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) GetByCode(code, companyID string) (*entity.Warehouse, error) {
	for _, w := range r.items {
		if w.Code == code && w.CompanyID == companyID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.items {
		if w.CompanyID == companyID && (!onlyActive || w.Active) {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	for i, it := range r.items {
		if it.ID == w.ID {
			cp := *w
			r.items[i] = &cp
		}
	}
	return nil
}

func (r *fakeWarehouseRepo) CountActiveLocations(warehouseID string) (int, error) {
	if r.locations == nil {
		return 0, nil
	}
	n := 0
	for _, loc := range r.locations.items {
		if loc.WarehouseID == warehouseID && loc.Active {
			n++
		}
	}
	return n, nil
}

type fakeLocationRepo struct{ items []*entity.Location }

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func (r *fakeLocationRepo) Create(loc *entity.Location) error {
	cp := *loc
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeLocationRepo) GetByID(id, warehouseID string) (*entity.Location, error) {
	for _, loc := range r.items {
		if loc.ID == id && loc.WarehouseID == warehouseID {
			cp := *loc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) GetByCode(code, warehouseID string) (*entity.Location, error) {
	for _, loc := range r.items {
		if loc.Code == code && loc.WarehouseID == warehouseID {
			cp := *loc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, loc := range r.items {
		if loc.WarehouseID == warehouseID && loc.Active {
			cp := *loc
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) Update(loc *entity.Location) error {
	for i, it := range r.items {
		if it.ID == loc.ID {
			cp := *loc
			r.items[i] = &cp
		}
	}
	return nil
}

func (r *fakeLocationRepo) CountActiveChildren(parentID string) (int, error) {
	n := 0
	for _, loc := range r.items {
		if loc.ParentID != nil && *loc.ParentID == parentID && loc.Active {
			n++
		}
	}
	return n, nil
}

type fakeConfigRepo struct{ items []*entity.ProductWarehouseConfig }

var _ repository.ProductWarehouseConfigRepository = (*fakeConfigRepo)(nil)

func (r *fakeConfigRepo) Get(productID, warehouseID string, locationID *string) (*entity.ProductWarehouseConfig, error) {
	for _, c := range r.items {
		if c.ProductID != productID || c.WarehouseID != warehouseID {
			continue
		}
		if (c.LocationID == nil) != (locationID == nil) {
			continue
		}
		if c.LocationID != nil && *c.LocationID != *locationID {
			continue
		}
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeConfigRepo) Upsert(config *entity.ProductWarehouseConfig) error {
	for i, c := range r.items {
		if c.ID == config.ID {
			cp := *config
			r.items[i] = &cp
			return nil
		}
	}
	cp := *config
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeConfigRepo) ListByCompany(companyID string) ([]*entity.ProductWarehouseConfig, error) {
	out := make([]*entity.ProductWarehouseConfig, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
