package inventory_test

// Repositorios en memoria para probar los casos de uso del motor de
// inventario sin base de datos. El libro contable se proyecta al vuelo desde
// los movimientos guardados, igual que hace la consulta SQL real.

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	domaininv "github.com/kardexcloud/kardex-api/internal/domain/inventory"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

type memStore struct {
	movements     map[string]*entity.Movement
	movementOrder []string
	lines         map[string][]*entity.MovementLine
	products      map[string]*entity.Product
	productUnits  map[string]*entity.ProductUnit
	types         map[string]*entity.MovementType
	warehouses    map[string]*entity.Warehouse
	locations     map[string]*entity.Location
	configs       []*entity.ProductWarehouseConfig
	companyOf     map[string]string // almacén → empresa, para el libro
}

func newMemStore() *memStore {
	return &memStore{
		movements:    map[string]*entity.Movement{},
		lines:        map[string][]*entity.MovementLine{},
		products:     map[string]*entity.Product{},
		productUnits: map[string]*entity.ProductUnit{},
		types:        map[string]*entity.MovementType{},
		warehouses:   map[string]*entity.Warehouse{},
		locations:    map[string]*entity.Location{},
		companyOf:    map[string]string{},
	}
}

// ── movimientos + libro ──────────────────────────────────────────────────────

type movementStub struct{ s *memStore }

var _ repository.MovementRepository = movementStub{}
var _ repository.LedgerRepository = movementStub{}

func (r movementStub) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements[m.ID] = &cp
	r.s.movementOrder = append(r.s.movementOrder, m.ID)
	return nil
}

func (r movementStub) GetByID(id, companyID string) (*entity.Movement, error) {
	m, ok := r.s.movements[id]
	if !ok || m.CompanyID != companyID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r movementStub) GetByIDForUpdate(id, companyID string) (*entity.Movement, error) {
	return r.GetByID(id, companyID)
}

func (r movementStub) ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.s.movementOrder) - 1; i >= 0; i-- {
		m := r.s.movements[r.s.movementOrder[i]]
		if m.CompanyID == companyID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r movementStub) Confirm(id string, confirmedAt time.Time, confirmedBy string) error {
	m := r.s.movements[id]
	m.Status = entity.MovementStatusConfirmed
	m.ConfirmedAt = &confirmedAt
	m.ConfirmedBy = &confirmedBy
	return nil
}

func (r movementStub) Void(id, note string) error {
	m := r.s.movements[id]
	m.Status = entity.MovementStatusVoided
	m.Note = note
	return nil
}

func (r movementStub) AddLine(line *entity.MovementLine) error {
	cp := *line
	r.s.lines[line.MovementID] = append(r.s.lines[line.MovementID], &cp)
	return nil
}

func (r movementStub) RemoveLine(lineID, movementID string) error {
	kept := r.s.lines[movementID][:0]
	for _, l := range r.s.lines[movementID] {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	r.s.lines[movementID] = kept
	return nil
}

func (r movementStub) ListLines(movementID string) ([]*entity.MovementLine, error) {
	return r.s.lines[movementID], nil
}

func (r movementStub) CountLines(movementID string) (int, error) {
	return len(r.s.lines[movementID]), nil
}

// allEntries proyecta el libro completo de la empresa: todo renglón de
// movimiento no borrador, en orden de inserción (anulados incluidos).
func (r movementStub) allEntries(companyID string) []domaininv.LedgerEntry {
	var out []domaininv.LedgerEntry
	for _, id := range r.s.movementOrder {
		m := r.s.movements[id]
		if m.CompanyID != companyID || m.Status == entity.MovementStatusDraft {
			continue
		}
		tipo := r.s.types[m.TypeID]
		for _, l := range r.s.lines[m.ID] {
			p := r.s.products[l.ProductID]
			pu := r.s.productUnits[l.ProductUnitID]
			out = append(out, domaininv.LedgerEntry{
				ProductID:         p.ID,
				ProductCode:       p.Code,
				ProductName:       p.Name,
				OriginWarehouseID: m.OriginWarehouseID,
				DestWarehouseID:   m.DestWarehouseID,
				Quantity:          l.Quantity,
				ConversionFactor:  pu.ConversionFactor,
				AffectsStock:      tipo.AffectsStock,
				RequiresDest:      tipo.RequiresDestination,
				Date:              m.Date,
				TypeName:          tipo.Name,
				Lot:               l.Lot,
				Serial:            l.Serial,
				Note:              l.Note,
			})
		}
	}
	return out
}

func (r movementStub) ListForStock(companyID string, filter repository.LedgerFilter) ([]domaininv.LedgerEntry, error) {
	var out []domaininv.LedgerEntry
	for _, e := range r.allEntries(companyID) {
		if filter.ProductID != "" && e.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" && e.OriginWarehouseID != filter.WarehouseID &&
			(e.DestWarehouseID == nil || *e.DestWarehouseID != filter.WarehouseID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r movementStub) ListForKardex(companyID string, filter repository.LedgerFilter) ([]domaininv.LedgerEntry, error) {
	var out []domaininv.LedgerEntry
	for _, e := range r.allEntries(companyID) {
		if e.ProductID != filter.ProductID || e.OriginWarehouseID != filter.WarehouseID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r movementStub) StockEntries(companyID, productID, warehouseID string) ([]domaininv.LedgerEntry, error) {
	var out []domaininv.LedgerEntry
	for _, e := range r.allEntries(companyID) {
		if e.ProductID == productID && e.OriginWarehouseID == warehouseID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ── catálogos ────────────────────────────────────────────────────────────────

type productStub struct{ s *memStore }

var _ repository.ProductRepository = productStub{}

func (r productStub) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r productStub) GetByID(id, companyID string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r productStub) GetByCode(code, companyID string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Code == code && p.CompanyID == companyID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r productStub) ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID && (!onlyActive || p.Active) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r productStub) Search(companyID, query string, limit int) ([]*entity.Product, error) {
	return nil, nil
}

func (r productStub) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

type productUnitStub struct{ s *memStore }

var _ repository.ProductUnitRepository = productUnitStub{}

func (r productUnitStub) Create(pu *entity.ProductUnit) error {
	cp := *pu
	r.s.productUnits[pu.ID] = &cp
	return nil
}

func (r productUnitStub) GetByID(id, productID string) (*entity.ProductUnit, error) {
	pu, ok := r.s.productUnits[id]
	if !ok || pu.ProductID != productID {
		return nil, nil
	}
	cp := *pu
	return &cp, nil
}

func (r productUnitStub) GetByProductAndUnit(productID, unitID string) (*entity.ProductUnit, error) {
	for _, pu := range r.s.productUnits {
		if pu.ProductID == productID && pu.UnitID == unitID {
			cp := *pu
			return &cp, nil
		}
	}
	return nil, nil
}

func (r productUnitStub) ListByProduct(productID string) ([]*entity.ProductUnit, error) {
	var out []*entity.ProductUnit
	for _, pu := range r.s.productUnits {
		if pu.ProductID == productID {
			cp := *pu
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r productUnitStub) CountByProduct(productID string) (int, error) {
	n := 0
	for _, pu := range r.s.productUnits {
		if pu.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r productUnitStub) UnmarkPrimary(productID string) error {
	for _, pu := range r.s.productUnits {
		if pu.ProductID == productID {
			pu.IsPrimary = false
		}
	}
	return nil
}

type typeStub struct{ s *memStore }

var _ repository.MovementTypeRepository = typeStub{}

func (r typeStub) Create(mt *entity.MovementType) error {
	cp := *mt
	r.s.types[mt.ID] = &cp
	return nil
}

func (r typeStub) GetVisible(id, companyID string) (*entity.MovementType, error) {
	mt, ok := r.s.types[id]
	if !ok {
		return nil, nil
	}
	if mt.CompanyID != nil && *mt.CompanyID != companyID {
		return nil, nil
	}
	cp := *mt
	return &cp, nil
}

func (r typeStub) GetByCode(code string) (*entity.MovementType, error) {
	for _, mt := range r.s.types {
		if mt.Code == code && mt.IsSystem {
			cp := *mt
			return &cp, nil
		}
	}
	return nil, nil
}

func (r typeStub) ListVisible(companyID string) ([]*entity.MovementType, error) {
	var out []*entity.MovementType
	for _, mt := range r.s.types {
		if mt.CompanyID == nil || *mt.CompanyID == companyID {
			cp := *mt
			out = append(out, &cp)
		}
	}
	return out, nil
}

type warehouseStub struct{ s *memStore }

var _ repository.WarehouseRepository = warehouseStub{}

func (r warehouseStub) Create(w *entity.Warehouse) error {
	cp := *w
	r.s.warehouses[w.ID] = &cp
	r.s.companyOf[w.ID] = w.CompanyID
	return nil
}

func (r warehouseStub) GetByID(id, companyID string) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok || w.CompanyID != companyID {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r warehouseStub) GetByCode(code, companyID string) (*entity.Warehouse, error) {
	for _, w := range r.s.warehouses {
		if w.Code == code && w.CompanyID == companyID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r warehouseStub) ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.CompanyID == companyID && (!onlyActive || w.Active) {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r warehouseStub) Update(w *entity.Warehouse) error {
	cp := *w
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r warehouseStub) CountActiveLocations(warehouseID string) (int, error) {
	n := 0
	for _, loc := range r.s.locations {
		if loc.WarehouseID == warehouseID && loc.Active {
			n++
		}
	}
	return n, nil
}

type locationStub struct{ s *memStore }

var _ repository.LocationRepository = locationStub{}

func (r locationStub) Create(loc *entity.Location) error {
	cp := *loc
	r.s.locations[loc.ID] = &cp
	return nil
}

func (r locationStub) GetByID(id, warehouseID string) (*entity.Location, error) {
	loc, ok := r.s.locations[id]
	if !ok || loc.WarehouseID != warehouseID {
		return nil, nil
	}
	cp := *loc
	return &cp, nil
}

func (r locationStub) GetByCode(code, warehouseID string) (*entity.Location, error) {
	for _, loc := range r.s.locations {
		if loc.Code == code && loc.WarehouseID == warehouseID {
			cp := *loc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r locationStub) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, loc := range r.s.locations {
		if loc.WarehouseID == warehouseID && loc.Active {
			cp := *loc
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r locationStub) Update(loc *entity.Location) error {
	cp := *loc
	r.s.locations[loc.ID] = &cp
	return nil
}

func (r locationStub) CountActiveChildren(parentID string) (int, error) {
	n := 0
	for _, loc := range r.s.locations {
		if loc.ParentID != nil && *loc.ParentID == parentID && loc.Active {
			n++
		}
	}
	return n, nil
}

type configStub struct{ s *memStore }

var _ repository.ProductWarehouseConfigRepository = configStub{}

func (r configStub) Get(productID, warehouseID string, locationID *string) (*entity.ProductWarehouseConfig, error) {
	for _, c := range r.s.configs {
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

func (r configStub) Upsert(config *entity.ProductWarehouseConfig) error {
	for i, c := range r.s.configs {
		if c.ID == config.ID {
			cp := *config
			r.s.configs[i] = &cp
			return nil
		}
	}
	cp := *config
	r.s.configs = append(r.s.configs, &cp)
	return nil
}

func (r configStub) ListByCompany(companyID string) ([]*entity.ProductWarehouseConfig, error) {
	var out []*entity.ProductWarehouseConfig
	for _, c := range r.s.configs {
		if r.s.companyOf[c.WarehouseID] == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memTxRunner ejecuta la función directamente contra los stubs, sin
// transacción real.
type memTxRunner struct{ s *memStore }

func (t memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	productUnitRepo repository.ProductUnitRepository,
	typeRepo repository.MovementTypeRepository,
) error) error {
	return fn(movementStub{t.s}, movementStub{t.s}, productStub{t.s}, productUnitStub{t.s}, typeStub{t.s})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
