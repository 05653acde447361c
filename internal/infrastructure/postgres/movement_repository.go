package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/inventory"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)
var _ repository.LedgerRepository = (*MovementRepo)(nil)

// MovementRepo implementación de movimientos, renglones y las proyecciones
// del libro de inventario (replay de stock y kardex) sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento en borrador.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, company_id, type_id, origin_warehouse_id, origin_location_id, dest_warehouse_id, dest_location_id, date, status, user_id, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.TypeID,
		movement.OriginWarehouseID, movement.OriginLocationID,
		movement.DestWarehouseID, movement.DestLocationID,
		movement.Date, movement.Status, movement.UserID, movement.Note,
		movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const selectMovement = `
	SELECT id, company_id, type_id, origin_warehouse_id, origin_location_id, dest_warehouse_id, dest_location_id, date, status, user_id, confirmed_at, confirmed_by, note, created_at, updated_at
	FROM movements`

// GetByID obtiene un movimiento por ID dentro de la empresa.
func (r *MovementRepo) GetByID(id, companyID string) (*entity.Movement, error) {
	query := selectMovement + ` WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetByIDForUpdate obtiene el movimiento bloqueando su fila. Solo tiene
// sentido dentro de una transacción.
func (r *MovementRepo) GetByIDForUpdate(id, companyID string) (*entity.Movement, error) {
	query := selectMovement + ` WHERE id = $1 AND company_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// ListByCompany lista los movimientos de la empresa, más recientes primero.
func (r *MovementRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error) {
	query := selectMovement + `
		WHERE company_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.Movement
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// Confirm fija estado confirmado, fecha y usuario de confirmación.
func (r *MovementRepo) Confirm(id string, confirmedAt time.Time, confirmedBy string) error {
	query := `
		UPDATE movements SET status = $1, confirmed_at = $2, confirmed_by = $3, updated_at = $2
		WHERE id = $4`
	tag, err := r.q.Exec(context.Background(), query,
		entity.MovementStatusConfirmed, confirmedAt, confirmedBy, id,
	)
	if err != nil {
		return fmt.Errorf("confirm movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Void fija estado anulado y reemplaza la observación.
func (r *MovementRepo) Void(id, note string) error {
	query := `
		UPDATE movements SET status = $1, note = $2, updated_at = NOW()
		WHERE id = $3`
	tag, err := r.q.Exec(context.Background(), query, entity.MovementStatusVoided, note, id)
	if err != nil {
		return fmt.Errorf("void movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddLine persiste un renglón del movimiento.
func (r *MovementRepo) AddLine(line *entity.MovementLine) error {
	query := `
		INSERT INTO movement_lines (id, movement_id, product_id, product_unit_id, quantity, lot, serial, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.MovementID, line.ProductID, line.ProductUnitID,
		line.Quantity, line.Lot, line.Serial, line.Note, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement line: %w", err)
	}
	return nil
}

// RemoveLine elimina un renglón del movimiento.
func (r *MovementRepo) RemoveLine(lineID, movementID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM movement_lines WHERE id = $1 AND movement_id = $2`,
		lineID, movementID,
	)
	if err != nil {
		return fmt.Errorf("delete movement line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLines lista los renglones de un movimiento en orden de inserción.
func (r *MovementRepo) ListLines(movementID string) ([]*entity.MovementLine, error) {
	query := `
		SELECT id, movement_id, product_id, product_unit_id, quantity, lot, serial, note, created_at
		FROM movement_lines WHERE movement_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list movement lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.MovementLine
	for rows.Next() {
		var l entity.MovementLine
		if err := rows.Scan(&l.ID, &l.MovementID, &l.ProductID, &l.ProductUnitID, &l.Quantity, &l.Lot, &l.Serial, &l.Note, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// CountLines cuenta los renglones de un movimiento.
func (r *MovementRepo) CountLines(movementID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movement_lines WHERE movement_id = $1`, movementID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movement lines: %w", err)
	}
	return count, nil
}

// selectLedger proyecta renglón + movimiento + tipo + producto + unidad +
// usuario: todo lo que necesita el replay contable.
const selectLedger = `
	SELECT p.id, p.code, p.name,
	       m.origin_warehouse_id, m.dest_warehouse_id,
	       l.quantity, pu.conversion_factor,
	       t.affects_stock, t.requires_destination,
	       m.date, t.name, l.lot, l.serial, COALESCE(u.name, ''), l.note
	FROM movement_lines l
	JOIN movements m ON m.id = l.movement_id
	JOIN movement_types t ON t.id = m.type_id
	JOIN products p ON p.id = l.product_id
	JOIN product_units pu ON pu.id = l.product_unit_id
	LEFT JOIN users u ON u.id = m.user_id`

// ListForStock devuelve los renglones confirmados que tocan el filtro. El
// filtro de almacén empareja origen O destino. Los movimientos anulados
// siguen contando: anular no revierte el efecto contable.
func (r *MovementRepo) ListForStock(companyID string, filter repository.LedgerFilter) ([]inventory.LedgerEntry, error) {
	query := selectLedger + `
		WHERE m.company_id = $1 AND m.status <> $2
		  AND ($3::uuid IS NULL OR l.product_id = $3)
		  AND ($4::uuid IS NULL OR m.origin_warehouse_id = $4 OR m.dest_warehouse_id = $4)
		  AND ($5::timestamptz IS NULL OR m.date >= $5)
		  AND ($6::timestamptz IS NULL OR m.date <= $6)
		ORDER BY m.date, l.created_at, l.id`
	return r.queryLedger(query, companyID, entity.MovementStatusDraft,
		nullable(filter.ProductID), nullable(filter.WarehouseID), filter.From, filter.To)
}

// nullable convierte cadena vacía en NULL para filtros opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ListForKardex devuelve los renglones del producto con origen en el almacén
// dado, por fecha ascendente con desempate estable por inserción.
func (r *MovementRepo) ListForKardex(companyID string, filter repository.LedgerFilter) ([]inventory.LedgerEntry, error) {
	query := selectLedger + `
		WHERE m.company_id = $1 AND m.status <> $2
		  AND l.product_id = $3 AND m.origin_warehouse_id = $4
		  AND ($5::timestamptz IS NULL OR m.date >= $5)
		  AND ($6::timestamptz IS NULL OR m.date <= $6)
		ORDER BY m.date, l.created_at, l.id`
	return r.queryLedger(query, companyID, entity.MovementStatusDraft,
		filter.ProductID, filter.WarehouseID, filter.From, filter.To)
}

// StockEntries devuelve los renglones que determinan la disponibilidad de un
// producto en un almacén: solo movimientos con ese almacén como origen.
func (r *MovementRepo) StockEntries(companyID, productID, warehouseID string) ([]inventory.LedgerEntry, error) {
	query := selectLedger + `
		WHERE m.company_id = $1 AND m.status <> $2
		  AND l.product_id = $3 AND m.origin_warehouse_id = $4`
	return r.queryLedger(query, companyID, entity.MovementStatusDraft, productID, warehouseID)
}

func (r *MovementRepo) queryLedger(query string, args ...any) ([]inventory.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var entries []inventory.LedgerEntry
	for rows.Next() {
		var e inventory.LedgerEntry
		if err := rows.Scan(
			&e.ProductID, &e.ProductCode, &e.ProductName,
			&e.OriginWarehouseID, &e.DestWarehouseID,
			&e.Quantity, &e.ConversionFactor,
			&e.AffectsStock, &e.RequiresDest,
			&e.Date, &e.TypeName, &e.Lot, &e.Serial, &e.UserName, &e.Note,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *MovementRepo) scanOne(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(&m.ID, &m.CompanyID, &m.TypeID,
		&m.OriginWarehouseID, &m.OriginLocationID, &m.DestWarehouseID, &m.DestLocationID,
		&m.Date, &m.Status, &m.UserID, &m.ConfirmedAt, &m.ConfirmedBy, &m.Note,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

func (r *MovementRepo) scanRow(rows pgx.Rows) (*entity.Movement, error) {
	var m entity.Movement
	if err := rows.Scan(&m.ID, &m.CompanyID, &m.TypeID,
		&m.OriginWarehouseID, &m.OriginLocationID, &m.DestWarehouseID, &m.DestLocationID,
		&m.Date, &m.Status, &m.UserID, &m.ConfirmedAt, &m.ConfirmedBy, &m.Note,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan movement: %w", err)
	}
	return &m, nil
}
