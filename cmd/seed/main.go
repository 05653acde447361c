// Comando seed: siembra el catálogo de unidades, los tipos de movimiento del
// sistema y dos empresas demo con usuarios, almacenes y productos.
// Idempotente a nivel de catálogo: las unidades y tipos ya existentes se
// omiten.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/infrastructure/postgres"
	"github.com/kardexcloud/kardex-api/pkg/config"
	"github.com/kardexcloud/kardex-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	unitRepo := postgres.NewUnitOfMeasureRepository(pool)
	typeRepo := postgres.NewMovementTypeRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	productUnitRepo := postgres.NewProductUnitRepository(pool)
	configRepo := postgres.NewProductWarehouseConfigRepository(pool)

	now := time.Now()

	// Catálogo global de unidades
	units := []struct {
		name, abbr, category string
	}{
		{"Unidad", "UN", entity.UnitCategoryUnidad},
		{"Kilogramo", "KG", entity.UnitCategoryPeso},
		{"Gramo", "G", entity.UnitCategoryPeso},
		{"Tonelada", "TON", entity.UnitCategoryPeso},
		{"Libra", "LB", entity.UnitCategoryPeso},
		{"Litro", "L", entity.UnitCategoryVolumen},
		{"Mililitro", "ML", entity.UnitCategoryVolumen},
		{"Galón", "GAL", entity.UnitCategoryVolumen},
		{"Metro", "M", entity.UnitCategoryLongitud},
		{"Centímetro", "CM", entity.UnitCategoryLongitud},
		{"Metro cúbico", "M3", entity.UnitCategoryVolumen},
		{"Caja", "CJA", entity.UnitCategoryUnidad},
		{"Paquete", "PQT", entity.UnitCategoryUnidad},
		{"Docena", "DOC", entity.UnitCategoryUnidad},
		{"Bulto", "BLT", entity.UnitCategoryUnidad},
	}
	unitIDs := make(map[string]string, len(units))
	for _, u := range units {
		id := uuid.New().String()
		err := unitRepo.Create(&entity.UnitOfMeasure{
			ID: id, Name: u.name, Abbreviation: u.abbr, Category: u.category, CreatedAt: now,
		})
		if err != nil {
			log.Warn().Str("unidad", u.name).Err(err).Msg("unidad no insertada (¿ya existe?)")
			continue
		}
		unitIDs[u.abbr] = id
	}
	log.Info().Int("total", len(unitIDs)).Msg("unidades de medida sembradas")

	// Tipos de movimiento del sistema
	types := []struct {
		code, name   string
		affectsStock int
		requiresDest bool
	}{
		{entity.MovementTypeEntrada, "Entrada de inventario", 1, false},
		{entity.MovementTypeSalida, "Salida de inventario", -1, false},
		{entity.MovementTypeAjustePositivo, "Ajuste positivo", 1, false},
		{entity.MovementTypeAjusteNegativo, "Ajuste negativo", -1, false},
		{entity.MovementTypeTransferencia, "Transferencia entre almacenes", 0, true},
	}
	for _, t := range types {
		err := typeRepo.Create(&entity.MovementType{
			ID:                  uuid.New().String(),
			Code:                t.code,
			Name:                t.name,
			AffectsStock:        t.affectsStock,
			RequiresDestination: t.requiresDest,
			IsSystem:            true,
			CreatedAt:           now,
		})
		if err != nil {
			log.Warn().Str("tipo", t.code).Err(err).Msg("tipo no insertado (¿ya existe?)")
		}
	}
	log.Info().Msg("tipos de movimiento del sistema sembrados")

	// Empresa demo 1
	company1 := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "Distribuidora El Éxito SAS",
		TaxID:     "900123456-7",
		Address:   "Calle 123 #45-67, Bogotá",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(company1); err != nil {
		log.Fatal().Err(err).Msg("crear empresa demo 1")
	}

	seedUser := func(companyID, name, email, password, role string) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear contraseña")
		}
		if err := userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			CompanyID:    companyID,
			Email:        email,
			PasswordHash: string(hash),
			Name:         name,
			Role:         role,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			log.Fatal().Str("email", email).Err(err).Msg("crear usuario")
		}
	}
	seedUser(company1.ID, "Juan Pérez", "admin@elexito.com", "Admin123!", entity.RoleAdmin)
	seedUser(company1.ID, "María López", "operador@elexito.com", "Operador123!", entity.RoleOperador)
	seedUser(company1.ID, "Carlos Gómez", "consulta@elexito.com", "Consulta123!", entity.RoleConsulta)

	warehouse1 := &entity.Warehouse{
		ID: uuid.New().String(), CompanyID: company1.ID,
		Code: "ALM-001", Name: "Almacén Principal",
		Address: "Calle 123 #45-67, Bogotá",
		Active:  true, CreatedAt: now, UpdatedAt: now,
	}
	warehouse2 := &entity.Warehouse{
		ID: uuid.New().String(), CompanyID: company1.ID,
		Code: "ALM-002", Name: "Almacén Secundario",
		Address: "Carrera 50 #30-20, Medellín",
		Active:  true, CreatedAt: now, UpdatedAt: now,
	}
	for _, w := range []*entity.Warehouse{warehouse1, warehouse2} {
		if err := warehouseRepo.Create(w); err != nil {
			log.Fatal().Str("codigo", w.Code).Err(err).Msg("crear almacén")
		}
	}

	// Jerarquía de ubicaciones: Zona A > Pasillo 1 > Estante 1A
	zonaA := &entity.Location{
		ID: uuid.New().String(), WarehouseID: warehouse1.ID,
		Code: "A", Name: "Zona A", Level: 1,
		Active: true, CreatedAt: now, UpdatedAt: now,
	}
	pasillo1 := &entity.Location{
		ID: uuid.New().String(), WarehouseID: warehouse1.ID,
		Code: "A-P1", Name: "Pasillo 1", ParentID: &zonaA.ID, Level: 2,
		Active: true, CreatedAt: now, UpdatedAt: now,
	}
	estante1A := &entity.Location{
		ID: uuid.New().String(), WarehouseID: warehouse1.ID,
		Code: "A-P1-E1", Name: "Estante 1A", ParentID: &pasillo1.ID, Level: 3,
		Active: true, CreatedAt: now, UpdatedAt: now,
	}
	for _, l := range []*entity.Location{zonaA, pasillo1, estante1A} {
		if err := locationRepo.Create(l); err != nil {
			log.Fatal().Str("codigo", l.Code).Err(err).Msg("crear ubicación")
		}
	}

	days730 := 730
	product1 := &entity.Product{
		ID: uuid.New().String(), CompanyID: company1.ID,
		Code: "PROD-001", Name: "Laptop Dell Inspiron 15",
		Description: "Laptop empresarial con procesador Intel Core i5",
		Active:      true, CreatedAt: now, UpdatedAt: now,
	}
	product2 := &entity.Product{
		ID: uuid.New().String(), CompanyID: company1.ID,
		Code: "PROD-002", Name: "Aceite de Oliva Extra Virgen",
		Description: "Aceite de oliva importado de España",
		RequiresLot: true, ExpiryDays: &days730,
		Active: true, CreatedAt: now, UpdatedAt: now,
	}
	product3 := &entity.Product{
		ID: uuid.New().String(), CompanyID: company1.ID,
		Code: "PROD-003", Name: "Cemento Argos x 50kg",
		Description: "Cemento portland tipo I",
		Active:      true, CreatedAt: now, UpdatedAt: now,
	}
	for _, p := range []*entity.Product{product1, product2, product3} {
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Str("codigo", p.Code).Err(err).Msg("crear producto")
		}
	}

	seedProductUnit := func(productID, abbr string, factor decimal.Decimal, isPrimary bool) {
		unitID, ok := unitIDs[abbr]
		if !ok {
			log.Warn().Str("unidad", abbr).Msg("unidad no disponible, se omite asociación")
			return
		}
		if err := productUnitRepo.Create(&entity.ProductUnit{
			ID:               uuid.New().String(),
			ProductID:        productID,
			UnitID:           unitID,
			ConversionFactor: factor,
			IsPrimary:        isPrimary,
			CreatedAt:        now,
		}); err != nil {
			log.Fatal().Str("unidad", abbr).Err(err).Msg("asociar unidad")
		}
	}
	one := decimal.NewFromInt(1)
	seedProductUnit(product1.ID, "UN", one, true)
	seedProductUnit(product2.ID, "L", one, true)
	seedProductUnit(product3.ID, "KG", one, true)
	seedProductUnit(product3.ID, "CJA", decimal.NewFromInt(50), false) // 1 caja = 50 kg

	// Umbrales de stock
	max50 := decimal.NewFromInt(50)
	reorder15 := decimal.NewFromInt(15)
	if err := configRepo.Upsert(&entity.ProductWarehouseConfig{
		ID: uuid.New().String(), ProductID: product1.ID, WarehouseID: warehouse1.ID,
		MinStock: decimal.NewFromInt(10), MaxStock: &max50, ReorderPoint: &reorder15,
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		log.Fatal().Err(err).Msg("configurar stock PROD-001")
	}
	max500 := decimal.NewFromInt(500)
	reorder150 := decimal.NewFromInt(150)
	if err := configRepo.Upsert(&entity.ProductWarehouseConfig{
		ID: uuid.New().String(), ProductID: product2.ID, WarehouseID: warehouse1.ID,
		LocationID: &estante1A.ID,
		MinStock:   decimal.NewFromInt(100), MaxStock: &max500, ReorderPoint: &reorder150,
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		log.Fatal().Err(err).Msg("configurar stock PROD-002")
	}

	// Empresa demo 2 (aislamiento multi-empresa)
	company2 := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "TechStore Colombia LTDA",
		TaxID:     "800987654-3",
		Address:   "Avenida 68 #80-50, Bogotá",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(company2); err != nil {
		log.Fatal().Err(err).Msg("crear empresa demo 2")
	}
	seedUser(company2.ID, "Ana Martínez", "admin@techstore.com", "Tech123!", entity.RoleAdmin)

	warehouseTech := &entity.Warehouse{
		ID: uuid.New().String(), CompanyID: company2.ID,
		Code: "TECH-001", Name: "Bodega Principal",
		Address: "Avenida 68 #80-50, Bogotá",
		Active:  true, CreatedAt: now, UpdatedAt: now,
	}
	if err := warehouseRepo.Create(warehouseTech); err != nil {
		log.Fatal().Err(err).Msg("crear bodega tech")
	}

	productTech := &entity.Product{
		ID: uuid.New().String(), CompanyID: company2.ID,
		Code: "TECH-001", Name: "iPhone 15 Pro Max",
		Description:    "Smartphone Apple última generación",
		RequiresSerial: true,
		Active:         true, CreatedAt: now, UpdatedAt: now,
	}
	if err := productRepo.Create(productTech); err != nil {
		log.Fatal().Err(err).Msg("crear producto tech")
	}
	seedProductUnit(productTech.ID, "UN", one, true)

	log.Info().Msg("seed completado")
}
