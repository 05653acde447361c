package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/application/usecase"
	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
)

const companyID = "c1"

type productEnv struct {
	products     *fakeProductRepo
	units        *fakeUnitRepo
	productUnits *fakeProductUnitRepo
	warehouses   *fakeWarehouseRepo
	locations    *fakeLocationRepo
	configs      *fakeConfigRepo
	uc           *usecase.ProductUseCase
}

func newProductEnv(t *testing.T) *productEnv {
	t.Helper()
	env := &productEnv{
		products:     &fakeProductRepo{},
		units:        &fakeUnitRepo{},
		productUnits: &fakeProductUnitRepo{},
		locations:    &fakeLocationRepo{},
		configs:      &fakeConfigRepo{},
	}
	env.warehouses = &fakeWarehouseRepo{locations: env.locations}
	env.uc = usecase.NewProductUseCase(env.products, env.units, env.productUnits, env.warehouses, env.locations, env.configs)

	require.NoError(t, env.units.Create(&entity.UnitOfMeasure{ID: "u-kg", Name: "Kilogramo", Abbreviation: "KG", Category: entity.UnitCategoryPeso}))
	require.NoError(t, env.units.Create(&entity.UnitOfMeasure{ID: "u-cja", Name: "Caja", Abbreviation: "CJA", Category: entity.UnitCategoryUnidad}))
	require.NoError(t, env.warehouses.Create(&entity.Warehouse{ID: "w1", CompanyID: companyID, Code: "ALM-001", Name: "Principal", Active: true}))
	return env
}

func (env *productEnv) createProduct(t *testing.T, code string) *dto.ProductResponse {
	t.Helper()
	p, err := env.uc.Create(companyID, dto.CreateProductRequest{Code: code, Name: "Cemento Gris"})
	require.NoError(t, err)
	return p
}

func TestProduct_Create_LoteYSerieExcluyentes(t *testing.T) {
	env := newProductEnv(t)

	_, err := env.uc.Create(companyID, dto.CreateProductRequest{
		Code: "PROD-001", Name: "Motor", RequiresLot: true, RequiresSerial: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_Create_CodigoDuplicado(t *testing.T) {
	env := newProductEnv(t)
	env.createProduct(t, "PROD-001")

	_, err := env.uc.Create(companyID, dto.CreateProductRequest{Code: "PROD-001", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProduct_Update_NoPuedeQuedarConLoteYSerie(t *testing.T) {
	env := newProductEnv(t)
	p, err := env.uc.Create(companyID, dto.CreateProductRequest{Code: "PROD-001", Name: "Aceite", RequiresLot: true})
	require.NoError(t, err)

	serie := true
	_, err = env.uc.Update(p.ID, companyID, dto.UpdateProductRequest{RequiresSerial: &serie})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// quitando el lote en la misma actualización sí se permite la serie
	sinLote := false
	_, err = env.uc.Update(p.ID, companyID, dto.UpdateProductRequest{RequiresLot: &sinLote, RequiresSerial: &serie})
	require.NoError(t, err)
}

func TestProduct_Deactivate_YaInactivo(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	require.NoError(t, env.uc.Deactivate(p.ID, companyID))
	err := env.uc.Deactivate(p.ID, companyID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_GetByID_OtraEmpresa(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	_, err := env.uc.GetByID(p.ID, "otra-empresa")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── unidades ────────────────────────────────────────────────────────────────

func TestProduct_AddUnit_PrimeraEsPrincipal(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	pu, err := env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{
		UnitID: "u-kg", ConversionFactor: dec("1"),
	})
	require.NoError(t, err)
	assert.True(t, pu.IsPrimary, "la primera unidad se marca principal aunque no se pida")
}

func TestProduct_AddUnit_NuevaPrincipalDesmarcaLasDemas(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	_, err := env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{UnitID: "u-kg", ConversionFactor: dec("1")})
	require.NoError(t, err)

	caja, err := env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{
		UnitID: "u-cja", ConversionFactor: dec("50"), IsPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, caja.IsPrimary)

	units, err := env.uc.ListUnits(p.ID, companyID)
	require.NoError(t, err)
	require.Len(t, units, 2)
	principales := 0
	for _, u := range units {
		if u.IsPrimary {
			principales++
			assert.Equal(t, "u-cja", u.UnitID)
		}
	}
	assert.Equal(t, 1, principales, "exactamente una asociación principal por producto")
}

func TestProduct_AddUnit_CombinacionDuplicada(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	_, err := env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{UnitID: "u-kg", ConversionFactor: dec("1")})
	require.NoError(t, err)

	_, err = env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{UnitID: "u-kg", ConversionFactor: dec("2")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProduct_AddUnit_FactorDebeSerPositivo(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	_, err := env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{UnitID: "u-kg", ConversionFactor: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{UnitID: "u-kg", ConversionFactor: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_AddUnit_UnidadFueraDelCatalogo(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	_, err := env.uc.AddUnit(p.ID, companyID, dto.AddProductUnitRequest{UnitID: "no-existe", ConversionFactor: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── umbrales de stock ───────────────────────────────────────────────────────

func TestProduct_ConfigStock_MaximoMenorAlMinimo(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	max := dec("5")
	_, err := env.uc.ConfigStock(p.ID, companyID, dto.ConfigStockRequest{
		WarehouseID: "w1", MinStock: dec("10"), MaxStock: &max,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_ConfigStock_UpsertConservaID(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")

	first, err := env.uc.ConfigStock(p.ID, companyID, dto.ConfigStockRequest{
		WarehouseID: "w1", MinStock: dec("10"),
	})
	require.NoError(t, err)

	reorder := dec("15")
	second, err := env.uc.ConfigStock(p.ID, companyID, dto.ConfigStockRequest{
		WarehouseID: "w1", MinStock: dec("20"), ReorderPoint: &reorder,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "reconfigurar el mismo par actualiza, no duplica")
	assert.True(t, second.MinStock.Equal(dec("20")))
	require.NotNil(t, second.ReorderPoint)
	assert.True(t, second.ReorderPoint.Equal(dec("15")))
	assert.Len(t, env.configs.items, 1)
}

func TestProduct_ConfigStock_UbicacionDeOtroAlmacen(t *testing.T) {
	env := newProductEnv(t)
	p := env.createProduct(t, "PROD-001")
	require.NoError(t, env.locations.Create(&entity.Location{ID: "loc-ajena", WarehouseID: "w-otro", Code: "Z1", Name: "Zona", Level: 1, Active: true}))

	loc := "loc-ajena"
	_, err := env.uc.ConfigStock(p.ID, companyID, dto.ConfigStockRequest{
		WarehouseID: "w1", LocationID: &loc, MinStock: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
