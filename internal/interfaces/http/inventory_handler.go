package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/application/inventory"
	"github.com/kardexcloud/kardex-api/pkg/validator"
)

// InventoryHandler maneja movimientos, stock, kardex y reorden.
type InventoryHandler struct {
	movementUC *inventory.MovementUseCase
	stockUC    *inventory.StockUseCase
	reorderUC  *inventory.ReorderUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movementUC *inventory.MovementUseCase, stockUC *inventory.StockUseCase, reorderUC *inventory.ReorderUseCase) *InventoryHandler {
	return &InventoryHandler{movementUC: movementUC, stockUC: stockUC, reorderUC: reorderUC}
}

// CreateMovement godoc
// @Summary      Crear movimiento en borrador
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Cabecera del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.movementUC.Create(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.movementUC.List(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMovement godoc
// @Summary      Obtener movimiento con sus renglones
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	out, err := h.movementUC.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar renglón a un movimiento en borrador
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.AddLineRequest  true  "Renglón"
// @Success      201   {object}  dto.MovementLineResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/lines [post]
func (h *InventoryHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.movementUC.AddLine(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar renglón de un movimiento en borrador
// @Tags         inventory
// @Security     Bearer
// @Param        id      path  string  true  "ID del movimiento"
// @Param        lineId  path  string  true  "ID del renglón"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/lines/{lineId} [delete]
func (h *InventoryHandler) RemoveLine(c *fiber.Ctx) error {
	if err := h.movementUC.RemoveLine(GetCompanyID(c), c.Params("id"), c.Params("lineId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ConfirmMovement godoc
// @Summary      Confirmar movimiento (afecta el stock derivado)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/confirm [post]
func (h *InventoryHandler) ConfirmMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	movementID := c.Params("id")
	if err := h.movementUC.Confirm(c.Context(), companyID, movementID, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	out, err := h.movementUC.GetByID(companyID, movementID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VoidMovement godoc
// @Summary      Anular movimiento confirmado (no revierte stock)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.VoidMovementRequest  true  "Motivo de anulación"
// @Success      200   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/void [post]
func (h *InventoryHandler) VoidMovement(c *fiber.Ctx) error {
	var in dto.VoidMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	companyID := GetCompanyID(c)
	movementID := c.Params("id")
	if err := h.movementUC.Void(c.Context(), companyID, movementID, in.Reason); err != nil {
		return respondError(c, err)
	}
	out, err := h.movementUC.GetByID(companyID, movementID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListTypes godoc
// @Summary      Tipos de movimiento visibles para la empresa
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementTypeResponse
// @Router       /api/inventory/movement-types [get]
func (h *InventoryHandler) ListTypes(c *fiber.Ctx) error {
	out, err := h.movementUC.ListTypes(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Stock actual derivado de movimientos confirmados
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por almacén (origen o destino)"
// @Success      200  {array}  dto.StockRowResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	in := dto.StockFilterRequest{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.stockUC.GetStock(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetKardex godoc
// @Summary      Kardex de un producto en un almacén
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true   "Producto"
// @Param        warehouse_id  query  string  true   "Almacén de origen"
// @Param        from          query  string  false  "Fecha inicial (RFC 3339)"
// @Param        to            query  string  false  "Fecha final (RFC 3339)"
// @Success      200  {object}  dto.KardexResponse
// @Router       /api/inventory/kardex [get]
func (h *InventoryHandler) GetKardex(c *fiber.Ctx) error {
	in, err := parseKardexFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.stockUC.GetKardex(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetKardexPDF godoc
// @Summary      Kardex en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        product_id    query  string  true  "Producto"
// @Param        warehouse_id  query  string  true  "Almacén de origen"
// @Success      200  {file}  binary
// @Router       /api/inventory/kardex/pdf [get]
func (h *InventoryHandler) GetKardexPDF(c *fiber.Ctx) error {
	in, err := parseKardexFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	pdfBytes, err := h.stockUC.GetKardexPDF(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.pdf"`)
	return c.Send(pdfBytes)
}

// ReorderReport godoc
// @Summary      Productos en o bajo su punto de reorden
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén"
// @Success      200  {array}  dto.ReorderRowResponse
// @Router       /api/inventory/reorder-report [get]
func (h *InventoryHandler) ReorderReport(c *fiber.Ctx) error {
	out, err := h.reorderUC.GenerateReport(GetCompanyID(c), c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseKardexFilter(c *fiber.Ctx) (dto.KardexFilterRequest, error) {
	in := dto.KardexFilterRequest{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return in, err
		}
		in.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return in, err
		}
		in.To = &t
	}
	return in, nil
}
