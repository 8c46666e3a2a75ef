package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/application/stock"
)

// StockHandler maneja movimientos de stock y alertas (protegido).
type StockHandler struct {
	ledger  *stock.LedgerUseCase
	queries *stock.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.LedgerUseCase, queries *stock.QueryUseCase) *StockHandler {
	return &StockHandler{ledger: ledger, queries: queries}
}

// CreateMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  ENTREE suma, SORTIE resta (falla con 409 si no hay stock),
//
//	AJUSTEMENT fija el stock al valor indicado.
//
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, type, quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stocks/movements [post]
func (h *StockHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.ledger.ApplyMovement(c.Context(), stock.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:             mov.ID,
		ProductID:      mov.ProductID,
		Type:           mov.Type,
		Quantity:       mov.Quantity,
		QuantityBefore: mov.QuantityBefore,
		QuantityAfter:  mov.QuantityAfter,
		Reason:         mov.Reason,
		InvoiceID:      mov.InvoiceID,
		CreatedAt:      mov.CreatedAt,
	})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        type        query  string  false  "ENTREE | SORTIE | AJUSTEMENT"
// @Param        page        query  int     false  "Página (1..)"
// @Param        limit       query  int     false  "Tamaño de página (máx 100)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.queries.ListMovements(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetMovement godoc
// @Summary      Detalle de un movimiento
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/movements/{id} [get]
func (h *StockHandler) GetMovement(c *fiber.Ctx) error {
	out, err := h.queries.GetMovement(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListProductMovements godoc
// @Summary      Historial de un producto
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks/movements/product/{productId} [get]
func (h *StockHandler) ListProductMovements(c *fiber.Ctx) error {
	out, err := h.queries.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListAlerts godoc
// @Summary      Alertas de stock bajo
// @Description  Productos activos con quantity_on_hand <= alert_threshold.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stocks/alerts [get]
func (h *StockHandler) ListAlerts(c *fiber.Ctx) error {
	out, err := h.queries.ListLowStock()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
