package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercial-api/internal/application/dto"
	"github.com/jhoicas/comercial-api/internal/application/facade"
	"github.com/jhoicas/comercial-api/internal/application/inventory"
	"github.com/jhoicas/comercial-api/internal/application/reports"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos e inventario
// (protegido). Todas las operaciones de negocio pasan por la fachada.
type InventoryHandler struct {
	facade *facade.Facade
	kardex *reports.KardexUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(f *facade.Facade, kardex *reports.KardexUseCase) *InventoryHandler {
	return &InventoryHandler{facade: f, kardex: kardex}
}

// statusForCode traduce el código estable de la fachada a HTTP status.
func statusForCode(code string) int {
	switch code {
	case facade.CodeInvalidInput:
		return fiber.StatusBadRequest
	case facade.CodeNotFound:
		return fiber.StatusNotFound
	case facade.CodeInvalidState, facade.CodeInsufficientStock, facade.CodeConflict:
		return fiber.StatusConflict
	case facade.CodeStorageUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func failJSON(c *fiber.Ctx, res facade.Result) error {
	return c.Status(statusForCode(res.Code)).JSON(dto.ErrorResponse{Code: res.Code, Message: res.Message})
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type (IN/OUT/ADJUSTMENT), quantity, reason, reference_doc"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := h.facade.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID:    in.ProductID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		ReferenceDoc: in.ReferenceDoc,
		UserID:       userID,
	})
	if !res.Success {
		return failJSON(c, res)
	}
	result := res.Data.(*inventory.MovementResult)
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement:     toMovementResponse(result.Movement),
		BelowMinimum: result.BelowMinimum,
		AboveMaximum: result.AboveMaximum,
	})
}

// GetStock godoc
// @Summary      Stock actual de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	res := h.facade.CurrentStock(c.Context(), productID)
	if !res.Success {
		return failJSON(c, res)
	}
	return c.JSON(dto.StockResponse{ProductID: productID, StockActual: res.Data.(int)})
}

// AuditStock godoc
// @Summary      Auditar stock contra el libro de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockAuditResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/audit [get]
func (h *InventoryHandler) AuditStock(c *fiber.Ctx) error {
	res := h.facade.AuditStock(c.Context(), c.Params("id"))
	if !res.Success {
		return failJSON(c, res)
	}
	audit := res.Data.(*inventory.StockAudit)
	return c.JSON(dto.StockAuditResponse{
		ProductID:   audit.ProductID,
		StockActual: audit.StockActual,
		LedgerSum:   audit.LedgerSum,
		Consistent:  audit.Consistent,
	})
}

// ListMovements godoc
// @Summary      Kardex de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	from, to := parseDateRange(c)
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	res := h.facade.ListMovements(c.Context(), c.Params("id"), from, to, page.Limit, page.Offset)
	if !res.Success {
		return failJSON(c, res)
	}
	movs := res.Data.([]*entity.Movement)
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// KardexPDF godoc
// @Summary      Kardex de un producto en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "Desde (RFC3339)"
// @Param        to    query  string  false  "Hasta (RFC3339)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/kardex.pdf [get]
func (h *InventoryHandler) KardexPDF(c *fiber.Ctx) error {
	from, to := parseDateRange(c)
	pdfBytes, err := h.kardex.GenerateKardexPDF(c.Context(), c.Params("id"), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

func parseDateRange(c *fiber.Ctx) (from, to *time.Time) {
	if s := c.Query("from"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			from = &t
		}
	}
	if s := c.Query("to"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			to = &t
		}
	}
	return from, to
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		StockBefore:  m.StockBefore,
		StockAfter:   m.StockAfter,
		Reason:       m.Reason,
		ReferenceDoc: m.ReferenceDoc,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}
