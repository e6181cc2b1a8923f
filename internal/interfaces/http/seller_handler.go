package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercial-api/internal/application/dto"
	"github.com/jhoicas/comercial-api/internal/application/facade"
	"github.com/jhoicas/comercial-api/internal/application/sellers"
	"github.com/jhoicas/comercial-api/internal/application/usecase"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
)

// SellerHandler maneja las peticiones HTTP para Seller (protegido).
// El CRUD pasa por SellerUseCase; autorización y validación por la fachada.
type SellerHandler struct {
	uc     *usecase.SellerUseCase
	facade *facade.Facade
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.SellerUseCase, f *facade.Facade) *SellerHandler {
	return &SellerHandler{uc: uc, facade: f}
}

// Create godoc
// @Summary      Crear vendedor (nace Pending)
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "code, name, territory, commission"
// @Success      201   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sellers [post]
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código de vendedor ya existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidCommission) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCode godoc
// @Summary      Obtener vendedor por código
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del vendedor"
// @Success      200   {object}  dto.SellerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sellers/{code} [get]
func (h *SellerHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vendedores
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        limit    query  int   false  "Límite"   default(20)
// @Param        offset   query  int   false  "Offset"   default(0)
// @Param        active   query  bool  false  "Solo activos"
// @Success      200      {object}  dto.SellerListResponse
// @Router       /api/sellers [get]
func (h *SellerHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.QueryBool("active", false), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vendedor (no toca autorización)
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del vendedor"
// @Param        body  body  dto.UpdateSellerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sellers/{code} [put]
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("code"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCommission) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	return c.JSON(out)
}

// Authorize godoc
// @Summary      Autorizar vendedor (Pending -> Authorized)
// @Description  Requiere un empleado RRHH activo. Idempotente sobre un
//	vendedor ya autorizado.
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del vendedor"
// @Param        body  body  dto.AuthorizeSellerRequest  true  "employee_id, commission (override opcional)"
// @Success      200   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sellers/{code}/authorize [post]
func (h *SellerHandler) Authorize(c *fiber.Ctx) error {
	var in dto.AuthorizeSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := h.facade.AuthorizeSeller(c.Context(), c.Params("code"), in.EmployeeID, in.Commission)
	if !res.Success {
		return failJSON(c, res)
	}
	return c.JSON(toSellerResponse(res.Data.(*entity.Seller)))
}

// Validate godoc
// @Summary      Consultar validez de un vendedor
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del vendedor"
// @Success      200   {object}  dto.ValidateSellerResponse
// @Router       /api/sellers/{code}/validate [get]
func (h *SellerHandler) Validate(c *fiber.Ctx) error {
	res := h.facade.ValidateSeller(c.Context(), c.Params("code"))
	if !res.Success {
		return failJSON(c, res)
	}
	v := res.Data.(*sellers.ValidationResult)
	out := dto.ValidateSellerResponse{IsValid: v.IsValid, Reason: v.Reason}
	if v.Seller != nil {
		out.Seller = toSellerResponse(v.Seller)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar vendedor (baja lógica)
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del vendedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{code} [delete]
func (h *SellerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("code")); err != nil {
		if errors.Is(err, domain.ErrSellerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{
		Code:         s.Code,
		Name:         s.Name,
		Territory:    s.Territory,
		Commission:   s.Commission,
		Authorized:   s.Authorized,
		AuthorizedAt: s.AuthorizedAt,
		ApprovedBy:   s.ApprovedBy,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
