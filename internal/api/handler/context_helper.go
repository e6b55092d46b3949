package handler

import "github.com/gin-gonic/gin"

// currentUserID 取 JWTAuth 注入的用户 ID
// 仅可在挂了认证中间件的路由组内调用
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
