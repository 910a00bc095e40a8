// middlewares/ws_auth.go
package middlewares

import (
	"net/http"
	"strings"

	"plateful/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware ใช้ตรวจสอบ JWT จากทั้ง query และ header
// (browser เปิด websocket ใส่ header เองไม่ได้ เลยต้องรับทาง query ด้วย)
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) ลองอ่านจาก query ก่อน
		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else {
			// 2) ถ้าไม่มี ลองอ่านจาก Header
			h := c.GetHeader("Authorization")
			if h != "" && strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		c.Set("uid", claims.UID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
