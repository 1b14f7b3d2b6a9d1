package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-wifi/internal/core/flash"
	"coffee-wifi/internal/core/session"
	"coffee-wifi/internal/domain"
)

const keyCurrentUser = "currentUser"

// CurrentUser 每个请求解析一次会话 cookie 并回查用户行，
// 之后的 handler 只从 context 拿身份，不碰 cookie。
// cookie 无效、或 token 里的 uid 已经不在库里，都按匿名处理。
func CurrentUser(sess *session.Manager, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, ok := sess.Read(c); ok {
			u, err := users.FindByID(uid)
			if err != nil {
				_ = c.Error(err)
			} else if u != nil {
				c.Set(keyCurrentUser, u)
			}
		}
		c.Next()
	}
}

// UserFrom 取当前登录用户，匿名返回 nil
func UserFrom(c *gin.Context) *domain.User {
	if v, ok := c.Get(keyCurrentUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// RequireLogin 店铺的增删改要登录。匿名 → 提示 + 转去登录页。
func RequireLogin(fl *flash.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			fl.AddTo(c, "Please log in to manage cafes.")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
