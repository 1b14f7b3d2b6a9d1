package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims 只带用户 id，其余信息每次请求回查 Store
type Claims struct {
	UID uint `json:"uid"`
	jwt.RegisteredClaims
}

// Manager 签发/解析会话 cookie。token 用 HS256 + 服务端密钥签名，
// 客户端拿不到密钥就伪造不了。
type Manager struct {
	Secret     []byte
	Issuer     string
	TTL        time.Duration
	CookieName string
}

func (m *Manager) Issue(uid uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

func (m *Manager) Parse(tokenStr string) (uint, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return m.Secret, nil
	}, jwt.WithIssuer(m.Issuer), jwt.WithLeeway(60*time.Second))
	if err != nil {
		return 0, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c.UID, nil
	}
	return 0, errors.New("invalid token")
}

// Login 种会话 cookie（HttpOnly，浏览器脚本读不到）
func (m *Manager) Login(c *gin.Context, uid uint) error {
	tok, err := m.Issue(uid)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.CookieName, tok, int(m.TTL.Seconds()), "/", "", false, true)
	return nil
}

// Logout 清掉会话 cookie
func (m *Manager) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.CookieName, "", -1, "/", "", false, true)
}

// Read 从请求里取 uid。cookie 缺失/过期/被改都按匿名算。
func (m *Manager) Read(c *gin.Context) (uint, bool) {
	tok, err := c.Cookie(m.CookieName)
	if err != nil || tok == "" {
		return 0, false
	}
	uid, err := m.Parse(tok)
	if err != nil {
		return 0, false
	}
	return uid, true
}
