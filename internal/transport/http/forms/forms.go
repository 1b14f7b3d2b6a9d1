package forms

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// CafeForm 新建和编辑共用。四个布尔对应 checkbox，
// 没勾选浏览器不会提交该字段，绑定后保持零值 false。
type CafeForm struct {
	Name         string `form:"name" binding:"required"`
	MapURL       string `form:"map_url" binding:"required,url"`
	ImgURL       string `form:"img_url" binding:"required,url"`
	Location     string `form:"location" binding:"required"`
	Seats        string `form:"seats" binding:"required"`
	CoffeePrice  string `form:"coffee_price" binding:"required"`
	HasSockets   bool   `form:"has_sockets"`
	HasToilet    bool   `form:"has_toilet"`
	HasWifi      bool   `form:"has_wifi"`
	CanTakeCalls bool   `form:"can_take_calls"`
}

// RegisterForm 不校验邮箱格式、不做强度检查，维持对外契约
type RegisterForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	Name     string `form:"name" binding:"required"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// fieldMsgs 按表单字段给人看的错误文案
var fieldMsgs = map[string]string{
	"required": "This field is required.",
	"url":      "Must be a valid URL.",
}

// FieldErrors 把 validator 的错误摊平成 field → message，
// 模板里按 form tag 名取用。非校验类错误统一挂在 "_form" 上。
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_form"] = "Invalid form submission."
		return out
	}
	for _, fe := range verrs {
		msg, ok := fieldMsgs[fe.Tag()]
		if !ok {
			msg = "Invalid value."
		}
		out[snake(fe.Field())] = msg
	}
	return out
}

// snake 把 StructField 名转成 form tag 风格（MapURL → map_url）
func snake(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			// 连续大写（URL）只在进入时断一次
			if i > 0 && (s[i-1] < 'A' || s[i-1] > 'Z') {
				out = append(out, '_')
			}
			ch += 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}
