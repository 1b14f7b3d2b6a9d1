package domain

import "errors"

// 唯一键冲突：注册重复邮箱 / 新建或改名撞到已有店名
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateName  = errors.New("cafe name already taken")
)
