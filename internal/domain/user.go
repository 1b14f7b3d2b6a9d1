package domain

// User 注册账号。PasswordHash 永远存散列，不存明文。
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:100" json:"email"`
	PasswordHash string `gorm:"size:200;column:password" json:"-"`
	Name         string `gorm:"size:100" json:"name"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
}
