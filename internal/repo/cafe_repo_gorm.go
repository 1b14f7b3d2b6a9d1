package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"coffee-wifi/internal/domain"
)

type CafeRepo struct{ db *gorm.DB }

func NewCafeRepo(db *gorm.DB) *CafeRepo { return &CafeRepo{db: db} }

func (r *CafeRepo) Create(c *domain.Cafe) error {
	if err := r.db.Create(c).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *CafeRepo) FindByID(id uint) (*domain.Cafe, error) {
	var c domain.Cafe
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CafeRepo) ListAll() ([]domain.Cafe, error) {
	var cs []domain.Cafe
	err := r.db.Order("id asc").Find(&cs).Error
	return cs, err
}

// ListByLocation 精确匹配，大小写敏感，不做模糊
func (r *CafeRepo) ListByLocation(loc string) ([]domain.Cafe, error) {
	var cs []domain.Cafe
	err := r.db.Where("location = ?", loc).Order("id asc").Find(&cs).Error
	return cs, err
}

// Update 整行覆盖。Save 会把零值布尔一起写回去。
func (r *CafeRepo) Update(c *domain.Cafe) error {
	if err := r.db.Save(c).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return nil
}

// Delete id 不存在时静默返回 nil
func (r *CafeRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Cafe{}, "id = ?", id).Error
}

// isDupKey 不依赖各驱动的错误类型，按报文兜底判断唯一键冲突
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
