package repo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coffee-wifi/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// 每个测试一个命名内存库；cache=shared 让连接池里的连接看到同一份数据
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Cafe{}, &domain.User{}))
	return db
}

func sampleCafe(name, loc string) *domain.Cafe {
	return &domain.Cafe{
		Name:        name,
		MapURL:      "https://maps.example.com/" + name,
		ImgURL:      "https://img.example.com/" + name + ".jpg",
		Location:    loc,
		Seats:       "20-30",
		CoffeePrice: "£2.50",
		HasWifi:     true,
	}
}
