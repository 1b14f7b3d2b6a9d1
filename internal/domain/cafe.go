package domain

// Cafe 店铺条目（配套设施用布尔位表示）
type Cafe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"uniqueIndex;size:250;not null" json:"name"`
	MapURL       string `gorm:"size:500;not null" json:"map_url"`
	ImgURL       string `gorm:"size:500;not null" json:"img_url"`
	Location     string `gorm:"size:250;not null;index" json:"location"`
	Seats        string `gorm:"size:250;not null" json:"seats"`
	CoffeePrice  string `gorm:"size:250" json:"coffee_price"`
	HasSockets   bool   `gorm:"not null" json:"has_sockets"`
	HasToilet    bool   `gorm:"not null" json:"has_toilet"`
	HasWifi      bool   `gorm:"not null" json:"has_wifi"`
	CanTakeCalls bool   `gorm:"not null" json:"can_take_calls"`
}

func (Cafe) TableName() string { return "cafes" }

type CafeRepository interface {
	Create(c *Cafe) error
	FindByID(id uint) (*Cafe, error)
	ListAll() ([]Cafe, error)
	ListByLocation(loc string) ([]Cafe, error)
	Update(c *Cafe) error
	Delete(id uint) error
}
