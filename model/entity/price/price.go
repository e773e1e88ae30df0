package price

// Column widths of the price table.
const (
	MaxProductIDLen    = 64
	MaxValueLen        = 32
	MaxCurrencyCodeLen = 3
)

// Price is one row of the price lookup store. Value stays a decimal string
// so amounts never pass through float64.
type Price struct {
	ID           string `gorm:"column:id;primaryKey;size:36" bson:"_id" redis:"id" json:"id"`
	ProductID    string `gorm:"column:product_id;size:64;not null;index" bson:"product_id" redis:"product_id" json:"productId"`
	Value        string `gorm:"column:value;size:32;not null" bson:"value" redis:"value" json:"value"`
	CurrencyCode string `gorm:"column:currency_code;size:3;not null" bson:"currency_code" redis:"currency_code" json:"currencyCode"`
}

func (Price) TableName() string {
	return "price"
}

// IsZero reports whether p carries no price data.
func (p Price) IsZero() bool {
	return p == Price{}
}
