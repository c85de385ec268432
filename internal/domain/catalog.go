package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	// ItemCount is a display hint from the seed and is not reconciled
	// against actual membership.
	ItemCount int `json:"item_count"`
}

type Nutrition struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// FoodItem is a single catalog entry.
type FoodItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Image       string           `json:"image"`
	CategoryID  string           `json:"category_id"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"review_count"`
	CafeName    string           `json:"cafe_name"`
	Tags        []string         `json:"tags"`
	IsPopular   bool             `json:"is_popular"`
	IsOnSale    bool             `json:"is_on_sale"`
	Nutrition   *Nutrition       `json:"nutrition,omitempty"`
}

// EffectivePrice returns the sale price when the item is on sale and has one,
// otherwise the base price.
func (f FoodItem) EffectivePrice() decimal.Decimal {
	if f.IsOnSale && f.SalePrice != nil {
		return *f.SalePrice
	}
	return f.Price
}

// Clone returns a copy that shares no mutable state with f.
func (f FoodItem) Clone() FoodItem {
	c := f
	c.Tags = slices.Clone(f.Tags)
	if f.SalePrice != nil {
		sp := *f.SalePrice
		c.SalePrice = &sp
	}
	if f.Nutrition != nil {
		n := *f.Nutrition
		c.Nutrition = &n
	}
	return c
}

type Review struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"product_id"`
	UserName   string  `json:"user_name"`
	UserAvatar string  `json:"user_avatar"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
	Date       string  `json:"date"`
	Helpful    int     `json:"helpful"`
}

// Promo is a home page banner.
type Promo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	CTAText  string `json:"cta_text"`
	CTALink  string `json:"cta_link"`
}
