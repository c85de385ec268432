package http

import (
	"time"

	"github.com/fjod/foodbay/internal/domain"
)

type ItemDTO struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          string            `json:"price"`
	SalePrice      string            `json:"sale_price,omitempty"`
	EffectivePrice string            `json:"effective_price"`
	Image          string            `json:"image"`
	CategoryID     string            `json:"category_id"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"review_count"`
	CafeName       string            `json:"cafe_name"`
	Tags           []string          `json:"tags"`
	IsPopular      bool              `json:"is_popular"`
	IsOnSale       bool              `json:"is_on_sale"`
	Nutrition      *domain.Nutrition `json:"nutrition,omitempty"`
}

type CategoryDTO struct {
	domain.Category
	// ActualItemCount is computed from the catalog, unlike ItemCount.
	ActualItemCount int `json:"actual_item_count"`
}

type ItemListDTO struct {
	Items []ItemDTO `json:"items"`
	Count int       `json:"count"`
}

type CartLineDTO struct {
	ItemID    string  `json:"item_id"`
	Item      ItemDTO `json:"item"`
	Quantity  int     `json:"quantity"`
	UnitPrice string  `json:"unit_price"`
	LineTotal string  `json:"line_total"`
}

type TotalsDTO struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"delivery_fee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

type CartDTO struct {
	Lines     []CartLineDTO `json:"lines"`
	ItemCount int           `json:"item_count"`
	TotalsDTO
}

type OrderDTO struct {
	OrderNumber        string              `json:"order_number"`
	Lines              []CartLineDTO       `json:"lines"`
	ItemCount          int                 `json:"item_count"`
	Totals             TotalsDTO           `json:"totals"`
	DeliveryInfo       domain.DeliveryInfo `json:"delivery_info"`
	PaymentMethod      string              `json:"payment_method"`
	PaymentMethodLabel string              `json:"payment_method_label"`
	PlacedAt           time.Time           `json:"placed_at"`
}

func toItemDTO(item domain.FoodItem) ItemDTO {
	dto := ItemDTO{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price.StringFixed(2),
		EffectivePrice: item.EffectivePrice().StringFixed(2),
		Image:          item.Image,
		CategoryID:     item.CategoryID,
		Rating:         item.Rating,
		ReviewCount:    item.ReviewCount,
		CafeName:       item.CafeName,
		Tags:           item.Tags,
		IsPopular:      item.IsPopular,
		IsOnSale:       item.IsOnSale,
		Nutrition:      item.Nutrition,
	}
	if item.SalePrice != nil {
		dto.SalePrice = item.SalePrice.StringFixed(2)
	}
	return dto
}

func toItemList(items []domain.FoodItem) ItemListDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toItemDTO(item))
	}
	return ItemListDTO{Items: dtos, Count: len(dtos)}
}

func toLineDTOs(lines []domain.CartLine) []CartLineDTO {
	dtos := make([]CartLineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, CartLineDTO{
			ItemID:    l.Item.ID,
			Item:      toItemDTO(l.Item),
			Quantity:  l.Quantity,
			UnitPrice: l.Item.EffectivePrice().StringFixed(2),
			LineTotal: l.LineTotal().StringFixed(2),
		})
	}
	return dtos
}

func toTotalsDTO(t domain.Totals) TotalsDTO {
	return TotalsDTO{
		Subtotal:    t.Subtotal.StringFixed(2),
		DeliveryFee: t.DeliveryFee.StringFixed(2),
		Tax:         t.Tax.StringFixed(2),
		Total:       t.Total.StringFixed(2),
	}
}

func toOrderDTO(s *domain.OrderSnapshot) OrderDTO {
	return OrderDTO{
		OrderNumber:        s.OrderNumber,
		Lines:              toLineDTOs(s.Lines),
		ItemCount:          s.ItemCount(),
		Totals:             toTotalsDTO(s.Totals),
		DeliveryInfo:       s.DeliveryInfo,
		PaymentMethod:      s.PaymentMethod.String(),
		PaymentMethodLabel: s.PaymentMethod.Label(),
		PlacedAt:           s.PlacedAt,
	}
}
