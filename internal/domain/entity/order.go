package entity

// Order represents a placed order. Orders are create-only: once persisted
// they are never mutated by this service.
//
// ProductID is a reference, not ownership; the referenced product may change
// or disappear independently. Fields holds the full submitted payload
// verbatim so that free-form client attributes survive the round trip.
type Order struct {
	OrderID         string         `json:"order_id"`
	ProductID       string         `json:"product_id"`
	ProductName     string         `json:"product_name"`
	ProductQuantity float64        `json:"product_quantity"`
	ProductPrice    float64        `json:"product_price"`
	ProductDiscount float64        `json:"product_discount"`
	FinalPrice      float64        `json:"final_price"` // price * quantity * (1 - discount/100)
	Fields          map[string]any `json:"-"`           // Pass-through payload, persisted as-is.
}
