package entity

import "time"

// CartItem savatdagi qator
type CartItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

// LineTotal qator summasi
func (c CartItem) LineTotal() float64 {
	if c.Product == nil {
		return 0
	}
	return c.Product.Price * float64(c.Quantity)
}

// Cart xaridor sessiyasi savati
type Cart struct {
	SessionID  string     `json:"sessionId"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Subtotal   float64    `json:"subtotal"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Recalculate jami sonni va summani qayta hisoblash
func (c *Cart) Recalculate() {
	c.TotalItems = 0
	c.Subtotal = 0
	for _, item := range c.Items {
		c.TotalItems += item.Quantity
		c.Subtotal += item.LineTotal()
	}
}

// OrderStatus buyurtma holati
type OrderStatus string

const (
	OrderPlaced OrderStatus = "placed"
)

// OrderLine buyurtmadagi qator (narx buyurtma paytida muzlatiladi)
type OrderLine struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Order rasmiylashtirilgan buyurtma
type Order struct {
	ID        string      `json:"id"`
	SessionID string      `json:"sessionId"`
	Address   string      `json:"address"`
	Lines     []OrderLine `json:"lines"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
