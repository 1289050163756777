package domain

// LineItem is one product entry in the cart. Name, price and image are
// snapshots taken when the item was added; later catalog changes do not
// touch lines already in the cart.
type LineItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the ordered line items of one session. Invariants on every
// exit path of the mutators: at most one line per product id, and every
// stored line has quantity >= 1.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
}

func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

// Add merges quantity into an existing line with the same product id, or
// appends a new line. Quantities below 1 count as 1.
func (c *Cart) Add(item LineItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += quantity
			return
		}
	}

	item.Quantity = quantity
	c.Items = append(c.Items, item)
}

// Remove drops the line with the given product id. Missing ids are a no-op.
func (c *Cart) Remove(productID string) {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line in place. A quantity of zero or less removes
// the line; carts never store a zero-quantity item. Missing ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
