package entity

// CartItem pairs a product with the quantity a shopper intends to buy.
// A cart holds at most one CartItem per product ID and quantity is always >= 1;
// a non-positive quantity removes the item instead of storing a zero entry.
type CartItem struct {
	Product  Product
	Quantity int
}

// CartItems is an ordered cart snapshot, insertion order = add order.
type CartItems []CartItem

// TotalItems returns the sum of quantities across all items.
func (items CartItems) TotalItems() int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}

// Subtotal returns the sum of price times quantity across all items.
func (items CartItems) Subtotal() float64 {
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}

	return total
}
