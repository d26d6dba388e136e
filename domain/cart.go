package domain

// CartItem represents a single item in the cart. It is a value copy of the
// product at the time it was added, plus a quantity.
type CartItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
	Stock     int    `json:"stock"`
	Quantity  int    `json:"quantity"`
}

// CartItemFromProduct builds a cart item from a product with the given quantity.
func CartItemFromProduct(p Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Stock:     p.Stock,
		Quantity:  quantity,
	}
}

// TotalPrice calculates the total price of the given cart items.
func TotalPrice(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units across the given cart items.
func ItemCount(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// FindItemIndex returns the index of the cart item matching the given product ID.
// Returns -1 if not found. This provides O(n) search but centralizes the logic
// for easier optimization later.
func FindItemIndex(items []CartItem, productID int64) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
