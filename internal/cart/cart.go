package cart

import "github.com/nextlayer-studio/storefront-backend/pkg/db/models"

// Cart is an ordered collection of lines with at most one line per product
// id. Insertion order is preserved across mutations.
type Cart struct {
	Lines []Line
}

// Add increments the quantity when the product is already present, otherwise
// appends a fresh snapshot with quantity 1.
func (c *Cart) Add(product *models.Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, NewLine(product))
}

// UpdateQuantity applies a signed delta to the line's quantity. The change is
// applied only when the resulting quantity stays positive; otherwise the line
// is left untouched and false is returned. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(productID string, delta int) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		next := c.Lines[i].Quantity + delta
		if next <= 0 {
			return false
		}
		c.Lines[i].Quantity = next
		return true
	}
	return false
}

// Remove drops the line entirely. Missing ids are a no-op.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Count is the sum of line quantities, not the number of lines.
func (c *Cart) Count() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// Total sums effective price times quantity across all lines.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}
