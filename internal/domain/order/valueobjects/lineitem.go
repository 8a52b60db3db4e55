package valueobjects

import "fmt"

// LineItem captures a product at the moment an order is placed. Name and
// unit price are snapshots; later product edits never change placed orders.
type LineItem struct {
	productSID  string
	productName string
	unitPrice   Money
	quantity    int
}

func NewLineItem(productSID, productName string, unitPrice Money, quantity int) (LineItem, error) {
	if productSID == "" {
		return LineItem{}, fmt.Errorf("product SID is required")
	}
	if productName == "" {
		return LineItem{}, fmt.Errorf("product name is required")
	}
	if quantity <= 0 {
		return LineItem{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if !unitPrice.IsPositive() {
		return LineItem{}, fmt.Errorf("unit price must be positive")
	}

	return LineItem{
		productSID:  productSID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

func (li LineItem) ProductSID() string {
	return li.productSID
}

func (li LineItem) ProductName() string {
	return li.productName
}

func (li LineItem) UnitPrice() Money {
	return li.unitPrice
}

func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns unit price times quantity.
func (li LineItem) Total() Money {
	return li.unitPrice.MultiplyBy(li.quantity)
}
