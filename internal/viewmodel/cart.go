package viewmodel

import (
	"github.com/geerin/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// AddToCart appends a product to the cart. The cart is a set keyed by product
// id: adding an id already present is a no-op.
func (vm *ViewModel) AddToCart(p domain.Product) {
	for _, item := range vm.cart {
		if item.ID == p.ID {
			return
		}
	}
	vm.cart = append(vm.cart, p)
}

// RemoveFromCart removes the product with the given id, if present
func (vm *ViewModel) RemoveFromCart(id int) {
	for i, item := range vm.cart {
		if item.ID == id {
			vm.cart = append(vm.cart[:i], vm.cart[i+1:]...)
			return
		}
	}
}

// InCart reports whether the product id is in the cart
func (vm *ViewModel) InCart(id int) bool {
	for _, item := range vm.cart {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Cart returns the cart contents in insertion order
func (vm *ViewModel) Cart() []domain.Product {
	return vm.cart
}

// CartCount returns the number of items in the cart
func (vm *ViewModel) CartCount() int {
	return len(vm.cart)
}

// CartTotal returns the sum of cart prices rounded to two decimals. Summing
// through decimal avoids the float drift a plain accumulation would show.
func (vm *ViewModel) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range vm.cart {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total.Round(2)
}
