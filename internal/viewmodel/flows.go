package viewmodel

import (
	"context"

	"github.com/geerin/backend/internal/domain"
	"github.com/geerin/backend/internal/usecase"
)

// Form returns the current add-product form state
func (vm *ViewModel) Form() ProductForm {
	return vm.form
}

// SetForm replaces the add-product form state
func (vm *ViewModel) SetForm(form ProductForm) {
	vm.form = form
}

// FormError returns the inline add-form error message
func (vm *ViewModel) FormError() string {
	return vm.formError
}

// FormSuccess returns the inline add-form success message
func (vm *ViewModel) FormSuccess() string {
	return vm.formSuccess
}

// SubmitAdd validates the add form and creates the product through the
// aggregator. Success clears the form, shows a success toast and re-runs the
// fetch cycle so the new product appears; any failure sets the inline error
// and an error toast.
func (vm *ViewModel) SubmitAdd(ctx context.Context) error {
	vm.formError = ""
	vm.formSuccess = ""

	price, ok := parsePrice(vm.form.Price)
	if vm.form.Name == "" || vm.form.ImageURL == "" || !ok {
		vm.formError = requiredFieldsMessage
		vm.showToast(ToastError, requiredFieldsMessage)
		return domain.ErrInvalidInput
	}

	_, err := vm.svc.CreateLocalProduct(ctx, domain.CreateProductRequest{
		Name:     vm.form.Name,
		Price:    price,
		ImageURL: vm.form.ImageURL,
		Category: vm.form.Category,
	})
	if err != nil {
		vm.formError = err.Error()
		vm.showToast(ToastError, err.Error())
		return err
	}

	vm.form = ProductForm{}
	vm.formSuccess = "Product added!"
	vm.showToast(ToastSuccess, "Product added!")
	return vm.Load(ctx)
}

// RequestDelete records a delete candidate awaiting explicit confirmation
func (vm *ViewModel) RequestDelete(id int) {
	vm.pendingDelete = id
	vm.hasPendingDelete = true
}

// PendingDelete returns the delete candidate, if a confirmation is pending
func (vm *ViewModel) PendingDelete() (int, bool) {
	return vm.pendingDelete, vm.hasPendingDelete
}

// CancelDelete drops the pending delete without touching the catalog
func (vm *ViewModel) CancelDelete() {
	vm.hasPendingDelete = false
}

// ConfirmDelete deletes the pending candidate through the aggregator and
// re-runs the fetch cycle. Without a prior RequestDelete it is a no-op.
func (vm *ViewModel) ConfirmDelete(ctx context.Context) error {
	if !vm.hasPendingDelete {
		return nil
	}
	id := vm.pendingDelete
	vm.hasPendingDelete = false

	if _, err := vm.svc.DeleteLocalProduct(ctx, id); err != nil {
		vm.showToast(ToastError, err.Error())
		return err
	}
	return vm.Load(ctx)
}

// BeginEdit opens the edit form pre-populated from the target product.
// Returns false when the id is not in the fetched set.
func (vm *ViewModel) BeginEdit(id int) bool {
	for _, p := range vm.products {
		if p.ID == id {
			vm.editID = id
			vm.editing = true
			vm.editError = ""
			vm.editForm = ProductForm{
				Name:     p.Name,
				Price:    formatPrice(p.Price),
				ImageURL: p.ImageURL,
				Category: p.Category,
			}
			return true
		}
	}
	return false
}

// Editing reports whether an edit form is open
func (vm *ViewModel) Editing() bool {
	return vm.editing
}

// EditForm returns the current edit form state
func (vm *ViewModel) EditForm() ProductForm {
	return vm.editForm
}

// SetEditForm replaces the edit form state
func (vm *ViewModel) SetEditForm(form ProductForm) {
	vm.editForm = form
}

// EditError returns the inline edit-form error message
func (vm *ViewModel) EditError() string {
	return vm.editError
}

// CancelEdit closes the edit form without applying anything
func (vm *ViewModel) CancelEdit() {
	vm.editing = false
	vm.editError = ""
}

// SaveEdit validates the edit form and applies it. By default the change is
// written only to client-held state and is lost on the next reload. With
// PersistLocalEdits set, edits whose target is local-origin go through the
// aggregator's update operation instead; remote-origin targets stay
// client-only overrides in either mode.
func (vm *ViewModel) SaveEdit(ctx context.Context) error {
	if !vm.editing {
		return nil
	}
	vm.editError = ""

	price, ok := parsePrice(vm.editForm.Price)
	if vm.editForm.Name == "" || vm.editForm.ImageURL == "" || !ok {
		vm.editError = requiredFieldsMessage
		return domain.ErrInvalidInput
	}

	target, found := vm.findProduct(vm.editID)
	if !found {
		vm.editing = false
		return domain.ErrProductNotFound
	}

	if vm.opts.PersistLocalEdits && target.IsLocal {
		_, err := vm.svc.UpdateLocalProduct(ctx, vm.editID, domain.UpdateProductRequest{
			Name:     vm.editForm.Name,
			Price:    price,
			ImageURL: vm.editForm.ImageURL,
			Category: vm.editForm.Category,
		})
		if err != nil {
			vm.editError = err.Error()
			return err
		}
		vm.editing = false
		vm.showToast(ToastSuccess, "Product updated!")
		return vm.Load(ctx)
	}

	for i := range vm.products {
		if vm.products[i].ID == vm.editID {
			vm.products[i].Name = vm.editForm.Name
			vm.products[i].Price = price
			vm.products[i].ImageURL = vm.editForm.ImageURL
			vm.products[i].Category = vm.editForm.Category
		}
	}
	vm.refilter()
	vm.editing = false
	vm.showToast(ToastSuccess, "Product updated!")
	return nil
}

// OpenDetail resolves the detail view for a product in the fetched set. Local
// products use their held description or the fixed fallback; remote products
// fetch the extended description through the aggregator, degrading to the
// fallback text on any failure. Nothing is cached across opens.
func (vm *ViewModel) OpenDetail(ctx context.Context, id int) (domain.Product, error) {
	p, found := vm.findProduct(id)
	if !found {
		return domain.Product{}, domain.ErrProductNotFound
	}

	if p.IsLocal {
		if p.Description == "" {
			p.Description = usecase.FallbackDescription
		}
		return p, nil
	}

	detail, err := vm.svc.GetProductDetail(ctx, id)
	if err != nil {
		p.Description = usecase.FallbackDescription
		return p, nil
	}
	p.Description = detail.Description
	return p, nil
}

// findProduct returns a copy of the product with the given id from the
// fetched set
func (vm *ViewModel) findProduct(id int) (domain.Product, bool) {
	for _, p := range vm.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
