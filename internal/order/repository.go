package order

import "context"

// Repository is the narrow contract against the remote data service. Listing
// is raw: canonical-status filtering, search, sort and paging all happen in
// the service after normalization, never on raw status strings.
type Repository interface {
	// Create persists a new order and returns it with the server-assigned id.
	Create(ctx context.Context, o *Order) (*Order, error)

	// GetByID returns ErrOrderNotFound when the order does not exist.
	GetByID(ctx context.Context, id string) (*Order, error)

	// ListByCustomer returns every order for a customer; empty customerID
	// lists all orders (the fulfillment-staff view).
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)

	// PatchStatus writes the raw status value and returns the updated record.
	PatchStatus(ctx context.Context, id, rawStatus string) (*Order, error)

	PatchPaymentStatus(ctx context.Context, id string, ps PaymentStatus) (*Order, error)
}
