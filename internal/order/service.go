package order

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"skydish-core/internal/coupon"
	"skydish-core/internal/logger"
	"skydish-core/internal/status"

	"go.uber.org/zap"
)

// Indonesian mobile numbers: 08…, 628…, +628… with 9 to 13 digits total.
var phonePattern = regexp.MustCompile(`^(\+62|62|0)8[0-9]{7,11}$`)

type PlaceParams struct {
	CustomerID    string
	SessionID     string
	Items         []LineItem
	Recipient     Recipient
	CouponCode    *string
	PaymentMethod PaymentMethod
}

type SortKey string

const (
	SortByCreatedAt SortKey = "createdAt"
	SortByTotal     SortKey = "total"
	SortByStatus    SortKey = "status"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// ListParams filters post-normalization: Status matches the canonical state,
// Search matches id, recipient name/phone/address and coupon code.
type ListParams struct {
	CustomerID string
	Status     *status.Canonical
	Search     string
	SortBy     SortKey
	SortDir    SortDir
	Page       int
	Limit      int
}

type Service interface {
	// Place creates an order tied to an open checkout session. The coupon
	// code must already have been validated against the cart; a decline here
	// still aborts placement.
	Place(ctx context.Context, params PlaceParams) (*Order, error)

	GetDetail(ctx context.Context, orderID string) (*Order, error)

	List(ctx context.Context, params ListParams) ([]*Order, error)

	// AdvanceStatus moves the order one canonical step forward, optimistic
	// locally with rollback if the remote write fails.
	AdvanceStatus(ctx context.Context, o *Order, target status.Canonical) (*Order, error)

	UpdatePaymentStatus(ctx context.Context, orderID string, ps PaymentStatus) (*Order, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Place(ctx context.Context, params PlaceParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Place"),
		zap.String("customer_id", params.CustomerID),
		zap.Int("item_count", len(params.Items)),
	)

	// 1. Validate input. These never reach the remote service.
	if len(params.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateRecipient(params.Recipient); err != nil {
		log.Warn("recipient validation failed", zap.Error(err))
		return nil, err
	}
	if params.PaymentMethod != PaymentCashOnDelivery && params.PaymentMethod != PaymentOnline {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayment, params.PaymentMethod)
	}

	// 2. Compute subtotal.
	subtotal := 0
	for _, item := range params.Items {
		subtotal += item.Price * item.Quantity
	}

	// 3. Apply the coupon. From here the resulting charge is immutable
	// history; later re-evaluation only ever touches the in-progress cart.
	discount := 0
	if params.CouponCode != nil {
		res, err := coupon.Apply(*params.CouponCode, subtotal)
		if err != nil {
			log.Warn("coupon declined at placement", zap.Error(err))
			return nil, err
		}
		discount = res.Discount
	}

	o := &Order{
		CustomerID:    params.CustomerID,
		SessionID:     params.SessionID,
		Items:         params.Items,
		Recipient:     params.Recipient,
		Subtotal:      subtotal,
		CouponCode:    params.CouponCode,
		Discount:      discount,
		RawStatus:     rawStatusFor[status.CanonicalOrder],
		PaymentMethod: params.PaymentMethod,
		PaymentStatus: PaymentStatusPending,
		CreatedAt:     s.now(),
	}

	// 4. Persist.
	created, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, fmt.Errorf("create order: %w", err)
	}

	log.Info("order placed",
		zap.String("order_id", created.ID),
		zap.Int("subtotal", created.Subtotal),
		zap.Int("discount", created.Discount),
		zap.Int("final_charge", created.FinalCharge()),
	)

	return created, nil
}

func (s *service) GetDetail(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Order, error) {
	orders, err := s.repo.ListByCustomer(ctx, params.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	filtered := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if params.Status != nil && o.Canonical() != *params.Status {
			continue
		}
		if params.Search != "" && !matchesSearch(o, params.Search) {
			continue
		}
		filtered = append(filtered, o)
	}

	sortOrders(filtered, params.SortBy, params.SortDir)

	return paginate(filtered, params.Page, params.Limit), nil
}

func (s *service) AdvanceStatus(ctx context.Context, o *Order, target status.Canonical) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdvanceStatus"),
		zap.String("order_id", o.ID),
		zap.String("target", string(target)),
	)

	from := o.Canonical()
	if !transitionAllowed(from, target) {
		log.Warn("transition declined", zap.String("from", string(from)))
		return nil, &IllegalTransitionError{From: from, To: target}
	}

	// Two-phase: tentative local apply, then confirm or revert. The raw
	// status must read back unchanged if the remote write fails.
	prev := o.RawStatus
	o.RawStatus = rawStatusFor[target]

	updated, err := s.repo.PatchStatus(ctx, o.ID, o.RawStatus)
	if err != nil {
		o.RawStatus = prev
		log.Error("status write failed, rolled back", zap.Error(err))
		return nil, fmt.Errorf("advance status: %w", err)
	}

	o.UpdatedAt = updated.UpdatedAt

	log.Info("order status advanced", zap.String("from", string(from)))
	return updated, nil
}

func (s *service) UpdatePaymentStatus(ctx context.Context, orderID string, ps PaymentStatus) (*Order, error) {
	switch ps {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayStatus, ps)
	}

	updated, err := s.repo.PatchPaymentStatus(ctx, orderID, ps)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	logger.FromCtx(ctx).Info("payment status updated",
		zap.String("order_id", orderID),
		zap.String("payment_status", string(ps)),
	)

	return updated, nil
}

func validateRecipient(r Recipient) error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Address) == "" {
		return ErrInvalidContact
	}
	if !phonePattern.MatchString(strings.TrimSpace(r.Phone)) {
		return fmt.Errorf("%w: bad phone number", ErrInvalidContact)
	}
	return nil
}

func matchesSearch(o *Order, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	fields := []string{o.ID, o.Recipient.Name, o.Recipient.Phone, o.Recipient.Address}
	if o.CouponCode != nil {
		fields = append(fields, *o.CouponCode)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// statusRank orders canonical states by lifecycle position for sorting.
var statusRank = map[status.Canonical]int{
	status.CanonicalOrder:      0,
	status.CanonicalProcessing: 1,
	status.CanonicalDelivery:   2,
	status.CanonicalDone:       3,
	status.CanonicalCancelled:  4,
}

func sortOrders(orders []*Order, key SortKey, dir SortDir) {
	less := func(a, b *Order) bool {
		switch key {
		case SortByTotal:
			return a.FinalCharge() < b.FinalCharge()
		case SortByStatus:
			return statusRank[a.Canonical()] < statusRank[b.Canonical()]
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if dir == SortDesc {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
}

func paginate(orders []*Order, page, limit int) []*Order {
	if limit <= 0 {
		return orders
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	if start >= len(orders) {
		return []*Order{}
	}
	end := start + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}
