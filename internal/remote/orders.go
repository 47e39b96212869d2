package remote

import (
	"context"
	"net/http"
	"time"

	"skydish-core/internal/order"

	"github.com/go-resty/resty/v2"
)

// OrdersClient reads and writes orders.
type OrdersClient struct {
	rest *resty.Client
}

var _ order.Repository = (*OrdersClient)(nil)

type lineItemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

type orderDTO struct {
	ID               string        `json:"id,omitempty"`
	CustomerID       string        `json:"customerId"`
	SessionID        string        `json:"sessionId"`
	Items            []lineItemDTO `json:"items"`
	RecipientName    string        `json:"recipientName"`
	RecipientPhone   string        `json:"recipientPhone"`
	RecipientAddress string        `json:"recipientAddress"`
	Subtotal         int           `json:"subtotal"`
	CouponCode       *string       `json:"couponCode,omitempty"`
	Discount         int           `json:"discount"`
	Status           string        `json:"status"`
	PaymentMethod    string        `json:"paymentMethod"`
	PaymentStatus    string        `json:"paymentStatus"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt,omitempty"`
	MissionID        *string       `json:"missionId,omitempty"`
}

func (d *orderDTO) toModel() *order.Order {
	items := make([]order.LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, order.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return &order.Order{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		SessionID:  d.SessionID,
		Items:      items,
		Recipient: order.Recipient{
			Name:    d.RecipientName,
			Phone:   d.RecipientPhone,
			Address: d.RecipientAddress,
		},
		Subtotal:      d.Subtotal,
		CouponCode:    d.CouponCode,
		Discount:      d.Discount,
		RawStatus:     d.Status,
		PaymentMethod: order.PaymentMethod(d.PaymentMethod),
		PaymentStatus: order.PaymentStatus(d.PaymentStatus),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		MissionID:     d.MissionID,
	}
}

func orderToDTO(o *order.Order) *orderDTO {
	items := make([]lineItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, lineItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return &orderDTO{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		SessionID:        o.SessionID,
		Items:            items,
		RecipientName:    o.Recipient.Name,
		RecipientPhone:   o.Recipient.Phone,
		RecipientAddress: o.Recipient.Address,
		Subtotal:         o.Subtotal,
		CouponCode:       o.CouponCode,
		Discount:         o.Discount,
		Status:           o.RawStatus,
		PaymentMethod:    string(o.PaymentMethod),
		PaymentStatus:    string(o.PaymentStatus),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		MissionID:        o.MissionID,
	}
}

func (c *OrdersClient) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	var created orderDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(orderToDTO(o)).
		SetResult(&created).
		Post("/orders")

	if err := checkResponse(resp, err, order.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return created.toModel(), nil
}

func (c *OrdersClient) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var dto orderDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&dto).
		Get("/orders/" + id)

	if err := checkResponse(resp, err, order.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

func (c *OrdersClient) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	req := c.rest.R().SetContext(ctx)
	if customerID != "" {
		req.SetQueryParam("customerId", customerID)
	}

	var dtos []orderDTO
	resp, err := req.SetResult(&dtos).Get("/orders")

	// An empty result set is a 404 on this service, not an error.
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return []*order.Order{}, nil
	}
	if err := checkResponse(resp, err, order.ErrOrderNotFound); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for i := range dtos {
		orders = append(orders, dtos[i].toModel())
	}
	return orders, nil
}

func (c *OrdersClient) PatchStatus(ctx context.Context, id, rawStatus string) (*order.Order, error) {
	var dto orderDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"status":    rawStatus,
			"updatedAt": time.Now(),
		}).
		SetResult(&dto).
		Put("/orders/" + id)

	if err := checkResponse(resp, err, order.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

func (c *OrdersClient) PatchPaymentStatus(ctx context.Context, id string, ps order.PaymentStatus) (*order.Order, error) {
	var dto orderDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"paymentStatus": string(ps),
			"updatedAt":     time.Now(),
		}).
		SetResult(&dto).
		Put("/orders/" + id)

	if err := checkResponse(resp, err, order.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}
