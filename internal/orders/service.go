package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/internal/inventory"
	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
	"github.com/buyyourkawa/kawa-backend/pkg/money"
)

// ClientDirectory is the client lookup the service needs.
type ClientDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Client, error)
}

// ProductCatalog is the read side of the catalog used for price snapshots.
type ProductCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// StockLedger commits and releases stock for whole orders.
type StockLedger interface {
	ReserveAll(ctx context.Context, reservations []inventory.Reservation) error
	ReleaseAll(ctx context.Context, reservations []inventory.Reservation) error
}

// OrderLedger is the order store the service writes through.
type OrderLedger interface {
	Append(ctx context.Context, order models.Order) (*models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, filter ListFilter) ([]models.Order, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error)
}

// Service owns order fulfillment: placement with all-or-nothing stock
// commitment, lifecycle transitions, and cancellation with stock release.
type Service interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error)
	CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type service struct {
	clients    ClientDirectory
	catalog    ProductCatalog
	stock      StockLedger
	ledger     OrderLedger
	maxLineQty int
}

// NewService wires the fulfillment service. maxLineQty caps the quantity of
// any single order line.
func NewService(clients ClientDirectory, catalog ProductCatalog, stock StockLedger, ledger OrderLedger, maxLineQty int) (Service, error) {
	if clients == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders: client directory is required")
	}
	if catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders: product catalog is required")
	}
	if stock == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders: stock ledger is required")
	}
	if ledger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders: order ledger is required")
	}
	if maxLineQty <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders: max line quantity must be positive")
	}
	return &service{
		clients:    clients,
		catalog:    catalog,
		stock:      stock,
		ledger:     ledger,
		maxLineQty: maxLineQty,
	}, nil
}

// PlaceOrder validates the request, snapshots prices, commits stock for every
// line atomically and appends the order as pending. Nothing is written when
// any step fails, so there is never partial stock consumption to undo.
func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	if err := s.validateLines(req.Items); err != nil {
		return nil, err
	}

	client, err := s.clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	reservations := make([]inventory.Reservation, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.catalog.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  money.LineTotal(product.Price, line.Quantity),
		})
		reservations = append(reservations, inventory.Reservation{
			ProductID: product.ID,
			Quantity:  line.Quantity,
		})
	}

	totals := make([]float64, 0, len(items))
	for _, item := range items {
		totals = append(totals, item.TotalPrice)
	}

	if err := s.stock.ReserveAll(ctx, reservations); err != nil {
		return nil, err
	}

	order := models.Order{
		ClientID:    client.ID,
		ClientName:  client.Name,
		Items:       items,
		TotalAmount: money.Sum(totals),
		Notes:       req.Notes,
	}
	placed, err := s.ledger.Append(ctx, order)
	if err != nil {
		// The append only fails on malformed input, which was validated
		// above. Hand the stock back so it is not stranded.
		if releaseErr := s.stock.ReleaseAll(ctx, reservations); releaseErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, releaseErr, "releasing stock after failed order append")
		}
		return nil, err
	}
	return placed, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.ledger.Get(ctx, id)
}

func (s *service) ListOrders(ctx context.Context, filter ListFilter) ([]models.Order, error) {
	return s.ledger.List(ctx, filter)
}

// UpdateStatus advances the order one step of its lifecycle. Cancellation is
// routed through CancelOrder so the stock release always happens.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error) {
	if target == enums.OrderStatusCancelled {
		return s.CancelOrder(ctx, id)
	}
	return s.ledger.TransitionStatus(ctx, id, target)
}

// CancelOrder transitions the order to cancelled and returns its reserved
// stock to the catalog.
func (s *service) CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	cancelled, err := s.ledger.TransitionStatus(ctx, id, enums.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	reservations := make([]inventory.Reservation, 0, len(cancelled.Items))
	for _, item := range cancelled.Items {
		reservations = append(reservations, inventory.Reservation{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	if err := s.stock.ReleaseAll(ctx, reservations); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "releasing stock for cancelled order")
	}
	return cancelled, nil
}

func (s *service) validateLines(lines []OrderItemRequest) error {
	if len(lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive").
				WithDetails(map[string]any{"product_id": line.ProductID})
		}
		if line.Quantity > s.maxLineQty {
			return pkgerrors.New(pkgerrors.CodeValidation, "item quantity exceeds the per-line limit").
				WithDetails(map[string]any{
					"product_id": line.ProductID,
					"quantity":   line.Quantity,
					"max":        s.maxLineQty,
				})
		}
	}
	return nil
}
