package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buyyourkawa/kawa-backend/internal/catalog"
	"github.com/buyyourkawa/kawa-backend/internal/clients"
	"github.com/buyyourkawa/kawa-backend/internal/inventory"
	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
)

type fulfillmentFixture struct {
	svc       Service
	catalog   *catalog.Store
	client    *models.Client
	espresso  *models.Product
	croissant *models.Product
}

func setupFulfillment(t *testing.T) *fulfillmentFixture {
	t.Helper()

	clientStore := clients.NewStore()
	catalogStore := catalog.NewStore()
	ledger := NewLedger()

	stock, err := inventory.NewLedger(catalogStore)
	require.NoError(t, err)

	svc, err := NewService(clientStore, catalogStore, stock, ledger, 20)
	require.NoError(t, err)

	client, err := clientStore.Create(context.Background(), models.Client{
		Name:     "Marie Dubois",
		Email:    "marie@example.com",
		Phone:    "+33612345678",
		IsActive: true,
		Address: models.Address{
			Street:  "12 rue des Lilas",
			City:    "Paris",
			Zip:     "75011",
			Country: "France",
		},
	})
	require.NoError(t, err)

	espresso, err := catalogStore.Create(context.Background(), models.Product{
		Name:          "Espresso",
		Description:   "Short and intense house blend shot",
		Price:         2.50,
		Category:      enums.ProductCategoryCoffee,
		IsAvailable:   true,
		StockQuantity: 10,
	})
	require.NoError(t, err)

	croissant, err := catalogStore.Create(context.Background(), models.Product{
		Name:          "Croissant",
		Description:   "Butter croissant baked every morning",
		Price:         1.90,
		Category:      enums.ProductCategoryPastry,
		IsAvailable:   true,
		StockQuantity: 5,
	})
	require.NoError(t, err)

	return &fulfillmentFixture{
		svc:       svc,
		catalog:   catalogStore,
		client:    client,
		espresso:  espresso,
		croissant: croissant,
	}
}

func TestPlaceOrderSnapshotsPricesAndDecrementsStock(t *testing.T) {
	f := setupFulfillment(t)

	order, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items: []OrderItemRequest{
			{ProductID: f.espresso.ID, Quantity: 2},
			{ProductID: f.croissant.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.Equal(t, f.client.Name, order.ClientName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 5.00, order.Items[0].TotalPrice)
	assert.Equal(t, 5.70, order.Items[1].TotalPrice)
	assert.Equal(t, 10.70, order.TotalAmount)

	espresso, err := f.catalog.Get(context.Background(), f.espresso.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, espresso.StockQuantity)

	croissant, err := f.catalog.Get(context.Background(), f.croissant.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, croissant.StockQuantity)
}

func TestPlaceOrderUnknownClientTouchesNoStock(t *testing.T) {
	f := setupFulfillment(t)

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: uuid.New(),
		Items:    []OrderItemRequest{{ProductID: f.espresso.ID, Quantity: 1}},
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	espresso, err := f.catalog.Get(context.Background(), f.espresso.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, espresso.StockQuantity)
}

func TestPlaceOrderShortLineFailsWholeOrder(t *testing.T) {
	f := setupFulfillment(t)

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items: []OrderItemRequest{
			{ProductID: f.espresso.ID, Quantity: 2},
			{ProductID: f.croissant.ID, Quantity: 6},
		},
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInsufficientStock, typed.Code())

	espresso, err := f.catalog.Get(context.Background(), f.espresso.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, espresso.StockQuantity)

	orders, err := f.svc.ListOrders(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderRejectsExcessiveLineQuantity(t *testing.T) {
	f := setupFulfillment(t)

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items:    []OrderItemRequest{{ProductID: f.espresso.ID, Quantity: 21}},
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCancelOrderReleasesStock(t *testing.T) {
	f := setupFulfillment(t)

	order, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items:    []OrderItemRequest{{ProductID: f.espresso.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	cancelled, err := f.svc.CancelOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, cancelled.Status)

	espresso, err := f.catalog.Get(context.Background(), f.espresso.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, espresso.StockQuantity)
}

func TestUpdateStatusRoutesCancellationThroughRelease(t *testing.T) {
	f := setupFulfillment(t)

	order, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items:    []OrderItemRequest{{ProductID: f.espresso.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	cancelled, err := f.svc.UpdateStatus(context.Background(), order.ID, enums.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, cancelled.Status)

	espresso, err := f.catalog.Get(context.Background(), f.espresso.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, espresso.StockQuantity)
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	f := setupFulfillment(t)

	order, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items:    []OrderItemRequest{{ProductID: f.espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, status := range []enums.OrderStatus{
		enums.OrderStatusConfirmed,
		enums.OrderStatusPreparing,
		enums.OrderStatusReady,
		enums.OrderStatusDelivered,
	} {
		order, err = f.svc.UpdateStatus(context.Background(), order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}

	_, err = f.svc.UpdateStatus(context.Background(), order.ID, enums.OrderStatusPending)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestCancelDeliveredOrderFails(t *testing.T) {
	f := setupFulfillment(t)

	order, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items:    []OrderItemRequest{{ProductID: f.espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, status := range []enums.OrderStatus{
		enums.OrderStatusConfirmed,
		enums.OrderStatusPreparing,
		enums.OrderStatusReady,
		enums.OrderStatusDelivered,
	} {
		_, err = f.svc.UpdateStatus(context.Background(), order.ID, status)
		require.NoError(t, err)
	}

	_, err = f.svc.CancelOrder(context.Background(), order.ID)
	require.Error(t, err)

	espresso, err := f.catalog.Get(context.Background(), f.espresso.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, espresso.StockQuantity, "failed cancellation must not release stock")
}

func TestListOrdersFilters(t *testing.T) {
	f := setupFulfillment(t)

	first, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items:    []OrderItemRequest{{ProductID: f.espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientID: f.client.ID,
		Items:    []OrderItemRequest{{ProductID: f.croissant.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), first.ID, enums.OrderStatusConfirmed)
	require.NoError(t, err)

	status := enums.OrderStatusConfirmed
	confirmed, err := f.svc.ListOrders(context.Background(), ListFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, first.ID, confirmed[0].ID)

	all, err := f.svc.ListOrders(context.Background(), ListFilter{ClientID: &f.client.ID})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
