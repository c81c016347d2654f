package store_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/store"
	testhelpers "github.com/AlexisMGL/HappyCheese/internal/test"
	"github.com/AlexisMGL/HappyCheese/internal/usecase"
)

func newStore(repos *testhelpers.RepositoryStub) *store.Store {
	return store.New(repos, usecase.DefaultQuantityRules(), slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt64(v int64) *int64     { return &v }

func TestStoreLoad(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ItemsData = []model.CheeseItem{{ID: 1, Name: "Tomme", Price: 100, QuantityType: model.QuantityPiece}}
	repos.ClientsData = []model.Client{{ID: 2, Name: "Fromagerie du Port"}}
	repos.TypesData = []model.ConsignType{{ID: 3, Label: "crate"}}
	repos.MovementsData = []model.ConsignMovement{
		{ID: 4, ClientID: 2, TypeID: 3, Quantity: 5},
		{ID: 5, ClientID: 2, TypeID: 3, Quantity: -2},
	}

	st := newStore(repos)
	require.True(t, st.Loading())

	require.NoError(t, st.Load(context.Background()))
	assert.False(t, st.Loading())
	assert.Len(t, st.Items(), 1)
	assert.Len(t, st.Clients(), 1)
	assert.Len(t, st.ConsignTypes(), 1)

	totals := st.ConsignTotals()
	require.Len(t, totals, 1)
	assert.Equal(t, int64(3), totals[0].Quantity)
}

func TestStoreLoadError(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ListErr = errors.New("backend down")

	st := newStore(repos)
	err := st.Load(context.Background())
	require.Error(t, err)
	assert.False(t, st.Loading(), "loading must settle even on failure")
	assert.Empty(t, st.Items())
}

func TestStoreAddItemValidation(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	st := newStore(repos)

	_, err := st.AddItem(context.Background(), store.ItemInput{Name: "  ", Price: 10, QuantityType: model.QuantityPiece})
	assert.ErrorIs(t, err, domainErrors.ErrNameRequired)

	_, err = st.AddItem(context.Background(), store.ItemInput{Name: "Brie", Price: 0, QuantityType: model.QuantityPiece})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidPrice)

	assert.Zero(t, repos.Writes, "invalid input must not reach the backend")

	created, err := st.AddItem(context.Background(), store.ItemInput{
		Name:         " Brie ",
		Price:        12.5,
		QuantityType: model.QuantityKg,
		Multiple:     ptrFloat(0.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Brie", created.Name)
	require.NotNil(t, created.Multiple)
	assert.Equal(t, 0.5, *created.Multiple)
	assert.Len(t, st.Items(), 1)
}

func TestStoreAddOrderEmpty(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	st := newStore(repos)

	_, err := st.AddOrder(context.Background(), store.OrderInput{CustomerName: "Paul"})
	assert.ErrorIs(t, err, domainErrors.ErrEmptyOrder)
	assert.Zero(t, repos.Writes)
}

func TestStoreAddOrderUnknownItem(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ItemsData = []model.CheeseItem{{ID: 1, Name: "Tomme", Price: 100, QuantityType: model.QuantityPiece}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	_, err := st.AddOrder(context.Background(), store.OrderInput{
		CustomerName: "Paul",
		Entries:      []store.OrderEntryInput{{ItemID: 99, DisplayQuantity: 1}},
	})
	assert.ErrorIs(t, err, domainErrors.ErrItemNotFound)
	assert.Zero(t, repos.Writes, "lookup failure must abort before the write")
	assert.Empty(t, st.Orders())
}

func TestStoreAddOrderMultipleRule(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ItemsData = []model.CheeseItem{{
		ID: 1, Name: "Comté", Price: 1000, QuantityType: model.QuantityKg, Multiple: ptrFloat(1),
	}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	_, err := st.AddOrder(context.Background(), store.OrderInput{
		CustomerName: "Paul",
		Entries:      []store.OrderEntryInput{{ItemID: 1, DisplayQuantity: 1.5}},
	})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidQuantity)
	assert.Zero(t, repos.Writes)

	created, err := st.AddOrder(context.Background(), store.OrderInput{
		CustomerName: "Paul",
		Entries:      []store.OrderEntryInput{{ItemID: 1, DisplayQuantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, created.Entries, 1)
	assert.Equal(t, float64(2), created.Entries[0].Quantity)
	assert.Equal(t, float64(1000), created.Entries[0].UnitPrice)
	assert.Equal(t, model.OrderStatusNew, created.Status)

	fin := usecase.ComputeOrderFinancials(*created, 2.5)
	assert.InDelta(t, 2000, fin.ProductTotal, 1e-9)
	assert.InDelta(t, 2002.5, fin.GrandTotal, 1e-9)
}

func TestStoreOrderEntriesSnapshotPrices(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ItemsData = []model.CheeseItem{{ID: 1, Name: "Tomme", Price: 100, QuantityType: model.QuantityPiece}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	created, err := st.AddOrder(context.Background(), store.OrderInput{
		CustomerName: "Paul",
		Entries:      []store.OrderEntryInput{{ItemID: 1, DisplayQuantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, created.Entries, 1)

	_, err = st.UpdateItem(context.Background(), 1, store.ItemInput{
		Name: "Tomme affinée", Price: 150, QuantityType: model.QuantityPiece,
	})
	require.NoError(t, err)

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "Tomme", orders[0].Entries[0].Name)
	assert.Equal(t, float64(100), orders[0].Entries[0].UnitPrice, "entry keeps the price at order time")
}

func TestStoreOrdersNewestFirst(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ItemsData = []model.CheeseItem{{ID: 1, Name: "Tomme", Price: 100, QuantityType: model.QuantityPiece}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	first, err := st.AddOrder(context.Background(), store.OrderInput{
		CustomerName: "Anna",
		Entries:      []store.OrderEntryInput{{ItemID: 1, DisplayQuantity: 1}},
	})
	require.NoError(t, err)
	second, err := st.AddOrder(context.Background(), store.OrderInput{
		CustomerName: "Boris",
		Entries:      []store.OrderEntryInput{{ItemID: 1, DisplayQuantity: 1}},
	})
	require.NoError(t, err)

	orders := st.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestStoreUpdateOrderStatusPatchesOnly(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.OrdersData = []model.Order{{
		ID: 7, CustomerName: "Paul", Status: model.OrderStatusNew, Notes: "urgent", CreatedAt: time.Now(),
	}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	require.NoError(t, st.UpdateOrderStatus(context.Background(), 7, model.OrderStatusInProgress))

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusInProgress, orders[0].Status)
	assert.Equal(t, "urgent", orders[0].Notes)
}

func TestStoreRemoveOrderStatusGuard(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.OrdersData = []model.Order{
		{ID: 1, CustomerName: "Anna", Status: model.OrderStatusNew},
		{ID: 2, CustomerName: "Boris", Status: model.OrderStatusDeliveredPaid},
	}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	assert.ErrorIs(t, st.RemoveOrder(context.Background(), 99), domainErrors.ErrNotFound)
	assert.ErrorIs(t, st.RemoveOrder(context.Background(), 2), domainErrors.ErrOrderNotDeletable)
	assert.Len(t, st.Orders(), 2)

	require.NoError(t, st.RemoveOrder(context.Background(), 1))
	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, int64(2), orders[0].ID)
}

func TestStoreAddClientSorted(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	_, err := st.AddClient(context.Background(), "   ", "")
	assert.ErrorIs(t, err, domainErrors.ErrNameRequired)

	for _, name := range []string{"zoé", "Marché Bio", "auberge"} {
		_, err := st.AddClient(context.Background(), name, "")
		require.NoError(t, err)
	}

	clients := st.Clients()
	require.Len(t, clients, 3)
	assert.Equal(t, "auberge", clients[0].Name)
	assert.Equal(t, "Marché Bio", clients[1].Name)
	assert.Equal(t, "zoé", clients[2].Name)
}

func TestStoreRemoveClientCascade(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ClientsData = []model.Client{{ID: 1, Name: "Auberge"}, {ID: 2, Name: "Marché"}}
	repos.OrdersData = []model.Order{{ID: 10, CustomerName: "Paul", ClientID: ptrInt64(1), Status: model.OrderStatusNew}}
	repos.MovementsData = []model.ConsignMovement{
		{ID: 20, ClientID: 1, TypeID: 5, Quantity: 4},
		{ID: 21, ClientID: 2, TypeID: 5, Quantity: 1},
	}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	require.NoError(t, st.RemoveClient(context.Background(), 1))

	assert.Equal(t, []int64{1}, repos.ClearCalls, "orders must be detached remotely")
	assert.Contains(t, repos.DeleteCalls, "movements_by_client")
	assert.Contains(t, repos.DeleteCalls, "client")

	clients := st.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, int64(2), clients[0].ID)

	totals := st.ConsignTotals()
	require.Len(t, totals, 1)
	assert.Equal(t, int64(2), totals[0].ClientID)

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].ClientID, "detached orders survive with no client reference")
}

func TestStoreRemoveClientCascadeAborts(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ClientsData = []model.Client{{ID: 1, Name: "Auberge"}}
	repos.MovementsData = []model.ConsignMovement{{ID: 20, ClientID: 1, TypeID: 5, Quantity: 4}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	repos.DeleteErr = errors.New("backend down")
	require.Error(t, st.RemoveClient(context.Background(), 1))

	assert.Len(t, st.Clients(), 1, "local snapshot untouched after a failed cascade")
	assert.Len(t, st.ConsignTotals(), 1)
}

func TestStoreRemoveConsignTypeCascade(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.TypesData = []model.ConsignType{{ID: 5, Label: "crate"}, {ID: 6, Label: "jar"}}
	repos.MovementsData = []model.ConsignMovement{
		{ID: 20, ClientID: 1, TypeID: 5, Quantity: 4},
		{ID: 21, ClientID: 1, TypeID: 6, Quantity: 2},
	}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	require.NoError(t, st.RemoveConsignType(context.Background(), 5))

	assert.Equal(t, []string{"movements_by_type", "consign_type"}, repos.DeleteCalls)

	types := st.ConsignTypes()
	require.Len(t, types, 1)
	assert.Equal(t, int64(6), types[0].ID)

	totals := st.ConsignTotals()
	require.Len(t, totals, 1)
	assert.Equal(t, int64(6), totals[0].TypeID)
}

func TestStoreConsignAssignAndReturn(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ClientsData = []model.Client{{ID: 1, Name: "Auberge"}}
	repos.TypesData = []model.ConsignType{{ID: 5, Label: "crate"}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	err := st.AssignConsigns(context.Background(), store.ConsignTransaction{
		ClientID: 1,
		Items:    []model.ConsignItemInput{{TypeID: 5, Quantity: 5}},
	})
	require.NoError(t, err)

	totals := st.ConsignTotals()
	require.Len(t, totals, 1)
	assert.Equal(t, int64(5), totals[0].Quantity)

	err = st.ReturnConsigns(context.Background(), store.ConsignTransaction{
		ClientID: 1,
		Note:     "market pickup",
		Items:    []model.ConsignItemInput{{TypeID: 5, Quantity: 3}},
	})
	require.NoError(t, err)

	totals = st.ConsignTotals()
	require.Len(t, totals, 1)
	assert.Equal(t, int64(2), totals[0].Quantity)

	err = st.ReturnConsigns(context.Background(), store.ConsignTransaction{
		ClientID: 1,
		Items:    []model.ConsignItemInput{{TypeID: 5, Quantity: 3}},
	})
	assert.ErrorIs(t, err, domainErrors.ErrExceedsOutstanding)

	totals = st.ConsignTotals()
	require.Len(t, totals, 1)
	assert.Equal(t, int64(2), totals[0].Quantity, "rejected return leaves the balance alone")

	require.Len(t, repos.MovementsData, 2, "only the accepted transactions reach the ledger")
}

func TestStoreConsignValidation(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	err := st.AssignConsigns(context.Background(), store.ConsignTransaction{
		Items: []model.ConsignItemInput{{TypeID: 5, Quantity: 5}},
	})
	assert.ErrorIs(t, err, domainErrors.ErrClientRequired)

	err = st.AssignConsigns(context.Background(), store.ConsignTransaction{
		ClientID: 1,
		Items:    []model.ConsignItemInput{{TypeID: 5, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domainErrors.ErrNoConsignItems)
	assert.Zero(t, repos.Writes)
}

func TestStoreRemoteFailureLeavesStateUntouched(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ItemsData = []model.CheeseItem{{ID: 1, Name: "Tomme", Price: 100, QuantityType: model.QuantityPiece}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	repos.WriteErr = errors.New("backend down")

	_, err := st.AddOrder(context.Background(), store.OrderInput{
		CustomerName: "Paul",
		Entries:      []store.OrderEntryInput{{ItemID: 1, DisplayQuantity: 1}},
	})
	require.Error(t, err)
	assert.Empty(t, st.Orders())

	err = st.AssignConsigns(context.Background(), store.ConsignTransaction{
		ClientID: 1,
		Items:    []model.ConsignItemInput{{TypeID: 5, Quantity: 5}},
	})
	require.Error(t, err)
	assert.Empty(t, st.ConsignTotals())
}

func TestStoreUpdateOrderStatusUnknownValue(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.OrdersData = []model.Order{{ID: 7, CustomerName: "Paul", Status: model.OrderStatusNew}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	err := st.UpdateOrderStatus(context.Background(), 7, model.OrderStatus("banana"))
	assert.ErrorIs(t, err, domainErrors.ErrInvalidStatus)
	assert.Zero(t, repos.Writes, "unknown status must abort before the write")

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusNew, orders[0].Status)
}

func TestStoreAddOrderNonPositiveQuantity(t *testing.T) {
	repos := testhelpers.NewRepositoryStub()
	repos.ItemsData = []model.CheeseItem{{ID: 1, Name: "Tomme", Price: 100, QuantityType: model.QuantityPiece}}
	st := newStore(repos)
	require.NoError(t, st.Load(context.Background()))

	for _, qty := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		_, err := st.AddOrder(context.Background(), store.OrderInput{
			CustomerName: "Paul",
			Entries:      []store.OrderEntryInput{{ItemID: 1, DisplayQuantity: qty}},
		})
		assert.ErrorIs(t, err, domainErrors.ErrInvalidQuantity, "quantity %v", qty)
	}
	assert.Zero(t, repos.Writes)
	assert.Empty(t, st.Orders())
}
