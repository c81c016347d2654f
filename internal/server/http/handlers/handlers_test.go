package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/dto"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/middleware"
	"github.com/AlexisMGL/HappyCheese/internal/store"
	testhelpers "github.com/AlexisMGL/HappyCheese/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) { c.Set(middleware.UserIDContextKey, id) }
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Email: "anna@example.com", Password: "pass", DisplayName: "Anna"})
	handler := NewAuthHandler(testhelpers.FacadeStub{SignUpFn: func(_ context.Context, email, password string, profile model.Profile) (*model.User, string, error) {
		if email != "anna@example.com" || password != "pass" || profile.DisplayName != "Anna" {
			t.Fatalf("unexpected registration payload: %q %q %+v", email, password, profile)
		}
		return &model.User{ID: 1, Email: email, Profile: profile}, "session-token", nil
	}})

	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "happycheese_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token in cookie: %q", cookie.Value)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected auth cookie to be set")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.FacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"email":"","password":""}`), facade: testhelpers.FacadeStub{SignUpFn: func(context.Context, string, string, model.Profile) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "already exists", body: []byte(`{"email":"a@b.c","password":"p"}`), facade: testhelpers.FacadeStub{SignUpFn: func(context.Context, string, string, model.Profile) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"p"}`), facade: testhelpers.FacadeStub{SignUpFn: func(context.Context, string, string, model.Profile) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "anna@example.com", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.FacadeStub{}).Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.FacadeStub{SignInFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}}).Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthHandlerChangePassword(t *testing.T) {
	body, _ := json.Marshal(dto.PasswordChangeRequest{CurrentPassword: "old", NewPassword: "new"})
	handler := NewAuthHandler(testhelpers.FacadeStub{ChangePasswordFn: func(_ context.Context, id int64, current, next string) error {
		if id != 7 || current != "old" || next != "new" {
			t.Fatalf("unexpected change payload: %d %q %q", id, current, next)
		}
		return nil
	}})
	resp := performRequest(t, http.MethodPost, "/password", "/password", handler.ChangePassword, asUser(7), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestCatalogHandlerList(t *testing.T) {
	facade := testhelpers.FacadeStub{ItemsFn: func() []model.CheeseItem {
		return []model.CheeseItem{{ID: 1, Name: "Comté", Price: 32.5, QuantityType: model.QuantityKg}}
	}}
	resp := performRequest(t, http.MethodGet, "/items", "/items", NewCatalogHandler(facade).List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var items []dto.ItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Comté" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestCatalogHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.ItemRequest{Name: "Comté", Price: 32.5, QuantityType: "kg"})
	resp := performRequest(t, http.MethodPost, "/items", "/items", NewCatalogHandler(testhelpers.FacadeStub{}).Create, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/items", "/items", NewCatalogHandler(testhelpers.FacadeStub{AddItemFn: func(context.Context, store.ItemInput) (*model.CheeseItem, error) {
		return nil, domainErrors.ErrInvalidPrice
	}}).Create, nil, body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestCatalogHandlerDelete(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/items/:id", "/items/3", NewCatalogHandler(testhelpers.FacadeStub{}).Delete, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/items/:id", "/items/abc", NewCatalogHandler(testhelpers.FacadeStub{}).Delete, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{
		CustomerName: "Paul",
		Entries:      []dto.OrderEntryRequest{{ItemID: 1, Quantity: 2}},
	})
	handler := NewOrderHandler(testhelpers.FacadeStub{AddOrderFn: func(_ context.Context, in store.OrderInput) (*model.Order, error) {
		if in.CustomerName != "Paul" || len(in.Entries) != 1 || in.Entries[0].DisplayQuantity != 2 {
			t.Fatalf("unexpected order input: %+v", in)
		}
		return &model.Order{ID: 1, CustomerName: in.CustomerName, Status: model.OrderStatusNew}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "empty order", err: domainErrors.ErrEmptyOrder, status: http.StatusUnprocessableEntity},
		{name: "unknown product", err: domainErrors.ErrItemNotFound, status: http.StatusUnprocessableEntity},
		{name: "bad quantity", err: domainErrors.ErrInvalidQuantity, status: http.StatusUnprocessableEntity},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	body, _ := json.Marshal(dto.OrderRequest{CustomerName: "Paul"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.FacadeStub{AddOrderFn: func(context.Context, store.OrderInput) (*model.Order, error) {
				return nil, tt.err
			}})
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, nil, body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	body, _ := json.Marshal(dto.OrderStatusRequest{Status: "in_progress"})
	handler := NewOrderHandler(testhelpers.FacadeStub{UpdateOrderStatusFn: func(_ context.Context, id int64, status model.OrderStatus) error {
		if id != 5 || status != model.OrderStatusInProgress {
			t.Fatalf("unexpected status update: %d %s", id, status)
		}
		return nil
	}})
	resp := performRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/5/status", handler.UpdateStatus, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatusUnknownValue(t *testing.T) {
	body, _ := json.Marshal(dto.OrderStatusRequest{Status: "banana"})
	handler := NewOrderHandler(testhelpers.FacadeStub{UpdateOrderStatusFn: func(_ context.Context, _ int64, status model.OrderStatus) error {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, string(status))
	}})
	resp := performRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/5/status", handler.UpdateStatus, nil, body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/orders/:id", "/orders/5", NewOrderHandler(testhelpers.FacadeStub{RemoveOrderFn: func(context.Context, int64) error {
		return domainErrors.ErrOrderNotDeletable
	}}).Delete, nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestClientHandlerCreateAndDelete(t *testing.T) {
	body, _ := json.Marshal(dto.ClientRequest{Name: "Auberge"})
	resp := performRequest(t, http.MethodPost, "/clients", "/clients", NewClientHandler(testhelpers.FacadeStub{}).Create, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/clients/:id", "/clients/2", NewClientHandler(testhelpers.FacadeStub{}).Delete, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestConsignHandlerAssign(t *testing.T) {
	body, _ := json.Marshal(dto.ConsignTransactionRequest{
		ClientID: 1,
		Items:    []dto.ConsignItemRequest{{TypeID: 5, Quantity: 3}},
	})
	handler := NewConsignHandler(testhelpers.FacadeStub{AssignConsignsFn: func(_ context.Context, tx store.ConsignTransaction) error {
		if tx.ClientID != 1 || len(tx.Items) != 1 || tx.Items[0].Quantity != 3 {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
		return nil
	}})
	resp := performRequest(t, http.MethodPost, "/consigns/assign", "/consigns/assign", handler.Assign, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestConsignHandlerReturnOverCeiling(t *testing.T) {
	body, _ := json.Marshal(dto.ConsignTransactionRequest{
		ClientID: 1,
		Items:    []dto.ConsignItemRequest{{TypeID: 5, Quantity: 30}},
	})
	handler := NewConsignHandler(testhelpers.FacadeStub{ReturnConsignsFn: func(context.Context, store.ConsignTransaction) error {
		return domainErrors.ErrExceedsOutstanding
	}})
	resp := performRequest(t, http.MethodPost, "/consigns/return", "/consigns/return", handler.Return, nil, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestConsignHandlerTotals(t *testing.T) {
	facade := testhelpers.FacadeStub{ConsignTotalsFn: func() []model.ConsignTotal {
		return []model.ConsignTotal{{ClientID: 1, TypeID: 5, Quantity: 2}}
	}}
	resp := performRequest(t, http.MethodGet, "/consigns/totals", "/consigns/totals", NewConsignHandler(facade).Totals, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var totals []dto.ConsignTotalResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &totals); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(totals) != 1 || totals[0].Quantity != 2 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}
