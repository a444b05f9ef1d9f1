package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockdesk/internal/model"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func TestListProductsSendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]model.Product{{ID: "p1", Name: "Widget"}})
	})

	products, err := client.ListProducts(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotPath != "/api/products" {
		t.Errorf("expected /api/products, got %q", gotPath)
	}
	if len(products) != 1 || products[0].Name != "Widget" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestEmptyTokenOmitsAuthHeader(t *testing.T) {
	var hasAuth bool
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]model.Product{})
	})

	if _, err := client.ListProducts(context.Background(), ""); err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if hasAuth {
		t.Error("expected no Authorization header for empty token")
	}
}

func TestCreateProductPostsJSON(t *testing.T) {
	var gotMethod string
	var gotBody model.ProductPayload
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(model.Product{ID: "p9", Name: gotBody.Name})
	})

	payload := model.ProductPayload{Name: "Widget", SKU: "W-1", Price: 9.5}
	product, err := client.CreateProduct(context.Background(), "tok", payload)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotBody.SKU != "W-1" || gotBody.Price != 9.5 {
		t.Errorf("unexpected request body: %+v", gotBody)
	}
	if product.ID != "p9" {
		t.Errorf("expected server-assigned id, got %+v", product)
	}
}

func TestDeleteProductUsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteProduct(context.Background(), "tok", "p1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/products/p1" {
		t.Errorf("expected DELETE /api/products/p1, got %s %s", gotMethod, gotPath)
	}
}

func TestErrorKindMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindUnauthorized},
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusInternalServerError, KindInternal},
	}

	for _, tc := range cases {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := client.ListProducts(context.Background(), "tok")
		var be *Error
		if !errors.As(err, &be) {
			t.Fatalf("status %d: expected *Error, got %v", tc.status, err)
		}
		if be.Kind != tc.kind {
			t.Errorf("status %d: expected kind %v, got %v", tc.status, tc.kind, be.Kind)
		}
		if be.Status != tc.status {
			t.Errorf("status %d: expected status recorded, got %d", tc.status, be.Status)
		}
	}
}

func TestErrorMessageContract(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListProducts(context.Background(), "tok")
	if err == nil || err.Error() != "failed to fetch products" {
		t.Errorf("expected generic message, got %v", err)
	}
}

func TestNetworkErrorKind(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // no listener left

	client := New(server.URL, time.Second)
	_, err := client.ListProducts(context.Background(), "tok")

	var be *Error
	if !errors.As(err, &be) || be.Kind != KindNetwork {
		t.Errorf("expected network error kind, got %v", err)
	}
}

func TestFulfillPurchaseOrder(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(model.PurchaseOrder{ID: "o1", Status: model.OrderStatusFulfilled})
	})

	order, err := client.FulfillPurchaseOrder(context.Background(), "tok", "o1", "alice")
	if err != nil {
		t.Fatalf("FulfillPurchaseOrder: %v", err)
	}
	if gotPath != "/api/purchase-orders/o1/fulfill" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotBody["receivedBy"] != "alice" {
		t.Errorf("expected receivedBy 'alice', got %v", gotBody)
	}
	if order.Status != model.OrderStatusFulfilled {
		t.Errorf("expected fulfilled order, got %+v", order)
	}
}

func TestReportQueryOmitsBlankFilters(t *testing.T) {
	var gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]model.ValuationRow{})
	})

	filter := model.ReportFilter{ProductID: "p1"}
	if _, err := client.StockValuation(context.Background(), "tok", filter); err != nil {
		t.Fatalf("StockValuation: %v", err)
	}
	if gotQuery != "productId=p1" {
		t.Errorf("expected only productId in query, got %q", gotQuery)
	}
}

func TestTurnoverQueryCarriesDates(t *testing.T) {
	var gotQuery map[string][]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]model.TurnoverRow{})
	})

	filter := model.ReportFilter{StartDate: "2024-01-01", EndDate: "2024-06-01", WarehouseID: "w2"}
	if _, err := client.InventoryTurnover(context.Background(), "tok", filter); err != nil {
		t.Fatalf("InventoryTurnover: %v", err)
	}
	if got := gotQuery["startDate"]; len(got) != 1 || got[0] != "2024-01-01" {
		t.Errorf("expected startDate, got %v", gotQuery)
	}
	if _, ok := gotQuery["productId"]; ok {
		t.Error("expected blank productId to be omitted")
	}
}

func TestLoginRejectsMissingToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"username": "alice"})
	})

	_, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "pw"})
	if err == nil {
		t.Fatal("expected error for response without token")
	}
}

func TestLoginReturnsSession(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var creds Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "alice" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(AuthResponse{Token: "tok", Username: "alice", Role: "admin"})
	})

	resp, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok" || resp.Role != "admin" {
		t.Errorf("unexpected auth response: %+v", resp)
	}
}
