package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"spicytrolly/internal/models"
	"spicytrolly/internal/validation"
)

// stockBackend mimics the server's stock arithmetic for one product.
type stockBackend struct {
	mu      sync.Mutex
	product models.RawProduct
}

func (b *stockBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /raw-products/r1/stock", func(w http.ResponseWriter, r *http.Request) {
		var req stockUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode stock update: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		switch req.Direction {
		case models.StockAdd:
			b.product.CurrentStock += req.Quantity
		case models.StockSubtract:
			b.product.CurrentStock -= req.Quantity
		}
		product := b.product
		b.mu.Unlock()
		writeData(t, w, product)
	})
	return mux
}

func TestStockUpdateLifecycle(t *testing.T) {
	backend := &stockBackend{product: models.RawProduct{
		ID: "r1", Name: "Paneer", Unit: "kg", CurrentStock: 5, MinimumStock: 5,
	}}
	client, _, _ := newTestClient(t, backend.handler(t))
	ctx := context.Background()

	// At the boundary the product already counts as low stock.
	if !backend.product.IsLowStock() {
		t.Fatal("stock at minimum not classified low")
	}

	product, err := client.RawProducts.UpdateStock(ctx, "r1", 1, models.StockSubtract)
	if err != nil {
		t.Fatalf("subtract: %v", err)
	}
	if product.CurrentStock != 4 {
		t.Errorf("stock after subtract = %.2f, want 4", product.CurrentStock)
	}
	if !product.IsLowStock() {
		t.Error("stock below minimum not classified low")
	}

	product, err = client.RawProducts.UpdateStock(ctx, "r1", 10, models.StockAdd)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if product.CurrentStock != 14 {
		t.Errorf("stock after add = %.2f, want 14", product.CurrentStock)
	}
	if product.IsLowStock() {
		t.Error("restocked product still classified low")
	}

	// Quantity zero is a legal no-op.
	product, err = client.RawProducts.UpdateStock(ctx, "r1", 0, models.StockAdd)
	if err != nil {
		t.Fatalf("zero add: %v", err)
	}
	if product.CurrentStock != 14 {
		t.Errorf("stock after zero adjustment = %.2f, want 14", product.CurrentStock)
	}
}

func TestStockUpdateRejectsBadInputWithoutRequest(t *testing.T) {
	var requests int
	srv := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	client, _, _ := newTestClient(t, srv)
	ctx := context.Background()

	_, err := client.RawProducts.UpdateStock(ctx, "r1", -1, models.StockAdd)
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("negative quantity: err = %v, want validation.Error", err)
	}

	_, err = client.RawProducts.UpdateStock(ctx, "r1", 1, models.StockDirection("replace"))
	if !errors.As(err, &vErr) {
		t.Fatalf("bad direction: err = %v, want validation.Error", err)
	}

	if requests != 0 {
		t.Errorf("invalid adjustments reached the server (%d requests)", requests)
	}
}
