package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func menuFixture() []MenuItem {
	return []MenuItem{
		{ID: "m1", Name: "Paneer Tikka", Price: decimal.NewFromInt(250)},
		{ID: "m2", Name: "Veg Biryani", Price: decimal.NewFromFloat(180.50)},
	}
}

func TestBuildOrderItems(t *testing.T) {
	items, err := BuildOrderItems(menuFixture(), []OrderSelection{
		{MenuItemID: "m1", Quantity: 2},
		{MenuItemID: "m2", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].MenuItemName != "Paneer Tikka" {
		t.Errorf("name snapshot = %q, want Paneer Tikka", items[0].MenuItemName)
	}
	if !items[0].Subtotal.Equal(decimal.NewFromInt(500)) {
		t.Errorf("subtotal = %s, want 500", items[0].Subtotal)
	}
	if !items[1].Subtotal.Equal(decimal.NewFromFloat(541.50)) {
		t.Errorf("subtotal = %s, want 541.5", items[1].Subtotal)
	}
}

func TestBuildOrderItemsUnknownItem(t *testing.T) {
	_, err := BuildOrderItems(menuFixture(), []OrderSelection{{MenuItemID: "missing", Quantity: 1}})
	if err == nil {
		t.Fatal("expected error for unknown menu item")
	}
}

func TestOrderTotal(t *testing.T) {
	items, err := BuildOrderItems(menuFixture(), []OrderSelection{
		{MenuItemID: "m1", Quantity: 2},
		{MenuItemID: "m2", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := OrderTotal(items)
	if !total.Equal(decimal.NewFromFloat(680.50)) {
		t.Errorf("total = %s, want 680.5", total)
	}
}

func TestVerifyOrderTotals(t *testing.T) {
	items, _ := BuildOrderItems(menuFixture(), []OrderSelection{{MenuItemID: "m1", Quantity: 2}})
	total := OrderTotal(items)

	if err := VerifyOrderTotals(items, total); err != nil {
		t.Errorf("consistent totals rejected: %v", err)
	}
	if err := VerifyOrderTotals(items, total.Add(decimal.NewFromInt(1))); err == nil {
		t.Error("mismatched total accepted")
	}

	// Tampered subtotal must fail even when the sum happens to match.
	tampered := []OrderItem{{MenuItemID: "m1", Quantity: 2, Price: decimal.NewFromInt(250), Subtotal: decimal.NewFromInt(400)}}
	if err := VerifyOrderTotals(tampered, decimal.NewFromInt(400)); err == nil {
		t.Error("tampered subtotal accepted")
	}
}

func TestCountByStatus(t *testing.T) {
	orders := []Order{
		{Status: OrderPending},
		{Status: OrderPending},
		{Status: OrderCompleted},
		{Status: OrderCancelled},
	}
	counts := CountByStatus(orders)
	if counts[OrderPending] != 2 {
		t.Errorf("pending = %d, want 2", counts[OrderPending])
	}
	if counts[OrderCompleted] != 1 {
		t.Errorf("completed = %d, want 1", counts[OrderCompleted])
	}
	if counts[OrderPreparing] != 0 {
		t.Errorf("preparing = %d, want 0", counts[OrderPreparing])
	}
}
