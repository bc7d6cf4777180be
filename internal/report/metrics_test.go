package report

import (
	"math"
	"testing"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/model"
)

func TestCalculate_MergedTotals(t *testing.T) {
	orders := []model.Order{
		{CustomerName: "A", Total: 100, Product: "x", Category: "c1", PaymentMethod: "UPI", ShippingCity: "Pune", Quantity: 1},
		{CustomerName: "B", Total: 300, Product: "y", Category: "c2", PaymentMethod: "UPI", ShippingCity: "Delhi", Quantity: 2},
	}
	m := Calculate(orders)
	if m.Orders != 2 {
		t.Fatalf("orders = %d, want 2", m.Orders)
	}
	if m.Revenue != 400 {
		t.Fatalf("revenue = %v, want 400", m.Revenue)
	}
	if m.AvgOrder != 200 {
		t.Fatalf("avg order = %v, want 200", m.AvgOrder)
	}
	if m.Customers != 2 {
		t.Fatalf("customers = %d, want 2", m.Customers)
	}
}

func TestCalculate_ProductRollup(t *testing.T) {
	orders := []model.Order{
		{CustomerName: "A", Product: "Laptop", Quantity: 1, Total: 50000},
		{CustomerName: "B", Product: "Laptop", Quantity: 2, Total: 110000},
		{CustomerName: "C", Product: "Mouse", Quantity: 3, Total: 3000},
	}
	m := Calculate(orders)
	if len(m.TopProducts) != 2 {
		t.Fatalf("top products = %d, want 2", len(m.TopProducts))
	}
	p := m.TopProducts[0]
	if p.Name != "Laptop" || p.Orders != 2 || p.Qty != 3 || p.Revenue != 160000 {
		t.Fatalf("laptop rollup = %+v", p)
	}
	if m.TopProducts[1].Name != "Mouse" {
		t.Fatalf("ranking order wrong: %+v", m.TopProducts)
	}
}

func TestCalculate_TopNTruncationAndStableTies(t *testing.T) {
	var orders []model.Order
	// 12 products, all distinct revenues except two tied at 500
	for i := 0; i < 10; i++ {
		orders = append(orders, model.Order{Product: string(rune('a' + i)), Total: float64(1000 + i*100), Quantity: 1})
	}
	orders = append(orders,
		model.Order{Product: "tie-first", Total: 500, Quantity: 1},
		model.Order{Product: "tie-second", Total: 500, Quantity: 1},
	)
	m := Calculate(orders)
	if len(m.TopProducts) != 10 {
		t.Fatalf("top products = %d, want 10", len(m.TopProducts))
	}
	for i := 1; i < len(m.TopProducts); i++ {
		if m.TopProducts[i].Revenue > m.TopProducts[i-1].Revenue {
			t.Fatalf("ranking not descending at %d: %+v", i, m.TopProducts)
		}
	}

	// tied products keep first-encountered order
	tied := Calculate([]model.Order{
		{Product: "tie-first", Total: 500, Quantity: 1},
		{Product: "tie-second", Total: 500, Quantity: 1},
	})
	if tied.TopProducts[0].Name != "tie-first" || tied.TopProducts[1].Name != "tie-second" {
		t.Fatalf("tie order not stable: %+v", tied.TopProducts)
	}
}

func TestCalculate_SharesSumTo100(t *testing.T) {
	orders := []model.Order{
		{Category: "Electronics", PaymentMethod: "UPI", Total: 700, Quantity: 1},
		{Category: "Clothing", PaymentMethod: "UPI", Total: 200, Quantity: 1},
		{Category: "Home", PaymentMethod: "Wallet", Total: 100, Quantity: 1},
	}
	m := Calculate(orders)

	var catSum, paySum float64
	for _, c := range m.Categories {
		catSum += c.Share
	}
	for _, p := range m.Payments {
		paySum += p.Share
	}
	if math.Abs(catSum-100) > 0.2 {
		t.Fatalf("category shares sum to %v", catSum)
	}
	if math.Abs(paySum-100) > 0.2 {
		t.Fatalf("payment shares sum to %v", paySum)
	}

	if m.Payments[0].Method != "UPI" || m.Payments[0].Orders != 2 {
		t.Fatalf("payment ranking = %+v", m.Payments)
	}
}

func TestCalculate_TopCitiesLimit(t *testing.T) {
	var orders []model.Order
	for i := 0; i < 7; i++ {
		orders = append(orders, model.Order{ShippingCity: string(rune('A' + i)), Total: float64(100 * (i + 1)), Quantity: 1})
	}
	m := Calculate(orders)
	if len(m.TopCities) != 5 {
		t.Fatalf("top cities = %d, want 5", len(m.TopCities))
	}
	if m.TopCities[0].Name != "G" {
		t.Fatalf("highest-revenue city = %+v", m.TopCities[0])
	}
}
