// Package report aggregates a day's processed batches into a daily sales
// report and delivers it.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/model"
)

// ProductStats accumulates per-product counters.
type ProductStats struct {
	Name    string
	Orders  int
	Qty     int
	Revenue float64
}

// CategoryStats accumulates per-category counters. Share is the category's
// revenue as a percentage of total revenue.
type CategoryStats struct {
	Name    string
	Orders  int
	Revenue float64
	Share   float64
}

// PaymentStats counts orders per payment method. Share is the method's share
// of the order count.
type PaymentStats struct {
	Method string
	Orders int
	Share  float64
}

// CityStats accumulates per-city counters.
type CityStats struct {
	Name    string
	Orders  int
	Revenue float64
}

// Metrics is the daily snapshot derived from one pass over the records. It is
// never persisted; every run recomputes it from storage.
type Metrics struct {
	Revenue   float64
	Orders    int
	AvgOrder  float64
	Customers int

	TopProducts []ProductStats // top 10 by revenue
	Categories  []CategoryStats
	Payments    []PaymentStats
	TopCities   []CityStats // top 5 by revenue
}

// Calculate runs the single-pass aggregation. Rankings are sorted by revenue
// (payment methods by order count) descending; ties keep first-encountered
// order.
func Calculate(orders []model.Order) Metrics {
	var revenue float64
	customers := make(map[string]struct{})
	products := make(map[string]*ProductStats)
	categories := make(map[string]*CategoryStats)
	payments := make(map[string]*PaymentStats)
	cities := make(map[string]*CityStats)

	// slices hold first-encounter order so the stable sorts below break
	// revenue ties deterministically
	var productList []*ProductStats
	var categoryList []*CategoryStats
	var paymentList []*PaymentStats
	var cityList []*CityStats

	for _, o := range orders {
		revenue += o.Total
		customers[o.CustomerName] = struct{}{}

		p := products[o.Product]
		if p == nil {
			p = &ProductStats{Name: o.Product}
			products[o.Product] = p
			productList = append(productList, p)
		}
		p.Orders++
		p.Qty += o.Quantity
		p.Revenue += o.Total

		c := categories[o.Category]
		if c == nil {
			c = &CategoryStats{Name: o.Category}
			categories[o.Category] = c
			categoryList = append(categoryList, c)
		}
		c.Orders++
		c.Revenue += o.Total

		pm := payments[o.PaymentMethod]
		if pm == nil {
			pm = &PaymentStats{Method: o.PaymentMethod}
			payments[o.PaymentMethod] = pm
			paymentList = append(paymentList, pm)
		}
		pm.Orders++

		ct := cities[o.ShippingCity]
		if ct == nil {
			ct = &CityStats{Name: o.ShippingCity}
			cities[o.ShippingCity] = ct
			cityList = append(cityList, ct)
		}
		ct.Orders++
		ct.Revenue += o.Total
	}

	sort.SliceStable(productList, func(i, j int) bool { return productList[i].Revenue > productList[j].Revenue })
	sort.SliceStable(categoryList, func(i, j int) bool { return categoryList[i].Revenue > categoryList[j].Revenue })
	sort.SliceStable(paymentList, func(i, j int) bool { return paymentList[i].Orders > paymentList[j].Orders })
	sort.SliceStable(cityList, func(i, j int) bool { return cityList[i].Revenue > cityList[j].Revenue })

	m := Metrics{
		Revenue:   round2(revenue),
		Orders:    len(orders),
		Customers: len(customers),
	}
	// the no-data early exit upstream means orders is never empty here, but
	// keep the guard
	if len(orders) > 0 {
		m.AvgOrder = round2(revenue / float64(len(orders)))
	}

	for _, p := range topN(productList, 10) {
		m.TopProducts = append(m.TopProducts, *p)
	}
	for _, c := range categoryList {
		if m.Revenue > 0 {
			c.Share = c.Revenue / m.Revenue * 100
		}
		m.Categories = append(m.Categories, *c)
	}
	for _, pm := range paymentList {
		if m.Orders > 0 {
			pm.Share = float64(pm.Orders) / float64(m.Orders) * 100
		}
		m.Payments = append(m.Payments, *pm)
	}
	for _, ct := range topN(cityList, 5) {
		m.TopCities = append(m.TopCities, *ct)
	}
	return m
}

func topN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
