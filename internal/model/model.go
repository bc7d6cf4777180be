package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the single record flowing through the pipeline. The CSV side
// carries the first eleven fields; Total and ProcessedAt are stamped by the
// ingest transformer.
type Order struct {
	OrderID       string  `json:"order_id" validate:"required"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail string  `json:"customer_email"`
	Product       string  `json:"product" validate:"required"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity" validate:"gt=0"`
	Price         float64 `json:"price" validate:"gt=0"`
	OrderDate     string  `json:"order_date"`
	OrderTime     string  `json:"order_time"`
	PaymentMethod string  `json:"payment_method"`
	ShippingCity  string  `json:"shipping_city"`
	Total         float64 `json:"total,omitempty"`
	ProcessedAt   string  `json:"processed_at,omitempty"`
}

// CSVHeader is the fixed column order shared by the generator and the ingest
// transformer.
var CSVHeader = []string{
	"order_id", "customer_name", "customer_email", "product", "category",
	"quantity", "price", "order_date", "order_time", "payment_method", "shipping_city",
}

// CSVRecord returns the order's CSV fields in CSVHeader order.
func (o Order) CSVRecord() []string {
	return []string{
		o.OrderID,
		o.CustomerName,
		o.CustomerEmail,
		o.Product,
		o.Category,
		strconv.Itoa(o.Quantity),
		strconv.FormatFloat(o.Price, 'f', -1, 64),
		o.OrderDate,
		o.OrderTime,
		o.PaymentMethod,
		o.ShippingCity,
	}
}

// LineTotal computes quantity*price rounded to 2 decimal places.
func (o Order) LineTotal() float64 {
	return decimal.NewFromFloat(o.Price).
		Mul(decimal.NewFromInt(int64(o.Quantity))).
		Round(2).
		InexactFloat64()
}

// Stamp finishes the transform: computes the total and records the processing
// instant in RFC 3339 UTC.
func (o Order) Stamp(now time.Time) Order {
	o.Total = o.LineTotal()
	o.ProcessedAt = now.UTC().Format(time.RFC3339)
	return o
}
