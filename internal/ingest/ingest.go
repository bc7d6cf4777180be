// Package ingest validates and transforms uploaded order CSVs into processed
// JSON batches.
package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/model"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/storage"
)

// NowUTC returns the current UTC instant. Split for testability.
var NowUTC = func() time.Time { return time.Now().UTC() }

var validate = validator.New()

var datePattern = regexp.MustCompile(`\d{8}`)

// FileDate extracts a YYYYMMDD date from the key's base name, e.g.
// "incoming/orders_20251014.csv" -> 2025-10-14. ok is false when no parsable
// date is present; callers fall back to today.
func FileDate(key string) (time.Time, bool) {
	base := path.Base(key)
	m := datePattern.FindString(base)
	if m == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("20060102", m)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Result reports one processed upload. RowErrors carries the per-row
// validation messages; only their count goes on the wire.
type Result struct {
	StatusCode int      `json:"statusCode"`
	Processed  int      `json:"processed"`
	Errors     int      `json:"errors"`
	Output     string   `json:"output,omitempty"`
	FileDate   string   `json:"file_date,omitempty"`
	RowErrors  []string `json:"-"`
}

// Processor transforms one uploaded CSV per invocation. ProcessedBucket
// overrides the output bucket; when empty it is derived from the source
// bucket name.
type Processor struct {
	Store           storage.ObjectStore
	ProcessedBucket string
}

// Process reads the uploaded CSV, transforms its rows, and writes the valid
// records as a JSON batch partitioned by the file date. Row-level validation
// failures never fail the batch; a batch with zero valid rows is a client
// error and writes nothing. Infrastructure errors are returned to the caller.
func (p *Processor) Process(ctx context.Context, bucket, key string) (Result, error) {
	log.Printf("processing s3://%s/%s", bucket, key)
	now := NowUTC()

	fileDate, ok := FileDate(key)
	if !ok {
		log.Printf("no date found in filename %q, using today", path.Base(key))
		fileDate = now
	}

	data, err := p.Store.Get(ctx, bucket, key)
	if err != nil {
		return Result{}, fmt.Errorf("fetch upload: %w", err)
	}

	orders, rowErrs := TransformCSV(data, now)
	log.Printf("valid: %d, errors: %d", len(orders), len(rowErrs))
	for _, e := range rowErrs {
		log.Printf("  %s", e)
	}

	if len(orders) == 0 {
		return Result{StatusCode: 400, Errors: len(rowErrs), RowErrors: rowErrs}, nil
	}

	outBucket := p.ProcessedBucket
	if outBucket == "" {
		outBucket = strings.Replace(bucket, "raw-data", "processed", 1)
	}
	base := path.Base(key)
	base = strings.TrimSuffix(base, path.Ext(base))
	outKey := fmt.Sprintf("processed/%s/%s_%s.json", fileDate.Format("2006/01/02"), base, now.Format("150405"))

	body, err := json.Marshal(orders)
	if err != nil {
		return Result{}, fmt.Errorf("marshal batch: %w", err)
	}
	meta := map[string]string{
		"original-file": key,
		"file-date":     fileDate.Format("2006-01-02"),
		"processed-at":  now.Format(time.RFC3339),
		"order-count":   strconv.Itoa(len(orders)),
	}
	if err := p.Store.Put(ctx, outBucket, outKey, body, "application/json", meta); err != nil {
		return Result{}, fmt.Errorf("write batch: %w", err)
	}
	log.Printf("saved to s3://%s/%s", outBucket, outKey)

	return Result{
		StatusCode: 200,
		Processed:  len(orders),
		Errors:     len(rowErrs),
		Output:     outKey,
		FileDate:   fileDate.Format("2006-01-02"),
		RowErrors:  rowErrs,
	}, nil
}

// TransformCSV parses the upload row by row. Rows are 1-indexed with the
// header as row 1, so the first data row is row 2 in error messages. Valid
// rows come back stamped with total and processed_at; invalid rows come back
// as "Row <n>: <reason>" strings.
func TransformCSV(data []byte, now time.Time) ([]model.Order, []string) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var orders []model.Order
	var rowErrs []string
	for row := 2; ; row++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: %v", row, err))
			continue
		}
		o, reason := transformRow(col, rec, now)
		if reason != "" {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: %s", row, reason))
			continue
		}
		orders = append(orders, o)
	}
	return orders, rowErrs
}

func transformRow(col map[string]int, rec []string, now time.Time) (model.Order, string) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	qtyRaw := field("quantity")
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil {
		return model.Order{}, fmt.Sprintf("invalid quantity %q", qtyRaw)
	}
	priceRaw := field("price")
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return model.Order{}, fmt.Sprintf("invalid price %q", priceRaw)
	}

	orderTime := field("order_time")
	if orderTime == "" {
		orderTime = "00:00:00"
	}

	o := model.Order{
		OrderID:       field("order_id"),
		CustomerName:  field("customer_name"),
		CustomerEmail: field("customer_email"),
		Product:       field("product"),
		Category:      field("category"),
		Quantity:      qty,
		Price:         price,
		OrderDate:     field("order_date"),
		OrderTime:     orderTime,
		PaymentMethod: field("payment_method"),
		ShippingCity:  field("shipping_city"),
	}
	if err := validate.Struct(o); err != nil {
		return model.Order{}, validationReason(err)
	}
	return o.Stamp(now), ""
}

// validationReason condenses validator output into one row-error reason.
func validationReason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Quantity", "Price":
			return "invalid quantity or price"
		}
	}
	return "missing " + strings.ToLower(verrs[0].Field())
}
