package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/storage"
)

const sampleCSV = `order_id,customer_name,customer_email,product,category,quantity,price,order_date,order_time,payment_method,shipping_city
ORD202510140001,Rahul Sharma,rahul.sharma@gmail.com,Dell Laptop,Electronics,1,60000,2025-10-14,10:15:00,UPI,Mumbai
ORD202510140002,Priya Patel,priya.patel@gmail.com,Yoga Mat Premium,Sports,0,1500,2025-10-14,11:00:00,Wallet,Pune
ORD202510140003,Amit Kumar,amit.kumar@gmail.com,Nike Shoes,Clothing,2,4999.50,2025-10-14,12:30:00,Credit Card,Delhi
`

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	old := NowUTC
	t.Cleanup(func() { NowUTC = old })
	now := time.Date(2025, 10, 15, 1, 30, 45, 0, time.UTC)
	NowUTC = func() time.Time { return now }
	return now
}

func TestFileDate(t *testing.T) {
	d, ok := FileDate("incoming/orders_20251014.csv")
	if !ok {
		t.Fatal("expected a date")
	}
	if d.Format("2006-01-02") != "2025-10-14" {
		t.Fatalf("date = %s", d.Format("2006-01-02"))
	}

	if _, ok := FileDate("incoming/data.csv"); ok {
		t.Fatal("expected no date for digitless filename")
	}
	if _, ok := FileDate("orders_99991342.csv"); ok {
		t.Fatal("expected unparsable digits to be rejected")
	}
}

func TestTransformCSV_InvalidRowExcluded(t *testing.T) {
	now := time.Date(2025, 10, 15, 2, 0, 0, 0, time.UTC)
	orders, rowErrs := TransformCSV([]byte(sampleCSV), now)

	if len(orders) != 2 {
		t.Fatalf("got %d valid orders, want 2", len(orders))
	}
	if len(rowErrs) != 1 {
		t.Fatalf("got %d row errors, want 1: %v", len(rowErrs), rowErrs)
	}
	if !strings.HasPrefix(rowErrs[0], "Row 3:") {
		t.Fatalf("error should reference row 3: %q", rowErrs[0])
	}

	if orders[0].Total != 60000 {
		t.Fatalf("total = %v, want 60000", orders[0].Total)
	}
	if orders[1].Total != 9999 {
		t.Fatalf("total = %v, want 9999", orders[1].Total)
	}
	if orders[0].ProcessedAt != "2025-10-15T02:00:00Z" {
		t.Fatalf("processed_at = %q", orders[0].ProcessedAt)
	}
}

func TestTransformCSV_CoercionFailures(t *testing.T) {
	csv := "order_id,customer_name,product,quantity,price\n" +
		"ORD1,A B,Thing,two,100\n" +
		"ORD2,C D,Thing,2,cheap\n"
	orders, rowErrs := TransformCSV([]byte(csv), time.Now())
	if len(orders) != 0 {
		t.Fatalf("got %d valid orders, want 0", len(orders))
	}
	if len(rowErrs) != 2 {
		t.Fatalf("row errors = %v", rowErrs)
	}
	if !strings.Contains(rowErrs[0], "invalid quantity") || !strings.Contains(rowErrs[1], "invalid price") {
		t.Fatalf("unexpected reasons: %v", rowErrs)
	}
}

func TestProcess_WritesDatePartitionedBatch(t *testing.T) {
	now := fixedNow(t)
	st := storage.NewMemoryStore()
	ctx := context.Background()
	if err := st.Put(ctx, "shop-raw-data", "incoming/orders_20251014.csv", []byte(sampleCSV), "text/csv", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := &Processor{Store: st}
	res, err := p.Process(ctx, "shop-raw-data", "incoming/orders_20251014.csv")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.StatusCode != 200 || res.Processed != 2 || res.Errors != 1 {
		t.Fatalf("result = %+v", res)
	}
	// partitioned by the file date, not the processing date
	want := "processed/2025/10/14/orders_20251014_" + now.Format("150405") + ".json"
	if res.Output != want {
		t.Fatalf("output = %q, want %q", res.Output, want)
	}
	if res.FileDate != "2025-10-14" {
		t.Fatalf("file date = %q", res.FileDate)
	}

	obj, ok := st.Lookup("shop-processed", want)
	if !ok {
		t.Fatalf("batch not written to derived bucket")
	}
	if obj.ContentType != "application/json" {
		t.Fatalf("content type = %q", obj.ContentType)
	}
	if obj.Metadata["order-count"] != "2" || obj.Metadata["file-date"] != "2025-10-14" {
		t.Fatalf("metadata = %v", obj.Metadata)
	}
	if obj.Metadata["original-file"] != "incoming/orders_20251014.csv" {
		t.Fatalf("metadata = %v", obj.Metadata)
	}
}

func TestProcess_ZeroValidRowsWritesNothing(t *testing.T) {
	fixedNow(t)
	st := storage.NewMemoryStore()
	ctx := context.Background()
	csv := "order_id,customer_name,product,quantity,price\nORD1,A B,Thing,0,100\n"
	if err := st.Put(ctx, "shop-raw-data", "incoming/orders_20251014.csv", []byte(csv), "text/csv", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := &Processor{Store: st}
	res, err := p.Process(ctx, "shop-raw-data", "incoming/orders_20251014.csv")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.StatusCode != 400 || res.Errors != 1 {
		t.Fatalf("result = %+v", res)
	}
	if st.Len() != 1 { // only the seeded upload
		t.Fatalf("store has %d objects, expected no batch write", st.Len())
	}
}

func TestProcess_MissingObjectIsFatal(t *testing.T) {
	p := &Processor{Store: storage.NewMemoryStore()}
	if _, err := p.Process(context.Background(), "shop-raw-data", "incoming/missing.csv"); err == nil {
		t.Fatal("expected error for missing upload")
	}
}

func TestProcess_BucketOverride(t *testing.T) {
	now := fixedNow(t)
	st := storage.NewMemoryStore()
	ctx := context.Background()
	if err := st.Put(ctx, "uploads", "orders_20251014.csv", []byte(sampleCSV), "text/csv", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := &Processor{Store: st, ProcessedBucket: "analytics-processed"}
	res, err := p.Process(ctx, "uploads", "orders_20251014.csv")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	key := "processed/2025/10/14/orders_20251014_" + now.Format("150405") + ".json"
	if res.Output != key {
		t.Fatalf("output = %q", res.Output)
	}
	if _, ok := st.Lookup("analytics-processed", key); !ok {
		t.Fatal("batch not written to override bucket")
	}
}
