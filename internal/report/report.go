package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/config"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/mail"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/model"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/storage"
)

// NowUTC returns the current UTC instant. Split for testability.
var NowUTC = func() time.Time { return time.Now().UTC() }

// Event is the trigger payload. An empty event means a scheduled run for
// yesterday; a manual trigger may carry an explicit date.
type Event struct {
	ReportDate string `json:"report_date,omitempty"` // YYYY-MM-DD
}

// Result is returned to the invoking platform.
type Result struct {
	StatusCode int     `json:"statusCode"`
	Date       string  `json:"date,omitempty"`
	Orders     int     `json:"orders,omitempty"`
	Revenue    float64 `json:"revenue,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// Generator produces and delivers the daily sales report. Collaborators are
// constructed once per cold start and injected; the Generator itself holds no
// mutable state across runs.
type Generator struct {
	Store  storage.ObjectStore
	Mailer mail.Mailer
	Cfg    config.Config
}

// Run executes one report run. Any failure triggers a best-effort error
// notification before the error is returned to the platform for its retry
// policy.
func (g *Generator) Run(ctx context.Context, event Event) (Result, error) {
	log.Print("starting report generation")
	res, err := g.run(ctx, event)
	if err != nil {
		log.Printf("ERROR: %v", err)
		g.notifyError(ctx, err)
		return Result{}, err
	}
	return res, nil
}

func (g *Generator) run(ctx context.Context, event Event) (Result, error) {
	now := NowUTC()

	var date time.Time
	if event.ReportDate != "" {
		d, err := time.Parse("2006-01-02", event.ReportDate)
		if err != nil {
			return Result{}, fmt.Errorf("parse report_date %q: %w", event.ReportDate, err)
		}
		date = d
		log.Printf("manual trigger, report date %s", date.Format("2006-01-02"))
	} else {
		date = now.AddDate(0, 0, -1)
		log.Printf("scheduled trigger, report date %s", date.Format("2006-01-02"))
	}

	orders := g.fetchOrders(ctx, date)
	if len(orders) == 0 {
		log.Print("no orders found")
		if err := g.sendNoData(ctx, date, now); err != nil {
			log.Printf("sending no-data notice failed: %v", err)
		}
		return Result{StatusCode: 200, Message: "No orders to report"}, nil
	}
	log.Printf("found %d orders", len(orders))

	m := Calculate(orders)
	html, err := Render(date, m, now)
	if err != nil {
		return Result{}, err
	}

	// persisting the report is best-effort; email is the primary channel
	if err := g.saveReport(ctx, html, date, now); err != nil {
		log.Printf("saving report failed: %v", err)
	}

	subject := fmt.Sprintf("Daily Sales Report - %s | Revenue: %s | Orders: %d",
		date.Format("Jan 02, 2006"), Currency(m.Revenue), m.Orders)
	if err := g.Mailer.Send(ctx, g.Cfg.SenderEmail, g.Cfg.RecipientEmail, subject, html); err != nil {
		return Result{}, err
	}

	log.Print("report generation completed")
	return Result{
		StatusCode: 200,
		Date:       date.Format("2006-01-02"),
		Orders:     m.Orders,
		Revenue:    m.Revenue,
	}, nil
}

// fetchOrders reads every processed batch under the date prefix. An object
// whose content fails to read or parse is logged and skipped; it does not
// abort the run.
func (g *Generator) fetchOrders(ctx context.Context, date time.Time) []model.Order {
	prefix := "processed/" + date.Format("2006/01/02") + "/"

	keys, err := g.Store.List(ctx, g.Cfg.ProcessedBucket, prefix)
	if err != nil {
		log.Printf("listing s3://%s/%s failed: %v", g.Cfg.ProcessedBucket, prefix, err)
		return nil
	}
	if len(keys) == 0 {
		log.Printf("no files found in s3://%s/%s", g.Cfg.ProcessedBucket, prefix)
		return nil
	}
	log.Printf("found %d files in %s", len(keys), prefix)

	var orders []model.Order
	for _, key := range keys {
		data, err := g.Store.Get(ctx, g.Cfg.ProcessedBucket, key)
		if err != nil {
			log.Printf("error reading %s: %v", key, err)
			continue
		}
		batch, err := decodeBatch(data)
		if err != nil {
			log.Printf("error parsing %s: %v", key, err)
			continue
		}
		orders = append(orders, batch...)
		log.Printf("read %s: %d orders", key, len(batch))
	}
	return orders
}

// decodeBatch accepts either a JSON array of orders or a single order object.
func decodeBatch(data []byte) ([]model.Order, error) {
	var batch []model.Order
	if err := json.Unmarshal(data, &batch); err == nil {
		return batch, nil
	}
	var one model.Order
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return []model.Order{one}, nil
}

func (g *Generator) saveReport(ctx context.Context, html string, date, now time.Time) error {
	key := "daily/" + date.Format("2006/01") + "/report_" + date.Format("20060102") + ".html"
	meta := map[string]string{
		"report-date":  date.Format("2006-01-02"),
		"generated-at": now.Format(time.RFC3339),
	}
	if err := g.Store.Put(ctx, g.Cfg.ReportsBucket, key, []byte(html), "text/html", meta); err != nil {
		return err
	}
	log.Printf("report saved to s3://%s/%s", g.Cfg.ReportsBucket, key)
	return nil
}

func (g *Generator) sendNoData(ctx context.Context, date, now time.Time) error {
	html, err := RenderNoData(date, now)
	if err != nil {
		return err
	}
	subject := "No Orders - " + date.Format("Jan 02, 2006")
	return g.Mailer.Send(ctx, g.Cfg.SenderEmail, g.Cfg.RecipientEmail, subject, html)
}

// notifyError sends the failure notification; its own failure is swallowed so
// the original error still propagates.
func (g *Generator) notifyError(ctx context.Context, runErr error) {
	html, err := RenderError(runErr.Error(), NowUTC())
	if err != nil {
		log.Printf("rendering error notice failed: %v", err)
		return
	}
	if err := g.Mailer.Send(ctx, g.Cfg.SenderEmail, g.Cfg.RecipientEmail, "Report Generation Failed", html); err != nil {
		log.Printf("sending error notice failed: %v", err)
	}
}
