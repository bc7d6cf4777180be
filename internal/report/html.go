package report

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupees = message.NewPrinter(language.English)

// Currency renders a rupee amount with grouped thousands and no decimals.
func Currency(v float64) string {
	return rupees.Sprintf("₹%d", int64(math.Round(v)))
}

var tmplFuncs = template.FuncMap{
	"currency": Currency,
	"pct":      func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"add1":     func(i int) int { return i + 1 },
}

var (
	reportTmpl = template.Must(template.New("report").Funcs(tmplFuncs).Parse(reportHTML))
	noDataTmpl = template.Must(template.New("nodata").Parse(noDataHTML))
	errorTmpl  = template.Must(template.New("error").Parse(errorHTML))
)

type reportData struct {
	DateLong    string
	GeneratedAt string
	M           Metrics
}

// Render produces the daily report HTML.
func Render(date time.Time, m Metrics, generatedAt time.Time) (string, error) {
	var b strings.Builder
	err := reportTmpl.Execute(&b, reportData{
		DateLong:    date.Format("January 02, 2006"),
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05"),
		M:           m,
	})
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}

// RenderNoData produces the "no orders found" notification body.
func RenderNoData(date time.Time, generatedAt time.Time) (string, error) {
	var b strings.Builder
	err := noDataTmpl.Execute(&b, map[string]string{
		"DateLong":    date.Format("January 02, 2006"),
		"Prefix":      "processed/" + date.Format("2006/01/02") + "/",
		"GeneratedAt": generatedAt.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", fmt.Errorf("render no-data notice: %w", err)
	}
	return b.String(), nil
}

// RenderError produces the failure notification body.
func RenderError(errMsg string, at time.Time) (string, error) {
	var b strings.Builder
	err := errorTmpl.Execute(&b, map[string]string{
		"Error":      errMsg,
		"OccurredAt": at.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", fmt.Errorf("render error notice: %w", err)
	}
	return b.String(), nil
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body{font-family:Arial,sans-serif;margin:0;padding:20px;background:#f5f5f5}
.c{max-width:900px;margin:0 auto;background:#fff;padding:30px;border-radius:8px;box-shadow:0 2px 4px rgba(0,0,0,0.1)}
h1{color:#2c3e50;border-bottom:3px solid #3498db;padding-bottom:10px;margin-bottom:30px}
h2{color:#34495e;margin-top:30px;margin-bottom:15px;border-left:4px solid #3498db;padding-left:10px}
.g{display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));gap:20px;margin:20px 0 30px}
.k{padding:20px;border-radius:8px;color:#fff;text-align:center}
.k1{background:linear-gradient(135deg,#667eea,#764ba2)}
.k2{background:linear-gradient(135deg,#f093fb,#f5576c)}
.k3{background:linear-gradient(135deg,#4facfe,#00f2fe)}
.k4{background:linear-gradient(135deg,#43e97b,#38f9d7)}
.l{font-size:13px;opacity:0.9;margin-bottom:8px}
.v{font-size:28px;font-weight:bold}
table{width:100%;border-collapse:collapse;margin-top:15px}
th{background:#3498db;color:#fff;padding:12px;text-align:left;font-weight:600}
td{padding:10px;border-bottom:1px solid #ecf0f1}
tr:hover{background:#f8f9fa}
.f{margin-top:40px;padding-top:15px;border-top:1px solid #ddd;color:#7f8c8d;font-size:12px;text-align:center}
</style>
</head>
<body>
<div class="c">
<h1>Daily Sales Report - {{.DateLong}}</h1>

<div class="g">
<div class="k k1"><div class="l">Total Revenue</div><div class="v">{{currency .M.Revenue}}</div></div>
<div class="k k2"><div class="l">Total Orders</div><div class="v">{{.M.Orders}}</div></div>
<div class="k k3"><div class="l">Avg Order Value</div><div class="v">{{currency .M.AvgOrder}}</div></div>
<div class="k k4"><div class="l">Unique Customers</div><div class="v">{{.M.Customers}}</div></div>
</div>

<h2>Top 10 Products</h2>
<table>
<tr><th>Rank</th><th>Product</th><th>Orders</th><th>Quantity</th><th>Revenue</th></tr>
{{range $i, $p := .M.TopProducts}}<tr><td><b>#{{add1 $i}}</b></td><td>{{$p.Name}}</td><td>{{$p.Orders}}</td><td>{{$p.Qty}}</td><td>{{currency $p.Revenue}}</td></tr>
{{end}}</table>

<h2>Revenue by Category</h2>
<table>
<tr><th>Category</th><th>Orders</th><th>Revenue</th><th>% of Total</th></tr>
{{range .M.Categories}}<tr><td><b>{{.Name}}</b></td><td>{{.Orders}}</td><td>{{currency .Revenue}}</td><td>{{pct .Share}}</td></tr>
{{end}}</table>

<h2>Payment Methods</h2>
<table>
<tr><th>Method</th><th>Orders</th><th>Percentage</th></tr>
{{range .M.Payments}}<tr><td>{{.Method}}</td><td>{{.Orders}}</td><td>{{pct .Share}}</td></tr>
{{end}}</table>

<h2>Top 5 Cities by Revenue</h2>
<table>
<tr><th>City</th><th>Orders</th><th>Revenue</th></tr>
{{range .M.TopCities}}<tr><td>{{.Name}}</td><td>{{.Orders}}</td><td>{{currency .Revenue}}</td></tr>
{{end}}</table>

<div class="f">
<p><b>E-Commerce Order Analytics Pipeline</b></p>
<p>Report generated at {{.GeneratedAt}} UTC</p>
<p>Data for {{.DateLong}}</p>
</div>
</div>
</body>
</html>`

const noDataHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body{font-family:Arial;padding:20px;background:#f5f5f5}
.c{max-width:600px;margin:0 auto;background:#fff;padding:30px;border-radius:8px}
h2{color:#e74c3c}
</style>
</head>
<body>
<div class="c">
<h2>No Orders Found</h2>
<p>No orders were processed for <b>{{.DateLong}}</b>.</p>
<p><b>Possible reasons:</b></p>
<ul>
<li>No CSV files were uploaded to the incoming bucket</li>
<li>All files had validation errors</li>
<li>Files were uploaded to the wrong folder (should be in 'incoming/')</li>
<li>Files were uploaded with an incorrect date in the filename (expected: orders_YYYYMMDD.csv)</li>
</ul>
<p><b>Action:</b> Check the {{.Prefix}} folder in the processed bucket.</p>
<hr style="margin:20px 0;border:none;border-top:1px solid #ddd">
<p style="font-size:12px;color:#666">Generated at {{.GeneratedAt}} UTC</p>
</div>
</body>
</html>`

const errorHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body{font-family:Arial;padding:20px;background:#f5f5f5}
.c{max-width:600px;margin:0 auto;background:#fff;padding:30px;border-radius:8px}
h2{color:#c0392b}
.error{background:#ffeaa7;padding:15px;border-left:4px solid #e74c3c;margin:15px 0}
</style>
</head>
<body>
<div class="c">
<h2>Report Generation Failed</h2>
<p>The daily report generation encountered an error.</p>
<div class="error"><b>Error:</b> {{.Error}}</div>
<p><b>Action required:</b> Check the Lambda CloudWatch logs for details.</p>
<hr style="margin:20px 0;border:none;border-top:1px solid #ddd">
<p style="font-size:12px;color:#666">Error occurred at {{.OccurredAt}} UTC</p>
</div>
</body>
</html>`
