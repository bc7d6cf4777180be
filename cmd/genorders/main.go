package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/gen"
)

func main() {
	var (
		count   int
		dateStr string
		output  string
		seed    int64
	)
	flag.IntVar(&count, "count", 500, "number of orders to generate")
	flag.StringVar(&dateStr, "date", "", "order date as YYYY-MM-DD (default: today UTC)")
	flag.StringVar(&output, "output", "", "output file (default: orders_<YYYYMMDD>.csv)")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	date := time.Now().UTC()
	if dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", dateStr, err)
		}
	}
	if output == "" {
		output = fmt.Sprintf("orders_%s.csv", date.Format("20060102"))
	}

	if err := generateOrders(count, date, output, seed); err != nil {
		log.Fatalf("generation failed: %v", err)
	}
}

func generateOrders(count int, date time.Time, output string, seed int64) error {
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	orders := gen.New(seed).Orders(count, date)
	if err := gen.WriteCSV(file, orders); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	log.Printf("generated %d orders to %s", len(orders), output)
	if len(orders) > 0 {
		revenue := gen.Revenue(orders)
		log.Printf("total revenue: %.2f", revenue)
		log.Printf("average order value: %.2f", revenue/float64(len(orders)))
	}
	return nil
}
