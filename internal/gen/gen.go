// Package gen produces synthetic order batches for exercising the pipeline.
package gen

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/model"
)

// Generator samples orders from the fixed catalog using its own rand source,
// so runs are reproducible given a seed.
type Generator struct {
	rng *rand.Rand
	// categories in deterministic order; map iteration alone would make
	// seeded runs non-reproducible
	categories []string
}

func New(seed int64) *Generator {
	cats := make([]string, 0, len(Catalog))
	for c := range Catalog {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return &Generator{rng: rand.New(rand.NewSource(seed)), categories: cats}
}

// Orders generates count synthetic orders dated to the given calendar day.
// Order IDs are unique within the batch.
func (g *Generator) Orders(count int, date time.Time) []model.Order {
	orders := make([]model.Order, 0, count)
	usedIDs := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		var orderID string
		for {
			orderID = fmt.Sprintf("ORD%s%04d", date.Format("20060102"), 1000+g.rng.Intn(9000))
			if _, ok := usedIDs[orderID]; !ok {
				usedIDs[orderID] = struct{}{}
				break
			}
		}

		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]

		category := g.categories[g.rng.Intn(len(g.categories))]
		product := Catalog[category][g.rng.Intn(len(Catalog[category]))]

		orders = append(orders, model.Order{
			OrderID:       orderID,
			CustomerName:  first + " " + last,
			CustomerEmail: strings.ToLower(first) + "." + strings.ToLower(last) + "@gmail.com",
			Product:       product.Name,
			Category:      category,
			Quantity:      g.quantity(),
			Price:         float64(product.MinPrice + g.rng.Intn(product.MaxPrice-product.MinPrice+1)),
			OrderDate:     date.Format("2006-01-02"),
			OrderTime:     fmt.Sprintf("%02d:%02d:00", g.rng.Intn(24), g.rng.Intn(60)),
			PaymentMethod: paymentMethods[g.rng.Intn(len(paymentMethods))],
			ShippingCity:  cities[g.rng.Intn(len(cities))],
		})
	}
	return orders
}

// quantity draws 1..5 according to quantityWeights.
func (g *Generator) quantity() int {
	total := 0
	for _, w := range quantityWeights {
		total += w
	}
	n := g.rng.Intn(total)
	for i, w := range quantityWeights {
		if n < w {
			return i + 1
		}
		n -= w
	}
	return 1
}

// WriteCSV writes the batch with the fixed header.
func WriteCSV(w io.Writer, orders []model.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.CSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, o := range orders {
		if err := cw.Write(o.CSVRecord()); err != nil {
			return fmt.Errorf("write order %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Revenue sums quantity*price over the batch.
func Revenue(orders []model.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.LineTotal()
	}
	return total
}
