package catalog

import "strings"

// Sanitize normalizes one raw row into a Wine. Missing text cells become
// empty strings and a missing or non-numeric price becomes nil. The promo
// flag is set only when both name and price match the cheapest row, so a
// coincidental price match on a different wine is not flagged.
func Sanitize(row Row, cheapest Row) Wine {
	w := Wine{
		Name:  row[ColName],
		Grape: row[ColGrape],
		Image: row[ColImage],
	}

	price, hasPrice := row.PriceValue()
	if hasPrice {
		w.Price = &price
	}

	if cheapest != nil {
		cheapestPrice, ok := cheapest.PriceValue()
		w.Promo = ok && hasPrice &&
			row[ColName] == cheapest[ColName] &&
			price == cheapestPrice
	}

	return w
}

// GroupByCategory buckets rows by trimmed category. Rows whose category is
// blank after trimming are skipped entirely; every other row is kept, with
// missing fields normalized rather than dropped. Categories appear in
// first-seen order and wines keep their input order.
func GroupByCategory(rows []Row, cheapest Row) *Catalog {
	grouped := NewCatalog()

	for _, row := range rows {
		category := strings.TrimSpace(row[ColCategory])
		if category == "" {
			continue
		}
		grouped.Add(category, Sanitize(row, cheapest))
	}

	return grouped
}
