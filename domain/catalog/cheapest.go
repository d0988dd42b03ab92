package catalog

// FindCheapest returns the row with the lowest positive price, or nil when
// no row has one. Rows with a blank, non-numeric, zero or negative price
// never qualify. On a price tie the first row in input order wins, which
// decides which of two identically priced wines carries the promo flag.
func FindCheapest(rows []Row) Row {
	var cheapest Row
	var cheapestPrice float64

	for _, row := range rows {
		price, ok := row.PriceValue()
		if !ok || price <= 0 {
			continue
		}
		if cheapest == nil || price < cheapestPrice {
			cheapest = row
			cheapestPrice = price
		}
	}

	return cheapest
}
