package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Column headers of the source spreadsheet.
const (
	ColName     = "Название"
	ColGrape    = "Сорт"
	ColPrice    = "Цена"
	ColImage    = "Картинка"
	ColCategory = "Категория"
)

// Row is one raw spreadsheet row keyed by column header. Absent columns
// read as empty strings.
type Row map[string]string

// PriceValue parses the price cell. A blank or non-numeric cell means the
// row has no price, which is distinct from a price of zero. ParseFloat
// accepts the spellings "NaN" and "Inf", neither of which is a price: NaN
// slips past every ordering comparison and cannot be marshaled to JSON.
func (r Row) PriceValue() (float64, bool) {
	cell := strings.TrimSpace(r[ColPrice])
	if cell == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}

// Wine is one sanitized catalog record. JSON keys match the spreadsheet
// headers so exports line up with the source data. A nil Price means the
// source cell was blank.
type Wine struct {
	Name  string   `json:"Название"`
	Grape string   `json:"Сорт"`
	Price *float64 `json:"Цена"`
	Image string   `json:"Картинка"`
	Promo bool     `json:"Акция"`
}

// Group is one display section of the page.
type Group struct {
	Category string
	Wines    []Wine
}

// Catalog holds category groups in first-seen order. Its JSON form is an
// object whose keys keep that order, which encoding/json maps cannot do.
type Catalog struct {
	groups []Group
	index  map[string]int
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends a wine to its category group, creating the group at the end
// of the catalog on first sight of the category.
func (c *Catalog) Add(category string, w Wine) {
	if i, ok := c.index[category]; ok {
		c.groups[i].Wines = append(c.groups[i].Wines, w)
		return
	}
	c.index[category] = len(c.groups)
	c.groups = append(c.groups, Group{Category: category, Wines: []Wine{w}})
}

// Groups returns the category groups in insertion order.
func (c *Catalog) Groups() []Group {
	return c.groups
}

// WineCount returns the number of grouped wines across all categories.
func (c *Catalog) WineCount() int {
	n := 0
	for _, g := range c.groups {
		n += len(g.Wines)
	}
	return n
}

// MarshalJSON writes the catalog as a JSON object in insertion order.
// Values go through an encoder with HTML escaping off so Cyrillic and
// markup characters stay literal.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range c.groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeLiteral(&buf, g.Category); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeLiteral(&buf, g.Wines); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object token by token so key order survives the
// round trip.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog JSON must be an object, got %v", tok)
	}

	c.groups = nil
	c.index = make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category := keyTok.(string)
		var wines []Wine
		if err := dec.Decode(&wines); err != nil {
			return err
		}
		c.index[category] = len(c.groups)
		c.groups = append(c.groups, Group{Category: category, Wines: wines})
	}
	_, err = dec.Token() // closing brace
	return err
}

func encodeLiteral(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates the value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
