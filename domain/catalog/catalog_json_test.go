package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrice(v float64) *float64 { return &v }

func TestCatalogJSON_RoundTripKeepsOrderAndText(t *testing.T) {
	original := NewCatalog()
	original.Add("Красное вино", Wine{Name: "Изабелла", Grape: "Изабелла", Price: testPrice(150), Promo: true})
	original.Add("Красное вино", Wine{Name: "Хванчкара", Grape: "Александроули", Price: testPrice(450)})
	original.Add("Белое вино", Wine{Name: "Рислинг", Price: testPrice(300)})
	original.Add("Напитки", Wine{Name: "Чача"})

	raw, err := original.MarshalJSON()
	require.NoError(t, err)

	// Cyrillic must be written literally, not as \u escapes.
	assert.Contains(t, string(raw), "Красное вино")
	assert.Contains(t, string(raw), "Изабелла")
	assert.NotContains(t, string(raw), `\u`)

	// Key order follows insertion order.
	red := strings.Index(string(raw), "Красное вино")
	white := strings.Index(string(raw), "Белое вино")
	drinks := strings.Index(string(raw), "Напитки")
	assert.True(t, red < white && white < drinks)

	restored := NewCatalog()
	require.NoError(t, restored.UnmarshalJSON(raw))
	assert.Equal(t, original.Groups(), restored.Groups())
}

func TestCatalogJSON_NilPriceIsNull(t *testing.T) {
	c := NewCatalog()
	c.Add("Red", Wine{Name: "A"})

	raw, err := c.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Цена":null`)
}

func TestCatalogJSON_EmptyCatalog(t *testing.T) {
	raw, err := NewCatalog().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestCatalogJSON_NaNPriceCellMarshals(t *testing.T) {
	rows := []Row{
		{ColName: "Weird", ColPrice: "NaN", ColCategory: "Red"},
		{ColName: "Real", ColPrice: "10", ColCategory: "Red"},
	}

	grouped := GroupByCategory(rows, FindCheapest(rows))

	raw, err := grouped.MarshalJSON()
	require.NoError(t, err)
	// The NaN cell normalizes to "no price" and the real row keeps the flag.
	assert.Contains(t, string(raw), `"Цена":null`)

	wines := grouped.Groups()[0].Wines
	require.Len(t, wines, 2)
	assert.Nil(t, wines[0].Price)
	assert.False(t, wines[0].Promo)
	assert.True(t, wines[1].Promo)
}

func TestCatalogJSON_RejectsNonObject(t *testing.T) {
	c := NewCatalog()
	assert.Error(t, c.UnmarshalJSON([]byte(`[1,2]`)))
}
