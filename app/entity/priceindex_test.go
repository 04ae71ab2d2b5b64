package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceIndexInsertionOrder(t *testing.T) {
	var index PriceIndex
	index.Set("Widget", PriceEntry{Price: 500})
	index.Set("Book", PriceEntry{Price: 1200})
	index.Set("Mug", PriceEntry{Price: 350})

	products := index.Products()
	require.Len(t, products, 3)
	require.Equal(t, "Widget", products[0].Name)
	require.Equal(t, "Book", products[1].Name)
	require.Equal(t, "Mug", products[2].Name)
}

func TestPriceIndexOverwriteKeepsPosition(t *testing.T) {
	var index PriceIndex
	index.Set("Widget", PriceEntry{Price: 500})
	index.Set("Book", PriceEntry{Price: 1200})
	index.Set("Widget", PriceEntry{Price: 700})

	products := index.Products()
	require.Len(t, products, 2)
	require.Equal(t, Product{Name: "Widget", Price: 700}, products[0])
	require.Equal(t, Product{Name: "Book", Price: 1200}, products[1])
}

func TestPriceIndexDelete(t *testing.T) {
	var index PriceIndex
	index.Set("Widget", PriceEntry{Price: 500})

	require.True(t, index.Delete("Widget"))
	require.False(t, index.Delete("Widget"))
	require.Equal(t, 0, index.Len())
	require.Empty(t, index.Products())
}

func TestPriceIndexJSONRoundTrip(t *testing.T) {
	var index PriceIndex
	index.Set("Zebra", PriceEntry{Price: 100})
	index.Set("Apple", PriceEntry{Price: 200})
	index.Set("Mango", PriceEntry{Price: 300})

	data, err := json.Marshal(index)
	require.NoError(t, err)
	require.JSONEq(t, `{"Zebra":{"price":100},"Apple":{"price":200},"Mango":{"price":300}}`, string(data))

	var decoded PriceIndex
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, index.Products(), decoded.Products())

	// A second round trip keeps byte-identical output.
	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))
}

func TestPriceIndexUnmarshalRejectsNonObject(t *testing.T) {
	var decoded PriceIndex
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &decoded))
}

func TestCredentialsConfigured(t *testing.T) {
	require.True(t, Credentials{PublicKey: "pk", Secret: "sk"}.Configured())
	require.False(t, Credentials{PublicKey: "pk"}.Configured())
	require.False(t, Credentials{Secret: "sk"}.Configured())
	require.False(t, Credentials{PublicKey: "  ", Secret: "sk"}.Configured())
}

func TestNewProjectManifestCopiesConfiguredProvidersOnly(t *testing.T) {
	settings := &GlobalSettings{
		Providers: map[string]Credentials{
			"stripe":  {PublicKey: "pk", Secret: "sk"},
			"paypal":  {PublicKey: "pk"},
			"sagepay": {PublicKey: "pk", Secret: "sk", TestKey: "tk"},
		},
		URLs: &CallbackURLs{ReturnURL: "https://shop.test/return"},
	}

	m := NewProjectManifest(settings)
	require.Len(t, m.Providers, 2)
	require.Contains(t, m.Providers, "stripe")
	require.Contains(t, m.Providers, "sagepay")
	require.NotContains(t, m.Providers, "paypal")
	require.Equal(t, "https://shop.test/return", m.URLs.ReturnURL)
	require.Equal(t, 0, m.PriceIndex.Len())
}
