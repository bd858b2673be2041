package countries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	usa, ok := c.Lookup("USA")
	require.True(t, ok)
	assert.Equal(t, "United States", usa.Name)
	assert.Equal(t, "USD", usa.CurrencyCode)

	_, ok = c.Lookup("usa")
	assert.False(t, ok, "codes are case sensitive")

	all := c.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "USA", all[0].Code, "dataset order is preserved")
	assert.Len(t, c.Codes(), len(all))
}

func TestLoadKeepsInsertionOrder(t *testing.T) {
	c, err := Load(strings.NewReader(`{"countries":[
		{"COUNTRY":"Japan","COUNTRY_CODE":"JPN","CURRENCY_CODE":"JPY","NAME_OF_CURRENCY":"Yen"},
		{"COUNTRY":"Canada","COUNTRY_CODE":"CAN","CURRENCY_CODE":"CAD","NAME_OF_CURRENCY":"Canadian Dollar"}
	]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"JPN", "CAN"}, c.Codes())
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	all := c.All()
	all[0].Name = "changed"

	usa, _ := c.Lookup("USA")
	assert.Equal(t, "United States", usa.Name)
	assert.Equal(t, "United States", c.All()[0].Name)
}

func TestLoadRejectsBadDatasets(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"countries": [`,
		"empty":         `{"countries": []}`,
		"missing field": `{"countries":[{"COUNTRY":"Japan","COUNTRY_CODE":"JPN","CURRENCY_CODE":"JPY"}]}`,
		"unknown field": `{"countries":[],"extra":1}`,
		"duplicate code": `{"countries":[
			{"COUNTRY":"Japan","COUNTRY_CODE":"JPN","CURRENCY_CODE":"JPY","NAME_OF_CURRENCY":"Yen"},
			{"COUNTRY":"Japan","COUNTRY_CODE":"JPN","CURRENCY_CODE":"JPY","NAME_OF_CURRENCY":"Yen"}
		]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"countries":[
		{"COUNTRY":"Kenya","COUNTRY_CODE":"KEN","CURRENCY_CODE":"KES","NAME_OF_CURRENCY":"Kenyan Shilling"}
	]}`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"KEN"}, c.Codes())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	c, err = LoadFile("")
	require.NoError(t, err)
	_, ok := c.Lookup("USA")
	assert.True(t, ok)
}
