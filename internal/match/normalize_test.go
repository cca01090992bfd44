package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"OrderID":      "orderid",
		"order_id":     "orderid",
		"XMLParser":    "xmlparser",
		"big-int":      "bigint",
		"time.Time":    "time.time",
		"":             "",
		"already_flat": "alreadyflat",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, NormalizeIdent(input), input)
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"order", "id"}, TokenizeIdent("OrderID"))
	assert.Equal(t, []string{"get", "http", "response"}, TokenizeIdent("getHTTPResponse"))
	assert.Equal(t, []string{"decimal.null", "decimal"}, TokenizeIdent("decimal.NullDecimal"))
	assert.Nil(t, TokenizeIdent(""))
}
