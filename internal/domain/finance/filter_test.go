package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type saleRow struct {
	InvoiceNo    string
	CustomerName string
}

func searchFields(s saleRow) []string {
	return []string{s.InvoiceNo, s.CustomerName}
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("", "anything"))
	assert.True(t, MatchesSearch("inv-1", "INV-1234", "Ali Traders"))
	assert.True(t, MatchesSearch("ali", "INV-1234", "Ali Traders"))
	assert.False(t, MatchesSearch("karachi", "INV-1234", "Ali Traders"))
	// Surrounding whitespace in the term is ignored.
	assert.True(t, MatchesSearch("  ali  ", "INV-1234", "Ali Traders"))
}

func TestFilter(t *testing.T) {
	sales := []saleRow{
		{"INV-0001", "Ali Traders"},
		{"INV-0002", "Bismillah Store"},
		{"INV-0003", "Alif Enterprises"},
	}

	got := Filter(sales, "ali", searchFields)
	assert.Len(t, got, 2)

	got = Filter(sales, "INV-0002", searchFields)
	assert.Len(t, got, 1)
	assert.Equal(t, "Bismillah Store", got[0].CustomerName)
}

func TestFilterIdempotent(t *testing.T) {
	sales := []saleRow{
		{"INV-0001", "Ali Traders"},
		{"INV-0002", "Bismillah Store"},
		{"INV-0003", "Alif Enterprises"},
	}

	once := Filter(sales, "ali", searchFields)
	twice := Filter(once, "ali", searchFields)
	assert.Equal(t, once, twice)
}

func TestFilterEmptyTermReturnsInput(t *testing.T) {
	sales := []saleRow{{"INV-0001", "Ali Traders"}}
	assert.Equal(t, sales, Filter(sales, "", searchFields))
}
