package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBookMonotonicIDs(t *testing.T) {
	book := NewAddressBook()

	assert.Equal(t, 1, book.Add(10, "first"))
	assert.Equal(t, 2, book.Add(10, "second"))
	assert.Equal(t, 3, book.Add(20, "third"))
	assert.Equal(t, 4, book.EnsureDefault(30))

	rows := book.Rows()
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, i+1, row.CustomerAddressID)
	}
}

func TestAddressBookFirstAddressWins(t *testing.T) {
	book := NewAddressBook()
	book.Add(10, "first")
	book.Add(10, "second")

	id, ok := book.FirstAddressID(10)
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = book.FirstAddressID(99)
	assert.False(t, ok)
}

func TestEnsureDefaultCreatesOnce(t *testing.T) {
	book := NewAddressBook()

	first := book.EnsureDefault(7)
	second := book.EnsureDefault(7)

	assert.Equal(t, first, second)
	rows := book.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].CustomerID)
	assert.Equal(t, "Default Address for Customer 7", rows[0].Address)
}

func TestEnsureDefaultReusesBatchAddress(t *testing.T) {
	book := NewAddressBook()
	book.Add(7, "Jl. Merdeka No. 1, RT 2/RW 3")

	assert.Equal(t, 1, book.EnsureDefault(7))
	assert.Len(t, book.Rows(), 1)
}

func TestSynthesizeAddressesSamplesFraction(t *testing.T) {
	ids := make([]int, 100)
	for i := range ids {
		ids[i] = i + 1
	}

	book := SynthesizeAddresses(NewRand(42), ids, 0.7)

	assert.Equal(t, 70, book.CustomersWithAddress())
	for _, row := range book.Rows() {
		assert.NotContains(t, row.Address, "{}", "unfilled template placeholder")
	}

	perCustomer := make(map[int]int)
	for _, row := range book.Rows() {
		perCustomer[row.CustomerID]++
	}
	for custID, n := range perCustomer {
		assert.True(t, n >= 1 && n <= 2, "customer %d has %d addresses", custID, n)
	}
}

func TestRandomAddressMatchesAKnownTemplate(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 200; i++ {
		addr := randomAddress(r)
		require.NotEmpty(t, addr)
		assert.NotContains(t, addr, "{}")

		known := false
		for _, prefix := range []string{"Jl. ", "Kompleks ", "Perumahan "} {
			if strings.HasPrefix(addr, prefix) {
				known = true
			}
		}
		if !known {
			known = strings.Contains(addr, " Street No. ") || strings.Contains(addr, " Avenue, Apt ")
		}
		assert.True(t, known, "address %q matches no template", addr)
	}
}

func TestFillTemplateSequential(t *testing.T) {
	assert.Equal(t, "a-b-c", fillTemplate("{}-{}-{}", "a", "b", "c"))
	assert.Equal(t, "a-{}", fillTemplate("{}-{}", "a"))
}
