package synth

import (
	"fmt"
	"strconv"
	"strings"

	"shopnorm/internal/schema"
)

var addressTemplates = []string{
	"Jl. {} No. {}, RT {}/RW {}",
	"{} Street No. {}, Block {}",
	"Kompleks {} Blok {} No. {}",
	"{} Avenue, Apt {}",
	"Perumahan {} No. {}",
}

var streetNames = []string{
	"Merdeka", "Sudirman", "Gatot Subroto", "Ahmad Yani", "Diponegoro",
	"Imam Bonjol", "Kartini", "Veteran", "Pahlawan", "Mangga", "Melati",
	"Oak", "Pine", "Maple", "Cedar", "Willow",
}

const blockLetters = "ABCDEFGH"

// AddressBook owns the customer_address table while it is still growing.
// The address stage fills it for the sampled customers, then hands it to the
// shipping stage, which alone may extend it with lazily created defaults.
// A single monotonic counter allocates every address id, batch or default.
type AddressBook struct {
	rows            []schema.CustomerAddress
	firstByCustomer map[int]int
	nextID          int
}

func NewAddressBook() *AddressBook {
	return &AddressBook{
		firstByCustomer: make(map[int]int),
		nextID:          1,
	}
}

// Add appends an address for the customer and returns its id.
func (b *AddressBook) Add(customerID int, address string) int {
	id := b.nextID
	b.nextID++
	b.rows = append(b.rows, schema.CustomerAddress{
		CustomerAddressID: id,
		CustomerID:        customerID,
		Address:           address,
	})
	if _, ok := b.firstByCustomer[customerID]; !ok {
		b.firstByCustomer[customerID] = id
	}
	return id
}

// FirstAddressID returns the customer's earliest address id, if any.
func (b *AddressBook) FirstAddressID(customerID int) (int, bool) {
	id, ok := b.firstByCustomer[customerID]
	return id, ok
}

// EnsureDefault returns the customer's first address id, creating a default
// address row on first use. Subsequent calls for the same customer reuse it.
func (b *AddressBook) EnsureDefault(customerID int) int {
	if id, ok := b.firstByCustomer[customerID]; ok {
		return id
	}
	return b.Add(customerID, fmt.Sprintf("Default Address for Customer %d", customerID))
}

// Rows returns the table in insertion order.
func (b *AddressBook) Rows() []schema.CustomerAddress {
	return b.rows
}

// CustomersWithAddress reports how many customers currently have at least
// one address.
func (b *AddressBook) CustomersWithAddress() int {
	return len(b.firstByCustomer)
}

// SynthesizeAddresses samples customers at the configured fraction and gives
// each sampled customer one or two fabricated postal addresses.
func SynthesizeAddresses(r *Rand, customerIDs []int, fraction float64) *AddressBook {
	book := NewAddressBook()
	for _, custID := range r.Sample(customerIDs, fraction) {
		n := r.IntBetween(1, 2)
		for i := 0; i < n; i++ {
			book.Add(custID, randomAddress(r))
		}
	}
	return book
}

func randomAddress(r *Rand) string {
	tmpl := addressTemplates[r.IntBetween(0, len(addressTemplates)-1)]
	street := streetNames[r.IntBetween(0, len(streetNames)-1)]

	switch strings.Count(tmpl, "{}") {
	case 4:
		return fillTemplate(tmpl, street,
			strconv.Itoa(r.IntBetween(1, 200)),
			strconv.Itoa(r.IntBetween(1, 20)),
			strconv.Itoa(r.IntBetween(1, 10)))
	case 3:
		block := string(blockLetters[r.IntBetween(0, len(blockLetters)-1)])
		return fillTemplate(tmpl, street, block, strconv.Itoa(r.IntBetween(1, 50)))
	case 2:
		return fillTemplate(tmpl, street, strconv.Itoa(r.IntBetween(1, 500)))
	case 1:
		return fillTemplate(tmpl, street)
	default:
		return tmpl
	}
}

func fillTemplate(tmpl string, parts ...string) string {
	out := tmpl
	for _, p := range parts {
		out = strings.Replace(out, "{}", p, 1)
	}
	return out
}
