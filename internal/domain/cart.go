package domain

// CartLine is one entry of the client-local cart. Name, price and image are
// snapshots taken when the product was added and are not re-synced with the
// catalog afterwards.
type CartLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Quantity  int    `json:"quantity"`
}
