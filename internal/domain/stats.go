package domain

// Stats is the aggregate dashboard payload served by the backend admin API.
type Stats struct {
	TotalProducts int64         `json:"totalProducts"`
	TotalOrders   int64         `json:"totalOrders"`
	SalesToday    int64         `json:"salesToday"`
	SalesMonth    int64         `json:"salesMonth"`
	TopProducts   []ProductRank `json:"topProducts"`
}

type ProductRank struct {
	Product Product `json:"product"`
	Sales   int64   `json:"sales"`
}
