package dataapi

// Trade is a raw trade record from the Data API whale feed.
type Trade struct {
	ProxyWallet     string  `json:"proxyWallet"`
	Name            string  `json:"name"`
	Pseudonym       string  `json:"pseudonym"`
	Bio             string  `json:"bio"`
	ProfileImage    string  `json:"profileImage"`
	Side            string  `json:"side"` // BUY, SELL
	Size            float64 `json:"size"`
	Price           float64 `json:"price"`
	TotalValue      float64 `json:"totalValue"` // size * price; computed when absent
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	EventSlug       string  `json:"eventSlug"`
	Icon            string  `json:"icon"`
	Outcome         string  `json:"outcome"`
	OutcomeIndex    int     `json:"outcomeIndex"`
	TransactionHash string  `json:"transactionHash"`
	Timestamp       int64   `json:"timestamp"` // Unix seconds
	Asset           string  `json:"asset"`
	ConditionID     string  `json:"conditionId"`
}

// TradeParams holds query parameters for the trades endpoint.
type TradeParams struct {
	Limit        int
	Offset       int
	FilterType   string  // CASH
	FilterAmount float64 // USD floor
	EventID      string  // Event slug scoping the feed to one market
	Side         string  // BUY, SELL
}
