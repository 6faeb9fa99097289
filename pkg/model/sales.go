package model

type Metric struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

type SalesStats struct {
	Revenue    Metric `json:"revenue"`
	Orders     Metric `json:"orders"`
	AvgOrder   Metric `json:"avgOrder"`
	Conversion Metric `json:"conversion"`
}

type Order struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Items    int     `json:"items"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

type OrderStatusSummary struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
	Total      int `json:"total"`
}

type SalesOverview struct {
	Range        Range              `json:"range"`
	Stats        SalesStats         `json:"stats"`
	RecentOrders []Order            `json:"recentOrders"`
	OrderStatus  OrderStatusSummary `json:"orderStatus"`
}

type Series struct {
	Data   []float64 `json:"data"`
	Labels []string  `json:"labels"`
}

type TopProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Trend   string  `json:"trend"`
}

type Report struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type QuickStat struct {
	Value  float64 `json:"value"`
	Change string  `json:"change"`
	Trend  string  `json:"trend"`
}

type QuickStats struct {
	TotalCustomers   QuickStat `json:"totalCustomers"`
	ActiveProducts   QuickStat `json:"activeProducts"`
	PendingShipments QuickStat `json:"pendingShipments"`
	ReturnsRate      QuickStat `json:"returnsRate"`
}

type ReportsOverview struct {
	RevenueTrend    Series       `json:"revenueTrend"`
	SalesByCategory Series       `json:"salesByCategory"`
	TopProducts     []TopProduct `json:"topProducts"`
	RecentReports   []Report     `json:"recentReports"`
	QuickStats      QuickStats   `json:"quickStats"`
}
