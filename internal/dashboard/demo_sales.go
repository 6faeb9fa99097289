package dashboard

import (
	"context"

	"github.com/onabhani/SimpleDashboard/pkg/model"
)

// Sales figures do not vary with the requested range yet.

func (d *Demo) Stats(ctx context.Context, rng model.Range) (model.SalesStats, error) {
	return model.SalesStats{
		Revenue:    model.Metric{Value: 125000, Change: 12.5, Trend: "up"},
		Orders:     model.Metric{Value: 1248, Change: 8.2, Trend: "up"},
		AvgOrder:   model.Metric{Value: 485, Change: -2.1, Trend: "down"},
		Conversion: model.Metric{Value: 3.2, Change: 0.5, Trend: "up"},
	}, nil
}

func (d *Demo) RecentOrders(ctx context.Context, rng model.Range) ([]model.Order, error) {
	return []model.Order{
		{ID: "10234", Customer: "Ahmed Al-Rashid", Items: 3, Amount: 1250, Status: "delivered"},
		{ID: "10233", Customer: "Sara Mohammed", Items: 1, Amount: 450, Status: "shipped"},
		{ID: "10232", Customer: "Khalid Ibrahim", Items: 5, Amount: 2100, Status: "processing"},
		{ID: "10231", Customer: "Fatima Hassan", Items: 2, Amount: 890, Status: "pending"},
		{ID: "10230", Customer: "Omar Nasser", Items: 4, Amount: 1680, Status: "delivered"},
	}, nil
}

func (d *Demo) OrderStatus(ctx context.Context, rng model.Range) (model.OrderStatusSummary, error) {
	return model.OrderStatusSummary{
		Pending:    24,
		Processing: 35,
		Shipped:    28,
		Delivered:  85,
		Cancelled:  8,
		Total:      180,
	}, nil
}

func (d *Demo) RevenueTrend(ctx context.Context) (model.Series, error) {
	return model.Series{
		Data:   []float64{85000, 92000, 78000, 105000, 115000, 98000, 125000},
		Labels: []string{"Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan"},
	}, nil
}

func (d *Demo) SalesByCategory(ctx context.Context) (model.Series, error) {
	return model.Series{
		Data:   []float64{35, 25, 20, 12, 8},
		Labels: []string{"Electronics", "Fashion", "Home", "Sports", "Other"},
	}, nil
}

func (d *Demo) TopProducts(ctx context.Context) ([]model.TopProduct, error) {
	return []model.TopProduct{
		{Name: "iPhone 15 Pro Max", Sales: 245, Revenue: 489500, Trend: "up"},
		{Name: "Samsung Galaxy S24", Sales: 189, Revenue: 283500, Trend: "up"},
		{Name: `MacBook Pro 14"`, Sales: 92, Revenue: 276000, Trend: "down"},
		{Name: `iPad Pro 12.9"`, Sales: 156, Revenue: 187200, Trend: "up"},
		{Name: "AirPods Pro 2", Sales: 312, Revenue: 93600, Trend: "up"},
	}, nil
}

// RecentReports dates the generated reports relative to today.
func (d *Demo) RecentReports(ctx context.Context) ([]model.Report, error) {
	today := d.now()
	day := func(offset int) string {
		return today.AddDate(0, 0, -offset).Format("2006-01-02")
	}
	return []model.Report{
		{ID: 1, Name: "Monthly Sales Report", Type: "Sales", Date: day(0), Status: "ready"},
		{ID: 2, Name: "Q4 Performance Analysis", Type: "Analytics", Date: day(2), Status: "ready"},
		{ID: 3, Name: "Inventory Turnover Report", Type: "Inventory", Date: day(4), Status: "ready"},
		{ID: 4, Name: "Customer Acquisition Report", Type: "Marketing", Date: day(6), Status: "processing"},
	}, nil
}

func (d *Demo) QuickStats(ctx context.Context) (model.QuickStats, error) {
	return model.QuickStats{
		TotalCustomers:   model.QuickStat{Value: 5248, Change: "+12%", Trend: "up"},
		ActiveProducts:   model.QuickStat{Value: 1234, Change: "+5%", Trend: "up"},
		PendingShipments: model.QuickStat{Value: 89, Change: "-8%", Trend: "down"},
		ReturnsRate:      model.QuickStat{Value: 2.4, Change: "-0.3%", Trend: "down"},
	}, nil
}
