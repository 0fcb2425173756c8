package dto

// StatsResponse is the aggregate snapshot backing the dashboard landing
// page. Rates and sums are computed on read, never stored.
type StatsResponse struct {
	TotalProperties int     `json:"total_properties"`
	OccupancyRate   float64 `json:"occupancy_rate"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	ActiveBookings  int     `json:"active_bookings"`
}
