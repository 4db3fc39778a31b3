package model

// DashboardStats is computed from the user's appointments and payments
// at request time; nothing is cached or maintained incrementally.
type DashboardStats struct {
	UpcomingAppointments int     `json:"upcomingAppointments"`
	ActivePrescriptions  int     `json:"activePrescriptions"`
	TotalVisits          int     `json:"totalVisits"`
	PendingPayments      float64 `json:"pendingPayments"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
