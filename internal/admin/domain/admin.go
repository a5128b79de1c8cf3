package domain

import "time"

// AdminUser one row of the user management screen
type AdminUser struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsBanned   bool      `json:"is_banned"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminGig gig management row
type AdminGig struct {
	ID         string  `json:"id"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
}

// AdminBooking booking management row
type AdminBooking struct {
	ID        string    `json:"id"`
	GigTitle  string    `json:"gig_title"`
	BuyerID   string    `json:"buyer_id"`
	SellerID  string    `json:"seller_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminPayment payment management row
type AdminPayment struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Verification a seller verification request
type Verification struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DocumentURL string    `json:"document_url"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminTicket support ticket as seen by the admin screen
type AdminTicket struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings platform settings
type Settings struct {
	ServiceFeePercent float64 `json:"service_fee_percent"`
}

// DashboardStats headline numbers of the admin dashboard
type DashboardStats struct {
	TotalUsers           int     `json:"total_users"`
	TotalGigs            int     `json:"total_gigs"`
	TotalBookings        int     `json:"total_bookings"`
	TotalRevenue         float64 `json:"total_revenue"`
	OpenTickets          int     `json:"open_tickets"`
	PendingVerifications int     `json:"pending_verifications"`
}
