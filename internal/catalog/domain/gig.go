package domain

import "time"

// Gig a published service listing
type Gig struct {
	ID          string  `json:"id"`
	SellerID    string  `json:"seller_id"`
	SellerName  string  `json:"seller_name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	ImageURL    string  `json:"image_url,omitempty"`
	Status      string  `json:"status"`
}

// GigQuery list filters; zero values mean unfiltered
type GigQuery struct {
	Search   string
	Category string
	Page     int
	PerPage  int
}

// GigPage one page of listings
type GigPage struct {
	Gigs    []Gig `json:"gigs"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// Booking a buyer's order against a gig
type Booking struct {
	ID          string    `json:"id"`
	GigID       string    `json:"gig_id"`
	GigTitle    string    `json:"gig_title"`
	BuyerID     string    `json:"buyer_id"`
	SellerID    string    `json:"seller_id"`
	Status      string    `json:"status"`
	Requirement string    `json:"requirement,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingReview price breakdown shown before confirming
type BookingReview struct {
	GigID      string  `json:"gig_id"`
	Price      float64 `json:"price"`
	ServiceFee float64 `json:"service_fee"`
	Taxes      float64 `json:"taxes"`
	Total      float64 `json:"total"`
}

// ConversationSummary one entry in the buyer's conversations screen
type ConversationSummary struct {
	CounterpartID   string    `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name"`
	BookingID       string    `json:"booking_id,omitempty"`
	LastMessage     string    `json:"last_message"`
	LastMessageAt   time.Time `json:"last_message_at"`
	UnreadCount     int       `json:"unread_count"`
}
