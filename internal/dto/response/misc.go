package response

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int    `json:"amount"`
}

type AvailabilityResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    int      `json:"bookedSlots"`
}

type AdminBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type AdminQuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}
