package faq

// Categories are the selector options in display order
var Categories = []string{AllCategories, "Booking", "Payments", "Account"}

// Records returns a fresh copy of the static help-center entries
func Records() []Record {
	return []Record{
		{
			Question: "How do I book an event?",
			Answer:   "Go to the 'Events' section, pick your event type, and follow the instructions.",
			Category: "Booking",
		},
		{
			Question: "Can I cancel or reschedule?",
			Answer:   "Yes, go to 'My Bookings' in your account to cancel or reschedule.",
			Category: "Booking",
		},
		{
			Question: "What payment methods are supported?",
			Answer:   "We accept UPI, cards, and net banking.",
			Category: "Payments",
		},
		{
			Question: "How do I change my password?",
			Answer:   "Click 'Forgot Password' on the login page to reset it.",
			Category: "Account",
		},
		{
			Question: "How can I contact support?",
			Answer:   "Visit the Contact Us page or email support@yaadgarpal.com.",
			Category: "Account",
		},
	}
}
