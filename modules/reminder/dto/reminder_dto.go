package dto

type SendRemindersRequest struct {
	// GuestIDs selects who to remind; empty means every guest whose
	// aggregate status is still pending.
	GuestIDs []string `json:"guest_ids"`
}

type SkippedGuest struct {
	GuestID string `json:"guest_id"`
	Reason  string `json:"reason"`
}

type SendRemindersResponse struct {
	Queued  int            `json:"queued"`
	Skipped []SkippedGuest `json:"skipped"`
}

type GuestLinksResponse struct {
	WhatsApp string `json:"whatsapp"`
	Mailto   string `json:"mailto"`
	RSVPLink string `json:"rsvp_link"`
}
