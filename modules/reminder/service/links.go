package service

import (
	"fmt"
	"net/url"
	"strings"

	guestEntity "rsvp-manager/modules/guest/entity"
)

// BuildWhatsAppLink returns a wa.me deep link that opens a chat with the
// guest's phone number and a prefilled invitation message.
func BuildWhatsAppLink(guest *guestEntity.Guest, baseURL string) string {
	phone := sanitizePhone(guest.Phone)
	if phone == "" {
		return ""
	}
	message := reminderMessage(guest, baseURL)
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// BuildMailtoLink returns a mailto link with a prefilled subject and body,
// or empty when the guest has no email on record.
func BuildMailtoLink(guest *guestEntity.Guest, baseURL string) string {
	if guest.Email == "" {
		return ""
	}
	query := url.Values{}
	query.Set("subject", "Wedding Invitation - RSVP Requested")
	query.Set("body", reminderMessage(guest, baseURL))
	// mailto uses %20 for spaces, not '+'.
	return fmt.Sprintf("mailto:%s?%s", guest.Email, strings.ReplaceAll(query.Encode(), "+", "%20"))
}

// RSVPLink returns the guest's unique response page URL.
func RSVPLink(guest *guestEntity.Guest, baseURL string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), guest.ID)
}

func reminderMessage(guest *guestEntity.Guest, baseURL string) string {
	var b strings.Builder
	b.WriteString("Hi " + guest.Name + "! ")
	if len(guest.InvitedEvents) > 0 {
		b.WriteString("You are invited to: " + strings.Join(guest.InvitedEvents, ", ") + ". ")
	}
	b.WriteString("Please let us know if you can make it: " + RSVPLink(guest, baseURL))
	return b.String()
}

// sanitizePhone keeps digits only so the number fits the wa.me format.
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
