package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guestEntity "rsvp-manager/modules/guest/entity"
)

const linksBaseURL = "https://wedding.example.com/rsvp"

func linksGuest() *guestEntity.Guest {
	return &guestEntity.Guest{
		ID:            "abc12345",
		Name:          "Asha Patel",
		Phone:         "+91 12345-67890",
		Email:         "asha@example.com",
		InvitedEvents: guestEntity.EventList{"sangeet", "wedding"},
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink(linksGuest(), linksBaseURL)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/911234567890?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Asha Patel")
	assert.Contains(t, text, "sangeet, wedding")
	assert.Contains(t, text, linksBaseURL+"/abc12345")
}

func TestBuildWhatsAppLinkNoPhone(t *testing.T) {
	g := linksGuest()
	g.Phone = ""
	assert.Empty(t, BuildWhatsAppLink(g, linksBaseURL))
}

func TestBuildMailtoLink(t *testing.T) {
	link := BuildMailtoLink(linksGuest(), linksBaseURL)

	assert.True(t, strings.HasPrefix(link, "mailto:asha@example.com?"), link)
	// mailto bodies must not use '+' for spaces
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
}

func TestBuildMailtoLinkNoEmail(t *testing.T) {
	g := linksGuest()
	g.Email = ""
	assert.Empty(t, BuildMailtoLink(g, linksBaseURL))
}

func TestRSVPLinkTrimsTrailingSlash(t *testing.T) {
	g := linksGuest()
	assert.Equal(t, "https://wedding.example.com/rsvp/abc12345", RSVPLink(g, linksBaseURL+"/"))
	assert.Equal(t, "https://wedding.example.com/rsvp/abc12345", RSVPLink(g, linksBaseURL))
}
