package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rsvp-manager/modules/guest/entity"
)

func TestNormalizeEventKeys(t *testing.T) {
	out := NormalizeEventKeys([]string{" Sangeet ", "Mehndi Night", "sangeet", "", "Wedding"})
	assert.Equal(t, entity.EventList{"sangeet", "mehndi-night", "wedding"}, out)
}

func TestNormalizeEventKeysEmptyInput(t *testing.T) {
	assert.Equal(t, entity.EventList{}, NormalizeEventKeys(nil))
}

func TestHeadcountsForInviteSlugsDisplayNameKeys(t *testing.T) {
	invited := NormalizeEventKeys([]string{"Mehndi Night", "Wedding"})
	out := headcountsForInvite(invited, map[string]int{
		"Mehndi Night": 4,
		"wedding":      2,
	})

	assert.Equal(t, entity.CountMap{"mehndi-night": 4, "wedding": 2}, out)
}

func TestHeadcountsForInviteDefaultsToOne(t *testing.T) {
	out := headcountsForInvite(entity.EventList{"sangeet", "wedding"}, map[string]int{
		"sangeet": 0,
		"haldi":   5, // not invited; dropped
	})

	assert.Equal(t, entity.CountMap{"sangeet": 1, "wedding": 1}, out)
}
