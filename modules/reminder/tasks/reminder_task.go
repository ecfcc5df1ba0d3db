package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"

	"rsvp-manager/core/constants"
	"rsvp-manager/core/logger"
	"rsvp-manager/core/utils"
)

// ReminderEmailPayload carries everything the worker needs so the handler
// does not have to reload the guest record.
type ReminderEmailPayload struct {
	GuestID  string   `json:"guest_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Events   []string `json:"events"`
	RSVPLink string   `json:"rsvp_link"`
}

func NewReminderEmailTask(payload ReminderEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	return asynq.NewTask(constants.TaskTypeReminderEmail, data, asynq.Queue(constants.QueueDefault)), nil
}

func HandleReminderEmailTask(ctx context.Context, t *asynq.Task) error {
	var payload ReminderEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("Reminder:UnmarshalPayload:Error:", err)
		return fmt.Errorf("failed to unmarshal reminder payload: %w", err)
	}

	data := utils.TemplateData{
		Name:     payload.Name,
		RSVPLink: payload.RSVPLink,
		Events:   strings.Join(payload.Events, ", "),
	}
	if err := utils.SendTemplateEmailFromTemplatesDir(
		[]string{payload.Email},
		"Wedding Invitation - RSVP Requested",
		"reminder_email.html",
		data,
	); err != nil {
		return err
	}

	logger.Info("reminder email sent", "guest_id", payload.GuestID, "email", payload.Email)
	return nil
}
