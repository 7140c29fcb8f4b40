package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/CapsLuky/api.flow.core.user/internal/models"
)

var jsonNull = []byte("null")

// DecodeEvent parses a verified payload into the event envelope.
// Unknown top-level fields are tolerated; an envelope without data is
// rejected because every routed event type needs it.
func DecodeEvent(payload []byte) (*models.ClerkEvent, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	var event models.ClerkEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode event envelope: %w", err)
	}

	if len(event.Data) == 0 || bytes.Equal(event.Data, jsonNull) {
		return nil, ErrMissingData
	}

	return &event, nil
}

// DecodeUser parses the data subtree of a user.* event.
//
// The wire field "id" lands in ClerkID through its json tag; the Mongo
// "_id" stays zero and is assigned by the store on insert. A payload
// field literally named "clerk_id" is ignored: nothing maps it.
func DecodeUser(event *models.ClerkEvent) (*models.ClerkUser, error) {
	var user models.ClerkUser
	if err := json.Unmarshal(event.Data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}

	if user.ClerkID == "" {
		return nil, ErrMissingClerkID
	}

	return &user, nil
}

// DecodeDeletedUser parses the data subtree of a user.deleted event.
func DecodeDeletedUser(event *models.ClerkEvent) (*models.ClerkDeletedUser, error) {
	var deleted models.ClerkDeletedUser
	if err := json.Unmarshal(event.Data, &deleted); err != nil {
		return nil, fmt.Errorf("failed to decode deleted user data: %w", err)
	}

	if deleted.ID == "" {
		return nil, ErrMissingClerkID
	}

	return &deleted, nil
}
