package amqp

import (
	"encoding/json"
	"time"
)

// ReminderMessage is the wire format for a due payment reminder. The
// consumer (push gateway) delivers Body as-is; the ids let it
// deduplicate and deep-link back into the app.
type ReminderMessage struct {
	SubscriptionID string    `json:"subscription_id"`
	Body           string    `json:"body"`
	FireAt         time.Time `json:"fire_at"`
	Timestamp      time.Time `json:"timestamp"`
}

func NewReminderMessage(subscriptionID, body string, fireAt time.Time) *ReminderMessage {
	return &ReminderMessage{
		SubscriptionID: subscriptionID,
		Body:           body,
		FireAt:         fireAt,
		Timestamp:      time.Now(),
	}
}

func (m *ReminderMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReminderMessageFromJSON(data []byte) (*ReminderMessage, error) {
	var msg ReminderMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
