package entities

import "time"

// NotificationTarget links a notification back to the request that caused it.

type NotificationTarget struct {
	Type RequestType `json:"type"`
	ID   string      `json:"id"`
}

// Notification is emitted after a request is created. Delivery and read-state
// tracking are the notification sink's responsibility; this service only
// writes and lists the records.

type Notification struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	CreatedAt time.Time          `json:"created_at"`
	Read      bool               `json:"read"`
	RelatedTo NotificationTarget `json:"related_to"`
}

// NotificationAudienceMaintenance addresses the chain-wide maintenance staff
// rather than a single account.
const NotificationAudienceMaintenance = "maintenance"
