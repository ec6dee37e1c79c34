package models

// Message is an immutable entry in the outgoing message log. The store only
// records messages the current user sends; inbound traffic is mocked by the
// client, so IsSentByMe is always true for stored messages.
type Message struct {
	ID              string `json:"id"`
	RecipientID     string `json:"recipientId"`
	RecipientName   string `json:"recipientName"`
	RecipientAvatar string `json:"recipientAvatar,omitempty"`
	Content         string `json:"content"`
	Timestamp       string `json:"timestamp"`
	IsRead          bool   `json:"isRead"`
	IsSentByMe      bool   `json:"isSentByMe"`
}

// Conversation is the cached per-recipient summary, upserted on every send.
type Conversation struct {
	ID              string `json:"id"`
	RecipientID     string `json:"recipientId"`
	RecipientName   string `json:"recipientName"`
	RecipientAvatar string `json:"recipientAvatar,omitempty"`
	LastMessage     string `json:"lastMessage"`
	LastMessageTime string `json:"lastMessageTime"`
	UnreadCount     int    `json:"unreadCount"`
}
