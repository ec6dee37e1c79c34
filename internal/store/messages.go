package store

import (
	"github.com/google/uuid"

	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/storage"
)

// SendMessage appends an outgoing message and upserts the conversation
// summary for the recipient. A new conversation starts with zero unread;
// an existing one only has its last-message fields refreshed.
func (s *Store) SendMessage(recipientID, recipientName, recipientAvatar, content string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	msg := models.Message{
		ID:              uuid.NewString(),
		RecipientID:     recipientID,
		RecipientName:   recipientName,
		RecipientAvatar: recipientAvatar,
		Content:         content,
		Timestamp:       now,
		IsSentByMe:      true,
	}
	s.messages = append(s.messages, msg)
	s.persist(storage.KeyMessages, s.messages)

	updated := false
	for i := range s.conversations {
		if s.conversations[i].RecipientID == recipientID {
			s.conversations[i].LastMessage = content
			s.conversations[i].LastMessageTime = now
			updated = true
			break
		}
	}
	if !updated {
		s.conversations = append(s.conversations, models.Conversation{
			ID:              uuid.NewString(),
			RecipientID:     recipientID,
			RecipientName:   recipientName,
			RecipientAvatar: recipientAvatar,
			LastMessage:     content,
			LastMessageTime: now,
			UnreadCount:     0,
		})
	}
	s.persist(storage.KeyConversations, s.conversations)

	return msg
}

// Messages returns every stored message with the given recipient. Linear
// scan; message volume is demo scale.
func (s *Store) Messages(recipientID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Message
	for _, m := range s.messages {
		if m.RecipientID == recipientID {
			out = append(out, m)
		}
	}
	return out
}

// Conversations returns a copy of the conversation summaries.
func (s *Store) Conversations() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Conversation(nil), s.conversations...)
}

// DeleteConversation removes the summary and every message with the
// recipient. Irreversible.
func (s *Store) DeleteConversation(recipientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[:0]
	for _, m := range s.messages {
		if m.RecipientID != recipientID {
			msgs = append(msgs, m)
		}
	}
	s.messages = msgs
	s.persist(storage.KeyMessages, s.messages)

	convs := s.conversations[:0]
	for _, c := range s.conversations {
		if c.RecipientID != recipientID {
			convs = append(convs, c)
		}
	}
	s.conversations = convs
	s.persist(storage.KeyConversations, s.conversations)
}
