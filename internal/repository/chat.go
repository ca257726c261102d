package repository

import (
	"context"

	"github.com/lifementor/backend/internal/models"
)

// chatRepository implements ChatRepository over the embedded store
type chatRepository struct {
	store *Store
}

// NewChatRepository creates a new chat history repository
func NewChatRepository(store *Store) ChatRepository {
	return &chatRepository{store: store}
}

func (r *chatRepository) Append(ctx context.Context, message *models.ChatMessage) error {
	return r.store.put(prefixChat, message.ID, message.CreatedAt, message)
}

func (r *chatRepository) GetRecent(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	err := scan(r.store, prefixChat, func(m models.ChatMessage) {
		messages = append(messages, m)
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}
