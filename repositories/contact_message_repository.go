package repositories

import (
	"context"
	"fmt"

	"github.com/harishcmuthyala/app/database"
	"github.com/harishcmuthyala/app/models"
)

// ContactMessageRepository interface defines contact message persistence
type ContactMessageRepository interface {
	Insert(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context, limit int) ([]models.ContactMessage, error)
}

// contactMessageRepository implements ContactMessageRepository interface
type contactMessageRepository struct {
	coll database.Collection
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(coll database.Collection) ContactMessageRepository {
	return &contactMessageRepository{coll: coll}
}

// Insert stores a contact message
func (r *contactMessageRepository) Insert(ctx context.Context, msg *models.ContactMessage) error {
	return r.coll.InsertOne(ctx, contactMessageToDocument(msg))
}

// List retrieves up to limit contact messages, read or not
func (r *contactMessageRepository) List(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	docs, err := r.coll.Find(ctx, limit)
	if err != nil {
		return nil, err
	}

	messages := make([]models.ContactMessage, 0, len(docs))
	for _, doc := range docs {
		msg, err := contactMessageFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode contact message: %w", err)
		}
		messages = append(messages, *msg)
	}

	return messages, nil
}

func contactMessageToDocument(msg *models.ContactMessage) database.Document {
	return database.Document{
		"id":         msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"subject":    msg.Subject,
		"message":    msg.Message,
		"created_at": models.FormatTimestamp(msg.CreatedAt),
		"is_read":    msg.IsRead,
	}
}

func contactMessageFromDocument(doc database.Document) (*models.ContactMessage, error) {
	var (
		msg models.ContactMessage
		err error
	)

	if msg.ID, err = stringField(doc, "id"); err != nil {
		return nil, err
	}
	if msg.Name, err = stringField(doc, "name"); err != nil {
		return nil, err
	}
	if msg.Email, err = stringField(doc, "email"); err != nil {
		return nil, err
	}
	if msg.Subject, err = stringField(doc, "subject"); err != nil {
		return nil, err
	}
	if msg.Message, err = stringField(doc, "message"); err != nil {
		return nil, err
	}
	if msg.CreatedAt, err = timeField(doc, "created_at"); err != nil {
		return nil, err
	}
	if msg.IsRead, err = boolField(doc, "is_read", false); err != nil {
		return nil, err
	}

	return &msg, nil
}
