package mongodb

import (
	"context"
	"time"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/errors"
	"bizdir/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// messageRepository implements repository.MessageRepository over the
// 'sent_messages' collection.
type messageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &messageRepository{coll: db.Collection(model.CollectionSentMessages)}
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.SentMessage) error {
	now := time.Now()
	messageM := &model.SentMessageModel{
		Subject:       message.Subject,
		Body:          message.Body,
		Attachments:   message.Attachments,
		ToAddress:     message.Recipient.Address,
		BroadcastType: message.Recipient.BusinessType,
		SentBy:        message.SentBy,
		CreatedAt:     now,
	}

	result, err := repo.coll.InsertOne(ctx, messageM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to persist sent message")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		message.ID = oid.Hex()
	}
	message.CreatedAt = now

	return nil
}

func (repo *messageRepository) List(ctx context.Context) ([]*entity.SentMessage, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sent messages")
	}
	defer cursor.Close(ctx)

	var models []model.SentMessageModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode sent messages")
	}

	messages := make([]*entity.SentMessage, 0, len(models))
	for i := range models {
		messageM := &models[i]
		messages = append(messages, &entity.SentMessage{
			ID:          messageM.ID.Hex(),
			Subject:     messageM.Subject,
			Body:        messageM.Body,
			Attachments: messageM.Attachments,
			Recipient: entity.Recipient{
				Address:      messageM.ToAddress,
				BusinessType: messageM.BroadcastType,
			},
			SentBy:    messageM.SentBy,
			CreatedAt: messageM.CreatedAt,
		})
	}

	return messages, nil
}
