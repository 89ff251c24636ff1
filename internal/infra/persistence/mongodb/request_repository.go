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

// requestRepository implements repository.RequestRepository over the
// 'requests' and 'request_history' collections.
type requestRepository struct {
	requests *mongo.Collection
	history  *mongo.Collection
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *mongo.Database) repository.RequestRepository {
	return &requestRepository{
		requests: db.Collection(model.CollectionRequests),
		history:  db.Collection(model.CollectionRequestHistory),
	}
}

func (repo *requestRepository) FindByID(ctx context.Context, id string) (*entity.EditRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrRequestNotFound
	}

	var requestM model.RequestModel
	if err := repo.requests.FindOne(ctx, bson.M{"_id": oid}).Decode(&requestM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find edit request")
	}

	return toRequestDomain(&requestM), nil
}

func (repo *requestRepository) List(ctx context.Context, status entity.RequestStatus) ([]*entity.EditRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	cursor, err := repo.requests.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list edit requests")
	}
	defer cursor.Close(ctx)

	var models []model.RequestModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode edit requests")
	}

	requests := make([]*entity.EditRequest, 0, len(models))
	for i := range models {
		requests = append(requests, toRequestDomain(&models[i]))
	}

	return requests, nil
}

func (repo *requestRepository) Create(ctx context.Context, request *entity.EditRequest) error {
	businessOID, err := primitive.ObjectIDFromHex(request.BusinessID)
	if err != nil {
		return domainerrors.ErrInvalidID.WrapMessage("business id is not a valid object id")
	}

	now := time.Now()
	requestM := &model.RequestModel{
		BusinessID:   businessOID,
		BusinessName: request.BusinessName,
		OwnerSubject: request.OwnerSubject,
		Changes:      request.Changes,
		Status:       string(entity.RequestPending),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := repo.requests.InsertOne(ctx, requestM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create edit request")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		request.ID = oid.Hex()
	}
	request.Status = entity.RequestPending
	request.CreatedAt = now
	request.UpdatedAt = now

	return nil
}

// UpdateStatus writes the terminal status. No guard on the prior status;
// repeating a terminal write leaves the document unchanged in effect.
func (repo *requestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrRequestNotFound
	}

	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now()}}

	result, err := repo.requests.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update request status")
	}
	if result.MatchedCount == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

func (repo *requestRepository) AppendHistory(ctx context.Context, record *entity.RequestRecord) error {
	requestOID, err := primitive.ObjectIDFromHex(record.RequestID)
	if err != nil {
		return domainerrors.ErrInvalidID.WrapMessage("request id is not a valid object id")
	}
	businessOID, _ := primitive.ObjectIDFromHex(record.BusinessID)

	recordM := &model.RequestHistoryModel{
		RequestID:    requestOID,
		BusinessID:   businessOID,
		BusinessName: record.BusinessName,
		Changes:      record.Changes,
		Status:       string(record.Status),
		ResolvedBy:   record.ResolvedBy,
		Date:         record.Date,
	}

	result, err := repo.history.InsertOne(ctx, recordM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append request history")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid.Hex()
	}

	return nil
}

func (repo *requestRepository) ListHistory(ctx context.Context) ([]*entity.RequestRecord, error) {
	cursor, err := repo.history.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list request history")
	}
	defer cursor.Close(ctx)

	var models []model.RequestHistoryModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode request history")
	}

	records := make([]*entity.RequestRecord, 0, len(models))
	for i := range models {
		recordM := &models[i]
		records = append(records, &entity.RequestRecord{
			ID:           recordM.ID.Hex(),
			RequestID:    recordM.RequestID.Hex(),
			BusinessID:   recordM.BusinessID.Hex(),
			BusinessName: recordM.BusinessName,
			Changes:      recordM.Changes,
			Status:       entity.RequestStatus(recordM.Status),
			ResolvedBy:   recordM.ResolvedBy,
			Date:         recordM.Date,
		})
	}

	return records, nil
}

func toRequestDomain(requestM *model.RequestModel) *entity.EditRequest {
	return &entity.EditRequest{
		ID:           requestM.ID.Hex(),
		BusinessID:   requestM.BusinessID.Hex(),
		BusinessName: requestM.BusinessName,
		OwnerSubject: requestM.OwnerSubject,
		Changes:      requestM.Changes,
		Status:       entity.RequestStatus(requestM.Status),
		CreatedAt:    requestM.CreatedAt,
		UpdatedAt:    requestM.UpdatedAt,
	}
}
