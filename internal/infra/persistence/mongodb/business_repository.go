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

// businessRepository implements repository.BusinessRepository over the
// 'businesses' collection.
type businessRepository struct {
	coll *mongo.Collection
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *mongo.Database) repository.BusinessRepository {
	return &businessRepository{coll: db.Collection(model.CollectionBusinesses)}
}

func (repo *businessRepository) FindByID(ctx context.Context, id string) (*entity.Business, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrBusinessNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

func (repo *businessRepository) FindByOwner(ctx context.Context, ownerSubject string) (*entity.Business, error) {
	return repo.findOne(ctx, bson.M{"ownerSubject": ownerSubject})
}

func (repo *businessRepository) findOne(ctx context.Context, filter bson.M) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&businessM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

func (repo *businessRepository) List(ctx context.Context) ([]*entity.Business, error) {
	return repo.list(ctx, bson.M{})
}

func (repo *businessRepository) ListByType(ctx context.Context, businessType string) ([]*entity.Business, error) {
	return repo.list(ctx, bson.M{"businessType": businessType})
}

func (repo *businessRepository) list(ctx context.Context, filter bson.M) ([]*entity.Business, error) {
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "businessName", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}
	defer cursor.Close(ctx)

	var models []model.BusinessModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode businesses")
	}

	businesses := make([]*entity.Business, 0, len(models))
	for i := range models {
		businesses = append(businesses, toBusinessDomain(&models[i]))
	}

	return businesses, nil
}

// Create inserts the business; the unique index on businessName is the only
// duplicate-name check.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	now := time.Now()
	businessM := fromBusinessDomain(business)
	businessM.CreatedAt = now
	businessM.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, businessM)
	if err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrBusinessNameTaken.WrapMessage("business name or owner already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		business.ID = oid.Hex()
	}
	business.CreatedAt = now
	business.UpdatedAt = now

	return nil
}

// RenewMembership upserts the owner's business with the new expiry. "Renew
// from now" semantics: a prior expiry is overwritten, never extended.
func (repo *businessRepository) RenewMembership(ctx context.Context, ownerSubject string, expiry, paidAt time.Time) (*entity.Business, error) {
	filter := bson.M{"ownerSubject": ownerSubject}
	update := bson.M{
		"$set": bson.M{
			"membershipExpiryDate": expiry,
			"lastPayDate":          paidAt,
			"updatedAt":            paidAt,
		},
		"$setOnInsert": bson.M{
			"ownerSubject": ownerSubject,
			"createdAt":    paidAt,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var businessM model.BusinessModel
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&businessM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to renew membership")
	}

	return toBusinessDomain(&businessM), nil
}

// MembershipStats aggregates membership counts for the analytics view.
func (repo *businessRepository) MembershipStats(ctx context.Context, at time.Time) (*repository.MembershipStats, error) {
	total, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count businesses")
	}

	active, err := repo.coll.CountDocuments(ctx, bson.M{"membershipExpiryDate": bson.M{"$gt": at}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active memberships")
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$businessType", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate businesses by type")
	}
	defer cursor.Close(ctx)

	var grouped []struct {
		Type  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &grouped); err != nil {
		return nil, errors.Wrap(err, "failed to decode aggregation result")
	}

	byType := make(map[string]int64, len(grouped))
	for _, group := range grouped {
		byType[group.Type] = group.Count
	}

	return &repository.MembershipStats{
		Total:   total,
		Active:  active,
		Expired: total - active,
		ByType:  byType,
	}, nil
}

func toBusinessDomain(businessM *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:           businessM.ID.Hex(),
		OwnerSubject: businessM.OwnerSubject,
		BusinessName: businessM.BusinessName,
		BusinessType: businessM.BusinessType,
		OwnerName:    businessM.OwnerName,
		Website:      businessM.Website,
		Address:      businessM.Address,
		Contact:      businessM.Contact,
		Social: entity.SocialHandles{
			Facebook:  businessM.Social.Facebook,
			Instagram: businessM.Social.Instagram,
			Twitter:   businessM.Social.Twitter,
		},
		Description:          businessM.Description,
		MembershipExpiryDate: businessM.MembershipExpiryDate,
		LastPayDate:          businessM.LastPayDate,
		CreatedAt:            businessM.CreatedAt,
		UpdatedAt:            businessM.UpdatedAt,
	}
}

func fromBusinessDomain(business *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		OwnerSubject: business.OwnerSubject,
		BusinessName: business.BusinessName,
		BusinessType: business.BusinessType,
		OwnerName:    business.OwnerName,
		Website:      business.Website,
		Address:      business.Address,
		Contact:      business.Contact,
		Social: model.SocialModel{
			Facebook:  business.Social.Facebook,
			Instagram: business.Social.Instagram,
			Twitter:   business.Social.Twitter,
		},
		Description:          business.Description,
		MembershipExpiryDate: business.MembershipExpiryDate,
		LastPayDate:          business.LastPayDate,
	}
}
