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
)

// signupRepository implements repository.SignupRepository over the
// 'signup_requests' collection.
type signupRepository struct {
	coll *mongo.Collection
}

// NewSignupRepository is the constructor for signupRepository.
func NewSignupRepository(db *mongo.Database) repository.SignupRepository {
	return &signupRepository{coll: db.Collection(model.CollectionSignupRequests)}
}

func (repo *signupRepository) FindByID(ctx context.Context, id string) (*entity.SignupRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrSignupNotFound
	}

	var signupM model.SignupRequestModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&signupM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSignupNotFound
		}

		return nil, errors.Wrap(err, "failed to find signup request")
	}

	return &entity.SignupRequest{
		ID:           signupM.ID.Hex(),
		BusinessName: signupM.BusinessName,
		BusinessType: signupM.BusinessType,
		OwnerName:    signupM.OwnerName,
		Email:        signupM.Email,
		Phone:        signupM.Phone,
		Status:       entity.RequestStatus(signupM.Status),
		CreatedAt:    signupM.CreatedAt,
	}, nil
}

func (repo *signupRepository) Create(ctx context.Context, signup *entity.SignupRequest) error {
	now := time.Now()
	signupM := &model.SignupRequestModel{
		BusinessName: signup.BusinessName,
		BusinessType: signup.BusinessType,
		OwnerName:    signup.OwnerName,
		Email:        signup.Email,
		Phone:        signup.Phone,
		Status:       string(entity.RequestPending),
		CreatedAt:    now,
	}

	result, err := repo.coll.InsertOne(ctx, signupM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create signup request")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		signup.ID = oid.Hex()
	}
	signup.Status = entity.RequestPending
	signup.CreatedAt = now

	return nil
}
