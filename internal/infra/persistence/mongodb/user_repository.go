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

// userRepository implements repository.UserRepository over the 'users'
// collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(model.CollectionUsers)}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

func (repo *userRepository) FindBySubject(ctx context.Context, subject string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"subject": subject})
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user; the unique indexes on email and subject are the
// only duplicate check.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	userM := fromUserDomain(user)
	userM.CreatedAt = now
	userM.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("user email or subject already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

func (repo *userRepository) UpdateRole(ctx context.Context, email string, role entity.Role) error {
	update := bson.M{"$set": bson.M{"role": string(role), "updatedAt": time.Now()}}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user role")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:        userM.ID.Hex(),
		Subject:   userM.Subject,
		Email:     userM.Email,
		Name:      userM.Name,
		Phone:     userM.Phone,
		Role:      entity.Role(userM.Role),
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		Subject: user.Subject,
		Email:   user.Email,
		Name:    user.Name,
		Phone:   user.Phone,
		Role:    string(user.Role),
	}
}
