package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexByKey(t *testing.T, indexes []mongo.IndexModel, key string) mongo.IndexModel {
	t.Helper()

	for _, index := range indexes {
		keys, ok := index.Keys.(bson.D)
		require.True(t, ok)
		require.Len(t, keys, 1)

		if keys[0].Key == key {
			return index
		}
	}

	require.Failf(t, "index not found", "no index on %q", key)

	return mongo.IndexModel{}
}

// The membership-renewal upsert inserts listing stubs that carry no
// businessName. Two distinct owners paying before registering must both
// succeed, so the businessName unique index has to skip documents where the
// field is absent instead of treating each missing name as the same null key.
func TestBusinessIndexes_NameUniquenessIsPartial(t *testing.T) {
	t.Parallel()

	indexes := businessIndexes()

	nameIndex := indexByKey(t, indexes, "businessName")
	require.NotNil(t, nameIndex.Options)
	assert.True(t, *nameIndex.Options.Unique)
	assert.Equal(t,
		bson.M{"businessName": bson.M{"$exists": true}},
		nameIndex.Options.PartialFilterExpression,
	)

	ownerIndex := indexByKey(t, indexes, "ownerSubject")
	require.NotNil(t, ownerIndex.Options)
	assert.True(t, *ownerIndex.Options.Unique)
	assert.Nil(t, ownerIndex.Options.PartialFilterExpression)
}

func TestUserIndexes_EmailAndSubjectUnique(t *testing.T) {
	t.Parallel()

	indexes := userIndexes()
	require.Len(t, indexes, 2)

	for _, index := range indexes {
		require.NotNil(t, index.Options)
		assert.True(t, *index.Options.Unique)
	}
}
