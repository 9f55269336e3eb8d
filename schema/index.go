package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexHelpCardCollection())
	panicIfError(m.IndexPostCollection())
	panicIfError(m.IndexCommentCollection())
	panicIfError(m.IndexDeckCollection())
	panicIfError(m.IndexLocationLabelCollection())
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexHelpCardCollection() error {
	if err := m.createIndex(HelpCardCollection, mongo.IndexModel{
		Keys: bson.D{
			{"status", 1},
			{"created_at", -1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(HelpCardCollection, mongo.IndexModel{
		Keys: bson.D{
			{"deck_id", 1},
			{"status", 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(HelpCardCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexPostCollection() error {
	if err := m.createIndex(PostCollection, mongo.IndexModel{
		Keys: bson.D{
			{"category_key", 1},
			{"created_at", -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(PostCollection, mongo.IndexModel{
		Keys: bson.D{
			{"author_id", 1},
			{"created_at", -1},
		},
	})
}

func (m *MongoDBIndexer) IndexCommentCollection() error {
	return m.createIndex(CommentCollection, mongo.IndexModel{
		Keys: bson.D{
			{"post_id", 1},
			{"created_at", 1},
		},
	})
}

func (m *MongoDBIndexer) IndexDeckCollection() error {
	if err := m.createIndex(DeckCollection, mongo.IndexModel{
		Keys: bson.M{
			"invite_code": 1,
		},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(DeckCollection, mongo.IndexModel{
		Keys: bson.M{
			"member_ids": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(DeckCollection, mongo.IndexModel{
		Keys: bson.M{
			"is_public": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexLocationLabelCollection() error {
	return m.createIndex(LocationLabelCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}
