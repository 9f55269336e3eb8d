package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpdesk")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS helpdesk`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO helpdesk").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Account{}).AddUniqueIndex("account_unique_email", "email").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	err = migrateMongo()
	if nil != err {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, _ := mongo.NewClient(opts)
	_ = client.Connect(ctx)

	if err := setupSystemDecks(ctx, client); err != nil {
		fmt.Println("failed to set up system decks: ", err)
		return err
	}

	return nil
}

// setupSystemDecks upserts the built-in decks so running the migration twice is harmless
func setupSystemDecks(ctx context.Context, client *mongo.Client) error {
	fmt.Println("initialize system decks")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.DeckCollection)

	for _, d := range schema.SystemDecks {
		d.Type = schema.DeckSystem
		d.IsPublic = true
		d.AdminIDs = []string{}
		d.MemberIDs = []string{}
		d.CreatedAt = time.Now().UTC()

		if _, err := c.UpdateOne(ctx,
			bson.M{"_id": d.ID},
			bson.M{"$setOnInsert": d},
			options.Update().SetUpsert(true),
		); err != nil {
			return err
		}
	}

	return nil
}
