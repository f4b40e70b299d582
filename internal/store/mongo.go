package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cargoshop/cargoshop/internal/domain"
)

// MongoStore backs the document store with a MongoDB database, one
// collection per table.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects and pings the server before returning.
func NewMongoStore(ctx context.Context, uri, dbname string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "mongo ping")
	}
	return &MongoStore{client: client, db: client.Database(dbname)}, nil
}

func (s *MongoStore) Scan(ctx context.Context, table string, out interface{}) error {
	cur, err := s.db.Collection(table).Find(ctx, bson.D{})
	if err != nil {
		return errors.Wrapf(err, "scan %s", table)
	}
	return errors.Wrapf(cur.All(ctx, out), "scan %s", table)
}

func (s *MongoStore) Get(ctx context.Context, table, key string, out interface{}) (bool, error) {
	err := s.db.Collection(table).FindOne(ctx, bson.M{domain.KeyAttr(table): key}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "get %s/%s", table, key)
	}
	return true, nil
}

func (s *MongoStore) Put(ctx context.Context, table, key string, item interface{}) error {
	_, err := s.db.Collection(table).ReplaceOne(ctx,
		bson.M{domain.KeyAttr(table): key}, item, options.Replace().SetUpsert(true))
	return errors.Wrapf(err, "put %s/%s", table, key)
}

func (s *MongoStore) Update(ctx context.Context, table, key string, attrs map[string]interface{}, out interface{}) error {
	set := bson.M{}
	for k, v := range attrs {
		set[k] = v
	}
	set[domain.KeyAttr(table)] = key

	res := s.db.Collection(table).FindOneAndUpdate(ctx,
		bson.M{domain.KeyAttr(table): key},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After))
	if err := res.Err(); err != nil {
		return errors.Wrapf(err, "update %s/%s", table, key)
	}
	if out != nil {
		return errors.Wrapf(res.Decode(out), "update %s/%s", table, key)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, table, key string) error {
	_, err := s.db.Collection(table).DeleteOne(ctx, bson.M{domain.KeyAttr(table): key})
	return errors.Wrapf(err, "delete %s/%s", table, key)
}

func (s *MongoStore) Count(ctx context.Context, table string) (int64, error) {
	n, err := s.db.Collection(table).CountDocuments(ctx, bson.D{})
	return n, errors.Wrapf(err, "count %s", table)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
