package mongoStoreage

import (
	"context"
	"errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"lnodelist/dao/model"
	"lnodelist/list"
	"sort"
	"time"
)

const (
	databaseName = "lnodelist_mongo"
	lists        = "lists"
)

// MongoDao stores one document per list.
type MongoDao struct {
	c *mongo.Client
}

func CreateMongoDao(uri string) *MongoDao {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		panic(err)
	}
	var res = &MongoDao{
		c: client,
	}
	return res
}

func (m *MongoDao) Close() error {
	return m.c.Disconnect(context.TODO())
}

func (m *MongoDao) collection() *mongo.Collection {
	return m.c.Database(databaseName).Collection(lists)
}

func (m *MongoDao) SaveList(name string, l *list.List) error {
	if name == "" {
		return model.ErrEmptyName
	}
	entries, err := model.ToEntries(l)
	if err != nil {
		return err
	}
	entity := model.ListEntity{
		Name:      name,
		Entries:   entries,
		UpdatedAt: time.Now(),
	}
	filter := bson.M{model.Name: name}
	_, err = m.collection().ReplaceOne(context.TODO(), filter, entity, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoDao) LoadList(name string) (*list.List, error) {
	filter := bson.M{model.Name: name}
	var res model.ListEntity
	err := m.collection().FindOne(context.TODO(), filter).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.FromEntries(res.Entries)
}

func (m *MongoDao) RemoveList(name string) error {
	filter := bson.M{model.Name: name}
	res, err := m.collection().DeleteOne(context.TODO(), filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (m *MongoDao) ListNames() ([]string, error) {
	values, err := m.collection().Distinct(context.TODO(), model.Name, bson.M{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	sort.Strings(names)
	return names, nil
}
