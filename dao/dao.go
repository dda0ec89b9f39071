package dao

import (
	"lnodelist/dao/localdb"
	"lnodelist/dao/mongoStoreage"
	"lnodelist/dao/redisStoreage"
	"lnodelist/list"
)

// Dao keeps named snapshots of lists. Loading always builds a fresh list.
type Dao interface {
	SaveList(name string, l *list.List) error
	LoadList(name string) (*list.List, error)
	RemoveList(name string) error
	ListNames() ([]string, error)
}

func CreateMongoDao(uri string) Dao {
	return mongoStoreage.CreateMongoDao(uri)
}
func CreateRedisDao(uri string) Dao {
	return redisStoreage.CreateRedisDao(uri)
}
func CreateLocalDao() Dao {
	return localdb.CreateLocalDao()
}
