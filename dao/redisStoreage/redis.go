package redisStoreage

import (
	"context"
	"encoding/json"
	"github.com/go-redis/redis/v8"
	"lnodelist/dao/model"
	"lnodelist/list"
	"sort"
)

const (
	keyPrefix = "lnodelist_list:"
	namesKey  = "lnodelist_names"
)

// RedisDao stores each list as a redis list of JSON entries, plus a set of names.
type RedisDao struct {
	client *redis.Client
}

func CreateRedisDao(uri string) *RedisDao {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		panic(err)
	}
	return &RedisDao{
		client: redis.NewClient(opt),
	}
}

func (r *RedisDao) Close() error {
	return r.client.Close()
}

func listKey(name string) string {
	return keyPrefix + name
}

func (r *RedisDao) SaveList(name string, l *list.List) error {
	if name == "" {
		return model.ErrEmptyName
	}
	entries, err := model.ToEntries(l)
	if err != nil {
		return err
	}
	args := make([]any, len(entries))
	for i, e := range entries {
		buf, err := json.Marshal(e)
		if err != nil {
			return err
		}
		args[i] = buf
	}
	ctx := context.TODO()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, listKey(name))
		if len(args) > 0 {
			pipe.RPush(ctx, listKey(name), args...)
		}
		pipe.SAdd(ctx, namesKey, name)
		return nil
	})
	return err
}

func (r *RedisDao) LoadList(name string) (*list.List, error) {
	ctx := context.TODO()
	known, err := r.client.SIsMember(ctx, namesKey, name).Result()
	if err != nil {
		return nil, err
	}
	if known == false {
		return nil, model.ErrNotFound
	}
	raw, err := r.client.LRange(ctx, listKey(name), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]model.Entry, len(raw))
	for i, s := range raw {
		if err = json.Unmarshal([]byte(s), &entries[i]); err != nil {
			return nil, err
		}
	}
	return model.FromEntries(entries)
}

func (r *RedisDao) RemoveList(name string) error {
	ctx := context.TODO()
	removed, err := r.client.SRem(ctx, namesKey, name).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return model.ErrNotFound
	}
	return r.client.Del(ctx, listKey(name)).Err()
}

func (r *RedisDao) ListNames() ([]string, error) {
	names, err := r.client.SMembers(context.TODO(), namesKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
