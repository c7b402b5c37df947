package remote

import (
	"fmt"
	"sort"

	"github.com/go-redis/redis"

	"gitlab.com/tech-pubs/simplified-english/lib/store"
)

type RedisConfig struct {
	Host string
	Port int
}

func NewRedisClient(conf RedisConfig) store.Client {
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
	}
}

type redisClient struct {
	*redis.Client
}

const keyPrefix = "lexicon:"

// Forms are queued onto a pipeline and flushed in batches of this size so a
// large derived list does not make one giant round trip.
const addBatchSize = 500

func (r *redisClient) AddForms(list string, forms ...string) error {
	key := keyPrefix + list

	pipe := r.Pipeline()
	queued := 0
	for _, form := range forms {
		pipe.SAdd(key, form)
		queued++
		if queued == addBatchSize {
			if _, err := pipe.Exec(); err != nil {
				return err
			}
			pipe = r.Pipeline()
			queued = 0
		}
	}
	if queued == 0 {
		return nil
	}
	_, err := pipe.Exec()
	return err
}

func (r *redisClient) Forms(list string) ([]string, error) {
	forms, err := r.SMembers(keyPrefix + list).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(forms)
	return forms, nil
}

func (r *redisClient) Drop(list string) error {
	return r.Del(keyPrefix + list).Err()
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}
