// Package redis connects to the Redis server that backs the native storage
// engine of headless visitors (see storage.RedisStore).
//
//	client, err := redis.Connect(ctx, redis.Config{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  time.Second,
//	    ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Config carries env tags (REDIS_URL, REDIS_RETRY_ATTEMPTS, ...). Errors wrap
// the go-redis error with errors.Join so both can be matched.
package redis
