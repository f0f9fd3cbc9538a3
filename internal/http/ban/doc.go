// Package ban turns repeated rate-limit rejections into temporary bans.
//
// Strikes and bans live in a Store. MemoryStore serves a single gateway
// process and RedisStore shares state between replicas.
//
// The RedisStore tests need a live server and skip otherwise:
//
//	VIGILIO_TEST_REDIS_ADDR=localhost:6379 go test ./internal/http/ban/...
package ban
