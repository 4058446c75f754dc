// Package preview stores rendered emails so the builder can show them and
// serve them as downloads. MemoryStore suits a single instance; RedisStore
// lets several instances share results.
package preview
