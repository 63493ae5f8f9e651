package infra_redis_lastroom

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
)

// Driver remembers the last room each user successfully joined, as a
// TTL-bound reconnect hint.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) SetLastRoom(userID string, roomID uuid.UUID) error {
	return d.client.Set(d.getFullKey(userID), roomID.String(), d.ttl).Err()
}

// LastRoom returns uuid.Nil without error when no hint is stored.
func (d *Driver) LastRoom(userID string) (uuid.UUID, error) {
	val, err := d.client.Get(d.getFullKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	roomID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}
	return roomID, nil
}

func (d *Driver) getFullKey(userID string) string {
	if d.key != "" {
		return d.key + ":" + userID
	}
	return userID
}
