package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// OTPTTL is how long a one-time code stays valid.
const OTPTTL = 5 * time.Minute

// ErrOTPNotFound is returned when no code exists for a phone number, or
// the stored one has expired.
var ErrOTPNotFound = errors.New("otp not found or expired")

// OTPStore keeps one-time codes keyed by normalized phone number. A code
// is consumed on successful verification or on an expiry check.
type OTPStore interface {
	Set(ctx context.Context, phone, code string) error
	Get(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
}

// GenerateOTP returns a 6-digit one-time code.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// RedisOTPStore backs the store with redis; the TTL is enforced by the key
// expiry so codes disappear on their own.
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func (s *RedisOTPStore) key(phone string) string {
	return "otp:" + phone
}

func (s *RedisOTPStore) Set(ctx context.Context, phone, code string) error {
	return s.client.Set(ctx, s.key(phone), code, OTPTTL).Err()
}

func (s *RedisOTPStore) Get(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, s.key(phone)).Result()
	if err == redis.Nil {
		return "", ErrOTPNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, phone string) error {
	return s.client.Del(ctx, s.key(phone)).Err()
}

// MemoryOTPStore is the in-process fallback used when redis is not
// configured. Codes are lost on restart, which the short validity window
// makes acceptable.
type MemoryOTPStore struct {
	mu    sync.Mutex
	codes map[string]memoryOTP
	now   func() time.Time
}

type memoryOTP struct {
	code      string
	expiresAt time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		codes: make(map[string]memoryOTP),
		now:   time.Now,
	}
}

func (s *MemoryOTPStore) Set(ctx context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phone] = memoryOTP{
		code:      code,
		expiresAt: s.now().Add(OTPTTL),
	}
	return nil
}

func (s *MemoryOTPStore) Get(ctx context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[phone]
	if !ok {
		return "", ErrOTPNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.codes, phone)
		return "", ErrOTPNotFound
	}
	return entry.code, nil
}

func (s *MemoryOTPStore) Delete(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, phone)
	return nil
}
