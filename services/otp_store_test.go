package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_SixDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestMemoryOTPStore_SetGetDelete(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "15551234567", "123456"))

	code, err := store.Get(ctx, "15551234567")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)

	require.NoError(t, store.Delete(ctx, "15551234567"))

	_, err = store.Get(ctx, "15551234567")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestMemoryOTPStore_UnknownPhone(t *testing.T) {
	store := NewMemoryOTPStore()

	_, err := store.Get(context.Background(), "15550000000")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestMemoryOTPStore_OverwriteReplacesCode(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "15551234567", "111111"))
	require.NoError(t, store.Set(ctx, "15551234567", "222222"))

	code, err := store.Get(ctx, "15551234567")
	require.NoError(t, err)
	assert.Equal(t, "222222", code)
}

func TestMemoryOTPStore_ExpiredCodeConsumed(t *testing.T) {
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryOTPStore()
	store.now = func() time.Time { return current }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "15551234567", "123456"))

	// Still valid just inside the window.
	current = current.Add(OTPTTL - time.Second)
	code, err := store.Get(ctx, "15551234567")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)

	// Expired past the window, and consumed by the failed lookup.
	current = current.Add(2 * time.Second)
	_, err = store.Get(ctx, "15551234567")
	assert.ErrorIs(t, err, ErrOTPNotFound)

	current = current.Add(-time.Hour)
	_, err = store.Get(ctx, "15551234567")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}
