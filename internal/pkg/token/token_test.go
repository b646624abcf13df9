package token_test

import (
	"testing"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaker(t *testing.T) {
	t.Run("should_create_maker_with_valid_config", func(t *testing.T) {
		maker, err := token.NewMaker("secret-key", time.Hour)

		require.NoError(t, err)
		assert.NotNil(t, maker)
	})

	t.Run("should_reject_empty_secret", func(t *testing.T) {
		maker, err := token.NewMaker("", time.Hour)

		require.Error(t, err)
		assert.Nil(t, maker)
	})

	t.Run("should_reject_non_positive_ttl", func(t *testing.T) {
		maker, err := token.NewMaker("secret-key", 0)

		require.Error(t, err)
		assert.Nil(t, maker)
	})
}

func TestMaker_MintAndVerify(t *testing.T) {
	maker, err := token.NewMaker("secret-key", time.Hour)
	require.NoError(t, err)

	t.Run("should_round_trip_user_id", func(t *testing.T) {
		signed, mintErr := maker.Mint("user-42", time.Now())
		require.NoError(t, mintErr)
		require.NotEmpty(t, signed)

		userID, verifyErr := maker.Verify(signed)
		require.NoError(t, verifyErr)
		assert.Equal(t, "user-42", userID)
	})

	t.Run("should_reject_expired_token", func(t *testing.T) {
		signed, mintErr := maker.Mint("user-42", time.Now().Add(-2*time.Hour))
		require.NoError(t, mintErr)

		_, verifyErr := maker.Verify(signed)
		require.Error(t, verifyErr)
		require.ErrorIs(t, verifyErr, token.ErrInvalidToken)
	})

	t.Run("should_reject_token_signed_with_other_secret", func(t *testing.T) {
		otherMaker, makerErr := token.NewMaker("other-secret", time.Hour)
		require.NoError(t, makerErr)

		signed, mintErr := otherMaker.Mint("user-42", time.Now())
		require.NoError(t, mintErr)

		_, verifyErr := maker.Verify(signed)
		require.Error(t, verifyErr)
		require.ErrorIs(t, verifyErr, token.ErrInvalidToken)
	})

	t.Run("should_reject_garbage_token", func(t *testing.T) {
		_, verifyErr := maker.Verify("not-a-token")
		require.Error(t, verifyErr)
		require.ErrorIs(t, verifyErr, token.ErrInvalidToken)
	})
}
