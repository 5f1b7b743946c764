package proto

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFutureResolvesAfterPendingPolls(t *testing.T) {
	polls := 0
	future := newBindFuture[int, int](
		func() (Transport[int, int], bool, error) {
			polls++
			if polls < 3 {
				return nil, false, nil
			}
			return nil, true, nil
		},
		func(t Transport[int, int]) (Transport[int, int], error) { return t, nil },
	)

	done, err := future.Poll()
	require.NoError(t, err)
	assert.False(t, done)

	done, err = future.Poll()
	require.NoError(t, err)
	assert.False(t, done)

	done, err = future.Poll()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestBindFuturePollAfterResolvePanics(t *testing.T) {
	future := newBindFuture[int, int](
		func() (Transport[int, int], bool, error) { return nil, true, nil },
		func(t Transport[int, int]) (Transport[int, int], error) { return t, nil },
	)

	_, err := future.Resolve()
	require.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = future.Poll()
	})
}

func TestBindFutureInnerErrorResolvesToError(t *testing.T) {
	boom := errors.New("inner bind failed")
	future := newBindFuture[int, int](
		func() (Transport[int, int], bool, error) { return nil, false, boom },
		func(t Transport[int, int]) (Transport[int, int], error) { return t, nil },
	)

	_, err := future.Resolve()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestBindFutureWrapErrorResolvesToError(t *testing.T) {
	boom := errors.New("peer lookup failed")
	future := newBindFuture[int, int](
		func() (Transport[int, int], bool, error) { return nil, true, nil },
		func(t Transport[int, int]) (Transport[int, int], error) { return nil, boom },
	)

	_, err := future.Resolve()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestBindFuturePanicsWhenAlreadyErrored(t *testing.T) {
	boom := errors.New("boom")
	future := newBindFuture[int, int](
		func() (Transport[int, int], bool, error) { return nil, false, boom },
		func(t Transport[int, int]) (Transport[int, int], error) { return t, nil },
	)

	_, err := future.Resolve()
	require.Error(t, err)

	assert.Panics(t, func() {
		_, _ = future.Poll()
	})
}
