package service_test

import (
	"context"
	"errors"
	"testing"

	"moto-catalog-backend/internal/cache"
	"moto-catalog-backend/internal/mocks"
	"moto-catalog-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInvalidationsFor(t *testing.T) {
	y1, y2 := uuid.New(), uuid.New()

	got := service.InvalidationsFor([]uuid.UUID{y1, y2, y1})

	assert.Equal(t, []cache.Invalidation{
		cache.Exact(cache.YearKey(y1)),
		cache.Exact(cache.YearKey(y2)),
		cache.WholeNamespace(cache.NamespaceMultiYear),
		cache.AllConfigurations(),
	}, got)
}

func TestInvalidationsForNoYears(t *testing.T) {
	got := service.InvalidationsFor(nil)

	assert.Equal(t, []cache.Invalidation{
		cache.WholeNamespace(cache.NamespaceMultiYear),
		cache.AllConfigurations(),
	}, got)
}

func TestCacheInvalidator_AppliesEveryInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockQueryCache(ctrl)
	yearID := uuid.New()

	gomock.InOrder(
		mockCache.EXPECT().Invalidate(gomock.Any(), cache.Exact(cache.YearKey(yearID))).Return(nil),
		mockCache.EXPECT().Invalidate(gomock.Any(), cache.WholeNamespace(cache.NamespaceMultiYear)).Return(nil),
		mockCache.EXPECT().Invalidate(gomock.Any(), cache.AllConfigurations()).Return(nil),
	)

	inv := service.NewCacheInvalidator(mockCache)
	inv.InvalidateAfterMutation(context.Background(), []uuid.UUID{yearID})
	inv.Wait()
}

func TestCacheInvalidator_FailureDoesNotStopRemainingInvalidations(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockQueryCache(ctrl)

	mockCache.EXPECT().Invalidate(gomock.Any(), cache.WholeNamespace(cache.NamespaceMultiYear)).Return(errors.New("timeout"))
	mockCache.EXPECT().Invalidate(gomock.Any(), cache.AllConfigurations()).Return(nil)

	inv := service.NewCacheInvalidator(mockCache)
	inv.InvalidateAfterMutation(context.Background(), nil)
	inv.Wait()
}

func TestCacheInvalidator_IsIdempotent(t *testing.T) {
	memory := cache.NewMemoryCache()
	yearID := uuid.New()
	ctx := context.Background()
	assert.NoError(t, memory.Set(ctx, cache.YearKey(yearID), []byte("[]"), 0))

	inv := service.NewCacheInvalidator(memory)
	for i := 0; i < 3; i++ {
		inv.InvalidateAfterMutation(ctx, []uuid.UUID{yearID})
	}
	inv.Wait()

	assert.Equal(t, 0, memory.Len())
}

func TestCacheInvalidator_NilCache(t *testing.T) {
	inv := service.NewCacheInvalidator(nil)
	inv.InvalidateAfterMutation(context.Background(), []uuid.UUID{uuid.New()})
	inv.Wait()
}
