package impl

import (
	"context"
	"testing"

	"reviewpulse/internal/domain/repository"
	"reviewpulse/internal/errors"
	"reviewpulse/internal/etl"
	mockRepo "reviewpulse/internal/mocks/repository"
	"reviewpulse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ingestServiceFixtures holds all test dependencies for ingest service tests.
type ingestServiceFixtures struct {
	service     usecase.IngestUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	reviewRepo  *mockRepo.MockReviewRepository
	cache       *mockRepo.MockCacheRepository
}

func createTestIngestService(t *testing.T) ingestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	cache := mockRepo.NewMockCacheRepository(t)

	service := NewIngestService(newDiscardLogger(), etl.NewNormalizer(), txManager, cache)

	return ingestServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		productRepo: productRepo,
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
		cache:       cache,
	}
}

// passThroughTransaction makes the transaction manager run the given
// function against the fixture's repository factory.
func (fx ingestServiceFixtures) passThroughTransaction(ctx context.Context) {
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.factory.EXPECT().NewReviewRepository().Return(fx.reviewRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func sourceRecord() etl.SourceRecord {
	return etl.SourceRecord{
		etl.FieldProductID:      "P1",
		etl.FieldProductName:    "USB Cable",
		etl.FieldCategory:       "Electronics,Cables",
		etl.FieldUserID:         "u1,u2",
		etl.FieldUserName:       "Alice,Bob",
		etl.FieldReviewID:       "r1,r2",
		etl.FieldReviewTitle:    "Great,Okay",
		etl.FieldReviewContent:  "Works well,Does the job",
		etl.FieldRating:         "4.5",
		etl.FieldSentimentScore: "0.8",
	}
}

func TestIngestService_IngestRecords_Success(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	fx.passThroughTransaction(ctx)

	fx.productRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)
	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil).
		Times(2)
	fx.reviewRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil).
		Times(2)
	fx.cache.EXPECT().
		DeletePattern(ctx, "analytics:*").
		Return(nil)

	report, err := fx.service.IngestRecords(ctx, []etl.SourceRecord{sourceRecord()})
	require.NoError(t, err)

	assert.Equal(t, 1, report.RecordsProcessed)
	assert.Equal(t, 0, report.RecordsRejected)
	assert.Equal(t, 1, report.ProductsUpserted)
	assert.Equal(t, 2, report.UsersUpserted)
	assert.Equal(t, 2, report.ReviewsUpserted)
}

func TestIngestService_IngestRecords_RejectsBrokenRecord(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()

	broken := sourceRecord()
	delete(broken, etl.FieldProductID)

	// A structurally broken record is counted and skipped without
	// touching the store or the cache.
	report, err := fx.service.IngestRecords(ctx, []etl.SourceRecord{broken})
	require.NoError(t, err)

	assert.Equal(t, 0, report.RecordsProcessed)
	assert.Equal(t, 1, report.RecordsRejected)
}

func TestIngestService_IngestRecords_BatchContinuesPastRejection(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	fx.passThroughTransaction(ctx)

	fx.productRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)
	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil).
		Times(2)
	fx.reviewRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil).
		Times(2)
	fx.cache.EXPECT().
		DeletePattern(ctx, "analytics:*").
		Return(nil)

	broken := sourceRecord()
	broken[etl.FieldProductName] = ""

	report, err := fx.service.IngestRecords(ctx, []etl.SourceRecord{broken, sourceRecord()})
	require.NoError(t, err)

	assert.Equal(t, 1, report.RecordsProcessed)
	assert.Equal(t, 1, report.RecordsRejected)
}

func TestIngestService_IngestRecords_TransactionFailure(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("connection lost"))

	_, err := fx.service.IngestRecords(ctx, []etl.SourceRecord{sourceRecord()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestIngestService_IngestRecords_EmptyBatch(t *testing.T) {
	fx := createTestIngestService(t)

	report, err := fx.service.IngestRecords(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.RecordsProcessed)
}
