package reconciling_test

import (
	"context"
	"database/sql"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/internal/usecases/reconciling"
	"github.com/sugarart/commerce-sync-api/internal/usecases/reconciling/mocks"
	"github.com/sugarart/commerce-sync-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

// stubRunner executa a função da transação com tx nulo. Os repositórios são
// mockados, então nenhuma query chega ao banco.
type stubRunner struct{}

func (s *stubRunner) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

func records(n int) []sigecloudclient.Record {
	out := make([]sigecloudclient.Record, n)
	for i := range out {
		out[i] = sigecloudclient.Record{}
	}
	return out
}

func basePipeline(ctrl *gomock.Controller, entity string, mode domain.WriteMode) *mocks.MockPipeline {
	pipeline := mocks.NewMockPipeline(ctrl)
	pipeline.EXPECT().Entity().Return(entity).AnyTimes()
	pipeline.EXPECT().Mode().Return(mode).AnyTimes()
	return pipeline
}

func TestEngine_Run_PaginaAteExaurirAOrigem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := basePipeline(ctrl, "pedidos", domain.WriteModeUpsert)
	pipeline.EXPECT().RequiresReferences().Return(false)

	// Três páginas: duas cheias e uma parcial encerram a paginação
	pipeline.EXPECT().FetchPage(gomock.Any(), 1, 100).Return(records(100), nil)
	pipeline.EXPECT().FetchPage(gomock.Any(), 2, 100).Return(records(100), nil)
	pipeline.EXPECT().FetchPage(gomock.Any(), 3, 100).Return(records(37), nil)

	calls := 0
	pipeline.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, rec sigecloudclient.Record, refs domain.ReferenceMap) (*reconciling.Item, *reconciling.Skip) {
			calls++
			return &reconciling.Item{Key: "R" + strconv.Itoa(calls), Value: calls}, nil
		}).
		Times(237)

	pipeline.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, items []*reconciling.Item) (int, error) {
			return len(items), nil
		})

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 100)
	summary, err := engine.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 237, summary.Received)
	assert.Equal(t, 237, summary.Transformed)
	assert.Equal(t, 237, summary.Written)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, reconciling.StateDone, engine.State())
}

func TestEngine_Run_RegistroInvalidoNaoDerrubaOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := basePipeline(ctrl, "pedidos", domain.WriteModeUpsert)
	pipeline.EXPECT().RequiresReferences().Return(false)
	pipeline.EXPECT().FetchPage(gomock.Any(), 1, 100).Return(records(10), nil)

	calls := 0
	pipeline.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, rec sigecloudclient.Record, refs domain.ReferenceMap) (*reconciling.Item, *reconciling.Skip) {
			calls++
			if calls == 4 {
				return nil, &reconciling.Skip{Key: "P4", Reason: reconciling.SkipBadDate}
			}
			return &reconciling.Item{Key: "P" + strconv.Itoa(calls), Value: calls}, nil
		}).
		Times(10)

	pipeline.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, items []*reconciling.Item) (int, error) {
			assert.Len(t, items, 9)
			return len(items), nil
		})

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 100)
	summary, err := engine.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 9, summary.Written)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.SkipReasons[reconciling.SkipBadDate])
}

func TestEngine_Run_ErroNaPrimeiraPaginaFalhaAExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := basePipeline(ctrl, "boletos", domain.WriteModeUpsert)
	pipeline.EXPECT().RequiresReferences().Return(false)
	pipeline.EXPECT().
		FetchPage(gomock.Any(), 1, 100).
		Return(nil, errors.New("timeout na origem"))

	// Nada é gravado quando a origem está indisponível
	pipeline.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 100)
	summary, err := engine.Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, reconciling.StateFailed, engine.State())
}

func TestEngine_Run_ErroEmPaginaSeguinteSegueComOAcumulado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := basePipeline(ctrl, "clientes", domain.WriteModeUpsert)
	pipeline.EXPECT().RequiresReferences().Return(false)
	pipeline.EXPECT().FetchPage(gomock.Any(), 1, 2).Return(records(2), nil)
	pipeline.EXPECT().
		FetchPage(gomock.Any(), 2, 2).
		Return(nil, errors.New("timeout na origem"))

	calls := 0
	pipeline.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, rec sigecloudclient.Record, refs domain.ReferenceMap) (*reconciling.Item, *reconciling.Skip) {
			calls++
			return &reconciling.Item{Key: "C" + strconv.Itoa(calls), Value: calls}, nil
		}).
		Times(2)

	pipeline.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, items []*reconciling.Item) (int, error) {
			return len(items), nil
		})

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 2)
	summary, err := engine.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Received)
	assert.Equal(t, 2, summary.Written)
}

func TestEngine_Run_InsertOnlyIgnoraChavesJaGravadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := basePipeline(ctrl, "produtos", domain.WriteModeInsertNew)
	pipeline.EXPECT().RequiresReferences().Return(false)
	pipeline.EXPECT().FetchPage(gomock.Any(), 1, 100).Return(records(3), nil)

	calls := 0
	pipeline.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, rec sigecloudclient.Record, refs domain.ReferenceMap) (*reconciling.Item, *reconciling.Skip) {
			calls++
			return &reconciling.Item{Key: "SKU" + strconv.Itoa(calls), Value: calls}, nil
		}).
		Times(3)

	pipeline.EXPECT().
		ExistingKeys(gomock.Any(), gomock.Any()).
		Return(map[string]struct{}{"SKU1": {}, "SKU3": {}}, nil)

	pipeline.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, items []*reconciling.Item) (int, error) {
			require.Len(t, items, 1)
			assert.Equal(t, "SKU2", items[0].Key)
			return 1, nil
		})

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 100)
	summary, err := engine.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, 2, summary.SkipReasons[reconciling.SkipAlreadyExists])
}

func TestEngine_Run_DeduplicaPelaChaveExterna(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := basePipeline(ctrl, "pedidos", domain.WriteModeUpsert)
	pipeline.EXPECT().RequiresReferences().Return(false)
	pipeline.EXPECT().FetchPage(gomock.Any(), 1, 100).Return(records(3), nil)

	// Três registros com a mesma chave: só o primeiro sobrevive
	pipeline.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&reconciling.Item{Key: "P1", Value: 1}, nil).
		Times(3)

	pipeline.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, items []*reconciling.Item) (int, error) {
			assert.Len(t, items, 1)
			return 1, nil
		})

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 100)
	summary, err := engine.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, 2, summary.SkipReasons[reconciling.SkipDuplicateInBatch])
}

func TestEngine_Run_CarregaEPropagaOMapaDeReferencias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refs := domain.ReferenceMap{"cliente@exemplo.com": 42}

	pipeline := basePipeline(ctrl, "pedidos", domain.WriteModeUpsert)
	pipeline.EXPECT().RequiresReferences().Return(true)
	pipeline.EXPECT().LoadReferences(gomock.Any(), gomock.Any()).Return(refs, nil)
	pipeline.EXPECT().FetchPage(gomock.Any(), 1, 100).Return(records(1), nil)

	pipeline.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q any, rec sigecloudclient.Record, got domain.ReferenceMap) (*reconciling.Item, *reconciling.Skip) {
			id, ok := got.Resolve("cliente@exemplo.com")
			assert.True(t, ok)
			assert.Equal(t, int64(42), id)
			return &reconciling.Item{Key: "P1", Value: 1}, nil
		})

	pipeline.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1, nil)

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 100)
	_, err := engine.Run(context.Background())

	require.NoError(t, err)
}

func TestEngine_Run_ErroDeEscritaPropagaEFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := basePipeline(ctrl, "boletos", domain.WriteModeUpsert)
	pipeline.EXPECT().RequiresReferences().Return(false)
	pipeline.EXPECT().FetchPage(gomock.Any(), 1, 100).Return(records(1), nil)
	pipeline.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&reconciling.Item{Key: "B1", Value: 1}, nil)
	pipeline.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, errors.New("deadlock detectado"))

	engine := reconciling.NewEngine(pipeline, &stubRunner{}, 100)
	summary, err := engine.Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, reconciling.StateFailed, engine.State())
}
