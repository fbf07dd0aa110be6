package reconciling

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/pkg/log"
)

// State é o estado corrente de uma execução de reconciliação.
type State string

const (
	StateInit          State = "init"
	StateResolvingRefs State = "resolving_refs"
	StatePaging        State = "paging"
	StateTransforming  State = "transforming"
	StateWriting       State = "writing"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

const defaultPageSize = 1000

// TxRunner delimita a transação que envolve uma execução inteira: commit
// somente se todos os lotes gravarem, rollback completo em qualquer falha.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Engine executa uma reconciliação completa de uma entidade: carrega o mapa
// de referências, pagina a origem até exauri-la, transforma registro a
// registro, deduplica pela chave externa e grava o lote, tudo dentro de
// uma única transação.
type Engine struct {
	pipeline Pipeline
	runner   TxRunner
	pageSize int

	mu    sync.Mutex
	state State
}

func NewEngine(pipeline Pipeline, runner TxRunner, pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Engine{
		pipeline: pipeline,
		runner:   runner,
		pageSize: pageSize,
		state:    StateInit,
	}
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) setState(state State) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
}

// Run executa uma reconciliação. Em caso de erro nada foi comitado: o
// rollback desfaz todas as escritas da execução.
func (e *Engine) Run(ctx context.Context) (*domain.SyncSummary, error) {
	summary := &domain.SyncSummary{
		Entity:      e.pipeline.Entity(),
		WriteMode:   e.pipeline.Mode(),
		SkipReasons: make(map[string]int),
		StartedAt:   time.Now(),
	}

	e.setState(StateInit)

	err := e.runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return e.run(ctx, tx, summary)
	})

	summary.FinishedAt = time.Now()

	if err != nil {
		e.setState(StateFailed)
		return nil, errors.Wrapf(err, "sincronização de %s falhou", e.pipeline.Entity())
	}

	for _, count := range summary.SkipReasons {
		summary.Skipped += count
	}

	e.setState(StateDone)
	return summary, nil
}

func (e *Engine) run(ctx context.Context, tx *sql.Tx, summary *domain.SyncSummary) error {
	logger := log.ForContext(ctx).WithField("entity", e.pipeline.Entity())

	var refs domain.ReferenceMap
	if e.pipeline.RequiresReferences() {
		e.setState(StateResolvingRefs)
		loaded, err := e.pipeline.LoadReferences(ctx, tx)
		if err != nil {
			return errors.Wrap(err, "erro ao carregar mapa de referências")
		}
		refs = loaded
		logger.WithField("references", len(refs)).Debug("Mapa de referências carregado")
	}

	e.setState(StatePaging)
	raw, err := e.collectPages(ctx, logger)
	if err != nil {
		return err
	}
	summary.Received = len(raw)

	e.setState(StateTransforming)
	seen := make(map[string]struct{}, len(raw))
	items := make([]*Item, 0, len(raw))
	for _, rec := range raw {
		item, skip := e.pipeline.Transform(ctx, tx, rec, refs)
		if skip != nil {
			summary.SkipReasons[skip.Reason]++
			continue
		}
		if _, duplicate := seen[item.Key]; duplicate {
			summary.SkipReasons[SkipDuplicateInBatch]++
			continue
		}
		seen[item.Key] = struct{}{}
		items = append(items, item)
	}
	summary.Transformed = len(items)

	if e.pipeline.Mode() == domain.WriteModeInsertNew && len(items) > 0 {
		existing, err := e.pipeline.ExistingKeys(ctx, tx)
		if err != nil {
			return errors.Wrap(err, "erro ao consultar chaves existentes")
		}

		kept := items[:0]
		for _, item := range items {
			if _, exists := existing[item.Key]; exists {
				summary.SkipReasons[SkipAlreadyExists]++
				continue
			}
			kept = append(kept, item)
		}
		items = kept
	}

	e.setState(StateWriting)
	if len(items) > 0 {
		written, err := e.pipeline.Write(ctx, tx, items)
		if err != nil {
			return errors.Wrap(err, "erro ao gravar lote")
		}
		summary.Written = written
	}

	return nil
}

// collectPages avança page até uma página vazia ou menor que pageSize.
// Erro na primeira página derruba a execução; erro numa página seguinte
// encerra a paginação e a execução segue com o que já foi acumulado;
// a próxima execução converge.
func (e *Engine) collectPages(ctx context.Context, logger log.Logger) ([]sigecloudclient.Record, error) {
	var raw []sigecloudclient.Record

	for page := 1; ; page++ {
		records, err := e.pipeline.FetchPage(ctx, page, e.pageSize)
		if err != nil {
			if page == 1 {
				return nil, errors.Wrap(err, "erro ao consultar a primeira página da origem")
			}
			logger.WithError(err).WithField("page", page).
				Warn("Erro ao consultar página; seguindo com os registros já acumulados")
			break
		}

		raw = append(raw, records...)

		if len(records) < e.pageSize {
			break
		}
	}

	return raw, nil
}
