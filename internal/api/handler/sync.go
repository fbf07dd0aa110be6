package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/internal/scheduler"
	"github.com/sugarart/commerce-sync-api/pkg/apiErrors"
)

// Entidades aceitas no disparo manual de sincronização
const (
	SyncEntityOrders    = "pedidos"
	SyncEntityProducts  = "produtos"
	SyncEntityBoletos   = "boletos"
	SyncEntityCustomers = "clientes"
)

// SyncServices contém os agendadores de sincronização expostos pela API
type SyncServices struct {
	Orders    *scheduler.EntitySyncService
	Products  *scheduler.EntitySyncService
	Boletos   *scheduler.EntitySyncService
	Customers *scheduler.EntitySyncService
}

func (s SyncServices) byEntity(entity string) *scheduler.EntitySyncService {
	switch entity {
	case SyncEntityOrders:
		return s.Orders
	case SyncEntityProducts:
		return s.Products
	case SyncEntityBoletos:
		return s.Boletos
	case SyncEntityCustomers:
		return s.Customers
	default:
		return nil
	}
}

// RunSync executa manualmente a sincronização de uma entidade e responde com
// o resumo da execução. Ao contrário do tick do cron, a chamada é síncrona.
func RunSync(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSync")

		entity := httprouter.ParamsFromContext(r.Context()).ByName("entity")
		service := services.byEntity(entity)
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Entidade inválida. Valores aceitos: pedidos, produtos, boletos, clientes", nil)
			return
		}

		summary, err := service.RunNow(r.Context())
		if err != nil {
			writeSyncError(w, err)
			return
		}

		response := map[string]any{
			"status":  "success",
			"entity":  summary.Entity,
			"summary": summary,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func writeSyncError(w http.ResponseWriter, err error) {
	if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
		apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning,
			"Sincronização já em andamento para esta entidade", nil)
		return
	}

	var transportErr *sigecloudclient.TransportError
	if errors.As(err, &transportErr) {
		apiErrors.WriteError(w, apiErrors.ErrExternalService,
			"Falha ao consultar a API de origem", map[string]any{"status": transportErr.Status})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrSyncFailed, err.Error(), nil)
}

// GetSyncStatus retorna o status dos agendadores de todas as entidades
func GetSyncStatus(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSyncStatus")

		status := map[string]any{
			SyncEntityOrders:    services.Orders.GetStatus(),
			SyncEntityProducts:  services.Products.GetStatus(),
			SyncEntityBoletos:   services.Boletos.GetStatus(),
			SyncEntityCustomers: services.Customers.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
