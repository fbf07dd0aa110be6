package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sugarart/commerce-sync-api/internal/scheduler"
	"github.com/sugarart/commerce-sync-api/internal/usecases/relaying"
	"github.com/sugarart/commerce-sync-api/pkg/apiErrors"
)

// ProcessMailbox executa um ciclo do relay da caixa de entrada sob demanda
func ProcessMailbox(poll *scheduler.MailboxPollService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ProcessMailbox")

		report, err := poll.RunNow(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning,
					"Ciclo da caixa de entrada já em andamento", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrMailboxUnavailable, err.Error(), nil)
			return
		}

		response := map[string]any{
			"status": "success",
			"report": report,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// DeleteMailboxMessage apaga as mensagens cujo assunto carrega o token de
// correlação. Token desconhecido é 404; falha de conexão com a caixa é 502.
func DeleteMailboxMessage(relay relaying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteMailboxMessage")

		token := httprouter.ParamsFromContext(r.Context()).ByName("token")
		if token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"Token de correlação não informado", nil)
			return
		}

		deleted, err := relay.DeleteByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, relaying.ErrMessageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrMessageNotFound,
					"Nenhuma mensagem encontrada para o token informado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrMailboxUnavailable, err.Error(), nil)
			return
		}

		response := map[string]any{
			"status":  "success",
			"deleted": deleted,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
