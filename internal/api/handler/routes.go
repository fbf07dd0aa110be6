package handler

import (
	"net/http"

	"github.com/sugarart/commerce-sync-api/internal/api/handler/router"
	"github.com/sugarart/commerce-sync-api/internal/scheduler"
	"github.com/sugarart/commerce-sync-api/internal/usecases/relaying"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(services SyncServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/:entity/run",
			Method:  http.MethodPost,
			Handler: RunSync(services),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(services),
		},
	}
}

func Mailbox(poll *scheduler.MailboxPollService, relay relaying.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/mailbox/process",
			Method:  http.MethodPost,
			Handler: ProcessMailbox(poll),
		},
		{
			Path:    "/v1/mailbox/messages/:token",
			Method:  http.MethodDelete,
			Handler: DeleteMailboxMessage(relay),
		},
	}
}
