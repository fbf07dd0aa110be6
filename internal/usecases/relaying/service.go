package relaying

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sugarart/commerce-sync-api/infrastructure/mailbox/imapclient"
	"github.com/sugarart/commerce-sync-api/infrastructure/mailbox/mailer"
	"github.com/sugarart/commerce-sync-api/pkg/log"
	"github.com/sugarart/commerce-sync-api/pkg/utils"
)

// ErrMessageNotFound indica que nenhuma mensagem carrega o token pesquisado.
var ErrMessageNotFound = errors.New("nenhuma mensagem encontrada para o token")

const mailBodyTemplate = "Segue em anexo o arquivo convertido para CSV.\n\nToken de referência: %s\n"

// Report resume um ciclo de processamento da caixa de entrada.
type Report struct {
	Fetched   int `json:"fetched"`
	Processed int `json:"processed"`
	Ignored   int `json:"ignored"`
	Failed    int `json:"failed"`
}

// Service é o relay da caixa de entrada: converte anexos xlsx das mensagens
// não lidas em CSV e devolve ao remetente com um token de correlação no
// assunto, que depois permite apagar a mensagem original.
type Service interface {
	ProcessInbox(ctx context.Context) (*Report, error)
	DeleteByToken(ctx context.Context, token string) (int, error)
}

type relayService struct {
	inbox  imapclient.Client
	mailer mailer.Mailer
}

func NewService(inbox imapclient.Client, outbound mailer.Mailer) Service {
	return &relayService{
		inbox:  inbox,
		mailer: outbound,
	}
}

// ProcessInbox trata cada mensagem isoladamente: falha em uma não impede as
// demais. Mensagens com problema permanecem na caixa para o próximo ciclo.
func (s *relayService) ProcessInbox(ctx context.Context) (*Report, error) {
	messages, err := s.inbox.FetchUnread(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar mensagens não lidas")
	}

	report := &Report{Fetched: len(messages)}
	logger := log.ForContext(ctx)

	for _, msg := range messages {
		if !hasXlsxAttachment(msg) {
			logger.WithField("uid", msg.UID).WithField("from", msg.From).
				Info("Mensagem sem anexo xlsx ignorada")
			report.Ignored++
			continue
		}

		if err := s.relay(ctx, msg); err != nil {
			logger.WithError(err).WithField("uid", msg.UID).WithField("from", msg.From).
				Warn("Falha ao processar mensagem da caixa de entrada")
			report.Failed++
			continue
		}
		report.Processed++
	}

	logger.WithField("fetched", report.Fetched).
		WithField("processed", report.Processed).
		WithField("ignored", report.Ignored).
		WithField("failed", report.Failed).
		Info("Ciclo da caixa de entrada concluído")

	return report, nil
}

func hasXlsxAttachment(msg *imapclient.Message) bool {
	if len(msg.Attachment) == 0 {
		return false
	}
	return strings.EqualFold(filepath.Ext(msg.AttachmentName), ".xlsx")
}

func (s *relayService) relay(ctx context.Context, msg *imapclient.Message) error {
	csvData, err := ConvertWorkbookToCSV(msg.Attachment)
	if err != nil {
		return err
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar token de correlação")
	}

	subject := fmt.Sprintf("Arquivo CSV - %s", token)
	csvName := strings.TrimSuffix(msg.AttachmentName, filepath.Ext(msg.AttachmentName)) + ".csv"
	body := fmt.Sprintf(mailBodyTemplate, token)

	if err := s.mailer.SendWithAttachment(msg.From, subject, body, csvName, csvData); err != nil {
		return err
	}

	// O descarte vem depois do envio: se o envio falhar a mensagem
	// continua não lida e o próximo ciclo tenta de novo
	if err := s.inbox.Discard(ctx, msg.UID); err != nil {
		return errors.Wrap(err, "erro ao descartar mensagem processada")
	}

	return nil
}

// DeleteByToken remove da caixa as mensagens cujo assunto contém o token.
// Token inexistente é ErrMessageNotFound; erro de conexão propaga como está.
func (s *relayService) DeleteByToken(ctx context.Context, token string) (int, error) {
	deleted, err := s.inbox.DeleteBySubjectToken(ctx, token)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao apagar mensagens pelo token")
	}
	if deleted == 0 {
		return 0, ErrMessageNotFound
	}
	return deleted, nil
}
