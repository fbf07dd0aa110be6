package imapclient

import (
	"context"
	"fmt"
	"io"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
	"github.com/pkg/errors"
	"github.com/sugarart/commerce-sync-api/internal/config"
	"github.com/sugarart/commerce-sync-api/pkg/log"
)

const inboxFolder = "INBOX"

// Message é uma mensagem não lida da caixa de entrada, já com o primeiro
// anexo extraído. Mensagens sem anexo chegam com Attachment nulo.
type Message struct {
	UID            uint32
	From           string
	Subject        string
	AttachmentName string
	Attachment     []byte
}

// Client isola o acesso IMAP à caixa monitorada. Cada operação abre uma
// conexão própria; o servidor da caixa derruba sessões ociosas.
type Client interface {
	FetchUnread(ctx context.Context) ([]*Message, error)
	// Discard move a mensagem para a lixeira e a remove da caixa de entrada.
	Discard(ctx context.Context, uid uint32) error
	// DeleteBySubjectToken apaga, da caixa de entrada e da lixeira, as
	// mensagens cujo assunto contém o token. Retorna quantas encontrou.
	DeleteBySubjectToken(ctx context.Context, token string) (int, error)
}

type mailboxClient struct {
	addr        string
	user        string
	password    string
	trashFolder string
}

func NewClient(cfg *config.Config) Client {
	return &mailboxClient{
		addr:        fmt.Sprintf("%s:%d", cfg.Mailbox.IMAPHost, cfg.Mailbox.IMAPPort),
		user:        cfg.Mailbox.User,
		password:    cfg.Mailbox.Password,
		trashFolder: cfg.Mailbox.TrashFolder,
	}
}

func (c *mailboxClient) connect() (*client.Client, error) {
	conn, err := client.DialTLS(c.addr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar no servidor IMAP")
	}

	if err := conn.Login(c.user, c.password); err != nil {
		_ = conn.Logout()
		return nil, errors.Wrap(err, "erro ao autenticar no servidor IMAP")
	}

	return conn, nil
}

func (c *mailboxClient) FetchUnread(ctx context.Context) ([]*Message, error) {
	conn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Logout()

	if _, err := conn.Select(inboxFolder, false); err != nil {
		return nil, errors.Wrap(err, "erro ao selecionar a caixa de entrada")
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	uids, err := conn.UidSearch(criteria)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar mensagens não lidas")
	}
	if len(uids) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(uids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchUid, section.FetchItem()}

	raw := make(chan *imap.Message, len(uids))
	done := make(chan error, 1)
	go func() {
		done <- conn.UidFetch(seqset, items, raw)
	}()

	var messages []*Message
	for msg := range raw {
		parsed, err := parseMessage(msg, section)
		if err != nil {
			// Mensagem ilegível não derruba o ciclo; fica não lida na caixa
			log.ForContext(ctx).WithError(err).WithField("uid", msg.Uid).
				Warn("Falha ao interpretar mensagem da caixa de entrada")
			continue
		}
		messages = append(messages, parsed)
	}

	if err := <-done; err != nil {
		return nil, errors.Wrap(err, "erro ao baixar mensagens da caixa de entrada")
	}

	return messages, nil
}

func parseMessage(msg *imap.Message, section *imap.BodySectionName) (*Message, error) {
	body := msg.GetBody(section)
	if body == nil {
		return nil, errors.New("mensagem sem corpo")
	}

	reader, err := mail.CreateReader(body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a mensagem")
	}

	parsed := &Message{UID: msg.Uid}

	if subject, err := reader.Header.Subject(); err == nil {
		parsed.Subject = subject
	}
	if from, err := reader.Header.AddressList("From"); err == nil && len(from) > 0 {
		parsed.From = from[0].Address
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao percorrer as partes da mensagem")
		}

		if header, ok := part.Header.(*mail.AttachmentHeader); ok {
			filename, _ := header.Filename()
			data, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, errors.Wrap(err, "erro ao ler o anexo")
			}
			parsed.AttachmentName = filename
			parsed.Attachment = data
			break // Somente o primeiro anexo interessa
		}
	}

	return parsed, nil
}

func (c *mailboxClient) Discard(ctx context.Context, uid uint32) error {
	conn, err := c.connect()
	if err != nil {
		return err
	}
	defer conn.Logout()

	if _, err := conn.Select(inboxFolder, false); err != nil {
		return errors.Wrap(err, "erro ao selecionar a caixa de entrada")
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(uid)

	// A cópia para a lixeira é melhor esforço: servidores sem a pasta
	// configurada ainda devem ter a mensagem expurgada da entrada
	if err := conn.UidCopy(seqset, c.trashFolder); err != nil {
		log.ForContext(ctx).WithError(err).WithField("uid", uid).
			Warn("Falha ao copiar mensagem para a lixeira")
	}

	return c.expunge(conn, seqset)
}

func (c *mailboxClient) expunge(conn *client.Client, seqset *imap.SeqSet) error {
	flags := []interface{}{imap.DeletedFlag}
	item := imap.FormatFlagsOp(imap.AddFlags, true)
	if err := conn.UidStore(seqset, item, flags, nil); err != nil {
		return errors.Wrap(err, "erro ao marcar mensagem como excluída")
	}

	if err := conn.Expunge(nil); err != nil {
		return errors.Wrap(err, "erro ao expurgar mensagens excluídas")
	}

	return nil
}

func (c *mailboxClient) DeleteBySubjectToken(ctx context.Context, token string) (int, error) {
	conn, err := c.connect()
	if err != nil {
		return 0, err
	}
	defer conn.Logout()

	total := 0
	for _, folder := range []string{inboxFolder, c.trashFolder} {
		deleted, err := c.deleteBySubjectIn(conn, folder, token)
		if err != nil {
			return total, errors.Wrapf(err, "erro ao apagar mensagens em %q", folder)
		}
		total += deleted
	}

	return total, nil
}

func (c *mailboxClient) deleteBySubjectIn(conn *client.Client, folder, token string) (int, error) {
	if _, err := conn.Select(folder, false); err != nil {
		return 0, errors.Wrap(err, "erro ao selecionar a pasta")
	}

	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("Subject", token)
	uids, err := conn.UidSearch(criteria)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar mensagens pelo assunto")
	}
	if len(uids) == 0 {
		return 0, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(uids...)
	if err := c.expunge(conn, seqset); err != nil {
		return 0, err
	}

	return len(uids), nil
}
