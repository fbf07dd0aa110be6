package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/internal/config"
)

// Ordem importa: clientes primeiro, as demais tabelas referenciam seu id.
var statements = []struct {
	name string
	ddl  string
}{
	{
		name: "clientes",
		ddl: `CREATE TABLE IF NOT EXISTS clientes (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			razao_social TEXT,
			fantasia TEXT,
			inscricao_federal TEXT,
			telefone TEXT,
			celular TEXT,
			pais TEXT,
			uf TEXT,
			cep TEXT,
			bairro TEXT,
			logradouro TEXT,
			numero TEXT,
			complemento TEXT,
			cidade TEXT
		)`,
	},
	{
		name: "pedidos",
		ddl: `CREATE TABLE IF NOT EXISTS pedidos (
			codigo_pedido TEXT PRIMARY KEY,
			id_cliente BIGINT REFERENCES clientes (id),
			vendedor TEXT,
			valor_final NUMERIC(14,2) NOT NULL DEFAULT 0,
			data_envio DATE NOT NULL,
			uf TEXT,
			periodicidade TEXT
		)`,
	},
	{
		name: "produtos",
		ddl: `CREATE TABLE IF NOT EXISTS produtos (
			codigo_produto TEXT PRIMARY KEY,
			nome TEXT NOT NULL,
			preco NUMERIC(14,2) NOT NULL DEFAULT 0,
			categoria TEXT NOT NULL DEFAULT 'Sem Categoria'
		)`,
	},
	{
		name: "boletos",
		ddl: `CREATE TABLE IF NOT EXISTS boletos (
			codigo_boleto TEXT PRIMARY KEY,
			numero_documento TEXT,
			valor_boleto NUMERIC(14,2) NOT NULL DEFAULT 0,
			id_cliente BIGINT REFERENCES clientes (id),
			pago BOOLEAN NOT NULL DEFAULT FALSE,
			cancelado BOOLEAN NOT NULL DEFAULT FALSE,
			estornado BOOLEAN NOT NULL DEFAULT FALSE,
			enviado BOOLEAN NOT NULL DEFAULT FALSE,
			retorno_recebido BOOLEAN NOT NULL DEFAULT FALSE,
			descricao VARCHAR(255),
			data_emissao DATE,
			data_vencimento DATE,
			multa_apos_vencimento NUMERIC(14,2) NOT NULL DEFAULT 0
		)`,
	},
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt.ddl); err != nil {
			logrus.WithError(err).WithField("table", stmt.name).
				Fatal("Erro ao criar tabela")
		}
		logrus.WithField("table", stmt.name).Info("Tabela criada ou já existente")
	}

	logrus.Info("Migração concluída com sucesso")
}
