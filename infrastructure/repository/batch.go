package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
)

// existingKeys retorna o conjunto de chaves externas já gravadas na tabela.
// Usado apenas pelo modo de escrita insert-only.
func existingKeys(ctx context.Context, q postgres.Queryer, table, keyColumn string) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select(keyColumn).
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave: %w", err)
		}
		keys[key] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}

// execBatch executa o insert multi-VALUES como um único statement. Um erro
// invalida o lote inteiro; quem comita ou desfaz é a transação da execução.
func execBatch(ctx context.Context, q postgres.Queryer, builder squirrel.InsertBuilder) (int, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return int(affected), nil
}
