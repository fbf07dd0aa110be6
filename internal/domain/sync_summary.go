package domain

import "time"

// WriteMode indica a semântica de escrita usada pela execução.
type WriteMode string

const (
	// WriteModeUpsert insere e, em conflito de chave, sobrescreve as
	// colunas não-chave com os valores recebidos.
	WriteModeUpsert WriteMode = "upsert"
	// WriteModeInsertNew insere apenas registros cuja chave ainda não
	// existe na tabela de destino.
	WriteModeInsertNew WriteMode = "insert_new"
)

// SyncSummary é o resultado de uma execução de sincronização. Vive apenas
// durante a requisição que a disparou; nunca é persistido.
type SyncSummary struct {
	Entity      string         `json:"entity"`
	Received    int            `json:"received"`
	Transformed int            `json:"transformed"`
	Written     int            `json:"written"`
	Skipped     int            `json:"skipped"`
	SkipReasons map[string]int `json:"skip_reasons,omitempty"`
	WriteMode   WriteMode      `json:"write_mode"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
}
