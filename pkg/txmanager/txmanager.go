package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FitnessBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
)

var (
	// ErrBeginTx возвращается, когда не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, когда не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSetTimeout возвращается, когда не удалось выставить таймауты транзакции
	ErrSetTimeout = errors.New("txmanager: failed to set transaction timeouts")
)

// TxBeginner источник транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции, которая передаётся через контекст
type TransactionManager struct {
	db               TxBeginner
	lockTimeout      time.Duration
	statementTimeout time.Duration
}

// Option настройка менеджера транзакций
type Option func(*TransactionManager)

// WithLockTimeout ограничивает ожидание блокировок внутри транзакции (SET LOCAL lock_timeout)
func WithLockTimeout(d time.Duration) Option {
	return func(m *TransactionManager) { m.lockTimeout = d }
}

// WithStatementTimeout ограничивает длительность одного запроса (SET LOCAL statement_timeout)
func WithStatementTimeout(d time.Duration) Option {
	return func(m *TransactionManager) { m.statementTimeout = d }
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции READ COMMITTED
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE.
// Повторов при конфликте сериализации нет: ошибка классифицируется
// как pgerrors.ErrConflict и возвращается вызывающему.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует уже открытую транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, pgerrors.Classify(err))
	}

	// Откат выполняется до возврата из run, в том числе при панике и отмене контекста
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = m.setTimeouts(ctx, tx); err != nil {
		return err
	}

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, pgerrors.Classify(err))
	}

	return nil
}

func (m *TransactionManager) setTimeouts(ctx context.Context, tx dbmetrics.TxExecutor) error {
	if m.lockTimeout > 0 {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())); err != nil {
			return fmt.Errorf("%w: lock_timeout: %w", ErrSetTimeout, pgerrors.Classify(err))
		}
	}
	if m.statementTimeout > 0 {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", m.statementTimeout.Milliseconds())); err != nil {
			return fmt.Errorf("%w: statement_timeout: %w", ErrSetTimeout, pgerrors.Classify(err))
		}
	}
	return nil
}
