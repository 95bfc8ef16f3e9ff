package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// O toggle de like e a exclusão de prompts dependem de WithTransaction
// para manter o contador desnormalizado e as linhas de Like consistentes.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
