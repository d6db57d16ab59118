package repositories

// TxRepos exposes the repositories participating in one transaction.
// Checkout reads cart lines and products and writes orders through the
// same database transaction.
type TxRepos interface {
	Carts() CartRepository
	Products() ProductRepository
	Orders() OrderRepository
}

// TransactionManager runs a function inside a single atomic transaction.
// If fn returns an error every write made through its TxRepos is rolled
// back, so a half-created order is never observable.
type TransactionManager interface {
	WithinTx(fn func(r TxRepos) error) error
}
