package repositories

import "gorm.io/gorm"

// GORMTransactionManager is a GORM implementation of TransactionManager.
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager creates a new instance of GORMTransactionManager.
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// WithinTx opens a database transaction and hands fn repositories bound
// to it. fn returning an error rolls everything back.
func (m *GORMTransactionManager) WithinTx(fn func(r TxRepos) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(gormTxRepos{tx: tx})
	})
}

type gormTxRepos struct {
	tx *gorm.DB
}

func (r gormTxRepos) Carts() CartRepository       { return NewGORMCartRepository(r.tx) }
func (r gormTxRepos) Products() ProductRepository { return NewGORMProductRepository(r.tx) }
func (r gormTxRepos) Orders() OrderRepository     { return NewGORMOrderRepository(r.tx) }
