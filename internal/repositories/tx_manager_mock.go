package repositories

// MockTxRepos bundles in-memory repositories for tests.
type MockTxRepos struct {
	CartRepo    CartRepository
	ProductRepo ProductRepository
	OrderRepo   OrderRepository
}

func (r MockTxRepos) Carts() CartRepository       { return r.CartRepo }
func (r MockTxRepos) Products() ProductRepository { return r.ProductRepo }
func (r MockTxRepos) Orders() OrderRepository     { return r.OrderRepo }

// MockTransactionManager runs fn directly against the bundled
// repositories. There is no rollback; tests asserting atomicity should
// check observable state instead.
type MockTransactionManager struct {
	Repos MockTxRepos
}

// NewMockTransactionManager creates a new instance of MockTransactionManager.
func NewMockTransactionManager(repos MockTxRepos) *MockTransactionManager {
	return &MockTransactionManager{Repos: repos}
}

// WithinTx invokes fn with the bundled repositories.
func (m *MockTransactionManager) WithinTx(fn func(r TxRepos) error) error {
	return fn(m.Repos)
}
