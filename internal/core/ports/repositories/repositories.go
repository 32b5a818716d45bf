package repositories

// RepositoryContainer bundles every repository the services need. All of the
// in-memory repositories are implemented by the same state store, which keeps
// the aggregate consistent under a single writer lock.
type RepositoryContainer struct {
	Transaction TransactionRepository
	User        UserRepository
	Activity    ActivityLogRepository
	Settings    SettingsRepository
	Category    CategoryRepository
	State       StateReader
}
