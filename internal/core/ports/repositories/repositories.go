package repositories

// RepositoryProvider bundles all repository facades so wiring code can pass
// them around as one unit.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	EntryRepo     LedgerEntryRepositoryFacade
	RecurringRepo RecurringEntryRepositoryFacade
}
