package store

import "github.com/MKhiriev/icrc7-dapp/internal/logger"

// Repositories bundles every replica repository over one connection.
type Repositories struct {
	Groups      GroupRepository
	Events      EventRepository
	Collections CollectionRepository
	Ledger      LedgerRepository
	Counters    CounterRepository
}

// NewRepositories builds all repositories on db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Groups:      NewGroupRepository(db, logger),
		Events:      NewEventRepository(db, logger),
		Collections: NewCollectionRepository(db, logger),
		Ledger:      NewLedgerRepository(db, logger),
		Counters:    NewCounterRepository(db, logger),
	}
}
