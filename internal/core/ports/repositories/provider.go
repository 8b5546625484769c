package repositories

// RepositoryProvider bundles all repository implementations so wiring the
// service container takes a single argument.
type RepositoryProvider struct {
	UserRepo          UserRepository
	SaleRepo          SaleRepository
	InsuranceTypeRepo InsuranceTypeRepository
	ObjectiveRepo     ObjectiveRepository
}
