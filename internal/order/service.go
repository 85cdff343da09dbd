package order

// Service provides read/append access to per-user order histories.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Append files an order under its buyer's history.
func (s *Service) Append(o Order) {
	s.repo.ForUser(o.UserEmail).Add(o)
}

// HistoryFor returns the user's orders as records, newest first.
func (s *Service) HistoryFor(email string) []Record {
	orders := s.repo.ForUser(email).Orders()
	records := make([]Record, 0, len(orders))
	for _, o := range orders {
		records = append(records, o.Record())
	}
	return records
}
