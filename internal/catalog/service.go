package catalog

// ServiceInterface lets other packages depend on catalog lookups
// without pulling in the concrete service.
type ServiceInterface interface {
	List() []Book
	FindByTitle(title string) (Book, error)
}

// Service exposes catalog lookups.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Book {
	return s.repo.List()
}

func (s *Service) FindByTitle(title string) (Book, error) {
	if title == "" {
		return Book{}, ErrNotFound
	}
	return s.repo.FindByTitle(title)
}
