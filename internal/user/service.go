package user

// MissingFieldError reports which registration field was blank.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return e.Field + " is required"
}

// Service holds account business rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account. Email, password and name are
// required; the address is optional.
func (s *Service) Register(email, password, name, address string) (User, error) {
	switch {
	case email == "":
		return User{}, MissingFieldError{Field: "email"}
	case password == "":
		return User{}, MissingFieldError{Field: "password"}
	case name == "":
		return User{}, MissingFieldError{Field: "name"}
	}

	u := User{Email: email, Password: password, Name: name, Address: address}
	if err := s.repo.Create(u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate checks credentials with an exact match on both fields.
func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.Get(email)
	if err != nil {
		return User{}, ErrBadCredential
	}
	if u.Password != password {
		return User{}, ErrBadCredential
	}
	return u, nil
}
