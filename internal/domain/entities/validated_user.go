package entities

type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}

	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}

func (vu *ValidatedUser) UpdateProfile(name, email string) error {
	return vu.User.UpdateProfile(name, email)
}
