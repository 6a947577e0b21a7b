package entities

type ValidatedTutorial struct {
	*Tutorial
}

func NewValidatedTutorial(tutorial *Tutorial) (*ValidatedTutorial, error) {
	if err := tutorial.validate(); err != nil {
		return nil, err
	}

	return &ValidatedTutorial{Tutorial: tutorial}, nil
}

func (vt *ValidatedTutorial) GetTutorial() *Tutorial {
	return vt.Tutorial
}

func (vt *ValidatedTutorial) Update(title, content string) error {
	return vt.Tutorial.Update(title, content)
}
