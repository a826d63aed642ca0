package tui

type settingsSavedMsg struct {
	err error
	rev int
}

type copiedMsg struct {
	err error
}
