package tui

type authResultMsg struct {
	err error
}

type resetResultMsg struct {
	err error
}

type syncDoneMsg struct {
	err error
}

type clearDoneMsg struct {
	err error
}

type shareResultMsg struct {
	link string
	err  error
}
