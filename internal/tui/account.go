package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/identity"
	"github.com/samidy/monosync/internal/service"
)

type accountMode int

const (
	modeSignIn accountMode = iota
	modeAccount
	modeShare
	modeConfirmClear
)

var accountActions = []string{
	"Sync now",
	"Copy share link",
	"Clear cloud data",
	"Sign out",
}

// accountModel is the single Bubble Tea model of the sync client. Signed
// out it renders the email/password form (enter submits, ctrl+s toggles
// sign-up, ctrl+r requests a password reset); signed in it renders the
// account action menu.
type accountModel struct {
	ctx      context.Context
	services *service.ClientServices
	ids      *identity.Provider

	shareBaseURL string

	mode       accountMode
	signup     bool
	inputs     []textinput.Model
	focus      int
	shareInput textinput.Model
	actionIdx  int

	submitting bool
	syncing    bool
	status     string
	errMsg     string
	quitByUser bool
}

func newAccountModel(ctx context.Context, services *service.ClientServices, ids *identity.Provider, shareBaseURL string) *accountModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 128
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	shareInput := textinput.New()
	shareInput.Placeholder = "playlist uuid"
	shareInput.CharLimit = 64
	shareInput.Width = 40

	mode := modeSignIn
	if ids.Current() != nil {
		mode = modeAccount
	}

	return &accountModel{
		ctx:          ctx,
		services:     services,
		ids:          ids,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
		mode:         mode,
		inputs:       []textinput.Model{emailInput, passwordInput},
		shareInput:   shareInput,
	}
}

func (m *accountModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *accountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = baas.UserMessage(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Signed in as " + m.currentEmail()
		m.mode = modeAccount
		return m, nil

	case resetResultMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = baas.UserMessage(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Password reset email sent"
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if result.err != nil {
			m.errMsg = humanizeRemoteError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Library synced"
		return m, nil

	case clearDoneMsg:
		if result.err != nil {
			m.errMsg = humanizeRemoteError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Cloud data cleared"
		return m, nil

	case shareResultMsg:
		if result.err != nil {
			m.errMsg = humanizeRemoteError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Share link copied: " + result.link
		m.mode = modeAccount
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeSignIn:
		return m.updateSignIn(keyMsg)
	case modeAccount:
		return m.updateAccount(keyMsg)
	case modeShare:
		return m.updateShare(keyMsg)
	case modeConfirmClear:
		return m.updateConfirmClear(keyMsg)
	}
	return m, nil
}

func (m *accountModel) updateSignIn(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "tab", "shift+tab":
		m.focus = (m.focus + 1) % len(m.inputs)
		cmds := make([]tea.Cmd, 0, len(m.inputs))
		for i := range m.inputs {
			if i == m.focus {
				cmds = append(cmds, m.inputs[i].Focus())
				continue
			}
			m.inputs[i].Blur()
		}
		return m, tea.Batch(cmds...)

	case "ctrl+s":
		m.signup = !m.signup
		m.errMsg = ""
		return m, nil

	case "ctrl+r":
		email := strings.TrimSpace(m.inputs[0].Value())
		if email == "" {
			m.errMsg = "Enter your email first"
			return m, nil
		}
		m.submitting = true
		return m, m.cmdRequestReset(email)

	case "enter":
		if m.submitting {
			return m, nil
		}
		email := strings.TrimSpace(m.inputs[0].Value())
		password := m.inputs[1].Value()
		if email == "" || password == "" {
			m.errMsg = "Email and password are required"
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdAuthenticate(email, password)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m *accountModel) updateAccount(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "up", "k":
		if m.actionIdx > 0 {
			m.actionIdx--
		}
	case "down", "j":
		if m.actionIdx < len(accountActions)-1 {
			m.actionIdx++
		}
	case "enter":
		switch m.actionIdx {
		case 0:
			if m.syncing {
				return m, nil
			}
			m.syncing = true
			m.status = "Syncing..."
			return m, m.cmdSync()
		case 1:
			m.shareInput.SetValue("")
			m.shareInput.Focus()
			m.mode = modeShare
			return m, textinput.Blink
		case 2:
			m.mode = modeConfirmClear
			return m, nil
		case 3:
			m.ids.SignOut()
			m.mode = modeSignIn
			m.status = "Signed out"
			m.inputs[1].SetValue("")
			return m, nil
		}
	}
	return m, nil
}

func (m *accountModel) updateShare(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeAccount
		return m, nil
	case "enter":
		uuid := strings.TrimSpace(m.shareInput.Value())
		if uuid == "" {
			m.errMsg = "Playlist uuid is required"
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdCopyShareLink(uuid)
	}

	var cmd tea.Cmd
	m.shareInput, cmd = m.shareInput.Update(keyMsg)
	return m, cmd
}

func (m *accountModel) updateConfirmClear(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		m.mode = modeAccount
		m.status = "Clearing cloud data..."
		return m, m.cmdClearCloudData()
	case "n", "esc":
		m.mode = modeAccount
	}
	return m, nil
}

func (m *accountModel) cmdAuthenticate(email, password string) tea.Cmd {
	signup := m.signup
	return func() tea.Msg {
		var err error
		if signup {
			err = m.ids.SignUp(m.ctx, email, password)
		} else {
			err = m.ids.SignIn(m.ctx, email, password)
		}
		return authResultMsg{err: err}
	}
}

func (m *accountModel) cmdRequestReset(email string) tea.Cmd {
	return func() tea.Msg {
		return resetResultMsg{err: m.ids.RequestPasswordReset(m.ctx, email)}
	}
}

func (m *accountModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: m.services.Engine.Reconcile(m.ctx)}
	}
}

func (m *accountModel) cmdClearCloudData() tea.Cmd {
	return func() tea.Msg {
		return clearDoneMsg{err: m.services.Engine.ClearCloudData(m.ctx)}
	}
}

func (m *accountModel) cmdCopyShareLink(uuid string) tea.Cmd {
	return func() tea.Msg {
		view, err := m.services.Engine.FetchPublicPlaylist(m.ctx, uuid)
		if err != nil {
			return shareResultMsg{err: err}
		}
		if view == nil {
			return shareResultMsg{err: fmt.Errorf("playlist %s is not public", uuid)}
		}

		link := m.shareBaseURL + "/playlist/" + view.ID
		if err := clipboard.WriteAll(link); err != nil {
			return shareResultMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return shareResultMsg{link: link}
	}
}

func (m *accountModel) currentEmail() string {
	if user := m.ids.Current(); user != nil {
		return user.Email
	}
	return ""
}

func (m *accountModel) View() string {
	switch m.mode {
	case modeSignIn:
		return m.viewSignIn()
	case modeShare:
		return m.viewShare()
	case modeConfirmClear:
		return renderPage("CLEAR CLOUD DATA",
			"Delete the cloud copy of your library, history and playlists?\nThe local library is kept.",
			"y: confirm │ n/esc: cancel")
	default:
		return m.viewAccount()
	}
}

func (m *accountModel) viewSignIn() string {
	title := "SIGN IN"
	action := "sign in"
	if m.signup {
		title = "SIGN UP"
		action = "create account"
	}

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\n...\n")
	}
	b.WriteString(m.statusLines())

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		fmt.Sprintf("enter: %s │ tab: next field │ ctrl+s: toggle sign-up │ ctrl+r: reset password", action))
}

func (m *accountModel) viewAccount() string {
	var b strings.Builder
	b.WriteString("Account: " + m.currentEmail() + "\n\n")

	for i, action := range accountActions {
		cursor := " "
		if i == m.actionIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, action))
	}
	b.WriteString(m.statusLines())

	return renderPage("ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate")
}

func (m *accountModel) viewShare() string {
	var b strings.Builder
	b.WriteString(m.shareInput.View())
	b.WriteString("\n")
	b.WriteString(m.statusLines())

	return renderPage("COPY SHARE LINK", strings.TrimRight(b.String(), "\n"),
		"enter: copy │ esc: back")
}

func (m *accountModel) statusLines() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return b.String()
}
