// lexitui is a terminal front end for a running lexicon server. It shows a
// live preview of the results as the query is typed.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/domino14/lexi_server/internal/lexi"
	"github.com/domino14/lexi_server/internal/searchserver"
)

var goals = []searchserver.Goal{
	searchserver.GoalCountdown,
	searchserver.GoalConnect,
	searchserver.GoalAnagram,
}

// resultsFetcher is the part of the RPC client the model needs.
type resultsFetcher interface {
	Results(context.Context, *connect.Request[searchserver.ResultsRequest]) (
		*connect.Response[searchserver.CountedResults], error)
}

type resultsMsg struct {
	q    string
	goal searchserver.Goal
	res  *searchserver.CountedResults
	err  error
}

type model struct {
	textInput textinput.Model
	client    resultsFetcher
	jwt       string
	goalIdx   int
	preview   bool

	last resultsMsg
}

var (
	goalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tierStyles = map[lexi.Popularity]lipgloss.Style{
		lexi.High:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		lexi.Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		lexi.Low:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
)

func initialModel(client resultsFetcher, jwt string) model {
	ti := textinput.New()
	ti.Placeholder = "Letters"
	ti.Focus()
	ti.CharLimit = 30
	ti.Width = 30

	return model{
		textInput: ti,
		client:    client,
		jwt:       jwt,
		preview:   true,
	}
}

func (m model) goal() searchserver.Goal {
	return goals[m.goalIdx]
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab:
			m.goalIdx = (m.goalIdx + 1) % len(goals)
			return m, m.fetch(true)

		case tea.KeyEnter:
			// full results for the current query
			return m, m.fetch(false)
		}

	case resultsMsg:
		// drop answers to queries that are no longer on screen
		if msg.q == m.textInput.Value() && msg.goal == m.goal() {
			m.last = msg
		}
		return m, nil
	}

	before := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		return m, tea.Batch(cmd, m.fetch(true))
	}
	return m, cmd
}

// fetch asks the server for results for the current query.
func (m model) fetch(preview bool) tea.Cmd {
	q, goal := m.textInput.Value(), m.goal()
	if strings.TrimSpace(q) == "" {
		return func() tea.Msg { return resultsMsg{q: q, goal: goal} }
	}
	client, jwt := m.client, m.jwt
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		req := connect.NewRequest(&searchserver.ResultsRequest{
			Q: q, Goal: string(goal), Preview: preview})
		if jwt != "" {
			req.Header().Set("Authorization", "Bearer "+jwt)
		}
		resp, err := client.Results(ctx, req)
		if err != nil {
			return resultsMsg{q: q, goal: goal, err: err}
		}
		return resultsMsg{q: q, goal: goal, res: resp.Msg}
	}
}

func renderWords(words []searchserver.RatedWord) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = tierStyles[w.Rating].Render(w.Word)
	}
	return strings.Join(parts, " ")
}

func renderResults(res *searchserver.CountedResults) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	switch res.Type {
	case searchserver.TypeWordsByLength:
		for _, g := range res.Groups {
			fmt.Fprintf(&b, "%2d  %s\n", g.Len, renderWords(g.Words))
		}
	case searchserver.TypeAnagrams:
		for _, d := range res.Anagrams {
			b.WriteString(renderWords(d.Words))
			b.WriteString("\n")
		}
	}
	footer := fmt.Sprintf("%d of %d shown", res.NumShown, res.NumTotal)
	if res.Truncated {
		footer += " (search stopped early)"
	}
	b.WriteString(dimStyle.Render(footer))
	return b.String()
}

func (m model) View() string {
	header := "Goal: " + goalStyle.Render(string(m.goal())) + dimStyle.Render("   (tab) change goal   (enter) full results")
	body := renderResults(m.last.res)
	if m.last.err != nil {
		body = errorStyle.Render(m.last.err.Error())
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", header, m.textInput.View(), body)
}

func main() {
	serverURI := os.Getenv("LEXI_SERVER_URI")
	if serverURI == "" {
		serverURI = "http://127.0.0.1:3000"
	}
	client := searchserver.NewClient(http.DefaultClient, serverURI)
	p := tea.NewProgram(initialModel(client, os.Getenv("LEXI_JWT")))

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
