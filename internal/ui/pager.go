package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"parkgrip/internal/domain"
)

// pagerCommand runs ov over a string. It satisfies tea.ExecCommand so
// bubbletea releases and restores the terminal around it.
type pagerCommand struct {
	title   string
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func (c *pagerCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *pagerCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *pagerCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run shows the content in ov until the user quits
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Don't write the buffer back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)
	root.Doc.Caption = c.title

	return root.Run()
}

// openPager returns a command showing parks in the pager
func openPager(title string, parks []domain.Park) tea.Cmd {
	cmd := &pagerCommand{
		title:   title,
		content: plainParkList(parks),
	}
	return tea.Exec(cmd, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}

// plainParkList formats parks one per line with their amenities
func plainParkList(parks []domain.Park) string {
	var b strings.Builder
	for _, p := range parks {
		if len(p.Amenities) == 0 {
			fmt.Fprintf(&b, "%s\n", p.Name)
			continue
		}
		fmt.Fprintf(&b, "%s\t%s\n", p.Name, strings.Join(p.Amenities, ", "))
	}
	return b.String()
}
