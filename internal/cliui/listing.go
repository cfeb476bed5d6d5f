package cliui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ListItems prints a titled bulleted list. With animation on, items appear
// one per animation delay. An empty list prints just the title.
func (u *UI) ListItems(title string, items []string) {
	if len(items) == 0 {
		u.PrintColored(title+":", text.Colors{text.FgCyan})
		return
	}

	fmt.Fprintf(u.out, "\n%s\n", u.paint("─ "+title+" ─", text.Colors{text.FgCyan}))

	l := list.NewWriter()
	l.SetStyle(list.StyleBulletCircle)
	for _, item := range items {
		l.AppendItem(item)
	}

	for _, line := range strings.Split(l.Render(), "\n") {
		if u.cfg.Animation {
			time.Sleep(u.cfg.AnimationDelay)
		}
		fmt.Fprintln(u.out, line)
	}
}

// Table prints a header and rows in the shared table style.
func (u *UI) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(u.out)
	if u.colors {
		t.SetStyle(table.StyleColoredBright)
	} else {
		t.SetStyle(table.StyleLight)
	}

	hr := make(table.Row, len(header))
	for i, h := range header {
		hr[i] = h
	}
	t.AppendHeader(hr)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		t.AppendRow(r)
	}

	t.Render()
}
