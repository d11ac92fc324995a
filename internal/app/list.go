package app

import (
	"fmt"

	"github.com/atomicstack/ams/internal/format"
	"github.com/atomicstack/ams/internal/format/table"
)

const (
	listNameWidth   = 20
	listStatusWidth = 8
	listDirWidth    = 35

	noSessionsMessage = "No tmux sessions found."
)

func (r *Runner) runList() error {
	sessions, err := r.repo.ListSessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(r.out, noSessionsMessage)
		return nil
	}

	now := r.now()
	rows := make([][]string, 0, len(sessions)+1)
	rows = append(rows, []string{
		format.Pad("NAME", listNameWidth),
		format.Pad("STATUS", listStatusWidth),
		format.Pad("WORKING DIR", listDirWidth),
		"LAST ACTIVITY",
	})
	for _, s := range sessions {
		rows = append(rows, []string{
			format.Pad(format.Head(s.Name, listNameWidth), listNameWidth),
			format.Pad(s.Status.String(), listStatusWidth),
			format.Pad(format.Prefix(s.WorkingDirectory, listDirWidth), listDirWidth),
			format.Relative(s.LastActivity, now),
		})
	}
	for _, line := range table.FormatWithGap(rows, nil, " ") {
		fmt.Fprintln(r.out, line)
	}
	return nil
}
