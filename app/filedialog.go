package main

import (
	"gioui.org/x/explorer"
)

// ExportResult holds the result of a history export.
type ExportResult struct {
	Err error
}

// ExportHistoryAsync triggers a file-save dialog in a goroutine and writes
// the rendered history log. The result is sent on the returned channel.
func ExportHistoryAsync(expl *explorer.Explorer, content []byte, defaultName string) <-chan ExportResult {
	ch := make(chan ExportResult, 1)
	go func() {
		w, err := expl.CreateFile(defaultName)
		if err != nil {
			ch <- ExportResult{Err: err}
			return
		}
		_, err = w.Write(content)
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
		ch <- ExportResult{Err: err}
	}()
	return ch
}
