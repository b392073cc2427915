package utils

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

var sp *spinner.Spinner

// StartSpinner shows a progress spinner on w until StopSpinner is called
func StartSpinner(w io.Writer, suffix string) {
	sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	sp.Suffix = " " + suffix
	sp.Start()
}

func StopSpinner() {
	if sp != nil {
		sp.Stop()
		sp = nil
	}
}
